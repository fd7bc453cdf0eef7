package screen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActionKind is the closed set of things a PF key can do.
type ActionKind int

const (
	ActionCustom ActionKind = iota // Screen-specific tag, interpreted by the caller
	ActionHelp
	ActionEnd
	ActionNext
	ActionPrevious
	ActionNavigate
	ActionExit
)

// navigatePrefix introduces a navigation directive, e.g. "navigate:MENU-01".
const navigatePrefix = "navigate:"

// String returns a human-readable name for the action kind
func (k ActionKind) String() string {
	switch k {
	case ActionCustom:
		return "Custom"
	case ActionHelp:
		return "Help"
	case ActionEnd:
		return "End"
	case ActionNext:
		return "Next"
	case ActionPrevious:
		return "Previous"
	case ActionNavigate:
		return "Navigate"
	case ActionExit:
		return "Exit"
	default:
		return fmt.Sprintf("ActionKind(%d)", k)
	}
}

// Action is what happens when a PF key is pressed.
// Target is set for ActionNavigate, Tag for ActionCustom.
type Action struct {
	Kind   ActionKind
	Target string
	Tag    string
}

// Convenience constructors
var (
	Help     = Action{Kind: ActionHelp}
	End      = Action{Kind: ActionEnd}
	Next     = Action{Kind: ActionNext}
	Previous = Action{Kind: ActionPrevious}
	Exit     = Action{Kind: ActionExit}
)

// NavigateTo returns an action that activates the screen with the given id.
func NavigateTo(screenID string) Action {
	return Action{Kind: ActionNavigate, Target: screenID}
}

// Custom returns an action carrying a screen-specific tag.
func Custom(tag string) Action {
	return Action{Kind: ActionCustom, Tag: tag}
}

// ParseAction converts a textual action tag into an Action.
// Built-in tags are matched case-insensitively. Unknown tags become
// ActionCustom, so only a malformed navigate directive is an error.
func ParseAction(tag string) (Action, error) {
	tag = strings.TrimSpace(tag)

	if len(tag) >= len(navigatePrefix) && strings.EqualFold(tag[:len(navigatePrefix)], navigatePrefix) {
		target := strings.TrimSpace(tag[len(navigatePrefix):])
		if target == "" {
			return Action{}, fmt.Errorf("action %q: missing screen id", tag)
		}
		return NavigateTo(target), nil
	}

	switch strings.ToUpper(tag) {
	case "HELP":
		return Help, nil
	case "END":
		return End, nil
	case "NEXT", "NXT":
		return Next, nil
	case "PREV", "PREVIOUS":
		return Previous, nil
	case "EXIT":
		return Exit, nil
	case "":
		return Action{}, fmt.Errorf("empty action")
	default:
		return Custom(tag), nil
	}
}

// String returns the canonical tag of the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionHelp:
		return "HELP"
	case ActionEnd:
		return "END"
	case ActionNext:
		return "NEXT"
	case ActionPrevious:
		return "PREVIOUS"
	case ActionExit:
		return "EXIT"
	case ActionNavigate:
		return navigatePrefix + a.Target
	case ActionCustom:
		return a.Tag
	default:
		return a.Kind.String()
	}
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return fmt.Errorf("line %d: action must be a string: %w", value.Line, err)
	}
	parsed, err := ParseAction(tag)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (a Action) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}
