package navigator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/greenscreen/internal/catalog"
	"github.com/muurk/greenscreen/internal/logging"
	"github.com/muurk/greenscreen/internal/screen"
)

// Subscriber receives the current screen after every state change.
// It receives nil while no screen is active.
type Subscriber func(*screen.Screen)

type subscription struct {
	id int
	fn Subscriber
}

// Navigator owns the active screen, the back-navigation history and all
// field edits for one terminal session.
type Navigator struct {
	catalog *catalog.Catalog
	session string

	mu      sync.Mutex
	current *screen.Screen
	history []string
	subs    []subscription
	nextSub int
}

// New creates a navigator over the given catalog with no active screen.
func New(c *catalog.Catalog) *Navigator {
	return &Navigator{
		catalog: c,
		session: uuid.NewString(),
	}
}

// Session returns the id used to correlate this session's log entries.
func (n *Navigator) Session() string {
	return n.session
}

// Catalog returns the catalog the navigator resolves screen ids against.
func (n *Navigator) Catalog() *catalog.Catalog {
	return n.catalog
}

// Current returns the active screen, or nil before the first navigation.
func (n *Navigator) Current() *screen.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// CurrentID returns the id of the active screen, or "".
func (n *Navigator) CurrentID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return ""
	}
	return n.current.ID
}

// History returns a copy of the back-navigation stack, oldest first.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

// Subscribe registers fn to receive the current screen. fn is called
// immediately with the latest value, then once per state change, on the
// goroutine that made the change. Call the returned function to unsubscribe.
func (n *Navigator) Subscribe(fn Subscriber) func() {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs = append(n.subs, subscription{id: id, fn: fn})
	current := n.current
	n.mu.Unlock()

	fn(current)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// publish delivers s to every subscriber in subscription order.
// Must be called without holding n.mu so subscribers may call back in.
func (n *Navigator) publish(s *screen.Screen, subs []subscription) {
	for _, sub := range subs {
		sub.fn(s)
	}
}

// snapshot returns the subscriber list for publishing. Caller holds n.mu.
func (n *Navigator) snapshot() []subscription {
	return append([]subscription(nil), n.subs...)
}

// NavigateTo makes the screen registered under id the active screen.
// The previously active screen id, if any, is pushed onto the history even
// when it equals id. The target keeps any values edited on earlier visits.
// On an unknown id nothing changes and ErrScreenNotFound is returned.
func (n *Navigator) NavigateTo(id string) error {
	target, err := n.catalog.Lookup(id)
	if err != nil {
		logging.Warn("Navigation target not found",
			zap.String("session", n.session),
			zap.String("screen", id),
		)
		return err
	}

	n.mu.Lock()
	from := ""
	if n.current != nil {
		from = n.current.ID
		n.history = append(n.history, from)
	}
	n.current = target
	depth := len(n.history)
	subs := n.snapshot()
	n.mu.Unlock()

	logging.LogNavigation(n.session, from, id, depth)
	n.publish(target, subs)
	return nil
}

// GoBack returns to the most recently visited screen.
// With an empty history it does nothing and returns nil. If the popped id no
// longer resolves, the entry is discarded, the active screen stays as it is
// and ErrScreenNotFound is returned.
func (n *Navigator) GoBack() error {
	n.mu.Lock()
	if len(n.history) == 0 {
		n.mu.Unlock()
		return nil
	}

	last := len(n.history) - 1
	id := n.history[last]
	n.history = n.history[:last]

	target, err := n.catalog.Lookup(id)
	if err != nil {
		n.mu.Unlock()
		logging.Warn("History entry no longer resolves",
			zap.String("session", n.session),
			zap.String("screen", id),
		)
		return err
	}

	from := ""
	if n.current != nil {
		from = n.current.ID
	}
	n.current = target
	depth := len(n.history)
	subs := n.snapshot()
	n.mu.Unlock()

	logging.LogNavigation(n.session, from, id, depth)
	n.publish(target, subs)
	return nil
}

// UpdateField assigns raw to the field on the active screen, clipped to the
// field length. Over-length input is never rejected.
func (n *Navigator) UpdateField(fieldID string, raw string) error {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return ErrNoActiveScreen
	}

	f := n.current.Field(fieldID)
	if f == nil {
		screenID := n.current.ID
		n.mu.Unlock()
		return fmt.Errorf("screen %q field %q: %w", screenID, fieldID, ErrFieldNotFound)
	}

	f.SetValue(raw)
	clipped := f.Value != raw
	length := len(f.Value)
	current := n.current
	subs := n.snapshot()
	n.mu.Unlock()

	logging.LogFieldUpdate(n.session, current.ID, fieldID, length, clipped)
	n.publish(current, subs)
	return nil
}

// HandleFunctionKey dispatches the PF key numbered key on the active screen.
//
// HELP changes nothing and END goes back; both are handled here. Every other
// action is returned for the caller to carry out. A missing or disabled key
// returns ErrKeyNotAssigned.
func (n *Navigator) HandleFunctionKey(key int) (screen.Action, error) {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return screen.Action{}, ErrNoActiveScreen
	}
	screenID := n.current.ID
	pf := n.current.Footer.Key(key)
	n.mu.Unlock()

	if pf == nil || !pf.Enabled {
		return screen.Action{}, fmt.Errorf("PF%d on %s: %w", key, screenID, ErrKeyNotAssigned)
	}

	logging.LogFunctionKey(n.session, screenID, key, pf.Action.String())
	return pf.Action, n.dispatch(pf.Action)
}

// Submit handles the ENTER key. A matching route wins over the screen's
// enter action. Built-in actions are handled as in HandleFunctionKey.
func (n *Navigator) Submit() (screen.Action, error) {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return screen.Action{}, ErrNoActiveScreen
	}
	screenID := n.current.ID
	action, ok := n.current.Route()
	if !ok && n.current.Enter != nil {
		action, ok = *n.current.Enter, true
	}
	n.mu.Unlock()

	if !ok {
		return screen.Action{}, fmt.Errorf("ENTER on %s: %w", screenID, ErrKeyNotAssigned)
	}

	logging.LogFunctionKey(n.session, screenID, 0, action.String())
	return action, n.dispatch(action)
}

// dispatch carries out the built-in actions.
func (n *Navigator) dispatch(a screen.Action) error {
	switch a.Kind {
	case screen.ActionHelp:
		return nil
	case screen.ActionEnd:
		return n.GoBack()
	case screen.ActionNext, screen.ActionPrevious, screen.ActionNavigate,
		screen.ActionExit, screen.ActionCustom:
		// Interpreted by the caller
		return nil
	default:
		return fmt.Errorf("unknown action kind %v", a.Kind)
	}
}

// Step navigates delta screens forward or backward in catalog order relative
// to the active screen, wrapping around at either end.
func (n *Navigator) Step(delta int) error {
	current := n.CurrentID()
	if current == "" {
		return ErrNoActiveScreen
	}

	ids := n.catalog.IDs()
	idx := -1
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("screen %q: %w", current, ErrScreenNotFound)
	}

	next := ((idx+delta)%len(ids) + len(ids)) % len(ids)
	return n.NavigateTo(ids[next])
}

// ValidationResult is the outcome of validating one field.
type ValidationResult struct {
	Valid   bool
	FieldID string
	Message string
}

// ValidateField checks a field on the active screen. An INPUT field must not
// be blank.
func (n *Navigator) ValidateField(fieldID string) ValidationResult {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return ValidationResult{FieldID: fieldID, Message: "No screen loaded"}
	}
	f := n.current.Field(fieldID)
	if f == nil {
		return ValidationResult{FieldID: fieldID, Message: "Field not found"}
	}
	if f.Type.Editable() && strings.TrimSpace(f.Value) == "" {
		return ValidationResult{FieldID: fieldID, Message: "Field is required"}
	}
	return ValidationResult{Valid: true, FieldID: fieldID}
}
