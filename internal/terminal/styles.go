package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/greenscreen/internal/version"
)

// AppName is shown in the window title.
const AppName = "GREENSCREEN"

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Phosphor colours
var (
	GreenPhosphor = lipgloss.Color("#33FF33")
	AmberPhosphor = lipgloss.Color("#FFB000")
	WhitePhosphor = lipgloss.Color("#E8E8E8")

	BackgroundColor = lipgloss.Color("#000000")
	SubtleColor     = lipgloss.Color("#626262") // Gray, used for the help line
	ErrorColor      = lipgloss.Color("#FF3333")
)

// fieldColors maps the 3270 base colours a field may ask for.
var fieldColors = map[string]lipgloss.Color{
	"blue":      lipgloss.Color("#5C8DFF"),
	"red":       lipgloss.Color("#FF3333"),
	"pink":      lipgloss.Color("#FF66CC"),
	"green":     GreenPhosphor,
	"turquoise": lipgloss.Color("#40E0D0"),
	"cyan":      lipgloss.Color("#40E0D0"),
	"yellow":    lipgloss.Color("#FFFF33"),
	"white":     lipgloss.Color("#FFFFFF"),
}

// Theme styles each cell class of the grid.
type Theme struct {
	Name   string
	styles map[Class]lipgloss.Style
}

// NewTheme builds a theme around one phosphor colour. Unknown names fall
// back to green.
func NewTheme(name string) Theme {
	fg := GreenPhosphor
	switch name {
	case "amber":
		fg = AmberPhosphor
	case "white":
		fg = WhitePhosphor
	default:
		name = "green"
	}

	base := lipgloss.NewStyle().Foreground(fg).Background(BackgroundColor)

	return Theme{
		Name: name,
		styles: map[Class]lipgloss.Style{
			ClassBlank:     base,
			ClassHeader:    base.Bold(true),
			ClassLabel:     base,
			ClassDisplay:   base.Bold(true),
			ClassProtected: base.Faint(true),
			ClassInput:     base.Underline(true),
			ClassCursor:    lipgloss.NewStyle().Foreground(BackgroundColor).Background(fg),
			ClassStatus:    base.Bold(true),
			ClassFooter:    base,
		},
	}
}

// Style returns the style for a cell. A known field colour replaces the
// phosphor colour, except on the cursor cell.
func (t Theme) Style(class Class, color string) lipgloss.Style {
	s, ok := t.styles[class]
	if !ok {
		s = t.styles[ClassBlank]
	}
	if class == ClassCursor || color == "" {
		return s
	}
	if c, ok := fieldColors[color]; ok {
		return s.Foreground(c)
	}
	return s
}

// Common styles
var (
	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Frame around the 80x24 display when the window is larger
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(SubtleColor)

	// Shown instead of the display when the window is too small
	TooSmallStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// RenderApplicationContainer places the display and the help line in the
// middle of the terminal window. With an unknown window size (0x0) the
// display is returned as is.
func RenderApplicationContainer(display string, helpText string, terminalWidth int, terminalHeight int) string {
	content := display
	if terminalWidth >= 82 && terminalHeight >= 27 {
		content = FrameStyle.Render(display)
	}
	if helpText != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, HelpStyle.Render(helpText))
	}

	if terminalWidth == 0 || terminalHeight == 0 {
		return content
	}

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
