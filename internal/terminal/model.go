package terminal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/greenscreen/internal/logging"
	"github.com/muurk/greenscreen/internal/navigator"
	"github.com/muurk/greenscreen/internal/screen"
)

// Options configures a terminal Model.
type Options struct {
	StartScreen string           // Navigated to when the navigator has no active screen
	Theme       string           // green, amber or white
	Clock       bool             // Tick the header clock once per second
	Now         func() time.Time // Defaults to time.Now
}

type tickMsg time.Time

// feed receives navigator notifications. It is shared by every copy of the
// model so that the subscription outlives Update's value receivers.
type feed struct {
	screen  *screen.Screen
	version int
}

// fieldEditor edits one INPUT field of the active screen.
type fieldEditor struct {
	id    string
	input textinput.Model
}

// Model is the Bubble Tea model of one terminal session.
type Model struct {
	nav         *navigator.Navigator
	feed        *feed
	unsubscribe func()
	seen        int
	shown       *screen.Screen

	// Editors for the INPUT fields of the shown screen, in tab order
	editors []fieldEditor
	focus   int

	theme  Theme
	clock  bool
	now    time.Time
	nowFn  func() time.Time
	status string

	keys keyMap
	help help.Model

	// UI state
	Width    int
	Height   int
	Quitting bool
}

// New creates a terminal model over nav. When nav has no active screen it
// navigates to opts.StartScreen; a missing start screen is reported on the
// status row.
func New(nav *navigator.Navigator, opts Options) Model {
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	f := &feed{}
	m := Model{
		nav:   nav,
		feed:  f,
		theme: NewTheme(opts.Theme),
		clock: opts.Clock,
		nowFn: nowFn,
		now:   nowFn(),
		keys:  newKeyMap(),
		help:  help.New(),
	}
	m.unsubscribe = nav.Subscribe(func(s *screen.Screen) {
		f.screen = s
		f.version++
	})

	if nav.Current() == nil && opts.StartScreen != "" {
		if err := nav.NavigateTo(opts.StartScreen); err != nil {
			m.status = notFound(opts.StartScreen)
		}
	}

	m.sync()
	return m
}

// Close stops listening to the navigator.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Screen returns the screen currently displayed.
func (m Model) Screen() *screen.Screen {
	return m.shown
}

// Status returns the operator message on the status row.
func (m Model) Status() string {
	return m.status
}

// FocusedField returns the id of the field with the cursor, or "".
func (m Model) FocusedField() string {
	if len(m.editors) == 0 {
		return ""
	}
	return m.editors[m.focus].id
}

// Init starts the clock
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(AppName + " " + AppVersion())}
	if m.clock {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Pick up navigation done outside the update loop
	m.sync()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.clock {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Operator messages clear on the next keystroke
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.End):
		return m.pressFunctionKey(3)

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submit()
	}

	if n, ok := functionKey(msg.String()); ok {
		return m.pressFunctionKey(n)
	}

	return m.edit(msg)
}

// pressFunctionKey sends PF key n to the navigator.
func (m Model) pressFunctionKey(n int) (tea.Model, tea.Cmd) {
	m.commit()
	action, err := m.nav.HandleFunctionKey(n)
	cmd := m.perform(fmt.Sprintf("PF%d", n), action, err)
	m.sync()
	return m, cmd
}

// submit commits the focused field and sends ENTER.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.commit()
	action, err := m.nav.Submit()
	cmd := m.perform("ENTER", action, err)
	m.sync()
	return m, cmd
}

// perform carries out the actions the navigator leaves to its caller.
func (m *Model) perform(source string, action screen.Action, err error) tea.Cmd {
	if err != nil {
		m.report(err, "")
		return nil
	}

	switch action.Kind {
	case screen.ActionHelp:
		m.status = m.helpText()
	case screen.ActionEnd:
		// Already carried out by the navigator
	case screen.ActionNext:
		m.report(m.nav.Step(1), "")
	case screen.ActionPrevious:
		m.report(m.nav.Step(-1), "")
	case screen.ActionNavigate:
		m.report(m.nav.NavigateTo(action.Target), action.Target)
	case screen.ActionExit:
		m.Quitting = true
		return tea.Quit
	case screen.ActionCustom:
		m.status = fmt.Sprintf("%s %s NOT SUPPORTED", source, action.Tag)
	}
	return nil
}

// report turns a navigator error into what the operator sees. Only a
// missing screen is visible; everything else is absorbed.
func (m *Model) report(err error, target string) {
	if err == nil {
		return
	}
	if errors.Is(err, navigator.ErrScreenNotFound) {
		m.status = notFound(target)
		return
	}
	if !navigator.IsAbsorbed(err) {
		logging.Warn("Terminal action failed",
			zap.String("session", m.nav.Session()),
			zap.Error(err),
		)
		return
	}
	logging.Debug("Input absorbed",
		zap.String("session", m.nav.Session()),
		zap.Error(err),
	)
}

func notFound(id string) string {
	if id == "" {
		return "X SYSTEM  SCREEN NOT FOUND"
	}
	return "X SYSTEM  SCREEN NOT FOUND: " + strings.ToUpper(id)
}

func (m Model) helpText() string {
	if m.shown == nil {
		return ""
	}
	text := m.shown.Description
	if text == "" {
		text = m.shown.Title
	}
	return "HELP: " + strings.ToUpper(text)
}

// edit passes a keystroke to the focused field editor and stores the result.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.editors) == 0 {
		return m, nil
	}

	e := &m.editors[m.focus]
	before := e.input.Value()

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)

	v := screen.Normalize(e.input.Value())
	if v != e.input.Value() {
		e.input.SetValue(v)
	}
	if v != before {
		m.report(m.nav.UpdateField(e.id, v), "")
		m.sync()
	}

	return m, cmd
}

// commit stores the trimmed value of the focused field.
func (m *Model) commit() {
	if len(m.editors) == 0 {
		return
	}
	e := &m.editors[m.focus]
	v := screen.Sanitize(e.input.Value(), e.input.CharLimit)
	if v == e.input.Value() {
		return
	}
	e.input.SetValue(v)
	m.report(m.nav.UpdateField(e.id, v), "")
	m.sync()
}

// moveFocus commits the focused field and moves delta fields in tab order.
func (m *Model) moveFocus(delta int) {
	if len(m.editors) == 0 {
		return
	}
	m.commit()
	m.editors[m.focus].input.Blur()
	n := len(m.editors)
	m.focus = ((m.focus+delta)%n + n) % n
	m.editors[m.focus].input.Focus()
	m.editors[m.focus].input.CursorEnd()
}

// sync applies navigator notifications received since the last call.
// A new screen gets fresh editors; the same screen only has values refreshed
// so the cursor stays where it is.
func (m *Model) sync() {
	if m.feed.version == m.seen {
		return
	}
	m.seen = m.feed.version

	s := m.feed.screen
	if s != m.shown {
		m.shown = s
		m.editors = buildEditors(s)
		m.focus = 0
		return
	}

	for i := range m.editors {
		e := &m.editors[i]
		if f := s.Field(e.id); f != nil && f.Value != e.input.Value() {
			e.input.SetValue(f.Value)
		}
	}
}

// buildEditors creates one focused-on-demand editor per INPUT field, ordered
// by tab index (unset last), then row, then column.
func buildEditors(s *screen.Screen) []fieldEditor {
	if s == nil {
		return nil
	}

	fields := make([]*screen.Field, 0, len(s.Fields))
	for i := range s.Fields {
		if s.Fields[i].Type.Editable() {
			fields = append(fields, &s.Fields[i])
		}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		a, b := fields[i], fields[j]
		if ta, tb := tabOrder(a), tabOrder(b); ta != tb {
			return ta < tb
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	editors := make([]fieldEditor, 0, len(fields))
	for _, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = f.Length
		if f.Hidden {
			in.EchoMode = textinput.EchoNone
		}
		in.SetValue(f.Value)
		editors = append(editors, fieldEditor{id: f.ID, input: in})
	}
	if len(editors) > 0 {
		editors[0].input.Focus()
		editors[0].input.CursorEnd()
	}
	return editors
}

func tabOrder(f *screen.Field) int {
	if f.TabIndex <= 0 {
		return int(^uint(0) >> 1)
	}
	return f.TabIndex
}

// Grid lays out the current frame.
func (m Model) Grid() *Grid {
	layout := Layout{Now: m.now, Status: m.status}
	if len(m.editors) > 0 {
		e := m.editors[m.focus]
		layout.Focus = e.id
		layout.Cursor = e.input.Position()
	}
	return Draw(m.shown, layout)
}

// View renders the display
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	if m.Width > 0 && m.Height > 0 && (m.Width < screen.Columns || m.Height < screen.Rows) {
		return TooSmallStyle.Render(fmt.Sprintf(
			"Terminal is %dx%d, need at least %dx%d",
			m.Width, m.Height, screen.Columns, screen.Rows,
		))
	}

	helpText := ""
	if m.Height == 0 || m.Height > screen.Rows {
		helpText = m.help.View(m.keys)
	}
	return RenderApplicationContainer(m.Grid().Render(m.theme), helpText, m.Width, m.Height)
}

// Run shows the terminal full screen until the operator quits.
func Run(nav *navigator.Navigator, opts Options) error {
	m := New(nav, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
