package terminal

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings of the terminal
type keyMap struct {
	Enter    key.Binding
	Next     key.Binding
	Prev     key.Binding
	End      key.Binding
	Help     key.Binding
	Quit     key.Binding
	Function key.Binding // Help line only, see pfKeys
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Next, k.Function, k.End, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Next, k.Prev},
		{k.Function, k.End, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end (PF3)"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Function: key.NewBinding(
			key.WithKeys("f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12"),
			key.WithHelp("f1-f12", "PF keys"),
		),
	}
}

// pfKeys maps key names to PF key numbers. Shift+F1..F8 arrive as F13..F20
// on xterm-style terminals; alt+F1..F12 reach PF13..PF24 everywhere.
var pfKeys = func() map[string]int {
	m := make(map[string]int, 44)
	for n := 1; n <= 12; n++ {
		m[fmt.Sprintf("f%d", n)] = n
		m[fmt.Sprintf("alt+f%d", n)] = n + 12
	}
	for n := 13; n <= 20; n++ {
		m[fmt.Sprintf("f%d", n)] = n
	}
	return m
}()

// functionKey returns the PF key number for a key name.
func functionKey(name string) (int, bool) {
	n, ok := pfKeys[name]
	return n, ok
}
