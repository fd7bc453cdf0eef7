// Package terminal implements the full-screen green screen session.
//
// The display is a fixed 24x80 character grid built by Draw from the active
// screen of a navigator.Navigator. Model is a Bubble Tea model that feeds
// keystrokes to the navigator and redraws the grid after every change.
//
// # Layout
//
//   - Rows 1-3: system id, menu indicators, date, title, transaction id,
//     time, received type and page counter
//   - Fields at their own row and column, labels at Field.LabelColumn,
//     values padded to the field length
//   - Row 23: operator messages (cleared by the next keystroke)
//   - Row 24: the PF key legend
//
// # Keys
//
//	F1-F12             PF1-PF12
//	Shift+F1-F8        PF13-PF20 (sent as F13-F20 by xterm)
//	Alt+F1-F12         PF13-PF24
//	Esc                PF3
//	Tab / Shift+Tab    next / previous INPUT field
//	Enter              send the screen
//	Ctrl+C             quit
//
// Typed characters are uppercased and limited to single-byte ASCII before
// they reach the navigator. A PF key with no enabled action, and typing on
// a screen without INPUT fields, do nothing, as on a real terminal.
//
// # Usage Example
//
//	nav := navigator.New(cat)
//	err := terminal.Run(nav, terminal.Options{
//	    StartScreen: "SS6T-6",
//	    Theme:       "amber",
//	    Clock:       true,
//	})
package terminal
