// Package screen defines the data model of a block-mode terminal screen.
//
// A Screen is a fixed 80x24 layout made of a header, an ordered list of
// positioned fields and a footer of PF (program function) keys. Screens are
// plain data: they are declared once (usually in YAML) and only the Value of
// their fields changes afterwards.
//
// # Fields
//
// Every field has a 1-based row and column, a maximum length and a type:
//
//   - INPUT: editable by the operator
//   - DISPLAY: output written by the host
//   - LABEL: static text
//   - PROTECTED: visible but never editable
//
// The value of a field never exceeds its length. Operator input passes
// through Sanitize, which mirrors what a 3270 keyboard can produce:
// uppercase, single-byte characters, clipped at the field boundary.
//
// # PF Keys
//
// PF keys carry an Action decided when the screen is defined:
//
//	action, err := screen.ParseAction("navigate:MENU-01")
//	// action.Kind == screen.ActionNavigate, action.Target == "MENU-01"
//
// The set of action kinds is closed, so code dispatching on them can be
// exhaustive. Anything not recognised is kept as ActionCustom with its tag.
package screen
