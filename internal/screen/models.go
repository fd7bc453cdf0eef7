package screen

import (
	"fmt"
	"strings"
)

// Terminal geometry of a 3270 model 2 display.
const (
	Rows    = 24
	Columns = 80
)

// FieldType represents how a field behaves on the screen
type FieldType string

const (
	FieldDisplay   FieldType = "DISPLAY"   // Read-only output
	FieldInput     FieldType = "INPUT"     // Editable by the operator
	FieldLabel     FieldType = "LABEL"     // Static text
	FieldProtected FieldType = "PROTECTED" // Visible, never editable
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldDisplay, FieldInput, FieldLabel, FieldProtected:
		return true
	}
	return false
}

// Editable reports whether the operator can type into a field of this type.
func (t FieldType) Editable() bool {
	return t == FieldInput
}

// Field is a positioned, typed, fixed-length unit of text on a screen.
type Field struct {
	ID       string    `yaml:"id"`
	Row      int       `yaml:"row"`                 // 1-based
	Col      int       `yaml:"col"`                 // 1-based
	Label    string    `yaml:"label,omitempty"`     // Optional caption
	LabelCol int       `yaml:"label_col,omitempty"` // Caption column when not directly before the field
	Value    string    `yaml:"value"`
	Length   int       `yaml:"length"` // Maximum value length
	Type     FieldType `yaml:"type"`
	Color    string    `yaml:"color,omitempty"`
	PadChar  string    `yaml:"pad_char,omitempty"`
	TabIndex int       `yaml:"tab_index,omitempty"`
	Hidden   bool      `yaml:"hidden,omitempty"` // Non-display attribute (passwords)
}

// LabelColumn returns the column where the field's label starts.
// Without an explicit LabelCol the label ends one cell before the field.
func (f *Field) LabelColumn() int {
	if f.LabelCol > 0 {
		return f.LabelCol
	}
	col := f.Col - len([]rune(f.Label)) - 1
	if col < 1 {
		return 1
	}
	return col
}

// Pad returns the character used to fill the unused part of the field.
func (f *Field) Pad() rune {
	if f.PadChar != "" {
		return []rune(f.PadChar)[0]
	}
	if f.Type.Editable() {
		return '_'
	}
	return ' '
}

// SetValue assigns v clipped to the field length.
func (f *Field) SetValue(v string) {
	f.Value = Clip(v, f.Length)
}

// PFKey is a program function key bound to an action on a screen.
type PFKey struct {
	Key     int    `yaml:"key"` // 1-24
	Label   string `yaml:"label"`
	Action  Action `yaml:"action"`
	Enabled bool   `yaml:"enabled"`
}

// Display returns the footer text for the key.
func (k PFKey) Display() string {
	return "PF: " + k.Label
}

// Header holds the display-only metadata on the first rows of a screen.
type Header struct {
	SystemID      string   `yaml:"system_id"`
	MenuItems     []string `yaml:"menu_items,omitempty"`
	Date          string   `yaml:"date,omitempty"`
	Time          string   `yaml:"time,omitempty"`
	TransactionID string   `yaml:"transaction_id,omitempty"`
	ReceivedType  string   `yaml:"received_type,omitempty"`
	PageNumber    int      `yaml:"page_number,omitempty"`
	TotalPages    int      `yaml:"total_pages,omitempty"`
	Balance       string   `yaml:"balance,omitempty"`
}

// MenuDisplay returns the menu indicators as shown in the header.
func (h Header) MenuDisplay() string {
	return strings.Join(h.MenuItems, "   ")
}

// PageDisplay returns the page counter, or "" when the screen is not paged.
func (h Header) PageDisplay() string {
	if h.PageNumber == 0 {
		return ""
	}
	return fmt.Sprintf("Page %4d of %d", h.PageNumber, h.TotalPages)
}

// Footer holds the PF keys in display order.
type Footer struct {
	PFKeys []PFKey `yaml:"pf_keys"`
}

// Key returns the PF key with the given number, or nil.
func (f Footer) Key(n int) *PFKey {
	for i := range f.PFKeys {
		if f.PFKeys[i].Key == n {
			return &f.PFKeys[i]
		}
	}
	return nil
}

// Screen is one full-screen state of the terminal session.
type Screen struct {
	ID          string  `yaml:"screen_id"`
	Title       string  `yaml:"title"`
	Header      Header  `yaml:"header"`
	Fields      []Field `yaml:"fields"`
	Footer      Footer  `yaml:"footer"`
	DocType     string  `yaml:"doc_type,omitempty"`
	MailCode    string  `yaml:"mail_code,omitempty"`
	Description string  `yaml:"description,omitempty"`

	// Enter is dispatched when the operator presses ENTER and no route matches.
	Enter *Action `yaml:"enter,omitempty"`
	// RouteField names the field whose value selects an entry of Routes on ENTER.
	RouteField string            `yaml:"route_field,omitempty"`
	Routes     map[string]Action `yaml:"routes,omitempty"`
}

// Field returns the field with the given id, or nil.
// The returned pointer aliases the screen's field.
func (s *Screen) Field(id string) *Field {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return &s.Fields[i]
		}
	}
	return nil
}

// Route returns the action selected by the current value of RouteField.
func (s *Screen) Route() (Action, bool) {
	if s.RouteField == "" || len(s.Routes) == 0 {
		return Action{}, false
	}
	f := s.Field(s.RouteField)
	if f == nil {
		return Action{}, false
	}
	a, ok := s.Routes[strings.ToUpper(strings.TrimSpace(f.Value))]
	return a, ok
}

// Clone returns a deep copy of the screen.
func (s *Screen) Clone() *Screen {
	if s == nil {
		return nil
	}
	c := *s
	c.Header.MenuItems = append([]string(nil), s.Header.MenuItems...)
	c.Fields = append([]Field(nil), s.Fields...)
	c.Footer.PFKeys = append([]PFKey(nil), s.Footer.PFKeys...)
	if s.Enter != nil {
		enter := *s.Enter
		c.Enter = &enter
	}
	if s.Routes != nil {
		c.Routes = make(map[string]Action, len(s.Routes))
		for k, v := range s.Routes {
			c.Routes[k] = v
		}
	}
	return &c
}

// Clip truncates s to at most n runes.
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
