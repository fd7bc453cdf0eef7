package terminal

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/muurk/greenscreen/internal/screen"
)

// Rows used by the grid outside the field area.
const (
	StatusRow = screen.Rows - 1
	FooterRow = screen.Rows
)

// Class is the style class of a grid cell.
type Class int

const (
	ClassBlank     Class = iota // Unused cell
	ClassHeader                 // System id, title, date and time
	ClassLabel                  // Field captions and LABEL fields
	ClassDisplay                // DISPLAY field values
	ClassProtected              // PROTECTED field values
	ClassInput                  // INPUT field values and padding
	ClassCursor                 // Cursor position inside the focused field
	ClassStatus                 // Operator information on the status row
	ClassFooter                 // PF key legend
)

// Cell is one character position on the grid.
type Cell struct {
	Rune  rune
	Class Class
	Color string // Field colour override, "" for the theme default

	wide bool // Right half of a double-width rune
}

// Grid is a fixed 24x80 character display.
type Grid struct {
	cells [screen.Rows][screen.Columns]Cell
}

// Layout carries the per-frame state that is not part of the screen definition.
type Layout struct {
	Now    time.Time // Used when the header carries no fixed date or time
	Status string    // Operator message on the status row

	Focus  string // Id of the focused field, "" for none
	Cursor int    // Cursor offset inside the focused field
}

// NewGrid returns a blank grid.
func NewGrid() *Grid {
	g := &Grid{}
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Cell{Rune: ' '}
		}
	}
	return g
}

// Put writes text starting at the 1-based row and col and returns the column
// after the last cell written. Text past column 80 is dropped. Zero-width
// runes are skipped and double-width runes take two cells.
func (g *Grid) Put(row, col int, text string, class Class, color string) int {
	if row < 1 || row > screen.Rows || col < 1 {
		return col
	}
	cells := &g.cells[row-1]
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w-1 > screen.Columns {
			break
		}
		// Overwriting half of a double-width rune blanks the other half
		if cells[col-1].wide {
			cells[col-2] = Cell{Rune: ' '}
		}
		if end := col - 1 + w; end < screen.Columns && cells[end].wide {
			cells[end] = Cell{Rune: ' '}
		}
		cells[col-1] = Cell{Rune: r, Class: class, Color: color}
		if w == 2 {
			cells[col] = Cell{Class: class, Color: color, wide: true}
		}
		col += w
	}
	return col
}

// Cell returns the cell at the 1-based row and col.
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[row-1][col-1]
}

// Lines returns the plain text of the grid, one string per row, each
// exactly 80 cells wide.
func (g *Grid) Lines() []string {
	lines := make([]string, screen.Rows)
	for r := range g.cells {
		var b strings.Builder
		for _, c := range g.cells[r] {
			if c.wide {
				continue
			}
			b.WriteRune(c.Rune)
		}
		lines[r] = b.String()
	}
	return lines
}

// String returns the plain lines joined with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Render returns the grid styled with theme.
func (g *Grid) Render(theme Theme) string {
	var out strings.Builder
	for r := range g.cells {
		if r > 0 {
			out.WriteByte('\n')
		}

		var run strings.Builder
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(theme.Style(cur.Class, cur.Color).Render(run.String()))
			run.Reset()
		}

		for c, cell := range g.cells[r] {
			if cell.wide {
				continue
			}
			if c == 0 || cell.Class != cur.Class || cell.Color != cur.Color {
				flush()
				cur = cell
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return out.String()
}

// Draw lays out s on a new grid.
//
// Rows 1-3 hold the header, fields are drawn at their own positions, the
// status row shows layout.Status and the last row lists the PF keys.
func Draw(s *screen.Screen, layout Layout) *Grid {
	g := NewGrid()
	if s == nil {
		g.Put(StatusRow, 1, layout.Status, ClassStatus, "")
		return g
	}

	g.drawHeader(s, layout.Now)

	for i := range s.Fields {
		f := &s.Fields[i]
		cursor := -1
		if f.ID == layout.Focus {
			cursor = layout.Cursor
		}
		g.drawField(f, cursor)
	}

	g.Put(StatusRow, 1, layout.Status, ClassStatus, "")

	keys := make([]string, 0, len(s.Footer.PFKeys))
	for _, k := range s.Footer.PFKeys {
		keys = append(keys, k.Display())
	}
	g.Put(FooterRow, 1, strings.Join(keys, "  "), ClassFooter, "")

	return g
}

func (g *Grid) drawHeader(s *screen.Screen, now time.Time) {
	h := s.Header

	date := h.Date
	if date == "" && !now.IsZero() {
		date = screen.FormatDate(now)
	}
	clock := h.Time
	if clock == "" && !now.IsZero() {
		clock = screen.FormatTime(now)
	}

	// Row 1: system id, menu indicators, date
	g.Put(1, 1, h.SystemID, ClassHeader, "")
	g.putCentered(1, h.MenuDisplay(), ClassHeader)
	g.putRight(1, date, ClassHeader)

	// Row 2: transaction id, balance, title, time
	next := g.Put(2, 1, h.TransactionID, ClassHeader, "")
	if h.Balance != "" {
		g.Put(2, next+1, "BAL "+h.Balance, ClassHeader, "")
	}
	g.putCentered(2, strings.ToUpper(s.Title), ClassHeader)
	g.putRight(2, clock, ClassHeader)

	// Row 3: received type, page counter
	g.Put(3, 1, h.ReceivedType, ClassHeader, "")
	g.putRight(3, h.PageDisplay(), ClassHeader)
}

// drawField draws the caption and the padded value. cursor is the offset of
// the cursor inside the value, or -1.
func (g *Grid) drawField(f *screen.Field, cursor int) {
	if f.Label != "" {
		g.Put(f.Row, f.LabelColumn(), f.Label, ClassLabel, f.Color)
	}

	class := ClassDisplay
	switch f.Type {
	case screen.FieldInput:
		class = ClassInput
	case screen.FieldLabel:
		class = ClassLabel
	case screen.FieldProtected:
		class = ClassProtected
	}

	value := screen.Clip(f.Value, f.Length)
	if f.Hidden {
		value = ""
	}
	pad := f.Length - runewidth.StringWidth(value)
	if pad > 0 {
		value += strings.Repeat(string(f.Pad()), pad)
	}
	g.Put(f.Row, f.Col, value, class, f.Color)

	if cursor >= 0 {
		if cursor >= f.Length {
			cursor = f.Length - 1
		}
		col := f.Col + cursor
		if f.Row >= 1 && f.Row <= screen.Rows && col >= 1 && col <= screen.Columns {
			g.cells[f.Row-1][col-1].Class = ClassCursor
		}
	}
}

func (g *Grid) putCentered(row int, text string, class Class) {
	w := runewidth.StringWidth(text)
	if w == 0 {
		return
	}
	col := (screen.Columns-w)/2 + 1
	if col < 1 {
		col = 1
	}
	g.Put(row, col, text, class, "")
}

func (g *Grid) putRight(row int, text string, class Class) {
	w := runewidth.StringWidth(text)
	if w == 0 {
		return
	}
	col := screen.Columns - w + 1
	if col < 1 {
		col = 1
	}
	g.Put(row, col, text, class, "")
}
