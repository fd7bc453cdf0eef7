package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/muurk/greenscreen/internal/catalog"
	"github.com/muurk/greenscreen/internal/screen"
)

func TestNewGridIsBlank(t *testing.T) {
	lines := NewGrid().Lines()
	if len(lines) != screen.Rows {
		t.Fatalf("got %d lines, want %d", len(lines), screen.Rows)
	}
	for i, l := range lines {
		if l != strings.Repeat(" ", screen.Columns) {
			t.Errorf("line %d = %q, want blanks", i+1, l)
		}
	}
}

func TestPutClipsAtLastColumn(t *testing.T) {
	g := NewGrid()
	next := g.Put(1, 78, "ABCDE", ClassLabel, "")
	if next != 81 {
		t.Errorf("Put() = %d, want 81", next)
	}
	if got := g.Lines()[0][77:]; got != "ABC" {
		t.Errorf("row 1 tail = %q, want ABC", got)
	}

	// Out of range rows are ignored
	g.Put(0, 1, "X", ClassLabel, "")
	g.Put(25, 1, "X", ClassLabel, "")
}

func TestPutWideRunes(t *testing.T) {
	g := NewGrid()
	g.Put(1, 1, "日本", ClassLabel, "")

	line := g.Lines()[0]
	if w := runewidth.StringWidth(line); w != screen.Columns {
		t.Errorf("line width = %d, want %d", w, screen.Columns)
	}
	if !strings.HasPrefix(line, "日本 ") {
		t.Errorf("line = %q", line)
	}

	// Overwriting the right half of a wide rune blanks the left half
	g.Put(1, 2, "A", ClassLabel, "")
	line = g.Lines()[0]
	if !strings.HasPrefix(line, " A本") {
		t.Errorf("line = %q, want \" A本...\"", line)
	}
	if w := runewidth.StringWidth(line); w != screen.Columns {
		t.Errorf("line width = %d, want %d", w, screen.Columns)
	}
}

func TestDrawField(t *testing.T) {
	s := &screen.Screen{
		ID: "T",
		Fields: []screen.Field{
			{ID: "name", Row: 5, Col: 10, Label: "NAME:", Value: "AB", Length: 4, Type: screen.FieldInput},
			{ID: "pw", Row: 6, Col: 10, Value: "SECRET", Length: 6, Type: screen.FieldInput, Hidden: true},
			{ID: "info", Row: 7, Col: 1, Value: "INFO", Length: 6, Type: screen.FieldDisplay},
			{ID: "dots", Row: 8, Col: 1, Value: "X", Length: 3, Type: screen.FieldDisplay, PadChar: "."},
		},
	}
	lines := Draw(s, Layout{}).Lines()

	// Label ends one cell before the field
	if got := lines[4][3:14]; got != "NAME: AB__ " {
		t.Errorf("row 5 = %q", got)
	}
	if got := lines[5][9:16]; got != "______ " {
		t.Errorf("hidden field = %q, want pad only", got)
	}
	if got := lines[6][:7]; got != "INFO   " {
		t.Errorf("row 7 = %q", got)
	}
	if got := lines[7][:4]; got != "X.. " {
		t.Errorf("row 8 = %q", got)
	}
}

func TestDrawCursor(t *testing.T) {
	s := &screen.Screen{
		ID:     "T",
		Fields: []screen.Field{{ID: "f", Row: 2, Col: 5, Value: "ABC", Length: 3, Type: screen.FieldInput}},
	}

	g := Draw(s, Layout{Focus: "f", Cursor: 1})
	if c := g.Cell(2, 6); c.Class != ClassCursor || c.Rune != 'B' {
		t.Errorf("cell(2,6) = %+v, want cursor on B", c)
	}

	// A cursor past the value stays on the last cell of the field
	g = Draw(s, Layout{Focus: "f", Cursor: 3})
	if c := g.Cell(2, 7); c.Class != ClassCursor {
		t.Errorf("cell(2,7) = %+v, want cursor", c)
	}
}

func TestDrawHeaderFooterAndStatus(t *testing.T) {
	s := &screen.Screen{
		ID:    "T",
		Title: "Demo",
		Header: screen.Header{
			SystemID:      "SYS1",
			MenuItems:     []string{"M", "B"},
			TransactionID: "T21",
			ReceivedType:  "RT",
			PageNumber:    2,
			TotalPages:    7,
		},
		Footer: screen.Footer{PFKeys: []screen.PFKey{
			{Key: 1, Label: "1-HELP"},
			{Key: 3, Label: "3-END"},
		}},
	}
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	lines := Draw(s, Layout{Now: now, Status: "X SYSTEM"}).Lines()

	if !strings.HasPrefix(lines[0], "SYS1") || !strings.HasSuffix(lines[0], "2024-03-05") {
		t.Errorf("row 1 = %q", lines[0])
	}
	if !strings.Contains(lines[0], "M   B") {
		t.Errorf("row 1 missing menu: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "T21") || !strings.HasSuffix(lines[1], "14:07:09") {
		t.Errorf("row 2 = %q", lines[1])
	}
	if !strings.Contains(lines[1], "DEMO") {
		t.Errorf("row 2 missing title: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "RT") || !strings.HasSuffix(lines[2], "Page    2 of 7") {
		t.Errorf("row 3 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[StatusRow-1], "X SYSTEM") {
		t.Errorf("status row = %q", lines[StatusRow-1])
	}
	if want := "PF: 1-HELP  PF: 3-END"; !strings.HasPrefix(lines[FooterRow-1], want+" ") {
		t.Errorf("footer row = %q, want prefix %q", lines[FooterRow-1], want)
	}
}

func TestDrawFixedHeaderTime(t *testing.T) {
	s := &screen.Screen{ID: "T", Header: screen.Header{Date: "1999-12-31", Time: "23:59:59"}}
	lines := Draw(s, Layout{Now: time.Now()}).Lines()

	if !strings.HasSuffix(lines[0], "1999-12-31") || !strings.HasSuffix(lines[1], "23:59:59") {
		t.Errorf("fixed date/time not kept: %q / %q", lines[0], lines[1])
	}
}

func TestDrawNoScreen(t *testing.T) {
	lines := Draw(nil, Layout{Status: "NO SCREEN"}).Lines()
	if !strings.HasPrefix(lines[StatusRow-1], "NO SCREEN") {
		t.Errorf("status row = %q", lines[StatusRow-1])
	}
}

func TestBuiltinScreensFitTheGrid(t *testing.T) {
	c := catalog.New()
	if _, err := c.LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}

	for _, id := range c.IDs() {
		s, _ := c.Lookup(id)
		lines := Draw(s, Layout{Now: time.Now()}).Lines()
		if len(lines) != screen.Rows {
			t.Errorf("%s: %d lines", id, len(lines))
		}
		for i, l := range lines {
			if w := runewidth.StringWidth(l); w != screen.Columns {
				t.Errorf("%s line %d width = %d", id, i+1, w)
			}
		}
	}
}

func TestRenderKeepsText(t *testing.T) {
	g := NewGrid()
	g.Put(1, 1, "HELLO", ClassHeader, "")
	g.Put(2, 1, "CYAN", ClassDisplay, "cyan")

	for _, name := range []string{"green", "amber", "white"} {
		out := NewTheme(name).Name
		if out != name {
			t.Errorf("NewTheme(%q).Name = %q", name, out)
		}
		rendered := g.Render(NewTheme(name))
		if !strings.Contains(rendered, "HELLO") || !strings.Contains(rendered, "CYAN") {
			t.Errorf("%s render lost text", name)
		}
		if n := strings.Count(rendered, "\n"); n != screen.Rows-1 {
			t.Errorf("%s render has %d newlines, want %d", name, n, screen.Rows-1)
		}
	}

	if NewTheme("purple").Name != "green" {
		t.Error("unknown theme should fall back to green")
	}
}
