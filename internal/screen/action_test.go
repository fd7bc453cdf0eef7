package screen

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		tag  string
		want Action
	}{
		{"HELP", Help},
		{"help", Help},
		{"END", End},
		{"NEXT", Next},
		{"NXT", Next},
		{"PREV", Previous},
		{"EXIT", Exit},
		{"navigate:MENU-01", NavigateTo("MENU-01")},
		{"NAVIGATE: INV-001 ", NavigateTo("INV-001")},
		{"SAVE", Custom("SAVE")},
		{"PAGE_UP", Custom("PAGE_UP")},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseAction(tt.tag)
			if err != nil {
				t.Fatalf("ParseAction(%q) error = %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, tag := range []string{"", "   ", "navigate:", "navigate:  "} {
		if _, err := ParseAction(tag); err == nil {
			t.Errorf("ParseAction(%q) should fail", tag)
		}
	}
}

func TestActionString(t *testing.T) {
	for _, a := range []Action{Help, End, Next, Previous, Exit, NavigateTo("A"), Custom("SAVE")} {
		parsed, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q) error = %v", a.String(), err)
		}
		if parsed != a {
			t.Errorf("ParseAction(%q) = %+v, want %+v", a.String(), parsed, a)
		}
	}
}

func TestActionKindString(t *testing.T) {
	if ActionNavigate.String() != "Navigate" {
		t.Errorf("ActionNavigate.String() = %q", ActionNavigate.String())
	}
	if got := ActionKind(99).String(); got != "ActionKind(99)" {
		t.Errorf("ActionKind(99).String() = %q", got)
	}
}
