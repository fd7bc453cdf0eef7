package navigator

import (
	"errors"
	"testing"

	"github.com/muurk/greenscreen/internal/catalog"
	"github.com/muurk/greenscreen/internal/screen"
)

// newTestNavigator registers screen A (no fields) and screen B (one INPUT
// field f1 of length 5).
func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()

	c := catalog.New()
	c.Register(&screen.Screen{
		ID:    "A",
		Title: "Screen A",
		Footer: screen.Footer{PFKeys: []screen.PFKey{
			{Key: 1, Label: "1-HELP", Action: screen.Help, Enabled: true},
			{Key: 3, Label: "3-END", Action: screen.End, Enabled: true},
			{Key: 5, Label: "5-B", Action: screen.NavigateTo("B"), Enabled: true},
			{Key: 9, Label: "9-PRINT", Action: screen.Custom("PRINT"), Enabled: false},
		}},
	})
	c.Register(&screen.Screen{
		ID:     "B",
		Title:  "Screen B",
		Fields: []screen.Field{{ID: "f1", Row: 5, Col: 10, Length: 5, Type: screen.FieldInput}},
		Footer: screen.Footer{PFKeys: []screen.PFKey{
			{Key: 3, Label: "3-END", Action: screen.End, Enabled: true},
		}},
	})
	return New(c)
}

// recorder collects published screen ids.
type recorder struct {
	got []string
}

func (r *recorder) record(s *screen.Screen) {
	if s == nil {
		r.got = append(r.got, "<nil>")
		return
	}
	r.got = append(r.got, s.ID)
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScenario(t *testing.T) {
	nav := newTestNavigator(t)

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatalf("NavigateTo(A) error = %v", err)
	}
	if nav.CurrentID() != "A" {
		t.Fatalf("current = %q, want A", nav.CurrentID())
	}

	if err := nav.NavigateTo("B"); err != nil {
		t.Fatalf("NavigateTo(B) error = %v", err)
	}
	if nav.CurrentID() != "B" {
		t.Fatalf("current = %q, want B", nav.CurrentID())
	}
	if h := nav.History(); !equalIDs(h, []string{"A"}) {
		t.Fatalf("history = %v, want [A]", h)
	}

	if err := nav.UpdateField("f1", "HELLOWORLD"); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if v := nav.Current().Field("f1").Value; v != "HELLO" {
		t.Fatalf("f1 = %q, want HELLO", v)
	}

	if err := nav.GoBack(); err != nil {
		t.Fatalf("GoBack() error = %v", err)
	}
	if nav.CurrentID() != "A" {
		t.Fatalf("current = %q, want A", nav.CurrentID())
	}
	if h := nav.History(); len(h) != 0 {
		t.Fatalf("history = %v, want empty", h)
	}
}

func TestNavigateToUnknown(t *testing.T) {
	nav := newTestNavigator(t)
	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}

	err := nav.NavigateTo("NOPE")
	if !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("NavigateTo(NOPE) error = %v, want ErrScreenNotFound", err)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("current = %q, want A", nav.CurrentID())
	}
	if h := nav.History(); len(h) != 0 {
		t.Errorf("history = %v, want empty", h)
	}
}

func TestNavigateToUnknownBeforeFirstScreen(t *testing.T) {
	nav := newTestNavigator(t)

	if err := nav.NavigateTo("NOPE"); !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("NavigateTo(NOPE) error = %v", err)
	}
	if nav.Current() != nil {
		t.Error("no screen should be active")
	}
}

func TestGoBackEmptyHistory(t *testing.T) {
	nav := newTestNavigator(t)

	if err := nav.GoBack(); err != nil {
		t.Errorf("GoBack() before any navigation error = %v", err)
	}
	if nav.Current() != nil {
		t.Error("GoBack() should not activate a screen")
	}

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if err := nav.GoBack(); err != nil {
		t.Errorf("GoBack() with empty history error = %v", err)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("current = %q, want A", nav.CurrentID())
	}
}

func TestGoBackUnresolvedEntry(t *testing.T) {
	c := catalog.New()
	c.Register(&screen.Screen{ID: "A"})
	c.Register(&screen.Screen{ID: "B"})
	nav := New(c)

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}

	// Simulate an inconsistent history entry
	nav.mu.Lock()
	nav.history[0] = "GONE"
	nav.mu.Unlock()

	err := nav.GoBack()
	if !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("GoBack() error = %v, want ErrScreenNotFound", err)
	}
	if nav.CurrentID() != "B" {
		t.Errorf("current = %q, want B", nav.CurrentID())
	}
	if h := nav.History(); len(h) != 0 {
		t.Errorf("unresolved entry should be discarded, history = %v", h)
	}
}

func TestSelfNavigationPushesDuplicate(t *testing.T) {
	nav := newTestNavigator(t)
	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	if err := nav.UpdateField("f1", "ABC"); err != nil {
		t.Fatal(err)
	}

	before := nav.Current()
	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}

	if nav.Current() != before {
		t.Error("self-navigation should keep the same screen")
	}
	if v := nav.Current().Field("f1").Value; v != "ABC" {
		t.Errorf("f1 = %q, want ABC", v)
	}
	if h := nav.History(); !equalIDs(h, []string{"B"}) {
		t.Errorf("history = %v, want [B]", h)
	}

	// Back returns to the same screen
	if err := nav.GoBack(); err != nil {
		t.Fatal(err)
	}
	if nav.CurrentID() != "B" {
		t.Errorf("current = %q, want B", nav.CurrentID())
	}
}

func TestNavigationKeepsEdits(t *testing.T) {
	nav := newTestNavigator(t)
	for _, step := range []string{"B", "A"} {
		if err := nav.NavigateTo(step); err != nil {
			t.Fatal(err)
		}
		if step == "B" {
			if err := nav.UpdateField("f1", "KEEP"); err != nil {
				t.Fatal(err)
			}
		}
	}

	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	if v := nav.Current().Field("f1").Value; v != "KEEP" {
		t.Errorf("f1 = %q after revisit, want KEEP", v)
	}
}

func TestUpdateFieldErrors(t *testing.T) {
	nav := newTestNavigator(t)

	if err := nav.UpdateField("f1", "X"); !errors.Is(err, ErrNoActiveScreen) {
		t.Errorf("UpdateField() before navigation error = %v", err)
	}

	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	nav.Subscribe(r.record)

	err := nav.UpdateField("nope", "X")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("UpdateField(nope) error = %v, want ErrFieldNotFound", err)
	}
	if !IsAbsorbed(err) {
		t.Error("ErrFieldNotFound should be absorbed")
	}
	if v := nav.Current().Field("f1").Value; v != "" {
		t.Errorf("f1 = %q, want unchanged", v)
	}
	if len(r.got) != 1 {
		t.Errorf("failed update published %d times, want only the replay", len(r.got)-1)
	}
}

func TestSubscribeReplayAndPublish(t *testing.T) {
	nav := newTestNavigator(t)

	early := &recorder{}
	nav.Subscribe(early.record)
	if !equalIDs(early.got, []string{"<nil>"}) {
		t.Fatalf("replay before navigation = %v, want [<nil>]", early.got)
	}

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}

	late := &recorder{}
	unsubscribe := nav.Subscribe(late.record)
	if !equalIDs(late.got, []string{"A"}) {
		t.Fatalf("replay = %v, want [A]", late.got)
	}

	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	if err := nav.UpdateField("f1", "X"); err != nil {
		t.Fatal(err)
	}
	if err := nav.GoBack(); err != nil {
		t.Fatal(err)
	}
	_ = nav.NavigateTo("NOPE")
	_ = nav.GoBack() // empty history

	want := []string{"<nil>", "A", "B", "B", "A"}
	if !equalIDs(early.got, want) {
		t.Errorf("early subscriber got %v, want %v", early.got, want)
	}
	if !equalIDs(late.got, []string{"A", "B", "B", "A"}) {
		t.Errorf("late subscriber got %v", late.got)
	}

	unsubscribe()
	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	if len(late.got) != 4 {
		t.Errorf("unsubscribed subscriber still notified: %v", late.got)
	}
	if len(early.got) != 6 {
		t.Errorf("early subscriber got %v", early.got)
	}
}

func TestSubscribersCalledInOrder(t *testing.T) {
	nav := newTestNavigator(t)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		nav.Subscribe(func(s *screen.Screen) {
			if s != nil {
				order = append(order, i)
			}
		})
	}

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestSubscriberMayCallBack(t *testing.T) {
	nav := newTestNavigator(t)

	var seen string
	nav.Subscribe(func(s *screen.Screen) {
		if s != nil {
			seen = nav.CurrentID() + "/" + s.ID
		}
	})

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if seen != "A/A" {
		t.Errorf("seen = %q, want A/A", seen)
	}
}

func TestHandleFunctionKey(t *testing.T) {
	nav := newTestNavigator(t)

	if _, err := nav.HandleFunctionKey(1); !errors.Is(err, ErrNoActiveScreen) {
		t.Errorf("HandleFunctionKey() before navigation error = %v", err)
	}

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}

	// HELP: no state change
	a, err := nav.HandleFunctionKey(1)
	if err != nil || a != screen.Help {
		t.Errorf("PF1 = %+v, %v", a, err)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("current = %q after HELP", nav.CurrentID())
	}

	// Navigate actions are returned to the caller
	a, err = nav.HandleFunctionKey(5)
	if err != nil || a != screen.NavigateTo("B") {
		t.Errorf("PF5 = %+v, %v", a, err)
	}
	if nav.CurrentID() != "A" {
		t.Error("navigator should not execute navigate actions itself")
	}

	// Disabled and missing keys are absorbed
	if _, err := nav.HandleFunctionKey(9); !errors.Is(err, ErrKeyNotAssigned) {
		t.Errorf("disabled PF9 error = %v", err)
	}
	if _, err := nav.HandleFunctionKey(12); !IsAbsorbed(err) {
		t.Errorf("missing PF12 error = %v", err)
	}
}

func TestHandleFunctionKeyEndGoesBack(t *testing.T) {
	nav := newTestNavigator(t)
	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}

	a, err := nav.HandleFunctionKey(3)
	if err != nil {
		t.Fatalf("PF3 error = %v", err)
	}
	if a != screen.End {
		t.Errorf("PF3 action = %+v, want End", a)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("current = %q after END, want A", nav.CurrentID())
	}

	// END with empty history is a no-op
	if _, err := nav.HandleFunctionKey(3); err != nil {
		t.Errorf("PF3 with empty history error = %v", err)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("current = %q, want A", nav.CurrentID())
	}
}

func TestSubmit(t *testing.T) {
	c := catalog.New()
	enter := screen.NavigateTo("MENU")
	c.Register(&screen.Screen{ID: "LOGIN", Enter: &enter})
	c.Register(&screen.Screen{
		ID:         "MENU",
		Fields:     []screen.Field{{ID: "sel", Row: 5, Col: 10, Length: 2, Type: screen.FieldInput}},
		RouteField: "sel",
		Routes: map[string]screen.Action{
			"1": screen.NavigateTo("LOGIN"),
			"9": screen.End,
		},
	})
	nav := New(c)

	if err := nav.NavigateTo("LOGIN"); err != nil {
		t.Fatal(err)
	}
	a, err := nav.Submit()
	if err != nil || a != enter {
		t.Fatalf("Submit() on LOGIN = %+v, %v", a, err)
	}

	if err := nav.NavigateTo("MENU"); err != nil {
		t.Fatal(err)
	}
	if _, err := nav.Submit(); !errors.Is(err, ErrKeyNotAssigned) {
		t.Errorf("Submit() without selection error = %v", err)
	}

	if err := nav.UpdateField("sel", "1"); err != nil {
		t.Fatal(err)
	}
	a, err = nav.Submit()
	if err != nil || a != screen.NavigateTo("LOGIN") {
		t.Errorf("Submit() with selection 1 = %+v, %v", a, err)
	}

	// Built-in END routes are carried out
	if err := nav.UpdateField("sel", "9"); err != nil {
		t.Fatal(err)
	}
	if _, err := nav.Submit(); err != nil {
		t.Fatal(err)
	}
	if nav.CurrentID() != "LOGIN" {
		t.Errorf("current = %q after END route, want LOGIN", nav.CurrentID())
	}
}

func TestStep(t *testing.T) {
	nav := newTestNavigator(t)

	if err := nav.Step(1); !errors.Is(err, ErrNoActiveScreen) {
		t.Errorf("Step() before navigation error = %v", err)
	}

	if err := nav.NavigateTo("A"); err != nil {
		t.Fatal(err)
	}
	if err := nav.Step(1); err != nil {
		t.Fatal(err)
	}
	if nav.CurrentID() != "B" {
		t.Errorf("Step(1) from A = %q, want B", nav.CurrentID())
	}
	if err := nav.Step(1); err != nil {
		t.Fatal(err)
	}
	if nav.CurrentID() != "A" {
		t.Errorf("Step(1) from B should wrap to A, got %q", nav.CurrentID())
	}
	if err := nav.Step(-1); err != nil {
		t.Fatal(err)
	}
	if nav.CurrentID() != "B" {
		t.Errorf("Step(-1) from A should wrap to B, got %q", nav.CurrentID())
	}
}

func TestValidateField(t *testing.T) {
	nav := newTestNavigator(t)

	if r := nav.ValidateField("f1"); r.Valid || r.Message != "No screen loaded" {
		t.Errorf("ValidateField() before navigation = %+v", r)
	}

	if err := nav.NavigateTo("B"); err != nil {
		t.Fatal(err)
	}
	if r := nav.ValidateField("nope"); r.Valid || r.Message != "Field not found" {
		t.Errorf("ValidateField(nope) = %+v", r)
	}
	if r := nav.ValidateField("f1"); r.Valid || r.Message != "Field is required" {
		t.Errorf("ValidateField(f1) empty = %+v", r)
	}

	if err := nav.UpdateField("f1", "X"); err != nil {
		t.Fatal(err)
	}
	if r := nav.ValidateField("f1"); !r.Valid {
		t.Errorf("ValidateField(f1) = %+v, want valid", r)
	}
}

func TestSessionID(t *testing.T) {
	a := newTestNavigator(t)
	b := newTestNavigator(t)
	if a.Session() == "" || a.Session() == b.Session() {
		t.Errorf("session ids should be unique and non-empty: %q %q", a.Session(), b.Session())
	}
}
