// Package navigator tracks which screen of a terminal session is active.
//
// A Navigator has two states: no screen active (before the first navigation)
// and one screen active. It keeps a stack of previously visited screen ids
// for back navigation and is the only place where field values change once
// a screen has been registered.
//
// # Usage Example
//
//	nav := navigator.New(cat)
//	unsubscribe := nav.Subscribe(func(s *screen.Screen) {
//	    // re-render s
//	})
//	defer unsubscribe()
//
//	_ = nav.NavigateTo("MENU-01")
//	_ = nav.UpdateField("selection", "2")
//	action, err := nav.Submit()
//
// # Change Notifications
//
// Subscribe has replay-of-one semantics: a new subscriber is called at once
// with the current screen. After that every operation that changes state
// calls each subscriber exactly once, in subscription order, before it
// returns. Field edits publish the same *screen.Screen again; subscribers
// that need to detect changes must compare content, not identity.
//
// # Errors
//
// Operations never leave partial state behind. ErrScreenNotFound is the only
// error a caller usually reports; the others (see IsAbsorbed) are what a
// physical terminal ignores silently.
//
// # Thread Safety
//
// State is guarded by a mutex and subscribers run after it is released, so
// they may call back into the navigator. Ordering of notifications across
// goroutines is not defined: drive a navigator from a single goroutine (the
// Bubble Tea update loop does this) to keep one mutation, one publish.
package navigator
