package navigator

import (
	"errors"

	"github.com/muurk/greenscreen/internal/catalog"
)

// Errors reported by Navigator operations. None of them leave the navigator
// in a partially updated state.
var (
	// ErrScreenNotFound is returned when a navigation target is not in the catalog.
	ErrScreenNotFound = catalog.ErrScreenNotFound
	// ErrFieldNotFound is returned when the active screen has no such field.
	ErrFieldNotFound = errors.New("field not found")
	// ErrNoActiveScreen is returned by field and key operations before the first navigation.
	ErrNoActiveScreen = errors.New("no active screen")
	// ErrKeyNotAssigned is returned for a PF key (or ENTER) with no enabled action.
	ErrKeyNotAssigned = errors.New("key not assigned")
)

// IsAbsorbed reports whether err is one a physical terminal would swallow
// without any visible reaction: typing into a nonexistent position, pressing
// an unassigned key, or any input before a screen is shown.
func IsAbsorbed(err error) bool {
	return errors.Is(err, ErrFieldNotFound) ||
		errors.Is(err, ErrNoActiveScreen) ||
		errors.Is(err, ErrKeyNotAssigned)
}
