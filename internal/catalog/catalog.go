package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/muurk/greenscreen/internal/screen"
)

// ErrScreenNotFound is returned when a screen id is not registered.
var ErrScreenNotFound = errors.New("screen not found")

// Catalog maps screen ids to screen definitions.
// Entries are added or replaced, never removed.
type Catalog struct {
	mu      sync.RWMutex
	screens map[string]*screen.Screen
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		screens: make(map[string]*screen.Screen),
	}
}

// Register stores s under s.ID, replacing any earlier screen with that id.
func (c *Catalog) Register(s *screen.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screens[s.ID] = s
}

// Lookup returns the screen registered under id.
// The returned screen is the catalog's own instance, so field edits made
// through it persist for the rest of the session.
func (c *Catalog) Lookup(id string) (*screen.Screen, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.screens[id]
	if !ok {
		return nil, fmt.Errorf("screen %q: %w", id, ErrScreenNotFound)
	}
	return s, nil
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.screens[id]
	return ok
}

// IDs returns the registered screen ids in sorted order.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.screens))
	for id := range c.screens {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered screens.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.screens)
}

// CheckTargets reports every navigate action, on a PF key, a route or the
// ENTER action, whose target screen is not registered. Unresolved targets
// are legal at runtime; the navigator reports them when they are used.
func (c *Catalog) CheckTargets() error {
	var errs []error
	for _, id := range c.IDs() {
		s, err := c.Lookup(id)
		if err != nil {
			continue
		}

		check := func(where string, a screen.Action) {
			if a.Kind == screen.ActionNavigate && !c.Has(a.Target) {
				errs = append(errs, fmt.Errorf("screen %s: %s navigates to unknown screen %q", id, where, a.Target))
			}
		}
		for _, k := range s.Footer.PFKeys {
			check(fmt.Sprintf("PF%d", k.Key), k.Action)
		}
		routes := make([]string, 0, len(s.Routes))
		for v := range s.Routes {
			routes = append(routes, v)
		}
		sort.Strings(routes)
		for _, v := range routes {
			check(fmt.Sprintf("route %q", v), s.Routes[v])
		}
		if s.Enter != nil {
			check("ENTER", *s.Enter)
		}
	}
	return errors.Join(errs...)
}
