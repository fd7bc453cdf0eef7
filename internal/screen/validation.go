package screen

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the structure of a screen definition.
// Returns every problem found joined into one error, or nil.
func (s *Screen) Validate() error {
	var errs []error

	if s.ID == "" {
		errs = append(errs, errors.New("screen_id cannot be empty"))
	}

	seen := make(map[string]bool, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if err := ValidateField(f); err != nil {
			errs = append(errs, err)
		}
		if f.ID != "" && seen[f.ID] {
			errs = append(errs, fmt.Errorf("field %q: duplicate id", f.ID))
		}
		seen[f.ID] = true
	}

	keys := make(map[int]bool, len(s.Footer.PFKeys))
	for _, k := range s.Footer.PFKeys {
		if k.Key < 1 || k.Key > 24 {
			errs = append(errs, fmt.Errorf("PF key %d: must be 1-24", k.Key))
		}
		if keys[k.Key] {
			errs = append(errs, fmt.Errorf("PF key %d: defined twice", k.Key))
		}
		keys[k.Key] = true
	}

	if s.RouteField != "" {
		if f := s.Field(s.RouteField); f == nil {
			errs = append(errs, fmt.Errorf("route_field %q: no such field", s.RouteField))
		} else if !f.Type.Editable() {
			errs = append(errs, fmt.Errorf("route_field %q: must be an INPUT field", s.RouteField))
		}
	} else if len(s.Routes) > 0 {
		errs = append(errs, errors.New("routes defined without a route_field"))
	}
	for sel := range s.Routes {
		if sel != strings.ToUpper(strings.TrimSpace(sel)) {
			errs = append(errs, fmt.Errorf("route %q: selections must be uppercase without spaces", sel))
		}
	}

	return errors.Join(errs...)
}

// ValidateField checks that a field fits the 80x24 grid and honours its length.
func ValidateField(f *Field) error {
	if f.ID == "" {
		return fmt.Errorf("field at row %d col %d: id cannot be empty", f.Row, f.Col)
	}
	if !f.Type.Valid() {
		return fmt.Errorf("field %q: unknown type %q", f.ID, f.Type)
	}
	if f.Length <= 0 {
		return fmt.Errorf("field %q: length must be positive, got %d", f.ID, f.Length)
	}
	if f.Row < 1 || f.Row > Rows {
		return fmt.Errorf("field %q: row must be 1-%d, got %d", f.ID, Rows, f.Row)
	}
	if f.Col < 1 || f.Col > Columns {
		return fmt.Errorf("field %q: col must be 1-%d, got %d", f.ID, Columns, f.Col)
	}
	if end := f.Col + f.Length - 1; end > Columns {
		return fmt.Errorf("field %q: ends at column %d, past column %d", f.ID, end, Columns)
	}
	if n := len([]rune(f.Value)); n > f.Length {
		return fmt.Errorf("field %q: value has %d characters, length is %d", f.ID, n, f.Length)
	}
	if len([]rune(f.PadChar)) > 1 {
		return fmt.Errorf("field %q: pad_char must be a single character", f.ID)
	}
	return nil
}
