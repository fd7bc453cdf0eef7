package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/greenscreen/internal/screen"
)

//go:embed screens/*.yaml
var defaultScreens embed.FS

// LoadError reports a screen definition file that could not be loaded.
type LoadError struct {
	File string // Definition file name
	Err  error  // Underlying parse or validation error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseScreens decodes every YAML document in data into a screen and
// validates it. A file may hold several screens separated by "---".
func ParseScreens(data []byte) ([]*screen.Screen, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var screens []*screen.Screen
	for {
		var s screen.Screen
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse screen definition: %w", err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid screen %q: %w", s.ID, err)
		}
		screens = append(screens, &s)
	}

	if len(screens) == 0 {
		return nil, errors.New("no screen definitions found")
	}
	return screens, nil
}

// LoadDefaults registers the screens shipped with the binary.
// Returns the number of screens registered.
func (c *Catalog) LoadDefaults() (int, error) {
	return c.loadFS(defaultScreens, "screens")
}

// LoadDir registers every *.yaml and *.yml file in dir. Screens with an id
// already in the catalog replace the earlier definition.
// Returns the number of screens registered.
func (c *Catalog) LoadDir(dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to open screens directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", dir)
	}
	return c.loadFS(os.DirFS(dir), ".")
}

// loadFS parses all definition files under root before registering any of
// them, so a bad file leaves the catalog untouched.
func (c *Catalog) loadFS(fsys fs.FS, root string) (int, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return 0, fmt.Errorf("failed to list screen definitions: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var loaded []*screen.Screen
	for _, name := range names {
		data, err := fs.ReadFile(fsys, pathJoin(root, name))
		if err != nil {
			return 0, &LoadError{File: name, Err: err}
		}
		screens, err := ParseScreens(data)
		if err != nil {
			return 0, &LoadError{File: name, Err: err}
		}
		loaded = append(loaded, screens...)
	}

	for _, s := range loaded {
		c.Register(s)
	}
	return len(loaded), nil
}

// pathJoin joins fs.FS paths, which always use forward slashes.
func pathJoin(root, name string) string {
	if root == "." || root == "" {
		return name
	}
	return root + "/" + name
}

// NewDefault creates a catalog holding the built-in screens, plus the
// definitions in extraDir when it is not empty.
func NewDefault(extraDir string) (*Catalog, error) {
	c := New()
	if _, err := c.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load built-in screens: %w", err)
	}
	if extraDir != "" {
		if _, err := c.LoadDir(extraDir); err != nil {
			return nil, err
		}
	}
	return c, nil
}
