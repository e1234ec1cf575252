// Package catalog holds named, lazily compiled regular expressions loaded
// from YAML or TOML files.
//
// A catalog is the usual home for the many patterns a program declares up
// front and only partly uses. Loading a catalog reads names, patterns and
// engine choices; no pattern is compiled until it is looked up and used.
//
// YAML:
//
//	patterns:
//	  - name: date
//	    pattern: '(\d{4})-(\d{2})-(\d{2})'
//	  - name: word
//	    pattern: '[[:alpha:]]+'
//	    backend: posix
//
// TOML:
//
//	[[patterns]]
//	name = "date"
//	pattern = '(\d{4})-(\d{2})-(\d{2})'
package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/coregx/lazyregex"
	"github.com/coregx/lazyregex/backend"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDuplicateName is returned when a name is registered twice.
	ErrDuplicateName = errors.New("catalog: duplicate pattern name")

	// ErrEmptyName is returned for entries without a name.
	ErrEmptyName = errors.New("catalog: empty pattern name")
)

// Entry is one named pattern as written in a catalog file.
type Entry struct {
	Name    string `yaml:"name" toml:"name"`
	Pattern string `yaml:"pattern" toml:"pattern"`
	Backend string `yaml:"backend,omitempty" toml:"backend,omitempty"`
}

// Config controls how a Catalog compiles and reports.
type Config struct {
	// Backend names the engine for entries that do not pick one.
	// See backend.Lookup. Default: coregex.
	Backend string

	// Logger receives load and validation events.
	// Default: a logger that discards everything.
	Logger logrus.FieldLogger
}

// Catalog maps names to lazily compiled regular expressions.
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	entries  map[string]*lazyregex.Regex
	order    []string
	fallback string
	log      logrus.FieldLogger
}

// New returns an empty Catalog.
func New(config Config) *Catalog {
	log := config.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Catalog{
		entries:  make(map[string]*lazyregex.Regex),
		fallback: config.Backend,
		log:      log.WithField("component", "catalog"),
	}
}

// Add registers pattern under name. The pattern is not compiled; an empty
// backend name selects the catalog default.
func (c *Catalog) Add(name, pattern, backendName string) error {
	if name == "" {
		return ErrEmptyName
	}
	if backendName == "" {
		backendName = c.fallback
	}
	compile, err := backend.Lookup(backendName)
	if err != nil {
		return fmt.Errorf("catalog: pattern %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.entries[name] = lazyregex.NewWithCompiler(pattern, compile)
	c.order = append(c.order, name)

	c.log.WithFields(logrus.Fields{
		"name":    name,
		"backend": backendName,
	}).Debug("pattern registered")
	return nil
}

// AddEntries registers every entry, stopping at the first error.
func (c *Catalog) AddEntries(entries []Entry) error {
	for _, e := range entries {
		if err := c.Add(e.Name, e.Pattern, e.Backend); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the Regex registered under name.
func (c *Catalog) Get(name string) (*lazyregex.Regex, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	re, ok := c.entries[name]
	return re, ok
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

// Len returns the number of registered patterns.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Compiled returns the sorted names of patterns that have been compiled.
func (c *Catalog) Compiled() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	for name, re := range c.entries {
		if re.Compiled() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Validate compiles every pattern and returns the failures joined with
// errors.Join, or nil.
//
// Validate is opt-in. It compiles patterns that would otherwise have waited
// for first use; a pattern that fails here still fails, again, on use.
func (c *Catalog) Validate() error {
	c.mu.RLock()
	order := append([]string(nil), c.order...)
	entries := make([]*lazyregex.Regex, len(order))
	for i, name := range order {
		entries[i] = c.entries[name]
	}
	c.mu.RUnlock()

	var errs []error
	for i, re := range entries {
		if _, err := re.Copy(); err != nil {
			c.log.WithError(err).WithField("name", order[i]).Warn("pattern does not compile")
			errs = append(errs, fmt.Errorf("catalog: pattern %q: %w", order[i], err))
		}
	}
	return errors.Join(errs...)
}
