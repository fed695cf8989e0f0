// Package rules defines context filters as data and the engine applying
// them to match tables.
package rules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yourusername/lay-scout/internal/models"
)

// Constraint is one closed interval over a derived signal. Both bounds are
// inclusive.
type Constraint struct {
	Signal models.SignalID `yaml:"signal"`
	Low    float64         `yaml:"low"`
	High   float64         `yaml:"high"`
}

// Matches reports whether a signal set satisfies the constraint. A signal
// absent from the set never matches.
func (c Constraint) Matches(set models.SignalSet) bool {
	v, ok := set.Value(c.Signal)
	if !ok {
		return false
	}
	return v >= c.Low && v <= c.High
}

// ContextFilter is a named conjunction of interval constraints. It is
// stateless data: the engine interprets it, nothing is tied to code.
type ContextFilter struct {
	Name        string       `yaml:"name"`
	Constraints []Constraint `yaml:"constraints"`
}

// Validate checks the filter is well formed and references only catalog
// signals.
func (f ContextFilter) Validate(known func(models.SignalID) bool) error {
	if f.Name == "" {
		return fmt.Errorf("context filter without a name")
	}
	if len(f.Constraints) == 0 {
		return fmt.Errorf("context filter %s has no constraints", f.Name)
	}
	for _, c := range f.Constraints {
		if !known(c.Signal) {
			return fmt.Errorf("context filter %s references unknown signal %s", f.Name, c.Signal)
		}
		if c.Low > c.High {
			return fmt.Errorf("context filter %s constraint on %s has low > high", f.Name, c.Signal)
		}
	}
	return nil
}

// Catalog holds the named filter set for one run.
type Catalog struct {
	mu      sync.RWMutex
	filters map[string]ContextFilter
}

// NewCatalog builds a catalog from a filter list. Duplicate names keep the
// last definition.
func NewCatalog(filters []ContextFilter) *Catalog {
	c := &Catalog{filters: make(map[string]ContextFilter, len(filters))}
	for _, f := range filters {
		c.filters[f.Name] = f
	}
	return c
}

// Resolve returns the filter for name, or an UnknownFilterError.
func (c *Catalog) Resolve(name string) (ContextFilter, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.filters[name]
	if !ok {
		return ContextFilter{}, &models.UnknownFilterError{Name: name}
	}
	return f, nil
}

// Add inserts or replaces a filter.
func (c *Catalog) Add(f ContextFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters[f.Name] = f
}

// Names returns every filter name, sorted, which fixes the evaluation
// order of the mining cross product.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.filters))
	for name := range c.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of filters in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.filters)
}
