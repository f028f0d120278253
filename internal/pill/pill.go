// Package pill defines the pill data model shared by the planner, the reactor and the TUI.
package pill

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyID is returned when a pill has no id.
	ErrEmptyID = errors.New("pill id is empty")
	// ErrDuplicateID is returned when two pills share an id.
	ErrDuplicateID = errors.New("duplicate pill id")
)

// Pill is a small inline chip. Pills are values and are never mutated after creation.
type Pill struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
}

// Validate checks that every pill has a non-empty, unique id.
func Validate(pills []Pill) error {
	seen := make(map[string]bool, len(pills))
	for i, p := range pills {
		if p.ID == "" {
			return fmt.Errorf("pill at index %d: %w", i, ErrEmptyID)
		}
		if seen[p.ID] {
			return fmt.Errorf("pill %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}
	return nil
}

// ToggleSet is the set of pill ids currently in the toggled (header) state.
// The zero value is an empty set ready to use.
type ToggleSet struct {
	ids map[string]struct{}
}

// NewToggleSet creates a set holding the given ids.
func NewToggleSet(ids ...string) ToggleSet {
	s := ToggleSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is toggled on.
func (s ToggleSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of toggled ids.
func (s ToggleSet) Len() int {
	return len(s.ids)
}

// IDs returns the toggled ids in sorted order.
func (s ToggleSet) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Toggle flips id and reports whether it is now on.
func (s *ToggleSet) Toggle(id string) bool {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Clone returns an independent copy of the set.
func (s ToggleSet) Clone() ToggleSet {
	return NewToggleSet(s.IDs()...)
}

// Equal reports whether both sets hold the same ids.
func (s ToggleSet) Equal(other ToggleSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
