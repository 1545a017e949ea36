package exalge

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// PatternSet is a set of patterns that keeps insertion order.
//
// Patterns are unique by canonical key. The zero value is an empty set ready to use.
// A PatternSet is not safe for concurrent mutation, the set algebra methods
// return new sets and can be used to share snapshots.
type PatternSet struct {
	keys  []string // insertion order
	index map[string]Pattern
}

// NewPatternSet creates a set from patterns. Absent patterns are ignored.
func NewPatternSet(patterns ...Pattern) *PatternSet {
	s := new(PatternSet)
	s.AddAll(patterns...)
	return s
}

// Len returns the number of patterns in the set.
func (s *PatternSet) Len() int { return len(s.keys) }

// IsEmpty reports whether the set has no pattern.
func (s *PatternSet) IsEmpty() bool { return len(s.keys) == 0 }

// Contains reports whether p is in the set.
func (s *PatternSet) Contains(p Pattern) bool {
	_, ok := s.index[p.key]
	return ok
}

// ContainsAll reports whether every pattern of t is in s.
func (s *PatternSet) ContainsAll(t *PatternSet) bool {
	for _, k := range t.keys {
		if _, ok := s.index[k]; !ok {
			return false
		}
	}
	return true
}

// Add appends p to the set and reports whether the set changed.
func (s *PatternSet) Add(p Pattern) (bool, error) {
	if p.IsZero() {
		return false, invalidArgument("absent pattern")
	}
	return s.add(p), nil
}

func (s *PatternSet) add(p Pattern) bool {
	if _, ok := s.index[p.key]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]Pattern)
	}
	s.index[p.key] = p
	s.keys = append(s.keys, p.key)
	return true
}

// AddAll appends patterns to the set, silently ignoring absent ones, and reports whether the set changed.
func (s *PatternSet) AddAll(patterns ...Pattern) bool {
	changed := false
	for _, p := range patterns {
		if p.IsZero() {
			continue
		}
		if s.add(p) {
			changed = true
		}
	}
	return changed
}

// Remove removes p from the set and reports whether the set changed.
func (s *PatternSet) Remove(p Pattern) bool {
	if _, ok := s.index[p.key]; !ok {
		return false
	}
	delete(s.index, p.key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == p.key })
	return true
}

// retain keeps only the patterns for which keep returns true, preserving order.
func (s *PatternSet) retain(keep func(string) bool) bool {
	n := len(s.keys)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool {
		if keep(k) {
			return false
		}
		delete(s.index, k)
		return true
	})
	return len(s.keys) != n
}

// Clear removes all patterns.
func (s *PatternSet) Clear() {
	s.keys = nil
	s.index = nil
}

// All returns an iterator over the patterns in insertion order.
func (s *PatternSet) All() iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for _, k := range s.keys {
			if !yield(s.index[k]) {
				return
			}
		}
	}
}

// Patterns returns the patterns in insertion order.
func (s *PatternSet) Patterns() []Pattern { return slices.Collect(s.All()) }

// Equal reports whether s and t hold the same patterns in the same order.
func (s *PatternSet) Equal(t *PatternSet) bool { return slices.Equal(s.keys, t.keys) }

// Clone returns a copy of s. Patterns are immutable, so they are shared.
func (s *PatternSet) Clone() *PatternSet {
	return &PatternSet{
		keys:  slices.Clone(s.keys),
		index: maps.Clone(s.index),
	}
}

// Union returns a new set with the patterns of s followed by the patterns of t that are not in s.
func (s *PatternSet) Union(t *PatternSet) *PatternSet {
	u := s.Clone()
	u.AddAll(t.Patterns()...)
	return u
}

// Addition is the concatenation of s and t. It is the same as Union, since a set holds no duplicates.
func (s *PatternSet) Addition(t *PatternSet) *PatternSet { return s.Union(t) }

// Intersection returns a new set with the patterns of s that are also in t, in the order of s.
func (s *PatternSet) Intersection(t *PatternSet) *PatternSet {
	u := s.Clone()
	u.retain(func(k string) bool {
		_, ok := t.index[k]
		return ok
	})
	return u
}

// Difference returns a new set with the patterns of s that are not in t, in the order of s.
func (s *PatternSet) Difference(t *PatternSet) *PatternSet {
	u := s.Clone()
	u.retain(func(k string) bool {
		_, ok := t.index[k]
		return !ok
	})
	return u
}

// Matches reports whether any pattern of the set matches b.
func (s *PatternSet) Matches(b Base) (bool, error) {
	if b.IsZero() {
		return false, invalidArgument("absent base")
	}
	return s.matches(b), nil
}

func (s *PatternSet) matches(b Base) bool {
	for p := range s.All() {
		if p.matches(b) {
			return true
		}
	}
	return false
}

// Select returns the bases matched by at least one pattern of the set, in the given order.
func (s *PatternSet) Select(bases ...Base) ([]Base, error) {
	var selected []Base
	for _, b := range bases {
		ok, err := s.Matches(b)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, b)
		}
	}
	return selected, nil
}

// Translate returns the translations of b by every pattern of the set, in set order.
// Patterns do not need to match b. Equal translations are returned once.
func (s *PatternSet) Translate(b Base) ([]Base, error) {
	if b.IsZero() {
		return nil, invalidArgument("absent base")
	}
	seen := make(map[string]bool, s.Len())
	var bases []Base
	for p := range s.All() {
		t := p.translate(b)
		if seen[t.key] {
			continue
		}
		seen[t.key] = true
		bases = append(bases, t)
	}
	return bases, nil
}

func (s *PatternSet) String() string {
	return "[" + strings.Join(s.keys, ", ") + "]"
}
