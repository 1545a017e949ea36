package exalge

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// RatioTable is a named distribution plan: an ordered mapping from destination
// patterns to ratios.
//
// The total ratio is cached: Put and Remove do not update it, call
// UpdateTotalRatio before relying on a normalized distribution.
// A RatioTable is not safe for concurrent mutation, share a Clone instead.
type RatioTable struct {
	name   string
	keys   []string // insertion order
	index  map[string]Pattern
	ratios map[string]decimal.Decimal
	total  decimal.Decimal
}

// NewRatioTable creates an empty ratio table.
func NewRatioTable(name string) *RatioTable {
	return &RatioTable{
		name:   name,
		index:  make(map[string]Pattern),
		ratios: make(map[string]decimal.Decimal),
	}
}

// Name returns the name of the table.
func (t *RatioTable) Name() string { return t.name }

// Len returns the number of entries.
func (t *RatioTable) Len() int { return len(t.keys) }

// Put sets the ratio of p. An existing entry keeps its position.
// The total ratio is not updated.
func (t *RatioTable) Put(p Pattern, ratio decimal.Decimal) error {
	if p.IsZero() {
		return invalidArgument("absent pattern")
	}
	if _, ok := t.index[p.key]; !ok {
		t.keys = append(t.keys, p.key)
		t.index[p.key] = p
	}
	t.ratios[p.key] = ratio
	return nil
}

// Get returns the ratio of p and true, or zero and false.
func (t *RatioTable) Get(p Pattern) (decimal.Decimal, bool) {
	r, ok := t.ratios[p.key]
	return r, ok
}

// Remove removes p and reports whether it was present.
// The total ratio is not updated.
func (t *RatioTable) Remove(p Pattern) bool {
	if _, ok := t.index[p.key]; !ok {
		return false
	}
	delete(t.index, p.key)
	delete(t.ratios, p.key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == p.key })
	return true
}

// TotalRatio returns the cached total ratio.
func (t *RatioTable) TotalRatio() decimal.Decimal { return t.total }

// UpdateTotalRatio recomputes the cached total ratio as the exact sum of all ratios.
func (t *RatioTable) UpdateTotalRatio() decimal.Decimal {
	total := decimal.Zero
	for _, k := range t.keys {
		total = total.Add(t.ratios[k])
	}
	t.total = total
	return total
}

// All returns an iterator over (pattern, ratio) entries in insertion order.
func (t *RatioTable) All() iter.Seq2[Pattern, decimal.Decimal] {
	return func(yield func(Pattern, decimal.Decimal) bool) {
		for _, k := range t.keys {
			if !yield(t.index[k], t.ratios[k]) {
				return
			}
		}
	}
}

// Patterns returns the patterns in insertion order.
func (t *RatioTable) Patterns() *PatternSet {
	s := new(PatternSet)
	for p := range t.All() {
		s.add(p)
	}
	return s
}

// Clone returns a copy of t, cached total included.
func (t *RatioTable) Clone() *RatioTable {
	return &RatioTable{
		name:   t.name,
		keys:   slices.Clone(t.keys),
		index:  maps.Clone(t.index),
		ratios: maps.Clone(t.ratios),
		total:  t.total,
	}
}

// Distribute splits value across the destinations of the table and returns them in a new Algebra.
//
// Each entry produces the destination base pattern.Translate(src). When
// normalized is true the destination value is value / TotalRatio() * ratio, the
// division rounded to DivisionPrecision significant digits half to even.
// Otherwise it is value * ratio. Zero values are kept.
func (t *RatioTable) Distribute(src Base, value decimal.Decimal, normalized bool) (*Algebra, error) {
	a := NewAlgebra()
	if err := t.DistributeInto(a, src, value, normalized); err != nil {
		return nil, err
	}
	return a, nil
}

// DistributeInto is like Distribute but adds the destination values to acc.
// Nothing is added when an error is returned.
func (t *RatioTable) DistributeInto(acc Accumulator, src Base, value decimal.Decimal, normalized bool) error {
	if acc == nil {
		return invalidArgument("absent accumulator")
	}
	if src.IsZero() {
		return invalidArgument("absent source base")
	}
	if t.Len() == 0 {
		return fmt.Errorf("%w: ratio table %q is empty", ErrInvalidState, t.name)
	}

	factor := value
	if normalized {
		unit, err := divide(value, t.total)
		if err != nil {
			return fmt.Errorf("cannot normalize ratio table %q: %w", t.name, err)
		}
		factor = unit
	}
	for p, ratio := range t.All() {
		acc.PutValue(p.translate(src), factor.Mul(ratio))
	}
	return nil
}
