package exalge

import (
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"
)

// Accumulator receives values tagged by bases.
//
// PutValue inserts v for b, or adds v to the value already stored for b.
type Accumulator interface {
	PutValue(b Base, v decimal.Decimal)
}

// Algebra is an element of an exchange algebra: a sum of values tagged by bases.
//
// Bases are kept in insertion order. Zero values are kept, they record that a
// base took part in an operation.
type Algebra struct {
	keys   []string
	bases  map[string]Base
	values map[string]decimal.Decimal
}

// NewAlgebra creates an empty algebra element.
func NewAlgebra() *Algebra {
	return &Algebra{
		bases:  make(map[string]Base),
		values: make(map[string]decimal.Decimal),
	}
}

// PutValue adds v to the value of b, creating the entry if needed.
func (a *Algebra) PutValue(b Base, v decimal.Decimal) {
	if cur, ok := a.values[b.key]; ok {
		a.values[b.key] = cur.Add(v)
		return
	}
	a.keys = append(a.keys, b.key)
	a.bases[b.key] = b
	a.values[b.key] = v
}

// Value returns the value of b and true, or zero and false when b is not present.
func (a *Algebra) Value(b Base) (decimal.Decimal, bool) {
	v, ok := a.values[b.key]
	return v, ok
}

// Len returns the number of bases.
func (a *Algebra) Len() int { return len(a.keys) }

// All returns an iterator over the (base, value) pairs in insertion order.
func (a *Algebra) All() iter.Seq2[Base, decimal.Decimal] {
	return func(yield func(Base, decimal.Decimal) bool) {
		for _, k := range a.keys {
			if !yield(a.bases[k], a.values[k]) {
				return
			}
		}
	}
}

// Bases returns the bases in insertion order.
func (a *Algebra) Bases() []Base {
	bases := make([]Base, 0, len(a.keys))
	for _, k := range a.keys {
		bases = append(bases, a.bases[k])
	}
	return bases
}

// Sum returns the exact sum of all values.
func (a *Algebra) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range a.values {
		sum = sum.Add(v)
	}
	return sum
}

// Equal reports whether a and b hold equal values for the same bases, regardless of order.
func (a *Algebra) Equal(b *Algebra) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.values {
		w, ok := b.values[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Project returns a new element holding the entries of a whose base matches a pattern of s.
func (a *Algebra) Project(s *PatternSet) *Algebra {
	p := NewAlgebra()
	for b, v := range a.All() {
		if s.matches(b) {
			p.PutValue(b, v)
		}
	}
	return p
}

func (a *Algebra) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range a.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%s", k, a.values[k])
	}
	sb.WriteString("}")
	return sb.String()
}
