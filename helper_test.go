package exalge

import (
	"testing"

	"github.com/shopspring/decimal"
)

// mustBase is a helper for test to create a base from its slots.
func mustBase(t testing.TB, values ...string) Base {
	t.Helper()
	b, err := NewBase(values...)
	if err != nil {
		t.Fatalf("NewBase(%q) error = %v", values, err)
	}
	return b
}

// mustPattern is a helper for test to create a pattern from its slots.
func mustPattern(t testing.TB, values ...string) Pattern {
	t.Helper()
	p, err := NewPattern(values...)
	if err != nil {
		t.Fatalf("NewPattern(%q) error = %v", values, err)
	}
	return p
}

// mustDecimal is a helper for test to create a decimal from a string.
func mustDecimal(t testing.TB, s string) decimal.Decimal {
	t.Helper()
	d, err := ParseDecimal(s)
	if err != nil {
		t.Fatalf("ParseDecimal(%q) error = %v", s, err)
	}
	return d
}
