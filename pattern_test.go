package exalge

import (
	"errors"
	"testing"
)

func TestPattern_Matches(t *testing.T) {
	base := mustBase(t, "Sales", "NO_HAT", "JPY", "2020", "Dept1")

	testCases := []struct {
		name    string
		pattern []string
		want    bool
	}{
		{"All wildcards", nil, true},
		{"Same base", []string{"Sales", "NO_HAT", "JPY", "2020", "Dept1"}, true},
		{"Name only", []string{"Sales"}, true},
		{"Other name", []string{"Cash"}, false},
		{"Case-sensitive", []string{"sales"}, false},
		{"Literal unit", []string{"*", "*", "JPY"}, true},
		{"Other time", []string{"*", "*", "*", "2021"}, false},
		{"Hat", []string{"*", "HAT"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPattern(t, tc.pattern...)
			got, err := p.Matches(base)
			if err != nil {
				t.Fatalf("%v.Matches(%v) error = %v", p, base, err)
			}
			if got != tc.want {
				t.Errorf("%v.Matches(%v) = %v, want %v", p, base, got, tc.want)
			}
		})
	}

	if _, err := mustPattern(t).Matches(Base{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Matches(absent) error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestPattern_Translate(t *testing.T) {
	p := mustPattern(t, "Cash", "*", "*", "*", "HQ")
	b := mustBase(t, "Sales", "HAT", "JPY", "2020", "Dept1")

	got, err := p.Translate(b)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if want := "Cash-HAT-JPY-2020-HQ"; got.Key() != want {
		t.Errorf("Translate() = %q, want %q", got.Key(), want)
	}
	if b.Key() != "Sales-HAT-JPY-2020-Dept1" {
		t.Errorf("Translate() modified the source base: %v", b)
	}

	// Translating a base by a pattern that matches it yields a base the pattern still matches.
	patterns := []Pattern{
		mustPattern(t),
		mustPattern(t, "Sales"),
		mustPattern(t, "*", "HAT", "*", "2020"),
		p,
	}
	for _, p := range patterns {
		got, err := p.Translate(b)
		if err != nil {
			t.Fatalf("%v.Translate(%v) error = %v", p, b, err)
		}
		if ok, _ := p.Matches(got); !ok {
			t.Errorf("%v.Matches(%v.Translate(%v)) = false, want true", p, p, b)
		}
		if !p.HasWildcard() && !got.KeyTuple.Equal(p.KeyTuple) {
			t.Errorf("%v.Translate(%v) = %v, want the pattern itself", p, b, got)
		}
	}

	// The all-wildcard pattern is the identity.
	if got, _ := mustPattern(t).Translate(b); !got.Equal(b) {
		t.Errorf("Translate() by all wildcards = %v, want %v", got, b)
	}

	if _, err := p.Translate(Base{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Translate(absent) error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestPattern_Wildcards(t *testing.T) {
	p := mustPattern(t, "Sales", "", "JPY")
	want := []bool{false, true, false, true, true}
	for i, w := range want {
		if got := p.IsWildcard(i); got != w {
			t.Errorf("%v.IsWildcard(%d) = %v, want %v", p, i, got, w)
		}
	}
	if !p.HasWildcard() {
		t.Errorf("%v.HasWildcard() = false, want true", p)
	}
	if full := mustPattern(t, "a", "b", "c", "d", "e"); full.HasWildcard() {
		t.Errorf("%v.HasWildcard() = true, want false", full)
	}

	parsed, err := ParsePattern("Sales-*-JPY--")
	if err != nil {
		t.Fatalf("ParsePattern() error = %v", err)
	}
	if !parsed.Equal(p) {
		t.Errorf("ParsePattern() = %v, want %v", parsed, p)
	}
}

func TestBase(t *testing.T) {
	if _, err := NewBase("Sales", "*"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewBase() with a wildcard error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := ParseBase("Sales-HAT-*-#-#"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseBase() with a wildcard error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := BaseOf(KeyTuple{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("BaseOf(absent) error = %v, want %v", err, ErrInvalidArgument)
	}

	b := mustBase(t, "Sales")
	if b.Key() != "Sales-NO_HAT-#-#-#" {
		t.Errorf("NewBase(Sales).Key() = %q, want %q", b.Key(), "Sales-NO_HAT-#-#-#")
	}

	testCases := []struct {
		hat     string
		isHat   bool
		flipped string
	}{
		{"HAT", true, "NO_HAT"},
		{"hat", true, "NO_HAT"},
		{"^", true, "NO_HAT"},
		{"NO_HAT", false, "HAT"},
		{"#", false, "HAT"},
	}
	for _, tc := range testCases {
		b := mustBase(t, "Cash", tc.hat)
		if got := b.IsHat(); got != tc.isHat {
			t.Errorf("%v.IsHat() = %v, want %v", b, got, tc.isHat)
		}
		if got := b.FlipHat().Hat(); got != tc.flipped {
			t.Errorf("%v.FlipHat().Hat() = %q, want %q", b, got, tc.flipped)
		}
	}

	for _, hat := range []string{"^", "hat", "Hat"} {
		if got := mustBase(t, "Cash", hat).Key(); got != "Cash-HAT-#-#-#" {
			t.Errorf("NewBase(Cash, %q).Key() = %q, want %q", hat, got, "Cash-HAT-#-#-#")
		}
		if got := mustPattern(t, "Cash", hat).Hat(); got != HatKey {
			t.Errorf("NewPattern(Cash, %q).Hat() = %q, want %q", hat, got, HatKey)
		}
	}
	if got := mustBase(t, "Cash", "no_hat").Hat(); got != NoHatKey {
		t.Errorf("NewBase(Cash, no_hat).Hat() = %q, want %q", got, NoHatKey)
	}

	w, err := b.WithHat(HatKey)
	if err != nil || w.Key() != "Sales-HAT-#-#-#" {
		t.Errorf("WithHat(HAT) = %v, %v, want Sales-HAT-#-#-#", w, err)
	}
	if _, err := b.WithHat(Wildcard); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("WithHat(*) error = %v, want %v", err, ErrInvalidArgument)
	}
}
