package exalge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{"patterns.csv", CSV},
		{"patterns.xml", XML},
		{"dir/PATTERNS.XML", XML},
		{"patterns", CSV},
	}
	for _, tc := range testCases {
		if got := FormatOf(tc.path); got != tc.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestPatternSetFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewPatternSet(
		mustPattern(t, "Sales"),
		mustPattern(t, "Cash", "HAT", "JPY"),
	)

	for _, name := range []string{"patterns.csv", "sub/patterns.xml"} {
		path := filepath.Join(dir, name)
		if err := SavePatternSet(path, s); err != nil {
			t.Fatalf("SavePatternSet(%q) error = %v", name, err)
		}
		got, err := LoadPatternSet(path, DefaultRules())
		if err != nil {
			t.Fatalf("LoadPatternSet(%q) error = %v", name, err)
		}
		if !got.Equal(s) {
			t.Errorf("LoadPatternSet(%q) = %v, want %v", name, got, s)
		}
	}

	if _, err := LoadPatternSet(filepath.Join(dir, "missing.csv"), DefaultRules()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPatternSet(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestLoadPatternSet_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("#ExBasePatternSet\nhat,name,unit,time,subject\n,a>b,,,\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPatternSet(path, DefaultRules())
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("LoadPatternSet() error = %v, want a *FormatError", err)
	}
	if ferr.Source != path {
		t.Errorf("FormatError.Source = %q, want %q", ferr.Source, path)
	}
}

func TestRatioTableFiles(t *testing.T) {
	dir := t.TempDir()
	table := NewRatioTable("")
	if err := table.Put(mustPattern(t, "A"), D(1)); err != nil {
		t.Fatal(err)
	}
	if err := table.Put(mustPattern(t, "B"), D(3)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "shares.csv")
	if err := SaveRatioTable(path, table); err != nil {
		t.Fatalf("SaveRatioTable() error = %v", err)
	}
	got, err := LoadRatioTable(path, DefaultRules())
	if err != nil {
		t.Fatalf("LoadRatioTable() error = %v", err)
	}
	if got.Name() != "shares" {
		t.Errorf("LoadRatioTable().Name() = %q, want %q", got.Name(), "shares")
	}
	if !got.TotalRatio().Equal(D(4)) {
		t.Errorf("LoadRatioTable().TotalRatio() = %v, want 4", got.TotalRatio())
	}
}

func TestAlgebraFiles(t *testing.T) {
	a := NewAlgebra()
	a.PutValue(mustBase(t, "Cash", "NO_HAT", "JPY"), D(12))
	a.PutValue(mustBase(t, "Sales", "HAT", "JPY"), D(12))

	path := filepath.Join(t.TempDir(), "out", "journal.csv")
	if err := SaveAlgebra(path, a); err != nil {
		t.Fatalf("SaveAlgebra() error = %v", err)
	}
	got, err := LoadAlgebra(path, DefaultRules())
	if err != nil {
		t.Fatalf("LoadAlgebra() error = %v", err)
	}
	if !got.Equal(a) {
		t.Errorf("LoadAlgebra() = %v, want %v", got, a)
	}
}
