package exalge

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Format is a persisted file format.
type Format int

const (
	// CSV is the record-based format.
	CSV Format = iota
	// XML is only available for pattern sets.
	XML
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case XML:
		return "xml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format of a file from its extension. Anything but ".xml" is CSV.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return XML
	}
	return CSV
}

// LoadPatternSet reads a pattern set file, in the format given by its extension.
func LoadPatternSet(path string, rules KeyRules) (*PatternSet, error) {
	c := Codec{Rules: rules, Source: path}
	var s *PatternSet
	err := readFile(path, func(r io.Reader) (err error) {
		if FormatOf(path) == XML {
			s, err = c.DecodePatternSetXML(r)
		} else {
			s, err = c.DecodePatternSet(r)
		}
		return err
	})
	return s, err
}

// SavePatternSet writes a pattern set file, in the format given by its extension.
func SavePatternSet(path string, s *PatternSet) error {
	return writeFile(path, "pattern-set", func(w io.Writer) error {
		if FormatOf(path) == XML {
			return EncodePatternSetXML(w, s)
		}
		return EncodePatternSet(w, s)
	})
}

// LoadRatioTable reads a ratio table CSV file. A table without a name is named after the file.
func LoadRatioTable(path string, rules KeyRules) (*RatioTable, error) {
	c := Codec{Rules: rules, Source: path}
	var t *RatioTable
	err := readFile(path, func(r io.Reader) (err error) {
		t, err = c.DecodeRatioTable(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	if t.name == "" {
		t.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// SaveRatioTable writes a ratio table CSV file.
func SaveRatioTable(path string, t *RatioTable) error {
	return writeFile(path, "ratio-table", func(w io.Writer) error { return EncodeRatioTable(w, t) })
}

// LoadAlgebra reads an algebra CSV file.
func LoadAlgebra(path string, rules KeyRules) (*Algebra, error) {
	c := Codec{Rules: rules, Source: path}
	var a *Algebra
	err := readFile(path, func(r io.Reader) (err error) {
		a, err = c.DecodeAlgebra(r)
		return err
	})
	return a, err
}

// SaveAlgebra writes an algebra CSV file.
func SaveAlgebra(path string, a *Algebra) error {
	return writeFile(path, "algebra", func(w io.Writer) error { return EncodeAlgebra(w, a) })
}

func readFile(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

// writeFile creates path, and its directory if needed, then encodes into it.
func writeFile(path, kind string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()
	log.Printf("write-%s-file name=%q", kind, path)

	if err := encode(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", path, err)
	}
	return nil
}
