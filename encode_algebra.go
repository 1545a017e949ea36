package exalge

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/degulab/exalge/record"
)

// AlgebraIdentifier is the first line of an algebra CSV file.
const AlgebraIdentifier = "#ExAlgebra"

// algebraColumns is the header of an algebra file.
var algebraColumns = append(slices.Clone(keyColumns), "value")

// DecodeAlgebra reads an algebra element in CSV format using DefaultCodec.
func DecodeAlgebra(r io.Reader) (*Algebra, error) { return DefaultCodec.DecodeAlgebra(r) }

// EncodeAlgebra writes an algebra element in CSV format.
func EncodeAlgebra(w io.Writer, a *Algebra) error { return DefaultCodec.EncodeAlgebra(w, a) }

// DecodeAlgebra reads an algebra element in CSV format.
//
// The layout is the one of a ratio table with a "value" column. Keys are
// bases: a blank hat is NoHatKey, other blank keys are OmittedKey and
// wildcards are rejected. Values of repeated bases are added.
func (c Codec) DecodeAlgebra(r io.Reader) (*Algebra, error) {
	cr := c.newCSVReader(r)
	if _, err := cr.readIdentifier(AlgebraIdentifier); err != nil {
		return nil, err
	}
	if err := cr.readHeader(algebraColumns); err != nil {
		return nil, err
	}

	a := NewAlgebra()
	valueCol := len(keyColumns)
	for {
		rec, err := cr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := cr.checkTrailing(rec, len(algebraColumns)); err != nil {
			return nil, err
		}
		key, err := cr.readKey(rec, OmittedKey)
		if err != nil {
			return nil, err
		}
		field := strings.TrimSpace(rec.Field(valueCol))
		if field == "" {
			return nil, cr.errorf(rec, valueCol, "missing value for base %q", key.Key())
		}
		v, err := ParseDecimal(field)
		if err != nil {
			return nil, cr.errorf(rec, valueCol, "%v", err)
		}
		a.PutValue(Base{key}, v)
	}
	return a, nil
}

// EncodeAlgebra writes an algebra element in CSV format, one base per line in insertion order.
func (c Codec) EncodeAlgebra(w io.Writer, a *Algebra) error {
	rw := record.NewWriter(w)
	if err := writeHead(rw, []string{AlgebraIdentifier}, algebraColumns); err != nil {
		return fmt.Errorf("cannot write algebra: %w", err)
	}
	for b, v := range a.All() {
		if err := writeKey(rw, b.KeyTuple, v.String()); err != nil {
			return fmt.Errorf("cannot write value of %q: %w", b.Key(), err)
		}
	}
	if err := rw.Flush(); err != nil {
		return fmt.Errorf("cannot write algebra: %w", err)
	}
	return nil
}
