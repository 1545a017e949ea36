package exalge

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/degulab/exalge/record"
)

// This file contains the parts shared by the record-based (CSV) formats.
//
// Every format has the same layout:
//   line 1: an identifier, like #ExBasePatternSet, compared case-insensitively.
//   line 2: a header naming the columns, compared case-insensitively and in order.
//   then one record per line. Blank lines and lines starting with '#' are skipped.
//
// Key columns come first in the order hat, name, unit, time, subject.

// keyColumns are the header names of the key columns, in file order.
var keyColumns = []string{"hat", "name", "unit", "time", "subject"}

// keyColumnSlots maps a key column to its slot in a key tuple.
var keyColumnSlots = [SlotCount]int{HatSlot, NameSlot, UnitSlot, TimeSlot, SubjectSlot}

// Codec reads and writes the persisted formats.
//
// The zero value uses KeyRules{}, which forbids nothing: use NewCodec or DefaultCodec.
type Codec struct {
	// Rules validate keys on read.
	Rules KeyRules
	// Source names the input in error messages, like a file name.
	Source string
}

// NewCodec returns a codec using DefaultRules.
func NewCodec(source string) Codec { return Codec{Rules: DefaultRules(), Source: source} }

// DefaultCodec uses DefaultRules and no source name.
var DefaultCodec = NewCodec("")

// csvReader reads one record-based format.
type csvReader struct {
	c  Codec
	rd *record.Reader
}

func (c Codec) newCSVReader(r io.Reader) *csvReader {
	return &csvReader{c: c, rd: record.NewReader(r)}
}

// errorf returns a FormatError located at field i of rec.
func (r *csvReader) errorf(rec record.Record, i int, format string, args ...any) error {
	return formatErrorf(r.c.Source, rec.Line, rec.Column(i), format, args...)
}

// read returns the next record.
func (r *csvReader) read() (record.Record, error) {
	rec, err := r.rd.Read()
	if err == nil || errors.Is(err, io.EOF) {
		return rec, err
	}
	return rec, fmt.Errorf("cannot read %s: %w", r.c.Source, err)
}

// readIdentifier reads the identifier line and returns its extra fields.
func (r *csvReader) readIdentifier(identifier string) ([]string, error) {
	rec, err := r.read()
	if errors.Is(err, io.EOF) {
		return nil, formatErrorf(r.c.Source, 1, 0, "missing identifier %q", identifier)
	}
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(rec.Field(0)), identifier) {
		return nil, r.errorf(rec, 0, "incorrect identifier %q, want %q", rec.Field(0), identifier)
	}
	return rec.Fields[1:], nil
}

// readHeader reads the header line and checks the column names.
func (r *csvReader) readHeader(columns []string) error {
	rec, err := r.read()
	if errors.Is(err, io.EOF) {
		return formatErrorf(r.c.Source, 2, 0, "missing header %q", strings.Join(columns, ","))
	}
	if err != nil {
		return err
	}
	for i, col := range columns {
		if i >= rec.Len() {
			return r.errorf(rec, i, "missing header column %q", col)
		}
		if !strings.EqualFold(strings.TrimSpace(rec.Fields[i]), col) {
			return r.errorf(rec, i, "incorrect header column %q, want %q", rec.Fields[i], col)
		}
	}
	if err := r.checkTrailing(rec, len(columns)); err != nil {
		return err
	}
	return nil
}

// next returns the next body record, skipping blank and comment lines. It returns io.EOF at the end.
func (r *csvReader) next() (record.Record, error) {
	for {
		rec, err := r.read()
		if err != nil {
			return rec, err
		}
		if rec.IsBlank() || rec.IsComment() {
			continue
		}
		return rec, nil
	}
}

// checkTrailing fails if rec has a non blank field past n.
func (r *csvReader) checkTrailing(rec record.Record, n int) error {
	for i := n; i < rec.Len(); i++ {
		if strings.TrimSpace(rec.Fields[i]) != "" {
			return r.errorf(rec, i, "unexpected field %q, want %d fields", rec.Fields[i], n)
		}
	}
	return nil
}

// readKey parses the key columns of rec. blank replaces blank columns.
func (r *csvReader) readKey(rec record.Record, blank string) (KeyTuple, error) {
	var slots [SlotCount]string
	for i, slot := range keyColumnSlots {
		v, pos, err := r.c.Rules.parseSlot(slot, rec.Field(i), blank)
		if err != nil {
			col := rec.Column(i)
			if pos > 0 {
				col += pos
			}
			return KeyTuple{}, formatErrorf(r.c.Source, rec.Line, col, "invalid %s: %v", slotName(slot), err)
		}
		slots[slot] = v
	}
	return newKeyTuple(slots), nil
}

// keyFields returns the key columns of t in file order.
func keyFields(t KeyTuple) []string {
	fields := make([]string, 0, SlotCount)
	for _, slot := range keyColumnSlots {
		fields = append(fields, t.slots[slot])
	}
	return fields
}

// writeKey writes the key columns of t followed by extra fields.
func writeKey(w *record.Writer, t KeyTuple, extra ...string) error {
	err := w.Write(append(keyFields(t), extra...)...)
	if errors.Is(err, record.ErrComment) {
		return fmt.Errorf("%w: hat %q would be read back as a comment", ErrInvalidArgument, t.Hat())
	}
	return err
}

// writeHead writes the identifier and header lines.
func writeHead(w *record.Writer, identifier []string, columns []string) error {
	if err := w.WriteComment(identifier...); err != nil {
		return err
	}
	return w.Write(columns...)
}
