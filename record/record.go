// Package record reads and writes record-based text files, one record per
// line, keeping track of where each field was read from so that format
// errors can point at a line and a column.
//
// Records are comma separated values as defined by RFC 4180.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Record is one line of a record-based file.
type Record struct {
	Fields []string
	Line   int   // 1-based line of the first field
	cols   []int // 1-based column of each field
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.Fields) }

// Field returns field i, or "" if the record is shorter.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Column returns the 1-based column of field i. Fields past the end of the record
// are located right after the last one.
func (r Record) Column(i int) int {
	switch {
	case len(r.cols) == 0:
		return 1
	case i < 0:
		return r.cols[0]
	case i >= len(r.cols):
		last := len(r.cols) - 1
		return r.cols[last] + len(r.Fields[last]) + 1
	}
	return r.cols[i]
}

// IsBlank reports whether every field is empty or white space.
func (r Record) IsBlank() bool {
	for _, f := range r.Fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// IsComment reports whether the record starts with a '#'.
func (r Record) IsComment() bool {
	return len(r.Fields) > 0 && strings.HasPrefix(r.Fields[0], "#")
}

// Reader reads records from a stream.
type Reader struct {
	r *csv.Reader
}

// NewReader creates a reader. Records may have any number of fields.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{r: cr}
}

// Read returns the next record, or io.EOF at the end of the stream.
// Quotes are lazy: a quote in an unquoted field is kept, so only read errors
// of the underlying stream are returned. Empty lines are skipped.
func (r *Reader) Read() (Record, error) {
	fields, err := r.r.Read()
	if err != nil {
		return Record{}, err
	}
	rec := Record{Fields: fields, cols: make([]int, len(fields))}
	for i := range fields {
		line, col := r.r.FieldPos(i)
		if i == 0 {
			rec.Line = line
		}
		rec.cols[i] = col
	}
	return rec, nil
}

// All returns an iterator over the remaining records. It stops after the first error.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ErrComment is returned when writing a record that would be read back as a comment.
var ErrComment = errors.New("first field starts with '#'")

// Writer writes records to a stream.
type Writer struct {
	w *csv.Writer
}

// NewWriter creates a writer.
func NewWriter(w io.Writer) *Writer { return &Writer{w: csv.NewWriter(w)} }

// Write writes one data record. It fails with ErrComment if the first field
// starts with '#', since Reader callers skip such lines.
func (w *Writer) Write(fields ...string) error {
	if len(fields) > 0 && strings.HasPrefix(fields[0], "#") {
		return fmt.Errorf("cannot write %q: %w", fields[0], ErrComment)
	}
	return w.w.Write(fields)
}

// WriteComment writes a record whose first field starts with '#', like an identifier line.
func (w *Writer) WriteComment(fields ...string) error {
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "#") {
		return fmt.Errorf("comment %q must start with '#'", fields)
	}
	return w.w.Write(fields)
}

// Flush writes buffered records to the stream and returns the first write error, if any.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
