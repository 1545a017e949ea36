package exalge

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/degulab/exalge/record"
)

// RatioTableIdentifier is the first line of a ratio table CSV file.
// The table name may follow in the second field.
const RatioTableIdentifier = "#ExBaseRatioTable"

// ratioColumns is the header of a ratio table file.
var ratioColumns = append(slices.Clone(keyColumns), "ratio")

// DecodeRatioTable reads a ratio table in CSV format using DefaultCodec.
func DecodeRatioTable(r io.Reader) (*RatioTable, error) { return DefaultCodec.DecodeRatioTable(r) }

// EncodeRatioTable writes a ratio table in CSV format.
func EncodeRatioTable(w io.Writer, t *RatioTable) error { return DefaultCodec.EncodeRatioTable(w, t) }

// DecodeRatioTable reads a ratio table in CSV format.
//
// The first line is RatioTableIdentifier optionally followed by the table
// name, the second the header "hat,name,unit,time,subject,ratio", then one
// entry per line. Blank key columns are wildcards, the ratio is required and a
// pattern may appear only once. The total ratio of the returned table is up to date.
func (c Codec) DecodeRatioTable(r io.Reader) (*RatioTable, error) {
	cr := c.newCSVReader(r)
	extra, err := cr.readIdentifier(RatioTableIdentifier)
	if err != nil {
		return nil, err
	}
	name := ""
	if len(extra) > 0 {
		name = strings.TrimSpace(extra[0])
	}
	if err := cr.readHeader(ratioColumns); err != nil {
		return nil, err
	}

	t := NewRatioTable(name)
	ratioCol := len(keyColumns)
	for {
		rec, err := cr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := cr.checkTrailing(rec, len(ratioColumns)); err != nil {
			return nil, err
		}
		key, err := cr.readKey(rec, Wildcard)
		if err != nil {
			return nil, err
		}
		p := Pattern{key}
		if _, dup := t.Get(p); dup {
			return nil, cr.errorf(rec, 0, "duplicate pattern %q", p.Key())
		}
		field := strings.TrimSpace(rec.Field(ratioCol))
		if field == "" {
			return nil, cr.errorf(rec, ratioCol, "missing ratio for pattern %q", p.Key())
		}
		ratio, err := ParseDecimal(field)
		if err != nil {
			return nil, cr.errorf(rec, ratioCol, "%v", err)
		}
		if err := t.Put(p, ratio); err != nil {
			return nil, err
		}
	}
	t.UpdateTotalRatio()
	return t, nil
}

// EncodeRatioTable writes a ratio table in CSV format, one entry per line in table order.
func (c Codec) EncodeRatioTable(w io.Writer, t *RatioTable) error {
	rw := record.NewWriter(w)
	identifier := []string{RatioTableIdentifier}
	if t.Name() != "" {
		identifier = append(identifier, t.Name())
	}
	if err := writeHead(rw, identifier, ratioColumns); err != nil {
		return fmt.Errorf("cannot write ratio table %q: %w", t.Name(), err)
	}
	for p, ratio := range t.All() {
		if err := writeKey(rw, p.KeyTuple, ratio.String()); err != nil {
			return fmt.Errorf("cannot write ratio of %q: %w", p.Key(), err)
		}
	}
	if err := rw.Flush(); err != nil {
		return fmt.Errorf("cannot write ratio table %q: %w", t.Name(), err)
	}
	return nil
}
