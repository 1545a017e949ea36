package exalge

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/degulab/exalge/record"
)

// PatternSetIdentifier is the first line of a pattern set CSV file.
const PatternSetIdentifier = "#ExBasePatternSet"

// Names of the XML elements of a pattern set.
const (
	PatternSetXMLRoot = "exbasepatternset"
	PatternXMLElement = "pattern"
)

// DecodePatternSet reads a pattern set in CSV format using DefaultCodec.
func DecodePatternSet(r io.Reader) (*PatternSet, error) { return DefaultCodec.DecodePatternSet(r) }

// EncodePatternSet writes a pattern set in CSV format.
func EncodePatternSet(w io.Writer, s *PatternSet) error { return DefaultCodec.EncodePatternSet(w, s) }

// DecodePatternSetXML reads a pattern set in XML format using DefaultCodec.
func DecodePatternSetXML(r io.Reader) (*PatternSet, error) {
	return DefaultCodec.DecodePatternSetXML(r)
}

// EncodePatternSetXML writes a pattern set in XML format.
func EncodePatternSetXML(w io.Writer, s *PatternSet) error {
	return DefaultCodec.EncodePatternSetXML(w, s)
}

// DecodePatternSet reads a pattern set in CSV format.
//
// The first line is PatternSetIdentifier, the second the header
// "hat,name,unit,time,subject", then one pattern per line. Blank columns are
// wildcards. Any error aborts the read and is a *FormatError when the input is malformed.
func (c Codec) DecodePatternSet(r io.Reader) (*PatternSet, error) {
	cr := c.newCSVReader(r)
	extra, err := cr.readIdentifier(PatternSetIdentifier)
	if err != nil {
		return nil, err
	}
	for _, f := range extra {
		if f != "" {
			return nil, formatErrorf(c.Source, 1, 0, "unexpected field %q after identifier", f)
		}
	}
	if err := cr.readHeader(keyColumns); err != nil {
		return nil, err
	}

	s := new(PatternSet)
	for {
		rec, err := cr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := cr.checkTrailing(rec, len(keyColumns)); err != nil {
			return nil, err
		}
		t, err := cr.readKey(rec, Wildcard)
		if err != nil {
			return nil, err
		}
		s.add(Pattern{t})
	}
	return s, nil
}

// EncodePatternSet writes a pattern set in CSV format, one pattern per line in set order.
func (c Codec) EncodePatternSet(w io.Writer, s *PatternSet) error {
	rw := record.NewWriter(w)
	if err := writeHead(rw, []string{PatternSetIdentifier}, keyColumns); err != nil {
		return fmt.Errorf("cannot write pattern set: %w", err)
	}
	for p := range s.All() {
		if err := writeKey(rw, p.KeyTuple); err != nil {
			return fmt.Errorf("cannot write pattern %q: %w", p.Key(), err)
		}
	}
	if err := rw.Flush(); err != nil {
		return fmt.Errorf("cannot write pattern set: %w", err)
	}
	return nil
}

// xpattern is the XML form of a pattern.
type xpattern struct {
	XMLName xml.Name `xml:"pattern"`
	Hat     string   `xml:"hat,attr"`
	Name    string   `xml:"name,attr"`
	Unit    string   `xml:"unit,attr"`
	Time    string   `xml:"time,attr"`
	Subject string   `xml:"subject,attr"`
}

// xpatternSet is the XML form of a pattern set.
type xpatternSet struct {
	XMLName  xml.Name   `xml:"exbasepatternset"`
	Patterns []xpattern `xml:"pattern"`
}

// DecodePatternSetXML reads a pattern set in XML format.
//
// The root element is PatternSetXMLRoot, each child is a PatternXMLElement
// whose attributes hat, name, unit, time and subject hold the keys. Absent
// attributes are wildcards.
func (c Codec) DecodePatternSetXML(r io.Reader) (*PatternSet, error) {
	d := xml.NewDecoder(r)
	root, err := c.xmlRoot(d, PatternSetXMLRoot)
	if err != nil {
		return nil, err
	}

	s := new(PatternSet)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, c.xmlError(d, err)
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == root.Name {
				return s, nil
			}
		case xml.StartElement:
			line, col := d.InputPos()
			if t.Name.Local != PatternXMLElement {
				return nil, formatErrorf(c.Source, line, col, "unexpected element <%s>, want <%s>", t.Name.Local, PatternXMLElement)
			}
			tuple, err := c.xmlKey(t, line, col)
			if err != nil {
				return nil, err
			}
			if err := d.Skip(); err != nil {
				return nil, c.xmlError(d, err)
			}
			s.add(Pattern{tuple})
		}
	}
}

// xmlRoot reads up to the root element and checks its name.
func (c Codec) xmlRoot(d *xml.Decoder, name string) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, formatErrorf(c.Source, 1, 0, "missing root element <%s>", name)
		}
		if err != nil {
			return xml.StartElement{}, c.xmlError(d, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != name {
				line, col := d.InputPos()
				return xml.StartElement{}, formatErrorf(c.Source, line, col, "incorrect root element <%s>, want <%s>", start.Name.Local, name)
			}
			return start, nil
		}
	}
}

// xmlKey reads the key attributes of an element.
func (c Codec) xmlKey(e xml.StartElement, line, col int) (KeyTuple, error) {
	var values [SlotCount]string
	for _, a := range e.Attr {
		for i, name := range keyColumns {
			if a.Name.Local == name {
				values[keyColumnSlots[i]] = a.Value
			}
		}
	}
	var slots [SlotCount]string
	for slot := range slots {
		v, _, err := c.Rules.parseSlot(slot, values[slot], Wildcard)
		if err != nil {
			return KeyTuple{}, formatErrorf(c.Source, line, col, "invalid %s attribute: %v", slotName(slot), err)
		}
		slots[slot] = v
	}
	return newKeyTuple(slots), nil
}

// xmlError converts decoder errors into FormatError.
func (c Codec) xmlError(d *xml.Decoder, err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		return &FormatError{Source: c.Source, Line: serr.Line, Err: err}
	}
	if errors.Is(err, io.EOF) {
		line, col := d.InputPos()
		return formatErrorf(c.Source, line, col, "unexpected end of input")
	}
	return fmt.Errorf("cannot read %s: %w", c.Source, err)
}

// EncodePatternSetXML writes a pattern set in XML format, indented, with an XML header.
func (c Codec) EncodePatternSetXML(w io.Writer, s *PatternSet) error {
	xs := xpatternSet{Patterns: make([]xpattern, 0, s.Len())}
	for p := range s.All() {
		xs.Patterns = append(xs.Patterns, xpattern{
			Hat:     p.Hat(),
			Name:    p.Name(),
			Unit:    p.Unit(),
			Time:    p.Time(),
			Subject: p.Subject(),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("cannot write pattern set: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(xs); err != nil {
		return fmt.Errorf("cannot write pattern set: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("cannot write pattern set: %w", err)
	}
	return nil
}
