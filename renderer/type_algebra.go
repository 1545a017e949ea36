package renderer

import "github.com/degulab/exalge"

// Algebra is the report of an algebra element, one line per base.
type Algebra struct {
	Title string
	Rows  []AlgebraRow
	Sum   string
}

// AlgebraRow is one base of an algebra element, with its slots split.
type AlgebraRow struct {
	Name, Hat, Unit, Time, Subject string
	Value                          string
}

// NewAlgebra builds the report of a.
func NewAlgebra(title string, a *exalge.Algebra) *Algebra {
	r := &Algebra{Title: title}
	var units []string
	for b, v := range a.All() {
		r.Rows = append(r.Rows, AlgebraRow{
			Name:    b.Name(),
			Hat:     b.Hat(),
			Unit:    b.Unit(),
			Time:    b.Time(),
			Subject: b.Subject(),
			Value:   formatValue(b.Unit(), v),
		})
		units = append(units, b.Unit())
	}
	r.Sum = formatValue(commonUnit(units), a.Sum())
	return r
}
