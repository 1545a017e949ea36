package renderer

import (
	"github.com/degulab/exalge"
	"github.com/shopspring/decimal"
)

// Distribution is the report of a value distributed by a ratio table.
type Distribution struct {
	Table      string
	Source     string
	Value      string
	Normalized bool
	Total      string
	Rows       []DistributionRow
	Sum        string
}

// DistributionRow is one destination base of a distribution.
// Ratio is the sum of the ratios of the entries translated to that base.
type DistributionRow struct {
	Base  string
	Ratio string
	Value string
}

// NewDistribution builds the report of the distribution of value from src by t, whose result is dst.
func NewDistribution(t *exalge.RatioTable, src exalge.Base, value decimal.Decimal, normalized bool, dst *exalge.Algebra) *Distribution {
	ratios := make(map[string]decimal.Decimal)
	for p, r := range t.All() {
		b, err := p.Translate(src)
		if err != nil {
			continue
		}
		ratios[b.Key()] = ratios[b.Key()].Add(r)
	}

	d := &Distribution{
		Table:      t.Name(),
		Source:     src.Key(),
		Value:      formatValue(src.Unit(), value),
		Normalized: normalized,
		Total:      t.TotalRatio().String(),
	}
	var units []string
	for b, v := range dst.All() {
		d.Rows = append(d.Rows, DistributionRow{
			Base:  b.Key(),
			Ratio: ratios[b.Key()].String(),
			Value: formatValue(b.Unit(), v),
		})
		units = append(units, b.Unit())
	}
	d.Sum = formatValue(commonUnit(units), dst.Sum())
	return d
}
