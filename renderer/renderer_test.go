package renderer

import (
	"strings"
	"testing"

	"github.com/degulab/exalge"
	"github.com/shopspring/decimal"
)

func mustBase(t *testing.T, values ...string) exalge.Base {
	t.Helper()
	b, err := exalge.NewBase(values...)
	if err != nil {
		t.Fatalf("NewBase(%q) error = %v", values, err)
	}
	return b
}

func mustPattern(t *testing.T, values ...string) exalge.Pattern {
	t.Helper()
	p, err := exalge.NewPattern(values...)
	if err != nil {
		t.Fatalf("NewPattern(%q) error = %v", values, err)
	}
	return p
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		unit  string
		value string
		want  string
	}{
		{"JPY", "1200", "¥1,200"},
		{"USD", "1234.5", "$1,234.50"},
		{"USD", "0.125", "0.125 USD"},
		{"JPY", "0.5", "0.5 JPY"},
		{"#", "12.50", "12.5"},
		{"kg", "3", "3"},
	}
	for _, tc := range testCases {
		got := formatValue(tc.unit, decimal.RequireFromString(tc.value))
		if got != tc.want {
			t.Errorf("formatValue(%q, %s) = %q, want %q", tc.unit, tc.value, got, tc.want)
		}
	}
}

func TestRenderDistribution(t *testing.T) {
	table := exalge.NewRatioTable("split")
	table.Put(mustPattern(t, "*", "*", "*", "*", "Dept1"), decimal.RequireFromString("0.3"))
	table.Put(mustPattern(t, "*", "*", "*", "*", "Dept2"), decimal.RequireFromString("0.7"))
	table.UpdateTotalRatio()

	src := mustBase(t, "Cost", "NO_HAT", "JPY", "2020", "HQ")
	value := decimal.NewFromInt(1000)
	dst, err := table.Distribute(src, value, true)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}

	got := RenderDistribution(NewDistribution(table, src, value, true, dst))
	want := "# Distribution of ¥1,000\n" +
		"\n" +
		"Source `Cost-NO_HAT-JPY-2020-HQ` distributed by **split**, normalized by the total ratio 1.\n" +
		"\n" +
		"| Destination | Ratio | Value |\n" +
		"|:---|---:|---:|\n" +
		"| `Cost-NO_HAT-JPY-2020-Dept1` | 0.3 | ¥300 |\n" +
		"| `Cost-NO_HAT-JPY-2020-Dept2` | 0.7 | ¥700 |\n" +
		"| **Total** | 1 | **¥1,000** |\n"
	if got != want {
		t.Errorf("RenderDistribution() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderDistribution_Merged(t *testing.T) {
	table := exalge.NewRatioTable("")
	table.Put(mustPattern(t, "Pool"), decimal.NewFromInt(1))
	table.Put(mustPattern(t, "Pool", "*", "kg"), decimal.NewFromInt(2))
	table.UpdateTotalRatio()

	src := mustBase(t, "Stock", "NO_HAT", "kg")
	dst, err := table.Distribute(src, decimal.NewFromInt(9), false)
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}
	d := NewDistribution(table, src, decimal.NewFromInt(9), false, dst)
	if len(d.Rows) != 1 {
		t.Fatalf("NewDistribution() rows = %v, want one merged row", d.Rows)
	}
	if d.Rows[0].Ratio != "3" || d.Rows[0].Value != "27" {
		t.Errorf("NewDistribution() row = %+v, want ratio 3 and value 27", d.Rows[0])
	}

	got := RenderDistribution(d)
	if !strings.Contains(got, "**unnamed table**, multiplied by each ratio") {
		t.Errorf("RenderDistribution() = %s, want the raw mode described", got)
	}
}

func TestRenderAlgebra(t *testing.T) {
	a := exalge.NewAlgebra()
	a.PutValue(mustBase(t, "Cash", "NO_HAT", "USD"), decimal.RequireFromString("10.5"))
	a.PutValue(mustBase(t, "Sales", "HAT", "EUR"), decimal.NewFromInt(2))

	got := RenderAlgebra(NewAlgebra("Journal", a))
	want := "# Journal\n" +
		"\n" +
		"| Hat | Name | Unit | Time | Subject | Value |\n" +
		"|:---|:---|:---|:---|:---|---:|\n" +
		"| NO_HAT | Cash | USD | # | # | $10.50 |\n" +
		"| HAT | Sales | EUR | # | # | " + formatValue("EUR", decimal.NewFromInt(2)) + " |\n" +
		"| | **Total** | | | | **12.5** |\n"
	if got != want {
		t.Errorf("RenderAlgebra() =\n%s\nwant\n%s", got, want)
	}
}
