package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatValue formats v as an amount of money when unit is an ISO 4217 currency code,
// like "¥1,200" or "$12.50". Other values, and amounts finer than the minor unit of
// the currency, are printed as decimals.
func formatValue(unit string, v decimal.Decimal) string {
	cur := money.GetCurrency(unit)
	if cur == nil {
		return v.String()
	}
	minor := v.Shift(int32(cur.Fraction))
	if !minor.Equal(minor.Truncate(0)) {
		return v.String() + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// commonUnit returns the unit shared by all units, or "" if they differ.
func commonUnit(units []string) string {
	if len(units) == 0 {
		return ""
	}
	for _, u := range units[1:] {
		if u != units[0] {
			return ""
		}
	}
	return units[0]
}
