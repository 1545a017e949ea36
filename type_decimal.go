package exalge

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of significant digits kept by a normalized distribution.
const DivisionPrecision = 34

// D is a convenient factory for decimal.Decimal.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// ParseDecimal parses a decimal string like "0.25" or "-1e3".
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return d, nil
}

var bigOne = big.NewInt(1)

// divide returns x / y rounded to DivisionPrecision significant digits, half to even.
func divide(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: division undefined: %s / %s", ErrArithmetic, x.String(), y.String())
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}

	cx, cy := x.Coefficient(), y.Coefficient()
	neg := cx.Sign() != cy.Sign()
	cx.Abs(cx)
	cy.Abs(cy)

	// Scale the dividend so that the integer quotient has more digits than the precision.
	shift := DivisionPrecision + 1 + numDigits(cy) - numDigits(cx)
	if shift < 0 {
		shift = 0
	}
	n := new(big.Int).Mul(cx, pow10(shift))
	q, r := new(big.Int).QuoRem(n, cy, new(big.Int))
	exp := x.Exponent() - y.Exponent() - int32(shift)

	// Drop the extra digits. r is the sticky remainder of the first division.
	if extra := numDigits(q) - DivisionPrecision; extra > 0 {
		div := pow10(extra)
		rem := new(big.Int)
		q.QuoRem(q, div, rem)
		c := new(big.Int).Lsh(rem, 1).Cmp(div)
		if c > 0 || (c == 0 && (r.Sign() != 0 || q.Bit(0) == 1)) {
			q.Add(q, bigOne)
		}
		exp += int32(extra)
	}

	res := decimal.NewFromBigInt(q, exp)
	if neg {
		res = res.Neg()
	}
	return res, nil
}

func numDigits(i *big.Int) int { return len(i.Text(10)) }

func pow10(n int) *big.Int { return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil) }
