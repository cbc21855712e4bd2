// Package money converts between the budgeting API's milliunit integers
// and human-readable currency strings. The integer is the source of truth;
// display strings are derived and never fed back into arithmetic.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of milliunits in one currency unit.
const Scale = 1000

var scaleDec = decimal.NewFromInt(Scale)

// Format renders a milliunit amount as a currency string, e.g.
// 12340 -> "$12.34", -500 -> "-$0.50", 1234567890 -> "$1,234,567.89".
// Sub-cent fractions are rounded half away from zero.
func Format(milliunits int64) string {
	d := decimal.New(milliunits, -3)
	s := "$" + group(d.Abs().StringFixed(2))
	if milliunits < 0 {
		return "-" + s
	}
	return s
}

// FromDollars converts a dollar amount to milliunits, truncating toward
// zero below the milliunit. 19.99 -> 19990, 1.0049 -> 1004, -1.0049 -> -1004.
// This is the lossy direction: sub-milliunit precision is dropped, not rounded.
func FromDollars(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Mul(scaleDec).IntPart()
}

// group inserts thousands separators into the integer part of a
// non-negative fixed-point string like "1234567.89".
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return intPart + "." + frac
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
