// Package parse converts the rendered text of the trading views into
// typed records and values. Everything here is pure: partially rendered
// input yields zero values or nil records, never an error, since the
// views re-render asynchronously and a short read is expected.
package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
)

// VolToAmount normalizes a rendered volume to a plain amount: thousands
// separators are stripped and a trailing K or M unit suffix multiplies
// the numeral by 1,000 or 1,000,000. Empty or unparseable text yields
// zero.
func VolToAmount(vol string) decimal.Decimal {
	if vol == "" {
		return decimal.Zero
	}

	v := strings.ReplaceAll(vol, ",", "")

	mult := decimal.NewFromInt(1)
	switch v[len(v)-1] {
	case 'M':
		mult = million
		v = v[:len(v)-1]
	case 'K':
		mult = thousand
		v = v[:len(v)-1]
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d.Mul(mult)
}

// AmountToVol is the display-side inverse of VolToAmount: amounts at or
// above 1,000 and 1,000,000 are rendered with a K or M suffix, rounded
// to one decimal place. Rounding loses information, so the two
// functions are not exact inverses.
func AmountToVol(amount decimal.Decimal) string {
	if amount.LessThan(thousand) {
		return amount.String()
	}
	if amount.LessThan(million) {
		return suffixed(amount.Div(thousand), "K")
	}
	return suffixed(amount.Div(million), "M")
}

func suffixed(scaled decimal.Decimal, unit string) string {
	s := scaled.Round(1).String()
	s = strings.TrimSuffix(s, ".0")
	return s + unit
}
