package domain

import (
	"math/big"
	"strings"
)

// ParseTradeID maps an opaque trade identifier of the form
// "<prefix>-<lead>[:<rem>]" to a comparable arbitrary-precision
// integer. The lead part is the substring after the last "-" of the
// first segment; the remainder segment is read as decimal when it is a
// valid decimal numeral, hexadecimal otherwise, and added to the lead.
// An empty identifier maps to 0, the ordering minimum.
//
// The sum is a cheap newness check for the two-part scheme the order
// panel emits. It is not guaranteed monotonic for arbitrary identifier
// formats (a wrapping or variable-width remainder could reorder), so
// callers rely on it only for strictly-greater comparisons against a
// recent baseline.
func ParseTradeID(raw string) *big.Int {
	total := new(big.Int)
	if raw == "" {
		return total
	}

	parts := strings.Split(raw, ":")
	leadSegs := strings.Split(parts[0], "-")
	lead, ok := new(big.Int).SetString(leadSegs[len(leadSegs)-1], 10)
	if !ok {
		return total
	}
	total.Set(lead)

	if len(parts) > 1 {
		rem, ok := new(big.Int).SetString(parts[1], 10)
		if !ok {
			rem, ok = new(big.Int).SetString(parts[1], 16)
		}
		if ok {
			total.Add(total, rem)
		}
	}

	return total
}

// CompareTradeIDs orders two raw identifiers: -1 when a is older than
// b, 0 when they coincide, 1 when a is newer.
func CompareTradeIDs(a, b string) int {
	return ParseTradeID(a).Cmp(ParseTradeID(b))
}
