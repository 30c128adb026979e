package domain

import "strings"

// Side is the direction of a trade as the views render it.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// ExpectedSide returns the side a view displays for a requested side.
// A trade priced in the term currency is shown with the side inverted.
func ExpectedSide(requested Side, termSymbol bool) Side {
	up := Side(strings.ToUpper(string(requested)))
	if (up == SideBuy && !termSymbol) || (up == SideSell && termSymbol) {
		return SideBuy
	}
	return SideSell
}

// BaseOrTermCurrency derives the requested currency from a "BASE/TERM"
// symbol: the term currency when the trade is priced in it, the base
// currency otherwise.
func BaseOrTermCurrency(symbol string, termSymbol bool) string {
	parts := strings.SplitN(symbol, "/", 2)
	if termSymbol && len(parts) > 1 {
		return parts[1]
	}
	return parts[0]
}
