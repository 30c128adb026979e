package domain

import "strings"

// orderTypeRenderings maps a submitted order type to the label(s) the
// order panel renders for it. A one-cancels-other order produces two
// independent child records, one limit and one stop-with-market.
var orderTypeRenderings = map[string][]string{
	"LIMIT":       {"LIMIT"},
	"MARKET":      {"MARKET"},
	"MAN OFFSET":  {"MAN OFFSET"},
	"STOP LIMIT":  {"STOP WITH LIMIT"},
	"STOP MARKET": {"STOP WITH MARKET"},
	"ICEBERG":     {"ICEBERG"},
	"OCO":         {"LIMIT", "STOP WITH MARKET"},
	"RE TRADE":    {"RE_TRADE"},
}

// OrderTypeRenderings returns the labels a view may render for the
// submitted order type. Underscores in the submitted type are treated
// as spaces. Unknown types render as themselves.
func OrderTypeRenderings(submitted string) []string {
	key := strings.ToUpper(strings.ReplaceAll(submitted, "_", " "))
	if renderings, ok := orderTypeRenderings[key]; ok {
		return renderings
	}
	return []string{key}
}

// OrderTypeMatches reports whether a rendered order-type label is an
// accepted rendering of the submitted order type.
func OrderTypeMatches(submitted, rendered string) bool {
	up := strings.ToUpper(rendered)
	for _, r := range OrderTypeRenderings(submitted) {
		if r == up {
			return true
		}
	}
	return false
}
