package domain

import "strings"

// canonical option token for the spot tenor.
const spotTenorOption = "sp"

// TenorOption maps a display tenor to the option token the tenor
// selector uses: "sp" for spot, otherwise the last word lowercased
// (e.g. "1 week" -> "week").
func TenorOption(tenor string) string {
	if strings.ToUpper(tenor) == "SPOT" {
		return spotTenorOption
	}
	words := strings.Fields(tenor)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[len(words)-1])
}

// TenorMatches reports whether a rendered tenor satisfies an expected
// tenor, case-insensitively. For the spot tenor the literal "SPOT" is
// accepted alongside the canonical option token.
func TenorMatches(expected, rendered string) bool {
	got := strings.ToUpper(rendered)
	want := strings.ToUpper(TenorOption(expected))
	if strings.ToUpper(expected) == "SPOT" {
		return got == want || got == "SPOT"
	}
	return got == want
}
