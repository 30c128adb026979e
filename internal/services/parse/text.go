package parse

import (
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

// ToCamelCase lower-cases s and upper-cases the first letter following
// any run of non-alphanumeric characters, dropping the separators:
// "Requested Amount" -> "requestedAmount", "B/S" -> "bS".
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := false
	started := false
	for _, r := range strings.ToLower(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = started
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
		started = true
	}
	return b.String()
}

// ToIsoLocal formats t as an ISO-like local timestamp without a zone,
// the format the expiry and start-date inputs accept.
func ToIsoLocal(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

// creation-date layouts as the blotter renders them, after the
// millisecond separator fixup.
var creationDateLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
}

// ParseCreationDate parses the blotter's creation-date text. The view
// renders milliseconds after a second space, so that space becomes a
// decimal point before parsing.
func ParseCreationDate(s string) (time.Time, error) {
	fixed := replaceNthSpace(s, 2, ".")
	for _, layout := range creationDateLayouts {
		if t, err := time.Parse(layout, fixed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unparseable creation date %q", s)
}

func replaceNthSpace(s string, n int, repl string) string {
	seen := 0
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' {
			seen++
			if seen == n {
				b.WriteString(repl)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
