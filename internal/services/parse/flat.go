package parse

import (
	"sort"
	"strings"

	"github.com/hptabster/EWM-qa-demo/internal/domain"
)

// ParseFlat converts one tab-separated value line into a Record, using
// the header line for field names. Every header maps to a present key:
// a column missing from the value line stays as an empty value rather
// than being dropped. Mapping rules, in precedence order:
//
//   - a header of exactly "B/S" stores its value under "side";
//   - a header containing "Amount" splits its cell on whitespace, the
//     first token under the camel-cased header name and, when a second
//     token exists, the currency code under "<name>Ccy";
//   - anything else stores the raw value under the camel-cased name.
func ParseFlat(headerLine, valueLine string) domain.Record {
	header := strings.Split(strings.TrimSuffix(headerLine, "\r"), "\t")
	values := strings.Split(strings.TrimSuffix(valueLine, "\r"), "\t")

	// columns are addressed by the first occurrence of each header name
	firstIndex := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := firstIndex[name]; !ok {
			firstIndex[name] = i
		}
	}

	valueAt := func(idx int) string {
		if idx < len(values) {
			return values[idx]
		}
		return ""
	}

	rec := make(domain.Record, len(header))
	for _, name := range header {
		v := valueAt(firstIndex[name])
		switch {
		case name == "B/S":
			rec[domain.FieldSide] = v
		case strings.Contains(name, "Amount"):
			tokens := strings.Fields(v)
			key := ToCamelCase(name)
			if len(tokens) == 0 {
				rec[key] = ""
				continue
			}
			rec[key] = tokens[0]
			if len(tokens) > 1 {
				rec[key+"Ccy"] = tokens[1]
			}
		default:
			rec[ToCamelCase(name)] = v
		}
	}
	return rec
}

// ParseFlatTable parses a whole rendered table: the first line is the
// header, each following non-empty line one record. Records are
// returned newest first by creation date; limit <= 0 keeps all.
func ParseFlatTable(text string, limit int) []domain.Record {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	header := lines[0]
	records := make([]domain.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, ParseFlat(header, line))
	}

	sort.SliceStable(records, func(i, j int) bool {
		ti, erri := ParseCreationDate(records[i]["creationDate"])
		tj, errj := ParseCreationDate(records[j]["creationDate"])
		if erri != nil || errj != nil {
			return false
		}
		return ti.After(tj)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
