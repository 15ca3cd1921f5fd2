package reference

import (
	"strings"
)

// PageRange is a page field that may be a single page or a range. Pages are
// kept as strings because scholarly pagination is not always numeric
// ("iv", "A12", "e1003285").
type PageRange struct {
	Start string
	End   string
}

// ParsePageRange parses a raw page field like "436-444", "436–444", or "23"
// into a PageRange. Accepts hyphen, en-dash, and em-dash as range separators.
func ParsePageRange(raw string) PageRange {
	raw = strings.TrimSpace(raw)
	for _, sep := range []string{"–", "—", "-"} {
		if idx := strings.Index(raw, sep); idx > 0 {
			return PageRange{
				Start: strings.TrimSpace(raw[:idx]),
				End:   strings.TrimSpace(raw[idx+len(sep):]),
			}
		}
	}
	return PageRange{Start: raw}
}

// IsRange reports whether this PageRange spans more than one page.
func (p PageRange) IsRange() bool {
	return p.End != "" && p.End != p.Start
}

// IsZero reports whether no page information is present.
func (p PageRange) IsZero() bool {
	return p.Start == ""
}

// String renders the page range using an en-dash, undoing no formatting
// (page-range-format variants live in package numbers).
func (p PageRange) String() string {
	if p.Start == "" {
		return ""
	}
	if !p.IsRange() {
		return p.Start
	}
	return p.Start + "–" + p.End
}

// NumericPrefix splits a page-like string into a numeric prefix and a
// trailing non-numeric remainder, used by the minimal/chicago page-range
// formatters in package numbers to find the shared digit prefix.
func NumericPrefix(s string) (digits string, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
