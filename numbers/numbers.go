// Package numbers formats numeric variables and page ranges (§4.2
// number/pages component): expanded/minimal/chicago page-range collapsing
// and the plural test that drives label pluralization.
package numbers

import (
	"strconv"
	"strings"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// FormatPageRange renders a page field under the given collapsing style.
// Collapsing acts on the leading digits only, so pagination carrying a
// shared non-numeric suffix ("12a–15a") still collapses on its digits;
// endpoints without leading digits (article-id style "e1003285") or whose
// non-numeric remainders differ fall back to PageRange.String.
func FormatPageRange(p reference.PageRange, format style.PageRangeFormat) string {
	if p.IsZero() {
		return ""
	}
	if !p.IsRange() {
		return p.Start
	}
	startDigits, startRest := reference.NumericPrefix(p.Start)
	endDigits, endRest := reference.NumericPrefix(p.End)
	if startDigits == "" || endDigits == "" || startRest != endRest {
		return p.String()
	}
	start, sOK := parseInt(startDigits)
	end, eOK := parseInt(endDigits)
	if !sOK || !eOK {
		return p.String()
	}

	var collapsed string
	switch format {
	case style.PageRangeMinimal:
		collapsed = minimalRange(start, end)
	case style.PageRangeChicago:
		collapsed = chicagoRange(start, end)
	default: // expanded
		collapsed = strconv.Itoa(start) + "–" + strconv.Itoa(end)
	}
	if startRest == "" {
		return collapsed
	}
	// Reattach the shared non-numeric suffix only to the endpoint it
	// belongs to; a collapsed range carries just one "–"-joined value pair.
	idx := strings.Index(collapsed, "–")
	return collapsed[:idx] + startRest + "–" + collapsed[idx+len("–"):] + endRest
}

// IsPlural reports whether a page field or other multi-valued variable
// should drive plural label agreement: true for a genuine range, false for
// a single page.
func IsPlural(p reference.PageRange) bool {
	return p.IsRange()
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// minimalRange keeps only the digits of the end number that differ from
// the start number, always keeping at least one digit: "321-5", "100-4".
func minimalRange(start, end int) string {
	as, bs := strconv.Itoa(start), strconv.Itoa(end)
	if len(as) != len(bs) {
		return as + "–" + bs
	}
	cp := commonPrefixLen(as, bs)
	keep := len(bs) - cp
	if keep < 1 {
		keep = 1
	}
	return as + "–" + bs[len(bs)-keep:]
}

// chicagoRange applies the Chicago Manual of Style page-range abbreviation:
// numbers below 100, and multiples of 100, are always spelled out in full;
// otherwise at least two digits of the end number are kept, expanding to
// however many digits actually changed.
func chicagoRange(start, end int) string {
	as, bs := strconv.Itoa(start), strconv.Itoa(end)
	if start < 100 || start%100 == 0 || len(as) != len(bs) {
		return as + "–" + bs
	}
	cp := commonPrefixLen(as, bs)
	keep := len(bs) - cp
	if keep < 2 {
		keep = 2
	}
	return as + "–" + bs[len(bs)-keep:]
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
