// Package xentry implements the cross-entry passes that run over the full
// reference list before template evaluation: sorting, grouping, and
// disambiguation (§4.5). Each pass is pure and produces state consumed by
// later passes or by the evaluator's second rendering pass.
package xentry

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// Sort orders refs by the given key list, stable, using the active locale's
// collation for string keys (§4.5.1). The input slice is not modified; Sort
// returns a new slice.
func Sort(refs []*reference.Reference, keys []style.SortKeySpec, loc *locale.Locale) []*reference.Reference {
	out := make([]*reference.Reference, len(refs))
	copy(out, refs)
	if len(keys) == 0 {
		return out
	}
	col := collator(loc)
	sort.SliceStable(out, func(i, j int) bool {
		for _, k := range keys {
			c := compareKey(out[i], out[j], k.Key, col)
			if c == 0 {
				continue
			}
			if k.Direction == "desc" {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

// collator builds a Unicode collator for the locale's BCP-47 tag, falling
// back to the undetermined tag (simple codepoint-ish ordering) when the tag
// doesn't parse.
func collator(loc *locale.Locale) *collate.Collator {
	tag := language.Und
	if loc != nil && loc.Tag != "" {
		if t, err := language.Parse(loc.Tag); err == nil {
			tag = t
		}
	}
	return collate.New(tag)
}

// compareKey compares two references on a single sort key, returning <0, 0,
// >0 per the usual comparator convention.
func compareKey(a, b *reference.Reference, key string, col *collate.Collator) int {
	switch key {
	case "author":
		return col.CompareString(authorSortKey(a), authorSortKey(b))
	case "year":
		return int(yearOf(a) - yearOf(b))
	case "title":
		return col.CompareString(a.Titles.Primary.Full(), b.Titles.Primary.Full())
	case "type":
		return strings.Compare(a.EffectiveType(), b.EffectiveType())
	default:
		return col.CompareString(customVariable(a, key), customVariable(b, key))
	}
}

// authorSortKey returns the sort string for a reference's first author, per
// §4.5.1 ("personal names sort by family then given then particles; literal
// names as a whole").
func authorSortKey(r *reference.Reference) string {
	authors := r.Authors()
	if len(authors) == 0 {
		return ""
	}
	c := authors[0]
	if c.IsLiteral() {
		return c.Literal
	}
	p := c.Personal
	var b strings.Builder
	b.WriteString(c.SortKey())
	b.WriteString("\x00")
	b.WriteString(p.Given)
	b.WriteString("\x00")
	b.WriteString(p.DroppingParticle)
	return b.String()
}

func yearOf(r *reference.Reference) int32 {
	d, ok := r.Date(reference.DateIssued)
	if !ok {
		return 0
	}
	return d.Start.Year
}

func customVariable(r *reference.Reference, name string) string {
	v, ok := r.GetCustom(name)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
