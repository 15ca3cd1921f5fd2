package xentry

import (
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// Group is one bibliography partition: a heading key plus its member
// references in sort order (§4.5.2).
type Group struct {
	Key       string
	HeadingID string
	Refs      []*reference.Reference
}

// GroupBy partitions an already-sorted reference list per spec, preserving
// the sort order both across groups (first-appearance order of each key)
// and within them. A nil spec returns a single unnamed group holding every
// reference.
func GroupBy(sorted []*reference.Reference, spec *style.GroupBySpec) []Group {
	if spec == nil || spec.Key == "" {
		return []Group{{Refs: sorted}}
	}
	var order []string
	byKey := make(map[string][]*reference.Reference)
	for _, r := range sorted {
		k := groupKey(r, spec.Key)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], r)
	}
	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{
			Key:       k,
			HeadingID: spec.HeadingTermPrefix + k,
			Refs:      byKey[k],
		})
	}
	return groups
}

func groupKey(r *reference.Reference, key string) string {
	switch key {
	case "type":
		return r.EffectiveType()
	case "language":
		return r.Titles.Primary.Language
	case "keyword":
		if v, ok := r.GetCustom("keyword"); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		return ""
	default:
		return customVariable(r, key)
	}
}

// HeadingLabel resolves a group's heading text from the locale, falling
// back to the raw key when the locale has no matching term.
func HeadingLabel(g Group, loc *locale.Locale) string {
	if loc != nil {
		if t, ok := loc.Term(g.HeadingID, "long", false); ok {
			return t
		}
	}
	return g.Key
}
