package xentry

import (
	"strings"

	"github.com/scholarly-tools/citeproc-go/eval"
	"github.com/scholarly-tools/citeproc-go/hints"
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/resolve"
	"github.com/scholarly-tools/citeproc-go/style"
	"github.com/scholarly-tools/citeproc-go/token"
)

// Disambiguate runs the three fixed-order strategies (add-names,
// expand-given-names, year-suffix) over refs, stopping each conflict set as
// soon as it renders uniquely (§4.5.3). order is the canonical sort the
// document uses elsewhere (e.g. by title), consulted when assigning
// year-suffix letters. The returned map is keyed by reference ID and holds
// only the fields this pass computes: YearSuffixLetter, MinNamesToShow,
// ExpandGivenNames, DisambCondition.
func Disambiguate(refs []*reference.Reference, order []*reference.Reference, st *style.Style, loc *locale.Locale) map[string]hints.ProcHints {
	out := make(map[string]hints.ProcHints, len(refs))
	if st.Citation == nil {
		return out
	}
	opts := resolve.New(st).Options(resolve.ScopeCitation)
	tmpl := st.CitationTemplateFor(false)
	da := opts.Disambiguation

	render := func(r *reference.Reference, h hints.ProcHints) string {
		ctx := eval.NewContext(r, opts, loc, h)
		return joinTokenText(eval.Render(tmpl, ctx))
	}

	for _, group := range conflictGroups(refs, render) {
		if len(group) < 2 {
			continue
		}
		remaining := group

		if da.AddNames {
			remaining = resolveAddNames(remaining, render, out)
		}
		if len(remaining) > 1 && da.ExpandGivenNames {
			remaining = resolveExpandGivenNames(remaining, render, out)
		}
		if len(remaining) > 1 && da.YearSuffix {
			assignYearSuffixes(remaining, order, out)
		}
	}
	return out
}

// conflictGroups partitions refs into maximal sets that render identically
// under the base style (zero hints).
func conflictGroups(refs []*reference.Reference, render func(*reference.Reference, hints.ProcHints) string) [][]*reference.Reference {
	byText := make(map[string][]*reference.Reference)
	var order []string
	for _, r := range refs {
		text := render(r, hints.ProcHints{})
		if _, ok := byText[text]; !ok {
			order = append(order, text)
		}
		byText[text] = append(byText[text], r)
	}
	groups := make([][]*reference.Reference, 0, len(order))
	for _, text := range order {
		groups = append(groups, byText[text])
	}
	return groups
}

// resolveAddNames computes, for each conflicting reference, the minimum
// count of names to show that distinguishes its rendering from every other
// member still in conflict, per §4.5.3 step 1. It returns the references
// still tied after trying every name count up to the longest author list.
func resolveAddNames(group []*reference.Reference, render func(*reference.Reference, hints.ProcHints) string, out map[string]hints.ProcHints) []*reference.Reference {
	maxNames := 0
	for _, r := range group {
		if n := len(r.Authors()); n > maxNames {
			maxNames = n
		}
	}
	for k := 1; k <= maxNames; k++ {
		candidate := make(map[string]string, len(group))
		kk := k
		for _, r := range group {
			h := out[r.ID]
			h.MinNamesToShow = &kk
			candidate[r.ID] = render(r, h)
		}
		if allUnique(group, candidate) {
			for _, r := range group {
				h := out[r.ID]
				h.MinNamesToShow = &kk
				h.DisambCondition = true
				out[r.ID] = h
			}
			return nil
		}
	}
	return group
}

// resolveExpandGivenNames sets ExpandGivenNames on every still-conflicting
// reference and re-renders, per §4.5.3 step 2.
func resolveExpandGivenNames(group []*reference.Reference, render func(*reference.Reference, hints.ProcHints) string, out map[string]hints.ProcHints) []*reference.Reference {
	candidate := make(map[string]string, len(group))
	for _, r := range group {
		h := out[r.ID]
		h.ExpandGivenNames = true
		candidate[r.ID] = render(r, h)
	}
	if !allUnique(group, candidate) {
		return group
	}
	for _, r := range group {
		h := out[r.ID]
		h.ExpandGivenNames = true
		h.DisambCondition = true
		out[r.ID] = h
	}
	return nil
}

// assignYearSuffixes breaks remaining ties by letter, in order's canonical
// sort order, per §4.5.3 step 3. order is document-global unless the caller
// (xentry.Disambiguate invoked per bibliography group, see
// engine.disambiguatePerGroup) has already restricted it to one group's
// members, per style.DisambiguationOptions.PerGroup (§4.5.2/§9).
func assignYearSuffixes(group []*reference.Reference, order []*reference.Reference, out map[string]hints.ProcHints) {
	inGroup := make(map[string]bool, len(group))
	for _, r := range group {
		inGroup[r.ID] = true
	}
	letter := 1
	for _, r := range order {
		if !inGroup[r.ID] {
			continue
		}
		h := out[r.ID]
		h.YearSuffixLetter = letter
		h.DisambCondition = true
		out[r.ID] = h
		letter++
	}
}

func allUnique(group []*reference.Reference, texts map[string]string) bool {
	seen := make(map[string]bool, len(group))
	for _, r := range group {
		t := texts[r.ID]
		if seen[t] {
			return false
		}
		seen[t] = true
	}
	return true
}

// joinTokenText concatenates a stream's visible text, giving conflict
// detection a comparable key without caring about delimiter/wrap tokens.
func joinTokenText(s token.Stream) string {
	var b strings.Builder
	for _, t := range s {
		if t.Kind == token.Text {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
