// Package names formats contributor lists into text: initialization,
// particle demotion, et-al truncation, and the and/delimiter interleaving
// rules (§4.2 contributor component). It never parses free-text names —
// reference.PersonalName arrives already structured (I-01).
package names

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// Hints carries the cross-entry disambiguation adjustments that override
// the style's static et-al/given-name settings for one rendering (§3
// ProcHints). A nil Hints behaves as "no override".
type Hints struct {
	MinNamesToShow   *int
	ExpandGivenNames bool
	// Subsequent is true when this is not the first citation of the
	// reference in the document (hints.ProcHints.Position != PositionFirst),
	// gating EtAlOptions.SubsequentThreshold/SubsequentUseFirst.
	Subsequent bool
}

// FormatPersonal renders one structured personal name per the contributor
// options: name-as-sort-order, initialize-with, particle demotion.
func FormatPersonal(p reference.PersonalName, opts style.ContributorOptions, sortOrder bool) string {
	given := p.Given
	if opts.InitializeWith != "" && !p.StaticOrdering {
		given = initials(given, opts.InitializeWith, initializeHyphen(opts))
	}

	var family strings.Builder
	if opts.DemoteNonDroppingParticle && sortOrder {
		// particle sorts with the given name in inverted order: "Beethoven, L. van"
	} else if p.NonDroppingParticle != "" {
		family.WriteString(p.NonDroppingParticle)
		family.WriteString(" ")
	}
	family.WriteString(p.Family)

	var b strings.Builder
	if sortOrder && !p.StaticOrdering {
		b.WriteString(family.String())
		if given != "" || p.DroppingParticle != "" {
			b.WriteString(", ")
		}
		if p.DroppingParticle != "" {
			b.WriteString(p.DroppingParticle)
			if given != "" {
				b.WriteString(" ")
			}
		}
		b.WriteString(given)
		if opts.DemoteNonDroppingParticle && p.NonDroppingParticle != "" {
			if given != "" || p.DroppingParticle != "" {
				b.WriteString(" ")
			}
			b.WriteString(p.NonDroppingParticle)
		}
	} else {
		if given != "" {
			b.WriteString(given)
			b.WriteString(" ")
		}
		if p.DroppingParticle != "" {
			b.WriteString(p.DroppingParticle)
			b.WriteString(" ")
		}
		b.WriteString(family.String())
	}
	if p.Suffix != "" {
		if p.CommaSuffix {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(p.Suffix)
	}
	return b.String()
}

func initializeHyphen(opts style.ContributorOptions) bool {
	if opts.InitializeWithHyphen == nil {
		return true
	}
	return *opts.InitializeWithHyphen
}

// initials reduces a given-name string to its initials: each initial is
// followed by sep's mark (sep without trailing spaces), and initials are
// joined by sep's trailing spaces, so "John Albert" -> "J. A." for sep=". "
// with no trailing space after the last. Hyphenated given names either
// collapse to one initial (hyphen=false) or keep separate hyphen-joined
// initials, each marked (hyphen=true): "Jean-Paul" -> "J.-P." for sep=". ".
func initials(given, sep string, hyphen bool) string {
	if given == "" {
		return ""
	}
	mark := strings.TrimRight(sep, " ")
	words := strings.Fields(given)
	var out []string
	for _, w := range words {
		if hyphen && strings.Contains(w, "-") {
			parts := strings.Split(w, "-")
			var ip []string
			for _, p := range parts {
				if p == "" {
					continue
				}
				ip = append(ip, firstRuneUpper(p))
			}
			out = append(out, strings.Join(ip, mark+"-")+mark)
			continue
		}
		first := w
		if strings.Contains(w, "-") {
			first = strings.SplitN(w, "-", 2)[0]
		}
		out = append(out, firstRuneUpper(first)+mark)
	}
	return strings.Join(out, sep[len(mark):])
}

func firstRuneUpper(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(unicode.ToUpper(r[0]))
}

// FormatOne renders a single contributor (personal or literal) in either
// display or sort order.
func FormatOne(c reference.Contributor, opts style.ContributorOptions, sortOrder bool) string {
	if c.IsLiteral() {
		return c.Literal
	}
	return FormatPersonal(*c.Personal, opts, sortOrder)
}

// FormatList renders an ordered contributor list under et-al truncation
// (including the subsequent-citation threshold and et-al-use-last form),
// and-style, and delimiter-precedes-last/-et-al rules (§4.2 contributor).
// hints, if non-nil, overrides the static et-al threshold, marks the
// citation as non-first for SubsequentThreshold/SubsequentUseFirst, and
// forces given-name expansion, per ProcHints.
func FormatList(cs []reference.Contributor, opts style.ContributorOptions, form style.ContributorForm, hints *Hints) string {
	if len(cs) == 0 {
		return ""
	}
	if form == style.FormCount {
		return strconv.Itoa(len(cs))
	}

	effectiveOpts := opts
	if hints != nil && hints.ExpandGivenNames {
		h := false
		effectiveOpts.InitializeWithHyphen = &h
		effectiveOpts.InitializeWith = ""
	}

	etAl := opts.EtAl
	if hints != nil && hints.Subsequent && etAl.SubsequentThreshold > 0 {
		etAl.Min = etAl.SubsequentThreshold
		if etAl.SubsequentUseFirst > 0 {
			etAl.UseFirst = etAl.SubsequentUseFirst
		}
	}

	minToShow := len(cs)
	truncated := false
	if min := etAl.Min; min > 0 && len(cs) >= min {
		minToShow = etAl.UseFirst
		if minToShow <= 0 {
			minToShow = 1
		}
		truncated = true
	}
	if hints != nil && hints.MinNamesToShow != nil {
		minToShow = *hints.MinNamesToShow
		truncated = minToShow < len(cs)
	}
	if minToShow > len(cs) {
		minToShow = len(cs)
		truncated = false
	}

	shown := cs[:minToShow]
	rendered := make([]string, len(shown))
	for i, c := range shown {
		sortOrder := effectiveOpts.NameAsSortOrder
		if effectiveOpts.DisplayAsSort == "all" {
			sortOrder = true
		} else if effectiveOpts.DisplayAsSort == "first" {
			sortOrder = i == 0
		}
		rendered[i] = FormatOne(c, effectiveOpts, sortOrder)
	}

	if truncated {
		if opts.EtAl.UseLast && minToShow < len(cs)-1 {
			return joinWithLastRetained(rendered, cs[len(cs)-1], effectiveOpts, opts)
		}
		return joinEtAl(rendered, opts)
	}

	return joinWithAnd(rendered, opts)
}

// joinEtAl appends the et-al term after the shown names, per
// DelimiterPrecedesEtAl (§4.2 "delimiter-precedes-et-al"): the list
// delimiter precedes the term itself (not just a bare space) when the
// style asks for it, the same contextual/always/never vocabulary
// DelimiterPrecedesLast uses for "and".
func joinEtAl(rendered []string, opts style.ContributorOptions) string {
	joined := strings.Join(rendered, opts.Delimiter)
	if joined == "" {
		return opts.EtAlTerm
	}
	if delimiterPrecedesEtAl(opts.DelimiterPrecedesEtAl, len(rendered)) {
		sep := strings.TrimRight(opts.Delimiter, " ")
		if sep == "" {
			sep = ","
		}
		return joined + sep + " " + opts.EtAlTerm
	}
	return joined + " " + opts.EtAlTerm
}

func delimiterPrecedesEtAl(mode style.DelimiterPrecedesLast, shown int) bool {
	switch mode {
	case style.PrecedesAlways, style.PrecedesAfterInvertedName:
		return true
	case style.PrecedesContextual:
		return shown >= 2
	default:
		return false
	}
}

// joinWithLastRetained renders the et-al-use-last form: the shown names,
// an ellipsis, then the final author in the full list, in place of the
// et-al term (§4.2 "et-al-use-last").
func joinWithLastRetained(rendered []string, last reference.Contributor, effectiveOpts style.ContributorOptions, opts style.ContributorOptions) string {
	lastName := FormatOne(last, effectiveOpts, effectiveOpts.NameAsSortOrder)
	joined := strings.Join(rendered, opts.Delimiter)
	sep := strings.TrimRight(opts.Delimiter, " ")
	if sep == "" {
		sep = ","
	}
	return joined + sep + " … " + lastName
}

func joinWithAnd(names []string, opts style.ContributorOptions) string {
	n := len(names)
	if n == 0 {
		return ""
	}
	if n == 1 {
		return names[0]
	}
	delim := opts.Delimiter
	if delim == "" {
		delim = ", "
	}

	andSep := " and "
	switch opts.AndStyle {
	case style.AndSymbol:
		andSep = " & "
	case style.AndNone:
		andSep = delim
	}

	if n == 2 {
		if opts.AndStyle == style.AndNone {
			return names[0] + delim + names[1]
		}
		precedesLast := opts.DelimiterPrecedesLast == style.PrecedesAlways
		if precedesLast {
			return names[0] + delim + strings.TrimLeft(andSep, " ") + names[1]
		}
		return names[0] + andSep + names[1]
	}

	head := strings.Join(names[:n-1], delim)
	last := names[n-1]

	precedesLast := false
	switch opts.DelimiterPrecedesLast {
	case style.PrecedesAlways:
		precedesLast = true
	case style.PrecedesContextual:
		precedesLast = n >= 3
	case style.PrecedesAfterInvertedName:
		precedesLast = true
	}

	if opts.AndStyle == style.AndNone {
		return head + delim + last
	}
	if precedesLast {
		return head + delim + strings.TrimLeft(andSep, " ") + last
	}
	return head + andSep + last
}
