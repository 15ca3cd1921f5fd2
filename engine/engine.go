// Package engine wires the option resolver, template evaluator, cross-entry
// passes, and punctuation normalizer into the single pure entry point: a
// (Style, Locale, References, Citations) triple in, a normalized Document
// plus a diagnostic list out (§5 "pure, synchronous computation"). Backend
// selection (HTML/Djot/text) happens downstream, in package output.
package engine

import (
	"fmt"

	"github.com/scholarly-tools/citeproc-go/citation"
	"github.com/scholarly-tools/citeproc-go/eval"
	"github.com/scholarly-tools/citeproc-go/hints"
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/output"
	"github.com/scholarly-tools/citeproc-go/punct"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/resolve"
	"github.com/scholarly-tools/citeproc-go/style"
	"github.com/scholarly-tools/citeproc-go/token"
	"github.com/scholarly-tools/citeproc-go/xentry"
)

// DiagnosticKind names one of the non-fatal conditions the render path
// collects instead of failing outright (§7).
type DiagnosticKind string

const (
	KindUnknownType             DiagnosticKind = "unknown-type"
	KindUnknownReference        DiagnosticKind = "unknown-reference"
	KindDisambiguationExhausted DiagnosticKind = "disambiguation-exhausted"
)

// Diagnostic reports a recovered render-time condition alongside the output
// it didn't prevent from being produced.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	RefID   string
}

// Result is the complete output of one render: the normalized document
// ready for a backend, plus whatever diagnostics were collected along the
// way.
type Result struct {
	Document    output.Document
	Diagnostics []Diagnostic
}

// Render runs the full pipeline: resolve options, sort and group the
// bibliography, disambiguate conflicting references, evaluate each
// reference's and citation cluster's template, and normalize the resulting
// token streams. It never mutates its inputs.
func Render(st *style.Style, loc *locale.Locale, refs []*reference.Reference, clusters []citation.Cluster) (*Result, error) {
	res := &Result{}
	resolver := resolve.New(st)

	byID := make(map[string]*reference.Reference, len(refs))
	for _, r := range refs {
		byID[r.ID] = r
	}

	if st.Bibliography != nil {
		sections, diags := renderBibliography(st, resolver, loc, refs)
		res.Document.Bibliography = sections
		res.Diagnostics = append(res.Diagnostics, diags...)
	}

	if st.Citation != nil && len(clusters) > 0 {
		table := xentry.BuildHints(clusters, byID, st, loc)
		citeOpts := resolver.Options(resolve.ScopeCitation)
		citationClusters, diags, err := renderClusters(st, citeOpts, loc, byID, clusters, table)
		if err != nil {
			return nil, err
		}
		res.Document.Citations = citationClusters
		res.Diagnostics = append(res.Diagnostics, diags...)
	}

	return res, nil
}

// renderBibliography sorts, groups, disambiguates, and renders every
// reference into a bibliography section list (§4.5.1, §4.5.2, §4.5.3).
func renderBibliography(st *style.Style, resolver *resolve.Resolver, loc *locale.Locale, refs []*reference.Reference) ([]output.Section, []Diagnostic) {
	bib := st.Bibliography
	bibOpts := resolver.Options(resolve.ScopeBibliography)

	sorted := xentry.Sort(refs, bib.SortKeys, loc)
	titleOrder := xentry.Sort(refs, []style.SortKeySpec{{Key: "title"}}, loc)
	groups := xentry.GroupBy(sorted, bib.GroupBy)

	var refHints map[string]hints.ProcHints
	if bibOpts.Disambiguation.PerGroup && bib.GroupBy != nil && bib.GroupBy.Key != "" {
		refHints = disambiguatePerGroup(groups, titleOrder, st, loc)
	} else {
		refHints = xentry.Disambiguate(refs, titleOrder, st, loc)
	}

	diags := disambiguationExhaustedDiagnostics(refs, refHints)

	var sections []output.Section
	ordinal := 0
	for _, g := range groups {
		heading := ""
		if bib.GroupBy != nil && bib.GroupBy.Key != "" {
			heading = xentry.HeadingLabel(g, loc)
		}
		entries := make([]output.Entry, 0, len(g.Refs))
		for _, r := range g.Refs {
			ordinal++
			tmpl := bib.TemplateFor(r.EffectiveType())
			if tmpl.Kind == "" && len(tmpl.Children) == 0 {
				diags = append(diags, Diagnostic{
					Kind:    KindUnknownType,
					Message: fmt.Sprintf("reference %q has type %q with no matching template", r.ID, r.EffectiveType()),
					RefID:   r.ID,
				})
				entries = append(entries, output.Entry{RefID: r.ID})
				continue
			}
			h := refHints[r.ID]
			h.CitationNumber = ordinal
			ctx := eval.NewContext(r, bibOpts, loc, h)
			stream := eval.Render(tmpl, ctx)
			if bib.EntryWrap != style.WrapNone {
				stream = wrapStream(stream, token.WrapKind(bib.EntryWrap))
			}
			stream = punct.Normalize(stream, bibOpts.QuotePunctuation)
			entries = append(entries, output.Entry{RefID: r.ID, Stream: stream})
		}
		sections = append(sections, output.Section{Heading: heading, Entries: entries})
	}
	return sections, diags
}

// disambiguatePerGroup runs the disambiguation passes independently within
// each bibliography group instead of over the full reference list, so a
// year-suffix letter sequence (and the add-names/expand-given-names
// conflict sets feeding it) restarts at each group boundary (§4.5.2/§9
// disambiguation.per_group).
func disambiguatePerGroup(groups []xentry.Group, titleOrder []*reference.Reference, st *style.Style, loc *locale.Locale) map[string]hints.ProcHints {
	out := make(map[string]hints.ProcHints)
	for _, g := range groups {
		groupOrder := filterOrder(titleOrder, g.Refs)
		for id, h := range xentry.Disambiguate(g.Refs, groupOrder, st, loc) {
			out[id] = h
		}
	}
	return out
}

// filterOrder restricts order (a full-document sort) to the references in
// group, preserving order's relative sequence.
func filterOrder(order []*reference.Reference, group []*reference.Reference) []*reference.Reference {
	in := make(map[string]bool, len(group))
	for _, r := range group {
		in[r.ID] = true
	}
	out := make([]*reference.Reference, 0, len(group))
	for _, r := range order {
		if in[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// disambiguationExhaustedDiagnostics flags every base conflict group (two or
// more references that share an author-sort key and a year, the common
// prerequisite for a citation collision) whose members never received a
// year-suffix letter — meaning add-names and expand-given-names both failed
// to separate them and year-suffix was disabled or not reached (§7
// "Disambiguation-exhausted").
func disambiguationExhaustedDiagnostics(refs []*reference.Reference, refHints map[string]hints.ProcHints) []Diagnostic {
	byKey := make(map[string][]*reference.Reference)
	var order []string
	for _, r := range refs {
		k := conflictSignature(r)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], r)
	}

	var diags []Diagnostic
	for _, k := range order {
		group := byKey[k]
		if len(group) < 2 {
			continue
		}
		var unresolved []*reference.Reference
		for _, r := range group {
			h := refHints[r.ID]
			if h.YearSuffixLetter == 0 && h.MinNamesToShow == nil && !h.ExpandGivenNames {
				unresolved = append(unresolved, r)
			}
		}
		if len(unresolved) < 2 {
			continue
		}
		ids := make([]string, len(unresolved))
		for i, r := range unresolved {
			ids[i] = r.ID
		}
		diags = append(diags, Diagnostic{
			Kind:    KindDisambiguationExhausted,
			Message: fmt.Sprintf("references %v still conflict after disambiguation", ids),
		})
	}
	return diags
}

// conflictSignature approximates the base-style rendering collision key
// (first author's sort form plus year) without a full re-render, since this
// check runs after xentry.Disambiguate has already produced final hints.
func conflictSignature(r *reference.Reference) string {
	authors := r.Authors()
	family := ""
	if len(authors) > 0 {
		family = authors[0].SortKey()
	}
	year, _ := r.Date(reference.DateIssued)
	return fmt.Sprintf("%s\x00%d", family, year.Start.Year)
}

// renderClusters evaluates every citation cluster's cited items against
// their computed hints, joining them with the style's layout delimiter and
// enclosing the whole cluster in its layout wrap (§4.2 citation rendering,
// §6 "Citation input").
func renderClusters(st *style.Style, opts style.Options, loc *locale.Locale, refs map[string]*reference.Reference, clusters []citation.Cluster, table hints.Table) ([]output.Cluster, []Diagnostic, error) {
	var out []output.Cluster
	var diags []Diagnostic
	labelTerms := locatorLabelTerms(st.Citation.LocatorLabels)

	for _, cluster := range clusters {
		var body token.Stream
		for i, item := range cluster.Items {
			ref, ok := refs[item.RefID]
			if !ok {
				diags = append(diags, Diagnostic{
					Kind:    KindUnknownReference,
					Message: fmt.Sprintf("citation cluster %q cites unknown reference %q", cluster.ID, item.RefID),
					RefID:   item.RefID,
				})
				continue
			}
			h := table.Lookup(cluster.ID, item.RefID)
			ctx := eval.NewContext(ref, opts, loc, h)
			tmpl := st.CitationTemplateFor(item.SuppressAuthor)
			itemStream := eval.Render(tmpl, ctx)

			var one token.Stream
			if item.Prefix != "" {
				one = one.Append(token.NewPunct(item.Prefix))
			}
			one = one.Append(itemStream...)
			one = one.Append(locatorStream(item, labelTerms)...)
			if item.Suffix != "" {
				one = one.Append(token.NewPunct(item.Suffix))
			}

			if i > 0 && len(body) > 0 {
				body = body.Append(token.NewDelim(clusterDelimiter(st.Citation)))
			}
			body = body.Append(one...)
		}

		if st.Citation.LayoutWrap != style.WrapNone {
			body = wrapStream(body, token.WrapKind(st.Citation.LayoutWrap))
		}
		body = punct.Normalize(body, opts.QuotePunctuation)
		out = append(out, output.Cluster{ID: cluster.ID, Stream: body})
	}
	return out, diags, nil
}

func clusterDelimiter(c *style.CitationSpec) string {
	if c.LayoutDelimiter != "" {
		return c.LayoutDelimiter
	}
	return "; "
}

// locatorStream renders a cited item's locator as ", <label term> <value>",
// e.g. ", p. 23" (§6 "Citation input", locator value + label); the ", " and
// the space after the term are Delim tokens.
func locatorStream(item citation.Item, labelTerms map[string]string) token.Stream {
	if item.Locator == nil || item.Locator.Value == "" {
		return nil
	}
	term := item.Locator.Label
	if t, ok := labelTerms[item.Locator.Label]; ok {
		term = t
	}
	var out token.Stream
	out = out.Append(token.NewDelim(", "))
	if term != "" {
		out = out.Append(token.NewText(term, token.ClassLabel))
		out = out.Append(token.NewDelim(" "))
	}
	out = out.Append(token.NewText(item.Locator.Value, token.ClassLocator))
	return out
}

func locatorLabelTerms(rules []style.LocatorLabelRule) map[string]string {
	out := make(map[string]string, len(rules))
	for _, r := range rules {
		out[r.Label] = r.Term
	}
	return out
}

func wrapStream(s token.Stream, w token.WrapKind) token.Stream {
	out := token.Stream{token.NewOpen(w)}
	out = out.Append(s...)
	out = out.Append(token.NewClose(w))
	return out
}
