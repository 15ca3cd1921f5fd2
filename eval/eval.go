// Package eval is the template evaluator (§4.2): it walks a style.Component
// tree against one reference, consulting the option resolver and the value
// extractors (names, dates, numbers), and emits an intermediate token
// stream for the punctuation normalizer and output backends.
package eval

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scholarly-tools/citeproc-go/dates"
	"github.com/scholarly-tools/citeproc-go/hints"
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/names"
	"github.com/scholarly-tools/citeproc-go/numbers"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/resolve"
	"github.com/scholarly-tools/citeproc-go/style"
	"github.com/scholarly-tools/citeproc-go/token"
)

// Context bundles everything the evaluator needs to render one component
// tree against one reference that doesn't change across the recursive walk.
type Context struct {
	Ref     *reference.Reference
	Options style.Options
	Locale  *locale.Locale
	Hints   hints.ProcHints
	RefType string

	// seen tracks which logical variable names have already been rendered
	// through an explicit slot in this pass, enforcing the variable-once
	// rule (§4.2 "variable") for implicit fallbacks within the same walk.
	seen map[string]bool
}

// NewContext builds an evaluation context. RefType defaults to the
// reference's own effective type.
func NewContext(ref *reference.Reference, opts style.Options, loc *locale.Locale, h hints.ProcHints) *Context {
	return &Context{
		Ref:     ref,
		Options: opts,
		Locale:  loc,
		Hints:   h,
		RefType: ref.EffectiveType(),
		seen:    make(map[string]bool),
	}
}

// Render walks the component tree rooted at c and returns its token stream.
func Render(c style.Component, ctx *Context) token.Stream {
	if resolve.Suppressed(c, ctx.RefType) {
		return token.Stream{token.NewSuppressed()}
	}
	if c.DisambiguateOnly && !ctx.Hints.DisambCondition {
		return token.Stream{token.NewSuppressed()}
	}
	if len(c.IfPosition) > 0 && !positionMatches(c.IfPosition, ctx.Hints.Position) {
		return token.Stream{token.NewSuppressed()}
	}
	if c.NearNoteOnly && !ctx.Hints.NearNote {
		return token.Stream{token.NewSuppressed()}
	}

	rendering := resolve.Rendering(c, ctx.RefType)

	var body token.Stream
	switch c.Kind {
	case style.KindContributor:
		body = renderContributor(c, ctx)
	case style.KindDate:
		body = renderDate(c, ctx)
	case style.KindTitle:
		body = renderTitle(c, ctx)
	case style.KindNumber:
		body = renderNumber(c, ctx)
	case style.KindVariable:
		body = renderVariable(c, ctx)
	case style.KindLabel:
		body = renderLabel(c, ctx)
	case style.KindItems:
		body = renderItems(c, ctx)
	default:
		body = token.Stream{token.NewSuppressed()}
	}

	if body.IsEmpty() {
		return token.Stream{token.NewSuppressed()}
	}
	return wrap(body, rendering)
}

func renderContributor(c style.Component, ctx *Context) token.Stream {
	cs := reference.ByRole(ctx.Ref.Contributors, c.Role)
	class := token.ClassAuthor
	if c.Role != "author" && c.Role != "" {
		class = token.SemanticClass(c.Role)
	}

	if len(cs) == 0 {
		if sub := renderContributorSubstitute(c, ctx); sub != nil {
			return sub
		}
		return nil
	}
	ctx.seen[c.Role] = true

	h := namesHints(ctx.Hints)
	text := names.FormatList(cs, ctx.Options.Contributor, c.Form, h)
	if c.DisplayAsSort {
		var parts []string
		for _, one := range cs {
			parts = append(parts, names.FormatOne(one, ctx.Options.Contributor, true))
		}
		text = strings.Join(parts, ctx.Options.Contributor.Delimiter)
	}
	if text == "" {
		return nil
	}
	return token.Stream{token.NewText(text, class)}
}

// renderContributorSubstitute applies the ordered fallback list (§3
// Substitute) when the primary contributor role is empty: later fallback
// names may be another contributor role, or "title" to fall back to the
// primary title.
func renderContributorSubstitute(c style.Component, ctx *Context) token.Stream {
	for _, fallback := range ctx.Options.Substitute.Fallback {
		if fallback == "title" {
			if ctx.seen["title"] {
				continue
			}
			full := ctx.Ref.Titles.Primary.Full()
			if full == "" {
				continue
			}
			ctx.seen["title"] = true
			return token.Stream{token.NewText(full, token.ClassTitle)}
		}
		alt := reference.ByRole(ctx.Ref.Contributors, fallback)
		if len(alt) == 0 {
			continue
		}
		ctx.seen[fallback] = true
		text := names.FormatList(alt, ctx.Options.Contributor, c.Form, namesHints(ctx.Hints))
		if text == "" {
			continue
		}
		return token.Stream{token.NewText(text, token.SemanticClass(fallback))}
	}
	return nil
}

// positionMatches reports whether pos is named in want (the component's
// IfPosition list), comparing against hints.Position's string values.
func positionMatches(want []string, pos hints.Position) bool {
	for _, w := range want {
		if hints.Position(w) == pos {
			return true
		}
	}
	return false
}

func namesHints(h hints.ProcHints) *names.Hints {
	subsequent := h.Position != "" && h.Position != hints.PositionFirst
	if h.MinNamesToShow == nil && !h.ExpandGivenNames && !subsequent {
		return nil
	}
	return &names.Hints{MinNamesToShow: h.MinNamesToShow, ExpandGivenNames: h.ExpandGivenNames, Subsequent: subsequent}
}

func renderDate(c style.Component, ctx *Context) token.Stream {
	v, ok := ctx.Ref.Date(reference.DateRole(c.DateRole))
	if !ok || v.IsZero() {
		return nil
	}
	yearSuffix := ""
	if c.DateForm == style.DateFormYear && ctx.Hints.DisambCondition {
		yearSuffix = dates.YearSuffix(ctx.Hints.YearSuffixLetter)
	}
	text := dates.Format(v, c.DateForm, ctx.Options.Date, ctx.Locale, yearSuffix)
	if text == "" {
		return nil
	}
	ctx.seen[c.DateRole] = true
	return token.Stream{token.NewText(text, token.ClassYear)}
}

func renderTitle(c style.Component, ctx *Context) token.Stream {
	var t reference.Title
	switch c.TitleKind {
	case style.TitleShort:
		main := ctx.Ref.Titles.Primary.Short
		if main == "" {
			return nil
		}
		return token.Stream{token.NewText(applyCase(main, ctx.Options.Title.Case), token.ClassTitle)}
	case style.TitleParentMonograph, style.TitleParentSerial:
		t = ctx.Ref.Titles.Container
	default:
		t = ctx.Ref.Titles.Primary
	}
	if t.IsZero() {
		return nil
	}
	ctx.seen["title"] = true
	class := token.ClassTitle
	if c.TitleKind == style.TitleParentMonograph || c.TitleKind == style.TitleParentSerial {
		class = token.ClassContainer
	}
	return token.Stream{token.NewText(applyCase(t.Full(), ctx.Options.Title.Case), class)}
}

func renderNumber(c style.Component, ctx *Context) token.Stream {
	switch c.NumberKind {
	case style.NumberVolume:
		return textOrNil(ctx.Ref.Volume, token.ClassNone)
	case style.NumberIssue:
		return textOrNil(ctx.Ref.Issue, token.ClassNone)
	case style.NumberEdition:
		return textOrNil(ctx.Ref.Edition, token.ClassNone)
	case style.NumberChapterNumber:
		return textOrNil(ctx.Ref.ChapterNumber, token.ClassNone)
	case style.NumberCitationNumber:
		if ctx.Hints.CitationNumber <= 0 {
			return nil
		}
		return token.Stream{token.NewText(strconv.Itoa(ctx.Hints.CitationNumber), token.ClassNone)}
	case style.NumberPages:
		if ctx.Ref.Page.IsZero() {
			return nil
		}
		text := numbers.FormatPageRange(ctx.Ref.Page, c.PageRangeFormat)
		if text == "" {
			return nil
		}
		return token.Stream{token.NewText(text, token.ClassLocator)}
	default:
		return nil
	}
}

func textOrNil(s string, class token.SemanticClass) token.Stream {
	if s == "" {
		return nil
	}
	return token.Stream{token.NewText(s, class)}
}

func renderVariable(c style.Component, ctx *Context) token.Stream {
	val, ok := lookupVariable(ctx.Ref, c.Variable)
	if !ok || val == "" {
		return nil
	}
	ctx.seen[c.Variable] = true
	return token.Stream{token.NewText(val, token.ClassNone)}
}

func lookupVariable(r *reference.Reference, name string) (string, bool) {
	switch name {
	case "doi":
		return r.DOI, r.DOI != ""
	case "url":
		return r.URL, r.URL != ""
	case "publisher":
		return r.Publisher, r.Publisher != ""
	case "publisher-place":
		return r.PublisherPlace, r.PublisherPlace != ""
	case "container-title":
		return r.Titles.Container.Full(), !r.Titles.Container.IsZero()
	case "collection-title":
		return r.CollectionTitle, r.CollectionTitle != ""
	case "note":
		return r.Note, r.Note != ""
	case "language":
		return r.Language, r.Language != ""
	default:
		if v, ok := r.GetCustom(name); ok {
			if s, ok := v.(string); ok {
				return s, s != ""
			}
		}
		return "", false
	}
}

func renderLabel(c style.Component, ctx *Context) token.Stream {
	if ctx.Locale == nil {
		return nil
	}
	plural := false
	if c.PluralAgreement {
		plural = labelIsPlural(c.ForVariable, ctx.Ref)
	}
	form := string(c.LabelForm)
	if form == "" {
		form = string(ctx.Options.Substitute.LabelForm)
	}
	if term, ok := ctx.Locale.RoleLabel(c.ForVariable, form, plural); ok {
		return token.Stream{token.NewText(term, token.ClassLabel)}
	}
	if term, ok := ctx.Locale.Term(c.ForVariable, form, plural); ok {
		return token.Stream{token.NewText(term, token.ClassLabel)}
	}
	return nil
}

func labelIsPlural(forVariable string, r *reference.Reference) bool {
	switch forVariable {
	case "page", "pages":
		return numbers.IsPlural(r.Page)
	default:
		return len(reference.ByRole(r.Contributors, forVariable)) > 1
	}
}

func renderItems(c style.Component, ctx *Context) token.Stream {
	var out token.Stream
	delim := c.ItemsDelimiter
	first := true
	for _, child := range c.Children {
		childStream := Render(child, ctx)
		if childStream.IsEmpty() {
			continue
		}
		if !first && delim != "" {
			out = out.Append(token.NewDelim(delim))
		}
		out = out.Append(childStream...)
		first = false
	}
	return out
}

// wrap applies one component's Rendering bundle to its already-rendered
// body: text-case (per Text token, so Delim/Punct tokens are untouched),
// then the enclosing wrap (parens/brackets/quotes), the quote flag,
// small-caps, strong and emph spans, in that nesting order, and finally
// prefix/suffix as Punct tokens outside all of them, preserving body's
// token structure for the normalizer.
func wrap(body token.Stream, r style.Rendering) token.Stream {
	if r.TextCase != "" {
		body = mapText(body, func(s string) string { return applyCase(s, string(r.TextCase)) })
	}

	out := body
	switch r.Wrap {
	case style.WrapParens:
		out = enclose(out, token.WrapParens)
	case style.WrapBrackets:
		out = enclose(out, token.WrapBrackets)
	case style.WrapQuotes:
		out = enclose(out, token.WrapQuote)
	}
	if r.Quote && r.Wrap != style.WrapQuotes {
		out = enclose(out, token.WrapQuote)
	}
	if r.SmallCaps {
		out = enclose(out, token.WrapSmallCaps)
	}
	if r.Strong {
		out = enclose(out, token.WrapStrong)
	}
	if r.Emph {
		out = enclose(out, token.WrapEmph)
	}

	var wrapped token.Stream
	if r.Prefix != "" {
		wrapped = wrapped.Append(token.NewPunct(r.Prefix))
	}
	wrapped = wrapped.Append(out...)
	if r.Suffix != "" {
		wrapped = wrapped.Append(token.NewPunct(r.Suffix))
	}
	return wrapped
}

func enclose(s token.Stream, w token.WrapKind) token.Stream {
	out := token.Stream{token.NewOpen(w)}
	out = out.Append(s...)
	out = out.Append(token.NewClose(w))
	return out
}

func mapText(s token.Stream, f func(string) string) token.Stream {
	out := make(token.Stream, len(s))
	for i, t := range s {
		if t.Kind == token.Text {
			t.Text = f(t.Text)
		}
		out[i] = t
	}
	return out
}

var (
	titleCaser = cases.Title(language.English)
	upperCaser = cases.Upper(language.English)
	lowerCaser = cases.Lower(language.English)
)

// applyCase performs the text-case transform named by tc. "sentence" has no
// ready-made golang.org/x/text transformer, so it's hand-rolled: lowercase
// everything, then capitalize the first rune. It does not preserve
// already-capitalized proper nouns or acronyms, since that needs a
// style-supplied protected-word list that's out of scope here.
func applyCase(s string, tc string) string {
	switch style.TextCase(tc) {
	case style.CaseUpper:
		return upperCaser.String(s)
	case style.CaseLower:
		return lowerCaser.String(s)
	case style.CaseTitle:
		return titleCaser.String(s)
	case style.CaseSentence:
		return sentenceCase(s)
	case style.CaseCapitalizeFirst:
		return capitalizeFirst(s)
	default:
		return s
	}
}

func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	lower := lowerCaser.String(s)
	return capitalizeFirst(lower)
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	first := cases.Title(language.English).String(string(r[0]))
	return first + string(r[1:])
}
