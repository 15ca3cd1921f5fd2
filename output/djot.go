package output

import (
	"fmt"
	"strings"

	"github.com/scholarly-tools/citeproc-go/token"
)

// djotBackend emits Djot markup (§4.7 "structured document suitable for
// downstream conversion"): `_emph_`, `*strong*`, a `{.small-caps}` bracketed
// span, and `::: kind` fenced divs for semantic containers.
type djotBackend struct {
	semantics bool
	b         strings.Builder
}

func newDjot(opts Options) Backend {
	return &djotBackend{semantics: opts.Semantics}
}

func (d *djotBackend) Name() string { return "djot" }

func (d *djotBackend) Text(s string, class token.SemanticClass) {
	if d.semantics && class != token.ClassNone {
		fmt.Fprintf(&d.b, "[%s]{.%s}", s, class)
		return
	}
	d.b.WriteString(s)
}

func (d *djotBackend) OpenSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		d.b.WriteString("(")
	case token.WrapBrackets:
		d.b.WriteString("[")
	case token.WrapQuote:
		d.b.WriteString("“")
	case token.WrapEmph:
		d.b.WriteString("_")
	case token.WrapStrong:
		d.b.WriteString("*")
	case token.WrapSmallCaps:
		d.b.WriteString("[")
	}
}

func (d *djotBackend) CloseSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		d.b.WriteString(")")
	case token.WrapBrackets:
		d.b.WriteString("]")
	case token.WrapQuote:
		d.b.WriteString("”")
	case token.WrapEmph:
		d.b.WriteString("_")
	case token.WrapStrong:
		d.b.WriteString("*")
	case token.WrapSmallCaps:
		d.b.WriteString("]{.small-caps}")
	}
}

func (d *djotBackend) OpenContainer(kind, id string) {
	if d.semantics {
		fmt.Fprintf(&d.b, "::: {.%s #%s}\n", kind, id)
		return
	}
	d.b.WriteString(":::\n")
}

func (d *djotBackend) CloseContainer(string) {
	d.b.WriteString("\n:::\n")
}

func (d *djotBackend) Heading(text string) {
	fmt.Fprintf(&d.b, "## %s\n", text)
}

func (d *djotBackend) LineBreak() {
	d.b.WriteString("\n")
}

func (d *djotBackend) Result() string {
	return d.b.String()
}
