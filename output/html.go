package output

import (
	"fmt"
	"html"
	"strings"

	"github.com/scholarly-tools/citeproc-go/token"
)

// htmlBackend emits HTML with optional semantic classes (§4.7). Literal
// punctuation wraps (parentheses, brackets) are emitted as plain characters;
// only the markup-capable wraps (emphasis, strong, small-caps, quote) become
// elements.
type htmlBackend struct {
	semantics bool
	b         strings.Builder
}

func newHTML(opts Options) Backend {
	return &htmlBackend{semantics: opts.Semantics}
}

func (h *htmlBackend) Name() string { return "html" }

func (h *htmlBackend) Text(s string, class token.SemanticClass) {
	esc := html.EscapeString(s)
	if h.semantics && class != token.ClassNone {
		fmt.Fprintf(&h.b, `<span class="%s">%s</span>`, class, esc)
		return
	}
	h.b.WriteString(esc)
}

func (h *htmlBackend) OpenSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		h.b.WriteString("(")
	case token.WrapBrackets:
		h.b.WriteString("[")
	case token.WrapQuote:
		h.b.WriteString("&ldquo;")
	case token.WrapEmph:
		h.b.WriteString("<em>")
	case token.WrapStrong:
		h.b.WriteString("<strong>")
	case token.WrapSmallCaps:
		h.b.WriteString(`<span class="small-caps">`)
	}
}

func (h *htmlBackend) CloseSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		h.b.WriteString(")")
	case token.WrapBrackets:
		h.b.WriteString("]")
	case token.WrapQuote:
		h.b.WriteString("&rdquo;")
	case token.WrapEmph:
		h.b.WriteString("</em>")
	case token.WrapStrong:
		h.b.WriteString("</strong>")
	case token.WrapSmallCaps:
		h.b.WriteString("</span>")
	}
}

func (h *htmlBackend) OpenContainer(kind, id string) {
	if !h.semantics {
		fmt.Fprintf(&h.b, "<div>")
		return
	}
	fmt.Fprintf(&h.b, `<div class="%s" id="%s">`, kind, html.EscapeString(id))
}

func (h *htmlBackend) CloseContainer(string) {
	h.b.WriteString("</div>")
}

func (h *htmlBackend) Heading(text string) {
	fmt.Fprintf(&h.b, "<h2>%s</h2>\n", html.EscapeString(text))
}

func (h *htmlBackend) LineBreak() {
	h.b.WriteString("\n")
}

func (h *htmlBackend) Result() string {
	return h.b.String()
}
