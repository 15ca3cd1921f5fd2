package output

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/scholarly-tools/citeproc-go/token"
)

// textBackend strips all markup and emits plain text, preserving
// punctuation and document structure (§4.7 "plain text").
type textBackend struct {
	b          strings.Builder
	wrapColumn int
}

func newText(opts Options) Backend {
	return &textBackend{wrapColumn: opts.WrapColumn}
}

func (t *textBackend) Name() string { return "text" }

func (t *textBackend) Text(s string, _ token.SemanticClass) {
	t.b.WriteString(s)
}

func (t *textBackend) OpenSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		t.b.WriteString("(")
	case token.WrapBrackets:
		t.b.WriteString("[")
	case token.WrapQuote:
		t.b.WriteString("“")
	}
}

func (t *textBackend) CloseSpan(w token.WrapKind) {
	switch w {
	case token.WrapParens:
		t.b.WriteString(")")
	case token.WrapBrackets:
		t.b.WriteString("]")
	case token.WrapQuote:
		t.b.WriteString("”")
	}
}

func (t *textBackend) OpenContainer(string, string) {}
func (t *textBackend) CloseContainer(string)        {}

func (t *textBackend) Heading(text string) {
	t.b.WriteString(text)
	t.b.WriteString("\n")
}

func (t *textBackend) LineBreak() {
	t.b.WriteString("\n")
}

func (t *textBackend) Result() string {
	if t.wrapColumn <= 0 {
		return t.b.String()
	}
	return wrapLines(t.b.String(), t.wrapColumn)
}

// wrapLines reflows each hard-broken line to wrapColumn display columns,
// breaking on spaces and measuring width with runewidth so wide runes (e.g.
// CJK) count as two columns rather than one.
func wrapLines(s string, wrapColumn int) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, wrapColumn))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, wrapColumn int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}
	var b strings.Builder
	col := 0
	for i, w := range words {
		wWidth := runewidth.StringWidth(w)
		if i > 0 {
			if col+1+wWidth > wrapColumn {
				b.WriteString("\n")
				col = 0
			} else {
				b.WriteString(" ")
				col++
			}
		}
		b.WriteString(w)
		col += wWidth
	}
	return b.String()
}
