// Package punct implements the punctuation normalizer (§4.6): five
// successive passes over a token.Stream, one per rule, in this order:
// delete the delimiters orphaned by a suppressed slot, squeeze delimiters,
// drop any wrap pair left bracketing nothing, swap terminal punctuation
// across quote boundaries, and collapse whitespace runs.
package punct

import (
	"strings"

	"github.com/scholarly-tools/citeproc-go/style"
	"github.com/scholarly-tools/citeproc-go/token"
)

// Normalize runs the full normalizer pipeline over s. mode selects the
// quote-punctuation swap direction (§4.6 "Quote-punctuation swap").
func Normalize(s token.Stream, mode style.QuotePunctuationMode) token.Stream {
	s = deleteEmptySlots(s)
	s = squeezeDelimiters(s)
	s = balanceWraps(s)
	s = swapQuotePunctuation(s, mode)
	s = collapseWhitespace(s)
	return s
}

// deleteEmptySlots drops every Suppressed token along with the Delim
// immediately before it, plus any Delim left leading or trailing the
// stream, so a suppressed component never leaves "A, , B" behind (§4.6
// "Empty-slot deletion").
func deleteEmptySlots(s token.Stream) token.Stream {
	out := make(token.Stream, 0, len(s))
	for _, t := range s {
		if t.Kind == token.Suppressed {
			if len(out) > 0 && out[len(out)-1].Kind == token.Delim {
				out = out[:len(out)-1]
			}
			continue
		}
		if t.Kind == token.Delim && len(out) == 0 {
			continue
		}
		out = out.Append(t)
	}
	// A Delim that ended up trailing (its right neighbor was dropped) has no
	// right-hand content to separate; drop it too.
	for len(out) > 0 && out[len(out)-1].Kind == token.Delim {
		out = out[:len(out)-1]
	}
	return out
}

// squeezeDelimiters collapses adjacent Delim tokens to the longer of the
// two, and merges a Delim immediately followed by any Punct token into
// just the Punct (e.g. a trailing period absorbs a preceding
// comma-delimiter).
func squeezeDelimiters(s token.Stream) token.Stream {
	out := make(token.Stream, 0, len(s))
	for _, t := range s {
		if t.Kind == token.Delim && len(out) > 0 && out[len(out)-1].Kind == token.Delim {
			if len(t.Text) > len(out[len(out)-1].Text) {
				out[len(out)-1] = t
			}
			continue
		}
		if t.Kind == token.Punct && len(out) > 0 && out[len(out)-1].Kind == token.Delim {
			out = out[:len(out)-1]
		}
		out = out.Append(t)
	}
	return out
}

// balanceWraps drops any Open/Close pair that brackets no visible token
// (§4.6 "Wrap balance"). It assumes wrap pairs don't nest with the same
// WrapKind crossing, which the evaluator never produces.
func balanceWraps(s token.Stream) token.Stream {
	drop := make(map[int]bool)
	for i, t := range s {
		if t.Kind != token.Open {
			continue
		}
		j := matchingClose(s, i)
		if j == -1 {
			continue
		}
		if isEmptySpan(s[i+1 : j]) {
			drop[i] = true
			drop[j] = true
		}
	}
	if len(drop) == 0 {
		return s
	}
	out := make(token.Stream, 0, len(s))
	for i, t := range s {
		if drop[i] {
			continue
		}
		out = out.Append(t)
	}
	return out
}

func matchingClose(s token.Stream, open int) int {
	depth := 0
	for i := open + 1; i < len(s); i++ {
		switch s[i].Kind {
		case token.Open:
			if s[i].Wrap == s[open].Wrap {
				depth++
			}
		case token.Close:
			if s[i].Wrap == s[open].Wrap {
				if depth == 0 {
					return i
				}
				depth--
			}
		}
	}
	return -1
}

func isEmptySpan(s token.Stream) bool {
	for _, t := range s {
		switch t.Kind {
		case token.Text, token.Punct:
			if strings.TrimSpace(t.Text) != "" {
				return false
			}
		}
	}
	return true
}

// swapQuotePunctuation moves the nearest terminal period or comma across a
// WrapQuote boundary: inside the quote in US mode, outside in British mode.
func swapQuotePunctuation(s token.Stream, mode style.QuotePunctuationMode) token.Stream {
	out := make(token.Stream, len(s))
	copy(out, s)
	for i, t := range out {
		if t.Kind != token.Close || t.Wrap != token.WrapQuote {
			continue
		}
		switch mode {
		case style.QuoteModeUS:
			// Pull a following terminal punct inside the quote.
			if i+1 < len(out) && isTerminalPunct(out[i+1]) {
				out[i], out[i+1] = out[i+1], out[i]
			}
		case style.QuoteModeBritish:
			// Push a preceding terminal punct outside the quote.
			if i-1 >= 0 && isTerminalPunct(out[i-1]) {
				out[i-1], out[i] = out[i], out[i-1]
			}
		}
	}
	return out
}

func isTerminalPunct(t token.Token) bool {
	return t.Kind == token.Punct && (t.Text == "." || t.Text == ",")
}

// collapseWhitespace squeezes runs of ASCII spaces within Text/Punct tokens
// to one, and trims a trailing space immediately before a Punct or Close
// token so no space precedes closing punctuation.
func collapseWhitespace(s token.Stream) token.Stream {
	out := make(token.Stream, len(s))
	for i, t := range s {
		if t.Kind == token.Text || t.Kind == token.Punct || t.Kind == token.Delim {
			t.Text = squeezeSpaces(t.Text)
		}
		out[i] = t
	}
	for i := range out {
		if out[i].Kind != token.Text {
			continue
		}
		if i+1 < len(out) && (out[i+1].Kind == token.Punct || out[i+1].Kind == token.Close) {
			out[i].Text = strings.TrimRight(out[i].Text, " ")
		}
	}
	return out
}

func squeezeSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Text renders a stream to plain text, ignoring wrap/class markup: a quick
// helper for tests.
func Text(s token.Stream) string {
	var b strings.Builder
	for _, t := range s {
		switch t.Kind {
		case token.Text, token.Punct, token.Delim:
			b.WriteString(t.Text)
		case token.Open:
			b.WriteString(openMark(t.Wrap))
		case token.Close:
			b.WriteString(closeMark(t.Wrap))
		}
	}
	return b.String()
}

func openMark(w token.WrapKind) string {
	switch w {
	case token.WrapParens:
		return "("
	case token.WrapBrackets:
		return "["
	case token.WrapQuote:
		return "“"
	default:
		return ""
	}
}

func closeMark(w token.WrapKind) string {
	switch w {
	case token.WrapParens:
		return ")"
	case token.WrapBrackets:
		return "]"
	case token.WrapQuote:
		return "”"
	default:
		return ""
	}
}
