// Package token defines the intermediate representation the template
// evaluator emits and the punctuation normalizer and output backends
// consume (§3 "intermediate token stream", §4.6, §4.7).
package token

// Kind is the closed set of token variants in the stream.
type Kind int

const (
	// Text is literal rendered text (a formatted name, date, title, ...).
	Text Kind = iota
	// Punct is a punctuation mark the normalizer may deduplicate or move
	// relative to an adjacent Close (e.g. quote-punctuation swap).
	Punct
	// Delim is a separator inserted between sibling components (an items
	// delimiter, a contributor-list delimiter). Deleted by the normalizer
	// when either neighbor collapsed to empty.
	Delim
	// Open marks the start of a wrapped span (parentheses, brackets,
	// quotes, emphasis, strong, small-caps).
	Open
	// Close marks the matching end of a wrapped span.
	Close
	// Suppressed marks a slot whose component produced no output — kept in
	// the stream so the normalizer can see and remove the delimiters that
	// would otherwise have surrounded it (§4.6 "empty-slot deletion").
	Suppressed
)

// WrapKind names what an Open/Close pair encloses, so the normalizer and
// output backends can apply kind-specific behavior (e.g. the quote-
// punctuation swap only touches WrapQuote spans).
type WrapKind string

const (
	WrapParens    WrapKind = "parentheses"
	WrapBrackets  WrapKind = "brackets"
	WrapQuote     WrapKind = "quotes"
	WrapEmph      WrapKind = "emph"
	WrapStrong    WrapKind = "strong"
	WrapSmallCaps WrapKind = "small-caps"
)

// SemanticClass identifies the bibliographic role of a rendered span
// (§9 "Semantic classes"), carried through to output backends that support
// markup and suppressible by output configuration.
type SemanticClass string

const (
	ClassNone        SemanticClass = ""
	ClassAuthor      SemanticClass = "author"
	ClassYear        SemanticClass = "year"
	ClassTitle       SemanticClass = "title"
	ClassContainer   SemanticClass = "container"
	ClassPublisher   SemanticClass = "publisher"
	ClassLocator     SemanticClass = "locator"
	ClassLabel       SemanticClass = "label"
	ClassCitedItem   SemanticClass = "cited-item"
)

// Token is one node of the intermediate stream.
type Token struct {
	Kind  Kind
	Text  string        // for Kind == Text | Punct | Delim
	Wrap  WrapKind      // for Kind == Open | Close
	Class SemanticClass // the bibliographic role of the span this token belongs to
}

// NewText builds a Text token tagged with a semantic class.
func NewText(s string, class SemanticClass) Token {
	return Token{Kind: Text, Text: s, Class: class}
}

// NewDelim builds a Delim token.
func NewDelim(s string) Token {
	return Token{Kind: Delim, Text: s}
}

// NewPunct builds a Punct token.
func NewPunct(s string) Token {
	return Token{Kind: Punct, Text: s}
}

// NewOpen builds an Open token for the given wrap kind.
func NewOpen(w WrapKind) Token {
	return Token{Kind: Open, Wrap: w}
}

// NewClose builds a Close token for the given wrap kind.
func NewClose(w WrapKind) Token {
	return Token{Kind: Close, Wrap: w}
}

// NewSuppressed marks an empty component slot.
func NewSuppressed() Token {
	return Token{Kind: Suppressed}
}

// Stream is an ordered sequence of tokens, the output of one template
// evaluation pass.
type Stream []Token

// IsEmpty reports whether the stream renders no visible text at all — every
// token is Suppressed, or there are no tokens.
func (s Stream) IsEmpty() bool {
	for _, t := range s {
		if t.Kind != Suppressed {
			return false
		}
	}
	return true
}

// Append is a small convenience for building a stream incrementally in the
// evaluator without repeating `append(s, ...)` at every call site.
func (s Stream) Append(toks ...Token) Stream {
	return append(s, toks...)
}
