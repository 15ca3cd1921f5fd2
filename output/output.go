// Package output implements the pluggable output backends (§4.7): the
// normalized token stream is walked once by Walk, which drives a small
// Emitter capability (text, styled span, semantic container, heading, line
// break) that each backend implements. All backends share the same walk;
// they differ only in how they emit.
package output

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/scholarly-tools/citeproc-go/token"
)

// Entry is one bibliography entry: a reference id plus its normalized
// render.
type Entry struct {
	RefID  string
	Stream token.Stream
}

// Section is one (possibly unheaded) bibliography partition, per the
// group-by pass (§4.5.2).
type Section struct {
	Heading string // empty when the bibliography isn't grouped
	Entries []Entry
}

// Cluster is one rendered citation cluster (§3 "Citation cluster").
type Cluster struct {
	ID     string
	Stream token.Stream
}

// Document is the complete rendered output of one (Style, References,
// Citations) triple, ready for backend emission.
type Document struct {
	Bibliography []Section
	Citations    []Cluster
}

// Emitter is the small capability a backend implements (§4.7): emit text,
// emit a styled span, open/close a semantic container, emit a heading, emit
// a line break.
type Emitter interface {
	// Text emits a run of literal text tagged with its bibliographic role
	// (§9 "Semantic classes"); class is token.ClassNone for delimiters and
	// punctuation.
	Text(s string, class token.SemanticClass)
	OpenSpan(w token.WrapKind)
	CloseSpan(w token.WrapKind)
	OpenContainer(kind, id string)
	CloseContainer(kind string)
	Heading(text string)
	LineBreak()
}

// Backend is a named Emitter that can return its accumulated result.
type Backend interface {
	Emitter
	Name() string
	Result() string
}

// Options controls backend-independent emission choices.
type Options struct {
	// Semantics includes semantic classes/attributes in markup-capable
	// backends; the HTML backend's "no-semantics" flag negates this.
	Semantics bool
	// WrapColumn reflows the text backend's output at the given display
	// column (measured with east-asian-aware rune widths); 0 disables
	// wrapping (§4.7 "plain text for comparison/testing").
	WrapColumn int
}

// Render builds the named backend (constructed with opts) and walks doc
// through it, returning its accumulated result.
func Render(doc Document, backendName string, opts Options) (string, error) {
	b, err := DefaultRegistry.New(backendName, opts)
	if err != nil {
		return "", err
	}
	if err := Walk(doc, b); err != nil {
		return "", err
	}
	return b.Result(), nil
}

// Walk drives e over doc's sections and citation clusters, in order. Any
// backend-specific choice (e.g. whether to include semantic classes) is the
// backend's own concern, decided at construction time via Options.
func Walk(doc Document, e Emitter) error {
	for _, sec := range doc.Bibliography {
		if sec.Heading != "" {
			e.Heading(sec.Heading)
		}
		for _, entry := range sec.Entries {
			e.OpenContainer("entry", entry.RefID)
			if err := walkStream(entry.Stream, e); err != nil {
				return fmt.Errorf("entry %s: %w", entry.RefID, err)
			}
			e.CloseContainer("entry")
			e.LineBreak()
		}
	}
	for _, c := range doc.Citations {
		e.OpenContainer("cluster", c.ID)
		if err := walkStream(c.Stream, e); err != nil {
			return fmt.Errorf("citation cluster %s: %w", c.ID, err)
		}
		e.CloseContainer("cluster")
	}
	return nil
}

// walkStream emits one normalized token stream. A Suppressed token
// surviving to output is a render-invariant violation (§7): the normalizer
// must have removed every one.
func walkStream(s token.Stream, e Emitter) error {
	for _, t := range s {
		switch t.Kind {
		case token.Text, token.Punct, token.Delim:
			e.Text(t.Text, t.Class)
		case token.Open:
			e.OpenSpan(t.Wrap)
		case token.Close:
			e.CloseSpan(t.Wrap)
		case token.Suppressed:
			return errors.New("render-invariant violation: suppressed-slot marker survived normalization")
		}
	}
	return nil
}
