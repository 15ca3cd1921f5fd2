package resolve

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/style"
)

func TestResolverLayersGlobalUnderContext(t *testing.T) {
	s := &style.Style{
		Options: style.Options{
			Processing:  style.ModeAuthorDate,
			Contributor: style.ContributorOptions{Delimiter: ", "},
		},
		Citation: &style.CitationSpec{
			Options: style.Options{
				Contributor: style.ContributorOptions{AndStyle: style.AndSymbol},
			},
		},
		Bibliography: &style.BibliographySpec{},
	}
	r := New(s)

	cite := r.Options(ScopeCitation)
	if cite.Contributor.Delimiter != ", " {
		t.Fatalf("expected citation scope to inherit global delimiter, got %q", cite.Contributor.Delimiter)
	}
	if cite.Contributor.AndStyle != style.AndSymbol {
		t.Fatalf("expected citation scope override to apply, got %q", cite.Contributor.AndStyle)
	}

	bib := r.Options(ScopeBibliography)
	if bib.Contributor.AndStyle != "" {
		t.Fatalf("expected bibliography scope to not see citation-only override, got %q", bib.Contributor.AndStyle)
	}
	if bib.Contributor.Delimiter != ", " {
		t.Fatalf("expected bibliography scope to inherit global delimiter, got %q", bib.Contributor.Delimiter)
	}
}

func TestRenderingTypeOverrideBeatsDefault(t *testing.T) {
	c := style.Component{
		Kind:      style.KindTitle,
		Rendering: style.Rendering{Emph: true},
		Overrides: map[string]style.Override{
			style.DefaultOverrideKey: {Rendering: style.Rendering{Emph: false, Quote: true}},
			"webpage":                {Rendering: style.Rendering{Quote: false, Strong: true}},
		},
	}
	got := Rendering(c, "webpage")
	if !got.Strong {
		t.Fatal("expected type-specific override to apply")
	}
	if got.Quote {
		t.Fatal("expected default override to be skipped once a type-specific override matched")
	}
}

func TestRenderingFallsBackToDefaultOverride(t *testing.T) {
	c := style.Component{
		Kind: style.KindTitle,
		Overrides: map[string]style.Override{
			style.DefaultOverrideKey: {Rendering: style.Rendering{Quote: true}},
		},
	}
	got := Rendering(c, "legal_case")
	if !got.Quote {
		t.Fatal("expected default override to apply when no type-specific override matched")
	}
}

func TestSuppressedPrecedence(t *testing.T) {
	no := false
	yes := true
	c := style.Component{
		Overrides: map[string]style.Override{
			style.DefaultOverrideKey: {Suppress: &yes},
			"patent":                 {Suppress: &no},
		},
	}
	if Suppressed(c, "patent") {
		t.Fatal("expected type-specific suppress override to win over default")
	}
	if !Suppressed(c, "report") {
		t.Fatal("expected default suppress override to apply for unmatched type")
	}
}
