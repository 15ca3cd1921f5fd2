package style

import "testing"

func testRegistry(t *testing.T) *PresetRegistry {
	t.Helper()
	r, err := NewPresetRegistry()
	if err != nil {
		t.Fatalf("NewPresetRegistry: %v", err)
	}
	return r
}

func TestParsePresetTagExpansion(t *testing.T) {
	data := []byte(`
version: "1"
info:
  id: quick-apa
  title: Quick APA
options: apa
citation:
  template: {}
`)
	s, err := Parse(data, LoadOptions{Presets: testRegistry(t)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Options.PresetName() != "" {
		t.Fatalf("expected preset name cleared after expansion, got %q", s.Options.PresetName())
	}
	if s.Options.Processing != ModeAuthorDate {
		t.Fatalf("expected apa preset to set author-date mode, got %q", s.Options.Processing)
	}
	if s.Options.Contributor.EtAl.Min != 8 {
		t.Fatalf("expected apa et-al min 8, got %d", s.Options.Contributor.EtAl.Min)
	}
}

func TestParseUnknownPresetFails(t *testing.T) {
	data := []byte(`
version: "1"
info:
  id: bogus
  title: Bogus
options: not-a-real-preset
`)
	if _, err := Parse(data, LoadOptions{Presets: testRegistry(t)}); err == nil {
		t.Fatal("expected error for unknown preset name")
	}
}

func TestParseStrictModeRejectsUnknownField(t *testing.T) {
	data := []byte(`
version: "1"
info:
  id: strict-check
  title: Strict Check
wat: surprise
`)
	if _, err := Parse(data, LoadOptions{Strict: true}); err == nil {
		t.Fatal("expected strict mode to reject unknown top-level field")
	}
}

func TestParsePermissiveModeCapturesExtra(t *testing.T) {
	data := []byte(`
version: "1"
info:
  id: permissive-check
  title: Permissive Check
wat: surprise
`)
	s, err := Parse(data, LoadOptions{Strict: false})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Extra["wat"] != "surprise" {
		t.Fatalf("expected unknown field captured into Extra, got %v", s.Extra)
	}
}

func TestParseMissingRequiredFields(t *testing.T) {
	if _, err := Parse([]byte(`info:
  id: x
  title: X
`), LoadOptions{}); err == nil {
		t.Fatal("expected error for missing version")
	}
	if _, err := Parse([]byte(`version: "1"
info:
  title: X
`), LoadOptions{}); err == nil {
		t.Fatal("expected error for missing info.id")
	}
}

func TestCitationTemplateForSplitSelection(t *testing.T) {
	integral := Component{Kind: KindItems}
	nonIntegral := Component{Kind: KindVariable}
	s := &Style{
		Citation: &CitationSpec{
			Integral:    &integral,
			NonIntegral: &nonIntegral,
		},
	}
	if got := s.CitationTemplateFor(false); got.Kind != KindItems {
		t.Fatalf("expected integral variant when suppressAuthor=false, got kind %q", got.Kind)
	}
	if got := s.CitationTemplateFor(true); got.Kind != KindVariable {
		t.Fatalf("expected non-integral variant when suppressAuthor=true, got kind %q", got.Kind)
	}
}

func TestCitationTemplateForFallsBackToSingleTemplate(t *testing.T) {
	shared := Component{Kind: KindContributor}
	s := &Style{
		Citation: &CitationSpec{Template: shared},
	}
	if got := s.CitationTemplateFor(false); got.Kind != KindContributor {
		t.Fatalf("expected shared template fallback, got kind %q", got.Kind)
	}
	if got := s.CitationTemplateFor(true); got.Kind != KindContributor {
		t.Fatalf("expected shared template fallback regardless of suppressAuthor, got kind %q", got.Kind)
	}
}

func TestBibliographyTemplateForTypeOverride(t *testing.T) {
	shared := Component{Kind: KindItems}
	override := Component{Kind: KindLabel}
	b := BibliographySpec{
		Template: shared,
		TypeTemplates: []TypeTemplate{
			{Types: []string{"legal_case", "bill"}, Template: override},
		},
	}
	if got := b.TemplateFor("bill"); got.Kind != KindLabel {
		t.Fatalf("expected type-template override for bill, got kind %q", got.Kind)
	}
	if got := b.TemplateFor("article-journal"); got.Kind != KindItems {
		t.Fatalf("expected shared template for unmatched type, got kind %q", got.Kind)
	}
}

func TestOptionsMergeCascade(t *testing.T) {
	base := Default()
	patch := Options{
		Contributor: ContributorOptions{
			AndStyle: AndSymbol,
			EtAl:     EtAlOptions{Min: 3},
		},
		QuotePunctuation: QuoteModeBritish,
	}
	merged := base.Merge(patch)
	if merged.Contributor.AndStyle != AndSymbol {
		t.Fatalf("expected patch to override and-style, got %q", merged.Contributor.AndStyle)
	}
	if merged.Contributor.EtAl.Min != 3 {
		t.Fatalf("expected patch to override et-al min, got %d", merged.Contributor.EtAl.Min)
	}
	if merged.Contributor.Delimiter != ", " {
		t.Fatalf("expected base delimiter to survive merge, got %q", merged.Contributor.Delimiter)
	}
	if merged.QuotePunctuation != QuoteModeBritish {
		t.Fatalf("expected patch to override quote punctuation, got %q", merged.QuotePunctuation)
	}
}

func TestHarvardPresetUsesBritishQuotes(t *testing.T) {
	o, err := testRegistry(t).Expand("harvard")
	if err != nil {
		t.Fatalf("Expand(harvard): %v", err)
	}
	if o.QuotePunctuation != QuoteModeBritish {
		t.Fatalf("expected harvard preset to use british quote punctuation, got %q", o.QuotePunctuation)
	}
	if o.Contributor.AndStyle != AndText {
		t.Fatalf("expected harvard preset and-style text, got %q", o.Contributor.AndStyle)
	}
}

func TestVancouverPresetDisablesDisambiguation(t *testing.T) {
	o, err := testRegistry(t).Expand("vancouver")
	if err != nil {
		t.Fatalf("Expand(vancouver): %v", err)
	}
	if o.Disambiguation.AddNames || o.Disambiguation.ExpandGivenNames || o.Disambiguation.YearSuffix {
		t.Fatalf("expected vancouver preset to disable all disambiguation strategies, got %+v", o.Disambiguation)
	}
	if o.Processing != ModeNumeric {
		t.Fatalf("expected vancouver preset numeric mode, got %q", o.Processing)
	}
}
