package names

import (
	"strings"
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

func hyphenOpt(v bool) *bool { return &v }

func TestFormatPersonalInitializeWith(t *testing.T) {
	p := reference.PersonalName{Family: "Smith", Given: "Jane Alice"}
	opts := style.ContributorOptions{InitializeWith: ". ", InitializeWithHyphen: hyphenOpt(true)}
	got := FormatPersonal(p, opts, false)
	want := "J. A. Smith"
	if got != want {
		t.Fatalf("FormatPersonal() = %q, want %q", got, want)
	}
}

func TestFormatPersonalSortOrder(t *testing.T) {
	p := reference.PersonalName{Family: "Smith", Given: "Jane"}
	got := FormatPersonal(p, style.ContributorOptions{}, true)
	want := "Smith, Jane"
	if got != want {
		t.Fatalf("FormatPersonal() = %q, want %q", got, want)
	}
}

func TestFormatPersonalNonDroppingParticleDemoted(t *testing.T) {
	p := reference.PersonalName{Family: "Beethoven", Given: "Ludwig", NonDroppingParticle: "van"}
	opts := style.ContributorOptions{DemoteNonDroppingParticle: true}
	got := FormatPersonal(p, opts, true)
	want := "Beethoven, Ludwig van"
	if got != want {
		t.Fatalf("FormatPersonal() (demoted, sort order) = %q, want %q", got, want)
	}
}

func TestFormatPersonalNonDroppingParticleNotDemoted(t *testing.T) {
	p := reference.PersonalName{Family: "Beethoven", Given: "Ludwig", NonDroppingParticle: "van"}
	got := FormatPersonal(p, style.ContributorOptions{}, true)
	want := "van Beethoven, Ludwig"
	if got != want {
		t.Fatalf("FormatPersonal() (sort order, not demoted) = %q, want %q", got, want)
	}
}

func TestFormatPersonalSuffix(t *testing.T) {
	p := reference.PersonalName{Family: "King", Given: "Martin", Suffix: "Jr.", CommaSuffix: true}
	got := FormatPersonal(p, style.ContributorOptions{}, false)
	want := "Martin King, Jr."
	if got != want {
		t.Fatalf("FormatPersonal() = %q, want %q", got, want)
	}
}

func threeAuthors() []reference.Contributor {
	mk := func(family, given string) reference.Contributor {
		return reference.Contributor{Role: "author", Personal: &reference.PersonalName{Family: family, Given: given}}
	}
	return []reference.Contributor{
		mk("Alpha", "Ann"),
		mk("Beta", "Bob"),
		mk("Gamma", "Cid"),
	}
}

func TestFormatListAndStyleSymbol(t *testing.T) {
	opts := style.ContributorOptions{
		AndStyle:              style.AndSymbol,
		Delimiter:             ", ",
		DelimiterPrecedesLast: style.PrecedesContextual,
	}
	got := FormatList(threeAuthors(), opts, style.FormLong, nil)
	want := "Ann Alpha, Bob Beta, & Cid Gamma"
	if got != want {
		t.Fatalf("FormatList() = %q, want %q", got, want)
	}
}

func TestFormatListEtAlTruncation(t *testing.T) {
	opts := style.ContributorOptions{
		Delimiter: ", ",
		EtAlTerm:  "et al.",
		EtAl:      style.EtAlOptions{Min: 3, UseFirst: 1},
	}
	got := FormatList(threeAuthors(), opts, style.FormLong, nil)
	want := "Ann Alpha et al."
	if got != want {
		t.Fatalf("FormatList() = %q, want %q", got, want)
	}
}

func TestFormatListHintsOverrideMinNamesToShow(t *testing.T) {
	opts := style.ContributorOptions{
		Delimiter: ", ",
		EtAlTerm:  "et al.",
		EtAl:      style.EtAlOptions{Min: 2, UseFirst: 1},
	}
	two := 2
	hints := &Hints{MinNamesToShow: &two}
	got := FormatList(threeAuthors(), opts, style.FormLong, hints)
	if got == "Ann Alpha et al." {
		t.Fatalf("FormatList() did not honor hints.MinNamesToShow override, got %q", got)
	}
}

func TestFormatListEtAlUseLast(t *testing.T) {
	opts := style.ContributorOptions{
		Delimiter: ", ",
		EtAlTerm:  "et al.",
		EtAl:      style.EtAlOptions{Min: 3, UseFirst: 1, UseLast: true},
	}
	got := FormatList(threeAuthors(), opts, style.FormLong, nil)
	if strings.Contains(got, "et al.") {
		t.Fatalf("FormatList() = %q, want et-al-use-last ellipsis form, not the et-al term", got)
	}
	if !strings.Contains(got, "…") {
		t.Fatalf("FormatList() = %q, want an ellipsis separating the shown and retained last author", got)
	}
	if !strings.Contains(got, "Gamma") {
		t.Fatalf("FormatList() = %q, want the full list's last author (Gamma) retained", got)
	}
	if strings.Contains(got, "Beta") {
		t.Fatalf("FormatList() = %q, want the middle author dropped", got)
	}
}

func TestFormatListSubsequentThreshold(t *testing.T) {
	opts := style.ContributorOptions{
		Delimiter: ", ",
		EtAlTerm:  "et al.",
		EtAl:      style.EtAlOptions{Min: 5, UseFirst: 3, SubsequentThreshold: 2, SubsequentUseFirst: 1},
	}
	first := FormatList(threeAuthors(), opts, style.FormLong, nil)
	if strings.Contains(first, "et al.") {
		t.Fatalf("first-citation FormatList() = %q, want no truncation (Min=5 > 3 authors)", first)
	}

	subsequent := FormatList(threeAuthors(), opts, style.FormLong, &Hints{Subsequent: true})
	if !strings.Contains(subsequent, "et al.") {
		t.Fatalf("subsequent-citation FormatList() = %q, want et-al truncation under SubsequentThreshold", subsequent)
	}
	if strings.Contains(subsequent, "Beta") || strings.Contains(subsequent, "Gamma") {
		t.Fatalf("subsequent-citation FormatList() = %q, want only the first author shown (SubsequentUseFirst=1)", subsequent)
	}
}

func TestFormatListDelimiterPrecedesEtAl(t *testing.T) {
	opts := style.ContributorOptions{
		Delimiter:             ", ",
		EtAlTerm:              "et al.",
		EtAl:                  style.EtAlOptions{Min: 3, UseFirst: 2},
		DelimiterPrecedesEtAl: style.PrecedesContextual,
	}
	got := FormatList(threeAuthors(), opts, style.FormLong, nil)
	if !strings.Contains(got, ", et al.") {
		t.Fatalf("FormatList() = %q, want the delimiter to precede the et-al term (PrecedesContextual, 2 shown)", got)
	}
}

func TestFormatListCountForm(t *testing.T) {
	got := FormatList(threeAuthors(), style.ContributorOptions{}, style.FormCount, nil)
	if got != "3" {
		t.Fatalf("FormatList(FormCount) = %q, want %q", got, "3")
	}
}

func TestFormatListLiteralContributor(t *testing.T) {
	cs := []reference.Contributor{{Role: "author", Literal: "World Health Organization"}}
	got := FormatList(cs, style.ContributorOptions{}, style.FormLong, nil)
	want := "World Health Organization"
	if got != want {
		t.Fatalf("FormatList() = %q, want %q", got, want)
	}
}
