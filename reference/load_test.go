package reference_test

import (
	"strings"
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
)

func TestLoadBytesBasicRecord(t *testing.T) {
	data := []byte(`[{
		"id": "watson1953",
		"type": "article-journal",
		"title": "Molecular Structure of Nucleic Acids",
		"container-title": "Nature",
		"volume": "171",
		"page": "737-738",
		"author": [{"family": "Watson", "given": "J. D."}, {"family": "Crick", "given": "F. H. C."}],
		"issued": "1953-04-25"
	}]`)

	refs, err := reference.LoadBytes(data, reference.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}
	r := refs[0]
	if r.ID != "watson1953" || r.Type != reference.TypeArticleJournal {
		t.Fatalf("r = %+v, want id watson1953 type article-journal", r)
	}
	if r.Titles.Primary.Main != "Molecular Structure of Nucleic Acids" {
		t.Errorf("Titles.Primary.Main = %q", r.Titles.Primary.Main)
	}
	if r.Titles.Container.Main != "Nature" {
		t.Errorf("Titles.Container.Main = %q", r.Titles.Container.Main)
	}
	if r.Page.Start != "737" || r.Page.End != "738" {
		t.Errorf("Page = %+v, want 737-738", r.Page)
	}
	authors := r.Authors()
	if len(authors) != 2 || authors[0].Personal.Family != "Watson" || authors[1].Personal.Family != "Crick" {
		t.Fatalf("Authors = %+v, want Watson then Crick", authors)
	}
	issued, ok := r.Date(reference.DateIssued)
	if !ok {
		t.Fatal("issued date missing")
	}
	if issued.Start.Year != 1953 || issued.Start.Month != 4 || issued.Start.Day != 25 {
		t.Fatalf("issued = %+v, want 1953-04-25", issued.Start)
	}
}

func TestLoadBytesDatePartsAndSeason(t *testing.T) {
	data := []byte(`[{
		"id": "r1",
		"type": "book",
		"issued": {"date-parts": [[2020, 22]]}
	}]`)
	refs, err := reference.LoadBytes(data, reference.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	issued, _ := refs[0].Date(reference.DateIssued)
	if issued.Start.Year != 2020 || issued.Start.Season != reference.Summer {
		t.Fatalf("issued.Start = %+v, want year 2020 season Summer", issued.Start)
	}
}

func TestLoadBytesLiteralName(t *testing.T) {
	data := []byte(`[{
		"id": "r1",
		"type": "report",
		"author": [{"literal": "World Health Organization"}]
	}]`)
	refs, err := reference.LoadBytes(data, reference.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	authors := refs[0].Authors()
	if len(authors) != 1 || !authors[0].IsLiteral() || authors[0].Literal != "World Health Organization" {
		t.Fatalf("Authors = %+v, want a single literal contributor", authors)
	}
}

func TestLoadBytesEnvelopeWithItems(t *testing.T) {
	data := []byte(`{"items": [{"id": "r1", "type": "webpage"}]}`)
	refs, err := reference.LoadBytes(data, reference.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	if len(refs) != 1 || refs[0].ID != "r1" {
		t.Fatalf("refs = %+v, want one record r1", refs)
	}
}

func TestLoadBytesMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing id", `[{"type": "book"}]`, "id"},
		{"missing type", `[{"id": "r1"}]`, "type"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reference.LoadBytes([]byte(tc.data), reference.LoadOptions{})
			if err == nil {
				t.Fatal("LoadBytes error = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestLoadBytesUnknownFieldPermissive(t *testing.T) {
	data := []byte(`[{"id": "r1", "type": "book", "note-internal": "flagged for review"}]`)
	refs, err := reference.LoadBytes(data, reference.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	v, ok := refs[0].GetCustom("note-internal")
	if !ok || v != "flagged for review" {
		t.Fatalf("GetCustom(%q) = %v, %v, want %q, true", "note-internal", v, ok, "flagged for review")
	}
}

func TestLoadBytesUnknownFieldStrict(t *testing.T) {
	data := []byte(`[{"id": "r1", "type": "book", "note-internal": "flagged for review"}]`)
	_, err := reference.LoadBytes(data, reference.LoadOptions{Strict: true})
	if err == nil {
		t.Fatal("LoadBytes error = nil, want error")
	}
	if !strings.Contains(err.Error(), "note-internal") {
		t.Fatalf("error = %q, want it to mention %q", err.Error(), "note-internal")
	}
}
