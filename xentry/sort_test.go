package xentry

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

func ref(id, family string, year int32, title string) *reference.Reference {
	r := reference.New(id, reference.TypeBook)
	r.Contributors = []reference.Contributor{{Role: "author", Personal: &reference.PersonalName{Family: family}}}
	r.Titles.Primary = reference.Title{Main: title}
	r.Dates[reference.DateIssued] = reference.EDTFValue{Start: reference.EDTFDate{Year: year}}
	return r
}

func TestSortByAuthorThenYear(t *testing.T) {
	refs := []*reference.Reference{
		ref("b", "Smith", 2019, "Beta"),
		ref("a", "Adams", 2020, "Alpha"),
		ref("c", "Smith", 2018, "Gamma"),
	}
	got := Sort(refs, []style.SortKeySpec{{Key: "author"}, {Key: "year"}}, nil)
	want := []string{"a", "c", "b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("Sort()[%d].ID = %q, want %q (order: %v)", i, got[i].ID, id, ids(got))
		}
	}
}

func TestSortDescending(t *testing.T) {
	refs := []*reference.Reference{
		ref("a", "Adams", 2018, "Alpha"),
		ref("b", "Adams", 2022, "Beta"),
	}
	got := Sort(refs, []style.SortKeySpec{{Key: "year", Direction: "desc"}}, nil)
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("descending sort = %v, want [b a]", ids(got))
	}
}

func TestSortIsStableAndDoesNotMutateInput(t *testing.T) {
	refs := []*reference.Reference{
		ref("x", "Same", 2020, "T1"),
		ref("y", "Same", 2020, "T2"),
	}
	got := Sort(refs, []style.SortKeySpec{{Key: "author"}}, nil)
	if got[0].ID != "x" || got[1].ID != "y" {
		t.Fatalf("expected stable order preserved for equal keys, got %v", ids(got))
	}
	if refs[0].ID != "x" {
		t.Fatalf("Sort must not mutate its input slice")
	}
}

func ids(refs []*reference.Reference) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.ID
	}
	return out
}
