package xentry

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

func typedRef(id string, typ reference.Type) *reference.Reference {
	return reference.New(id, typ)
}

func TestGroupByTypePreservesFirstAppearanceOrder(t *testing.T) {
	sorted := []*reference.Reference{
		typedRef("b1", reference.TypeBook),
		typedRef("a1", reference.TypeArticleJournal),
		typedRef("b2", reference.TypeBook),
		typedRef("w1", reference.TypeWebpage),
	}
	groups := GroupBy(sorted, &style.GroupBySpec{Key: "type"})
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	wantKeys := []string{"book", "article-journal", "webpage"}
	for i, k := range wantKeys {
		if groups[i].Key != k {
			t.Fatalf("groups[%d].Key = %q, want %q", i, groups[i].Key, k)
		}
	}
	if len(groups[0].Refs) != 2 {
		t.Fatalf("book group should have 2 members, got %d", len(groups[0].Refs))
	}
}

func TestGroupByNilSpecReturnsSingleGroup(t *testing.T) {
	sorted := []*reference.Reference{typedRef("a", reference.TypeBook), typedRef("b", reference.TypeWebpage)}
	groups := GroupBy(sorted, nil)
	if len(groups) != 1 || len(groups[0].Refs) != 2 {
		t.Fatalf("expected a single group with both refs, got %+v", groups)
	}
}
