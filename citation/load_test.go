package citation_test

import (
	"strings"
	"testing"

	"github.com/scholarly-tools/citeproc-go/citation"
)

func TestLoadBytesClusterWithLocator(t *testing.T) {
	data := []byte(`[
		{"id": "c1", "citationItems": [
			{"id": "watson1953", "locator": {"label": "page", "value": "737"}, "prefix": "see "}
		]},
		{"id": "c2", "citationItems": [
			{"id": "watson1953", "suppress-author": true}
		]}
	]`)

	clusters, err := citation.LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes error: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("len(clusters) = %d, want 2", len(clusters))
	}

	c1 := clusters[0]
	if c1.ID != "c1" || len(c1.Items) != 1 {
		t.Fatalf("c1 = %+v", c1)
	}
	item := c1.Items[0]
	if item.RefID != "watson1953" || item.Prefix != "see " {
		t.Fatalf("item = %+v, want RefID watson1953 prefix %q", item, "see ")
	}
	if item.Locator == nil || item.Locator.Label != "page" || item.Locator.Value != "737" {
		t.Fatalf("item.Locator = %+v, want page 737", item.Locator)
	}

	c2 := clusters[1]
	if !c2.Items[0].SuppressAuthor {
		t.Fatalf("c2 item = %+v, want SuppressAuthor true", c2.Items[0])
	}
}

func TestLoadBytesMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"cluster missing id", `[{"citationItems": [{"id": "r1"}]}]`, "id"},
		{"item missing id", `[{"id": "c1", "citationItems": [{}]}]`, "id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := citation.LoadBytes([]byte(tc.data))
			if err == nil {
				t.Fatal("LoadBytes error = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}
