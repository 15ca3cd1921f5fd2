package citation

import (
	"encoding/json"
	"fmt"
	"io"
)

type wireLocator struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
}

type wireItem struct {
	ID             string       `json:"id"`
	Locator        *wireLocator `json:"locator,omitempty"`
	Prefix         string       `json:"prefix,omitempty"`
	Suffix         string       `json:"suffix,omitempty"`
	SuppressAuthor bool         `json:"suppress-author,omitempty"`
}

func (w wireItem) toItem() Item {
	it := Item{
		RefID:          w.ID,
		Prefix:         w.Prefix,
		Suffix:         w.Suffix,
		SuppressAuthor: w.SuppressAuthor,
	}
	if w.Locator != nil {
		it.Locator = &Locator{Label: w.Locator.Label, Value: w.Locator.Value}
	}
	return it
}

type wireCluster struct {
	ID    string     `json:"id"`
	Items []wireItem `json:"citationItems"`
}

// Load decodes an ordered list of citation clusters from JSON (§6 "Citation
// input"): each cluster an id plus an ordered "citationItems" array of cited
// references.
func Load(r io.Reader) ([]Cluster, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading citation input: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes is Load without the io.Reader indirection.
func LoadBytes(data []byte) ([]Cluster, error) {
	var wire []wireCluster
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding citation input: %w", err)
	}

	clusters := make([]Cluster, 0, len(wire))
	for _, wc := range wire {
		if wc.ID == "" {
			return nil, fmt.Errorf("citation cluster missing required field %q", "id")
		}
		c := Cluster{ID: wc.ID, Items: make([]Item, 0, len(wc.Items))}
		for _, wi := range wc.Items {
			if wi.ID == "" {
				return nil, fmt.Errorf("cluster %q: cited item missing required field %q", wc.ID, "id")
			}
			c.Items = append(c.Items, wi.toItem())
		}
		clusters = append(clusters, c)
	}
	return clusters, nil
}
