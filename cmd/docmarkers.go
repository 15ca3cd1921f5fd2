package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"

	"github.com/scholarly-tools/citeproc-go/citation"
)

// markerPattern matches an inline citation marker in a host document, e.g.
// `{{cite smith2020 locator=page:23 prefix="see "}}` (§6 "a host document
// with citation markers").
var markerPattern = regexp.MustCompile(`\{\{cite\s+([^}]*)\}\}`)

// parseMarkers extracts every citation marker from doc, in document order,
// tokenizing each marker's body with shlex so a prefix/suffix override can
// carry spaces inside shell-style quotes.
func parseMarkers(doc string) ([]citation.Cluster, error) {
	matches := markerPattern.FindAllStringSubmatch(doc, -1)
	clusters := make([]citation.Cluster, 0, len(matches))
	for i, m := range matches {
		item, err := parseMarkerBody(m[1])
		if err != nil {
			return nil, fmt.Errorf("citation marker %d (%q): %w", i+1, m[0], err)
		}
		clusters = append(clusters, citation.Cluster{
			ID:    fmt.Sprintf("doc-%d", i+1),
			Items: []citation.Item{item},
		})
	}
	return clusters, nil
}

func parseMarkerBody(body string) (citation.Item, error) {
	tokens, err := shlex.Split(body)
	if err != nil {
		return citation.Item{}, fmt.Errorf("tokenizing: %w", err)
	}

	var item citation.Item
	for _, tok := range tokens {
		key, value, hasValue := strings.Cut(tok, "=")
		if !hasValue {
			if item.RefID == "" {
				item.RefID = tok
			}
			continue
		}
		switch key {
		case "locator":
			label, val, ok := strings.Cut(value, ":")
			if !ok {
				label, val = "", value
			}
			item.Locator = &citation.Locator{Label: label, Value: val}
		case "prefix":
			item.Prefix = value
		case "suffix":
			item.Suffix = value
		case "suppress-author":
			item.SuppressAuthor = value == "true"
		default:
			return citation.Item{}, fmt.Errorf("unknown marker field %q", key)
		}
	}
	if item.RefID == "" {
		return citation.Item{}, fmt.Errorf("marker names no reference id")
	}
	return item, nil
}

// replaceMarkers substitutes each marker in doc with its corresponding
// rendered string, in the same left-to-right order parseMarkers walked it.
func replaceMarkers(doc string, rendered []string) string {
	i := 0
	return markerPattern.ReplaceAllStringFunc(doc, func(string) string {
		if i >= len(rendered) {
			return ""
		}
		s := rendered[i]
		i++
		return s
	})
}
