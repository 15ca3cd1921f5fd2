package xentry

import (
	"github.com/scholarly-tools/citeproc-go/citation"
	"github.com/scholarly-tools/citeproc-go/hints"
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/resolve"
	"github.com/scholarly-tools/citeproc-go/style"
)

// BuildHints runs the cross-entry passes (disambiguation, citation
// numbering, position tracking) and assembles the ProcHints table the
// evaluator's second pass consumes (§3 "ProcHints", §4.5). refs must
// contain every reference id that appears in clusters.
func BuildHints(clusters []citation.Cluster, refs map[string]*reference.Reference, st *style.Style, loc *locale.Locale) hints.Table {
	table := make(hints.Table)

	all := make([]*reference.Reference, 0, len(refs))
	for _, r := range refs {
		all = append(all, r)
	}
	titleOrder := Sort(all, []style.SortKeySpec{{Key: "title"}}, loc)
	refHints := Disambiguate(all, titleOrder, st, loc)

	var citationNumber map[string]int
	if resolve.New(st).Options(resolve.ScopeCitation).Processing == style.ModeNumeric {
		citationNumber = assignCitationNumbers(clusters)
	}

	var lastRefID string
	var lastClusterRefs map[string]bool
	seen := make(map[string]bool, len(refs))
	for _, cluster := range clusters {
		clusterRefs := make(map[string]bool, len(cluster.Items))
		for i, item := range cluster.Items {
			h := refHints[item.RefID]
			h.Position = position(item, i, seen, lastRefID)
			h.NearNote = nearNote(item.RefID, h.Position, lastClusterRefs)
			if citationNumber != nil {
				h.CitationNumber = citationNumber[item.RefID]
			}
			table[hints.Key{ClusterID: cluster.ID, RefID: item.RefID}] = h
			seen[item.RefID] = true
			lastRefID = item.RefID
			clusterRefs[item.RefID] = true
		}
		lastClusterRefs = clusterRefs
	}
	return table
}

// position classifies a cited item's relation to the citations preceding
// it in document order (§3 ProcHints "position"). ibid detection is
// intentionally coarse: it fires when the item is the first in its cluster
// and the immediately preceding cited item anywhere in the document was the
// same reference (a repeat later within one cluster is subsequent); it distinguishes
// ibid-with-locator from a bare ibid repeat by whether this citation itself
// carries a locator (a new page/section within the same repeated work).
func position(item citation.Item, indexInCluster int, seen map[string]bool, lastRefID string) hints.Position {
	if !seen[item.RefID] {
		return hints.PositionFirst
	}
	if indexInCluster == 0 && lastRefID == item.RefID {
		if item.Locator != nil {
			return hints.PositionIbidWithLocator
		}
		return hints.PositionIbid
	}
	return hints.PositionSubsequent
}

// nearNote reports whether refID was also cited in the immediately
// preceding cluster without this citation itself being the literal ibid
// repeat (§3 ProcHints "near_note"). There's no footnote/endnote numbering
// in this engine (note-position distance isn't modeled), so cluster
// adjacency is the proxy for "recently cited" a note-based style would use
// to pick a short form without a full ibid repeat.
func nearNote(refID string, pos hints.Position, lastClusterRefs map[string]bool) bool {
	if pos == hints.PositionIbid || pos == hints.PositionIbidWithLocator {
		return false
	}
	return lastClusterRefs[refID]
}

// assignCitationNumbers numbers references by first appearance in citation
// order, the conventional numeric-style behavior (§4.2 "number / pages",
// citation-number kind).
func assignCitationNumbers(clusters []citation.Cluster) map[string]int {
	out := make(map[string]int)
	next := 1
	for _, cluster := range clusters {
		for _, item := range cluster.Items {
			if _, ok := out[item.RefID]; ok {
				continue
			}
			out[item.RefID] = next
			next++
		}
	}
	return out
}
