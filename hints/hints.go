// Package hints defines ProcHints, the cross-entry disambiguation state
// the sort/group/disambiguate passes compute over the full reference list
// before the template evaluator's final render pass consumes it (§3
// "ProcHints (cross-entry state)").
package hints

// Position tags where a cited item falls relative to prior citations of the
// same reference within a document, driving ibid./short-form rendering.
type Position string

const (
	PositionFirst             Position = "first"
	PositionSubsequent        Position = "subsequent"
	PositionIbid              Position = "ibid"
	PositionIbidWithLocator   Position = "ibid-with-locator"
)

// Key identifies one (citation-cluster, reference) pair.
type Key struct {
	ClusterID string
	RefID     string
}

// ProcHints is the per-(cluster, reference) disambiguation and position
// state consumed by the evaluator on its second pass.
type ProcHints struct {
	// YearSuffixLetter is 0 for "no suffix", else the 1-based ordinal that
	// dates.YearSuffix encodes to a letter sequence (a, b, ..., z, aa, ...).
	YearSuffixLetter int
	// MinNamesToShow overrides the style's et-al threshold when set.
	MinNamesToShow *int
	// ExpandGivenNames forces initials to expand to full given names.
	ExpandGivenNames bool
	// DisambCondition gates components marked disambiguate-only.
	DisambCondition bool
	Position        Position
	NearNote        bool
	// CitationNumber feeds the `number` component's citation-number kind
	// (§4.2 "number / pages"). In the bibliography the engine sets it to
	// the entry's 1-based position across all rendered groups. In citations
	// it is set only under numeric processing mode, where xentry.BuildHints
	// numbers references by first appearance in the citation clusters; the
	// two agree only when the bibliography lists references in that order.
	CitationNumber int
}

// Table maps cluster/reference pairs to their computed hints. A missing
// entry behaves as the zero ProcHints (no disambiguation adjustments,
// first position).
type Table map[Key]ProcHints

// Lookup returns the hints for (clusterID, refID), or the zero value if the
// cross-entry pass produced none for that pair.
func (t Table) Lookup(clusterID, refID string) ProcHints {
	return t[Key{ClusterID: clusterID, RefID: refID}]
}
