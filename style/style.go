package style

// Info is the style's bibliographic self-description.
type Info struct {
	ID      string   `yaml:"id" json:"id"`
	Title   string   `yaml:"title" json:"title"`
	Link    string   `yaml:"link,omitempty" json:"link,omitempty"`
	Sources []string `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// LocatorLabelRule maps a locator label (e.g. "page", "chapter") to the
// term used when rendering it in a citation.
type LocatorLabelRule struct {
	Label string `yaml:"label" json:"label"`
	Term  string `yaml:"term" json:"term"`
}

// CitationSpec configures citation-cluster rendering (§3 Style).
type CitationSpec struct {
	Options        Options             `yaml:"options,omitempty" json:"options,omitempty"`
	Template       Component           `yaml:"template,omitempty" json:"template,omitempty"`
	Integral       *Component          `yaml:"integral,omitempty" json:"integral,omitempty"`
	NonIntegral    *Component          `yaml:"non_integral,omitempty" json:"non_integral,omitempty"`
	LocatorLabels  []LocatorLabelRule  `yaml:"locator_labels,omitempty" json:"locator_labels,omitempty"`
	LayoutWrap     Wrap                `yaml:"layout_wrap,omitempty" json:"layout_wrap,omitempty"`
	LayoutDelimiter string             `yaml:"layout_delimiter,omitempty" json:"layout_delimiter,omitempty"`
	// PinClusterOrder, when true, renders a cluster's items in citation input
	// order rather than the cluster-internal sort order (§4.5.1).
	PinClusterOrder bool `yaml:"pin_cluster_order,omitempty" json:"pin_cluster_order,omitempty"`
}

// HasSplit reports whether integral/non-integral template variants exist.
func (c CitationSpec) HasSplit() bool {
	return c.Integral != nil && c.NonIntegral != nil
}

// TypeTemplate replaces the shared bibliography spine entirely for a
// reference type or type-group key.
type TypeTemplate struct {
	Types    []string  `yaml:"types" json:"types"`
	Template Component `yaml:"template" json:"template"`
}

// SortKeySpec is one entry in a sort key list (§4.5.1).
type SortKeySpec struct {
	Key       string `yaml:"key" json:"key"` // "author"|"year"|"title"|"type"|custom variable name
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"` // "asc"|"desc", default asc
}

// GroupBySpec configures bibliography partitioning (§4.5.2).
type GroupBySpec struct {
	Key      string `yaml:"key,omitempty" json:"key,omitempty"` // "type"|"language"|"keyword"|custom variable
	HeadingTermPrefix string `yaml:"heading_term_prefix,omitempty" json:"heading_term_prefix,omitempty"`
}

// BibliographySpec configures bibliography rendering (§3 Style).
type BibliographySpec struct {
	Options       Options        `yaml:"options,omitempty" json:"options,omitempty"`
	Template      Component      `yaml:"template" json:"template"`
	TypeTemplates []TypeTemplate `yaml:"type_templates,omitempty" json:"type_templates,omitempty"`
	EntryWrap     Wrap           `yaml:"entry_wrap,omitempty" json:"entry_wrap,omitempty"`
	EntryDelimiter string        `yaml:"entry_delimiter,omitempty" json:"entry_delimiter,omitempty"`
	SortKeys      []SortKeySpec  `yaml:"sort_keys,omitempty" json:"sort_keys,omitempty"`
	GroupBy       *GroupBySpec   `yaml:"group_by,omitempty" json:"group_by,omitempty"`
}

// TemplateFor returns the type-template matching refType, or the shared
// template if none matches (§4.2 Template selection, bibliography case).
func (b BibliographySpec) TemplateFor(refType string) Component {
	for _, tt := range b.TypeTemplates {
		for _, t := range tt.Types {
			if t == refType {
				return tt.Template
			}
		}
	}
	return b.Template
}

// Style is the complete declarative style model (§3). Immutable after load.
type Style struct {
	Version      string            `yaml:"version" json:"version"`
	Info         Info              `yaml:"info" json:"info"`
	Options      Options           `yaml:"options" json:"options"`
	Citation     *CitationSpec     `yaml:"citation,omitempty" json:"citation,omitempty"`
	Bibliography *BibliographySpec `yaml:"bibliography,omitempty" json:"bibliography,omitempty"`

	// Extra carries unknown top-level fields captured in permissive-mode
	// loads (§7 Strict-mode unknown field). It is not encoded: Encode and
	// the `convert` command's JSON output leave these fields out.
	Extra map[string]any `yaml:"-" json:"-"`
}

// CitationTemplateFor selects which citation template variant to use for a
// cited item, per §4.2 Template selection: the non-integral variant when
// suppressAuthor is set and a split exists, the integral variant when a
// split exists and suppressAuthor is false, else the single template.
func (s *Style) CitationTemplateFor(suppressAuthor bool) Component {
	if s.Citation == nil {
		return Component{}
	}
	if s.Citation.HasSplit() {
		if suppressAuthor {
			return *s.Citation.NonIntegral
		}
		return *s.Citation.Integral
	}
	return s.Citation.Template
}
