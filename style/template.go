package style

// Kind is the closed set of template component variants (§3).
type Kind string

const (
	KindContributor Kind = "contributor"
	KindDate        Kind = "date"
	KindTitle       Kind = "title"
	KindNumber      Kind = "number"
	KindVariable    Kind = "variable"
	KindLabel       Kind = "label"
	KindItems       Kind = "items"
)

// Wrap is an enclosing punctuation pair applied to a component's output.
type Wrap string

const (
	WrapNone       Wrap = ""
	WrapParens     Wrap = "parentheses"
	WrapBrackets   Wrap = "brackets"
	WrapQuotes     Wrap = "quotes"
)

// TextCase is a text-case transform applied to rendered text.
type TextCase string

const (
	CaseNone     TextCase = ""
	CaseLower    TextCase = "lowercase"
	CaseUpper    TextCase = "uppercase"
	CaseTitle    TextCase = "title"
	CaseSentence TextCase = "sentence"
	CaseCapitalizeFirst TextCase = "capitalize-first"
)

// Rendering is the presentational bundle every component carries (§3).
type Rendering struct {
	Emph      bool     `yaml:"emph,omitempty" json:"emph,omitempty"`
	Strong    bool     `yaml:"strong,omitempty" json:"strong,omitempty"`
	Quote     bool     `yaml:"quote,omitempty" json:"quote,omitempty"`
	SmallCaps bool     `yaml:"small_caps,omitempty" json:"small_caps,omitempty"`
	TextCase  TextCase `yaml:"text_case,omitempty" json:"text_case,omitempty"`
	Prefix    string   `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix    string   `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Wrap      Wrap     `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	Suppress  bool     `yaml:"suppress,omitempty" json:"suppress,omitempty"`
}

// Merge layers patch's explicitly-set fields over the receiver. Rendering
// patches are partial: only non-zero fields in patch replace the receiver's.
func (r Rendering) Merge(patch Rendering) Rendering {
	out := r
	if patch.Emph {
		out.Emph = true
	}
	if patch.Strong {
		out.Strong = true
	}
	if patch.Quote {
		out.Quote = true
	}
	if patch.SmallCaps {
		out.SmallCaps = true
	}
	if patch.TextCase != "" {
		out.TextCase = patch.TextCase
	}
	if patch.Prefix != "" {
		out.Prefix = patch.Prefix
	}
	if patch.Suffix != "" {
		out.Suffix = patch.Suffix
	}
	if patch.Wrap != "" {
		out.Wrap = patch.Wrap
	}
	if patch.Suppress {
		out.Suppress = true
	}
	return out
}

// Override is a per-reference-type partial patch applied to a single
// component: a Rendering patch plus an explicit suppress override.
type Override struct {
	Rendering Rendering `yaml:"rendering,omitempty" json:"rendering,omitempty"`
	Suppress  *bool     `yaml:"suppress,omitempty" json:"suppress,omitempty"`
}

// DefaultOverrideKey is the symbolic overrides key applied when no
// type-specific override matched (§4.1).
const DefaultOverrideKey = "default"

// ContributorForm is the name-list rendering form.
type ContributorForm string

const (
	FormShort ContributorForm = "short"
	FormLong  ContributorForm = "long"
	FormVerb  ContributorForm = "verb"
	FormCount ContributorForm = "count"
)

// DateForm is the date rendering granularity.
type DateForm string

const (
	DateFormYear    DateForm = "year"
	DateFormShort   DateForm = "short"
	DateFormFull    DateForm = "full"
	DateFormNumeric DateForm = "numeric"
	DateFormISO     DateForm = "iso"
)

// TitleKind selects which title slot a title component renders.
type TitleKind string

const (
	TitlePrimary         TitleKind = "primary"
	TitleShort           TitleKind = "short"
	TitleParentMonograph TitleKind = "parent-monograph"
	TitleParentSerial    TitleKind = "parent-serial"
)

// NumberKind selects which numeric variable a number component renders.
type NumberKind string

const (
	NumberVolume         NumberKind = "volume"
	NumberIssue          NumberKind = "issue"
	NumberPages          NumberKind = "pages"
	NumberEdition        NumberKind = "edition"
	NumberChapterNumber  NumberKind = "chapter-number"
	NumberCitationNumber NumberKind = "citation-number"
)

// PageRangeFormat selects the page-range collapsing style.
type PageRangeFormat string

const (
	PageRangeExpanded PageRangeFormat = "expanded"
	PageRangeMinimal  PageRangeFormat = "minimal"
	PageRangeChicago  PageRangeFormat = "chicago"
)

// LabelForm is the label rendering form.
type LabelForm string

const (
	LabelShort  LabelForm = "short"
	LabelLong   LabelForm = "long"
	LabelVerb   LabelForm = "verb"
	LabelSymbol LabelForm = "symbol"
)

// Component is one node in a template tree, a closed discriminated variant
// keyed by Kind (§3 Template component, §9 "Polymorphism without classes").
// Only the fields relevant to Kind are meaningful; the evaluator dispatches
// on Kind via a type switch equivalent (a Go switch on the Kind string).
type Component struct {
	Kind Kind `yaml:"kind" json:"kind"`

	// contributor
	Role           string          `yaml:"role,omitempty" json:"role,omitempty"`
	Form           ContributorForm `yaml:"form,omitempty" json:"form,omitempty"`
	DisplayAsSort  bool            `yaml:"display_as_sort,omitempty" json:"display_as_sort,omitempty"`

	// date
	DateRole      string   `yaml:"date_role,omitempty" json:"date_role,omitempty"`
	DateForm      DateForm `yaml:"date_form,omitempty" json:"date_form,omitempty"`
	DateParts     []string `yaml:"date_parts,omitempty" json:"date_parts,omitempty"`

	// title
	TitleKind TitleKind `yaml:"title_kind,omitempty" json:"title_kind,omitempty"`
	Language  string    `yaml:"language,omitempty" json:"language,omitempty"`

	// number
	NumberKind      NumberKind      `yaml:"number_kind,omitempty" json:"number_kind,omitempty"`
	PageRangeFormat PageRangeFormat `yaml:"page_range_format,omitempty" json:"page_range_format,omitempty"`

	// variable
	Variable string `yaml:"variable,omitempty" json:"variable,omitempty"`

	// label
	ForVariable     string    `yaml:"for_variable,omitempty" json:"for_variable,omitempty"`
	LabelForm       LabelForm `yaml:"label_form,omitempty" json:"label_form,omitempty"`
	PluralAgreement bool      `yaml:"plural_agreement,omitempty" json:"plural_agreement,omitempty"`

	// items
	Children  []Component `yaml:"children,omitempty" json:"children,omitempty"`
	ItemsDelimiter string `yaml:"delimiter,omitempty" json:"items_delimiter,omitempty"`

	// disambiguate-only: only rendered when ProcHints.DisambCondition is set
	DisambiguateOnly bool `yaml:"disambiguate_only,omitempty" json:"disambiguate_only,omitempty"`

	// IfPosition restricts rendering to citations whose ProcHints.Position
	// (§3 "position": first, subsequent, ibid, ibid-with-locator) is one of
	// the listed values; empty means unconditional. Used for ibid/short-form
	// components that should only appear when a reference repeats the
	// immediately preceding citation.
	IfPosition []string `yaml:"if_position,omitempty" json:"if_position,omitempty"`
	// NearNoteOnly restricts rendering to citations where ProcHints.NearNote
	// is set: the reference was also cited in the immediately preceding
	// cluster, without being a literal ibid repeat.
	NearNoteOnly bool `yaml:"near_note_only,omitempty" json:"near_note_only,omitempty"`

	Rendering Rendering           `yaml:"rendering,omitempty" json:"rendering,omitempty"`
	Overrides map[string]Override `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}
