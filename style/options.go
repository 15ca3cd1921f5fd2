package style

import "gopkg.in/yaml.v3"

// ProcessingMode is the citation style's overall mode (§3 Options).
type ProcessingMode string

const (
	ModeAuthorDate ProcessingMode = "author-date"
	ModeNumeric    ProcessingMode = "numeric"
	ModeNote       ProcessingMode = "note"
)

// AndStyle controls how "and" is rendered between the last two names in a
// list.
type AndStyle string

const (
	AndText   AndStyle = "text"
	AndSymbol AndStyle = "symbol"
	AndNone   AndStyle = "none"
)

// DelimiterPrecedesLast controls when the list delimiter (not just "and")
// also precedes the final name.
type DelimiterPrecedesLast string

const (
	PrecedesAlways            DelimiterPrecedesLast = "always"
	PrecedesNever             DelimiterPrecedesLast = "never"
	PrecedesContextual        DelimiterPrecedesLast = "contextual" // only when >= 3 names
	PrecedesAfterInvertedName DelimiterPrecedesLast = "after-inverted-name"
)

// EtAlOptions controls name-list truncation.
type EtAlOptions struct {
	Min                 int `yaml:"min,omitempty" json:"min,omitempty"`
	UseFirst            int `yaml:"use_first,omitempty" json:"use_first,omitempty"`
	UseLast             bool `yaml:"use_last,omitempty" json:"use_last,omitempty"`
	SubsequentThreshold int `yaml:"subsequent_threshold,omitempty" json:"subsequent_threshold,omitempty"`
	SubsequentUseFirst  int `yaml:"subsequent_use_first,omitempty" json:"subsequent_use_first,omitempty"`
}

// ContributorOptions is the cascaded option bundle for name formatting (§3).
type ContributorOptions struct {
	InitializeWith          string                `yaml:"initialize_with,omitempty" json:"initialize_with,omitempty"`
	InitializeWithHyphen     *bool                 `yaml:"initialize_with_hyphen,omitempty" json:"initialize_with_hyphen,omitempty"`
	NameAsSortOrder          bool                  `yaml:"name_as_sort_order,omitempty" json:"name_as_sort_order,omitempty"`
	DisplayAsSort            string                `yaml:"display_as_sort,omitempty" json:"display_as_sort,omitempty"` // "", "first", "all"
	AndStyle                 AndStyle              `yaml:"and,omitempty" json:"and,omitempty"`
	DelimiterPrecedesLast    DelimiterPrecedesLast `yaml:"delimiter_precedes_last,omitempty" json:"delimiter_precedes_last,omitempty"`
	DelimiterPrecedesEtAl    DelimiterPrecedesLast `yaml:"delimiter_precedes_et_al,omitempty" json:"delimiter_precedes_et_al,omitempty"`
	Delimiter                string                `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
	EtAl                     EtAlOptions           `yaml:"et_al,omitempty" json:"et_al,omitempty"`
	EtAlTerm                 string                `yaml:"et_al_term,omitempty" json:"et_al_term,omitempty"`
	DemoteNonDroppingParticle bool                 `yaml:"demote_non_dropping_particle,omitempty" json:"demote_non_dropping_particle,omitempty"`
	EditorLabelFormat        string                `yaml:"editor_label_format,omitempty" json:"editor_label_format,omitempty"`
}

// DateOptions is the cascaded option bundle for date formatting (§3, §4.4).
type DateOptions struct {
	MonthForm        string `yaml:"month_form,omitempty" json:"month_form,omitempty"` // "long"|"short"|"numeric"
	DatePartOrder    string `yaml:"date_part_order,omitempty" json:"date_part_order,omitempty"` // e.g. "ymd", "mdy"
	PartSeparator    string `yaml:"part_separator,omitempty" json:"part_separator,omitempty"`
	RangeDash        string `yaml:"range_dash,omitempty" json:"range_dash,omitempty"`
	ApproximateMark  string `yaml:"approximate_mark,omitempty" json:"approximate_mark,omitempty"`
	UncertainMark    string `yaml:"uncertain_mark,omitempty" json:"uncertain_mark,omitempty"`
	CollapseRange    bool   `yaml:"collapse_range,omitempty" json:"collapse_range,omitempty"`
}

// TitleOptions is the cascaded option bundle for title rendering (§3).
type TitleOptions struct {
	Case       string `yaml:"case,omitempty" json:"case,omitempty"` // "sentence"|"title"|"none"
	SmartQuotes bool  `yaml:"smart_quotes,omitempty" json:"smart_quotes,omitempty"`
}

// SubstituteOptions is the ordered fallback chain used when a primary slot
// (e.g. author) is empty (§3 Substitute).
type SubstituteOptions struct {
	Fallback   []string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	LabelForm  string   `yaml:"label_form,omitempty" json:"label_form,omitempty"`
}

// QuotePunctuationMode selects where terminal punctuation moves relative to
// a closing quote (§4.6 Quote-punctuation swap).
type QuotePunctuationMode string

const (
	QuoteModeUS      QuotePunctuationMode = "us" // inside the quote
	QuoteModeBritish QuotePunctuationMode = "british" // outside the quote
)

// DisambiguationOptions enables/disables each of the three strategies and
// controls grouping/scope behavior (§4.5.3).
type DisambiguationOptions struct {
	AddNames          bool `yaml:"add_names,omitempty" json:"add_names,omitempty"`
	ExpandGivenNames  bool `yaml:"expand_given_names,omitempty" json:"expand_given_names,omitempty"`
	YearSuffix        bool `yaml:"year_suffix,omitempty" json:"year_suffix,omitempty"`
	PerGroup          bool `yaml:"per_group,omitempty" json:"per_group,omitempty"` // default false: document-global
}

// DefaultDisambiguationOptions enables all three strategies, document-global.
func DefaultDisambiguationOptions() DisambiguationOptions {
	return DisambiguationOptions{AddNames: true, ExpandGivenNames: true, YearSuffix: true}
}

// Options is one cascaded options record (§4.1). A nil/zero field at any
// layer means "not specified at this layer"; InitializeWithHyphen uses a
// pointer because its typed default (true) must be distinguishable from an
// explicit false set by a lower-priority layer.
type Options struct {
	Processing      ProcessingMode         `yaml:"processing,omitempty" json:"processing,omitempty"`
	Contributor     ContributorOptions     `yaml:"contributor,omitempty" json:"contributor,omitempty"`
	Date            DateOptions            `yaml:"date,omitempty" json:"date,omitempty"`
	Title           TitleOptions           `yaml:"title,omitempty" json:"title,omitempty"`
	Substitute      SubstituteOptions      `yaml:"substitute,omitempty" json:"substitute,omitempty"`
	QuotePunctuation QuotePunctuationMode  `yaml:"quote_punctuation,omitempty" json:"quote_punctuation,omitempty"`
	Disambiguation  DisambiguationOptions  `yaml:"disambiguation,omitempty" json:"disambiguation,omitempty"`

	// presetName is set when this scope was expressed as a bare preset tag
	// in the style file; ExpandPresets resolves it into the fields above.
	presetName string
}

// UnmarshalYAML lets an options scope be written either as a preset tag
// (a bare string, e.g. `options: apa`) or as an explicit record (a mapping),
// per §3 "each option scope may be expressed as an explicit record or as a
// preset tag".
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		o.presetName = value.Value
		return nil
	}
	type plain Options
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*o = Options(p)
	return nil
}

// PresetName returns the unexpanded preset tag, if this scope was written
// as a bare string rather than an explicit record.
func (o Options) PresetName() string {
	return o.presetName
}

// Merge layers patch over the receiver: patch's non-zero fields replace the
// receiver's (scalars clobber; the EtAl record merges key-wise via its own
// non-zero fields, while a non-zero Disambiguation record replaces the
// receiver's wholesale), per §4.1's layering rule.
func (o Options) Merge(patch Options) Options {
	out := o
	if patch.Processing != "" {
		out.Processing = patch.Processing
	}
	out.Contributor = mergeContributor(out.Contributor, patch.Contributor)
	out.Date = mergeDate(out.Date, patch.Date)
	out.Title = mergeTitle(out.Title, patch.Title)
	out.Substitute = mergeSubstitute(out.Substitute, patch.Substitute)
	if patch.QuotePunctuation != "" {
		out.QuotePunctuation = patch.QuotePunctuation
	}
	out.Disambiguation = mergeDisambiguation(out.Disambiguation, patch.Disambiguation)
	return out
}

func mergeContributor(base, patch ContributorOptions) ContributorOptions {
	if patch.InitializeWith != "" {
		base.InitializeWith = patch.InitializeWith
	}
	if patch.InitializeWithHyphen != nil {
		base.InitializeWithHyphen = patch.InitializeWithHyphen
	}
	if patch.NameAsSortOrder {
		base.NameAsSortOrder = patch.NameAsSortOrder
	}
	if patch.DisplayAsSort != "" {
		base.DisplayAsSort = patch.DisplayAsSort
	}
	if patch.AndStyle != "" {
		base.AndStyle = patch.AndStyle
	}
	if patch.DelimiterPrecedesLast != "" {
		base.DelimiterPrecedesLast = patch.DelimiterPrecedesLast
	}
	if patch.DelimiterPrecedesEtAl != "" {
		base.DelimiterPrecedesEtAl = patch.DelimiterPrecedesEtAl
	}
	if patch.Delimiter != "" {
		base.Delimiter = patch.Delimiter
	}
	if patch.EtAl.Min != 0 {
		base.EtAl.Min = patch.EtAl.Min
	}
	if patch.EtAl.UseFirst != 0 {
		base.EtAl.UseFirst = patch.EtAl.UseFirst
	}
	if patch.EtAl.UseLast {
		base.EtAl.UseLast = patch.EtAl.UseLast
	}
	if patch.EtAl.SubsequentThreshold != 0 {
		base.EtAl.SubsequentThreshold = patch.EtAl.SubsequentThreshold
	}
	if patch.EtAl.SubsequentUseFirst != 0 {
		base.EtAl.SubsequentUseFirst = patch.EtAl.SubsequentUseFirst
	}
	if patch.EtAlTerm != "" {
		base.EtAlTerm = patch.EtAlTerm
	}
	if patch.DemoteNonDroppingParticle {
		base.DemoteNonDroppingParticle = patch.DemoteNonDroppingParticle
	}
	if patch.EditorLabelFormat != "" {
		base.EditorLabelFormat = patch.EditorLabelFormat
	}
	return base
}

func mergeDate(base, patch DateOptions) DateOptions {
	if patch.MonthForm != "" {
		base.MonthForm = patch.MonthForm
	}
	if patch.DatePartOrder != "" {
		base.DatePartOrder = patch.DatePartOrder
	}
	if patch.PartSeparator != "" {
		base.PartSeparator = patch.PartSeparator
	}
	if patch.RangeDash != "" {
		base.RangeDash = patch.RangeDash
	}
	if patch.ApproximateMark != "" {
		base.ApproximateMark = patch.ApproximateMark
	}
	if patch.UncertainMark != "" {
		base.UncertainMark = patch.UncertainMark
	}
	if patch.CollapseRange {
		base.CollapseRange = patch.CollapseRange
	}
	return base
}

func mergeTitle(base, patch TitleOptions) TitleOptions {
	if patch.Case != "" {
		base.Case = patch.Case
	}
	if patch.SmartQuotes {
		base.SmartQuotes = patch.SmartQuotes
	}
	return base
}

func mergeSubstitute(base, patch SubstituteOptions) SubstituteOptions {
	if len(patch.Fallback) > 0 {
		base.Fallback = patch.Fallback
	}
	if patch.LabelForm != "" {
		base.LabelForm = patch.LabelForm
	}
	return base
}

func mergeDisambiguation(base, patch DisambiguationOptions) DisambiguationOptions {
	// Disambiguation is a flags record set as a whole scope; treated as an
	// explicit record only (no partial patching makes sense for bools that
	// default meaningfully to both true and false), so a non-zero patch
	// replaces wholesale.
	if patch != (DisambiguationOptions{}) {
		return patch
	}
	return base
}

// Default returns the typed defaults documented in the glossary: et-al
// threshold 0 (never truncate), "and" style text, US quote punctuation,
// sentence case off, all three disambiguation strategies enabled.
func Default() Options {
	h := true
	return Options{
		Processing: ModeAuthorDate,
		Contributor: ContributorOptions{
			InitializeWithHyphen: &h,
			AndStyle:             AndText,
			DelimiterPrecedesLast: PrecedesContextual,
			Delimiter:            ", ",
			EtAlTerm:             "et al.",
		},
		Date: DateOptions{
			MonthForm:     "long",
			DatePartOrder: "ymd",
			PartSeparator: " ",
			RangeDash:     "–",
		},
		QuotePunctuation: QuoteModeUS,
		Disambiguation:   DefaultDisambiguationOptions(),
	}
}
