package reference

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Type is the closed-ish bibliographic type enum, extensible via TypeCustom
// plus the Reference.CustomType escape hatch.
type Type string

const (
	TypeArticleJournal  Type = "article-journal"
	TypeBook            Type = "book"
	TypeChapter         Type = "chapter"
	TypeReport          Type = "report"
	TypeThesis          Type = "thesis"
	TypePaperConference Type = "paper-conference"
	TypeWebpage         Type = "webpage"
	TypeLegalCase       Type = "legal-case"
	TypeLegislation     Type = "legislation"
	TypeDataset         Type = "dataset"
	TypeSoftware        Type = "software"
	TypeManuscript      Type = "manuscript"
	TypeCustom          Type = "custom"
)

// Reference is a single bibliographic record. Fields absent on the record
// are zero-valued; the template evaluator treats a zero value as Input-empty
// (§7) rather than an error.
type Reference struct {
	ID   string
	Type Type
	// CustomType names the concrete type when Type == TypeCustom.
	CustomType string

	Contributors []Contributor
	Dates        map[DateRole]EDTFValue
	Titles       Titles

	DOI             string
	URL             string
	Publisher       string
	PublisherPlace  string
	CollectionTitle string
	Note            string
	Language        string

	Volume        string
	Issue         string
	Number        string
	Edition       string
	ChapterNumber string
	Page          PageRange

	// Custom carries style-specific extensions. Unknown top-level fields in
	// a strict-mode load are a hard error (I-05); in permissive mode they
	// land here so they round-trip on output.
	Custom *structpb.Struct
}

// New creates an empty Reference with its map initialized.
func New(id string, typ Type) *Reference {
	return &Reference{
		ID:    id,
		Type:  typ,
		Dates: make(map[DateRole]EDTFValue),
	}
}

// Date returns the date for a role, and whether it was present.
func (r *Reference) Date(role DateRole) (EDTFValue, bool) {
	if r.Dates == nil {
		return EDTFValue{}, false
	}
	v, ok := r.Dates[role]
	return v, ok
}

// SetCustom stores a style-specific extension value.
func (r *Reference) SetCustom(key string, value any) error {
	if r.Custom == nil {
		r.Custom = &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	}
	v, err := structpb.NewValue(value)
	if err != nil {
		return fmt.Errorf("setting custom field %q: %w", key, err)
	}
	r.Custom.Fields[key] = v
	return nil
}

// GetCustom retrieves a style-specific extension value.
func (r *Reference) GetCustom(key string) (any, bool) {
	if r.Custom == nil || r.Custom.Fields == nil {
		return nil, false
	}
	v, ok := r.Custom.Fields[key]
	if !ok {
		return nil, false
	}
	return v.AsInterface(), true
}

// Authors returns contributors with the "author" role, the common case for
// et-al thresholds and sorting.
func (r *Reference) Authors() []Contributor {
	return ByRole(r.Contributors, "author")
}

// EffectiveType returns CustomType when Type is TypeCustom, else Type.
func (r *Reference) EffectiveType() string {
	if r.Type == TypeCustom && r.CustomType != "" {
		return r.CustomType
	}
	return string(r.Type)
}
