package reference

import (
	"encoding/json"
	"fmt"
	"io"
)

// wireName is the on-the-wire shape of a contributor name: either a
// structured personal name (family/given plus particles and suffix) or a
// literal/corporate name.
type wireName struct {
	Family              string `json:"family,omitempty"`
	Given               string `json:"given,omitempty"`
	NonDroppingParticle string `json:"non-dropping-particle,omitempty"`
	DroppingParticle    string `json:"dropping-particle,omitempty"`
	Suffix              string `json:"suffix,omitempty"`
	CommaSuffix         bool   `json:"comma-suffix,omitempty"`
	StaticOrdering      bool   `json:"static-ordering,omitempty"`
	Literal             string `json:"literal,omitempty"`
}

func (n wireName) toContributor(role string) Contributor {
	if n.Literal != "" {
		return Contributor{Role: role, Literal: n.Literal}
	}
	return Contributor{
		Role: role,
		Personal: &PersonalName{
			Family:              n.Family,
			Given:               n.Given,
			NonDroppingParticle: n.NonDroppingParticle,
			DroppingParticle:    n.DroppingParticle,
			Suffix:              n.Suffix,
			CommaSuffix:         n.CommaSuffix,
			StaticOrdering:      n.StaticOrdering,
		},
	}
}

// wireDate accepts either an EDTF string ("1978-03") or a structured
// date-parts object, matching the two forms §6 allows for a date variable.
type wireDate struct {
	Raw         string
	DateParts   [][]int
	Season      int8
	Uncertain   bool
	Approximate bool
}

func (d *wireDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Raw = s
		return nil
	}

	var obj struct {
		DateParts [][]int `json:"date-parts"`
		Season    int8    `json:"season"`
		Circa     bool    `json:"circa"`
		Uncertain bool    `json:"uncertain"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}
	d.DateParts = obj.DateParts
	d.Season = obj.Season
	d.Uncertain = obj.Uncertain
	d.Approximate = obj.Circa
	return nil
}

func (d wireDate) toEDTFValue() (EDTFValue, error) {
	if d.Raw != "" {
		return ParseEDTF(d.Raw)
	}
	if len(d.DateParts) == 0 {
		return EDTFValue{}, nil
	}
	start := FromDateParts(d.DateParts[0])
	if d.Season != 0 {
		start.Season = Season(d.Season)
	}
	start.Uncertain = d.Uncertain
	start.Approximate = d.Approximate
	v := EDTFValue{Start: start}
	if len(d.DateParts) > 1 {
		end := FromDateParts(d.DateParts[1])
		v.End = &end
	}
	return v, nil
}

// wireRecord is the on-the-wire shape of one reference record (§6 "Reference
// input"). Only id and type are required; every other field is optional and
// left zero-valued when absent.
type wireRecord struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	CustomType string `json:"custom-type,omitempty"`

	Author     []wireName `json:"author,omitempty"`
	Editor     []wireName `json:"editor,omitempty"`
	Translator []wireName `json:"translator,omitempty"`

	Issued       *wireDate `json:"issued,omitempty"`
	Accessed     *wireDate `json:"accessed,omitempty"`
	OriginalDate *wireDate `json:"original-date,omitempty"`

	Title           string `json:"title,omitempty"`
	TitleShort      string `json:"title-short,omitempty"`
	ContainerTitle  string `json:"container-title,omitempty"`
	CollectionTitle string `json:"collection-title,omitempty"`

	DOI            string `json:"DOI,omitempty"`
	URL            string `json:"URL,omitempty"`
	Publisher      string `json:"publisher,omitempty"`
	PublisherPlace string `json:"publisher-place,omitempty"`
	Note           string `json:"note,omitempty"`
	Language       string `json:"language,omitempty"`
	Volume         string `json:"volume,omitempty"`
	Issue          string `json:"issue,omitempty"`
	Number         string `json:"number,omitempty"`
	Edition        string `json:"edition,omitempty"`
	ChapterNumber  string `json:"chapter-number,omitempty"`
	Page           string `json:"page,omitempty"`
}

// knownRecordKeys are wireRecord's JSON keys (§6 "Reference input"). Anything
// else on a record is either rejected (strict) or captured into
// Reference.Custom (permissive), mirroring style.Load's unknown-field
// handling for style files (§7 Strict-mode unknown field).
var knownRecordKeys = map[string]bool{
	"id": true, "type": true, "custom-type": true,
	"author": true, "editor": true, "translator": true,
	"issued": true, "accessed": true, "original-date": true,
	"title": true, "title-short": true, "container-title": true, "collection-title": true,
	"DOI": true, "URL": true, "publisher": true, "publisher-place": true,
	"note": true, "language": true, "volume": true, "issue": true, "number": true,
	"edition": true, "chapter-number": true, "page": true,
}

func (w wireRecord) toReference() (*Reference, error) {
	r := New(w.ID, Type(w.Type))
	r.CustomType = w.CustomType

	for _, n := range w.Author {
		r.Contributors = append(r.Contributors, n.toContributor("author"))
	}
	for _, n := range w.Editor {
		r.Contributors = append(r.Contributors, n.toContributor("editor"))
	}
	for _, n := range w.Translator {
		r.Contributors = append(r.Contributors, n.toContributor("translator"))
	}

	for role, d := range map[DateRole]*wireDate{
		DateIssued:   w.Issued,
		DateAccessed: w.Accessed,
		DateOriginal: w.OriginalDate,
	} {
		if d == nil {
			continue
		}
		v, err := d.toEDTFValue()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", w.ID, err)
		}
		r.Dates[role] = v
	}

	r.Titles.Primary = Title{Main: w.Title, Short: w.TitleShort}
	r.Titles.Container = Title{Main: w.ContainerTitle}
	r.Titles.Series = Title{Main: w.CollectionTitle}

	r.DOI = w.DOI
	r.URL = w.URL
	r.Publisher = w.Publisher
	r.PublisherPlace = w.PublisherPlace
	r.Note = w.Note
	r.Language = w.Language
	r.Volume = w.Volume
	r.Issue = w.Issue
	r.Number = w.Number
	r.Edition = w.Edition
	r.ChapterNumber = w.ChapterNumber
	r.Page = ParsePageRange(w.Page)
	r.CollectionTitle = w.CollectionTitle

	return r, nil
}

// LoadOptions configures reference loading, matching style.LoadOptions'
// strict/permissive unknown-field handling (§7).
type LoadOptions struct {
	// Strict rejects a record carrying an unrecognized top-level field with a
	// precise diagnostic (I-05). When false, unknown fields are preserved on
	// Reference.Custom so they round-trip on output.
	Strict bool
}

// Load decodes a reference list from JSON: either a bare array of records or
// an object with an "items" array (the two common CSL-JSON envelope shapes).
func Load(r io.Reader, opts LoadOptions) ([]*Reference, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading reference input: %w", err)
	}
	return LoadBytes(data, opts)
}

// LoadBytes is Load without the io.Reader indirection.
func LoadBytes(data []byte, opts LoadOptions) ([]*Reference, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var envelope struct {
			Items []json.RawMessage `json:"items"`
		}
		if err2 := json.Unmarshal(data, &envelope); err2 != nil {
			return nil, fmt.Errorf("decoding reference input: %w", err)
		}
		raw = envelope.Items
	}

	refs := make([]*Reference, 0, len(raw))
	for i, rawRecord := range raw {
		var w wireRecord
		if err := json.Unmarshal(rawRecord, &w); err != nil {
			return nil, fmt.Errorf("reference[%d]: %w", i, err)
		}
		if w.ID == "" {
			return nil, fmt.Errorf("reference record missing required field %q", "id")
		}
		if w.Type == "" {
			return nil, fmt.Errorf("reference record %q missing required field %q", w.ID, "type")
		}
		ref, err := w.toReference()
		if err != nil {
			return nil, err
		}
		if err := applyUnknownRecordFields(ref, rawRecord, opts); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// applyUnknownRecordFields finds top-level JSON keys on rawRecord that
// wireRecord doesn't decode and either rejects the record (strict) or
// copies them onto ref.Custom (permissive), the same pattern
// style.Parse uses for a style file's unknown top-level fields.
func applyUnknownRecordFields(ref *Reference, rawRecord json.RawMessage, opts LoadOptions) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawRecord, &fields); err != nil {
		return fmt.Errorf("reference %q: %w", ref.ID, err)
	}
	for key, value := range fields {
		if knownRecordKeys[key] {
			continue
		}
		if opts.Strict {
			return fmt.Errorf("reference %q: unknown field %q", ref.ID, key)
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("reference %q: decoding unknown field %q: %w", ref.ID, key, err)
		}
		if err := ref.SetCustom(key, v); err != nil {
			return fmt.Errorf("reference %q: %w", ref.ID, err)
		}
	}
	return nil
}
