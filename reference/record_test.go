package reference_test

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
)

// TestContributorDisplayName checks the default "Family, Given" form for a
// simple name, a comma suffix, a non-dropping particle and a literal name.
func TestContributorDisplayName(t *testing.T) {
	cases := []struct {
		name string
		c    reference.Contributor
		want string
	}{
		{
			name: "simple",
			c: reference.Contributor{Personal: &reference.PersonalName{
				Family: "Kuhn", Given: "Thomas S.",
			}},
			want: "Kuhn, Thomas S.",
		},
		{
			name: "comma suffix",
			c: reference.Contributor{Personal: &reference.PersonalName{
				Family: "Smith", Given: "John", Suffix: "Jr.", CommaSuffix: true,
			}},
			want: "Smith, John, Jr.",
		},
		{
			name: "non-dropping particle",
			c: reference.Contributor{Personal: &reference.PersonalName{
				Family: "Cruz", Given: "Maria", NonDroppingParticle: "de la",
			}},
			want: "de la Cruz, Maria",
		},
		{
			name: "literal",
			c:    reference.Contributor{Literal: "World Bank"},
			want: "World Bank",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.DisplayName(); got != tc.want {
				t.Errorf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestContributorSortKey(t *testing.T) {
	c := reference.Contributor{Personal: &reference.PersonalName{
		Family: "Beethoven", NonDroppingParticle: "van",
	}}
	if got, want := c.SortKey(), "van Beethoven"; got != want {
		t.Errorf("SortKey() = %q, want %q", got, want)
	}

	lit := reference.Contributor{Literal: "World Bank"}
	if got, want := lit.SortKey(), "World Bank"; got != want {
		t.Errorf("SortKey() = %q, want %q", got, want)
	}
}

func TestEDTFValueEDTF(t *testing.T) {
	cases := []struct {
		name string
		v    reference.EDTFValue
		want string
	}{
		{
			name: "year only",
			v:    reference.EDTFValue{Start: reference.EDTFDate{Year: 1962}},
			want: "1962",
		},
		{
			name: "year-month",
			v:    reference.EDTFValue{Start: reference.EDTFDate{Year: 1978, Month: 3}},
			want: "1978-03",
		},
		{
			name: "approximate year",
			v:    reference.EDTFValue{Start: reference.EDTFDate{Year: 1978, Approximate: true}},
			want: "1978~",
		},
		{
			name: "range",
			v: reference.EDTFValue{
				Start: reference.EDTFDate{Year: 1978},
				End:   &reference.EDTFDate{Year: 1980},
			},
			want: "1978/1980",
		},
		{
			name: "open-ended range",
			v: reference.EDTFValue{
				Start: reference.EDTFDate{Year: 1978},
				End:   &reference.EDTFDate{OpenEnded: true},
			},
			want: "1978/..",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.EDTF(); got != tc.want {
				t.Errorf("EDTF() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReferenceCustomRoundTrip(t *testing.T) {
	r := reference.New("ITEM-5", reference.TypeBook)
	if err := r.SetCustom("citation-number", float64(7)); err != nil {
		t.Fatalf("SetCustom: %v", err)
	}
	got, ok := r.GetCustom("citation-number")
	if !ok {
		t.Fatal("GetCustom: not found")
	}
	if got.(float64) != 7 {
		t.Errorf("GetCustom() = %v, want 7", got)
	}
	if _, ok := r.GetCustom("missing"); ok {
		t.Error("GetCustom(missing) = found, want not found")
	}
}

func TestPageRangeParsing(t *testing.T) {
	cases := []struct {
		raw       string
		wantStart string
		wantEnd   string
		wantRange bool
	}{
		{"436-444", "436", "444", true},
		{"436–444", "436", "444", true},
		{"23", "23", "", false},
	}
	for _, tc := range cases {
		p := reference.ParsePageRange(tc.raw)
		if p.Start != tc.wantStart || p.End != tc.wantEnd || p.IsRange() != tc.wantRange {
			t.Errorf("ParsePageRange(%q) = %+v, want start=%q end=%q range=%v",
				tc.raw, p, tc.wantStart, tc.wantEnd, tc.wantRange)
		}
	}
}
