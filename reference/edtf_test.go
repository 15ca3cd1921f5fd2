package reference_test

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
)

func TestParseEDTFRoundTripsWithFormatter(t *testing.T) {
	tests := []string{
		"1978",
		"1978-03",
		"1978-03-04",
		"1978/1980",
		"1978/..",
		"2020-05?",
		"2020-05~",
		"2020-05%",
	}
	for _, s := range tests {
		v, err := reference.ParseEDTF(s)
		if err != nil {
			t.Fatalf("ParseEDTF(%q) error: %v", s, err)
		}
		if got := v.EDTF(); got != s {
			t.Errorf("ParseEDTF(%q).EDTF() = %q, want %q", s, got, s)
		}
	}
}

func TestParseEDTFSeason(t *testing.T) {
	v, err := reference.ParseEDTF("2020-23")
	if err != nil {
		t.Fatalf("ParseEDTF error: %v", err)
	}
	if v.Start.Year != 2020 || v.Start.Season != reference.Autumn || v.Start.Month != 0 {
		t.Fatalf("Start = %+v, want year 2020 season Autumn", v.Start)
	}
}

func TestParseEDTFEmptyString(t *testing.T) {
	v, err := reference.ParseEDTF("")
	if err != nil {
		t.Fatalf("ParseEDTF(\"\") error: %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("ParseEDTF(\"\") = %+v, want zero value", v)
	}
}

func TestParseEDTFInvalidYear(t *testing.T) {
	if _, err := reference.ParseEDTF("abcd"); err == nil {
		t.Fatal("ParseEDTF(\"abcd\") error = nil, want error")
	}
}

func TestFromDateParts(t *testing.T) {
	d := reference.FromDateParts([]int{1978, 3, 4})
	if d.Year != 1978 || d.Month != 3 || d.Day != 4 {
		t.Fatalf("FromDateParts = %+v, want 1978-03-04", d)
	}
}
