package dates

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

func TestYearSuffixBijection(t *testing.T) {
	cases := map[int]string{
		1:  "a",
		26: "z",
		27: "aa",
		52: "az",
		53: "ba",
	}
	for n, want := range cases {
		if got := YearSuffix(n); got != want {
			t.Errorf("YearSuffix(%d) = %q, want %q", n, got, want)
		}
		if got := DecodeYearSuffix(want); got != n {
			t.Errorf("DecodeYearSuffix(%q) = %d, want %d", want, got, n)
		}
	}
	if got := YearSuffix(0); got != "" {
		t.Errorf("YearSuffix(0) = %q, want empty", got)
	}
}

func TestFormatYearForm(t *testing.T) {
	v := reference.EDTFValue{Start: reference.EDTFDate{Year: 2020}}
	got := Format(v, style.DateFormYear, style.DateOptions{}, nil, "a")
	want := "2020a"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatNumericRange(t *testing.T) {
	v := reference.EDTFValue{
		Start: reference.EDTFDate{Year: 2019, Month: 3, Day: 1},
		End:   &reference.EDTFDate{Year: 2019, Month: 3, Day: 15},
	}
	got := Format(v, style.DateFormNumeric, style.DateOptions{DatePartOrder: "ymd", RangeDash: "-"}, nil, "")
	want := "2019-03-01-2019-03-15"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatUncertainMarker(t *testing.T) {
	v := reference.EDTFValue{Start: reference.EDTFDate{Year: 1820, Uncertain: true}}
	got := Format(v, style.DateFormYear, style.DateOptions{UncertainMark: "?"}, nil, "")
	want := "1820?"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatOpenEndedRange(t *testing.T) {
	v := reference.EDTFValue{
		Start: reference.EDTFDate{Year: 1990},
		End:   &reference.EDTFDate{OpenEnded: true},
	}
	got := Format(v, style.DateFormFull, style.DateOptions{RangeDash: "–"}, nil, "")
	want := "1990–"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatFullWithLocaleMonthNames(t *testing.T) {
	loc := &locale.Locale{
		Months: locale.MonthNames{
			Long: [13]string{3: "March"},
		},
	}
	v := reference.EDTFValue{Start: reference.EDTFDate{Year: 1978, Month: 3, Day: 14}}
	got := Format(v, style.DateFormFull, style.DateOptions{PartSeparator: " "}, loc, "")
	want := "March 14, 1978"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatZeroValue(t *testing.T) {
	if got := Format(reference.EDTFValue{}, style.DateFormYear, style.DateOptions{}, nil, ""); got != "" {
		t.Fatalf("Format(zero value) = %q, want empty", got)
	}
}
