package numbers

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

func TestFormatPageRangeExpanded(t *testing.T) {
	p := reference.PageRange{Start: "436", End: "444"}
	got := FormatPageRange(p, style.PageRangeExpanded)
	want := "436–444"
	if got != want {
		t.Fatalf("FormatPageRange(expanded) = %q, want %q", got, want)
	}
}

func TestFormatPageRangeMinimal(t *testing.T) {
	p := reference.PageRange{Start: "321", End: "325"}
	got := FormatPageRange(p, style.PageRangeMinimal)
	want := "321–5"
	if got != want {
		t.Fatalf("FormatPageRange(minimal) = %q, want %q", got, want)
	}
}

func TestFormatPageRangeChicagoBelowHundred(t *testing.T) {
	p := reference.PageRange{Start: "3", End: "10"}
	got := FormatPageRange(p, style.PageRangeChicago)
	want := "3–10"
	if got != want {
		t.Fatalf("FormatPageRange(chicago) = %q, want %q", got, want)
	}
}

func TestFormatPageRangeChicagoHundreds(t *testing.T) {
	p := reference.PageRange{Start: "321", End: "325"}
	got := FormatPageRange(p, style.PageRangeChicago)
	want := "321–25"
	if got != want {
		t.Fatalf("FormatPageRange(chicago) = %q, want %q", got, want)
	}
}

func TestFormatPageRangeSinglePage(t *testing.T) {
	p := reference.PageRange{Start: "42"}
	if got := FormatPageRange(p, style.PageRangeExpanded); got != "42" {
		t.Fatalf("FormatPageRange(single) = %q, want %q", got, "42")
	}
}

func TestFormatPageRangeNonNumericFallsBack(t *testing.T) {
	p := reference.PageRange{Start: "iv", End: "vi"}
	got := FormatPageRange(p, style.PageRangeMinimal)
	want := "iv–vi"
	if got != want {
		t.Fatalf("FormatPageRange(non-numeric) = %q, want %q", got, want)
	}
}

func TestFormatPageRangeSharedSuffix(t *testing.T) {
	p := reference.PageRange{Start: "100a", End: "104a"}
	got := FormatPageRange(p, style.PageRangeMinimal)
	want := "100a–4a"
	if got != want {
		t.Fatalf("FormatPageRange(shared suffix) = %q, want %q", got, want)
	}
}

func TestIsPlural(t *testing.T) {
	if IsPlural(reference.PageRange{Start: "1"}) {
		t.Fatal("expected single page to not be plural")
	}
	if !IsPlural(reference.PageRange{Start: "1", End: "2"}) {
		t.Fatal("expected range to be plural")
	}
}
