package locale_test

import (
	"testing"

	"github.com/scholarly-tools/citeproc-go/locale"
)

func newStore(t *testing.T) *locale.Store {
	t.Helper()
	s, err := locale.NewDefaultStore()
	if err != nil {
		t.Fatalf("NewDefaultStore: %v", err)
	}
	return s
}

func TestStoreFallbackChain(t *testing.T) {
	s := newStore(t)

	// Exact match.
	if l := s.Get("en-US"); l == nil || l.Tag != "en-US" {
		t.Fatalf("Get(en-US) = %v, want en-US locale", l)
	}

	// Base-language fallback: "en-AU" isn't registered, but "en" isn't
	// either in this store, so it falls all the way to the default.
	if l := s.Get("en-AU"); l == nil || l.Tag != "en-US" {
		t.Fatalf("Get(en-AU) = %v, want fallback to default en-US", l)
	}

	// Unknown tag entirely falls back to default.
	if l := s.Get("ja-JP"); l == nil || l.Tag != "en-US" {
		t.Fatalf("Get(ja-JP) = %v, want fallback to default en-US", l)
	}
}

func TestTermLookup(t *testing.T) {
	s := newStore(t)
	l := s.Get("en-US")

	got, ok := l.Term("et-al", "long", false)
	if !ok || got != "et al." {
		t.Errorf("Term(et-al) = %q, %v; want %q, true", got, ok, "et al.")
	}

	if _, ok := l.Term("does-not-exist", "long", false); ok {
		t.Error("Term(does-not-exist) found, want not found")
	}

	got, ok = l.Term("editor", "long", true)
	if !ok || got != "editors" {
		t.Errorf("Term(editor, plural) = %q, %v; want %q, true", got, ok, "editors")
	}
}

func TestOrdinalRules(t *testing.T) {
	s := newStore(t)
	l := s.Get("en-US")

	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd"}
	for n, want := range cases {
		if got := l.Ordinals.Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestMonthNames(t *testing.T) {
	s := newStore(t)
	l := s.Get("en-US")
	if got := l.Months.Month(3, "long"); got != "March" {
		t.Errorf("Month(3, long) = %q, want March", got)
	}
	if got := l.Months.Month(3, "short"); got != "Mar." {
		t.Errorf("Month(3, short) = %q, want Mar.", got)
	}
}
