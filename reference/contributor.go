// Package reference defines the typed bibliographic record model: contributors,
// EDTF dates, titles, and the reference envelope that ties them together.
package reference

import "strings"

// PersonalName is a structured personal name: family/given plus the particles
// and suffix that name-formatting options act on. It is never parsed from a
// free string at render time (I-01): loaders are responsible for splitting
// "Smith, Jane" into its parts before a Contributor reaches the renderer.
type PersonalName struct {
	Family              string
	Given               string
	NonDroppingParticle string // e.g. "de" in "de la Cruz" (sorts with family)
	DroppingParticle    string // e.g. "van" in Dutch "van Beethoven" (sorts with given)
	Suffix              string
	CommaSuffix         bool // join suffix with a comma ("Smith, Jr.") vs space
	StaticOrdering      bool // always render given-first, even in sort context
	Language            string
	Script              string
}

// Contributor is either a structured personal name or a literal (corporate)
// name. Exactly one of Personal or Literal is set; literal names are never
// split on commas.
type Contributor struct {
	Role    string
	Literal string
	Personal *PersonalName
}

// IsLiteral reports whether this contributor is a literal/organizational name.
func (c Contributor) IsLiteral() bool {
	return c.Personal == nil
}

// SortKey returns the string this contributor sorts by: family name for
// personal names (particles prepended per non-dropping-particle convention),
// the literal string as a whole for organizational names.
func (c Contributor) SortKey() string {
	if c.IsLiteral() {
		return c.Literal
	}
	p := c.Personal
	if p.NonDroppingParticle != "" {
		return p.NonDroppingParticle + " " + p.Family
	}
	return p.Family
}

// DisplayName renders a reasonable default display form without any style
// options applied: "Family, Given" for personal names, the literal string
// otherwise. Name formatting per style options lives in package names.
func (c Contributor) DisplayName() string {
	if c.IsLiteral() {
		return c.Literal
	}
	p := c.Personal
	var b strings.Builder
	if p.NonDroppingParticle != "" {
		b.WriteString(p.NonDroppingParticle)
		b.WriteString(" ")
	}
	b.WriteString(p.Family)
	if p.Given != "" {
		b.WriteString(", ")
		b.WriteString(p.Given)
	}
	if p.DroppingParticle != "" {
		b.WriteString(" ")
		b.WriteString(p.DroppingParticle)
	}
	if p.Suffix != "" {
		if p.CommaSuffix {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(p.Suffix)
	}
	return b.String()
}

// ByRole filters a contributor list down to a single role.
func ByRole(cs []Contributor, role string) []Contributor {
	var out []Contributor
	for _, c := range cs {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}
