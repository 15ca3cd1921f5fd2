// Package resolve implements the option resolver (§4.1): for any
// (scope, reference-type, template-component) triple it produces an
// effective options record and an effective rendering bundle by cascading
// global options, context options, component rendering, and type/default
// overrides. Later layers replace only the keys they specify; scalars
// clobber, records merge key-wise — Options.Merge and Rendering.Merge do
// the per-field work, this package only establishes layer order.
package resolve

import "github.com/scholarly-tools/citeproc-go/style"

// Scope selects which context options layer on top of the style's global
// options.
type Scope int

const (
	ScopeCitation Scope = iota
	ScopeBibliography
)

// Resolver caches the per-scope effective options so repeated lookups for
// the same style don't re-run the merge on every reference.
type Resolver struct {
	global       style.Options
	citation     style.Options
	bibliography style.Options
}

// New builds a resolver from a loaded (preset-expanded) style.
func New(s *style.Style) *Resolver {
	r := &Resolver{global: s.Options}
	if s.Citation != nil {
		r.citation = r.global.Merge(s.Citation.Options)
	} else {
		r.citation = r.global
	}
	if s.Bibliography != nil {
		r.bibliography = r.global.Merge(s.Bibliography.Options)
	} else {
		r.bibliography = r.global
	}
	return r
}

// Options returns the effective options for a scope, with no component
// override applied yet (§4.1 layers 1–2: global ← context).
func (r *Resolver) Options(scope Scope) style.Options {
	if scope == ScopeBibliography {
		return r.bibliography
	}
	return r.citation
}

// Rendering computes the effective Rendering bundle for one component
// against one reference type (§4.1 layers 3–5: component Rendering ←
// overrides[type] ← overrides['default'], the last applied only when no
// type-specific override matched).
func Rendering(c style.Component, refType string) style.Rendering {
	out := c.Rendering
	if ov, ok := c.Overrides[refType]; ok {
		out = out.Merge(ov.Rendering)
		return out
	}
	if ov, ok := c.Overrides[style.DefaultOverrideKey]; ok {
		out = out.Merge(ov.Rendering)
	}
	return out
}

// Suppressed reports whether a component is suppressed for a reference
// type: the type-specific override's Suppress flag wins if set, else the
// default override's, else the component's own Rendering.Suppress.
func Suppressed(c style.Component, refType string) bool {
	if ov, ok := c.Overrides[refType]; ok && ov.Suppress != nil {
		return *ov.Suppress
	}
	if ov, ok := c.Overrides[style.DefaultOverrideKey]; ok && ov.Suppress != nil {
		return *ov.Suppress
	}
	return c.Rendering.Suppress
}
