// Package dates formats reference.EDTFValue date variables into text per
// the configured form (year|short|full|numeric|iso), date-part order, and
// EDTF uncertainty/approximation/range markers (§4.2 date component).
package dates

import (
	"fmt"
	"strings"

	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// Format renders one date value. yearSuffix is the disambiguation letter
// (already computed by the cross-entry pass) appended after the year when
// form is "year" and disambCondition holds; pass "" when not applicable.
func Format(v reference.EDTFValue, form style.DateForm, opts style.DateOptions, loc *locale.Locale, yearSuffix string) string {
	if v.IsZero() {
		return ""
	}

	switch form {
	case style.DateFormYear:
		return approxPrefix(v.Start, opts) + formatPoint(v.Start, opts, loc, true, false) + yearSuffix
	case style.DateFormNumeric:
		return formatNumericRange(v, opts)
	case style.DateFormISO:
		return v.EDTF()
	case style.DateFormShort:
		return formatRange(v, opts, loc, false)
	default: // DateFormFull
		return formatRange(v, opts, loc, true)
	}
}

func formatRange(v reference.EDTFValue, opts style.DateOptions, loc *locale.Locale, full bool) string {
	start := approxPrefix(v.Start, opts) + formatPoint(v.Start, opts, loc, false, full)
	if !v.IsRange() {
		return start
	}
	dash := opts.RangeDash
	if dash == "" {
		dash = "–"
	}
	if v.End.OpenEnded {
		return start + dash
	}
	if collapsible(v.Start, *v.End, opts) {
		if v.Start.Precision() == reference.PrecisionYear && v.End.Precision() == reference.PrecisionYear {
			return start
		}
		sep := opts.PartSeparator
		if sep == "" {
			sep = " "
		}
		m := marker(v.Start, opts)
		start = strings.TrimSuffix(strings.TrimSuffix(start, m), sep+fmt.Sprintf("%d", v.Start.Year))
		start = strings.TrimSuffix(start, ",") + m
	}
	end := formatPoint(*v.End, opts, loc, false, full)
	return start + dash + approxPrefix(*v.End, opts) + end
}

// collapsible reports whether CollapseRange is enabled and both endpoints
// share a year. formatRange then renders the shared year once: only on the
// end point ("January–March 2020"), or a single year for a year-only range
// ("2020").
func collapsible(start, end reference.EDTFDate, opts style.DateOptions) bool {
	return opts.CollapseRange && start.Year == end.Year
}

func formatPoint(d reference.EDTFDate, opts style.DateOptions, loc *locale.Locale, yearOnly bool, full bool) string {
	sep := opts.PartSeparator
	if sep == "" {
		sep = " "
	}

	var parts []string
	year := fmt.Sprintf("%d", d.Year)
	if !yearOnly {
		switch d.Precision() {
		case reference.PrecisionDay:
			if full {
				parts = append(parts, monthName(d, opts, loc), fmt.Sprintf("%d,", d.Day), year)
			} else {
				parts = append(parts, monthName(d, opts, loc), year)
			}
		case reference.PrecisionMonth:
			parts = append(parts, monthName(d, opts, loc), year)
		case reference.PrecisionSeason:
			name := year
			if loc != nil {
				if s, ok := loc.SeasonName(locale.Season(d.Season), "long"); ok {
					name = s + " " + year
				}
			}
			return name + marker(d, opts)
		default:
			parts = append(parts, year)
		}
	} else {
		parts = append(parts, year)
	}

	return strings.Join(parts, sep) + marker(d, opts)
}

func monthName(d reference.EDTFDate, opts style.DateOptions, loc *locale.Locale) string {
	if loc == nil {
		return fmt.Sprintf("%02d", d.Month)
	}
	form := opts.MonthForm
	if form == "" {
		form = "long"
	}
	if name := loc.Months.Month(int(d.Month), form); name != "" {
		return name
	}
	return fmt.Sprintf("%02d", d.Month)
}

func marker(d reference.EDTFDate, opts style.DateOptions) string {
	approx := opts.ApproximateMark
	if approx == "" {
		approx = "ca. "
	}
	uncertain := opts.UncertainMark
	if uncertain == "" {
		uncertain = "?"
	}
	switch {
	case d.Approximate && d.Uncertain:
		return uncertain
	case d.Approximate:
		return "" // approximate mark is a prefix, applied by the caller via approxPrefix
	case d.Uncertain:
		return uncertain
	default:
		return ""
	}
}

// approxPrefix returns the leading "ca. " style marker for an approximate
// (non-uncertain) date point, kept separate from marker() because it must
// precede rather than follow the rendered text.
func approxPrefix(d reference.EDTFDate, opts style.DateOptions) string {
	if d.Approximate && !d.Uncertain {
		if opts.ApproximateMark != "" {
			return opts.ApproximateMark
		}
		return "ca. "
	}
	return ""
}

func formatNumericRange(v reference.EDTFValue, opts style.DateOptions) string {
	order := opts.DatePartOrder
	if order == "" {
		order = "ymd"
	}
	start := formatNumericPoint(v.Start, order)
	if !v.IsRange() {
		return start
	}
	dash := opts.RangeDash
	if dash == "" {
		dash = "–"
	}
	if v.End.OpenEnded {
		return start + dash
	}
	return start + dash + formatNumericPoint(*v.End, order)
}

func formatNumericPoint(d reference.EDTFDate, order string) string {
	vals := map[byte]string{
		'y': fmt.Sprintf("%04d", d.Year),
	}
	if d.Month > 0 {
		vals['m'] = fmt.Sprintf("%02d", d.Month)
	}
	if d.Day > 0 {
		vals['d'] = fmt.Sprintf("%02d", d.Day)
	}
	var out []string
	for i := 0; i < len(order); i++ {
		if v, ok := vals[order[i]]; ok {
			out = append(out, v)
		}
	}
	return strings.Join(out, "-")
}
