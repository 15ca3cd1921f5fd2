package reference

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseEDTF parses an Extended Date/Time Format string into an EDTFValue:
// a single point ("1978", "1978-03", "1978-03-04"), a closed or half-open
// range joined by "/" ("1978/1980", "1978/.."), and the uncertain ("?"),
// approximate ("~"), and both ("%") qualifier suffixes on either endpoint
// (the inverse of EDTFValue.EDTF).
func ParseEDTF(s string) (EDTFValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EDTFValue{}, nil
	}
	start, rest, isRange := strings.Cut(s, "/")
	startDate, err := parseEDTFPoint(start)
	if err != nil {
		return EDTFValue{}, fmt.Errorf("parsing EDTF %q: %w", s, err)
	}
	if !isRange {
		return EDTFValue{Start: startDate}, nil
	}
	endDate, err := parseEDTFPoint(rest)
	if err != nil {
		return EDTFValue{}, fmt.Errorf("parsing EDTF %q: %w", s, err)
	}
	return EDTFValue{Start: startDate, End: &endDate}, nil
}

func parseEDTFPoint(s string) (EDTFDate, error) {
	if s == ".." {
		return EDTFDate{OpenEnded: true}, nil
	}

	var d EDTFDate
	switch {
	case strings.HasSuffix(s, "%"):
		d.Uncertain, d.Approximate = true, true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "?"):
		d.Uncertain = true
		s = strings.TrimSuffix(s, "?")
	case strings.HasSuffix(s, "~"):
		d.Approximate = true
		s = strings.TrimSuffix(s, "~")
	}

	parts := strings.Split(s, "-")
	if len(parts) == 0 || parts[0] == "" {
		return EDTFDate{}, fmt.Errorf("missing year")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return EDTFDate{}, fmt.Errorf("invalid year %q: %w", parts[0], err)
	}
	d.Year = int32(year)

	if len(parts) > 1 {
		second, err := strconv.Atoi(parts[1])
		if err != nil {
			return EDTFDate{}, fmt.Errorf("invalid month/season %q: %w", parts[1], err)
		}
		if second >= 21 && second <= 24 {
			d.Season = Season(second)
		} else {
			d.Month = int8(second)
		}
	}
	if len(parts) > 2 {
		day, err := strconv.Atoi(parts[2])
		if err != nil {
			return EDTFDate{}, fmt.Errorf("invalid day %q: %w", parts[2], err)
		}
		d.Day = int8(day)
	}
	return d, nil
}

// FromDateParts builds an EDTFDate from a CSL-style date-parts triple
// ([year], [year, month], or [year, month, day]); a season code (21–24) in
// the month position is recognized per EDTF Level 1.
func FromDateParts(parts []int) EDTFDate {
	var d EDTFDate
	if len(parts) > 0 {
		d.Year = int32(parts[0])
	}
	if len(parts) > 1 {
		if parts[1] >= 21 && parts[1] <= 24 {
			d.Season = Season(parts[1])
		} else {
			d.Month = int8(parts[1])
		}
	}
	if len(parts) > 2 {
		d.Day = int8(parts[2])
	}
	return d
}
