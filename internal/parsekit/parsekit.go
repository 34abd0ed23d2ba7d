// Package parsekit provides the micro-parsers of the OpenRocket file format:
// an extended floating-point grammar, separator-insensitive name
// canonicalization for enum values, and comma-separated data rows.
//
// All functions are pure; callers decide how parse failures become warnings.
package parsekit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DegToRad converts degree-valued document fields to the radians the domain
// model stores.
const DegToRad = math.Pi / 180.0

// ParseDouble converts a string to a float64 using the file format's grammar.
// In addition to everything strconv.ParseFloat accepts, the case-insensitive
// sentinels "NaN", "Inf" and "-Inf" are recognized.
func ParseDouble(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0, fmt.Errorf("empty number")
	case strings.EqualFold(s, "NaN"):
		return math.NaN(), nil
	case strings.EqualFold(s, "Inf"):
		return math.Inf(1), nil
	case strings.EqualFold(s, "-Inf"):
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// CanonicalName reduces a name to the form used for enum-value matching:
// trimmed, NFC-normalized, lowercased, with separator characters removed.
//
// The file format historically wrote enum constants lowercased with
// underscores stripped; canonicalizing both sides makes the match insensitive
// to case and to '_', '-' and space separators.
func CanonicalName(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchName returns the index of the candidate whose canonical form equals
// the canonical form of name, or -1 if there is no such candidate.
func MatchName(name string, candidates []string) int {
	want := CanonicalName(name)
	if want == "" {
		return -1
	}
	for i, c := range candidates {
		if CanonicalName(c) == want {
			return i
		}
	}
	return -1
}

// SplitValues parses a comma-separated row of doubles using ParseDouble for
// each field. On any malformed field the whole row is rejected.
func SplitValues(row string) ([]float64, error) {
	fields := strings.Split(row, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := ParseDouble(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// ParseBool parses the file format's boolean values "true" and "false",
// case-insensitively.
func ParseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), "true"):
		return true, nil
	case strings.EqualFold(strings.TrimSpace(s), "false"):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
