// Package warnset collects recoverable problems encountered while loading a
// rocket design document.
//
// Warnings never abort a load. Handlers append to a Set as they encounter
// unknown elements, malformed values, duplicate definitions and similar
// issues, and the complete Set is surfaced to the caller alongside the
// loaded document.
package warnset

import (
	"fmt"
	"strings"
)

// Category classifies a warning for presentation and filtering.
type Category string

const (
	// CategoryFileFormat covers document-level issues: unknown elements,
	// unsupported versions, duplicate top-level definitions.
	CategoryFileFormat Category = "file-format"

	// CategoryInvalidParameter covers malformed or disallowed parameter
	// values on a component.
	CategoryInvalidParameter Category = "invalid-parameter"

	// CategoryMotor covers motor lookup misses and ambiguities.
	CategoryMotor Category = "motor"

	// CategoryFlightData covers malformed simulation result data.
	CategoryFlightData Category = "flight-data"
)

// Warning is a single recoverable problem with a human-readable message.
type Warning struct {
	Category Category
	Message  string
}

func (w Warning) String() string {
	return w.Message
}

// InvalidParameter is the generic invalid-parameter warning used by setters
// that have no more specific message to give.
var InvalidParameter = Warning{
	Category: CategoryInvalidParameter,
	Message:  "Invalid parameter encountered, ignoring.",
}

// New creates a file-format warning from a plain message.
func New(msg string) Warning {
	return Warning{Category: CategoryFileFormat, Message: msg}
}

// NewIn creates a warning in the given category.
func NewIn(cat Category, msg string) Warning {
	return Warning{Category: cat, Message: msg}
}

// Set is an ordered, deduplicating collection of warnings.
//
// Insertion order is preserved; adding a warning equal to one already in the
// set is a no-op. The zero value is ready to use. A Set is not safe for
// concurrent use, matching the single-threaded load model.
type Set struct {
	warnings []Warning
}

// Add appends a warning unless an equal one is already present.
func (s *Set) Add(w Warning) {
	for _, have := range s.warnings {
		if have == w {
			return
		}
	}
	s.warnings = append(s.warnings, w)
}

// Addf appends a file-format warning built from the format string.
func (s *Set) Addf(format string, args ...any) {
	s.Add(New(fmt.Sprintf(format, args...)))
}

// AddfIn appends a warning in the given category built from the format
// string.
func (s *Set) AddfIn(cat Category, format string, args ...any) {
	s.Add(NewIn(cat, fmt.Sprintf(format, args...)))
}

// AddAll merges every warning from other into s, preserving order.
func (s *Set) AddAll(other *Set) {
	if other == nil {
		return
	}
	for _, w := range other.warnings {
		s.Add(w)
	}
}

// Warnings returns the collected warnings in insertion order.
// The returned slice is a copy.
func (s *Set) Warnings() []Warning {
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Len returns the number of distinct warnings collected.
func (s *Set) Len() int {
	return len(s.warnings)
}

func (s *Set) String() string {
	if len(s.warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range s.warnings {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.Message)
	}
	return b.String()
}
