package loader

import (
	"strconv"
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// Setter applies one textual parameter value to a component. Each variant
// implements a single parsing/assignment policy; malformed input becomes a
// warning, never an error.
type Setter interface {
	Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set)
}

// stringSetter assigns the element text verbatim.
type stringSetter struct {
	apply func(*rocket.Component, string)
}

func (s stringSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	s.apply(c, value)
}

// intSetter parses a decimal integer.
type intSetter struct {
	apply func(*rocket.Component, int)
}

func (s intSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}
	s.apply(c, n)
}

// boolSetter parses "true"/"false", case-insensitively.
type boolSetter struct {
	apply func(*rocket.Component, bool)
}

func (s boolSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	b, err := parsekit.ParseBool(value)
	if err != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}
	s.apply(c, b)
}

// doubleSetter parses the extended double grammar, optionally scaled by a
// fixed multiplier. If a sentinel token is configured and the text matches
// it case-insensitively, the companion boolean setter is invoked with true
// instead and the numeric value is left untouched.
type doubleSetter struct {
	apply      func(*rocket.Component, float64)
	multiplier float64
	sentinel   string
	sentinelFn func(*rocket.Component, bool)
}

func newDoubleSetter(apply func(*rocket.Component, float64)) doubleSetter {
	return doubleSetter{apply: apply, multiplier: 1}
}

func newScaledDoubleSetter(apply func(*rocket.Component, float64), multiplier float64) doubleSetter {
	return doubleSetter{apply: apply, multiplier: multiplier}
}

func newAutoDoubleSetter(apply func(*rocket.Component, float64), sentinel string,
	sentinelFn func(*rocket.Component, bool)) doubleSetter {
	return doubleSetter{apply: apply, multiplier: 1, sentinel: sentinel, sentinelFn: sentinelFn}
}

func (s doubleSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	value = strings.TrimSpace(value)

	if s.sentinelFn != nil && strings.EqualFold(value, s.sentinel) {
		s.sentinelFn(c, true)
		return
	}

	d, err := parsekit.ParseDouble(value)
	if err != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}
	s.apply(c, d*s.multiplier)
}

// overrideSetter parses a double and, on success, both assigns the override
// value and enables the override flag.
type overrideSetter struct {
	apply  func(*rocket.Component, float64)
	enable func(*rocket.Component, bool)
}

func (s overrideSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	d, err := parsekit.ParseDouble(value)
	if err != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}
	s.apply(c, d)
	s.enable(c, true)
}

// enumSetter resolves the text against an enumeration via name
// canonicalization. The apply function returns false when no variant
// matches.
type enumSetter struct {
	apply func(*rocket.Component, string) bool
}

func (s enumSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	if !s.apply(c, value) {
		warnings.Add(warnset.InvalidParameter)
	}
}

// colorSetter reads red/green/blue integer attributes in [0,255].
type colorSetter struct {
	apply func(*rocket.Component, rocket.Color)
}

func (s colorSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	red, okR := attrs["red"]
	green, okG := attrs["green"]
	blue, okB := attrs["blue"]
	if !okR || !okG || !okB {
		warnings.Add(warnset.InvalidParameter)
		return
	}

	r, errR := strconv.Atoi(red)
	g, errG := strconv.Atoi(green)
	b, errB := strconv.Atoi(blue)
	if errR != nil || errG != nil || errB != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}
	if r < 0 || g < 0 || b < 0 || r > 255 || g > 255 || b > 255 {
		warnings.Add(warnset.InvalidParameter)
		return
	}

	s.apply(c, rocket.Color{Red: r, Green: g, Blue: b})

	// Body text alongside valid channels is unexpected but does not
	// block the assignment.
	if strings.TrimSpace(value) != "" {
		warnings.Add(warnset.InvalidParameter)
	}
}

// materialSetter builds a material record from the element text (name) and
// a density attribute, rejecting mismatched material categories.
type materialSetter struct {
	category rocket.MaterialType
	apply    func(*rocket.Component, *rocket.Material)
}

func (s materialSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	name := strings.TrimSpace(value)
	if name == "" {
		warnings.Addf("Illegal material specification, ignoring.")
		return
	}

	densityStr, ok := attrs["density"]
	if !ok {
		warnings.Addf("Illegal material specification, ignoring.")
		return
	}
	density, err := parsekit.ParseDouble(densityStr)
	if err != nil {
		warnings.Addf("Illegal material specification, ignoring.")
		return
	}

	if typeStr, ok := attrs["type"]; ok && !strings.EqualFold(typeStr, s.category.String()) {
		warnings.Addf("Illegal material type specified, ignoring.")
		return
	}

	s.apply(c, &rocket.Material{Type: s.category, Name: name, Density: density})
}

// positionSetter reads a position-type attribute plus a numeric offset and
// applies them to kinds that support relative positioning.
type positionSetter struct{}

func (positionSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	posType, ok := rocket.PositionTypeFromName(attrs["type"])
	if !ok {
		warnings.Add(warnset.InvalidParameter)
		return
	}

	pos, err := parsekit.ParseDouble(value)
	if err != nil {
		warnings.Add(warnset.InvalidParameter)
		return
	}

	if !c.Kind.SupportsRelativePosition() {
		warnings.Add(warnset.InvalidParameter)
		return
	}

	c.RelativePosition = posType
	c.PositionValue = pos
}

// clusterSetter matches the text against the fixed cluster layout table.
type clusterSetter struct{}

func (clusterSetter) Set(c *rocket.Component, value string, attrs map[string]string, warnings *warnset.Set) {
	if !c.Kind.SupportsClustering() {
		warnings.Addf("Illegal component defined as cluster.")
		return
	}

	layout := rocket.ClusterLayoutByName(value)
	if layout == nil {
		warnings.Addf("Illegal cluster configuration specified.")
		return
	}

	c.Cluster = layout
}
