package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

func applySetter(t *testing.T, kind rocket.Kind, param, value string,
	attrs map[string]string) (*rocket.Component, *warnset.Set) {
	t.Helper()
	setter, result := lookupSetter(kind, param)
	require.Equal(t, setterFound, result)

	c := rocket.New(kind)
	var warnings warnset.Set
	setter.Set(c, value, attrs, &warnings)
	return c, &warnings
}

func TestDoubleSetterSentinel(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "radius", "auto", nil)
	assert.True(t, c.RadiusAutomatic)
	assert.Equal(t, 0.025, c.Radius, "sentinel must leave the numeric value untouched")
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindBodyTube, "radius", "Auto", nil)
	assert.True(t, c.RadiusAutomatic, "sentinel matches case-insensitively")
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindBodyTube, "radius", "0.05", nil)
	assert.False(t, c.RadiusAutomatic)
	assert.Equal(t, 0.05, c.Radius)
	assert.Zero(t, warnings.Len())
}

func TestDoubleSetterFilledSentinel(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "thickness", "filled", nil)
	assert.True(t, c.Filled)
	assert.Equal(t, 0.002, c.Thickness)
	assert.Zero(t, warnings.Len())
}

func TestDoubleSetterMalformedValue(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "radius", "wide", nil)
	assert.Equal(t, 0.025, c.Radius, "malformed value must not change the field")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, warnset.InvalidParameter, warnings.Warnings()[0])
}

func TestDoubleSetterExtendedGrammar(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "length", "Inf", nil)
	assert.True(t, math.IsInf(c.Length, 1))
	assert.Zero(t, warnings.Len())
}

func TestScaledSetterConvertsDegrees(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindTrapezoidFinSet, "rotation", "90", nil)
	assert.InDelta(t, math.Pi/2, c.BaseRotation, 1e-12)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindLaunchLug, "radialdirection", "180", nil)
	assert.InDelta(t, math.Pi, c.RadialDirection, 1e-12)
	assert.Zero(t, warnings.Len())
}

func TestOverrideSetterEnablesFlag(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "overridemass", "0.042", nil)
	assert.Equal(t, 0.042, c.OverrideMass)
	assert.True(t, c.MassOverridden)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindBodyTube, "overridemass", "heavy", nil)
	assert.False(t, c.MassOverridden, "failed parse must not enable the override")
	assert.Equal(t, 1, warnings.Len())
}

func TestEnumSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindNoseCone, "shape", "haack", nil)
	assert.Equal(t, rocket.ShapeHaack, c.Shape)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindNoseCone, "shape", "teardrop", nil)
	assert.Equal(t, rocket.ShapeOgive, c.Shape, "unknown name keeps the default")
	assert.Equal(t, 1, warnings.Len())
}

func TestEnumSetterSeparatorInsensitive(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindParachute, "deployevent", "lowerstageseparation", nil)
	assert.Equal(t, rocket.DeployLowerStageSeparation, c.DeployEvent)
	assert.Zero(t, warnings.Len())
}

func TestColorSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "color", "",
		map[string]string{"red": "255", "green": "128", "blue": "0"})
	require.NotNil(t, c.Color)
	assert.Equal(t, rocket.Color{Red: 255, Green: 128, Blue: 0}, *c.Color)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindBodyTube, "color", "",
		map[string]string{"red": "300", "green": "0", "blue": "0"})
	assert.Nil(t, c.Color, "out-of-range channel rejects the color")
	assert.Equal(t, 1, warnings.Len())

	c, warnings = applySetter(t, rocket.KindBodyTube, "color", "",
		map[string]string{"red": "1", "green": "2"})
	assert.Nil(t, c.Color, "missing channel rejects the color")
	assert.Equal(t, 1, warnings.Len())
}

func TestMaterialSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "material", "Cardboard",
		map[string]string{"type": "bulk", "density": "680"})
	require.NotNil(t, c.Material)
	assert.Equal(t, rocket.MaterialBulk, c.Material.Type)
	assert.Equal(t, "Cardboard", c.Material.Name)
	assert.Equal(t, 680.0, c.Material.Density)
	assert.Zero(t, warnings.Len())
}

func TestMaterialSetterCategoryMismatch(t *testing.T) {
	// The body tube material slot is bulk; a surface material is refused.
	c, warnings := applySetter(t, rocket.KindBodyTube, "material", "Ripstop",
		map[string]string{"type": "surface", "density": "0.067"})
	assert.Nil(t, c.Material)
	require.Equal(t, 1, warnings.Len())
	assert.Contains(t, warnings.Warnings()[0].Message, "material type")

	// A parachute canopy is surface material.
	c, warnings = applySetter(t, rocket.KindParachute, "material", "Ripstop",
		map[string]string{"type": "surface", "density": "0.067"})
	require.NotNil(t, c.Material)
	assert.Equal(t, rocket.MaterialSurface, c.Material.Type)
	assert.Zero(t, warnings.Len())
}

func TestMaterialSetterMissingDensity(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "material", "Cardboard", nil)
	assert.Nil(t, c.Material)
	assert.Equal(t, 1, warnings.Len())
}

func TestPositionSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindLaunchLug, "position", "0.02",
		map[string]string{"type": "bottom"})
	assert.Equal(t, rocket.PositionBottom, c.RelativePosition)
	assert.Equal(t, 0.02, c.PositionValue)
	assert.Zero(t, warnings.Len())
}

func TestPositionSetterRejectsBodyComponents(t *testing.T) {
	// Body tubes are laid out sequentially and carry no relative position.
	c, warnings := applySetter(t, rocket.KindBodyTube, "position", "0.02",
		map[string]string{"type": "top"})
	assert.Equal(t, 1, warnings.Len())
	assert.Zero(t, c.PositionValue)
}

func TestClusterSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindInnerTube, "clusterconfiguration", "3-ring", nil)
	require.NotNil(t, c.Cluster)
	assert.Equal(t, "3-ring", c.Cluster.Name)
	assert.Equal(t, 3, c.Cluster.Count)
	assert.Zero(t, warnings.Len())
}

func TestClusterSetterUnknownLayout(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindInnerTube, "clusterconfiguration", "7-star", nil)
	require.NotNil(t, c.Cluster)
	assert.Equal(t, "single", c.Cluster.Name, "unknown layout keeps the default")
	require.Equal(t, 1, warnings.Len())
	assert.Contains(t, warnings.Warnings()[0].Message, "cluster configuration")
}

func TestIntSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindTrapezoidFinSet, "fincount", "4", nil)
	assert.Equal(t, 4, c.FinCount)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindTrapezoidFinSet, "fincount", "four", nil)
	assert.Equal(t, 3, c.FinCount)
	assert.Equal(t, 1, warnings.Len())
}

func TestBoolSetter(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindNoseCone, "shapeclipped", "TRUE", nil)
	assert.True(t, c.ShapeClipped)
	assert.Zero(t, warnings.Len())

	c, warnings = applySetter(t, rocket.KindNoseCone, "shapeclipped", "yes", nil)
	assert.False(t, c.ShapeClipped)
	assert.Equal(t, 1, warnings.Len())
}

func TestStringSetterKeepsValueVerbatim(t *testing.T) {
	c, warnings := applySetter(t, rocket.KindBodyTube, "comment", "  two  spaces  ", nil)
	assert.Equal(t, "  two  spaces  ", c.Comment)
	assert.Zero(t, warnings.Len())
}
