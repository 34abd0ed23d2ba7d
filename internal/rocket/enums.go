package rocket

import "github.com/MatthewFletcher/openrocket/internal/parsekit"

// The file format writes enum values as the constant name lowercased with
// separators stripped. Each enumeration here carries its constant-name table
// so lookups can canonicalize both sides via parsekit.MatchName.

// PositionType describes how a component is positioned relative to its
// parent.
type PositionType int

const (
	PositionTop PositionType = iota
	PositionMiddle
	PositionBottom
	PositionAbsolute
	PositionAfter
)

var positionNames = []string{"TOP", "MIDDLE", "BOTTOM", "ABSOLUTE", "AFTER"}

func (p PositionType) String() string { return positionNames[p] }

// PositionTypeFromName resolves a document value to a PositionType.
func PositionTypeFromName(s string) (PositionType, bool) {
	i := parsekit.MatchName(s, positionNames)
	if i < 0 {
		return 0, false
	}
	return PositionType(i), true
}

// Finish is the surface finish of an external component.
type Finish int

const (
	FinishRough Finish = iota
	FinishUnfinished
	FinishNormal
	FinishSmooth
	FinishPolished
)

var finishNames = []string{"ROUGH", "UNFINISHED", "NORMAL", "SMOOTH", "POLISHED"}

func (f Finish) String() string { return finishNames[f] }

func FinishFromName(s string) (Finish, bool) {
	i := parsekit.MatchName(s, finishNames)
	if i < 0 {
		return 0, false
	}
	return Finish(i), true
}

// LineStyle is the drawing style of a component outline.
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDashed
	LineStyleDotted
	LineStyleDashDot
)

var lineStyleNames = []string{"SOLID", "DASHED", "DOTTED", "DASHDOT"}

func (l LineStyle) String() string { return lineStyleNames[l] }

func LineStyleFromName(s string) (LineStyle, bool) {
	i := parsekit.MatchName(s, lineStyleNames)
	if i < 0 {
		return 0, false
	}
	return LineStyle(i), true
}

// TransitionShape is the profile of a transition or nose cone.
type TransitionShape int

const (
	ShapeConical TransitionShape = iota
	ShapeOgive
	ShapeEllipsoid
	ShapePower
	ShapeParabolic
	ShapeHaack
)

var transitionShapeNames = []string{"CONICAL", "OGIVE", "ELLIPSOID", "POWER", "PARABOLIC", "HAACK"}

func (t TransitionShape) String() string { return transitionShapeNames[t] }

func TransitionShapeFromName(s string) (TransitionShape, bool) {
	i := parsekit.MatchName(s, transitionShapeNames)
	if i < 0 {
		return 0, false
	}
	return TransitionShape(i), true
}

// CrossSection is the fin cross-section profile.
type CrossSection int

const (
	CrossSectionSquare CrossSection = iota
	CrossSectionRounded
	CrossSectionAirfoil
	CrossSectionWedge
)

var crossSectionNames = []string{"SQUARE", "ROUNDED", "AIRFOIL", "WEDGE"}

func (c CrossSection) String() string { return crossSectionNames[c] }

func CrossSectionFromName(s string) (CrossSection, bool) {
	i := parsekit.MatchName(s, crossSectionNames)
	if i < 0 {
		return 0, false
	}
	return CrossSection(i), true
}

// DeployEvent triggers deployment of a recovery device.
type DeployEvent int

const (
	DeployLaunch DeployEvent = iota
	DeployEjection
	DeployApogee
	DeployAltitude
	DeployLowerStageSeparation
	DeployNever
)

var deployEventNames = []string{
	"LAUNCH", "EJECTION", "APOGEE", "ALTITUDE", "LOWER_STAGE_SEPARATION", "NEVER",
}

func (d DeployEvent) String() string { return deployEventNames[d] }

func DeployEventFromName(s string) (DeployEvent, bool) {
	i := parsekit.MatchName(s, deployEventNames)
	if i < 0 {
		return 0, false
	}
	return DeployEvent(i), true
}

// IgnitionEvent triggers ignition of a mounted motor.
type IgnitionEvent int

const (
	IgnitionAutomatic IgnitionEvent = iota
	IgnitionLaunch
	IgnitionEjectionCharge
	IgnitionBurnout
	IgnitionNever
)

var ignitionEventNames = []string{"AUTOMATIC", "LAUNCH", "EJECTION_CHARGE", "BURNOUT", "NEVER"}

func (i IgnitionEvent) String() string { return ignitionEventNames[i] }

func IgnitionEventFromName(s string) (IgnitionEvent, bool) {
	idx := parsekit.MatchName(s, ignitionEventNames)
	if idx < 0 {
		return 0, false
	}
	return IgnitionEvent(idx), true
}

// ReferenceType selects the rocket's aerodynamic reference length.
type ReferenceType int

const (
	ReferenceNoseCone ReferenceType = iota
	ReferenceMaximum
	ReferenceMinimum
	ReferenceCustom
)

var referenceTypeNames = []string{"NOSECONE", "MAXIMUM", "MINIMUM", "CUSTOM"}

func (r ReferenceType) String() string { return referenceTypeNames[r] }

func ReferenceTypeFromName(s string) (ReferenceType, bool) {
	i := parsekit.MatchName(s, referenceTypeNames)
	if i < 0 {
		return 0, false
	}
	return ReferenceType(i), true
}

// MaterialType categorizes materials by how density is expressed.
type MaterialType int

const (
	MaterialBulk    MaterialType = iota // kg/m^3
	MaterialSurface                     // kg/m^2
	MaterialLine                        // kg/m
)

var materialTypeNames = []string{"BULK", "SURFACE", "LINE"}

func (m MaterialType) String() string { return materialTypeNames[m] }

// Material is a named material with a density in the units implied by its
// type.
type Material struct {
	Type    MaterialType
	Name    string
	Density float64
}

// Color is an RGB display color with channels in [0,255].
type Color struct {
	Red, Green, Blue int
}

// ClusterLayout is a named arrangement of clustered inner tubes. Points are
// unit-spaced (x, y) tube centers.
type ClusterLayout struct {
	Name  string // exact name written to the document
	Count int
	Tubes []Coordinate
}

// ClusterLayouts is the fixed table of supported cluster arrangements.
// Document values match Name exactly, not via canonicalization.
var ClusterLayouts = []ClusterLayout{
	{Name: "single", Count: 1, Tubes: []Coordinate{{0, 0}}},
	{Name: "double", Count: 2, Tubes: []Coordinate{{-1, 0}, {1, 0}}},
	{Name: "2x2", Count: 4, Tubes: []Coordinate{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}},
	{Name: "3-ring", Count: 3, Tubes: []Coordinate{{-1, -0.58}, {1, -0.58}, {0, 1.15}}},
	{Name: "4-ring", Count: 4, Tubes: []Coordinate{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}},
	{Name: "5-ring", Count: 5, Tubes: []Coordinate{{-1.41, 0}, {0, 1.41}, {1.41, 0}, {0, -1.41}, {0, 0}}},
	{Name: "6-ring", Count: 6, Tubes: []Coordinate{{-2, 0}, {-1, 1.73}, {1, 1.73}, {2, 0}, {1, -1.73}, {-1, -1.73}}},
}

// ClusterLayoutByName returns the layout with the exact given name, or nil.
func ClusterLayoutByName(name string) *ClusterLayout {
	for i := range ClusterLayouts {
		if ClusterLayouts[i].Name == name {
			return &ClusterLayouts[i]
		}
	}
	return nil
}
