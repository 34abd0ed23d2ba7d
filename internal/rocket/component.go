package rocket

import (
	"fmt"
	"math"
)

// Coordinate is a 2-D point in meters.
type Coordinate struct {
	X, Y float64
}

// MotorPlugged is the ignition-delay sentinel for a motor with no ejection
// charge.
var MotorPlugged = math.Inf(1)

// MotorType categorizes motors by reusability.
type MotorType int

const (
	MotorTypeSingle MotorType = iota
	MotorTypeReload
	MotorTypeHybrid
	MotorTypeUnknown
)

var motorTypeNames = []string{"SINGLE", "RELOAD", "HYBRID", "UNKNOWN"}

func (m MotorType) String() string { return motorTypeNames[m] }

// MotorTypeFromName resolves a document value to a MotorType. The format
// writes the constant name lowercased.
func MotorTypeFromName(s string) (MotorType, bool) {
	for i, n := range motorTypeNames {
		if equalsLower(s, n) {
			return MotorType(i), true
		}
	}
	return 0, false
}

func equalsLower(s, upper string) bool {
	if len(s) != len(upper) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := upper[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if s[i] != c {
			return false
		}
	}
	return true
}

// Motor is one motor record from the motor database.
type Motor struct {
	Type         MotorType
	Manufacturer string
	Designation  string
	Diameter     float64 // meters
	Length       float64 // meters
	TotalImpulse float64 // newton-seconds, zero if unknown
}

func (m *Motor) String() string {
	if m.Manufacturer == "" {
		return m.Designation
	}
	return m.Manufacturer + " " + m.Designation
}

// MotorMount is the per-configuration motor assignment record carried by
// body tubes and inner tubes that act as motor mounts.
type MotorMount struct {
	// Motors maps configuration id to the resolved motor. A nil entry
	// records that the document assigned a motor which could not be
	// resolved against the database.
	Motors map[string]*Motor

	// Delays maps configuration id to the ejection-charge delay in
	// seconds, MotorPlugged for none.
	Delays map[string]float64

	IgnitionEvent IgnitionEvent
	IgnitionDelay float64
	Overhang      float64
}

// SetMotor records the motor assigned for a configuration id.
func (m *MotorMount) SetMotor(configID string, motor *Motor) {
	if m.Motors == nil {
		m.Motors = make(map[string]*Motor)
	}
	m.Motors[configID] = motor
}

// SetDelay records the ejection delay for a configuration id.
func (m *MotorMount) SetDelay(configID string, delay float64) {
	if m.Delays == nil {
		m.Delays = make(map[string]float64)
	}
	m.Delays[configID] = delay
}

// Component is one node of the rocket's part tree. Every node has a kind,
// an optional parent and an ordered child list; the remaining fields are the
// kind-specific attribute set, grouped by the hierarchy level that exposes
// them. Which groups apply to a node follows from its Kind's capabilities;
// the loader only touches fields its setter registry exposes for that kind.
type Component struct {
	Kind     Kind
	Parent   *Component
	Children []*Component

	// RocketComponent
	Name                  string
	Comment               string
	Color                 *Color
	LineStyle             LineStyle
	OverrideMass          float64
	MassOverridden        bool
	OverrideCGX           float64
	CGOverridden          bool
	OverrideSubcomponents bool
	RelativePosition      PositionType
	PositionValue         float64

	// ExternalComponent
	Finish   Finish
	Material *Material

	// BodyComponent / SymmetricComponent / MassObject
	Length          float64
	Thickness       float64
	Filled          bool
	Radius          float64
	RadiusAutomatic bool

	// Transition (and NoseCone)
	Shape                 TransitionShape
	ShapeClipped          bool
	ShapeParameter        float64
	ForeRadius            float64
	ForeRadiusAutomatic   bool
	AftRadius             float64
	AftRadiusAutomatic    bool
	ForeShoulderRadius    float64
	ForeShoulderLength    float64
	ForeShoulderThickness float64
	ForeShoulderCapped    bool
	AftShoulderRadius     float64
	AftShoulderLength     float64
	AftShoulderThickness  float64
	AftShoulderCapped     bool

	// FinSet
	FinCount     int
	BaseRotation float64 // radians
	CrossSection CrossSection
	CantAngle    float64 // radians
	RootChord    float64
	TipChord     float64
	SweepLength  float64
	FinHeight    float64

	// FreeformFinSet
	OutlinePoints []Coordinate

	// RingComponent / LaunchLug
	OuterRadius          float64
	OuterRadiusAutomatic bool
	InnerRadius          float64
	InnerRadiusAutomatic bool
	RadialPosition       float64
	RadialDirection      float64 // radians

	// InnerTube clustering
	Cluster         *ClusterLayout
	ClusterScale    float64
	ClusterRotation float64 // radians

	// MassComponent
	Mass float64

	// ShockCord
	CordLength float64

	// RecoveryDevice
	CD             float64
	CDAutomatic    bool
	DeployEvent    DeployEvent
	DeployAltitude float64
	DeployDelay    float64

	// Parachute
	Diameter     float64
	LineCount    int
	LineLength   float64
	LineMaterial *Material

	// Streamer
	StripLength float64
	StripWidth  float64

	// Motor mount record, non-nil once a motormount element was read.
	Mount *MotorMount

	// Rocket-level attributes, non-nil only on KindRocket nodes.
	Rocket *RocketAttrs
}

// defaultFreeformOutline is the trapezoidal outline a freeform fin set
// starts with, retained when a document's point list is invalid.
var defaultFreeformOutline = []Coordinate{
	{0, 0}, {0.025, 0.05}, {0.075, 0.05}, {0.05, 0},
}

// New creates a component of the given kind with its default attribute
// values.
func New(kind Kind) *Component {
	c := &Component{
		Kind:         kind,
		Name:         kind.DisplayName(),
		ClusterScale: 1.0,
		CDAutomatic:  true,
		DeployEvent:  DeployEjection,
	}
	switch kind {
	case KindRocket:
		c.Rocket = &RocketAttrs{}
	case KindBodyTube:
		c.Length = 0.3
		c.Radius = 0.025
		c.Thickness = 0.002
	case KindNoseCone, KindTransition:
		c.Length = 0.15
		c.AftRadius = 0.025
		c.Shape = ShapeOgive
		c.Thickness = 0.002
	case KindFreeformFinSet:
		c.FinCount = 3
		c.OutlinePoints = append([]Coordinate(nil), defaultFreeformOutline...)
	case KindTrapezoidFinSet, KindEllipticalFinSet:
		c.FinCount = 3
	case KindInnerTube:
		c.Cluster = ClusterLayoutByName("single")
	}
	return c
}

// AddChild appends child to the component's ordered child list and sets its
// parent pointer. The loader never reparents a node.
func (c *Component) AddChild(child *Component) {
	child.Parent = c
	c.Children = append(c.Children, child)
}

// MountRecord returns the component's motor mount record, creating it on
// first use. Callers must check Kind.SupportsMotorMount first.
func (c *Component) MountRecord() *MotorMount {
	if c.Mount == nil {
		c.Mount = &MotorMount{IgnitionEvent: IgnitionAutomatic}
	}
	return c.Mount
}

// SetFreeformOutline replaces the freeform outline after validating it. An
// outline must have at least two points, start at the origin and end on the
// body line (y == 0) with non-negative x throughout. On error the previous
// outline is left untouched.
func (c *Component) SetFreeformOutline(points []Coordinate) error {
	if len(points) < 2 {
		return fmt.Errorf("outline needs at least 2 points, got %d", len(points))
	}
	if points[0].X != 0 || points[0].Y != 0 {
		return fmt.Errorf("outline must start at the origin")
	}
	if last := points[len(points)-1]; last.Y != 0 {
		return fmt.Errorf("outline must end on the body line")
	}
	for i, p := range points {
		if p.X < 0 {
			return fmt.Errorf("point %d has negative x", i)
		}
	}
	c.OutlinePoints = append([]Coordinate(nil), points...)
	return nil
}

// Walk visits the component and all descendants depth-first in child order.
func (c *Component) Walk(fn func(*Component, int)) {
	c.walk(fn, 0)
}

func (c *Component) walk(fn func(*Component, int), depth int) {
	fn(c, depth)
	for _, child := range c.Children {
		child.walk(fn, depth+1)
	}
}
