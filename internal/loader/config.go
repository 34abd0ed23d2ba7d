package loader

import (
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

// degToRad scales the angle parameters the format writes in degrees.
const degToRad = parsekit.DegToRad

// supportedVersions lists the document format versions this loader fully
// understands. Other versions are read on a best-effort basis with a
// warning.
var supportedVersions = []string{"0.9", "1.0"}

func versionSupported(v string) bool {
	for _, s := range supportedVersions {
		if s == v {
			return true
		}
	}
	return false
}

// factories maps component element tags to the kind they instantiate.
// Stage is listed with the components even though it only ever appears
// directly under the rocket element; nesting is not validated here.
var factories = map[string]rocket.Kind{
	"bodytube":         rocket.KindBodyTube,
	"transition":       rocket.KindTransition,
	"nosecone":         rocket.KindNoseCone,
	"trapezoidfinset":  rocket.KindTrapezoidFinSet,
	"ellipticalfinset": rocket.KindEllipticalFinSet,
	"freeformfinset":   rocket.KindFreeformFinSet,
	"launchlug":        rocket.KindLaunchLug,

	"engineblock":   rocket.KindEngineBlock,
	"innertube":     rocket.KindInnerTube,
	"tubecoupler":   rocket.KindTubeCoupler,
	"bulkhead":      rocket.KindBulkhead,
	"centeringring": rocket.KindCenteringRing,

	"masscomponent": rocket.KindMassComponent,
	"shockcord":     rocket.KindShockCord,
	"parachute":     rocket.KindParachute,
	"streamer":      rocket.KindStreamer,

	"stage": rocket.KindStage,
}

// setterEntry is one registry slot: either a setter, or an explicit
// disallow that stops the ancestor walk for a parameter a base level would
// otherwise accept.
type setterEntry struct {
	setter     Setter
	disallowed bool
}

// lookupResult is the outcome of a setter lookup.
type lookupResult int

const (
	setterFound lookupResult = iota
	setterDisallowed
	setterNotFound
)

// lookupSetter resolves a parameter element for a component kind by walking
// the kind's type chain from most derived to least derived. The first entry
// found wins, so a derived level can disallow a parameter its base level
// defines.
func lookupSetter(kind rocket.Kind, param string) (Setter, lookupResult) {
	for _, level := range kind.Ancestors() {
		entry, ok := setters[level+":"+param]
		if !ok {
			continue
		}
		if entry.disallowed {
			return nil, setterDisallowed
		}
		return entry.setter, setterFound
	}
	return nil, setterNotFound
}

func set(s Setter) setterEntry { return setterEntry{setter: s} }
func disallowed() setterEntry  { return setterEntry{disallowed: true} }

// setters keys are "Level:param" where Level is a type-chain name and param
// the parameter element tag.
var setters = map[string]setterEntry{
	// RocketComponent
	"RocketComponent:name": set(stringSetter{func(c *rocket.Component, v string) {
		c.Name = v
	}}),
	"RocketComponent:color": set(colorSetter{func(c *rocket.Component, v rocket.Color) {
		c.Color = &v
	}}),
	"RocketComponent:linestyle": set(enumSetter{func(c *rocket.Component, v string) bool {
		style, ok := rocket.LineStyleFromName(v)
		if ok {
			c.LineStyle = style
		}
		return ok
	}}),
	"RocketComponent:position": set(positionSetter{}),
	"RocketComponent:overridemass": set(overrideSetter{
		apply:  func(c *rocket.Component, v float64) { c.OverrideMass = v },
		enable: func(c *rocket.Component, v bool) { c.MassOverridden = v },
	}),
	"RocketComponent:overridecg": set(overrideSetter{
		apply:  func(c *rocket.Component, v float64) { c.OverrideCGX = v },
		enable: func(c *rocket.Component, v bool) { c.CGOverridden = v },
	}),
	"RocketComponent:overridesubcomponents": set(boolSetter{func(c *rocket.Component, v bool) {
		c.OverrideSubcomponents = v
	}}),
	"RocketComponent:comment": set(stringSetter{func(c *rocket.Component, v string) {
		c.Comment = v
	}}),

	// ExternalComponent
	"ExternalComponent:finish": set(enumSetter{func(c *rocket.Component, v string) bool {
		finish, ok := rocket.FinishFromName(v)
		if ok {
			c.Finish = finish
		}
		return ok
	}}),
	"ExternalComponent:material": set(materialSetter{
		category: rocket.MaterialBulk,
		apply:    func(c *rocket.Component, m *rocket.Material) { c.Material = m },
	}),

	// BodyComponent
	"BodyComponent:length": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Length = v
	})),

	// SymmetricComponent
	"SymmetricComponent:thickness": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.Thickness = v },
		"filled",
		func(c *rocket.Component, v bool) { c.Filled = v },
	)),

	// BodyTube
	"BodyTube:radius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.Radius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.RadiusAutomatic = v },
	)),

	// Transition
	"Transition:shape": set(enumSetter{func(c *rocket.Component, v string) bool {
		shape, ok := rocket.TransitionShapeFromName(v)
		if ok {
			c.Shape = shape
		}
		return ok
	}}),
	"Transition:shapeclipped": set(boolSetter{func(c *rocket.Component, v bool) {
		c.ShapeClipped = v
	}}),
	"Transition:shapeparameter": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.ShapeParameter = v
	})),
	"Transition:foreradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.ForeRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.ForeRadiusAutomatic = v },
	)),
	"Transition:aftradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.AftRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.AftRadiusAutomatic = v },
	)),
	"Transition:foreshoulderradius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.ForeShoulderRadius = v
	})),
	"Transition:foreshoulderlength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.ForeShoulderLength = v
	})),
	"Transition:foreshoulderthickness": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.ForeShoulderThickness = v
	})),
	"Transition:foreshouldercapped": set(boolSetter{func(c *rocket.Component, v bool) {
		c.ForeShoulderCapped = v
	}}),
	"Transition:aftshoulderradius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.AftShoulderRadius = v
	})),
	"Transition:aftshoulderlength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.AftShoulderLength = v
	})),
	"Transition:aftshoulderthickness": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.AftShoulderThickness = v
	})),
	"Transition:aftshouldercapped": set(boolSetter{func(c *rocket.Component, v bool) {
		c.AftShoulderCapped = v
	}}),

	// NoseCone has no fore end; the fore parameters its Transition level
	// would accept are explicitly disallowed.
	"NoseCone:foreradius":            disallowed(),
	"NoseCone:foreshoulderradius":    disallowed(),
	"NoseCone:foreshoulderlength":    disallowed(),
	"NoseCone:foreshoulderthickness": disallowed(),
	"NoseCone:foreshouldercapped":    disallowed(),

	// FinSet
	"FinSet:fincount": set(intSetter{func(c *rocket.Component, v int) {
		c.FinCount = v
	}}),
	"FinSet:rotation": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.BaseRotation = v
	}, degToRad)),
	"FinSet:thickness": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Thickness = v
	})),
	"FinSet:crosssection": set(enumSetter{func(c *rocket.Component, v string) bool {
		cs, ok := rocket.CrossSectionFromName(v)
		if ok {
			c.CrossSection = cs
		}
		return ok
	}}),
	"FinSet:cant": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.CantAngle = v
	}, degToRad)),

	// TrapezoidFinSet
	"TrapezoidFinSet:rootchord": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.RootChord = v
	})),
	"TrapezoidFinSet:tipchord": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.TipChord = v
	})),
	"TrapezoidFinSet:sweeplength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.SweepLength = v
	})),
	"TrapezoidFinSet:height": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.FinHeight = v
	})),

	// EllipticalFinSet
	"EllipticalFinSet:rootchord": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Length = v
	})),
	"EllipticalFinSet:height": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.FinHeight = v
	})),

	// FreeformFinSet outlines arrive through the finpoints element, not a
	// parameter setter.

	// LaunchLug
	"LaunchLug:radius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Radius = v
	})),
	"LaunchLug:length": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Length = v
	})),
	"LaunchLug:thickness": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Thickness = v
	})),
	"LaunchLug:radialdirection": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.RadialDirection = v
	}, degToRad)),

	// StructuralComponent
	"StructuralComponent:material": set(materialSetter{
		category: rocket.MaterialBulk,
		apply:    func(c *rocket.Component, m *rocket.Material) { c.Material = m },
	}),

	// RingComponent
	"RingComponent:length": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Length = v
	})),
	"RingComponent:radialposition": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.RadialPosition = v
	})),
	"RingComponent:radialdirection": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.RadialDirection = v
	}, degToRad)),

	// ThicknessRingComponent
	"ThicknessRingComponent:thickness": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Thickness = v
	})),

	// EngineBlock
	"EngineBlock:outerradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.OuterRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.OuterRadiusAutomatic = v },
	)),

	// TubeCoupler
	"TubeCoupler:outerradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.OuterRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.OuterRadiusAutomatic = v },
	)),

	// InnerTube
	"InnerTube:outerradius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.OuterRadius = v
	})),
	"InnerTube:clusterconfiguration": set(clusterSetter{}),
	"InnerTube:clusterscale": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.ClusterScale = v
	})),
	"InnerTube:clusterrotation": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.ClusterRotation = v
	}, degToRad)),

	// RadiusRingComponent
	"RadiusRingComponent:innerradius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.InnerRadius = v
	})),
	"Bulkhead:outerradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.OuterRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.OuterRadiusAutomatic = v },
	)),
	"CenteringRing:innerradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.InnerRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.InnerRadiusAutomatic = v },
	)),
	"CenteringRing:outerradius": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.OuterRadius = v },
		"auto",
		func(c *rocket.Component, v bool) { c.OuterRadiusAutomatic = v },
	)),

	// MassObject
	"MassObject:packedlength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Length = v
	})),
	"MassObject:packedradius": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Radius = v
	})),
	"MassObject:radialposition": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.RadialPosition = v
	})),
	"MassObject:radialdirection": set(newScaledDoubleSetter(func(c *rocket.Component, v float64) {
		c.RadialDirection = v
	}, degToRad)),

	// MassComponent
	"MassComponent:mass": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Mass = v
	})),

	// ShockCord
	"ShockCord:cordlength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.CordLength = v
	})),
	"ShockCord:material": set(materialSetter{
		category: rocket.MaterialLine,
		apply:    func(c *rocket.Component, m *rocket.Material) { c.Material = m },
	}),

	// RecoveryDevice
	"RecoveryDevice:cd": set(newAutoDoubleSetter(
		func(c *rocket.Component, v float64) { c.CD = v },
		"auto",
		func(c *rocket.Component, v bool) { c.CDAutomatic = v },
	)),
	"RecoveryDevice:deployevent": set(enumSetter{func(c *rocket.Component, v string) bool {
		ev, ok := rocket.DeployEventFromName(v)
		if ok {
			c.DeployEvent = ev
		}
		return ok
	}}),
	"RecoveryDevice:deployaltitude": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.DeployAltitude = v
	})),
	"RecoveryDevice:deploydelay": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.DeployDelay = v
	})),
	"RecoveryDevice:material": set(materialSetter{
		category: rocket.MaterialSurface,
		apply:    func(c *rocket.Component, m *rocket.Material) { c.Material = m },
	}),

	// Parachute
	"Parachute:diameter": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.Diameter = v
	})),
	"Parachute:linecount": set(intSetter{func(c *rocket.Component, v int) {
		c.LineCount = v
	}}),
	"Parachute:linelength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.LineLength = v
	})),
	"Parachute:linematerial": set(materialSetter{
		category: rocket.MaterialLine,
		apply:    func(c *rocket.Component, m *rocket.Material) { c.LineMaterial = m },
	}),

	// Streamer
	"Streamer:striplength": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.StripLength = v
	})),
	"Streamer:stripwidth": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		c.StripWidth = v
	})),

	// Rocket
	"Rocket:referencetype": set(enumSetter{func(c *rocket.Component, v string) bool {
		rt, ok := rocket.ReferenceTypeFromName(v)
		if ok && c.Rocket != nil {
			c.Rocket.ReferenceType = rt
		}
		return ok
	}}),
	"Rocket:customreference": set(newDoubleSetter(func(c *rocket.Component, v float64) {
		if c.Rocket != nil {
			c.Rocket.CustomReferenceLength = v
		}
	})),
	"Rocket:designer": set(stringSetter{func(c *rocket.Component, v string) {
		if c.Rocket != nil {
			c.Rocket.Designer = v
		}
	}}),
	"Rocket:revision": set(stringSetter{func(c *rocket.Component, v string) {
		if c.Rocket != nil {
			c.Rocket.Revision = v
		}
	}}),
}
