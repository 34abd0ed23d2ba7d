// Package rocket defines the in-memory domain model the document loader
// populates: a typed component tree plus the enumerations, materials and
// motor-configuration records the OpenRocket file format refers to.
//
// This package contains data types and pure tree operations only. All other
// internal packages import rocket; rocket imports nothing internal except
// parsekit. That keeps the model the foundational layer with no circular
// dependencies.
package rocket

// Kind identifies a concrete component kind instantiable from a document
// element tag. The value is the type name used as the most-derived level of
// the parameter-setter resolution chain.
type Kind string

const (
	KindRocket Kind = "Rocket"
	KindStage  Kind = "Stage"

	// External components
	KindBodyTube         Kind = "BodyTube"
	KindTransition       Kind = "Transition"
	KindNoseCone         Kind = "NoseCone"
	KindTrapezoidFinSet  Kind = "TrapezoidFinSet"
	KindEllipticalFinSet Kind = "EllipticalFinSet"
	KindFreeformFinSet   Kind = "FreeformFinSet"
	KindLaunchLug        Kind = "LaunchLug"

	// Internal components
	KindEngineBlock   Kind = "EngineBlock"
	KindInnerTube     Kind = "InnerTube"
	KindTubeCoupler   Kind = "TubeCoupler"
	KindBulkhead      Kind = "Bulkhead"
	KindCenteringRing Kind = "CenteringRing"
	KindMassComponent Kind = "MassComponent"
	KindShockCord     Kind = "ShockCord"
	KindParachute     Kind = "Parachute"
	KindStreamer      Kind = "Streamer"
)

// hierarchy lists the ancestor chain of every kind from most derived to
// least derived. Setter resolution walks this chain; the abstract level
// names (SymmetricComponent, MassObject, ...) exist only as registry keys.
var hierarchy = map[Kind][]string{
	KindRocket: {"Rocket", "RocketComponent"},
	KindStage:  {"Stage", "ComponentAssembly", "RocketComponent"},

	KindBodyTube:   {"BodyTube", "SymmetricComponent", "BodyComponent", "ExternalComponent", "RocketComponent"},
	KindTransition: {"Transition", "SymmetricComponent", "BodyComponent", "ExternalComponent", "RocketComponent"},
	KindNoseCone:   {"NoseCone", "Transition", "SymmetricComponent", "BodyComponent", "ExternalComponent", "RocketComponent"},

	KindTrapezoidFinSet:  {"TrapezoidFinSet", "FinSet", "ExternalComponent", "RocketComponent"},
	KindEllipticalFinSet: {"EllipticalFinSet", "FinSet", "ExternalComponent", "RocketComponent"},
	KindFreeformFinSet:   {"FreeformFinSet", "FinSet", "ExternalComponent", "RocketComponent"},
	KindLaunchLug:        {"LaunchLug", "ExternalComponent", "RocketComponent"},

	KindEngineBlock: {"EngineBlock", "ThicknessRingComponent", "RingComponent", "StructuralComponent", "InternalComponent", "RocketComponent"},
	KindInnerTube:   {"InnerTube", "ThicknessRingComponent", "RingComponent", "StructuralComponent", "InternalComponent", "RocketComponent"},
	KindTubeCoupler: {"TubeCoupler", "ThicknessRingComponent", "RingComponent", "StructuralComponent", "InternalComponent", "RocketComponent"},

	KindBulkhead:      {"Bulkhead", "RadiusRingComponent", "RingComponent", "StructuralComponent", "InternalComponent", "RocketComponent"},
	KindCenteringRing: {"CenteringRing", "RadiusRingComponent", "RingComponent", "StructuralComponent", "InternalComponent", "RocketComponent"},

	KindMassComponent: {"MassComponent", "MassObject", "InternalComponent", "RocketComponent"},
	KindShockCord:     {"ShockCord", "MassObject", "InternalComponent", "RocketComponent"},
	KindParachute:     {"Parachute", "RecoveryDevice", "MassObject", "InternalComponent", "RocketComponent"},
	KindStreamer:      {"Streamer", "RecoveryDevice", "MassObject", "InternalComponent", "RocketComponent"},
}

// displayNames gives the human-readable component names used in warnings.
var displayNames = map[Kind]string{
	KindRocket:           "Rocket",
	KindStage:            "Stage",
	KindBodyTube:         "Body tube",
	KindTransition:       "Transition",
	KindNoseCone:         "Nose cone",
	KindTrapezoidFinSet:  "Trapezoidal fin set",
	KindEllipticalFinSet: "Elliptical fin set",
	KindFreeformFinSet:   "Freeform fin set",
	KindLaunchLug:        "Launch lug",
	KindEngineBlock:      "Engine block",
	KindInnerTube:        "Inner tube",
	KindTubeCoupler:      "Tube coupler",
	KindBulkhead:         "Bulkhead",
	KindCenteringRing:    "Centering ring",
	KindMassComponent:    "Mass component",
	KindShockCord:        "Shock cord",
	KindParachute:        "Parachute",
	KindStreamer:         "Streamer",
}

// Ancestors returns the kind's type names from most derived to least
// derived. The returned slice must not be modified.
func (k Kind) Ancestors() []string {
	return hierarchy[k]
}

// DisplayName returns the human-readable component name for warnings and
// listings.
func (k Kind) DisplayName() string {
	if n, ok := displayNames[k]; ok {
		return n
	}
	return string(k)
}

// isA reports whether the kind has the given type name in its ancestor
// chain (itself included).
func (k Kind) isA(typeName string) bool {
	for _, a := range hierarchy[k] {
		if a == typeName {
			return true
		}
	}
	return false
}

// SupportsRelativePosition reports whether position elements apply to the
// kind. Fin sets, launch lugs and internal components position themselves
// relative to their parent; body components are laid out sequentially.
func (k Kind) SupportsRelativePosition() bool {
	return k.isA("FinSet") || k == KindLaunchLug || k.isA("InternalComponent")
}

// SupportsClustering reports whether cluster configuration applies.
func (k Kind) SupportsClustering() bool {
	return k == KindInnerTube
}

// SupportsMotorMount reports whether the kind can carry a motor mount
// record.
func (k Kind) SupportsMotorMount() bool {
	return k == KindBodyTube || k == KindInnerTube
}

// HasFreeformOutline reports whether the kind owns a freeform point
// outline.
func (k Kind) HasFreeformOutline() bool {
	return k == KindFreeformFinSet
}
