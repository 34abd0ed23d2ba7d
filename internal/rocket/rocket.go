package rocket

// MotorConfiguration is one named set of motor assignments applicable to
// the whole rocket.
type MotorConfiguration struct {
	ID   string
	Name string
}

// RocketAttrs holds the attributes only the root rocket node carries:
// reference-length selection, authorship metadata and the
// motor-configuration registry.
type RocketAttrs struct {
	Designer              string
	Revision              string
	ReferenceType         ReferenceType
	CustomReferenceLength float64

	// Configurations in document order. IDs are unique.
	Configurations []MotorConfiguration

	// DefaultConfigID is the configuration marked default, empty if none.
	DefaultConfigID string

	// AllStages is set by the post-load finalizer so a freshly loaded
	// design starts with every stage active.
	AllStages bool
}

// AddConfigurationID registers a motor configuration id. Returns false if
// the id is already registered; the caller drops the duplicate definition.
func (r *RocketAttrs) AddConfigurationID(id string) bool {
	for _, c := range r.Configurations {
		if c.ID == id {
			return false
		}
	}
	r.Configurations = append(r.Configurations, MotorConfiguration{ID: id})
	return true
}

// SetConfigurationName sets the display name of a registered configuration.
// Unknown ids are ignored.
func (r *RocketAttrs) SetConfigurationName(id, name string) {
	for i := range r.Configurations {
		if r.Configurations[i].ID == id {
			r.Configurations[i].Name = name
			return
		}
	}
}

// HasConfiguration reports whether the id is registered.
func (r *RocketAttrs) HasConfiguration(id string) bool {
	for _, c := range r.Configurations {
		if c.ID == id {
			return true
		}
	}
	return false
}
