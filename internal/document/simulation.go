package document

import (
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

// Status describes how current a simulation's results are.
type Status int

const (
	// StatusUpToDate means the results match the current design.
	StatusUpToDate Status = iota
	// StatusOutdated means the design changed after the simulation ran.
	StatusOutdated
	// StatusExternal means the data was supplied from outside, not
	// produced by the simulator.
	StatusExternal
	// StatusNotSimulated means the simulation has not been run.
	StatusNotSimulated
)

var statusNames = []string{"UPTODATE", "OUTDATED", "EXTERNAL", "NOT_SIMULATED"}

func (s Status) String() string { return statusNames[s] }

// StatusFromName resolves a document status attribute via name
// canonicalization.
func StatusFromName(s string) (Status, bool) {
	i := parsekit.MatchName(s, statusNames)
	if i < 0 {
		return 0, false
	}
	return Status(i), true
}

// SimulationConditions holds the launch-site and integration parameters of
// one simulation. Angles are radians, temperatures kelvin, pressures
// pascal.
type SimulationConditions struct {
	// MotorConfigID references a configuration of the rocket this
	// conditions record belongs to; empty selects no motors.
	MotorConfigID string

	LaunchRodLength    float64
	LaunchRodAngle     float64
	LaunchRodDirection float64

	WindAverage    float64
	WindTurbulence float64

	LaunchAltitude float64
	LaunchLatitude float64

	// ISAAtmosphere selects the international standard atmosphere; false
	// selects the extended model with the base overrides below.
	ISAAtmosphere     bool
	LaunchTemperature float64
	LaunchPressure    float64

	TimeStep float64

	rocket *rocket.Component
}

// NewConditions creates a conditions record with the simulator defaults,
// tied to the document's rocket.
func NewConditions(rkt *rocket.Component) *SimulationConditions {
	return &SimulationConditions{
		LaunchRodLength:   1.0,
		WindAverage:       2.0,
		WindTurbulence:    0.1,
		LaunchLatitude:    45,
		ISAAtmosphere:     true,
		LaunchTemperature: 288.15,
		LaunchPressure:    101325,
		TimeStep:          0.05,
		rocket:            rkt,
	}
}

// Rocket returns the rocket the conditions were created for.
func (c *SimulationConditions) Rocket() *rocket.Component {
	return c.rocket
}

// Simulation is one stored simulation record: identification, conditions,
// listener hooks and optional flight data.
type Simulation struct {
	Name       string
	Status     Status
	Conditions *SimulationConditions
	Listeners  []string
	Data       *FlightData
}
