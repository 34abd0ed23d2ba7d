package document

import (
	"fmt"
	"math"

	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// ChannelTime is the channel name the finalizer scans for sample spacing.
const ChannelTime = "Time"

// EventType classifies a discrete flight event.
type EventType int

const (
	EventLaunch EventType = iota
	EventIgnition
	EventLiftoff
	EventLaunchRod
	EventBurnout
	EventEjectionCharge
	EventStageSeparation
	EventApogee
	EventRecoveryDeviceDeployment
	EventGroundHit
	EventSimulationEnd
	EventAltitude
)

var eventTypeNames = []string{
	"LAUNCH", "IGNITION", "LIFTOFF", "LAUNCHROD", "BURNOUT",
	"EJECTION_CHARGE", "STAGE_SEPARATION", "APOGEE",
	"RECOVERY_DEVICE_DEPLOYMENT", "GROUND_HIT", "SIMULATION_END",
	"ALTITUDE",
}

func (e EventType) String() string { return eventTypeNames[e] }

// EventTypeFromName resolves a document event type via name
// canonicalization.
func EventTypeFromName(s string) (EventType, bool) {
	i := parsekit.MatchName(s, eventTypeNames)
	if i < 0 {
		return 0, false
	}
	return EventType(i), true
}

// FlightEvent is a timestamped discrete event within a branch.
type FlightEvent struct {
	Type EventType
	Time float64
}

// FlightDataBranch is one named multi-channel time series. Rows are
// appended during loading; the branch becomes immutable the moment its
// enclosing element closes.
type FlightDataBranch struct {
	name     string
	channels []string
	values   map[string][]float64
	events   []FlightEvent
	length   int
	immuted  bool
}

// NewBranch creates an empty branch with the declared channels.
func NewBranch(name string, channels []string) (*FlightDataBranch, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("branch %q declares no channels", name)
	}
	values := make(map[string][]float64, len(channels))
	for _, ch := range channels {
		if _, dup := values[ch]; dup {
			return nil, fmt.Errorf("branch %q declares channel %q twice", name, ch)
		}
		values[ch] = nil
	}
	return &FlightDataBranch{
		name:     name,
		channels: channels,
		values:   values,
	}, nil
}

// Name returns the branch name.
func (b *FlightDataBranch) Name() string { return b.name }

// Channels returns the declared channel names in order.
func (b *FlightDataBranch) Channels() []string { return b.channels }

// Len returns the number of appended rows.
func (b *FlightDataBranch) Len() int { return b.length }

// AddRow appends one sample row. The value count must equal the declared
// channel count, and the branch must not be immuted yet.
func (b *FlightDataBranch) AddRow(values []float64) error {
	if b.immuted {
		return fmt.Errorf("branch %q is immutable", b.name)
	}
	if len(values) != len(b.channels) {
		return fmt.Errorf("row has %d values, branch %q declares %d channels",
			len(values), b.name, len(b.channels))
	}
	for i, ch := range b.channels {
		b.values[ch] = append(b.values[ch], values[i])
	}
	b.length++
	return nil
}

// AddEvent appends a discrete event.
func (b *FlightDataBranch) AddEvent(e FlightEvent) error {
	if b.immuted {
		return fmt.Errorf("branch %q is immutable", b.name)
	}
	b.events = append(b.events, e)
	return nil
}

// Events returns the recorded events in insertion order.
func (b *FlightDataBranch) Events() []FlightEvent { return b.events }

// Values returns the samples of one channel, or nil if the channel was not
// declared. The returned slice must not be modified.
func (b *FlightDataBranch) Values(channel string) []float64 {
	return b.values[channel]
}

// Immute freezes the branch. Further AddRow/AddEvent calls fail.
func (b *FlightDataBranch) Immute() { b.immuted = true }

// Immuted reports whether the branch has been frozen.
func (b *FlightDataBranch) Immuted() bool { return b.immuted }

// FlightData is the stored result of a simulation run: either detailed
// branches, or the seven summary figures when no branch detail was present.
// It owns its own warning set, merged from the warnings the document
// recorded for it.
type FlightData struct {
	branches []*FlightDataBranch

	MaxAltitude       float64
	MaxVelocity       float64
	MaxAcceleration   float64
	MaxMach           float64
	TimeToApogee      float64
	FlightTime        float64
	GroundHitVelocity float64

	Warnings warnset.Set
}

// NewFlightData creates a flight-data record from detailed branches.
func NewFlightData(branches []*FlightDataBranch) *FlightData {
	d := newSummary(math.NaN(), math.NaN(), math.NaN(), math.NaN(),
		math.NaN(), math.NaN(), math.NaN())
	d.branches = branches
	return d
}

// NewFlightDataSummary creates a summary-only record. Absent figures are
// NaN.
func NewFlightDataSummary(maxAltitude, maxVelocity, maxAcceleration, maxMach,
	timeToApogee, flightTime, groundHitVelocity float64) *FlightData {
	return newSummary(maxAltitude, maxVelocity, maxAcceleration, maxMach,
		timeToApogee, flightTime, groundHitVelocity)
}

func newSummary(maxAltitude, maxVelocity, maxAcceleration, maxMach,
	timeToApogee, flightTime, groundHitVelocity float64) *FlightData {
	return &FlightData{
		MaxAltitude:       maxAltitude,
		MaxVelocity:       maxVelocity,
		MaxAcceleration:   maxAcceleration,
		MaxMach:           maxMach,
		TimeToApogee:      timeToApogee,
		FlightTime:        flightTime,
		GroundHitVelocity: groundHitVelocity,
	}
}

// BranchCount returns the number of detailed branches, zero for summary
// records.
func (d *FlightData) BranchCount() int { return len(d.branches) }

// Branch returns the branch at index i, or nil if out of range.
func (d *FlightData) Branch(i int) *FlightDataBranch {
	if i < 0 || i >= len(d.branches) {
		return nil
	}
	return d.branches[i]
}
