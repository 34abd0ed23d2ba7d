// Package document defines the root aggregate a load produces: the rocket
// design, its simulation records and the storage metadata stamped by the
// post-load finalizer.
package document

import (
	"math"

	"github.com/google/uuid"

	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// Simulation-data time-skip sentinels for StorageOptions.
var (
	// SimulationDataAll stores every sample.
	SimulationDataAll = 0.0
	// SimulationDataNone marks that no sampled data is stored. It is also
	// the fold identity when scanning branches for the minimum sample
	// delta.
	SimulationDataNone = math.Inf(1)
)

// StorageOptions is the document's default persistence configuration.
type StorageOptions struct {
	// SimulationTimeSkip is the default resolution for storing simulated
	// data, SimulationDataNone when no usable samples exist.
	SimulationTimeSkip float64

	CompressionEnabled bool

	// ExplicitlySet records whether the user chose these options. Loaded
	// documents start with derived values.
	ExplicitlySet bool
}

// Document is the full deserialized result of one load: exactly one
// component tree, zero or more simulations, and the warning set accumulated
// while reading.
type Document struct {
	// ID identifies this in-memory load, not the design itself. It is
	// stamped by the finalizer for correlation in logs.
	ID string

	Rocket      *rocket.Component
	Simulations []*Simulation

	Warnings warnset.Set
	Storage  StorageOptions

	undoHistory []string
}

// New creates a document owning the given rocket tree.
func New(rkt *rocket.Component) *Document {
	return &Document{
		Rocket:  rkt,
		Storage: StorageOptions{SimulationTimeSkip: SimulationDataNone},
	}
}

// AddSimulation appends a simulation record.
func (d *Document) AddSimulation(s *Simulation) {
	d.Simulations = append(d.Simulations, s)
}

// MarkUndoPosition records an undo snapshot description.
func (d *Document) MarkUndoPosition(description string) {
	d.undoHistory = append(d.undoHistory, description)
}

// UndoDepth returns the number of recorded undo positions.
func (d *Document) UndoDepth() int {
	return len(d.undoHistory)
}

// ClearUndo discards all undo history so the document starts at a clean
// baseline.
func (d *Document) ClearUndo() {
	d.undoHistory = nil
}

// StampID assigns a fresh load identity.
func (d *Document) StampID() {
	d.ID = uuid.NewString()
}
