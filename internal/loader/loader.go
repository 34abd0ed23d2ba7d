// Package loader deserializes OpenRocket design documents.
//
// A load never aborts on bad content: unknown elements, malformed values
// and failed motor lookups all degrade to warnings on the returned
// document, and only unparseable markup or an I/O failure yields an error.
package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/MatthewFletcher/openrocket/internal/document"
	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// MotorFinder resolves the motor search criteria a document stores into
// catalog entries. motordb.Database implements it.
type MotorFinder interface {
	// FindMotors returns every catalog motor matching the criteria. A nil
	// type and empty manufacturer match anything; NaN dimensions match
	// anything; designation is required.
	FindMotors(typ *rocket.MotorType, manufacturer, designation string,
		diameter, length float64) ([]rocket.Motor, error)
}

// ErrNoRocket is returned when the document parsed cleanly but contained
// no rocket design to load.
var ErrNoRocket = errors.New("document contains no rocket design")

// Load reads a design document from r, resolving motor references through
// finder. Callers without a motor database pass NoMotors. The returned
// document carries every warning encountered; a non-nil error means
// nothing usable was read.
func Load(r io.Reader, finder MotorFinder) (*document.Document, error) {
	if finder == nil {
		finder = NoMotors
	}
	root := newOpenRocketHandler(finder)

	var warnings warnset.Set
	if err := markup.Run(r, root, &warnings); err != nil {
		return nil, fmt.Errorf("load rocket document: %w", err)
	}

	loaded := root.Document()
	if loaded == nil {
		return nil, ErrNoRocket
	}
	loaded.Warnings.AddAll(&warnings)

	finalize(loaded)

	slog.Debug("loaded rocket document",
		"id", loaded.ID,
		"simulations", len(loaded.Simulations),
		"warnings", loaded.Warnings.Len())
	return loaded, nil
}

// LoadFile loads a design document from the named file.
func LoadFile(path string, finder MotorFinder) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rocket document: %w", err)
	}
	defer f.Close()
	return Load(f, finder)
}

// NoMotors is a MotorFinder with an empty catalog: every motor reference
// degrades to a lookup-miss warning.
var NoMotors MotorFinder = noMotors{}

type noMotors struct{}

func (noMotors) FindMotors(typ *rocket.MotorType, manufacturer, designation string,
	diameter, length float64) ([]rocket.Motor, error) {
	return nil, nil
}

// finalize applies the post-load normalization: all stages active, a
// simulation-data time skip derived from the stored samples, pristine
// storage options and a clean undo baseline.
func finalize(doc *document.Document) {
	if doc.Rocket != nil && doc.Rocket.Rocket != nil {
		doc.Rocket.Rocket.AllStages = true
	}

	timeSkip := document.SimulationDataNone
	for _, sim := range doc.Simulations {
		if sim.Status == document.StatusExternal || sim.Status == document.StatusNotSimulated {
			continue
		}
		if sim.Data == nil || sim.Data.BranchCount() == 0 {
			continue
		}
		branch := sim.Data.Branch(0)
		times := branch.Values(document.ChannelTime)
		if times == nil {
			continue
		}

		previous := math.NaN()
		for _, t := range times {
			if t-previous < timeSkip {
				timeSkip = t - previous
			}
			previous = t
		}
	}
	timeSkip = math.RoundToEven(timeSkip*100) / 100

	doc.Storage.SimulationTimeSkip = timeSkip
	doc.Storage.CompressionEnabled = false
	doc.Storage.ExplicitlySet = false

	doc.ClearUndo()
	doc.StampID()
}
