package motordb

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

// CatalogEntry is one motor definition in a YAML catalog file.
type CatalogEntry struct {
	// Type is one of "single", "reload", "hybrid", "unknown".
	Type         string  `yaml:"type"`
	Manufacturer string  `yaml:"manufacturer"`
	Designation  string  `yaml:"designation"`
	Diameter     float64 `yaml:"diameter"` // meters
	Length       float64 `yaml:"length"`   // meters
	TotalImpulse float64 `yaml:"total_impulse,omitempty"`
}

// Catalog is the YAML catalog file structure.
type Catalog struct {
	Motors []CatalogEntry `yaml:"motors"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse motor catalog: %w", err)
	}
	for i, e := range c.Motors {
		if e.Designation == "" {
			return nil, fmt.Errorf("motor catalog entry %d has no designation", i)
		}
		if _, ok := rocket.MotorTypeFromName(e.Type); e.Type != "" && !ok {
			return nil, fmt.Errorf("motor catalog entry %d has unknown type %q", i, e.Type)
		}
	}
	return &c, nil
}

// ImportFile reads a YAML catalog file and inserts every entry into the
// database. Returns the number of motors imported.
func (d *Database) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read motor catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return 0, err
	}
	return d.Import(ctx, c)
}

// Import inserts every catalog entry into the database.
func (d *Database) Import(ctx context.Context, c *Catalog) (int, error) {
	for i, e := range c.Motors {
		typ := rocket.MotorTypeUnknown
		if t, ok := rocket.MotorTypeFromName(e.Type); ok {
			typ = t
		}
		m := rocket.Motor{
			Type:         typ,
			Manufacturer: e.Manufacturer,
			Designation:  e.Designation,
			Diameter:     e.Diameter,
			Length:       e.Length,
			TotalImpulse: e.TotalImpulse,
		}
		if err := d.Insert(ctx, m); err != nil {
			return i, err
		}
	}
	return len(c.Motors), nil
}
