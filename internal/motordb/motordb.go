// Package motordb provides the SQLite-backed motor catalog the loader
// queries when resolving motor assignments.
//
// Lookup results are deterministic: matches are ordered by manufacturer,
// designation, diameter, length and finally rowid, so "one chosen
// arbitrarily" always picks the same motor given an identical catalog.
package motordb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"math"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

//go:embed schema.sql
var schemaSQL string

// DimensionTolerance is the slack, in meters, allowed when matching motor
// diameter and length against catalog entries. Documents store dimensions
// rounded to the millimeter.
const DimensionTolerance = 0.0005

// Database is a motor catalog. A single Database may serve concurrent
// loads; queries are read-only.
type Database struct {
	db *sql.DB
}

// Open creates or opens a catalog database at the given path. Use
// ":memory:" for an ephemeral catalog.
func Open(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open motor database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect motor database: %w", err)
	}

	// SQLite supports one writer at a time; imports are rare and queries
	// are short, so a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply motor schema: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the underlying database.
func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Insert adds one motor to the catalog.
func (d *Database) Insert(ctx context.Context, m rocket.Motor) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO motors (type, manufacturer, designation, diameter, length, total_impulse)
		VALUES (?, ?, ?, ?, ?, ?)
	`, strings.ToLower(m.Type.String()), m.Manufacturer, m.Designation, m.Diameter, m.Length, m.TotalImpulse)
	if err != nil {
		return fmt.Errorf("insert motor %s: %w", m.Designation, err)
	}
	return nil
}

// Count returns the number of cataloged motors.
func (d *Database) Count(ctx context.Context) (int, error) {
	var n int
	if err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM motors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count motors: %w", err)
	}
	return n, nil
}

// FindMotors returns the catalog entries matching the query. A nil type and
// empty manufacturer match anything; NaN diameter or length match anything;
// designation is required. Dimensions match within DimensionTolerance.
//
// The result ordering is stable across identical catalogs.
func (d *Database) FindMotors(typ *rocket.MotorType, manufacturer, designation string,
	diameter, length float64) ([]rocket.Motor, error) {

	if designation == "" {
		return nil, fmt.Errorf("motor designation is required")
	}

	query := `
		SELECT type, manufacturer, designation, diameter, length, total_impulse
		FROM motors
		WHERE designation = ?`
	args := []any{designation}

	if typ != nil {
		query += ` AND type = ?`
		args = append(args, strings.ToLower(typ.String()))
	}
	if manufacturer != "" {
		query += ` AND manufacturer = ? COLLATE NOCASE`
		args = append(args, manufacturer)
	}
	if !math.IsNaN(diameter) {
		query += ` AND diameter BETWEEN ? AND ?`
		args = append(args, diameter-DimensionTolerance, diameter+DimensionTolerance)
	}
	if !math.IsNaN(length) {
		query += ` AND length BETWEEN ? AND ?`
		args = append(args, length-DimensionTolerance, length+DimensionTolerance)
	}

	query += ` ORDER BY manufacturer ASC, designation ASC, diameter ASC, length ASC, id ASC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query motors: %w", err)
	}
	defer rows.Close()

	var motors []rocket.Motor
	for rows.Next() {
		var m rocket.Motor
		var typeName string
		if err := rows.Scan(&typeName, &m.Manufacturer, &m.Designation,
			&m.Diameter, &m.Length, &m.TotalImpulse); err != nil {
			return nil, fmt.Errorf("scan motor: %w", err)
		}
		if t, ok := rocket.MotorTypeFromName(typeName); ok {
			m.Type = t
		} else {
			m.Type = rocket.MotorTypeUnknown
		}
		motors = append(motors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate motors: %w", err)
	}
	return motors, nil
}
