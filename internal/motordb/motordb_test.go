package motordb

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewFletcher/openrocket/internal/rocket"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seed(t *testing.T, db *Database, motors ...rocket.Motor) {
	t.Helper()
	for _, m := range motors {
		require.NoError(t, db.Insert(context.Background(), m))
	}
}

func TestFindMotors_ByDesignation(t *testing.T) {
	db := openTestDB(t)
	seed(t, db,
		rocket.Motor{Manufacturer: "Estes", Designation: "C6", Diameter: 0.018, Length: 0.07},
		rocket.Motor{Manufacturer: "Estes", Designation: "B6", Diameter: 0.018, Length: 0.07},
	)

	motors, err := db.FindMotors(nil, "", "C6", math.NaN(), math.NaN())
	require.NoError(t, err)
	require.Len(t, motors, 1)
	assert.Equal(t, "C6", motors[0].Designation)
}

func TestFindMotors_RequiresDesignation(t *testing.T) {
	db := openTestDB(t)
	_, err := db.FindMotors(nil, "", "", math.NaN(), math.NaN())
	assert.Error(t, err)
}

func TestFindMotors_ManufacturerCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	seed(t, db,
		rocket.Motor{Manufacturer: "AeroTech", Designation: "F40", Diameter: 0.029, Length: 0.124},
		rocket.Motor{Manufacturer: "Estes", Designation: "F40", Diameter: 0.029, Length: 0.124},
	)

	motors, err := db.FindMotors(nil, "aerotech", "F40", math.NaN(), math.NaN())
	require.NoError(t, err)
	require.Len(t, motors, 1)
	assert.Equal(t, "AeroTech", motors[0].Manufacturer)
}

func TestFindMotors_DimensionTolerance(t *testing.T) {
	db := openTestDB(t)
	seed(t, db,
		rocket.Motor{Manufacturer: "Estes", Designation: "C6", Diameter: 0.018, Length: 0.07},
	)

	motors, err := db.FindMotors(nil, "", "C6", 0.0182, math.NaN())
	require.NoError(t, err)
	assert.Len(t, motors, 1, "within tolerance")

	motors, err = db.FindMotors(nil, "", "C6", 0.024, math.NaN())
	require.NoError(t, err)
	assert.Empty(t, motors, "outside tolerance")
}

func TestFindMotors_TypeFilterAndRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seed(t, db,
		rocket.Motor{Type: rocket.MotorTypeSingle, Manufacturer: "Estes", Designation: "D12", Diameter: 0.024, Length: 0.07},
		rocket.Motor{Type: rocket.MotorTypeReload, Manufacturer: "AeroTech", Designation: "D12", Diameter: 0.024, Length: 0.07},
	)

	typ := rocket.MotorTypeReload
	motors, err := db.FindMotors(&typ, "", "D12", math.NaN(), math.NaN())
	require.NoError(t, err)
	require.Len(t, motors, 1)
	assert.Equal(t, rocket.MotorTypeReload, motors[0].Type)
}

func TestFindMotors_DeterministicOrdering(t *testing.T) {
	db := openTestDB(t)
	// Same designation from two manufacturers; manufacturer sorts first.
	seed(t, db,
		rocket.Motor{Manufacturer: "Quest", Designation: "C6", Diameter: 0.018, Length: 0.07},
		rocket.Motor{Manufacturer: "Estes", Designation: "C6", Diameter: 0.018, Length: 0.07},
	)

	motors, err := db.FindMotors(nil, "", "C6", math.NaN(), math.NaN())
	require.NoError(t, err)
	require.Len(t, motors, 2)
	assert.Equal(t, "Estes", motors[0].Manufacturer)
	assert.Equal(t, "Quest", motors[1].Manufacturer)
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
motors:
  - type: single
    manufacturer: Estes
    designation: C6
    diameter: 0.018
    length: 0.07
    total_impulse: 8.8
  - type: reload
    manufacturer: AeroTech
    designation: H128W
    diameter: 0.029
    length: 0.194
`)
	c, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, c.Motors, 2)
	assert.Equal(t, "C6", c.Motors[0].Designation)
	assert.Equal(t, 8.8, c.Motors[0].TotalImpulse)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte(`motors: [{manufacturer: X}]`))
	assert.Error(t, err, "missing designation")

	_, err = ParseCatalog([]byte(`motors: [{designation: C6, type: warp}]`))
	assert.Error(t, err, "unknown type")
}

func TestImport(t *testing.T) {
	db := openTestDB(t)
	c, err := ParseCatalog([]byte(`
motors:
  - {type: single, manufacturer: Estes, designation: A8, diameter: 0.018, length: 0.07}
  - {type: single, manufacturer: Estes, designation: B6, diameter: 0.018, length: 0.07}
`))
	require.NoError(t, err)

	n, err := db.Import(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := db.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
