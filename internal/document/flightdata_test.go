package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch_Validation(t *testing.T) {
	_, err := NewBranch("main", nil)
	assert.Error(t, err, "no channels")

	_, err = NewBranch("main", []string{"Time", "Time"})
	assert.Error(t, err, "duplicate channel")
}

func TestBranch_AddRow(t *testing.T) {
	b, err := NewBranch("main", []string{"Time", "Altitude"})
	require.NoError(t, err)

	require.NoError(t, b.AddRow([]float64{0.0, 0.0}))
	require.NoError(t, b.AddRow([]float64{0.05, 1.2}))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []float64{0.0, 0.05}, b.Values("Time"))
	assert.Equal(t, []float64{0.0, 1.2}, b.Values("Altitude"))
	assert.Nil(t, b.Values("Velocity"))
}

func TestBranch_RowCountMismatch(t *testing.T) {
	b, err := NewBranch("main", []string{"Time", "Altitude"})
	require.NoError(t, err)

	assert.Error(t, b.AddRow([]float64{1.0}))
	assert.Error(t, b.AddRow([]float64{1.0, 2.0, 3.0}))
	assert.Equal(t, 0, b.Len())
}

func TestBranch_ImmuteRejectsMutation(t *testing.T) {
	b, err := NewBranch("main", []string{"Time"})
	require.NoError(t, err)
	require.NoError(t, b.AddRow([]float64{0}))

	b.Immute()
	assert.True(t, b.Immuted())
	assert.Error(t, b.AddRow([]float64{1}))
	assert.Error(t, b.AddEvent(FlightEvent{Type: EventApogee, Time: 1}))
	assert.Equal(t, 1, b.Len())
}

func TestFlightData_SummaryDefaults(t *testing.T) {
	d := NewFlightDataSummary(120.5, math.NaN(), math.NaN(), math.NaN(),
		math.NaN(), 14.2, math.NaN())

	assert.Equal(t, 0, d.BranchCount())
	assert.Nil(t, d.Branch(0))
	assert.Equal(t, 120.5, d.MaxAltitude)
	assert.Equal(t, 14.2, d.FlightTime)
	assert.True(t, math.IsNaN(d.MaxVelocity))
}

func TestEventTypeFromName(t *testing.T) {
	ev, ok := EventTypeFromName("recoverydevicedeployment")
	require.True(t, ok)
	assert.Equal(t, EventRecoveryDeviceDeployment, ev)

	_, ok = EventTypeFromName("teleportation")
	assert.False(t, ok)
}

func TestStatusFromName(t *testing.T) {
	s, ok := StatusFromName("upToDate")
	require.True(t, ok)
	assert.Equal(t, StatusUpToDate, s)

	s, ok = StatusFromName("notsimulated")
	require.True(t, ok)
	assert.Equal(t, StatusNotSimulated, s)

	_, ok = StatusFromName("")
	assert.False(t, ok)
}

func TestDocument_Undo(t *testing.T) {
	d := New(nil)
	d.MarkUndoPosition("add body tube")
	d.MarkUndoPosition("set radius")
	assert.Equal(t, 2, d.UndoDepth())

	d.ClearUndo()
	assert.Equal(t, 0, d.UndoDepth())
}
