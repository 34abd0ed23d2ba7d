package rocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Ancestors(t *testing.T) {
	testCases := []struct {
		kind Kind
		want []string
	}{
		{KindBodyTube, []string{"BodyTube", "SymmetricComponent", "BodyComponent", "ExternalComponent", "RocketComponent"}},
		{KindNoseCone, []string{"NoseCone", "Transition", "SymmetricComponent", "BodyComponent", "ExternalComponent", "RocketComponent"}},
		{KindParachute, []string{"Parachute", "RecoveryDevice", "MassObject", "InternalComponent", "RocketComponent"}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Ancestors())
		})
	}
}

func TestKind_Capabilities(t *testing.T) {
	assert.True(t, KindInnerTube.SupportsClustering())
	assert.False(t, KindBodyTube.SupportsClustering())

	assert.True(t, KindBodyTube.SupportsMotorMount())
	assert.True(t, KindInnerTube.SupportsMotorMount())
	assert.False(t, KindNoseCone.SupportsMotorMount())

	assert.True(t, KindTrapezoidFinSet.SupportsRelativePosition())
	assert.True(t, KindLaunchLug.SupportsRelativePosition())
	assert.True(t, KindEngineBlock.SupportsRelativePosition())
	assert.False(t, KindBodyTube.SupportsRelativePosition())

	assert.True(t, KindFreeformFinSet.HasFreeformOutline())
	assert.False(t, KindEllipticalFinSet.HasFreeformOutline())
}

func TestAddChild(t *testing.T) {
	root := New(KindRocket)
	stage := New(KindStage)
	tube := New(KindBodyTube)

	root.AddChild(stage)
	stage.AddChild(tube)

	require.Len(t, root.Children, 1)
	assert.Same(t, stage, root.Children[0])
	assert.Same(t, root, stage.Parent)
	assert.Same(t, stage, tube.Parent)
}

func TestWalkOrder(t *testing.T) {
	root := New(KindRocket)
	stage := New(KindStage)
	nose := New(KindNoseCone)
	tube := New(KindBodyTube)
	root.AddChild(stage)
	stage.AddChild(nose)
	stage.AddChild(tube)

	var kinds []Kind
	var depths []int
	root.Walk(func(c *Component, depth int) {
		kinds = append(kinds, c.Kind)
		depths = append(depths, depth)
	})

	assert.Equal(t, []Kind{KindRocket, KindStage, KindNoseCone, KindBodyTube}, kinds)
	assert.Equal(t, []int{0, 1, 2, 2}, depths)
}

func TestSetFreeformOutline(t *testing.T) {
	fins := New(KindFreeformFinSet)
	original := append([]Coordinate(nil), fins.OutlinePoints...)

	valid := []Coordinate{{0, 0}, {0.02, 0.04}, {0.06, 0}}
	require.NoError(t, fins.SetFreeformOutline(valid))
	assert.Equal(t, valid, fins.OutlinePoints)

	// Inner slice is a copy, not an alias.
	valid[1].Y = 99
	assert.Equal(t, 0.04, fins.OutlinePoints[1].Y)

	invalid := [][]Coordinate{
		{{0, 0}},                       // too few
		{{0.01, 0}, {0.05, 0}},         // not at origin
		{{0, 0}, {0.05, 0.02}},         // does not end on body line
		{{0, 0}, {-0.01, 0.1}, {0, 0}}, // negative x
	}
	fins = New(KindFreeformFinSet)
	for _, pts := range invalid {
		assert.Error(t, fins.SetFreeformOutline(pts))
		assert.Equal(t, original, fins.OutlinePoints, "failed set must keep prior outline")
	}
}

func TestMotorConfigurationRegistry(t *testing.T) {
	r := &RocketAttrs{}

	require.True(t, r.AddConfigurationID("A"))
	require.False(t, r.AddConfigurationID("A"))
	require.True(t, r.AddConfigurationID("B"))

	r.SetConfigurationName("A", "First flight")
	r.SetConfigurationName("missing", "ignored")

	require.Len(t, r.Configurations, 2)
	assert.Equal(t, "First flight", r.Configurations[0].Name)
	assert.True(t, r.HasConfiguration("B"))
	assert.False(t, r.HasConfiguration("C"))
}

func TestEnumFromName(t *testing.T) {
	ev, ok := IgnitionEventFromName("ejectioncharge")
	require.True(t, ok)
	assert.Equal(t, IgnitionEjectionCharge, ev)

	de, ok := DeployEventFromName("LOWER_STAGE_SEPARATION")
	require.True(t, ok)
	assert.Equal(t, DeployLowerStageSeparation, de)

	_, ok = TransitionShapeFromName("dodecahedron")
	assert.False(t, ok)

	mt, ok := MotorTypeFromName("single")
	require.True(t, ok)
	assert.Equal(t, MotorTypeSingle, mt)
	_, ok = MotorTypeFromName("Single ")
	assert.False(t, ok, "motor type match is exact lowercase, untrimmed")
}

func TestClusterLayoutByName(t *testing.T) {
	l := ClusterLayoutByName("3-ring")
	require.NotNil(t, l)
	assert.Equal(t, 3, l.Count)

	assert.Nil(t, ClusterLayoutByName("3ring"), "cluster names match exactly")
}
