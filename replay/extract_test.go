package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raniellyferreira/marble-replay/curve"
	"github.com/raniellyferreira/marble-replay/internal/fixture"
	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/replay"
)

func decodeLevel(t *testing.T, rws ...fixture.Rewindable) *replay.Buffer {
	t.Helper()
	buf, err := replay.Decode(fixture.BufferBytes(1, 1, fixture.Payload(protocol.StringFixed32, rws...)))
	require.NoError(t, err)
	return buf
}

func names(rws []replay.Rewindable) []string {
	out := make([]string, 0, len(rws))
	for _, rw := range rws {
		out = append(out, rw.GameObjectName)
	}
	return out
}

func TestMarbleMissing(t *testing.T) {
	buf := decodeLevel(t, fixture.Powerup("Gem_1"))

	_, err := buf.Marble()
	require.ErrorIs(t, err, replay.ErrNoMarbleController)
	assert.Len(t, buf.Rewindables, 1)
}

func TestMarbleRemovesIt(t *testing.T) {
	buf := decodeLevel(t, fixture.Level()...)

	m, err := buf.Marble()
	require.NoError(t, err)
	assert.Equal(t, replay.TypeMarbleController, m.TypeName)
	assert.Equal(t, []string{"Gem_1", "Bumper_1", "Gem_2", "Elevator_1"}, names(buf.Rewindables))
	assert.Equal(t, int32(5), buf.RewindableCount, "declared count is kept")

	_, err = buf.Marble()
	assert.ErrorIs(t, err, replay.ErrNoMarbleController)
}

func TestMarbleFirstMatchWins(t *testing.T) {
	second := fixture.Marble()
	second.GameObjectName = "Ghost"
	buf := decodeLevel(t, fixture.Marble(), second)

	m, err := buf.Marble()
	require.NoError(t, err)
	assert.Equal(t, "Marble", m.GameObjectName)
	assert.Equal(t, []string{"Ghost"}, names(buf.Rewindables))
}

func TestExtractPreservesOrder(t *testing.T) {
	buf := decodeLevel(t, fixture.Level()...)

	powerups := buf.Powerups()
	require.Len(t, powerups, 2)
	assert.Equal(t, "Gem_1", powerups[0].GameObjectName)
	assert.Equal(t, "Gem_2", powerups[1].GameObjectName)
	assert.Equal(t, []string{"Marble", "Bumper_1", "Elevator_1"}, names(buf.Rewindables))

	bumpers := buf.Bumpers()
	require.Len(t, bumpers, 1)
	assert.Equal(t, []string{"Marble", "Elevator_1"}, names(buf.Rewindables))

	elevators := buf.Elevators()
	require.Len(t, elevators, 1)
	assert.Equal(t, []string{"Marble"}, names(buf.Rewindables))

	assert.Empty(t, buf.Powerups())
	assert.NotNil(t, buf.Bumpers())
	assert.Empty(t, buf.Elevators())
}

func TestTypeCounts(t *testing.T) {
	buf := decodeLevel(t, fixture.Level()...)

	assert.Equal(t, map[string]int{
		replay.TypePowerup:          2,
		replay.TypeMarbleController: 1,
		replay.TypeBumperController: 1,
		replay.TypeElevatorMover:    1,
	}, buf.TypeCounts())

	buf.Extract(replay.TypePowerup)
	assert.NotContains(t, buf.TypeCounts(), replay.TypePowerup)
}

func TestMarbleAccessors(t *testing.T) {
	buf := decodeLevel(t, fixture.Level()...)
	m, err := buf.Marble()
	require.NoError(t, err)

	ticks, err := m.StartingRemainingTicks()
	require.NoError(t, err)
	assert.Equal(t, []int32{6000, 5999}, ticks.Curve.Values.Slice())

	qw, err := m.QW()
	require.NoError(t, err)
	assert.Equal(t, curve.Quaternion{Y: 0.5, W: 0.5}, qw.Curve.Values.Slice()[1])

	state, err := m.EffectState()
	require.NoError(t, err)
	require.Len(t, state.Curves, 2)
	assert.False(t, state.Interpolated)
	assert.False(t, state.Curves[0].Interpolated)

	effectTicks, err := m.EffectTicks()
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 9}, effectTicks.Curves[0].Curve.Values.Slice())

	gems, err := m.CollectedGems()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1}, gems.Curve.Values.Slice())

	bounce, err := m.DoneFirstBounce()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, bounce.Curve.Values.Slice())

	accessors := []func() error{
		func() error { _, err := m.Mode(); return err },
		func() error { _, err := m.InvokableEffectID(); return err },
		func() error { _, err := m.InvokableSourceID(); return err },
		func() error { _, err := m.GravityQuat(); return err },
		func() error { _, err := m.Position(); return err },
		func() error { _, err := m.Velocity(); return err },
		func() error { _, err := m.Omega(); return err },
		func() error { _, err := m.BonusTime(); return err },
		func() error { _, err := m.TimeSinceContact(); return err },
		func() error { _, err := m.BestContactNormal(); return err },
		func() error { _, err := m.BestContactSurfaceVelocity(); return err },
		func() error { _, err := m.ElapsedTime(); return err },
		func() error { _, err := m.MegaMarbleSizeScale(); return err },
		func() error { _, err := m.BlastCooldown(); return err },
		func() error { _, err := m.RespawnCounter(); return err },
	}
	for i, get := range accessors {
		assert.NoError(t, get(), "accessor %d", i)
	}
}

func TestObjectAccessors(t *testing.T) {
	buf := decodeLevel(t, fixture.Level()...)

	p := buf.Powerups()[0]
	avail, err := p.AvailableForPickup()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, avail.Curve.Values.Slice())
	points, err := p.PointValue()
	require.NoError(t, err)
	assert.Equal(t, []uint16{100}, points.Curve.Values.Slice())

	b := buf.Bumpers()[0]
	strike, err := b.StrikeTimeLeft()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0.25}, strike.Curve.Values.Slice())

	e := buf.Elevators()[0]
	tt, err := e.T()
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, tt.Curve.Values.Slice())
	_, err = e.Collapsing()
	assert.NoError(t, err)
	_, err = e.StopTime()
	assert.NoError(t, err)
	_, err = e.EnableBob()
	assert.NoError(t, err)
	global, err := e.GlobalTime()
	require.NoError(t, err)
	assert.Equal(t, []int32{100, 101}, global.Curve.Values.Slice())
}

func TestAccessorErrors(t *testing.T) {
	odd := fixture.Rewindable{
		GameObjectName: "Marble",
		TypeName:       replay.TypeMarbleController,
		Fields: []fixture.Field{
			fixture.Float(0, "Position", 1, 2),
		},
	}
	buf := decodeLevel(t, odd)
	m, err := buf.Marble()
	require.NoError(t, err)

	_, err = m.Velocity()
	require.ErrorIs(t, err, curve.ErrMissingField)
	assert.Equal(t, "Velocity field is missing from the rewindable", err.Error())

	_, err = m.Position()
	require.ErrorIs(t, err, curve.ErrMismatchedCurveType)
	var mismatch *curve.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, curve.TypeVector3, mismatch.Expected)
	assert.Equal(t, curve.TypeFloat, mismatch.Found)

	f, err := m.Field("Position")
	require.NoError(t, err)
	assert.Equal(t, curve.TypeFloat, f.Type)
}
