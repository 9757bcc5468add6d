package sim

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldsim/server/internal/geometry"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(DefaultConfig(), testLogger())
}

func stepSeconds(w *World, seconds float32) {
	dt := 1 / float32(w.Config().TickRate)
	for elapsed := float32(0); elapsed < seconds; elapsed += dt {
		w.Step(dt)
	}
}

func TestWorldStepMovesTowardWaypoint(t *testing.T) {
	w := testWorld(t)
	id := w.Spawn(geometry.Point{}, []geometry.Point{geometry.Pt(2, 0)}, false)

	w.Step(1 / float32(w.Config().TickRate))

	snaps := w.Snapshot()
	require.Len(t, snaps, 1)
	require.Equal(t, id.String(), snaps[0].ID)

	assert.Positive(t, snaps[0].Pos.X, "agent should move toward +X")
	assert.Zero(t, snaps[0].Pos.Y)
	assert.InDelta(t, w.Config().MaxSpeed, float64(snaps[0].Vel.Mag()), 1e-5)
}

func TestWorldAgentArrivesAndStops(t *testing.T) {
	w := testWorld(t)
	target := geometry.Pt(2, 0)
	w.Spawn(geometry.Point{}, []geometry.Point{target}, false)

	// 2 m at 2.2 m/s needs under a second; leave slack for the approach.
	stepSeconds(w, 3)

	snaps := w.Snapshot()
	require.Len(t, snaps, 1)
	assert.True(t, snaps[0].Pos.Near(target, w.Config().ArriveRadius))
	assert.Equal(t, geometry.Point{}, snaps[0].Vel, "finished agents stop")
}

func TestWorldContinuousAgentKeepsMoving(t *testing.T) {
	w := testWorld(t)
	w.Spawn(geometry.Point{}, []geometry.Point{
		geometry.Pt(1, 0),
		geometry.Pt(0, 1),
	}, true)

	stepSeconds(w, 5)

	snaps := w.Snapshot()
	require.Len(t, snaps, 1)
	assert.NotEqual(t, geometry.Point{}, snaps[0].Vel, "continuous routes never park")
}

func TestWorldClampsToBounds(t *testing.T) {
	w := testWorld(t)
	cfg := w.Config()
	w.Spawn(geometry.Point{}, []geometry.Point{geometry.Pt(100, 100)}, false)

	stepSeconds(w, 60)

	snaps := w.Snapshot()
	require.Len(t, snaps, 1)
	assert.LessOrEqual(t, snaps[0].Pos.X, cfg.Width/2)
	assert.LessOrEqual(t, snaps[0].Pos.Y, cfg.Height/2)
}

func TestWorldSnapshotIsACopy(t *testing.T) {
	w := testWorld(t)
	w.Spawn(geometry.Pt(1, 1), nil, false)

	snaps := w.Snapshot()
	require.Len(t, snaps, 1)
	snaps[0].Pos = geometry.Pt(-9, -9)

	again := w.Snapshot()
	assert.Equal(t, geometry.Pt(1, 1), again[0].Pos)
}

func TestWorldTickCounts(t *testing.T) {
	w := testWorld(t)
	require.Zero(t, w.Tick())
	w.Step(0.05)
	w.Step(0.05)
	assert.Equal(t, uint64(2), w.Tick())
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{Width: -1, TickRate: 0, MaxSpeed: 3}.Normalized()
	def := DefaultConfig()

	assert.Equal(t, def.Width, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, def.TickRate, cfg.TickRate)
	assert.Equal(t, float32(3), cfg.MaxSpeed)
	assert.Equal(t, def.ArriveRadius, cfg.ArriveRadius)
}
