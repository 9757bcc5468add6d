// Package sim owns the simulated world: agents that run waypoint sequences
// across a bounded field at a fixed tick rate.
package sim

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fieldsim/server/internal/geometry"
	"fieldsim/server/internal/motion"
)

// Agent is a single moving body on the field.
type Agent struct {
	ID  uuid.UUID
	Pos geometry.Point
	Vel geometry.Point

	seq *motion.Sequence
}

// Snapshot is an agent copy safe to hand to other goroutines.
type Snapshot struct {
	ID  string
	Pos geometry.Point
	Vel geometry.Point
}

// World advances every agent along its sequence. All methods are safe for
// concurrent use.
type World struct {
	mu     sync.Mutex
	cfg    Config
	agents map[uuid.UUID]*Agent
	order  []uuid.UUID
	tick   uint64
	log    logrus.FieldLogger
}

// NewWorld creates an empty world with the given config.
func NewWorld(cfg Config, log logrus.FieldLogger) *World {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &World{
		cfg:    cfg.Normalized(),
		agents: make(map[uuid.UUID]*Agent),
		log:    log,
	}
}

// Config returns the world's normalized configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Spawn adds an agent at start following the given waypoints and returns its
// id. Continuous agents restart their route after the last waypoint.
func (w *World) Spawn(start geometry.Point, waypoints []geometry.Point, continuous bool) uuid.UUID {
	id := uuid.New()
	agent := &Agent{
		ID:  id,
		Pos: start,
		seq: motion.NewSequence(waypoints, w.cfg.ArriveRadius, continuous),
	}

	w.mu.Lock()
	w.agents[id] = agent
	w.order = append(w.order, id)
	w.mu.Unlock()

	w.log.WithFields(logrus.Fields{
		"agent":     id,
		"waypoints": len(waypoints),
		"start":     start,
	}).Info("agent spawned")

	return id
}

// Step advances the world by dt seconds.
func (w *World) Step(dt float32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.tick++
	for _, id := range w.order {
		agent := w.agents[id]
		if agent.seq.Observe(agent.Pos) {
			w.log.WithField("agent", agent.ID).Info("sequence complete")
		}

		target, ok := agent.seq.Target()
		if !ok {
			agent.Vel = geometry.Point{}
			continue
		}

		agent.Vel = motion.Steer(agent.Pos, target, w.cfg.MaxSpeed, dt)
		agent.Pos.AddInPlace(agent.Vel.Mul(dt))
		agent.Pos.X = clamp(agent.Pos.X, -w.cfg.Width/2, w.cfg.Width/2)
		agent.Pos.Y = clamp(agent.Pos.Y, -w.cfg.Height/2, w.cfg.Height/2)
	}
}

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// Snapshot copies the current agent states in spawn order.
func (w *World) Snapshot() []Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Snapshot, 0, len(w.order))
	for _, id := range w.order {
		agent := w.agents[id]
		out = append(out, Snapshot{
			ID:  agent.ID.String(),
			Pos: agent.Pos,
			Vel: agent.Vel,
		})
	}
	return out
}

// clamp limits value to the range [min, max].
func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
