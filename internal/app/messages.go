package app

import (
	"fieldsim/server/internal/sim"
	"fieldsim/server/internal/wire"
)

type agentPayload struct {
	ID  string     `json:"id"`
	Pos wire.Point `json:"pos"`
	Vel wire.Point `json:"vel"`
}

type fieldPayload struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// joinMessage is the first frame a subscriber receives: its id plus a full
// snapshot of the world.
type joinMessage struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Field      fieldPayload   `json:"field"`
	Agents     []agentPayload `json:"agents"`
	ServerTime int64          `json:"serverTime"`
}

// stateMessage is broadcast every tick to all subscribers.
type stateMessage struct {
	Type       string         `json:"type"`
	Tick       uint64         `json:"t"`
	Agents     []agentPayload `json:"agents"`
	ServerTime int64          `json:"serverTime"`
}

func agentPayloads(snaps []sim.Snapshot) []agentPayload {
	out := make([]agentPayload, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, agentPayload{
			ID:  snap.ID,
			Pos: snap.Pos.Wire(),
			Vel: snap.Vel.Wire(),
		})
	}
	return out
}
