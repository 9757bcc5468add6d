package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"fieldsim/server/internal/sim"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) writeJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

// Hub drives the simulation loop and fans world snapshots out to websocket
// subscribers.
type Hub struct {
	world  *sim.World
	log    logrus.FieldLogger
	mu     sync.Mutex
	subs   map[string]*subscriber
	nextID atomic.Uint64
}

// NewHub wraps a world for broadcasting.
func NewHub(world *sim.World, log logrus.FieldLogger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		world: world,
		log:   log,
		subs:  make(map[string]*subscriber),
	}
}

// RunSimulation steps the world at its tick rate and broadcasts each state
// until stop is closed.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	interval := time.Second / time.Duration(h.world.Config().TickRate)
	dt := float32(interval.Seconds())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.world.Step(dt)
			h.broadcastState()
		}
	}
}

// HandleWS upgrades the connection, sends the join snapshot, and keeps the
// subscription until the client goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	id := fmt.Sprintf("viewer-%d", h.nextID.Add(1))
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subs[id] = sub
	h.mu.Unlock()

	h.log.WithField("subscriber", id).Info("subscriber joined")

	cfg := h.world.Config()
	join := joinMessage{
		Type:       "join",
		ID:         id,
		Field:      fieldPayload{Width: cfg.Width, Height: cfg.Height},
		Agents:     agentPayloads(h.world.Snapshot()),
		ServerTime: time.Now().UnixMilli(),
	}
	if err := sub.writeJSON(join); err != nil {
		h.drop(id)
		return
	}

	// Viewers send nothing meaningful; the read loop only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(id)
			return
		}
	}
}

func (h *Hub) broadcastState() {
	msg := stateMessage{
		Type:       "state",
		Tick:       h.world.Tick(),
		Agents:     agentPayloads(h.world.Snapshot()),
		ServerTime: time.Now().UnixMilli(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal state message")
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subs))
	for id, sub := range h.subs {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		sub.mu.Lock()
		err := sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err == nil {
			err = sub.conn.WriteMessage(websocket.TextMessage, payload)
		}
		sub.mu.Unlock()
		if err != nil {
			h.log.WithField("subscriber", id).WithError(err).Info("dropping subscriber")
			h.drop(id)
		}
	}
}

func (h *Hub) drop(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	h.mu.Unlock()

	if ok {
		_ = sub.conn.Close()
		h.log.WithField("subscriber", id).Info("subscriber left")
	}
}

// SubscriberCount reports the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
