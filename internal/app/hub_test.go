package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldsim/server/internal/geometry"
	"fieldsim/server/internal/sim"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubJoinAndBroadcast(t *testing.T) {
	world := sim.NewWorld(sim.DefaultConfig(), discardLogger())
	world.Spawn(geometry.Pt(1, 2), nil, false)
	hub := NewHub(world, discardLogger())

	conn := dialHub(t, hub)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var join joinMessage
	require.NoError(t, conn.ReadJSON(&join))
	assert.Equal(t, "join", join.Type)
	assert.NotEmpty(t, join.ID)
	assert.Equal(t, float32(9), join.Field.Width)
	require.Len(t, join.Agents, 1)
	assert.Equal(t, float32(1), join.Agents[0].Pos.X)
	assert.Equal(t, float32(2), join.Agents[0].Pos.Y)

	hub.broadcastState()

	var state stateMessage
	require.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, "state", state.Type)
	require.Len(t, state.Agents, 1)
	assert.Equal(t, join.Agents[0].Pos, state.Agents[0].Pos)
}

func TestHubDropsClosedSubscribers(t *testing.T) {
	world := sim.NewWorld(sim.DefaultConfig(), discardLogger())
	hub := NewHub(world, discardLogger())

	conn := dialHub(t, hub)

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.SubscriberCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}
