package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastSample_NoClients(t *testing.T) {
	m := NewWSManager()

	// Must be a no-op, never a panic or a block
	m.BroadcastSample(domain.NewDisconnectedSample(time.Now()))
}

func TestBroadcastSample_DeliveredToClient(t *testing.T) {
	m := NewWSManager()
	srv := httptest.NewServer(srvHandler(m))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the server a moment to register the client
	time.Sleep(50 * time.Millisecond)

	ssid := "HomeNet"
	sample := domain.Sample{
		Timestamp:    time.Now(),
		LinkState:    domain.LinkConnected,
		SSID:         &ssid,
		Reachability: domain.Reachable,
	}
	m.BroadcastSample(sample)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg WSMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "sample", msg.Type)

	payload, err := json.Marshal(msg.Payload)
	require.NoError(t, err)
	var got domain.Sample
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, domain.LinkConnected, got.LinkState)
	require.NotNil(t, got.SSID)
	assert.Equal(t, "HomeNet", *got.SSID)
}

func TestBroadcast_DropsClosedClient(t *testing.T) {
	m := NewWSManager()
	srv := httptest.NewServer(srvHandler(m))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	conn.Close()
	time.Sleep(50 * time.Millisecond)

	// Broadcasting to a gone client cleans it up instead of blocking
	m.BroadcastSample(domain.NewDisconnectedSample(time.Now()))
	m.BroadcastSample(domain.NewDisconnectedSample(time.Now()))

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.clients)
}

func TestBroadcastSample_DoesNotBlockOnSlowClient(t *testing.T) {
	m := NewWSManager()

	// A subscriber that never drains its queue: register a client with no
	// writer so its buffer fills immediately.
	slow := &wsClient{send: make(chan []byte, 1)}
	m.mu.Lock()
	m.clients[slow] = struct{}{}
	m.mu.Unlock()

	start := time.Now()
	for i := 0; i < 20; i++ {
		m.BroadcastSample(domain.NewDisconnectedSample(time.Now()))
	}
	elapsed := time.Since(start)

	// Overflow is dropped, the caller is never held up
	assert.Less(t, elapsed, 500*time.Millisecond, "broadcast must not wait on a slow client")
	assert.Len(t, slow.send, 1, "only the buffered message is retained")

	m.mu.Lock()
	_, stillRegistered := m.clients[slow]
	m.mu.Unlock()
	assert.True(t, stillRegistered, "a slow client loses messages, not its registration")
}

func srvHandler(m *WSManager) http.Handler {
	return http.HandlerFunc(m.HandleWebSocket)
}
