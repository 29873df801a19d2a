package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Localhost diagnostic surface: allow same-origin only.
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		allowedOrigins := []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://[::1]:8080",
		}
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("WebSocket: Rejected origin: %s", origin)
		return false
	},
}

// sendBufferSize bounds the per-client backlog before messages are dropped.
const sendBufferSize = 16

// WSMessage is the envelope for all pushed messages.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// wsClient is one connected subscriber. Writes go through the buffered send
// channel and a dedicated writer goroutine, so a stalled connection never
// backs up into the broadcaster.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// WSManager pushes every appended sample to connected clients. Broadcasting
// only enqueues: a client whose buffer is full loses messages, and one whose
// connection stalls is dropped by its writer, so the sampling tick is never
// blocked.
type WSManager struct {
	clients map[*wsClient]struct{}
	mu      sync.Mutex
}

func NewWSManager() *WSManager {
	return &WSManager{
		clients: make(map[*wsClient]struct{}),
	}
}

// HandleWebSocket upgrades the connection and registers the client.
func (m *WSManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	m.mu.Lock()
	m.clients[client] = struct{}{}
	m.mu.Unlock()

	log.Printf("WebSocket connected: %s", conn.RemoteAddr())

	go m.writePump(client)
	go m.readPump(client)
}

// readPump drains reads until the client goes away.
func (m *WSManager) readPump(c *wsClient) {
	defer m.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			log.Printf("WebSocket disconnected: %s", c.conn.RemoteAddr())
			return
		}
	}
}

// writePump delivers queued messages to one client. A write failure or
// deadline drops the client without touching the broadcaster.
func (m *WSManager) writePump(c *wsClient) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			m.remove(c)
			return
		}
	}
}

// remove unregisters the client and closes its send channel exactly once.
func (m *WSManager) remove(c *wsClient) {
	m.mu.Lock()
	if _, ok := m.clients[c]; ok {
		delete(m.clients, c)
		close(c.send)
	}
	m.mu.Unlock()
	c.conn.Close()
}

// BroadcastSample pushes one sample to all connected clients.
func (m *WSManager) BroadcastSample(sample domain.Sample) {
	m.broadcastMessage(WSMessage{
		Type:    "sample",
		Payload: sample,
	})
}

func (m *WSManager) broadcastMessage(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for client := range m.clients {
		select {
		case client.send <- data:
		default:
			// Client buffer full; drop the message, never the caller.
		}
	}
}

// Ensure interface compliance
var _ ports.SampleBroadcaster = (*WSManager)(nil)
