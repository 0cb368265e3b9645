package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"patika/internal/sim"
)

const maxWSConnections = 200

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// snapshotHub fans the latest published sim.Snapshot out to any number of
// WebSocket readers, grounded on internal/api/websocket.go's WebSocketHub.
type snapshotHub struct {
	clients   map[*websocket.Conn]struct{}
	broadcast chan sim.Snapshot
	register  chan *websocket.Conn
	unregister chan *websocket.Conn
	mu        sync.RWMutex
}

func newSnapshotHub() *snapshotHub {
	return &snapshotHub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan sim.Snapshot, 8),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *snapshotHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if len(h.clients) >= maxWSConnections {
				h.mu.Unlock()
				conn.Close()
				continue
			}
			h.clients[conn] = struct{}{}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()

		case snap := <-h.broadcast:
			payload, err := json.Marshal(snap)
			if err != nil {
				log.Printf("patikademo: marshal snapshot: %v", err)
				continue
			}
			h.mu.RLock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					go func(c *websocket.Conn) { h.unregister <- c }(conn)
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *snapshotHub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("patikademo: websocket upgrade: %v", err)
		return
	}
	h.register <- conn

	// Drain and discard any client-sent frames; this hub is publish-only.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
