package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"fixuBack/internal/models"
)

const (
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
	readDeadline  = 120 * time.Second
)

type wsClient struct {
	userID string
	conn   *websocket.Conn
}

type wsUnreg struct {
	userID string
	conn   *websocket.Conn
}

// ProgressHub fans progress events out to the owning user's websocket
// connections.
type ProgressHub struct {
	clients    map[string]*websocket.Conn
	events     chan models.ProgressEvent
	register   chan wsClient
	unregister chan wsUnreg
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{
		clients:    make(map[string]*websocket.Conn),
		events:     make(chan models.ProgressEvent, 64),
		register:   make(chan wsClient),
		unregister: make(chan wsUnreg),
	}
}

// Publish implements services.EventPublisher. Events for users without an
// open connection are dropped.
func (h *ProgressHub) Publish(event models.ProgressEvent) {
	select {
	case h.events <- event:
	default:
	}
}

func (h *ProgressHub) Run() {
	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.userID]; ok {
				old.Close()
			}
			h.clients[client.userID] = client.conn
		case unreg := <-h.unregister:
			if conn, ok := h.clients[unreg.userID]; ok && conn == unreg.conn {
				conn.Close()
				delete(h.clients, unreg.userID)
			}
		case event := <-h.events:
			conn, ok := h.clients[event.UserID]
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteJSON(event); err != nil {
				conn.Close()
				delete(h.clients, event.UserID)
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleProgressWS upgrades the connection and parks it on the hub until the
// peer goes away.
func (app *application) handleProgressWS(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyUserID).(string)
	if !ok || userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("ws upgrade: %v", err)
		return
	}

	app.progressHub.register <- wsClient{userID: userID, conn: conn}

	go func() {
		defer func() {
			app.progressHub.unregister <- wsUnreg{userID: userID, conn: conn}
		}()
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(readDeadline))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for range ticker.C {
			conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()
}
