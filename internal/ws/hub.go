package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// client is a socket subscribed to one store's events.
type client struct {
	conn    *websocket.Conn
	ownerID string
}

// Message is a broadcast scoped to a single store. Only sockets subscribed
// to that OwnerID receive the payload.
type Message struct {
	OwnerID string
	Payload []byte
}

type Hub struct {
	clients    map[*websocket.Conn]*client
	Register   chan *Subscription
	Unregister chan *websocket.Conn
	Broadcast  chan Message
	mutex      sync.Mutex
}

// Subscription binds a new socket to a store.
type Subscription struct {
	Conn    *websocket.Conn
	OwnerID string
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*client),
		Register:   make(chan *Subscription),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan Message),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.Register:
			h.mutex.Lock()
			h.clients[sub.Conn] = &client{conn: sub.Conn, ownerID: sub.OwnerID}
			h.mutex.Unlock()
			zap.L().Debug("ws client connected", zap.String("owner_id", sub.OwnerID))

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case msg := <-h.Broadcast:
			h.mutex.Lock()
			for conn, c := range h.clients {
				if c.ownerID != msg.OwnerID {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg.Payload); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
