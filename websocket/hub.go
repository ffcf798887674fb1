package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"waste-report-server/models"
)

// Hub fans complaint events out to every connected dashboard client
type Hub struct {
	clients map[*Client]bool

	// Broadcast carries encoded frames for all clients
	Broadcast chan []byte

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	done chan struct{}
	mu   sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's main loop and returns when ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Client registered: %s", client.RemoteAddr)

		case client := <-h.Unregister:
			h.remove(client)
			log.Printf("🔌 Client unregistered: %s", client.RemoteAddr)

		case frame := <-h.Broadcast:
			h.broadcast(frame)
		}
	}
}

// Publish encodes event and queues it for every client
func (h *Hub) Publish(ctx context.Context, event models.ComplaintEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return h.PublishRaw(ctx, data)
}

// PublishRaw queues an already encoded frame
func (h *Hub) PublishRaw(ctx context.Context, frame []byte) error {
	select {
	case h.Broadcast <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrHubStopped
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.Send <- frame:
		default:
			log.Printf("⚠️ Client %s send buffer is full, dropping connection", client.RemoteAddr)
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.Send)
		delete(h.clients, client)
	}
}
