package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound frames for every client.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	done     chan struct{}
	stopOnce sync.Once
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
	}
}

// Run starts the Hub's message processing loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for client := range h.clients {
				close(client.Send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			log.Info().Str("client_id", client.ID).Str("username", client.Username).
				Int("total_clients", len(h.clients)).Msg("Client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Info().Str("client_id", client.ID).Int("total_clients", len(h.clients)).Msg("Client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// slow consumer
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Stop terminates Run and closes every client's send channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Register adds a client. It reports false once the hub is stopped, in
// which case the client is not tracked and its Send is never closed.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish encodes action/payload and broadcasts it to every client.
func (h *Hub) Publish(action string, payload interface{}) error {
	frame, err := Encode(action, payload)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- frame:
	case <-h.done:
	}
	return nil
}
