package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/auth"
	ws "github.com/sindhujaReddy244/Hacking-Scl-Task/internal/websocket"
)

// WebSocketHandler handles upgrading HTTP connections to the live board feed.
type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler. Origins are checked
// by the CORS layer, so the upgrader accepts any origin.
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Serve handles the WebSocket connection request.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication token is missing")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn, username)

	// The greeting is flushed by WritePump, which starts after registration.
	if hello, err := ws.Encode(ws.ActionConnected, map[string]string{"client_id": client.ID}); err == nil {
		client.Send <- hello
	}
	if !h.hub.Register(client) {
		log.Warn().Str("client_id", client.ID).Msg("Websocket hub stopped, closing connection")
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
