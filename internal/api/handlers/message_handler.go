package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/auth"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/services"
)

// MessageHandler handles HTTP requests for the board.
type MessageHandler struct {
	service services.MessageServiceProvider
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider) *MessageHandler {
	return &MessageHandler{service: service}
}

// MessagePayload defines the structure for posting a message.
type MessagePayload struct {
	Content string `json:"content"`
}

// HomeResponse is one page of the board.
type HomeResponse struct {
	Messages []models.Message `json:"messages"`
	HasMore  bool             `json:"hasMore"`
}

// Home returns the requested page of messages (?page=N, default 1).
func (h *MessageHandler) Home(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication token is missing")
		return
	}

	page, err := parsePage(r.URL.Query().Get("page"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Page must be a positive integer")
		return
	}

	result, err := h.service.ListPage(r.Context(), page)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "No messages found")
			return
		}
		respondInternal(w, r, err, "Failed to list messages")
		return
	}

	log.Debug().Str("username", username).Int("page", page).Int("count", len(result.Items)).Msg("Served board page")

	messages := result.Items
	if messages == nil {
		messages = []models.Message{}
	}
	respondJSON(w, http.StatusOK, HomeResponse{Messages: messages, HasMore: result.HasMore})
}

// Post stores a message authored by the authenticated user.
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication token is missing")
		return
	}

	var payload MessagePayload
	if err := decodeJSON(r, &payload); err != nil {
		respondMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	_, err := h.service.Post(r.Context(), username, payload.Content)
	switch {
	case err == nil:
		respondMessage(w, http.StatusCreated, "Message submitted successfully")
	case respondValidation(w, err):
	default:
		respondInternal(w, r, err, "Failed to save message")
	}
}

// parsePage reads the page query value. Absent means 1; anything that is
// not a positive integer is an error.
func parsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if page < 1 {
		return 0, errors.New("page must be positive")
	}
	return page, nil
}
