package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/services"
)

// AccountHandler handles HTTP requests for signup and login.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// CredentialsPayload defines the structure for signup and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Welcome is the unauthenticated liveness greeting.
func (h *AccountHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("welcome to node"))
}

// Signup handles new account registration.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.service.Signup(r.Context(), payload.Username, payload.Password)
	switch {
	case err == nil:
		respondMessage(w, http.StatusCreated, "Registration successful")
	case respondValidation(w, err):
	case errors.Is(err, models.ErrConflict):
		log.Info().Str("username", payload.Username).Msg("Signup for taken username")
		respondMessage(w, http.StatusBadRequest, "Username already exists")
	default:
		respondInternal(w, r, err, "Failed to register account")
	}
}

// Login handles credential checks and token issuance.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := decodeJSON(r, &payload); err != nil {
		respondMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	case respondValidation(w, err):
	case errors.Is(err, models.ErrInvalidCredentials):
		log.Warn().Str("username", payload.Username).Msg("Login for unknown account")
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrIncorrectPassword):
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respondMessage(w, http.StatusUnauthorized, "Password Incorrect")
	default:
		respondInternal(w, r, err, "Failed to log in")
	}
}
