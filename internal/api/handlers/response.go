package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "Internal server error"
)

// messageBody is the JSON shape of every non-payload response.
type messageBody struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageBody{Message: message})
}

// respondInternal logs err and answers with a generic 500.
func respondInternal(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	respondMessage(w, http.StatusInternalServerError, msgInternalError)
}

// respondValidation answers 400 with the client-safe message of a
// validation failure. It reports false if err is not one.
func respondValidation(w http.ResponseWriter, err error) bool {
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	respondMessage(w, http.StatusBadRequest, ve.Message)
	return true
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched so
// the missing fields are reported by validation instead.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
