package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// TokenVerifier validates a raw bearer token and returns its username.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type contextKey string

// UsernameKey is the context key for the authenticated username.
const UsernameKey = contextKey("username")

const bearerPrefix = "Bearer "

// Rejection reasons reported to the onReject callback.
const (
	ReasonMissing   = "missing"
	ReasonBadFormat = "bad_format"
	ReasonExpired   = "expired"
	ReasonInvalid   = "invalid"
)

// UsernameFromContext returns the username attached by JWTMiddleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok && username != ""
}

// WithUsername returns a copy of ctx carrying username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameKey, username)
}

// JWTMiddleware creates a middleware for protecting routes. It only looks at
// the Authorization header; it never reads any store. onReject, when not nil,
// is called with the reason of every rejected request.
func JWTMiddleware(tokens TokenVerifier, onReject func(reason string)) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, status int, reason, message string) {
		if onReject != nil {
			onReject(reason)
		}
		writeMessage(w, status, message)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				reject(w, http.StatusUnauthorized, ReasonMissing, "Authentication token is missing")
				return
			}

			tokenStr, found := strings.CutPrefix(authHeader, bearerPrefix)
			if !found {
				reject(w, http.StatusUnauthorized, ReasonBadFormat, "Invalid token format")
				return
			}

			username, err := tokens.Verify(tokenStr)
			switch {
			case errors.Is(err, ErrTokenExpired):
				reject(w, http.StatusUnauthorized, ReasonExpired, "Token has expired")
				return
			case err != nil:
				log.Debug().Err(err).Msg("Rejected bearer token")
				reject(w, http.StatusForbidden, ReasonInvalid, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
