// internal/logger/logger.go
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. In production the output is
// plain JSON; otherwise a colorized console writer is used.
func Init(level string, production bool) {
	InitWithWriter(os.Stderr, level, production)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer, level string, production bool) {
	if production {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		// Use ConsoleWriter for human-readable, colorized output in development
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	// Add a hook to include the caller's file and line number
	log.Logger = log.With().Caller().Logger()
}
