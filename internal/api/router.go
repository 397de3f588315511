package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/api/handlers"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/auth"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/metrics"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/services"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/websocket"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Accounts       services.AccountServiceProvider
	Messages       services.MessageServiceProvider
	Tokens         auth.TokenVerifier
	Hub            *websocket.Hub
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
	AllowedOrigins []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	rec := deps.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}

	accountHandler := handlers.NewAccountHandler(deps.Accounts)
	messageHandler := handlers.NewMessageHandler(deps.Messages)

	r.Get("/welcome", accountHandler.Welcome)
	r.Post("/signup", accountHandler.Signup)
	r.Post("/login", accountHandler.Login)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware(deps.Tokens, rec.RecordAuthRejection))

		r.Get("/home", messageHandler.Home)
		r.Post("/message", messageHandler.Post)
		if deps.Hub != nil {
			r.Get("/ws", handlers.NewWebSocketHandler(deps.Hub).Serve)
		}
	})

	return r
}
