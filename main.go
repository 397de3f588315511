package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/api"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/auth"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/config"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/database"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/logger"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/metrics"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/monitoring"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/services"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/store"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel, cfg.IsProduction())

	// Set up database
	ctx := context.Background()
	db, err := database.New(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db, cfg.DatabaseDriver); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	accountStore := store.NewSQLAccountStore(db)
	messageStore := store.NewSQLMessageStore(db)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)

	accountService := services.NewAccountService(accountStore, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, collector)
	messageService := services.NewMessageService(messageStore, hub, collector)

	// Set up and run the board statistics job
	boardStats, err := monitoring.NewBoardStats(messageStore, collector, cfg.StatsSchedule)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.StatsSchedule).Msg("Failed to set up board statistics")
	}
	boardStats.Start()

	// Set up router
	router := api.NewRouter(api.Dependencies{
		Accounts:       accountService,
		Messages:       messageService,
		Tokens:         tokens,
		Hub:            hub,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("env", cfg.AppEnv).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	boardStats.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("Server exiting")
}
