package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned when no JWT signing secret is configured.
var ErrMissingSecret = errors.New("JWT_SECRET must be set")

// Config holds the application configuration.
type Config struct {
	ServerPort int
	AppEnv     string
	LogLevel   string

	DatabaseDriver string // "pgx" or "sqlite"
	DatabaseURL    string
	MaxOpenConns   int
	MaxIdleConns   int

	JWTSecret string
	TokenTTL  time.Duration

	CORSAllowedOrigins []string
	StatsSchedule      string // cron spec for the board stats job
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load loads configuration from environment variables or sets defaults.
// A .env file in the working directory is read first if present; variables
// already set in the process environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := getEnvAsInt("PORT", 3002)
	if err != nil {
		return nil, err
	}
	maxOpen, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "11h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		ServerPort:         port,
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseDriver:     getEnv("DB_DRIVER", "pgx"),
		MaxOpenConns:       maxOpen,
		MaxIdleConns:       maxIdle,
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           ttl,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		StatsSchedule:      getEnv("STATS_SCHEDULE", "@every 1m"),
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL(cfg.DatabaseDriver)
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

// defaultDatabaseURL builds the DSN from the discrete DB_* variables.
func defaultDatabaseURL(driver string) string {
	if driver == "sqlite" {
		return getEnv("DB_DATABASE", "./board.db")
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "postgres")),
		Host:     net.JoinHostPort(getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:     "/" + getEnv("DB_DATABASE", "board"),
		RawQuery: "sslmode=" + getEnv("DB_SSLMODE", "disable"),
	}
	return u.String()
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
