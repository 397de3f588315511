package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver ("pgx")
	_ "modernc.org/sqlite"             // SQLite driver ("sqlite")
)

// Supported driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New creates a new database connection pool.
func New(ctx context.Context, driver, dsn string, opts Options) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		dsn = withSQLitePragmas(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// withSQLitePragmas makes every pooled sqlite connection wait on locks
// instead of failing with SQLITE_BUSY.
func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		username TEXT NOT NULL PRIMARY KEY,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS accounts (
		username TEXT NOT NULL PRIMARY KEY,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

// EnsureSchema creates the accounts and messages tables when they are absent.
// Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	var stmt string
	switch driver {
	case DriverPostgres:
		stmt = postgresSchema
	case DriverSQLite:
		stmt = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	_, err := db.ExecContext(ctx, stmt)
	return err
}
