package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
)

// AccountStore persists username/password-hash pairs.
type AccountStore interface {
	Create(ctx context.Context, username, passwordHash string) error
	Exists(ctx context.Context, username string) (bool, error)
	Find(ctx context.Context, username string) (models.Account, error)
}

// SQLAccountStore is an AccountStore backed by the accounts table.
type SQLAccountStore struct {
	db DBTX
}

// NewSQLAccountStore creates a new SQLAccountStore.
func NewSQLAccountStore(db DBTX) *SQLAccountStore {
	return &SQLAccountStore{db: db}
}

// Create inserts a new account. Uniqueness is enforced by the table's key,
// so two racing inserts for the same username yield exactly one
// models.ErrConflict.
func (s *SQLAccountStore) Create(ctx context.Context, username, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (username, password) VALUES ($1, $2)`,
		username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account %q: %w", username, models.ErrConflict)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Exists reports whether an account with the given username is stored.
func (s *SQLAccountStore) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Find returns the stored account including its password hash.
func (s *SQLAccountStore) Find(ctx context.Context, username string) (models.Account, error) {
	var acc models.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password FROM accounts WHERE username = $1`,
		username).Scan(&acc.Username, &acc.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, models.ErrNotFound
		}
		return models.Account{}, fmt.Errorf("db error: %w", err)
	}
	return acc, nil
}
