package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/auth"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/metrics"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/store"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// AccountService provides signup and login.
type AccountService struct {
	accounts store.AccountStore
	hasher   auth.PasswordHasher
	tokens   TokenIssuer
	metrics  metrics.Recorder
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts store.AccountStore, hasher auth.PasswordHasher, tokens TokenIssuer, rec metrics.Recorder) *AccountService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &AccountService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		metrics:  rec,
	}
}

// Signup creates an account with a hashed password. A taken username
// yields models.ErrConflict, even when two signups race past the
// existence check.
func (s *AccountService) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return models.NewValidationError("Username and password are required")
	}
	if len(password) > auth.MaxPasswordBytes {
		return models.NewValidationError(fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes))
	}

	exists, err := s.accounts.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if exists {
		return fmt.Errorf("account %q: %w", username, models.ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.accounts.Create(ctx, username, hash); err != nil {
		return err
	}

	s.metrics.RecordSignup()
	log.Info().Str("username", username).Msg("Account created")
	return nil
}

// Login checks the credentials and returns a fresh session token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", models.NewValidationError("Username and password are required")
	}

	acc, err := s.accounts.Find(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.metrics.RecordLogin(metrics.LoginUnknownUser)
			return "", models.ErrInvalidCredentials
		}
		s.metrics.RecordLogin(metrics.LoginError)
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	ok, err := s.hasher.Verify(password, acc.PasswordHash)
	if err != nil {
		s.metrics.RecordLogin(metrics.LoginError)
		return "", err
	}
	if !ok {
		s.metrics.RecordLogin(metrics.LoginWrongPassword)
		return "", models.ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(acc.Username)
	if err != nil {
		s.metrics.RecordLogin(metrics.LoginError)
		return "", err
	}

	s.metrics.RecordLogin(metrics.LoginSuccess)
	return token, nil
}
