package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
)

// MessageStore appends and lists board messages.
type MessageStore interface {
	Append(ctx context.Context, author, content string) (models.Message, error)
	ListAll(ctx context.Context) ([]models.Message, error)
	Count(ctx context.Context) (int, error)
}

// SQLMessageStore is a MessageStore backed by the messages table.
type SQLMessageStore struct {
	db  DBTX
	now func() time.Time
}

// NewSQLMessageStore creates a new SQLMessageStore.
func NewSQLMessageStore(db DBTX) *SQLMessageStore {
	return &SQLMessageStore{db: db, now: time.Now}
}

// Append stores a message stamped with the current server time.
func (s *SQLMessageStore) Append(ctx context.Context, author, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, models.NewValidationError("Message content is required")
	}

	msg := models.Message{
		Username:  author,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO messages (username, content, created_at) VALUES ($1, $2, $3) RETURNING id`,
		msg.Username, msg.Content, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return models.Message{}, fmt.Errorf("db error: %w", err)
	}
	return msg, nil
}

// ListAll returns every message of every author in insertion order.
func (s *SQLMessageStore) ListAll(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, content, created_at FROM messages ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Username, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return messages, nil
}

// Count returns the number of stored messages.
func (s *SQLMessageStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
