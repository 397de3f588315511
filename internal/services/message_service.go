package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/metrics"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/pagination"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/store"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/websocket"
)

// MessageServiceProvider defines the interface for board message services.
type MessageServiceProvider interface {
	Post(ctx context.Context, author, content string) (models.Message, error)
	ListPage(ctx context.Context, page int) (pagination.Page[models.Message], error)
}

// Publisher fans board events out to live subscribers.
type Publisher interface {
	Publish(action string, payload interface{}) error
}

// MessageService provides posting and paging of the shared board.
type MessageService struct {
	messages  store.MessageStore
	publisher Publisher
	metrics   metrics.Recorder
}

// NewMessageService creates a new MessageService. publisher may be nil.
func NewMessageService(messages store.MessageStore, publisher Publisher, rec metrics.Recorder) *MessageService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &MessageService{
		messages:  messages,
		publisher: publisher,
		metrics:   rec,
	}
}

// Post stores a message by author. Empty content is rejected before the
// store is touched.
func (s *MessageService) Post(ctx context.Context, author, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, models.NewValidationError("Message content is required")
	}

	msg, err := s.messages.Append(ctx, author, content)
	if err != nil {
		return models.Message{}, err
	}
	s.metrics.RecordMessagePosted()

	if s.publisher != nil {
		if err := s.publisher.Publish(websocket.ActionMessageCreated, msg); err != nil {
			log.Warn().Err(err).Int64("message_id", msg.ID).Msg("Failed to publish message to live feed")
		}
	}
	return msg, nil
}

// ListPage returns one page of the board, all authors included, in
// insertion order. An empty board is models.ErrNotFound; a page past the
// end of a non-empty board is an empty page.
func (s *MessageService) ListPage(ctx context.Context, page int) (pagination.Page[models.Message], error) {
	all, err := s.messages.ListAll(ctx)
	if err != nil {
		return pagination.Page[models.Message]{}, err
	}
	if len(all) == 0 {
		return pagination.Page[models.Message]{}, fmt.Errorf("no messages: %w", models.ErrNotFound)
	}
	return pagination.Paginate(all, page, pagination.DefaultPageSize), nil
}
