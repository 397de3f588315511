package models

import "time"

// Message is a single post on the shared board.
type Message struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"` // author
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
