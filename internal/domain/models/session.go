package models

import "time"

// Message roles. Messages are created in strict pairs per turn: a user
// message is persisted before the model call, an assistant message after.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session represents a persisted conversation thread owned by exactly one user.
// Ownership is immutable after creation.
type Session struct {
	ID        string    `json:"session_id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Message represents a single utterance within a session. Messages are
// immutable once created and ordered by creation time.
type Message struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"-" db:"session_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
