package services

import (
	"context"

	"converse/internal/domain/models"
)

// ChatService defines the business logic for the chat request lifecycle and
// session management.
type ChatService interface {
	// SubmitMessage runs one chat turn: resolve or create the session,
	// persist the user message, invoke the model, persist the assistant
	// message, and return the reply. The user message is never rolled back
	// when a later step fails.
	SubmitMessage(ctx context.Context, req *SubmitMessageRequest) (*SubmitMessageResponse, error)

	// ListSessions retrieves the caller's sessions, newest first.
	ListSessions(ctx context.Context, userID string) ([]models.Session, error)

	// ListMessages retrieves a session's messages oldest first.
	// Returns domain.ErrNotFound if the session is absent or not owned by userID.
	ListMessages(ctx context.Context, sessionID, userID string) ([]models.Message, error)

	// DeleteSession removes a session and all of its messages.
	// Returns domain.ErrNotFound if the session is absent or not owned by userID.
	DeleteSession(ctx context.Context, sessionID, userID string) error
}

// SubmitMessageRequest is the input for one chat turn.
// UserID is filled from the verified token, never from the request body.
type SubmitMessageRequest struct {
	UserID    string  `json:"-"`
	SessionID *string `json:"session_id"`
	Message   string  `json:"message"`
}

// SubmitMessageResponse is the result of one chat turn.
type SubmitMessageResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}
