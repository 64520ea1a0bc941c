package repositories

import (
	"context"

	"converse/internal/domain/models"
)

// MessageRepository abstracts persistence for session messages.
// Ownership checks happen one level up (the caller must have resolved the
// session through an owner-scoped lookup first).
type MessageRepository interface {
	// Append inserts a new message and populates its generated ID and
	// creation timestamp. Messages are immutable once created.
	Append(ctx context.Context, message *models.Message) error

	// ListBySession retrieves all messages for a session, oldest first.
	ListBySession(ctx context.Context, sessionID string) ([]models.Message, error)

	// DeleteBySession removes all messages for a session. Runs inside the
	// session-delete transaction so no orphan messages survive.
	DeleteBySession(ctx context.Context, sessionID string) error
}
