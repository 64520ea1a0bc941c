package repositories

import (
	"context"

	"converse/internal/domain/models"
)

// SessionRepository abstracts persistence for chat sessions.
//
// Read and delete operations are owner-scoped: a session that exists but
// belongs to another user is reported as domain.ErrNotFound, identical to a
// session that does not exist.
type SessionRepository interface {
	// Create inserts a new session and populates its generated ID and
	// creation timestamp.
	Create(ctx context.Context, session *models.Session) error

	// GetByID retrieves a session owned by userID.
	// Returns domain.ErrNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, sessionID, userID string) (*models.Session, error)

	// ListByOwner retrieves all sessions for a user, most recently created first.
	ListByOwner(ctx context.Context, userID string) ([]models.Session, error)

	// Delete removes a session owned by userID.
	// Returns domain.ErrNotFound if absent or owned by someone else.
	Delete(ctx context.Context, sessionID, userID string) error
}
