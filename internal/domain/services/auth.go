package services

import "context"

// SessionAuthorizer checks whether a user may act on a session. Applied
// before listing a session's messages, deleting a session, and any other
// session-scoped mutation.
type SessionAuthorizer interface {
	// CanAccessSession returns nil if userID owns the session.
	// Returns domain.ErrNotFound when the session is absent or owned by
	// another user - the two cases are indistinguishable on purpose.
	CanAccessSession(ctx context.Context, userID, sessionID string) error
}
