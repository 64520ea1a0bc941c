package auth

import (
	"context"
	"errors"
	"fmt"

	"converse/internal/domain"
	"converse/internal/domain/repositories"
	"converse/internal/domain/services"
)

// OwnerAuthorizer implements SessionAuthorizer using ownership checks.
// A user can act on a session only if they own it.
//
// This is the simplest authorization model. For future extensibility:
// - RoleBasedAuthorizer: check the user's role on a shared session
// - SharingAuthorizer: check if a session is shared with the user
type OwnerAuthorizer struct {
	sessionRepo repositories.SessionRepository
}

// NewOwnerAuthorizer creates a new ownership-based authorizer
func NewOwnerAuthorizer(sessionRepo repositories.SessionRepository) services.SessionAuthorizer {
	return &OwnerAuthorizer{sessionRepo: sessionRepo}
}

// CanAccessSession checks if the user owns the session.
//
// SessionRepository.GetByID already filters by userID, so a session owned by
// another user reports domain.ErrNotFound exactly like a missing one. The
// error is passed through unchanged to keep the two cases indistinguishable
// to callers.
func (a *OwnerAuthorizer) CanAccessSession(ctx context.Context, userID, sessionID string) error {
	_, err := a.sessionRepo.GetByID(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("check session access: %w", err)
	}
	return nil
}
