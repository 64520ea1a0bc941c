package repositories

import (
	"context"

	"converse/internal/domain/models"
)

// ProfileRepository abstracts persistence for user profiles.
type ProfileRepository interface {
	// GetByUserID retrieves the profile for a user.
	// Returns (nil, nil) if no profile row exists yet - not an error.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)

	// Insert creates a profile row. Inserting an already-existing profile is
	// a no-op so concurrent lazy bootstraps never create more than one row.
	Insert(ctx context.Context, profile *models.Profile) error

	// Update persists the profile's mutable fields.
	// Returns domain.ErrNotFound if no row exists.
	Update(ctx context.Context, profile *models.Profile) error
}
