package services

import (
	"context"

	"converse/internal/domain/models"
	"converse/internal/httputil"
)

// ProfileService defines the business logic for user profile operations.
type ProfileService interface {
	// GetProfile retrieves the caller's profile, creating a default empty
	// row on first access.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// UpdateProfile applies only the supplied fields. Like the read path it
	// bootstraps a default row when none exists yet.
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.Profile, error)
}

// UpdateProfileRequest carries the partial-update fields for a profile.
// OptionalString distinguishes "absent" (leave unchanged) from JSON null
// (clear the field).
type UpdateProfileRequest struct {
	FullName    httputil.OptionalString `json:"full_name"`
	DisplayName httputil.OptionalString `json:"display_name"`
}
