package profile

import (
	"context"
	"fmt"
	"log/slog"

	"converse/internal/domain/models"
	"converse/internal/domain/repositories"
	"converse/internal/domain/services"
)

// Service implements the ProfileService interface.
//
// Both the read and the update path bootstrap a default empty profile when
// none exists yet, so no explicit signup hook is required and the two paths
// behave consistently.
type Service struct {
	profileRepo repositories.ProfileRepository
	logger      *slog.Logger
}

// NewService creates a new profile service
func NewService(profileRepo repositories.ProfileRepository, logger *slog.Logger) services.ProfileService {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the caller's profile, creating a default empty row on
// first access. Repeated calls return the same row: the insert is a no-op
// when the row already exists.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if profile == nil {
		profile, err = s.bootstrap(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// UpdateProfile applies only the supplied fields. A missing row is
// bootstrapped first so updating a never-touched profile behaves the same as
// reading one.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req *services.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if profile == nil {
		profile, err = s.bootstrap(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	// Tri-state: absent fields stay unchanged, JSON null clears
	if req.FullName.Present {
		profile.FullName = req.FullName.Value
	}
	if req.DisplayName.Present {
		profile.DisplayName = req.DisplayName.Value
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated",
		"user_id", userID,
		"has_full_name", req.FullName.Present,
		"has_display_name", req.DisplayName.Present,
	)

	return profile, nil
}

// bootstrap inserts a default empty profile and re-reads it. The re-read
// covers the case where a concurrent request created the row first.
func (s *Service) bootstrap(ctx context.Context, userID string) (*models.Profile, error) {
	s.logger.Debug("no profile found, creating default", "user_id", userID)

	if err := s.profileRepo.Insert(ctx, &models.Profile{UserID: userID}); err != nil {
		return nil, fmt.Errorf("bootstrap profile: %w", err)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s missing after bootstrap", userID)
	}

	return profile, nil
}
