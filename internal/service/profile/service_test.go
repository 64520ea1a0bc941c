package profile

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"converse/internal/domain/models"
	"converse/internal/domain/services"
	"converse/internal/httputil"
)

// fakeProfileRepo is an in-memory ProfileRepository
type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	inserts  int
	updates  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) Insert(ctx context.Context, profile *models.Profile) error {
	r.inserts++
	if _, ok := r.profiles[profile.UserID]; ok {
		return nil // ON CONFLICT DO NOTHING
	}
	stored := *profile
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	r.updates++
	stored := *profile
	stored.UpdatedAt = time.Now()
	r.profiles[profile.UserID] = &stored
	return nil
}

func newTestService(repo *fakeProfileRepo) services.ProfileService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(repo, logger)
}

func strPtr(s string) *string { return &s }

func TestGetProfile_BootstrapsOnFirstAccess(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newTestService(repo)
	ctx := context.Background()

	profile, err := service.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.UserID != "user-1" {
		t.Errorf("profile user = %q, want user-1", profile.UserID)
	}
	if profile.FullName != nil || profile.DisplayName != nil {
		t.Errorf("bootstrapped profile must start empty: %+v", profile)
	}

	// Second read must return the same row, not create another
	again, err := service.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("second GetProfile failed: %v", err)
	}
	if !again.CreatedAt.Equal(profile.CreatedAt) {
		t.Error("second read returned a different row")
	}
	if len(repo.profiles) != 1 {
		t.Errorf("expected 1 stored profile, got %d", len(repo.profiles))
	}
}

func TestUpdateProfile_BootstrapsMissingRow(t *testing.T) {
	repo := newFakeProfileRepo()
	service := newTestService(repo)

	profile, err := service.UpdateProfile(context.Background(), "user-1", &services.UpdateProfileRequest{
		DisplayName: httputil.OptionalString{Present: true, Value: strPtr("Sam")},
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if repo.inserts != 1 {
		t.Errorf("expected bootstrap insert, got %d inserts", repo.inserts)
	}
	if profile.DisplayName == nil || *profile.DisplayName != "Sam" {
		t.Errorf("display name not applied: %+v", profile.DisplayName)
	}
	if profile.FullName != nil {
		t.Errorf("full name should stay empty, got %v", *profile.FullName)
	}
}

func TestUpdateProfile_PartialSemantics(t *testing.T) {
	tests := []struct {
		name            string
		req             *services.UpdateProfileRequest
		wantFullName    *string
		wantDisplayName *string
	}{
		{
			name:            "absent fields unchanged",
			req:             &services.UpdateProfileRequest{},
			wantFullName:    strPtr("Ada Lovelace"),
			wantDisplayName: strPtr("ada"),
		},
		{
			name: "null clears a field",
			req: &services.UpdateProfileRequest{
				FullName: httputil.OptionalString{Present: true, Value: nil},
			},
			wantFullName:    nil,
			wantDisplayName: strPtr("ada"),
		},
		{
			name: "empty string is a value, not a clear",
			req: &services.UpdateProfileRequest{
				DisplayName: httputil.OptionalString{Present: true, Value: strPtr("")},
			},
			wantFullName:    strPtr("Ada Lovelace"),
			wantDisplayName: strPtr(""),
		},
		{
			name: "both fields replaced",
			req: &services.UpdateProfileRequest{
				FullName:    httputil.OptionalString{Present: true, Value: strPtr("Grace Hopper")},
				DisplayName: httputil.OptionalString{Present: true, Value: strPtr("grace")},
			},
			wantFullName:    strPtr("Grace Hopper"),
			wantDisplayName: strPtr("grace"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeProfileRepo()
			repo.profiles["user-1"] = &models.Profile{
				UserID:      "user-1",
				FullName:    strPtr("Ada Lovelace"),
				DisplayName: strPtr("ada"),
			}
			service := newTestService(repo)

			profile, err := service.UpdateProfile(context.Background(), "user-1", tt.req)
			if err != nil {
				t.Fatalf("UpdateProfile failed: %v", err)
			}

			assertStrPtr(t, "full_name", profile.FullName, tt.wantFullName)
			assertStrPtr(t, "display_name", profile.DisplayName, tt.wantDisplayName)
		})
	}
}

func assertStrPtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %q, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %q", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %q, want %q", field, *got, *want)
	}
}
