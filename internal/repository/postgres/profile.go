package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"converse/internal/domain"
	"converse/internal/domain/models"
	"converse/internal/domain/repositories"
)

// PostgresProfileRepository implements the ProfileRepository interface using PostgreSQL
type PostgresProfileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgresProfileRepository
func NewProfileRepository(config *RepositoryConfig) repositories.ProfileRepository {
	return &PostgresProfileRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// GetByUserID retrieves the profile for a user
func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := fmt.Sprintf(`
		SELECT id, full_name, display_name, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Profiles)

	var profile models.Profile
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.DisplayName,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			// No profile exists yet - return nil (not an error)
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// Insert creates a profile row. ON CONFLICT DO NOTHING keeps the lazy
// bootstrap idempotent under concurrent first reads.
func (r *PostgresProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, full_name, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, r.tables.Profiles)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, profile.UserID, profile.FullName, profile.DisplayName); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

// Update persists the profile's mutable fields
func (r *PostgresProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET full_name = $1, display_name = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, r.tables.Profiles)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		profile.FullName,
		profile.DisplayName,
		profile.UserID,
	).Scan(&profile.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("profile %s: %w", profile.UserID, domain.ErrNotFound)
		}
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}
