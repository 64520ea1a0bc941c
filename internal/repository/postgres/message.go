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

// PostgresMessageRepository implements the MessageRepository interface using PostgreSQL
type PostgresMessageRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewMessageRepository creates a new PostgresMessageRepository
func NewMessageRepository(config *RepositoryConfig) repositories.MessageRepository {
	return &PostgresMessageRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Append inserts a new message into a session
func (r *PostgresMessageRepository) Append(ctx context.Context, message *models.Message) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (session_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		message.SessionID,
		message.Role,
		message.Content,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("session %s: %w", message.SessionID, domain.ErrNotFound)
		}
		return fmt.Errorf("append message: %w", err)
	}

	return nil
}

// ListBySession retrieves all messages for a session, oldest first
func (r *PostgresMessageRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Message, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, role, content, created_at
		FROM %s
		WHERE session_id = $1
		ORDER BY created_at ASC
	`, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var message models.Message
		err := rows.Scan(
			&message.ID,
			&message.SessionID,
			&message.Role,
			&message.Content,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	// Return empty slice instead of nil
	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// DeleteBySession removes all messages for a session
func (r *PostgresMessageRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE session_id = $1
	`, r.tables.Messages)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}

	return nil
}
