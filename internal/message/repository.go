package message

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository handles message data persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new message repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a message; the store assigns id and created_at
func (r *Repository) Create(ctx context.Context, groupID, userID int64, content string) (*Message, error) {
	query := `
		INSERT INTO messages (group_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, user_id, content, created_at
	`

	msg := &Message{}
	if err := r.db.GetContext(ctx, msg, query, groupID, userID, content); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// ListByGroupID retrieves every message of a group, oldest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64) ([]*GroupMessage, error) {
	query := `
		SELECT m.id, m.content, m.created_at, u.id AS user_id, u.username
		FROM messages m
		JOIN users u ON m.user_id = u.id
		WHERE m.group_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`

	messages := []*GroupMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}
