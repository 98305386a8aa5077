package group

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository handles group data persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, name string) (*Group, error) {
	query := `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id, name
	`

	group := &Group{}
	if err := r.db.GetContext(ctx, group, query, name); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// AddMember adds a user to a group
func (r *Repository) AddMember(ctx context.Context, groupID, userID int64) (*Membership, error) {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		RETURNING id, group_id, user_id, joined_at
	`

	member := &Membership{}
	if err := r.db.GetContext(ctx, member, query, groupID, userID); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}
