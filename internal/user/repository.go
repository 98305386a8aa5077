package user

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository handles user data persistence
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, username string) (*User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id, username
	`

	user := &User{}
	if err := r.db.GetContext(ctx, user, query, username); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
