// Package guard holds the read-only integrity checks domain operations run
// before mutating state: existence by identity, uniqueness of names, and
// group membership.
package guard

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fkhayef/groupchat/pkg/apperr"
)

// Errors returned by the Require helpers
var (
	ErrGroupNotFound = apperr.NotFound("Group not found.")
	ErrUserNotFound  = apperr.NotFound("User not found.")
	ErrNotMember     = apperr.Forbidden("User has not joined this group.")
)

// Guard runs existence, uniqueness and membership probes against the store
type Guard struct {
	db *sqlx.DB
}

// New creates a guard over the shared database handle
func New(db *sqlx.DB) *Guard {
	return &Guard{db: db}
}

// UserExists reports whether a user with the given ID exists
func (g *Guard) UserExists(ctx context.Context, id int64) (bool, error) {
	return g.exists(ctx, "user", `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

// GroupExists reports whether a group with the given ID exists
func (g *Guard) GroupExists(ctx context.Context, id int64) (bool, error) {
	return g.exists(ctx, "group", `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, id)
}

// UsernameTaken reports whether the exact username is already registered
func (g *Guard) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return g.exists(ctx, "username", `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

// GroupNameTaken reports whether the exact group name is already used
func (g *Guard) GroupNameTaken(ctx context.Context, name string) (bool, error) {
	return g.exists(ctx, "group name", `SELECT EXISTS(SELECT 1 FROM groups WHERE name = $1)`, name)
}

// IsMember reports whether the user has joined the group
func (g *Guard) IsMember(ctx context.Context, userID, groupID int64) (bool, error) {
	return g.exists(ctx, "membership",
		`SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID)
}

// RequireGroup returns ErrGroupNotFound when the group does not exist
func (g *Guard) RequireGroup(ctx context.Context, id int64) error {
	ok, err := g.GroupExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrGroupNotFound
	}
	return nil
}

// RequireUser returns ErrUserNotFound when the user does not exist
func (g *Guard) RequireUser(ctx context.Context, id int64) error {
	ok, err := g.UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// RequireMember returns ErrNotMember when the user has not joined the group
func (g *Guard) RequireMember(ctx context.Context, userID, groupID int64) error {
	ok, err := g.IsMember(ctx, userID, groupID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotMember
	}
	return nil
}

func (g *Guard) exists(ctx context.Context, what, query string, args ...interface{}) (bool, error) {
	var found bool
	if err := g.db.GetContext(ctx, &found, query, args...); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", what, err)
	}
	return found, nil
}
