package user

import (
	"context"
	"strings"

	"github.com/fkhayef/groupchat/internal/database"
	"github.com/fkhayef/groupchat/internal/guard"
	"github.com/fkhayef/groupchat/pkg/apperr"
	"github.com/fkhayef/groupchat/pkg/request"
)

// Common errors
var (
	ErrUsernameRequired = apperr.Validation("username is required and cannot be empty.")
	ErrUsernameTaken    = apperr.Conflict("This username already exists.")
)

// Service handles user business logic
type Service struct {
	repo  *Repository
	guard *guard.Guard
}

// NewService creates a new user service with its dependencies injected
func NewService(repo *Repository, guard *guard.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Register creates a user with a unique, trimmed username
func (s *Service) Register(ctx context.Context, req *CreateUserRequest) (*User, error) {
	input := CreateUserRequest{Username: strings.TrimSpace(req.Username)}
	if field, err := request.InvalidField(input); err != nil {
		return nil, err
	} else if field != "" {
		return nil, ErrUsernameRequired
	}

	taken, err := s.guard.UsernameTaken(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	// A concurrent registration can still win between the check and the insert
	user, err := s.repo.Create(ctx, input.Username)
	if err != nil {
		if database.IsUniqueViolation(err, database.ConstraintUsernameUnique) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}
