package group

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
	ErrNameRequired        = apperr.Validation("Group name is required and cannot be empty.")
	ErrNameTaken           = apperr.Conflict("A group with this name already exists.")
	ErrUserIDRequired      = apperr.Validation("user_id is required and must be numeric.")
	ErrMemberAlreadyExists = apperr.Conflict("User is already in the group.")
)

// Service handles group business logic
type Service struct {
	repo  *Repository
	guard *guard.Guard
}

// NewService creates a new group service
func NewService(repo *Repository, guard *guard.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Create creates a group with a unique, trimmed name
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	input := CreateGroupRequest{Name: strings.TrimSpace(req.Name)}
	if field, err := request.InvalidField(input); err != nil {
		return nil, err
	} else if field != "" {
		return nil, ErrNameRequired
	}

	taken, err := s.guard.GroupNameTaken(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	group, err := s.repo.Create(ctx, input.Name)
	if err != nil {
		if database.IsUniqueViolation(err, database.ConstraintGroupNameUnique) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return group, nil
}

// Join adds a user to a group. The group is checked before the user.
func (s *Service) Join(ctx context.Context, groupID int64, req *JoinGroupRequest) (*Membership, error) {
	if field, err := request.InvalidField(req); err != nil {
		return nil, err
	} else if field != "" {
		return nil, ErrUserIDRequired
	}
	userID, _ := request.ParseNumericID(req.UserID)

	if err := s.guard.RequireGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUser(ctx, userID); err != nil {
		return nil, err
	}

	member, err := s.guard.IsMember(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrMemberAlreadyExists
	}

	membership, err := s.repo.AddMember(ctx, groupID, userID)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err, database.ConstraintMembershipUnique):
			return nil, ErrMemberAlreadyExists
		case database.IsForeignKeyViolation(err, database.ConstraintMemberGroupFK):
			return nil, guard.ErrGroupNotFound
		case database.IsForeignKeyViolation(err, database.ConstraintMemberUserFK):
			return nil, guard.ErrUserNotFound
		}
		return nil, err
	}

	return membership, nil
}
