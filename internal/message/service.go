package message

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
	ErrUserIDRequired  = apperr.Validation("user_id is required and must be numeric.")
	ErrContentRequired = apperr.Validation("content is required and cannot be empty.")
)

// Service handles message business logic
type Service struct {
	repo  *Repository
	guard *guard.Guard
}

// NewService creates a new message service
func NewService(repo *Repository, guard *guard.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Send posts a message on behalf of a group member.
// Input is validated first, then the group, the user and the membership.
func (s *Service) Send(ctx context.Context, groupID int64, req *SendMessageRequest) (*Message, error) {
	input := SendMessageRequest{
		UserID:  req.UserID,
		Content: strings.TrimSpace(req.Content),
	}
	field, err := request.InvalidField(input)
	if err != nil {
		return nil, err
	}
	switch field {
	case "":
	case "content":
		return nil, ErrContentRequired
	default:
		return nil, ErrUserIDRequired
	}
	userID, _ := request.ParseNumericID(input.UserID)

	if err := s.guard.RequireGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if err := s.guard.RequireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.guard.RequireMember(ctx, userID, groupID); err != nil {
		return nil, err
	}

	msg, err := s.repo.Create(ctx, groupID, userID, input.Content)
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err, database.ConstraintMessageGroupFK):
			return nil, guard.ErrGroupNotFound
		case database.IsForeignKeyViolation(err, database.ConstraintMessageUserFK):
			return nil, guard.ErrUserNotFound
		}
		return nil, err
	}

	return msg, nil
}

// List returns a group's messages in creation order. A group without
// messages yields an empty slice.
func (s *Service) List(ctx context.Context, groupID int64) ([]*GroupMessage, error) {
	if err := s.guard.RequireGroup(ctx, groupID); err != nil {
		return nil, err
	}

	return s.repo.ListByGroupID(ctx, groupID)
}
