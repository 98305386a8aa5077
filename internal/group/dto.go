package group

import "encoding/json"

// joinedMessage is returned to a user who joins a group
const joinedMessage = "User successfully joined the group."

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,no_nul"`
}

// JoinGroupRequest represents the request to join a group.
// user_id may be a JSON number or a numeric string.
type JoinGroupRequest struct {
	UserID json.RawMessage `json:"user_id" validate:"required,numeric_id" swaggertype:"integer"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// JoinResponse represents the response for a successful join
type JoinResponse struct {
	Message string `json:"message"`
	GroupID int64  `json:"group_id"`
	UserID  int64  `json:"user_id"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}

// ToResponse converts a Membership model to a JoinResponse DTO
func (m *Membership) ToResponse() *JoinResponse {
	return &JoinResponse{
		Message: joinedMessage,
		GroupID: m.GroupID,
		UserID:  m.UserID,
	}
}
