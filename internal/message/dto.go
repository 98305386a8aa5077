package message

import "encoding/json"

const timeLayout = "2006-01-02T15:04:05Z"

// SendMessageRequest represents the request to post a message.
// Field order sets validation precedence: user_id is reported before content.
type SendMessageRequest struct {
	UserID  json.RawMessage `json:"user_id" validate:"required,numeric_id" swaggertype:"integer"`
	Content string          `json:"content" validate:"required,no_nul"`
}

// MessageResponse represents a message that was just sent
type MessageResponse struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	UserID    int64  `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// GroupMessageResponse represents one entry of a group's message list
type GroupMessageResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
}

// ToResponse converts a Message model to a MessageResponse DTO
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		GroupID:   m.GroupID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC().Format(timeLayout),
	}
}

// ToResponse converts a GroupMessage to a GroupMessageResponse DTO
func (m *GroupMessage) ToResponse() *GroupMessageResponse {
	return &GroupMessageResponse{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC().Format(timeLayout),
		UserID:    m.UserID,
		Username:  m.Username,
	}
}
