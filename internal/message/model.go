package message

import "time"

// Message represents a message posted to a group
type Message struct {
	ID        int64     `json:"id" db:"id"`
	GroupID   int64     `json:"group_id" db:"group_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GroupMessage is a message listed with its author's username
type GroupMessage struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`

	// Populated from JOIN
	UserID   int64  `db:"user_id"`
	Username string `db:"username"`
}
