package group

import "time"

// Group represents a chat group
type Group struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Membership represents a user's membership in a group
type Membership struct {
	ID       int64     `json:"id" db:"id"`
	GroupID  int64     `json:"group_id" db:"group_id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}
