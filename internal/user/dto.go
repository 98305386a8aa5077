package user

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,no_nul"`
}

// UserResponse represents the response for a single user
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}
