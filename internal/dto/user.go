package dto

import (
	"time"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new client account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company"`
}

// UpdateUserRequest defines the editable profile fields. Pointer fields
// distinguish "not provided" from "set to empty".
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Company *string `json:"company,omitempty"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Company:   u.Company,
		CreatedAt: u.CreatedAt,
	}
}
