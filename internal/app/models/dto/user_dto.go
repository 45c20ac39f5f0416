package dto

import (
	"time"

	"github.com/hexadigitall/platform/internal/app/models"
)

// CreateUserRequest represents an admin user-creation request
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=64"`
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin teacher student"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents a partial admin update of a user.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	DisplayName *string `json:"displayName,omitempty"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=admin teacher student"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active suspended"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// UserResponse is the public view of a user record
type UserResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// FromUser converts a user model to its response form
func FromUser(u *models.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Status:      string(u.Status),
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// FromUsers converts a slice of user models
func FromUsers(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
