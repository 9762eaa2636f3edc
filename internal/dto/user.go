package dto

import (
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// CreateUserRequest is the admin payload for creating a user.
type CreateUserRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	Password   string          `json:"password" binding:"required,min=6"`
	Name       string          `json:"name" binding:"required,min=2"`
	Role       domain.UserRole `json:"role" binding:"required,oneof=EMPLOYEE SUPERVISOR ADMIN"`
	HourlyCost *float64        `json:"hourlyCost,omitempty"`
}

// UpdateUserRequest is the admin payload for updating a user. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email      *string          `json:"email,omitempty" binding:"omitempty,email"`
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=2"`
	Role       *domain.UserRole `json:"role,omitempty" binding:"omitempty,oneof=EMPLOYEE SUPERVISOR ADMIN"`
	HourlyCost *float64         `json:"hourlyCost,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

// UserResponse is the API representation of a user, without credentials.
type UserResponse struct {
	UserID     string          `json:"userID"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Role       domain.UserRole `json:"role"`
	HourlyCost *float64        `json:"hourlyCost,omitempty"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		HourlyCost: u.HourlyCost,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
