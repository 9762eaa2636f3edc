package dto

import "github.com/veckotid/time_tracking_app/internal/core/domain"

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest creates a new company together with its first admin user.
type RegisterRequest struct {
	CompanyName string `json:"companyName" binding:"required,min=2"`
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// ChangePasswordRequest is the payload for changing the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// MeResponse is the current-user payload including the tenant.
type MeResponse struct {
	User    UserResponse    `json:"user"`
	Company *domain.Company `json:"company,omitempty"`
}
