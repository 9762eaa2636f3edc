package services

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// AuthSvcFacade handles authentication and account self-service.
type AuthSvcFacade interface {
	// Login verifies credentials and returns the active user. The client IP
	// is recorded on the audit trail.
	Login(ctx context.Context, email string, password string, ip string) (*domain.User, error)
	// Register creates a new company (tenant) together with its first admin
	// user and default settings.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, caller domain.Caller, currentPassword string, newPassword string) error
	Me(ctx context.Context, caller domain.Caller) (*domain.User, *domain.Company, error)
}
