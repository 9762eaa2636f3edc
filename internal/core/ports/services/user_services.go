package services

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// UserSvcFacade handles user administration. All operations require the
// ADMIN role.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error)
	GetUser(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	// DeactivateUser is the soft delete: the user can no longer log in but
	// their history remains.
	DeactivateUser(ctx context.Context, caller domain.Caller, userID string) error
	// EraseUser is the GDPR erasure: the user and all data they own are
	// permanently removed in one transaction, audit rows anonymized.
	EraseUser(ctx context.Context, caller domain.Caller, userID string) error
}
