package repositories

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByEmail looks up across companies; email is globally unique and
	// this is the login path, before any tenant is established.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, companyID string, includeInactive bool) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, companyID string, userID string, passwordHash string, updatedAt time.Time) error
	DeactivateUser(ctx context.Context, companyID string, userID string, updatedAt time.Time) error
	// EraseUserData permanently removes the user and everything they own in a
	// single transaction: attachments, time entries, week locks; audit rows
	// are anonymized, not deleted. Returns the file paths of removed
	// attachments so the caller can unlink them from the attachment store.
	EraseUserData(ctx context.Context, companyID string, userID string) ([]string, error)
}
