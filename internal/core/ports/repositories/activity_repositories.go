package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	Category *domain.ActivityCategory
	Active   *bool
}

// ActivityRepository defines persistence operations for activity codes.
type ActivityRepository interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	FindActivityByID(ctx context.Context, companyID string, activityID string) (*domain.Activity, error)
	ListActivities(ctx context.Context, companyID string, filter ActivityFilter) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) error
}
