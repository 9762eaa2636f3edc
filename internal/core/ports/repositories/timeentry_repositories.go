package repositories

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// TimeEntryFilter narrows time entry listings. UserID is mandatory for
// employee callers and optional for supervisors/admins; company scoping is
// always applied by the repository.
type TimeEntryFilter struct {
	UserID    *string
	ProjectID *string
	Status    *domain.TimeEntryStatus
	From      *time.Time
	To        *time.Time
}

// TimeEntryRepository defines persistence operations for time entries.
type TimeEntryRepository interface {
	SaveEntry(ctx context.Context, entry domain.TimeEntry) error
	FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, companyID string, filter TimeEntryFilter) ([]domain.TimeEntry, error)
	ListWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) ([]domain.TimeEntry, error)
	CountWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) (int, error)
	UpdateEntry(ctx context.Context, entry domain.TimeEntry) error
	// DeleteEntry removes the entry and its attachment rows in one
	// transaction and returns the deleted attachments' file paths so the
	// caller can purge them from the attachment store.
	DeleteEntry(ctx context.Context, companyID string, entryID string) ([]string, error)
}
