package repositories

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// WeekLockFilter narrows week lock listings.
type WeekLockFilter struct {
	UserID *string
	Status *domain.WeekLockStatus
}

// WeekLockRepository defines persistence for week locks and the atomic
// multi-row transitions of the approval state machine. Each transition method
// applies its lock write and the corresponding bulk entry-status update
// inside a single transaction, so a crash can never leave entries submitted
// while the lock is absent, or the other way around.
type WeekLockRepository interface {
	// FindLockState resolves the lock for (user, week). Row absence is the
	// unlocked variant, not an error.
	FindLockState(ctx context.Context, companyID string, userID string, weekStart time.Time) (domain.LockState, error)
	FindLockByID(ctx context.Context, companyID string, lockID string) (*domain.WeekLock, error)
	// SubmitWeek flips the week's DRAFT entries to SUBMITTED and upserts the
	// lock row. The upsert only replaces a REJECTED lock; a concurrent
	// SUBMITTED or APPROVED lock surfaces as ErrAlreadySubmitted /
	// ErrAlreadyApproved.
	SubmitWeek(ctx context.Context, lock domain.WeekLock) (*domain.WeekLock, error)
	// ApproveWeek moves a SUBMITTED lock to APPROVED and its SUBMITTED
	// entries to APPROVED. Returns ErrInvalidState if the lock is not
	// SUBMITTED at update time.
	ApproveWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, reviewedAt time.Time) (*domain.WeekLock, error)
	// RejectWeek moves a SUBMITTED lock to REJECTED with the comment and
	// copies the comment onto each SUBMITTED entry as its reject note.
	RejectWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, comment string, reviewedAt time.Time) (*domain.WeekLock, error)
	// UnlockWeek reverts every entry of the week to DRAFT, clearing
	// submission/approval metadata, and deletes the lock row.
	UnlockWeek(ctx context.Context, lock domain.WeekLock) error
	ListLockSummaries(ctx context.Context, companyID string, filter WeekLockFilter) ([]domain.WeekLockSummary, error)
	CountPending(ctx context.Context, companyID string) (int, error)
}
