package services

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

// WeekLockSvcFacade drives the weekly approval state machine:
// unlocked -> submitted -> approved/rejected -> (unlock) -> unlocked.
type WeekLockSvcFacade interface {
	// SubmitWeek locks the caller's week for review. Requires at least one
	// entry in the week and no SUBMITTED or APPROVED lock.
	SubmitWeek(ctx context.Context, caller domain.Caller, weekStart time.Time) (*domain.WeekLock, error)
	// ApproveWeek approves a SUBMITTED week. Reviewer role required.
	ApproveWeek(ctx context.Context, caller domain.Caller, lockID string) (*domain.WeekLock, error)
	// RejectWeek rejects a SUBMITTED week with a mandatory comment that is
	// copied onto each entry. Reviewer role required.
	RejectWeek(ctx context.Context, caller domain.Caller, lockID string, comment string) (*domain.WeekLock, error)
	// UnlockWeek reverts the week to the editable, unlocked state from any
	// lock status. Reviewer role required.
	UnlockWeek(ctx context.Context, caller domain.Caller, lockID string) error
	ListLocks(ctx context.Context, caller domain.Caller, filter portsrepo.WeekLockFilter) ([]domain.WeekLockSummary, error)
	PendingCount(ctx context.Context, caller domain.Caller) (int, error)
}
