package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/utils/timeweek"
)

// weekLockService drives the weekly submission and approval state machine.
type weekLockService struct {
	BaseService
	lockRepo  portsrepo.WeekLockRepository
	entryRepo portsrepo.TimeEntryRepository
}

// NewWeekLockService creates a new week lock service.
func NewWeekLockService(
	lockRepo portsrepo.WeekLockRepository,
	entryRepo portsrepo.TimeEntryRepository,
	auditRepo portsrepo.AuditLogRepository,
) portssvc.WeekLockSvcFacade {
	return &weekLockService{
		BaseService: BaseService{auditRepo: auditRepo},
		lockRepo:    lockRepo,
		entryRepo:   entryRepo,
	}
}

var _ portssvc.WeekLockSvcFacade = (*weekLockService)(nil)

// lockSnapshot is the audit payload for week lock transitions.
type lockSnapshot struct {
	UserID        string    `json:"userID"`
	WeekStartDate time.Time `json:"weekStartDate"`
	Status        string    `json:"status"`
	Comment       *string   `json:"comment,omitempty"`
}

func snapshotOfLock(l *domain.WeekLock) lockSnapshot {
	return lockSnapshot{
		UserID:        l.UserID,
		WeekStartDate: l.WeekStartDate,
		Status:        string(l.Status),
		Comment:       l.Comment,
	}
}

func (s *weekLockService) SubmitWeek(ctx context.Context, caller domain.Caller, weekStart time.Time) (*domain.WeekLock, error) {
	weekStart = timeweek.Truncate(weekStart)
	if !timeweek.IsWeekStart(weekStart) {
		return nil, fmt.Errorf("%w: weekStartDate must be a Monday", apperrors.ErrValidation)
	}
	weekEnd := timeweek.WeekEnd(weekStart)

	// Pre-checks give precise errors; the repository upsert is what actually
	// guards against a concurrent submit.
	state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, caller.UserID, weekStart)
	if err != nil {
		return nil, err
	}
	switch state.Status() {
	case domain.WeekSubmitted:
		return nil, apperrors.ErrAlreadySubmitted
	case domain.WeekApproved:
		return nil, apperrors.ErrAlreadyApproved
	}

	count, err := s.entryRepo.CountWeekEntries(ctx, caller.CompanyID, caller.UserID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.ErrEmptyWeek
	}

	lock := domain.WeekLock{
		WeekLockID:    uuid.NewString(),
		CompanyID:     caller.CompanyID,
		UserID:        caller.UserID,
		WeekStartDate: weekStart,
		Status:        domain.WeekSubmitted,
		SubmittedAt:   time.Now(),
	}

	saved, err := s.lockRepo.SubmitWeek(ctx, lock)
	if err != nil {
		s.LogError(ctx, err, "Failed to submit week",
			slog.String("week_start", weekStart.Format("2006-01-02")))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditSubmit, "WeekLock", saved.WeekLockID, nil, snapshotOfLock(saved))
	s.LogInfo(ctx, "Week submitted",
		slog.String("week_lock_id", saved.WeekLockID),
		slog.String("week_start", weekStart.Format("2006-01-02")),
		slog.Int("entry_count", count))
	return saved, nil
}

// findSubmittedLock loads a lock for review and verifies it is SUBMITTED.
func (s *weekLockService) findSubmittedLock(ctx context.Context, caller domain.Caller, lockID string) (*domain.WeekLock, error) {
	if !caller.Role.CanReview() {
		return nil, apperrors.ErrForbidden
	}
	lock, err := s.lockRepo.FindLockByID(ctx, caller.CompanyID, lockID)
	if err != nil {
		return nil, err
	}
	if lock.Status != domain.WeekSubmitted {
		return nil, fmt.Errorf("%w: week is %s, expected SUBMITTED", apperrors.ErrInvalidState, lock.Status)
	}
	return lock, nil
}

func (s *weekLockService) ApproveWeek(ctx context.Context, caller domain.Caller, lockID string) (*domain.WeekLock, error) {
	lock, err := s.findSubmittedLock(ctx, caller, lockID)
	if err != nil {
		return nil, err
	}

	oldValue := snapshotOfLock(lock)
	approved, err := s.lockRepo.ApproveWeek(ctx, *lock, caller.UserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to approve week", slog.String("week_lock_id", lockID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditApprove, "WeekLock", lockID, oldValue, snapshotOfLock(approved))
	s.LogInfo(ctx, "Week approved",
		slog.String("week_lock_id", lockID),
		slog.String("owner_id", approved.UserID))
	return approved, nil
}

func (s *weekLockService) RejectWeek(ctx context.Context, caller domain.Caller, lockID string, comment string) (*domain.WeekLock, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: a rejection comment is required", apperrors.ErrValidation)
	}

	lock, err := s.findSubmittedLock(ctx, caller, lockID)
	if err != nil {
		return nil, err
	}

	oldValue := snapshotOfLock(lock)
	rejected, err := s.lockRepo.RejectWeek(ctx, *lock, caller.UserID, comment, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to reject week", slog.String("week_lock_id", lockID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditReject, "WeekLock", lockID, oldValue, snapshotOfLock(rejected))
	s.LogInfo(ctx, "Week rejected",
		slog.String("week_lock_id", lockID),
		slog.String("owner_id", rejected.UserID))
	return rejected, nil
}

func (s *weekLockService) UnlockWeek(ctx context.Context, caller domain.Caller, lockID string) error {
	if !caller.Role.CanReview() {
		return apperrors.ErrForbidden
	}
	lock, err := s.lockRepo.FindLockByID(ctx, caller.CompanyID, lockID)
	if err != nil {
		return err
	}

	// Unlock applies from any lock status, including APPROVED. Payroll
	// corrections after approval go through here.
	if err := s.lockRepo.UnlockWeek(ctx, *lock); err != nil {
		s.LogError(ctx, err, "Failed to unlock week", slog.String("week_lock_id", lockID))
		return err
	}

	s.Audit(ctx, caller, domain.AuditUnlock, "WeekLock", lockID, snapshotOfLock(lock), nil)
	s.LogInfo(ctx, "Week unlocked",
		slog.String("week_lock_id", lockID),
		slog.String("owner_id", lock.UserID),
		slog.String("previous_status", string(lock.Status)))
	return nil
}

func (s *weekLockService) ListLocks(ctx context.Context, caller domain.Caller, filter portsrepo.WeekLockFilter) ([]domain.WeekLockSummary, error) {
	// Employees only see their own locks.
	if caller.Role == domain.RoleEmployee {
		userID := caller.UserID
		filter.UserID = &userID
	}
	return s.lockRepo.ListLockSummaries(ctx, caller.CompanyID, filter)
}

func (s *weekLockService) PendingCount(ctx context.Context, caller domain.Caller) (int, error) {
	if !caller.Role.CanReview() {
		return 0, apperrors.ErrForbidden
	}
	return s.lockRepo.CountPending(ctx, caller.CompanyID)
}
