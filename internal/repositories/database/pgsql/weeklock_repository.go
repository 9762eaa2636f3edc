package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	"github.com/veckotid/time_tracking_app/internal/utils/timeweek"
)

const lockColumns = `week_lock_id, company_id, user_id, week_start_date, status, comment, submitted_at, reviewed_at, reviewer_id`

// PgxWeekLockRepository persists week locks. Every state transition pairs the
// lock write with the bulk entry-status update in one transaction.
type PgxWeekLockRepository struct {
	BaseRepository
}

func newPgxWeekLockRepository(db *pgxpool.Pool) portsrepo.WeekLockRepository {
	return &PgxWeekLockRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WeekLockRepository = (*PgxWeekLockRepository)(nil)

func (r *PgxWeekLockRepository) FindLockState(ctx context.Context, companyID string, userID string, weekStart time.Time) (domain.LockState, error) {
	query := `
		SELECT ` + lockColumns + `
		FROM week_locks
		WHERE company_id = $1 AND user_id = $2 AND week_start_date = $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, userID, weekStart)
	if err != nil {
		return domain.LockState{}, fmt.Errorf("failed to query week lock: %w", err)
	}
	lock, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WeekLock])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row absence is the unlocked state.
			return domain.LockState{}, nil
		}
		return domain.LockState{}, fmt.Errorf("failed to collect week lock: %w", err)
	}
	return domain.LockState{Lock: &lock}, nil
}

func (r *PgxWeekLockRepository) FindLockByID(ctx context.Context, companyID string, lockID string) (*domain.WeekLock, error) {
	query := `
		SELECT ` + lockColumns + `
		FROM week_locks
		WHERE company_id = $1 AND week_lock_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, lockID)
	if err != nil {
		return nil, fmt.Errorf("failed to query week lock %s: %w", lockID, err)
	}
	lock, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WeekLock])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect week lock %s: %w", lockID, err)
	}
	return &lock, nil
}

// SubmitWeek upserts the lock row and flips the week's entries to SUBMITTED.
// The conditional upsert is the concurrency guard: it only replaces a
// REJECTED lock, so two racing submits cannot both win. When the insert
// returns no row the current status decides which error the loser gets.
func (r *PgxWeekLockRepository) SubmitWeek(ctx context.Context, lock domain.WeekLock) (*domain.WeekLock, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	upsert := `
		INSERT INTO week_locks (` + lockColumns + `)
		VALUES ($1, $2, $3, $4, 'SUBMITTED', NULL, $5, NULL, NULL)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			status = 'SUBMITTED',
			comment = NULL,
			submitted_at = EXCLUDED.submitted_at,
			reviewed_at = NULL,
			reviewer_id = NULL
		WHERE week_locks.status = 'REJECTED'
		RETURNING ` + lockColumns + `;
	`
	rows, err := tx.Query(ctx, upsert,
		lock.WeekLockID, lock.CompanyID, lock.UserID, lock.WeekStartDate, lock.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert week lock: %w", err)
	}
	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WeekLock])
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to collect submitted week lock: %w", err)
		}
		// Lost the race: a non-REJECTED lock already exists.
		var status domain.WeekLockStatus
		statusErr := tx.QueryRow(ctx, `
			SELECT status FROM week_locks WHERE user_id = $1 AND week_start_date = $2;
		`, lock.UserID, lock.WeekStartDate).Scan(&status)
		if statusErr != nil {
			return nil, fmt.Errorf("failed to resolve conflicting week lock: %w", statusErr)
		}
		if status == domain.WeekApproved {
			return nil, apperrors.ErrAlreadyApproved
		}
		return nil, apperrors.ErrAlreadySubmitted
	}

	weekEnd := timeweek.WeekEnd(lock.WeekStartDate)
	_, err = tx.Exec(ctx, `
		UPDATE time_entries
		SET status = 'SUBMITTED', submitted_at = $4, reject_note = NULL, updated_at = $4
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $5
			AND status IN ('DRAFT', 'REJECTED');
	`, lock.CompanyID, lock.UserID, lock.WeekStartDate, lock.SubmittedAt, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to submit week entries: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PgxWeekLockRepository) ApproveWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, reviewedAt time.Time) (*domain.WeekLock, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	update := `
		UPDATE week_locks
		SET status = 'APPROVED', reviewed_at = $3, reviewer_id = $4
		WHERE company_id = $1 AND week_lock_id = $2 AND status = 'SUBMITTED'
		RETURNING ` + lockColumns + `;
	`
	rows, err := tx.Query(ctx, update, lock.CompanyID, lock.WeekLockID, reviewedAt, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve week lock: %w", err)
	}
	approved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WeekLock])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidState
		}
		return nil, fmt.Errorf("failed to collect approved week lock: %w", err)
	}

	weekEnd := timeweek.WeekEnd(approved.WeekStartDate)
	_, err = tx.Exec(ctx, `
		UPDATE time_entries
		SET status = 'APPROVED', approved_at = $4, approver_id = $5, updated_at = $4
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $6
			AND status = 'SUBMITTED';
	`, approved.CompanyID, approved.UserID, approved.WeekStartDate, reviewedAt, reviewerID, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to approve week entries: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &approved, nil
}

func (r *PgxWeekLockRepository) RejectWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, comment string, reviewedAt time.Time) (*domain.WeekLock, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	update := `
		UPDATE week_locks
		SET status = 'REJECTED', comment = $3, reviewed_at = $4, reviewer_id = $5
		WHERE company_id = $1 AND week_lock_id = $2 AND status = 'SUBMITTED'
		RETURNING ` + lockColumns + `;
	`
	rows, err := tx.Query(ctx, update, lock.CompanyID, lock.WeekLockID, comment, reviewedAt, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reject week lock: %w", err)
	}
	rejected, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.WeekLock])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidState
		}
		return nil, fmt.Errorf("failed to collect rejected week lock: %w", err)
	}

	// The comment lands on each entry so the owner sees why during rework.
	weekEnd := timeweek.WeekEnd(rejected.WeekStartDate)
	_, err = tx.Exec(ctx, `
		UPDATE time_entries
		SET status = 'REJECTED', reject_note = $4, updated_at = $5
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $6
			AND status = 'SUBMITTED';
	`, rejected.CompanyID, rejected.UserID, rejected.WeekStartDate, comment, reviewedAt, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to reject week entries: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &rejected, nil
}

// UnlockWeek reverts the week's entries to DRAFT and deletes the lock row.
// Deleting the row is what makes the week editable again: the unlocked state
// has no row.
func (r *PgxWeekLockRepository) UnlockWeek(ctx context.Context, lock domain.WeekLock) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	weekEnd := timeweek.WeekEnd(lock.WeekStartDate)
	_, err = tx.Exec(ctx, `
		UPDATE time_entries
		SET status = 'DRAFT', submitted_at = NULL, approved_at = NULL,
			approver_id = NULL, reject_note = NULL
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $4;
	`, lock.CompanyID, lock.UserID, lock.WeekStartDate, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to revert week entries: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM week_locks WHERE company_id = $1 AND week_lock_id = $2;
	`, lock.CompanyID, lock.WeekLockID)
	if err != nil {
		return fmt.Errorf("failed to delete week lock %s: %w", lock.WeekLockID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxWeekLockRepository) ListLockSummaries(ctx context.Context, companyID string, filter portsrepo.WeekLockFilter) ([]domain.WeekLockSummary, error) {
	query := `
		SELECT l.week_lock_id, l.company_id, l.user_id, l.week_start_date, l.status,
			l.comment, l.submitted_at, l.reviewed_at, l.reviewer_id,
			u.name AS user_name,
			COALESCE(SUM(e.hours), 0) AS total_hours,
			COALESCE(SUM(e.hours) FILTER (WHERE e.billable), 0) AS billable_hours,
			COUNT(e.entry_id)::int AS entry_count
		FROM week_locks l
		JOIN users u ON u.user_id = l.user_id
		LEFT JOIN time_entries e ON e.company_id = l.company_id
			AND e.user_id = l.user_id
			AND e.date BETWEEN l.week_start_date AND l.week_start_date + 6
		WHERE l.company_id = $1
			AND ($2::text IS NULL OR l.user_id = $2)
			AND ($3::text IS NULL OR l.status = $3)
		GROUP BY l.week_lock_id, l.company_id, l.user_id, l.week_start_date, l.status,
			l.comment, l.submitted_at, l.reviewed_at, l.reviewer_id, u.name
		ORDER BY l.week_start_date DESC, u.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, filter.UserID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to query week lock summaries: %w", err)
	}
	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.WeekLockSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to collect week lock summaries: %w", err)
	}
	return summaries, nil
}

func (r *PgxWeekLockRepository) CountPending(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM week_locks WHERE company_id = $1 AND status = 'SUBMITTED';
	`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending week locks: %w", err)
	}
	return count, nil
}
