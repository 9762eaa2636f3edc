package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

const activityColumns = `activity_id, company_id, name, code, category, billable_default, rate_override, sort_order, active, created_at, updated_at`

type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(db *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		activity.ActivityID,
		activity.CompanyID,
		activity.Name,
		activity.Code,
		activity.Category,
		activity.BillableDefault,
		activity.RateOverride,
		activity.SortOrder,
		activity.Active,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: activity code is already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) FindActivityByID(ctx context.Context, companyID string, activityID string) (*domain.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE company_id = $1 AND activity_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity %s: %w", activityID, err)
	}
	activity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Activity])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect activity %s: %w", activityID, err)
	}
	return &activity, nil
}

func (r *PgxActivityRepository) ListActivities(ctx context.Context, companyID string, filter portsrepo.ActivityFilter) ([]domain.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE company_id = $1
			AND ($2::text IS NULL OR category = $2)
			AND ($3::boolean IS NULL OR active = $3)
		ORDER BY sort_order, name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, filter.Category, filter.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	activities, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Activity])
	if err != nil {
		return nil, fmt.Errorf("failed to collect activities: %w", err)
	}
	return activities, nil
}

func (r *PgxActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	query := `
		UPDATE activities SET
			name = $3,
			code = $4,
			category = $5,
			billable_default = $6,
			rate_override = $7,
			sort_order = $8,
			active = $9,
			updated_at = $10
		WHERE company_id = $1 AND activity_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		activity.CompanyID,
		activity.ActivityID,
		activity.Name,
		activity.Code,
		activity.Category,
		activity.BillableDefault,
		activity.RateOverride,
		activity.SortOrder,
		activity.Active,
		activity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: activity code is already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update activity %s: %w", activity.ActivityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
