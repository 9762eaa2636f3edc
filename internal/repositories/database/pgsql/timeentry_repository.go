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
)

const entryColumns = `entry_id, company_id, user_id, project_id, activity_id, date, hours, billable, note, gps_lat, gps_lng, status, submitted_at, approved_at, approver_id, reject_note, created_at, updated_at`

type PgxTimeEntryRepository struct {
	BaseRepository
}

func newPgxTimeEntryRepository(db *pgxpool.Pool) portsrepo.TimeEntryRepository {
	return &PgxTimeEntryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TimeEntryRepository = (*PgxTimeEntryRepository)(nil)

func (r *PgxTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.CompanyID,
		entry.UserID,
		entry.ProjectID,
		entry.ActivityID,
		entry.Date,
		entry.Hours,
		entry.Billable,
		entry.Note,
		entry.GpsLat,
		entry.GpsLng,
		entry.Status,
		entry.SubmittedAt,
		entry.ApprovedAt,
		entry.ApproverID,
		entry.RejectNote,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save time entry: %w", err)
	}
	return nil
}

func (r *PgxTimeEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.TimeEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE company_id = $1 AND entry_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entry %s: %w", entryID, err)
	}
	entry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.TimeEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect time entry %s: %w", entryID, err)
	}
	return &entry, nil
}

func (r *PgxTimeEntryRepository) ListEntries(ctx context.Context, companyID string, filter portsrepo.TimeEntryFilter) ([]domain.TimeEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE company_id = $1
			AND ($2::text IS NULL OR user_id = $2)
			AND ($3::text IS NULL OR project_id = $3)
			AND ($4::text IS NULL OR status = $4)
			AND ($5::date IS NULL OR date >= $5)
			AND ($6::date IS NULL OR date <= $6)
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID,
		filter.UserID, filter.ProjectID, filter.Status, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TimeEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to collect time entries: %w", err)
	}
	return entries, nil
}

func (r *PgxTimeEntryRepository) ListWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) ([]domain.TimeEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM time_entries
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query week entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TimeEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to collect week entries: %w", err)
	}
	return entries, nil
}

func (r *PgxTimeEntryRepository) CountWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM time_entries
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $4;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, companyID, userID, weekStart, weekEnd).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count week entries: %w", err)
	}
	return count, nil
}

func (r *PgxTimeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	query := `
		UPDATE time_entries SET
			project_id = $3,
			activity_id = $4,
			date = $5,
			hours = $6,
			billable = $7,
			note = $8,
			gps_lat = $9,
			gps_lng = $10,
			updated_at = $11
		WHERE company_id = $1 AND entry_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.CompanyID,
		entry.EntryID,
		entry.ProjectID,
		entry.ActivityID,
		entry.Date,
		entry.Hours,
		entry.Billable,
		entry.Note,
		entry.GpsLat,
		entry.GpsLng,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes the entry and its attachment rows in one transaction
// and returns the attachment file paths for the caller to unlink.
func (r *PgxTimeEntryRepository) DeleteEntry(ctx context.Context, companyID string, entryID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	pathRows, err := tx.Query(ctx, `
		SELECT path FROM attachments WHERE time_entry_id = $1;
	`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachment paths: %w", err)
	}
	paths, err := pgx.CollectRows(pathRows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect attachment paths: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM attachments WHERE time_entry_id = $1;`, entryID); err != nil {
		return nil, fmt.Errorf("failed to delete attachments: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE company_id = $1 AND entry_id = $2;`, companyID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete time entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return paths, nil
}
