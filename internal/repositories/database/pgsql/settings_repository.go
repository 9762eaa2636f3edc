package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

const settingsColumns = `settings_id, company_id, vat_rate, week_start_day, csv_delimiter, default_currency, reminder_time, reminder_enabled, admin_edit_locked, created_at, updated_at`

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetOrCreateSettings inserts the defaults on first access. The insert is a
// no-op on conflict, so concurrent first reads both end up with the same row.
func (r *PgxSettingsRepository) GetOrCreateSettings(ctx context.Context, companyID string) (*domain.Settings, error) {
	defaults := domain.DefaultSettings(companyID)
	defaults.SettingsID = uuid.NewString()
	now := time.Now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now

	insert := `
		INSERT INTO settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, insert,
		defaults.SettingsID,
		defaults.CompanyID,
		defaults.VatRate,
		defaults.WeekStartDay,
		defaults.CsvDelimiter,
		defaults.DefaultCurrency,
		defaults.ReminderTime,
		defaults.ReminderEnabled,
		defaults.AdminEditLocked,
		defaults.CreatedAt,
		defaults.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	query := `
		SELECT ` + settingsColumns + `
		FROM settings
		WHERE company_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	settings, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Settings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect settings: %w", err)
	}
	return &settings, nil
}

func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	query := `
		UPDATE settings SET
			vat_rate = $2,
			week_start_day = $3,
			csv_delimiter = $4,
			default_currency = $5,
			reminder_time = $6,
			reminder_enabled = $7,
			admin_edit_locked = $8,
			updated_at = $9
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		settings.CompanyID,
		settings.VatRate,
		settings.WeekStartDay,
		settings.CsvDelimiter,
		settings.DefaultCurrency,
		settings.ReminderTime,
		settings.ReminderEnabled,
		settings.AdminEditLocked,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
