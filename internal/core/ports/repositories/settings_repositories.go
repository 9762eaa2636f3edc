package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// SettingsRepository defines persistence operations for per-company settings.
type SettingsRepository interface {
	// GetOrCreateSettings returns the company's settings row, creating it
	// with defaults on first access.
	GetOrCreateSettings(ctx context.Context, companyID string) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}
