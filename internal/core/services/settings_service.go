package services

import (
	"context"
	"fmt"
	"time"

	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// settingsService handles per-company settings.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, auditRepo portsrepo.AuditLogRepository) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService:  BaseService{auditRepo: auditRepo},
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, caller domain.Caller) (*domain.Settings, error) {
	return s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
}

func (s *settingsService) UpdateSettings(ctx context.Context, caller domain.Caller, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	oldValue := *settings
	if req.VatRate != nil {
		settings.VatRate = *req.VatRate
	}
	if req.WeekStartDay != nil {
		settings.WeekStartDay = *req.WeekStartDay
	}
	if req.CsvDelimiter != nil {
		if *req.CsvDelimiter != ";" && *req.CsvDelimiter != "," && *req.CsvDelimiter != "\t" {
			return nil, fmt.Errorf("%w: csvDelimiter must be ';', ',' or tab", apperrors.ErrValidation)
		}
		settings.CsvDelimiter = *req.CsvDelimiter
	}
	if req.DefaultCurrency != nil {
		settings.DefaultCurrency = *req.DefaultCurrency
	}
	if req.ReminderTime != nil {
		settings.ReminderTime = *req.ReminderTime
	}
	if req.ReminderEnabled != nil {
		settings.ReminderEnabled = *req.ReminderEnabled
	}
	if req.AdminEditLocked != nil {
		settings.AdminEditLocked = *req.AdminEditLocked
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "Settings", settings.SettingsID, oldValue, *settings)
	return settings, nil
}
