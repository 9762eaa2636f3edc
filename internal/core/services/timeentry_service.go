package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/storage"
	"github.com/veckotid/time_tracking_app/internal/utils/timeweek"
)

// timeEntryService implements the time entry lifecycle: CRUD gated by week
// lock state, activity billable defaults, offline replay, attachments.
type timeEntryService struct {
	BaseService
	entryRepo      portsrepo.TimeEntryRepository
	lockRepo       portsrepo.WeekLockRepository
	activityRepo   portsrepo.ActivityRepository
	projectRepo    portsrepo.ProjectRepository
	attachmentRepo portsrepo.AttachmentRepository
	settingsRepo   portsrepo.SettingsRepository
	files          storage.FileStore
}

// NewTimeEntryService creates a new time entry service.
func NewTimeEntryService(
	entryRepo portsrepo.TimeEntryRepository,
	lockRepo portsrepo.WeekLockRepository,
	activityRepo portsrepo.ActivityRepository,
	projectRepo portsrepo.ProjectRepository,
	attachmentRepo portsrepo.AttachmentRepository,
	settingsRepo portsrepo.SettingsRepository,
	auditRepo portsrepo.AuditLogRepository,
	files storage.FileStore,
) portssvc.TimeEntrySvcFacade {
	return &timeEntryService{
		BaseService:    BaseService{auditRepo: auditRepo},
		entryRepo:      entryRepo,
		lockRepo:       lockRepo,
		activityRepo:   activityRepo,
		projectRepo:    projectRepo,
		attachmentRepo: attachmentRepo,
		settingsRepo:   settingsRepo,
		files:          files,
	}
}

var _ portssvc.TimeEntrySvcFacade = (*timeEntryService)(nil)

// entrySnapshot is the audit payload for entry mutations.
type entrySnapshot struct {
	Date      time.Time `json:"date"`
	Hours     float64   `json:"hours"`
	ProjectID *string   `json:"projectID,omitempty"`
	Note      *string   `json:"note,omitempty"`
}

func snapshotOf(e *domain.TimeEntry) entrySnapshot {
	return entrySnapshot{Date: e.Date, Hours: e.Hours, ProjectID: e.ProjectID, Note: e.Note}
}

func (s *timeEntryService) CreateEntry(ctx context.Context, caller domain.Caller, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	entry, err := s.createEntry(ctx, caller, req)
	if err != nil {
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditCreate, "TimeEntry", entry.EntryID, nil, snapshotOf(entry))
	s.LogInfo(ctx, "Time entry created",
		slog.String("entry_id", entry.EntryID),
		slog.Float64("hours", entry.Hours))
	return entry, nil
}

// createEntry is the shared create path for CreateEntry and SyncEntries.
func (s *timeEntryService) createEntry(ctx context.Context, caller domain.Caller, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	if !domain.ValidHours(req.Hours) {
		return nil, fmt.Errorf("%w: hours must be between 0 and 24", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}

	date := timeweek.Truncate(req.Date.Time)
	weekStart := timeweek.WeekStart(date)

	state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, caller.UserID, weekStart)
	if err != nil {
		return nil, err
	}
	if !state.Editable() {
		return nil, apperrors.ErrWeekLocked
	}

	activity, err := s.activityRepo.FindActivityByID(ctx, caller.CompanyID, req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("activity: %w", err)
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, *req.ProjectID); err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
	}

	billable := activity.BillableDefault
	if req.Billable != nil {
		billable = *req.Billable
	}

	now := time.Now()
	entry := domain.TimeEntry{
		EntryID:    uuid.NewString(),
		CompanyID:  caller.CompanyID,
		UserID:     caller.UserID,
		ProjectID:  req.ProjectID,
		ActivityID: req.ActivityID,
		Date:       date,
		Hours:      req.Hours,
		Billable:   billable,
		Note:       req.Note,
		GpsLat:     req.GpsLat,
		GpsLng:     req.GpsLng,
		Status:     domain.EntryDraft,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save time entry")
		return nil, err
	}
	return &entry, nil
}

func (s *timeEntryService) GetEntry(ctx context.Context, caller domain.Caller, entryID string) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleEmployee && entry.UserID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}
	return entry, nil
}

func (s *timeEntryService) ListEntries(ctx context.Context, caller domain.Caller, filter portsrepo.TimeEntryFilter) ([]domain.TimeEntry, error) {
	// Employees only ever see their own entries.
	if caller.Role == domain.RoleEmployee {
		userID := caller.UserID
		filter.UserID = &userID
	}
	return s.entryRepo.ListEntries(ctx, caller.CompanyID, filter)
}

func (s *timeEntryService) GetWeek(ctx context.Context, caller domain.Caller, targetUserID string, weekStart time.Time) (*dto.WeekViewResponse, error) {
	if targetUserID == "" {
		targetUserID = caller.UserID
	}
	if caller.Role == domain.RoleEmployee && targetUserID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}

	weekStart = timeweek.WeekStart(weekStart)
	weekEnd := timeweek.WeekEnd(weekStart)

	entries, err := s.entryRepo.ListWeekEntries(ctx, caller.CompanyID, targetUserID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, targetUserID, weekStart)
	if err != nil {
		return nil, err
	}

	summary := domain.WeekSummary{DailyTotals: make(map[string]float64)}
	for _, e := range entries {
		key := e.Date.Format("2006-01-02")
		summary.DailyTotals[key] += e.Hours
		summary.TotalHours += e.Hours
		if e.Billable {
			summary.BillableHours += e.Hours
		}
	}

	return &dto.WeekViewResponse{
		Entries:  entries,
		WeekLock: state.Lock,
		Summary:  summary,
	}, nil
}

// authorizeEntryEdit enforces the edit rules shared by update and delete.
// Employees may only touch their own DRAFT entries in an editable week.
// Supervisors and admins may correct entries past DRAFT only when the
// company's admin-edit-locked policy allows it.
func (s *timeEntryService) authorizeEntryEdit(ctx context.Context, caller domain.Caller, entry *domain.TimeEntry) error {
	if caller.Role == domain.RoleEmployee {
		if entry.UserID != caller.UserID {
			return apperrors.ErrForbidden
		}
		if entry.Status != domain.EntryDraft {
			return apperrors.ErrInvalidState
		}
		state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, entry.UserID, timeweek.WeekStart(entry.Date))
		if err != nil {
			return err
		}
		if !state.Editable() {
			return apperrors.ErrWeekLocked
		}
		return nil
	}

	if entry.Status != domain.EntryDraft {
		settings, err := s.settingsRepo.GetOrCreateSettings(ctx, caller.CompanyID)
		if err != nil {
			return err
		}
		if !settings.AdminEditLocked {
			return apperrors.ErrInvalidState
		}
	}
	return nil
}

func (s *timeEntryService) UpdateEntry(ctx context.Context, caller domain.Caller, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeEntryEdit(ctx, caller, entry); err != nil {
		return nil, err
	}

	oldValue := snapshotOf(entry)
	if err := s.applyEntryUpdate(ctx, caller, entry, req); err != nil {
		return nil, err
	}
	entry.UpdatedAt = time.Now()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update time entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "TimeEntry", entryID, oldValue, snapshotOf(entry))
	return entry, nil
}

func (s *timeEntryService) applyEntryUpdate(ctx context.Context, caller domain.Caller, entry *domain.TimeEntry, req dto.UpdateTimeEntryRequest) error {
	if req.Hours != nil {
		if !domain.ValidHours(*req.Hours) {
			return fmt.Errorf("%w: hours must be between 0 and 24", apperrors.ErrValidation)
		}
		entry.Hours = *req.Hours
	}
	if req.ActivityID != nil {
		if _, err := s.activityRepo.FindActivityByID(ctx, caller.CompanyID, *req.ActivityID); err != nil {
			return fmt.Errorf("activity: %w", err)
		}
		entry.ActivityID = *req.ActivityID
	}
	if req.ProjectID != nil {
		if *req.ProjectID == "" {
			entry.ProjectID = nil
		} else {
			if _, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, *req.ProjectID); err != nil {
				return fmt.Errorf("project: %w", err)
			}
			entry.ProjectID = req.ProjectID
		}
	}
	if req.Date != nil {
		date := timeweek.Truncate(req.Date.Time)
		// A date change can move the entry into another week; for employees
		// the target week must be editable too.
		if caller.Role == domain.RoleEmployee {
			targetWeek := timeweek.WeekStart(date)
			if !targetWeek.Equal(timeweek.WeekStart(entry.Date)) {
				state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, entry.UserID, targetWeek)
				if err != nil {
					return err
				}
				if !state.Editable() {
					return apperrors.ErrWeekLocked
				}
			}
		}
		entry.Date = date
	}
	if req.Billable != nil {
		entry.Billable = *req.Billable
	}
	if req.Note != nil {
		entry.Note = req.Note
	}
	if req.GpsLat != nil {
		entry.GpsLat = req.GpsLat
	}
	if req.GpsLng != nil {
		entry.GpsLng = req.GpsLng
	}
	return nil
}

func (s *timeEntryService) DeleteEntry(ctx context.Context, caller domain.Caller, entryID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return err
	}
	if err := s.authorizeEntryEdit(ctx, caller, entry); err != nil {
		return err
	}

	// Entry row and attachment rows go in one transaction; the files are
	// unlinked afterwards, best effort.
	paths, err := s.entryRepo.DeleteEntry(ctx, caller.CompanyID, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete time entry", slog.String("entry_id", entryID))
		return err
	}
	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			s.LogError(ctx, err, "Failed to remove attachment file", slog.String("path", path))
		}
	}

	s.Audit(ctx, caller, domain.AuditDelete, "TimeEntry", entryID, snapshotOf(entry), nil)
	return nil
}

func (s *timeEntryService) SyncEntries(ctx context.Context, caller domain.Caller, items []dto.SyncEntryItem) []dto.SyncEntryResult {
	results := make([]dto.SyncEntryResult, 0, len(items))
	for _, item := range items {
		result := dto.SyncEntryResult{LocalID: item.LocalID, EntryID: item.EntryID}

		entryID, err := s.syncOne(ctx, caller, item)
		if err != nil {
			result.Error = err.Error()
			s.LogDebug(ctx, "Sync item failed", slog.String("error", err.Error()))
		} else {
			result.EntryID = &entryID
			result.Synced = true
		}
		results = append(results, result)
	}
	return results
}

// syncOne replays a single offline item. Failures are per item: a locked
// week or a stale update must not sink the rest of the batch.
func (s *timeEntryService) syncOne(ctx context.Context, caller domain.Caller, item dto.SyncEntryItem) (string, error) {
	if item.EntryID == nil {
		entry, err := s.createEntry(ctx, caller, item.CreateTimeEntryRequest)
		if err != nil {
			return "", err
		}
		s.Audit(ctx, caller, domain.AuditCreate, "TimeEntry", entry.EntryID, nil, snapshotOf(entry))
		return entry.EntryID, nil
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, *item.EntryID)
	if err != nil {
		return "", err
	}
	if entry.UserID != caller.UserID || entry.Status != domain.EntryDraft {
		return "", apperrors.ErrInvalidState
	}

	state, err := s.lockRepo.FindLockState(ctx, caller.CompanyID, caller.UserID, timeweek.WeekStart(entry.Date))
	if err != nil {
		return "", err
	}
	if !state.Editable() {
		return "", apperrors.ErrWeekLocked
	}

	activity, err := s.activityRepo.FindActivityByID(ctx, caller.CompanyID, item.ActivityID)
	if err != nil {
		return "", fmt.Errorf("activity: %w", err)
	}

	// Offline items that omit billable take the activity default, same as create.
	billable := item.Billable
	if billable == nil {
		billable = &activity.BillableDefault
	}

	oldValue := snapshotOf(entry)
	entry.ActivityID = item.ActivityID
	update := dto.UpdateTimeEntryRequest{
		ProjectID: item.ProjectID,
		Date:      &item.Date,
		Hours:     &item.Hours,
		Billable:  billable,
		Note:      item.Note,
		GpsLat:    item.GpsLat,
		GpsLng:    item.GpsLng,
	}
	if err := s.applyEntryUpdate(ctx, caller, entry, update); err != nil {
		return "", err
	}
	entry.UpdatedAt = time.Now()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return "", err
	}
	s.Audit(ctx, caller, domain.AuditUpdate, "TimeEntry", entry.EntryID, oldValue, snapshotOf(entry))
	return entry.EntryID, nil
}

func (s *timeEntryService) AddAttachment(ctx context.Context, caller domain.Caller, entryID string, upload portssvc.AttachmentUpload) (*domain.Attachment, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}
	if caller.Role == domain.RoleEmployee && entry.UserID != caller.UserID {
		return nil, apperrors.ErrForbidden
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), upload.OriginalName)
	path, err := s.files.Save(filename, upload.Content)
	if err != nil {
		s.LogError(ctx, err, "Failed to store attachment file", slog.String("entry_id", entryID))
		return nil, err
	}

	attachment := domain.Attachment{
		AttachmentID: uuid.NewString(),
		TimeEntryID:  entryID,
		Filename:     filename,
		OriginalName: upload.OriginalName,
		MimeType:     upload.MimeType,
		Size:         upload.Size,
		Path:         path,
		CreatedAt:    time.Now(),
	}

	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		// Roll back the file so the store does not accumulate orphans.
		if rmErr := s.files.Remove(path); rmErr != nil {
			s.LogError(ctx, rmErr, "Failed to remove orphaned attachment file", slog.String("path", path))
		}
		return nil, err
	}
	return &attachment, nil
}

func (s *timeEntryService) DeleteAttachment(ctx context.Context, caller domain.Caller, entryID string, attachmentID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return err
	}
	if caller.Role == domain.RoleEmployee && entry.UserID != caller.UserID {
		return apperrors.ErrForbidden
	}

	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, entryID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return err
	}
	if err := s.files.Remove(attachment.Path); err != nil {
		s.LogError(ctx, err, "Failed to remove attachment file", slog.String("path", attachment.Path))
	}
	return nil
}
