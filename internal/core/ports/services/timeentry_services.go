package services

import (
	"context"
	"io"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// AttachmentUpload carries an uploaded file into the service layer.
type AttachmentUpload struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// TimeEntrySvcFacade governs the time entry lifecycle: CRUD honoring week
// lock state, offline replay, and attachments.
type TimeEntrySvcFacade interface {
	CreateEntry(ctx context.Context, caller domain.Caller, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error)
	GetEntry(ctx context.Context, caller domain.Caller, entryID string) (*domain.TimeEntry, error)
	ListEntries(ctx context.Context, caller domain.Caller, filter portsrepo.TimeEntryFilter) ([]domain.TimeEntry, error)
	// GetWeek returns the week view for targetUserID (employees may only
	// view their own week), resolving weekStart through the shared week
	// boundary rule.
	GetWeek(ctx context.Context, caller domain.Caller, targetUserID string, weekStart time.Time) (*dto.WeekViewResponse, error)
	UpdateEntry(ctx context.Context, caller domain.Caller, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, caller domain.Caller, entryID string) error
	// SyncEntries replays an offline batch sequentially. Items fail or
	// succeed independently; the result slice is parallel to the input.
	SyncEntries(ctx context.Context, caller domain.Caller, items []dto.SyncEntryItem) []dto.SyncEntryResult
	AddAttachment(ctx context.Context, caller domain.Caller, entryID string, upload AttachmentUpload) (*domain.Attachment, error)
	DeleteAttachment(ctx context.Context, caller domain.Caller, entryID string, attachmentID string) error
}
