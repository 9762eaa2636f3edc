package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// AttachmentRepository defines persistence operations for attachment metadata.
// The file bytes themselves live in the attachment store.
type AttachmentRepository interface {
	SaveAttachment(ctx context.Context, attachment domain.Attachment) error
	FindAttachmentByID(ctx context.Context, timeEntryID string, attachmentID string) (*domain.Attachment, error)
	ListAttachmentsByEntry(ctx context.Context, timeEntryID string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}
