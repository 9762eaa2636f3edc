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

const attachmentColumns = `attachment_id, time_entry_id, filename, original_name, mime_type, size, path, created_at`

type PgxAttachmentRepository struct {
	BaseRepository
}

func newPgxAttachmentRepository(db *pgxpool.Pool) portsrepo.AttachmentRepository {
	return &PgxAttachmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AttachmentRepository = (*PgxAttachmentRepository)(nil)

func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	query := `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		attachment.AttachmentID,
		attachment.TimeEntryID,
		attachment.Filename,
		attachment.OriginalName,
		attachment.MimeType,
		attachment.Size,
		attachment.Path,
		attachment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}
	return nil
}

func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, timeEntryID string, attachmentID string) (*domain.Attachment, error) {
	query := `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE time_entry_id = $1 AND attachment_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, timeEntryID, attachmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachment %s: %w", attachmentID, err)
	}
	attachment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Attachment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect attachment %s: %w", attachmentID, err)
	}
	return &attachment, nil
}

func (r *PgxAttachmentRepository) ListAttachmentsByEntry(ctx context.Context, timeEntryID string) ([]domain.Attachment, error) {
	query := `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE time_entry_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, timeEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	attachments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Attachment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect attachments: %w", err)
	}
	return attachments, nil
}

func (r *PgxAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM attachments WHERE attachment_id = $1;`, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment %s: %w", attachmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
