package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (audit_log_id, company_id, user_id, action, entity_type, entity_id, old_value, new_value, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditLogID,
		entry.CompanyID,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.OldValue,
		entry.NewValue,
		entry.IPAddress,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}
