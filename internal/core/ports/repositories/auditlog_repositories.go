package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// AuditLogRepository appends audit records. Write-only from the core's
// perspective; reading the trail is an operational concern.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}
