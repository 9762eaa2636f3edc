package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	"github.com/veckotid/time_tracking_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	auditRepo portsrepo.AuditLogRepository
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Audit appends an audit record. Old and new values are JSON-serialized
// snapshots; nil means no snapshot. Audit failures are logged, never
// surfaced: the business operation has already happened.
func (s *BaseService) Audit(ctx context.Context, caller domain.Caller, action domain.AuditAction, entityType string, entityID string, oldValue any, newValue any) {
	if s.auditRepo == nil {
		return
	}

	entry := domain.AuditLog{
		AuditLogID: uuid.NewString(),
		CompanyID:  caller.CompanyID,
		Action:     action,
		EntityType: entityType,
		CreatedAt:  time.Now(),
	}
	if caller.UserID != "" {
		userID := caller.UserID
		entry.UserID = &userID
	}
	if entityID != "" {
		entry.EntityID = &entityID
	}
	if snapshot := marshalSnapshot(oldValue); snapshot != nil {
		entry.OldValue = snapshot
	}
	if snapshot := marshalSnapshot(newValue); snapshot != nil {
		entry.NewValue = snapshot
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append audit record",
			slog.String("action", string(action)),
			slog.String("entity_type", entityType))
	}
}

func marshalSnapshot(v any) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(data)
	return &str
}
