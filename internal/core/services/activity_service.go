package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// activityService handles the activity code catalog.
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo portsrepo.ActivityRepository, auditRepo portsrepo.AuditLogRepository) portssvc.ActivitySvcFacade {
	return &activityService{
		BaseService:  BaseService{auditRepo: auditRepo},
		activityRepo: activityRepo,
	}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) CreateActivity(ctx context.Context, caller domain.Caller, req dto.CreateActivityRequest) (*domain.Activity, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	category := domain.CategoryWork
	if req.Category != nil {
		category = *req.Category
	}
	billableDefault := true
	if req.BillableDefault != nil {
		billableDefault = *req.BillableDefault
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	now := time.Now()
	activity := domain.Activity{
		ActivityID:      uuid.NewString(),
		CompanyID:       caller.CompanyID,
		Name:            req.Name,
		Code:            req.Code,
		Category:        category,
		BillableDefault: billableDefault,
		RateOverride:    req.RateOverride,
		SortOrder:       sortOrder,
		Active:          true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.LogError(ctx, err, "Failed to create activity")
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditCreate, "Activity", activity.ActivityID, nil, activity)
	s.LogInfo(ctx, "Activity created",
		slog.String("activity_id", activity.ActivityID),
		slog.String("code", activity.Code))
	return &activity, nil
}

func (s *activityService) GetActivity(ctx context.Context, caller domain.Caller, activityID string) (*domain.Activity, error) {
	return s.activityRepo.FindActivityByID(ctx, caller.CompanyID, activityID)
}

func (s *activityService) ListActivities(ctx context.Context, caller domain.Caller, filter portsrepo.ActivityFilter) ([]domain.Activity, error) {
	return s.activityRepo.ListActivities(ctx, caller.CompanyID, filter)
}

func (s *activityService) UpdateActivity(ctx context.Context, caller domain.Caller, activityID string, req dto.UpdateActivityRequest) (*domain.Activity, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	activity, err := s.activityRepo.FindActivityByID(ctx, caller.CompanyID, activityID)
	if err != nil {
		return nil, err
	}

	oldValue := *activity
	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Code != nil {
		activity.Code = *req.Code
	}
	if req.Category != nil {
		activity.Category = *req.Category
	}
	if req.BillableDefault != nil {
		activity.BillableDefault = *req.BillableDefault
	}
	if req.RateOverride != nil {
		activity.RateOverride = req.RateOverride
	}
	if req.SortOrder != nil {
		activity.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		activity.Active = *req.Active
	}
	activity.UpdatedAt = time.Now()

	if err := s.activityRepo.UpdateActivity(ctx, *activity); err != nil {
		s.LogError(ctx, err, "Failed to update activity", slog.String("activity_id", activityID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "Activity", activityID, oldValue, *activity)
	return activity, nil
}
