package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// projectService handles the project register.
type projectService struct {
	BaseService
	projectRepo   portsrepo.ProjectRepository
	customerRepo  portsrepo.CustomerRepository
	entryRepo     portsrepo.TimeEntryRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectRepo portsrepo.ProjectRepository,
	customerRepo portsrepo.CustomerRepository,
	entryRepo portsrepo.TimeEntryRepository,
	reportingRepo portsrepo.ReportingRepository,
	auditRepo portsrepo.AuditLogRepository,
) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService:   BaseService{auditRepo: auditRepo},
		projectRepo:   projectRepo,
		customerRepo:  customerRepo,
		entryRepo:     entryRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, caller domain.Caller, req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, caller.CompanyID, *req.CustomerID); err != nil {
			return nil, fmt.Errorf("customer: %w", err)
		}
	}

	status := domain.ProjectOngoing
	if req.Status != nil {
		status = *req.Status
	}
	billingModel := domain.BillingHourly
	if req.BillingModel != nil {
		billingModel = *req.BillingModel
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:    uuid.NewString(),
		CompanyID:    caller.CompanyID,
		CustomerID:   req.CustomerID,
		Name:         req.Name,
		Code:         req.Code,
		Site:         req.Site,
		Status:       status,
		BudgetHours:  req.BudgetHours,
		BillingModel: billingModel,
		DefaultRate:  req.DefaultRate,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to create project")
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditCreate, "Project", project.ProjectID, nil, project)
	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("code", project.Code))
	return &project, nil
}

func (s *projectService) GetProject(ctx context.Context, caller domain.Caller, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, projectID)
	if err != nil {
		return nil, err
	}

	totals, err := s.reportingRepo.ProjectHourTotals(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: *project, TotalHours: totals[projectID]}, nil
}

func (s *projectService) ListProjects(ctx context.Context, caller domain.Caller, filter portsrepo.ProjectFilter) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListProjects(ctx, caller.CompanyID, filter)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportingRepo.ProjectHourTotals(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ProjectResponse{Project: p, TotalHours: totals[p.ProjectID]})
	}
	return out, nil
}

func (s *projectService) UpdateProject(ctx context.Context, caller domain.Caller, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, projectID)
	if err != nil {
		return nil, err
	}

	oldValue := *project
	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			project.CustomerID = nil
		} else {
			if _, err := s.customerRepo.FindCustomerByID(ctx, caller.CompanyID, *req.CustomerID); err != nil {
				return nil, fmt.Errorf("customer: %w", err)
			}
			project.CustomerID = req.CustomerID
		}
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Code != nil {
		project.Code = *req.Code
	}
	if req.Site != nil {
		project.Site = req.Site
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.BudgetHours != nil {
		project.BudgetHours = req.BudgetHours
	}
	if req.BillingModel != nil {
		project.BillingModel = *req.BillingModel
	}
	if req.DefaultRate != nil {
		project.DefaultRate = req.DefaultRate
	}
	if req.Active != nil {
		project.Active = *req.Active
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "Project", projectID, oldValue, *project)
	return project, nil
}

func (s *projectService) ListProjectEntries(ctx context.Context, caller domain.Caller, projectID string, from *time.Time, to *time.Time) ([]domain.TimeEntry, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, caller.CompanyID, projectID); err != nil {
		return nil, err
	}
	return s.entryRepo.ListEntries(ctx, caller.CompanyID, portsrepo.TimeEntryFilter{
		ProjectID: &projectID,
		From:      from,
		To:        to,
	})
}
