package services

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// CustomerSvcFacade handles the customer register. Writes require a reviewer
// role (supervisor or admin).
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, caller domain.Caller, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomer(ctx context.Context, caller domain.Caller, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, caller domain.Caller, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
}

// ProjectSvcFacade handles the project register. Writes require a reviewer
// role.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, caller domain.Caller, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProject(ctx context.Context, caller domain.Caller, projectID string) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, caller domain.Caller, filter portsrepo.ProjectFilter) ([]dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, caller domain.Caller, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	ListProjectEntries(ctx context.Context, caller domain.Caller, projectID string, from *time.Time, to *time.Time) ([]domain.TimeEntry, error)
}

// ActivitySvcFacade handles the activity code catalog. Writes require the
// ADMIN role. The catalog supplies per-activity billable defaults consumed by
// the time entry lifecycle.
type ActivitySvcFacade interface {
	CreateActivity(ctx context.Context, caller domain.Caller, req dto.CreateActivityRequest) (*domain.Activity, error)
	GetActivity(ctx context.Context, caller domain.Caller, activityID string) (*domain.Activity, error)
	ListActivities(ctx context.Context, caller domain.Caller, filter portsrepo.ActivityFilter) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, caller domain.Caller, activityID string, req dto.UpdateActivityRequest) (*domain.Activity, error)
}

// SettingsSvcFacade handles per-company settings. Updates require the ADMIN
// role.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context, caller domain.Caller) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, caller domain.Caller, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
