package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status     *domain.ProjectStatus
	CustomerID *string
	Active     *bool
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, companyID string, filter ProjectFilter) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
}
