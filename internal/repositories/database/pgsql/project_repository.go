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

const projectColumns = `project_id, company_id, customer_id, name, code, site, status, budget_hours, billing_model, default_rate, active, created_at, updated_at`

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.CompanyID,
		project.CustomerID,
		project.Name,
		project.Code,
		project.Site,
		project.Status,
		project.BudgetHours,
		project.BillingModel,
		project.DefaultRate,
		project.Active,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project code is already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE company_id = $1 AND project_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project %s: %w", projectID, err)
	}
	project, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect project %s: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, companyID string, filter portsrepo.ProjectFilter) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE company_id = $1
			AND ($2::text IS NULL OR status = $2)
			AND ($3::text IS NULL OR customer_id = $3)
			AND ($4::boolean IS NULL OR active = $4)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, filter.Status, filter.CustomerID, filter.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to collect projects: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects SET
			customer_id = $3,
			name = $4,
			code = $5,
			site = $6,
			status = $7,
			budget_hours = $8,
			billing_model = $9,
			default_rate = $10,
			active = $11,
			updated_at = $12
		WHERE company_id = $1 AND project_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		project.CompanyID,
		project.ProjectID,
		project.CustomerID,
		project.Name,
		project.Code,
		project.Site,
		project.Status,
		project.BudgetHours,
		project.BillingModel,
		project.DefaultRate,
		project.Active,
		project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project code is already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
