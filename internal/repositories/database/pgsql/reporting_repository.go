package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

// PgxReportingRepository serves the read-only aggregations behind the payroll
// and invoice exports. Only APPROVED entries feed the exports.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) SalaryRows(ctx context.Context, companyID string, from time.Time, to time.Time, userID *string) ([]domain.SalaryReportRow, error) {
	query := `
		SELECT e.user_id, u.name AS user_name, e.date,
			a.code AS activity_code, a.name AS activity_name,
			e.hours, p.code AS project_code, e.note
		FROM time_entries e
		JOIN users u ON u.user_id = e.user_id
		JOIN activities a ON a.activity_id = e.activity_id
		LEFT JOIN projects p ON p.project_id = e.project_id
		WHERE e.company_id = $1
			AND e.status = 'APPROVED'
			AND e.date BETWEEN $2 AND $3
			AND ($4::text IS NULL OR e.user_id = $4)
		ORDER BY u.name, e.date, a.code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.SalaryReportRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect salary rows: %w", err)
	}
	return out, nil
}

func (r *PgxReportingRepository) InvoiceRows(ctx context.Context, companyID string, from time.Time, to time.Time, customerID *string, projectID *string) ([]domain.InvoiceReportRow, error) {
	query := `
		SELECT c.name AS customer_name, c.default_rate AS customer_default_rate,
			p.project_id, p.name AS project_name, p.code AS project_code,
			p.default_rate AS project_default_rate,
			e.date, a.name AS activity_name, a.rate_override AS activity_rate,
			u.name AS user_name, e.hours, e.note
		FROM time_entries e
		JOIN projects p ON p.project_id = e.project_id
		LEFT JOIN customers c ON c.customer_id = p.customer_id
		JOIN activities a ON a.activity_id = e.activity_id
		JOIN users u ON u.user_id = e.user_id
		WHERE e.company_id = $1
			AND e.status = 'APPROVED'
			AND e.billable
			AND e.date BETWEEN $2 AND $3
			AND ($4::text IS NULL OR p.customer_id = $4)
			AND ($5::text IS NULL OR p.project_id = $5)
		ORDER BY c.name NULLS LAST, p.code, e.date, u.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to, customerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice rows: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InvoiceReportRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice rows: %w", err)
	}
	return out, nil
}

func (r *PgxReportingRepository) ProjectHourTotals(ctx context.Context, companyID string) (map[string]float64, error) {
	query := `
		SELECT project_id, SUM(hours) AS total
		FROM time_entries
		WHERE company_id = $1 AND project_id IS NOT NULL
		GROUP BY project_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project hour totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var projectID string
		var total float64
		if err := rows.Scan(&projectID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan project hour total: %w", err)
		}
		totals[projectID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project hour totals: %w", err)
	}
	return totals, nil
}

func (r *PgxReportingRepository) SumHours(ctx context.Context, companyID string, userID string, from time.Time, to time.Time, billableOnly bool) (float64, error) {
	query := `
		SELECT COALESCE(SUM(hours), 0)
		FROM time_entries
		WHERE company_id = $1 AND user_id = $2
			AND date BETWEEN $3 AND $4
			AND ($5 = FALSE OR billable);
	`
	var total float64
	if err := r.Pool.QueryRow(ctx, query, companyID, userID, from, to, billableOnly).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum hours: %w", err)
	}
	return total, nil
}

func (r *PgxReportingRepository) CountActiveProjects(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM projects
		WHERE company_id = $1 AND active AND status = 'ONGOING';
	`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active projects: %w", err)
	}
	return count, nil
}
