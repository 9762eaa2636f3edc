package repositories

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// ReportingRepository serves the read-only aggregations behind payroll and
// invoice exports and the dashboard. Only APPROVED entries feed the salary
// and invoice reports.
type ReportingRepository interface {
	SalaryRows(ctx context.Context, companyID string, from time.Time, to time.Time, userID *string) ([]domain.SalaryReportRow, error)
	InvoiceRows(ctx context.Context, companyID string, from time.Time, to time.Time, customerID *string, projectID *string) ([]domain.InvoiceReportRow, error)
	// ProjectHourTotals returns total hours per project for the company.
	ProjectHourTotals(ctx context.Context, companyID string) (map[string]float64, error)
	// SumHours totals entry hours for one user in [from, to], optionally
	// billable-only.
	SumHours(ctx context.Context, companyID string, userID string, from time.Time, to time.Time, billableOnly bool) (float64, error)
	CountActiveProjects(ctx context.Context, companyID string) (int, error)
}
