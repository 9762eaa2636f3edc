package services

import (
	"context"
	"time"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// CSVExport is a rendered CSV document ready to be served as a download.
type CSVExport struct {
	Filename string
	Content  []byte
}

// ReportingSvcFacade derives payroll and invoice summaries from approved
// entries. Salary and invoice reports require a reviewer role.
type ReportingSvcFacade interface {
	SalaryReport(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, userID *string) (*dto.SalaryReportResponse, error)
	SalaryReportCSV(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, userID *string) (*CSVExport, error)
	InvoiceReport(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, customerID *string, projectID *string) (*dto.InvoiceReportResponse, error)
	InvoiceReportCSV(ctx context.Context, caller domain.Caller, from time.Time, to time.Time, customerID *string, projectID *string) (*CSVExport, error)
	ProjectReport(ctx context.Context, caller domain.Caller, projectID string, from *time.Time, to *time.Time) (*dto.ProjectReportResponse, error)
	Dashboard(ctx context.Context, caller domain.Caller, now time.Time) (*dto.DashboardResponse, error)
}
