package dto

import (
	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// ReportPeriod echoes the requested date range.
type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SalaryReportResponse is the JSON form of the payroll export.
type SalaryReportResponse struct {
	Period  ReportPeriod                  `json:"period"`
	Rows    []domain.SalaryReportRow      `json:"rows"`
	Summary map[string]map[string]float64 `json:"summary"` // user name -> activity code -> hours
	Totals  SalaryReportTotals            `json:"totals"`
}

// SalaryReportTotals aggregates the payroll export.
type SalaryReportTotals struct {
	TotalHours  float64 `json:"totalHours"`
	UniqueUsers int     `json:"uniqueUsers"`
}

// InvoiceReportRowResponse is an invoice row with its resolved rate and amount.
type InvoiceReportRowResponse struct {
	domain.InvoiceReportRow
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
}

// InvoiceProjectGroup aggregates invoice rows per project.
type InvoiceProjectGroup struct {
	ProjectID   string  `json:"projectID"`
	ProjectName string  `json:"projectName"`
	ProjectCode string  `json:"projectCode"`
	TotalHours  float64 `json:"totalHours"`
	TotalAmount string  `json:"totalAmount"`
}

// InvoiceReportResponse is the JSON form of the invoicing export.
type InvoiceReportResponse struct {
	Period    ReportPeriod               `json:"period"`
	Rows      []InvoiceReportRowResponse `json:"rows"`
	ByProject []InvoiceProjectGroup      `json:"byProject"`
	Totals    InvoiceReportTotals        `json:"totals"`
}

// InvoiceReportTotals aggregates the invoicing export.
type InvoiceReportTotals struct {
	TotalHours  float64 `json:"totalHours"`
	TotalAmount string  `json:"totalAmount"`
	VatAmount   string  `json:"vatAmount"`
	GrandTotal  string  `json:"grandTotal"`
}

// ProjectReportResponse is the per-project drilldown.
type ProjectReportResponse struct {
	Project *domain.Project             `json:"project"`
	Entries []domain.TimeEntry          `json:"entries"`
	Summary domain.ProjectReportSummary `json:"summary"`
}

// DashboardResponse is the landing-page summary for the caller.
type DashboardResponse struct {
	WeekHours      float64               `json:"weekHours"`
	MonthHours     float64               `json:"monthHours"`
	WeekLockStatus domain.WeekLockStatus `json:"weekLockStatus,omitempty"`
	PendingCount   *int                  `json:"pendingCount,omitempty"` // Reviewers only
	ActiveProjects int                   `json:"activeProjects"`
}
