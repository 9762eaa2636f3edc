package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryReportRow is one approved entry joined with the fields payroll needs.
type SalaryReportRow struct {
	UserID       string    `json:"userID"`
	UserName     string    `json:"userName"`
	Date         time.Time `json:"date"`
	ActivityCode string    `json:"activityCode"`
	ActivityName string    `json:"activityName"`
	Hours        float64   `json:"hours"`
	ProjectCode  *string   `json:"projectCode,omitempty"`
	Note         *string   `json:"note,omitempty"`
}

// InvoiceReportRow is one approved billable entry joined with the rate chain
// needed to price it. Rate precedence: activity override, then project
// default, then customer default, then zero.
type InvoiceReportRow struct {
	CustomerName        *string   `json:"customerName,omitempty"`
	CustomerDefaultRate *float64  `json:"customerDefaultRate,omitempty"`
	ProjectID           string    `json:"projectID"`
	ProjectName         string    `json:"projectName"`
	ProjectCode         string    `json:"projectCode"`
	ProjectDefaultRate  *float64  `json:"projectDefaultRate,omitempty"`
	Date                time.Time `json:"date"`
	ActivityName        string    `json:"activityName"`
	ActivityRate        *float64  `json:"activityRate,omitempty"`
	UserName            string    `json:"userName"`
	Hours               float64   `json:"hours"`
	Note                *string   `json:"note,omitempty"`
}

// Rate resolves the hourly rate for the row.
func (r InvoiceReportRow) Rate() decimal.Decimal {
	switch {
	case r.ActivityRate != nil:
		return decimal.NewFromFloat(*r.ActivityRate)
	case r.ProjectDefaultRate != nil:
		return decimal.NewFromFloat(*r.ProjectDefaultRate)
	case r.CustomerDefaultRate != nil:
		return decimal.NewFromFloat(*r.CustomerDefaultRate)
	default:
		return decimal.Zero
	}
}

// Amount is the billable amount for the row: hours times resolved rate.
func (r InvoiceReportRow) Amount() decimal.Decimal {
	return decimal.NewFromFloat(r.Hours).Mul(r.Rate())
}

// ProjectReportSummary aggregates a project's hours for the project report.
type ProjectReportSummary struct {
	TotalHours      float64            `json:"totalHours"`
	BillableHours   float64            `json:"billableHours"`
	BudgetHours     *float64           `json:"budgetHours,omitempty"`
	BudgetRemaining *float64           `json:"budgetRemaining,omitempty"`
	ByUser          map[string]float64 `json:"byUser"`
	ByActivity      map[string]float64 `json:"byActivity"`
}

// WeekSummary aggregates one user's hours for a week view.
type WeekSummary struct {
	TotalHours    float64            `json:"totalHours"`
	BillableHours float64            `json:"billableHours"`
	DailyTotals   map[string]float64 `json:"dailyTotals"` // Keyed by YYYY-MM-DD
}
