package domain

// ProjectStatus indicates where a project is in its lifecycle.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "PLANNED"
	ProjectOngoing   ProjectStatus = "ONGOING"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectInvoiced  ProjectStatus = "INVOICED"
)

// BillingModel indicates how a project is billed.
type BillingModel string

const (
	BillingHourly BillingModel = "HOURLY"
	BillingFixed  BillingModel = "FIXED"
)

// Project represents a job that time entries can be booked against.
// CustomerID is nullable: internal projects have no customer.
type Project struct {
	ProjectID    string        `json:"projectID"` // Primary Key (UUID)
	CompanyID    string        `json:"companyID"`
	CustomerID   *string       `json:"customerID,omitempty"`
	Name         string        `json:"name"`
	Code         string        `json:"code"` // Unique per company
	Site         *string       `json:"site,omitempty"`
	Status       ProjectStatus `json:"status"`
	BudgetHours  *float64      `json:"budgetHours,omitempty"`
	BillingModel BillingModel  `json:"billingModel"`
	DefaultRate  *float64      `json:"defaultRate,omitempty"`
	Active       bool          `json:"active"`
	AuditFields
}
