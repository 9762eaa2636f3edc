package domain

// Customer represents a client company that projects are billed to.
type Customer struct {
	CustomerID    string   `json:"customerID"` // Primary Key (UUID)
	CompanyID     string   `json:"companyID"`
	Name          string   `json:"name"`
	OrgNo         *string  `json:"orgNo,omitempty"`
	ContactPerson *string  `json:"contactPerson,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	DefaultRate   *float64 `json:"defaultRate,omitempty"` // Fallback hourly rate for invoicing
	Active        bool     `json:"active"`
	AuditFields
}
