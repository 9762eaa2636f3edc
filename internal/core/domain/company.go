package domain

// Company is the tenant boundary. Every user, customer, project, activity and
// time entry belongs to exactly one company, and no query may cross it.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (UUID)
	Name      string `json:"name"`
	OrgNo     string `json:"orgNo"` // Organisation number, optional
	AuditFields
}
