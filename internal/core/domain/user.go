package domain

// UserRole defines the possible roles a user can have within a company.
type UserRole string

const (
	RoleEmployee   UserRole = "EMPLOYEE"
	RoleSupervisor UserRole = "SUPERVISOR"
	RoleAdmin      UserRole = "ADMIN"
)

// CanReview reports whether the role may approve, reject or unlock weeks and
// run company-wide reports.
func (r UserRole) CanReview() bool {
	return r == RoleSupervisor || r == RoleAdmin
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	CompanyID    string   `json:"companyID"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	HourlyCost   *float64 `json:"hourlyCost,omitempty"` // Internal cost per hour, for payroll reports
	Active       bool     `json:"active"`
	AuditFields
}

// Caller identifies the authenticated user performing an operation, as carried
// by the JWT claims. Services use it for ownership and role checks.
type Caller struct {
	UserID    string
	CompanyID string
	Role      UserRole
}
