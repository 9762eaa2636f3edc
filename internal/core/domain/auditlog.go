package domain

import "time"

// AuditAction identifies what kind of operation an audit record captures.
type AuditAction string

const (
	AuditCreate     AuditAction = "CREATE"
	AuditUpdate     AuditAction = "UPDATE"
	AuditDelete     AuditAction = "DELETE"
	AuditSubmit     AuditAction = "SUBMIT"
	AuditApprove    AuditAction = "APPROVE"
	AuditReject     AuditAction = "REJECT"
	AuditUnlock     AuditAction = "UNLOCK"
	AuditExport     AuditAction = "EXPORT"
	AuditLogin      AuditAction = "LOGIN"
	AuditGDPRDelete AuditAction = "GDPR_DELETE"
)

// AuditLog records who did what to which entity. OldValue/NewValue hold
// JSON-serialized before/after snapshots. UserID is nullable because GDPR
// erasure anonymizes a user's audit trail rather than deleting it.
type AuditLog struct {
	AuditLogID string      `json:"auditLogID"` // Primary Key (UUID)
	CompanyID  string      `json:"companyID"`
	UserID     *string     `json:"userID,omitempty"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entityType"`
	EntityID   *string     `json:"entityID,omitempty"`
	OldValue   *string     `json:"oldValue,omitempty"`
	NewValue   *string     `json:"newValue,omitempty"`
	IPAddress  *string     `json:"ipAddress,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
