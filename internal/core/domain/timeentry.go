package domain

import "time"

// TimeEntryStatus is the lifecycle state of a single time entry. Entries only
// move past DRAFT as a side effect of week-lock transitions; the status is
// never directly client-settable.
type TimeEntryStatus string

const (
	EntryDraft     TimeEntryStatus = "DRAFT"
	EntrySubmitted TimeEntryStatus = "SUBMITTED"
	EntryApproved  TimeEntryStatus = "APPROVED"
	EntryRejected  TimeEntryStatus = "REJECTED"
)

// MaxHoursPerEntry bounds the hours field of a single entry.
const MaxHoursPerEntry = 24.0

// TimeEntry represents one unit of worked time booked by a user on a date.
type TimeEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	UserID      string          `json:"userID"`
	ProjectID   *string         `json:"projectID,omitempty"` // Nil for internal time
	ActivityID  string          `json:"activityID"`
	Date        time.Time       `json:"date"`
	Hours       float64         `json:"hours"` // 0..24, fractional
	Billable    bool            `json:"billable"`
	Note        *string         `json:"note,omitempty"`
	GpsLat      *float64        `json:"gpsLat,omitempty"`
	GpsLng      *float64        `json:"gpsLng,omitempty"`
	Status      TimeEntryStatus `json:"status"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
	ApprovedAt  *time.Time      `json:"approvedAt,omitempty"`
	ApproverID  *string         `json:"approverID,omitempty"`
	RejectNote  *string         `json:"rejectNote,omitempty"` // Copied from the week lock comment on reject
	AuditFields
}

// ValidHours reports whether h is inside the allowed range for a single entry.
func ValidHours(h float64) bool {
	return h >= 0 && h <= MaxHoursPerEntry
}
