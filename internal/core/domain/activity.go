package domain

// ActivityCategory groups activity codes for reporting purposes.
type ActivityCategory string

const (
	CategoryWork        ActivityCategory = "WORK"
	CategoryTravel      ActivityCategory = "TRAVEL"
	CategoryMeeting     ActivityCategory = "MEETING"
	CategoryInternal    ActivityCategory = "INTERNAL"
	CategoryChangeOrder ActivityCategory = "CHANGE_ORDER"
	CategoryAbsence     ActivityCategory = "ABSENCE"
)

// Activity is an activity code that every time entry references. It supplies
// the default billability for entries that do not set the flag explicitly.
type Activity struct {
	ActivityID      string           `json:"activityID"` // Primary Key (UUID)
	CompanyID       string           `json:"companyID"`
	Name            string           `json:"name"`
	Code            string           `json:"code"` // Unique per company, used in payroll exports
	Category        ActivityCategory `json:"category"`
	BillableDefault bool             `json:"billableDefault"`
	RateOverride    *float64         `json:"rateOverride,omitempty"` // Overrides project/customer rate on invoices
	SortOrder       int              `json:"sortOrder"`
	Active          bool             `json:"active"`
	AuditFields
}
