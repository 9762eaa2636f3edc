package domain

import "time"

// WeekLockStatus is the state of a week lock row. There is no UNLOCKED value:
// an unlocked week is represented by the absence of a row, see LockState.
type WeekLockStatus string

const (
	WeekSubmitted WeekLockStatus = "SUBMITTED"
	WeekApproved  WeekLockStatus = "APPROVED"
	WeekRejected  WeekLockStatus = "REJECTED"
)

// WeekLock governs whether a user's time entries for one week are editable.
// At most one row exists per (user, week start date); WeekStartDate is always
// the Monday of the ISO week.
type WeekLock struct {
	WeekLockID    string         `json:"weekLockID"` // Primary Key (UUID)
	CompanyID     string         `json:"companyID"`
	UserID        string         `json:"userID"`
	WeekStartDate time.Time      `json:"weekStartDate"`
	Status        WeekLockStatus `json:"status"`
	Comment       *string        `json:"comment,omitempty"` // Rejection reason
	SubmittedAt   time.Time      `json:"submittedAt"`
	ReviewedAt    *time.Time     `json:"reviewedAt,omitempty"`
	ReviewerID    *string        `json:"reviewerID,omitempty"`
}

// LockState is the resolved lock status of a (user, week) pair. The zero
// value means the week is unlocked: lock lookups return this variant instead
// of a not-found error, so callers never have to treat row absence specially.
type LockState struct {
	Lock *WeekLock
}

// Unlocked reports whether no lock row exists for the week.
func (s LockState) Unlocked() bool {
	return s.Lock == nil
}

// Editable reports whether the week's entries may be created, updated or
// deleted by their owner. A rejected week is editable so the owner can fix
// and resubmit it.
func (s LockState) Editable() bool {
	return s.Lock == nil || s.Lock.Status == WeekRejected
}

// Status returns the lock status, or the empty string for an unlocked week.
func (s LockState) Status() WeekLockStatus {
	if s.Lock == nil {
		return ""
	}
	return s.Lock.Status
}

// WeekLockSummary is a lock row joined with hour totals for listing pending
// approvals.
type WeekLockSummary struct {
	WeekLock
	UserName      string  `json:"userName"`
	TotalHours    float64 `json:"totalHours"`
	BillableHours float64 `json:"billableHours"`
	EntryCount    int     `json:"entryCount"`
}
