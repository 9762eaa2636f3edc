package dto

import "github.com/veckotid/time_tracking_app/internal/core/domain"

// CreateTimeEntryRequest is the payload for creating a time entry. When
// Billable is nil it defaults from the referenced activity.
type CreateTimeEntryRequest struct {
	ProjectID  *string  `json:"projectID,omitempty"`
	ActivityID string   `json:"activityID" binding:"required"`
	Date       Date     `json:"date" binding:"required"`
	Hours      float64  `json:"hours"`
	Billable   *bool    `json:"billable,omitempty"`
	Note       *string  `json:"note,omitempty"`
	GpsLat     *float64 `json:"gpsLat,omitempty"`
	GpsLng     *float64 `json:"gpsLng,omitempty"`
}

// UpdateTimeEntryRequest is the payload for partially updating a time entry.
// Nil fields are left unchanged; status is never client-settable.
type UpdateTimeEntryRequest struct {
	ProjectID  *string  `json:"projectID,omitempty"`
	ActivityID *string  `json:"activityID,omitempty"`
	Date       *Date    `json:"date,omitempty"`
	Hours      *float64 `json:"hours,omitempty"`
	Billable   *bool    `json:"billable,omitempty"`
	Note       *string  `json:"note,omitempty"`
	GpsLat     *float64 `json:"gpsLat,omitempty"`
	GpsLng     *float64 `json:"gpsLng,omitempty"`
}

// SyncEntryItem is one element of an offline replay batch. EntryID set means
// update, absent means create. LocalID is the client-generated correlation id
// echoed back in the result.
type SyncEntryItem struct {
	LocalID *string `json:"localID,omitempty"`
	EntryID *string `json:"entryID,omitempty"`
	CreateTimeEntryRequest
}

// SyncEntryResult reports the outcome for one replayed item. Error is empty
// on success.
type SyncEntryResult struct {
	LocalID *string `json:"localID,omitempty"`
	EntryID *string `json:"entryID,omitempty"`
	Synced  bool    `json:"synced"`
	Error   string  `json:"error,omitempty"`
}

// SyncEntriesRequest is the offline replay batch.
type SyncEntriesRequest struct {
	Entries []SyncEntryItem `json:"entries" binding:"required"`
}

// SyncEntriesResponse carries one result per replayed item, in input order.
type SyncEntriesResponse struct {
	Results []SyncEntryResult `json:"results"`
}

// WeekViewResponse is the week page payload: the week's entries, the lock if
// any, and hour summaries.
type WeekViewResponse struct {
	Entries  []domain.TimeEntry `json:"entries"`
	WeekLock *domain.WeekLock   `json:"weekLock,omitempty"`
	Summary  domain.WeekSummary `json:"summary"`
}
