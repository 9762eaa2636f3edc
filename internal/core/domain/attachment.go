package domain

import "time"

// Attachment is a file (photo, receipt) stored alongside a time entry. The
// row references the file by path; the bytes live in the attachment store.
type Attachment struct {
	AttachmentID string    `json:"attachmentID"` // Primary Key (UUID)
	TimeEntryID  string    `json:"timeEntryID"`
	Filename     string    `json:"filename"` // Name in the attachment store
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"createdAt"`
}
