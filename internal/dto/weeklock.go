package dto

// SubmitWeekRequest asks for the caller's week starting at WeekStartDate to
// be submitted for approval. The date must be a Monday.
type SubmitWeekRequest struct {
	WeekStartDate Date `json:"weekStartDate" binding:"required"`
}

// RejectWeekRequest carries the mandatory rejection reason.
type RejectWeekRequest struct {
	Comment string `json:"comment" binding:"required,min=1"`
}

// PendingCountResponse is the number of week locks awaiting review.
type PendingCountResponse struct {
	Count int `json:"count"`
}
