package dto

import "github.com/veckotid/time_tracking_app/internal/core/domain"

// CreateActivityRequest is the admin payload for creating an activity code.
type CreateActivityRequest struct {
	Name            string                   `json:"name" binding:"required,min=2"`
	Code            string                   `json:"code" binding:"required,min=1"`
	Category        *domain.ActivityCategory `json:"category,omitempty" binding:"omitempty,oneof=WORK TRAVEL MEETING INTERNAL CHANGE_ORDER ABSENCE"`
	BillableDefault *bool                    `json:"billableDefault,omitempty"`
	RateOverride    *float64                 `json:"rateOverride,omitempty"`
	SortOrder       *int                     `json:"sortOrder,omitempty"`
}

// UpdateActivityRequest is the admin payload for updating an activity code.
// Nil fields are left unchanged.
type UpdateActivityRequest struct {
	Name            *string                  `json:"name,omitempty" binding:"omitempty,min=2"`
	Code            *string                  `json:"code,omitempty" binding:"omitempty,min=1"`
	Category        *domain.ActivityCategory `json:"category,omitempty" binding:"omitempty,oneof=WORK TRAVEL MEETING INTERNAL CHANGE_ORDER ABSENCE"`
	BillableDefault *bool                    `json:"billableDefault,omitempty"`
	RateOverride    *float64                 `json:"rateOverride,omitempty"`
	SortOrder       *int                     `json:"sortOrder,omitempty"`
	Active          *bool                    `json:"active,omitempty"`
}
