package dto

import "github.com/veckotid/time_tracking_app/internal/core/domain"

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	CustomerID   *string               `json:"customerID,omitempty"`
	Name         string                `json:"name" binding:"required,min=2"`
	Code         string                `json:"code" binding:"required,min=1"`
	Site         *string               `json:"site,omitempty"`
	Status       *domain.ProjectStatus `json:"status,omitempty" binding:"omitempty,oneof=PLANNED ONGOING COMPLETED INVOICED"`
	BudgetHours  *float64              `json:"budgetHours,omitempty"`
	BillingModel *domain.BillingModel  `json:"billingModel,omitempty" binding:"omitempty,oneof=HOURLY FIXED"`
	DefaultRate  *float64              `json:"defaultRate,omitempty"`
}

// UpdateProjectRequest is the payload for updating a project. Nil fields are
// left unchanged.
type UpdateProjectRequest struct {
	CustomerID   *string               `json:"customerID,omitempty"`
	Name         *string               `json:"name,omitempty" binding:"omitempty,min=2"`
	Code         *string               `json:"code,omitempty" binding:"omitempty,min=1"`
	Site         *string               `json:"site,omitempty"`
	Status       *domain.ProjectStatus `json:"status,omitempty" binding:"omitempty,oneof=PLANNED ONGOING COMPLETED INVOICED"`
	BudgetHours  *float64              `json:"budgetHours,omitempty"`
	BillingModel *domain.BillingModel  `json:"billingModel,omitempty" binding:"omitempty,oneof=HOURLY FIXED"`
	DefaultRate  *float64              `json:"defaultRate,omitempty"`
	Active       *bool                 `json:"active,omitempty"`
}

// ProjectResponse is a project joined with its booked hour total.
type ProjectResponse struct {
	domain.Project
	TotalHours float64 `json:"totalHours"`
}
