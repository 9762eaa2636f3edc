package dto

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name          string   `json:"name" binding:"required,min=2"`
	OrgNo         *string  `json:"orgNo,omitempty"`
	ContactPerson *string  `json:"contactPerson,omitempty"`
	Email         *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string  `json:"phone,omitempty"`
	DefaultRate   *float64 `json:"defaultRate,omitempty"`
}

// UpdateCustomerRequest is the payload for updating a customer. Nil fields
// are left unchanged.
type UpdateCustomerRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=2"`
	OrgNo         *string  `json:"orgNo,omitempty"`
	ContactPerson *string  `json:"contactPerson,omitempty"`
	Email         *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string  `json:"phone,omitempty"`
	DefaultRate   *float64 `json:"defaultRate,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}
