package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, companyID string, includeInactive bool) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}
