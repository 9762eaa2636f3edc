package repositories

import (
	"context"

	"github.com/veckotid/time_tracking_app/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies (tenants).
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}
