package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
)

// customerService handles the customer register.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository, auditRepo portsrepo.AuditLogRepository) portssvc.CustomerSvcFacade {
	return &customerService{
		BaseService:  BaseService{auditRepo: auditRepo},
		customerRepo: customerRepo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func requireReviewer(caller domain.Caller) error {
	if !caller.Role.CanReview() {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, caller domain.Caller, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		CompanyID:     caller.CompanyID,
		Name:          req.Name,
		OrgNo:         req.OrgNo,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		DefaultRate:   req.DefaultRate,
		Active:        true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditCreate, "Customer", customer.CustomerID, nil, customer)
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, caller domain.Caller, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, caller.CompanyID, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx, caller.CompanyID, includeInactive)
}

func (s *customerService) UpdateCustomer(ctx context.Context, caller domain.Caller, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := requireReviewer(caller); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, caller.CompanyID, customerID)
	if err != nil {
		return nil, err
	}

	oldValue := *customer
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.OrgNo != nil {
		customer.OrgNo = req.OrgNo
	}
	if req.ContactPerson != nil {
		customer.ContactPerson = req.ContactPerson
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.DefaultRate != nil {
		customer.DefaultRate = req.DefaultRate
	}
	if req.Active != nil {
		customer.Active = *req.Active
	}
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "Customer", customerID, oldValue, *customer)
	return customer, nil
}
