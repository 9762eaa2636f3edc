package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

const customerColumns = `customer_id, company_id, name, org_no, contact_person, email, phone, default_rate, active, created_at, updated_at`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.CompanyID,
		customer.Name,
		customer.OrgNo,
		customer.ContactPerson,
		customer.Email,
		customer.Phone,
		customer.DefaultRate,
		customer.Active,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE company_id = $1 AND customer_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %s: %w", customerID, err)
	}
	customer, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Customer])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect customer %s: %w", customerID, err)
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, companyID string, includeInactive bool) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE company_id = $1 AND ($2 OR active)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	customers, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Customer])
	if err != nil {
		return nil, fmt.Errorf("failed to collect customers: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers SET
			name = $3,
			org_no = $4,
			contact_person = $5,
			email = $6,
			phone = $7,
			default_rate = $8,
			active = $9,
			updated_at = $10
		WHERE company_id = $1 AND customer_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		customer.CompanyID,
		customer.CustomerID,
		customer.Name,
		customer.OrgNo,
		customer.ContactPerson,
		customer.Email,
		customer.Phone,
		customer.DefaultRate,
		customer.Active,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
