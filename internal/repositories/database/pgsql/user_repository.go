package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

const userColumns = `user_id, company_id, email, password_hash, name, role, hourly_cost, active, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.CompanyID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.HourlyCost,
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;
	`
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect user by email: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE company_id = $1 AND user_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", userID, err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect user %s: %w", userID, err)
	}
	return &user, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, companyID string, includeInactive bool) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE company_id = $1 AND ($2 OR active)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users SET
			email = $3,
			name = $4,
			role = $5,
			hourly_cost = $6,
			active = $7,
			updated_at = $8
		WHERE company_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.CompanyID,
		user.UserID,
		user.Email,
		user.Name,
		user.Role,
		user.HourlyCost,
		user.Active,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, companyID string, userID string, passwordHash string, updatedAt time.Time) error {
	query := `
		UPDATE users SET password_hash = $3, updated_at = $4
		WHERE company_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, userID, passwordHash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeactivateUser(ctx context.Context, companyID string, userID string, updatedAt time.Time) error {
	query := `
		UPDATE users SET active = FALSE, updated_at = $3
		WHERE company_id = $1 AND user_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, userID, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// EraseUserData removes the user and everything they own in one transaction.
// Audit rows keep their action and timestamps but lose the user reference.
func (r *PgxUserRepository) EraseUserData(ctx context.Context, companyID string, userID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	pathRows, err := tx.Query(ctx, `
		SELECT a.path
		FROM attachments a
		JOIN time_entries e ON e.entry_id = a.time_entry_id
		WHERE e.company_id = $1 AND e.user_id = $2;
	`, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachment paths: %w", err)
	}
	paths, err := pgx.CollectRows(pathRows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect attachment paths: %w", err)
	}

	statements := []string{
		`DELETE FROM attachments a USING time_entries e
			WHERE e.entry_id = a.time_entry_id AND e.company_id = $1 AND e.user_id = $2`,
		`DELETE FROM time_entries WHERE company_id = $1 AND user_id = $2`,
		`DELETE FROM week_locks WHERE company_id = $1 AND user_id = $2`,
		`UPDATE week_locks SET reviewer_id = NULL WHERE company_id = $1 AND reviewer_id = $2`,
		`UPDATE time_entries SET approver_id = NULL WHERE company_id = $1 AND approver_id = $2`,
		`UPDATE audit_logs SET user_id = NULL, ip_address = NULL WHERE company_id = $1 AND user_id = $2`,
		`DELETE FROM users WHERE company_id = $1 AND user_id = $2`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, companyID, userID); err != nil {
			return nil, fmt.Errorf("failed to erase user data: %w", err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return paths, nil
}
