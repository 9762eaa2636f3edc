package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/storage"
	"github.com/veckotid/time_tracking_app/internal/utils"
)

// userService handles user administration. Every write requires ADMIN.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	files    storage.FileStore
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo portsrepo.UserRepository,
	auditRepo portsrepo.AuditLogRepository,
	files storage.FileStore,
) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{auditRepo: auditRepo},
		userRepo:    userRepo,
		files:       files,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func requireAdmin(caller domain.Caller) error {
	if caller.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

// userSnapshot is the audit payload for user mutations. It never carries the
// password hash.
type userSnapshot struct {
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   domain.UserRole `json:"role"`
	Active bool            `json:"active"`
}

func snapshotOfUser(u *domain.User) userSnapshot {
	return userSnapshot{Email: u.Email, Name: u.Name, Role: u.Role, Active: u.Active}
}

func (s *userService) CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    caller.CompanyID,
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		HourlyCost:   req.HourlyCost,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create user")
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditCreate, "User", user.UserID, nil, snapshotOfUser(&user))
	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, caller.CompanyID, userID)
}

func (s *userService) ListUsers(ctx context.Context, caller domain.Caller, includeInactive bool) ([]domain.User, error) {
	// Reviewers need the roster for approvals and reports; employees do not.
	if !caller.Role.CanReview() {
		return nil, apperrors.ErrForbidden
	}
	return s.userRepo.ListUsers(ctx, caller.CompanyID, includeInactive)
}

func (s *userService) UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, caller.CompanyID, userID)
	if err != nil {
		return nil, err
	}

	oldValue := snapshotOfUser(user)
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
				return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.HourlyCost != nil {
		user.HourlyCost = req.HourlyCost
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "User", userID, oldValue, snapshotOfUser(user))
	return user, nil
}

func (s *userService) DeactivateUser(ctx context.Context, caller domain.Caller, userID string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if userID == caller.UserID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrValidation)
	}
	user, err := s.userRepo.FindUserByID(ctx, caller.CompanyID, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeactivateUser(ctx, caller.CompanyID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate user", slog.String("user_id", userID))
		return err
	}

	s.Audit(ctx, caller, domain.AuditUpdate, "User", userID, snapshotOfUser(user), userSnapshot{
		Email: user.Email, Name: user.Name, Role: user.Role, Active: false,
	})
	s.LogInfo(ctx, "User deactivated", slog.String("user_id", userID))
	return nil
}

func (s *userService) EraseUser(ctx context.Context, caller domain.Caller, userID string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if userID == caller.UserID {
		return fmt.Errorf("%w: cannot erase your own account", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, caller.CompanyID, userID); err != nil {
		return err
	}

	// One transaction removes the user, their entries, locks and attachment
	// rows and anonymizes their audit trail. Files are unlinked afterwards.
	paths, err := s.userRepo.EraseUserData(ctx, caller.CompanyID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to erase user data", slog.String("user_id", userID))
		return err
	}
	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			s.LogError(ctx, err, "Failed to remove attachment file", slog.String("path", path))
		}
	}

	// The audit record names only the entity ID; the personal data is gone.
	s.Audit(ctx, caller, domain.AuditGDPRDelete, "User", userID, nil, nil)
	s.LogInfo(ctx, "User data erased",
		slog.String("user_id", userID),
		slog.Int("attachments_removed", len(paths)))
	return nil
}
