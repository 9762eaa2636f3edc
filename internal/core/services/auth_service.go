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
	"github.com/veckotid/time_tracking_app/internal/utils"
)

// authService handles login, tenant registration and account self-service.
type authService struct {
	BaseService
	userRepo     portsrepo.UserRepository
	companyRepo  portsrepo.CompanyRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo portsrepo.UserRepository,
	companyRepo portsrepo.CompanyRepository,
	settingsRepo portsrepo.SettingsRepository,
	auditRepo portsrepo.AuditLogRepository,
) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  BaseService{auditRepo: auditRepo},
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, email string, password string, ip string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed, wrong password", slog.String("email", email))
		return nil, apperrors.ErrInvalidCredentials
	}

	caller := domain.Caller{UserID: user.UserID, CompanyID: user.CompanyID, Role: user.Role}
	s.auditLogin(ctx, caller, ip)
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, nil
}

// auditLogin records the login with the client IP on the trail.
func (s *authService) auditLogin(ctx context.Context, caller domain.Caller, ip string) {
	if s.auditRepo == nil {
		return
	}
	userID := caller.UserID
	entry := domain.AuditLog{
		AuditLogID: uuid.NewString(),
		CompanyID:  caller.CompanyID,
		UserID:     &userID,
		Action:     domain.AuditLogin,
		EntityType: "User",
		EntityID:   &userID,
		CreatedAt:  time.Now(),
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append login audit record")
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
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
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.CompanyName,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to create company")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    company.CompanyID,
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         domain.RoleAdmin,
		Active:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create first admin user")
		return nil, err
	}

	// Settings are created eagerly so the tenant starts fully configured.
	if _, err := s.settingsRepo.GetOrCreateSettings(ctx, company.CompanyID); err != nil {
		s.LogError(ctx, err, "Failed to seed company settings", slog.String("company_id", company.CompanyID))
	}

	caller := domain.Caller{UserID: user.UserID, CompanyID: company.CompanyID, Role: user.Role}
	s.Audit(ctx, caller, domain.AuditCreate, "Company", company.CompanyID, nil, company)
	s.LogInfo(ctx, "Company registered",
		slog.String("company_id", company.CompanyID),
		slog.String("admin_user_id", user.UserID))
	return &user, nil
}

func (s *authService) ChangePassword(ctx context.Context, caller domain.Caller, currentPassword string, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, caller.CompanyID, caller.UserID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, caller.CompanyID, caller.UserID, hash, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password")
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", caller.UserID))
	return nil
}

func (s *authService) Me(ctx context.Context, caller domain.Caller) (*domain.User, *domain.Company, error) {
	user, err := s.userRepo.FindUserByID(ctx, caller.CompanyID, caller.UserID)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, caller.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return user, company, nil
}
