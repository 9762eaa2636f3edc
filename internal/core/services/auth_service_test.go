package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/core/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/utils"
)

// --- Test Suite ---

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockCompanyRepo  *MockCompanyRepository
	mockSettingsRepo *MockSettingsRepository
	mockAuditRepo    *MockAuditLogRepository
	service          portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuthService(
		suite.mockUserRepo,
		suite.mockCompanyRepo,
		suite.mockSettingsRepo,
		suite.mockAuditRepo,
	)
}

func (suite *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    uuid.NewString(),
		Email:        "anna@example.com",
		PasswordHash: hash,
		Name:         "Anna",
		Role:         domain.RoleEmployee,
		Active:       true,
	}
}

// --- Login ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "anna@example.com").Return(user, nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	result, err := suite.service.Login(ctx, "  Anna@Example.com ", "hunter22", "10.0.0.1")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, result.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")

	suite.mockUserRepo.On("FindUserByEmail", ctx, "anna@example.com").Return(user, nil).Once()

	result, err := suite.service.Login(ctx, "anna@example.com", "wrong-password", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Login(ctx, "ghost@example.com", "whatever1", "")

	suite.Require().Error(err)
	suite.Nil(result)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")
	user.Active = false

	suite.mockUserRepo.On("FindUserByEmail", ctx, "anna@example.com").Return(user, nil).Once()

	result, err := suite.service.Login(ctx, "anna@example.com", "hunter22", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// --- Register ---

func (suite *AuthServiceTestSuite) TestRegister_CreatesCompanyAdminAndSettings() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		CompanyName: "Bygg AB",
		Name:        "Nisse Hult",
		Email:       "Nisse@Bygg.se",
		Password:    "hunter22",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nisse@bygg.se").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Bygg AB"
	})).Return(nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Email == "nisse@bygg.se" && u.Active
	})).Return(nil).Once()
	suite.mockSettingsRepo.On("GetOrCreateSettings", ctx, mock.AnythingOfType("string")).
		Return(&domain.Settings{}, nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.NotEmpty(user.CompanyID)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := suite.activeUser("hunter22")
	req := dto.RegisterRequest{CompanyName: "Bygg AB", Name: "Nisse", Email: "anna@example.com", Password: "hunter22"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "anna@example.com").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

// --- ChangePassword ---

func (suite *AuthServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")
	caller := domain.Caller{UserID: user.UserID, CompanyID: user.CompanyID, Role: user.Role}

	suite.mockUserRepo.On("FindUserByID", ctx, caller.CompanyID, caller.UserID).Return(user, nil).Once()

	err := suite.service.ChangePassword(ctx, caller, "not-it", "newpassword1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdatePassword",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")
	caller := domain.Caller{UserID: user.UserID, CompanyID: user.CompanyID, Role: user.Role}

	suite.mockUserRepo.On("FindUserByID", ctx, caller.CompanyID, caller.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdatePassword", ctx, caller.CompanyID, caller.UserID,
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ChangePassword(ctx, caller, "hunter22", "newpassword1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Me ---

func (suite *AuthServiceTestSuite) TestMe_ReturnsUserAndCompany() {
	ctx := context.Background()
	user := suite.activeUser("hunter22")
	caller := domain.Caller{UserID: user.UserID, CompanyID: user.CompanyID, Role: user.Role}
	company := &domain.Company{CompanyID: user.CompanyID, Name: "Bygg AB"}

	suite.mockUserRepo.On("FindUserByID", ctx, caller.CompanyID, caller.UserID).Return(user, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, caller.CompanyID).Return(company, nil).Once()

	gotUser, gotCompany, err := suite.service.Me(ctx, caller)

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(company, gotCompany)
}

// --- Run Suite ---

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
