package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/core/services"
)

// --- Test Suite ---

type WeekLockServiceTestSuite struct {
	suite.Suite
	mockLockRepo  *MockWeekLockRepository
	mockEntryRepo *MockTimeEntryRepository
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.WeekLockSvcFacade

	employee   domain.Caller
	supervisor domain.Caller
	monday     time.Time
}

func (suite *WeekLockServiceTestSuite) SetupTest() {
	suite.mockLockRepo = new(MockWeekLockRepository)
	suite.mockEntryRepo = new(MockTimeEntryRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewWeekLockService(suite.mockLockRepo, suite.mockEntryRepo, suite.mockAuditRepo)

	companyID := uuid.NewString()
	suite.employee = domain.Caller{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleEmployee}
	suite.supervisor = domain.Caller{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleSupervisor}
	// 2026-01-05 is a Monday.
	suite.monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
}

func (suite *WeekLockServiceTestSuite) expectAudit() {
	suite.mockAuditRepo.On("SaveAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
}

// --- SubmitWeek ---

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_Success() {
	ctx := context.Background()
	weekEnd := suite.monday.AddDate(0, 0, 6)
	saved := &domain.WeekLock{
		WeekLockID:    uuid.NewString(),
		CompanyID:     suite.employee.CompanyID,
		UserID:        suite.employee.UserID,
		WeekStartDate: suite.monday,
		Status:        domain.WeekSubmitted,
		SubmittedAt:   time.Now(),
	}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("CountWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(5, nil).Once()
	suite.mockLockRepo.On("SubmitWeek", ctx, mock.AnythingOfType("domain.WeekLock")).Return(saved, nil).Once()
	suite.expectAudit()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().NoError(err)
	suite.Equal(saved, lock)
	suite.mockLockRepo.AssertExpectations(suite.T())
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_NotAMonday() {
	ctx := context.Background()
	tuesday := suite.monday.AddDate(0, 0, 1)

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, tuesday)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "SubmitWeek", mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_TruncatesTimeOfDay() {
	ctx := context.Background()
	weekEnd := suite.monday.AddDate(0, 0, 6)
	mondayAfternoon := suite.monday.Add(14*time.Hour + 30*time.Minute)
	saved := &domain.WeekLock{WeekLockID: uuid.NewString(), WeekStartDate: suite.monday, Status: domain.WeekSubmitted}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("CountWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(1, nil).Once()
	suite.mockLockRepo.On("SubmitWeek", ctx, mock.AnythingOfType("domain.WeekLock")).Return(saved, nil).Once()
	suite.expectAudit()

	_, err := suite.service.SubmitWeek(ctx, suite.employee, mondayAfternoon)

	suite.Require().NoError(err)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_AlreadySubmitted() {
	ctx := context.Background()
	existing := &domain.WeekLock{WeekLockID: uuid.NewString(), Status: domain.WeekSubmitted}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: existing}, nil).Once()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_AlreadyApproved() {
	ctx := context.Background()
	existing := &domain.WeekLock{WeekLockID: uuid.NewString(), Status: domain.WeekApproved}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: existing}, nil).Once()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrAlreadyApproved)
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_RejectedWeekCanResubmit() {
	ctx := context.Background()
	weekEnd := suite.monday.AddDate(0, 0, 6)
	rejected := &domain.WeekLock{WeekLockID: uuid.NewString(), Status: domain.WeekRejected}
	saved := &domain.WeekLock{WeekLockID: rejected.WeekLockID, Status: domain.WeekSubmitted, WeekStartDate: suite.monday}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: rejected}, nil).Once()
	suite.mockEntryRepo.On("CountWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(3, nil).Once()
	suite.mockLockRepo.On("SubmitWeek", ctx, mock.AnythingOfType("domain.WeekLock")).Return(saved, nil).Once()
	suite.expectAudit()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().NoError(err)
	suite.Equal(domain.WeekSubmitted, lock.Status)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_EmptyWeek() {
	ctx := context.Background()
	weekEnd := suite.monday.AddDate(0, 0, 6)

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("CountWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(0, nil).Once()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrEmptyWeek)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "SubmitWeek", mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestSubmitWeek_RepoError() {
	ctx := context.Background()
	weekEnd := suite.monday.AddDate(0, 0, 6)
	expectedErr := assert.AnError

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("CountWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(2, nil).Once()
	suite.mockLockRepo.On("SubmitWeek", ctx, mock.AnythingOfType("domain.WeekLock")).Return(nil, expectedErr).Once()

	lock, err := suite.service.SubmitWeek(ctx, suite.employee, suite.monday)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, expectedErr)
}

// --- ApproveWeek ---

func (suite *WeekLockServiceTestSuite) TestApproveWeek_Success() {
	ctx := context.Background()
	lockID := uuid.NewString()
	submitted := &domain.WeekLock{WeekLockID: lockID, UserID: suite.employee.UserID, Status: domain.WeekSubmitted}
	approved := &domain.WeekLock{WeekLockID: lockID, UserID: suite.employee.UserID, Status: domain.WeekApproved}

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(submitted, nil).Once()
	suite.mockLockRepo.On("ApproveWeek", ctx, *submitted, suite.supervisor.UserID, mock.AnythingOfType("time.Time")).
		Return(approved, nil).Once()
	suite.expectAudit()

	lock, err := suite.service.ApproveWeek(ctx, suite.supervisor, lockID)

	suite.Require().NoError(err)
	suite.Equal(domain.WeekApproved, lock.Status)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestApproveWeek_EmployeeForbidden() {
	ctx := context.Background()

	lock, err := suite.service.ApproveWeek(ctx, suite.employee, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "FindLockByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestApproveWeek_NotSubmitted() {
	ctx := context.Background()
	lockID := uuid.NewString()
	alreadyApproved := &domain.WeekLock{WeekLockID: lockID, Status: domain.WeekApproved}

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(alreadyApproved, nil).Once()

	lock, err := suite.service.ApproveWeek(ctx, suite.supervisor, lockID)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "ApproveWeek", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestApproveWeek_NotFound() {
	ctx := context.Background()
	lockID := uuid.NewString()

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(nil, apperrors.ErrNotFound).Once()

	lock, err := suite.service.ApproveWeek(ctx, suite.supervisor, lockID)

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- RejectWeek ---

func (suite *WeekLockServiceTestSuite) TestRejectWeek_Success() {
	ctx := context.Background()
	lockID := uuid.NewString()
	comment := "Missing hours on Thursday"
	submitted := &domain.WeekLock{WeekLockID: lockID, UserID: suite.employee.UserID, Status: domain.WeekSubmitted}
	rejected := &domain.WeekLock{WeekLockID: lockID, UserID: suite.employee.UserID, Status: domain.WeekRejected, Comment: &comment}

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(submitted, nil).Once()
	suite.mockLockRepo.On("RejectWeek", ctx, *submitted, suite.supervisor.UserID, comment, mock.AnythingOfType("time.Time")).
		Return(rejected, nil).Once()
	suite.expectAudit()

	lock, err := suite.service.RejectWeek(ctx, suite.supervisor, lockID, comment)

	suite.Require().NoError(err)
	suite.Equal(domain.WeekRejected, lock.Status)
	suite.Require().NotNil(lock.Comment)
	suite.Equal(comment, *lock.Comment)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestRejectWeek_BlankComment() {
	ctx := context.Background()

	lock, err := suite.service.RejectWeek(ctx, suite.supervisor, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "FindLockByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestRejectWeek_TrimsComment() {
	ctx := context.Background()
	lockID := uuid.NewString()
	submitted := &domain.WeekLock{WeekLockID: lockID, Status: domain.WeekSubmitted}
	rejected := &domain.WeekLock{WeekLockID: lockID, Status: domain.WeekRejected}

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(submitted, nil).Once()
	suite.mockLockRepo.On("RejectWeek", ctx, *submitted, suite.supervisor.UserID, "Fix Friday", mock.AnythingOfType("time.Time")).
		Return(rejected, nil).Once()
	suite.expectAudit()

	_, err := suite.service.RejectWeek(ctx, suite.supervisor, lockID, "  Fix Friday  ")

	suite.Require().NoError(err)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestRejectWeek_EmployeeForbidden() {
	ctx := context.Background()

	lock, err := suite.service.RejectWeek(ctx, suite.employee, uuid.NewString(), "nope")

	suite.Require().Error(err)
	suite.Nil(lock)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UnlockWeek ---

func (suite *WeekLockServiceTestSuite) TestUnlockWeek_Success() {
	ctx := context.Background()
	lockID := uuid.NewString()
	approved := &domain.WeekLock{WeekLockID: lockID, UserID: suite.employee.UserID, Status: domain.WeekApproved}

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(approved, nil).Once()
	suite.mockLockRepo.On("UnlockWeek", ctx, *approved).Return(nil).Once()
	suite.expectAudit()

	err := suite.service.UnlockWeek(ctx, suite.supervisor, lockID)

	suite.Require().NoError(err)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestUnlockWeek_EmployeeForbidden() {
	ctx := context.Background()

	err := suite.service.UnlockWeek(ctx, suite.employee, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLockRepo.AssertNotCalled(suite.T(), "UnlockWeek", mock.Anything, mock.Anything)
}

func (suite *WeekLockServiceTestSuite) TestUnlockWeek_RepoError() {
	ctx := context.Background()
	lockID := uuid.NewString()
	submitted := &domain.WeekLock{WeekLockID: lockID, Status: domain.WeekSubmitted}
	expectedErr := assert.AnError

	suite.mockLockRepo.On("FindLockByID", ctx, suite.supervisor.CompanyID, lockID).Return(submitted, nil).Once()
	suite.mockLockRepo.On("UnlockWeek", ctx, *submitted).Return(expectedErr).Once()

	err := suite.service.UnlockWeek(ctx, suite.supervisor, lockID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- ListLocks / PendingCount ---

func (suite *WeekLockServiceTestSuite) TestListLocks_EmployeeScopedToSelf() {
	ctx := context.Background()
	summaries := []domain.WeekLockSummary{{UserName: "Anna"}}

	suite.mockLockRepo.On("ListLockSummaries", ctx, suite.employee.CompanyID,
		mock.MatchedBy(func(f portsrepo.WeekLockFilter) bool {
			return f.UserID != nil && *f.UserID == suite.employee.UserID
		})).Return(summaries, nil).Once()

	result, err := suite.service.ListLocks(ctx, suite.employee, portsrepo.WeekLockFilter{})

	suite.Require().NoError(err)
	suite.Equal(summaries, result)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestListLocks_SupervisorKeepsFilter() {
	ctx := context.Background()
	status := domain.WeekSubmitted
	summaries := []domain.WeekLockSummary{}

	suite.mockLockRepo.On("ListLockSummaries", ctx, suite.supervisor.CompanyID,
		mock.MatchedBy(func(f portsrepo.WeekLockFilter) bool {
			return f.UserID == nil && f.Status != nil && *f.Status == status
		})).Return(summaries, nil).Once()

	_, err := suite.service.ListLocks(ctx, suite.supervisor, portsrepo.WeekLockFilter{Status: &status})

	suite.Require().NoError(err)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *WeekLockServiceTestSuite) TestPendingCount_Success() {
	ctx := context.Background()

	suite.mockLockRepo.On("CountPending", ctx, suite.supervisor.CompanyID).Return(4, nil).Once()

	count, err := suite.service.PendingCount(ctx, suite.supervisor)

	suite.Require().NoError(err)
	suite.Equal(4, count)
}

func (suite *WeekLockServiceTestSuite) TestPendingCount_EmployeeForbidden() {
	ctx := context.Background()

	count, err := suite.service.PendingCount(ctx, suite.employee)

	suite.Require().Error(err)
	suite.Zero(count)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- Run Suite ---

func TestWeekLockService(t *testing.T) {
	suite.Run(t, new(WeekLockServiceTestSuite))
}
