package services_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/veckotid/time_tracking_app/internal/apperrors"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/core/services"
	"github.com/veckotid/time_tracking_app/internal/dto"
	"github.com/veckotid/time_tracking_app/internal/storage"
)

// --- Mock FileStore ---

type MockFileStore struct {
	mock.Mock
}

var _ storage.FileStore = (*MockFileStore)(nil)

func (m *MockFileStore) Save(name string, content io.Reader) (string, error) {
	args := m.Called(name, content)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// --- Test Suite ---

type TimeEntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo      *MockTimeEntryRepository
	mockLockRepo       *MockWeekLockRepository
	mockActivityRepo   *MockActivityRepository
	mockProjectRepo    *MockProjectRepository
	mockAttachmentRepo *MockAttachmentRepository
	mockSettingsRepo   *MockSettingsRepository
	mockAuditRepo      *MockAuditLogRepository
	mockFiles          *MockFileStore
	service            portssvc.TimeEntrySvcFacade

	employee   domain.Caller
	supervisor domain.Caller
	activityID string
	// Wednesday 2026-01-07; the containing week starts Monday 2026-01-05.
	wednesday time.Time
	monday    time.Time
}

func (suite *TimeEntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockTimeEntryRepository)
	suite.mockLockRepo = new(MockWeekLockRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockAttachmentRepo = new(MockAttachmentRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockFiles = new(MockFileStore)
	suite.service = services.NewTimeEntryService(
		suite.mockEntryRepo,
		suite.mockLockRepo,
		suite.mockActivityRepo,
		suite.mockProjectRepo,
		suite.mockAttachmentRepo,
		suite.mockSettingsRepo,
		suite.mockAuditRepo,
		suite.mockFiles,
	)

	companyID := uuid.NewString()
	suite.employee = domain.Caller{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleEmployee}
	suite.supervisor = domain.Caller{UserID: uuid.NewString(), CompanyID: companyID, Role: domain.RoleSupervisor}
	suite.activityID = uuid.NewString()
	suite.wednesday = time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)
	suite.monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
}

func (suite *TimeEntryServiceTestSuite) expectAudit() {
	suite.mockAuditRepo.On("SaveAuditLog", mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
}

func (suite *TimeEntryServiceTestSuite) createRequest() dto.CreateTimeEntryRequest {
	return dto.CreateTimeEntryRequest{
		ActivityID: suite.activityID,
		Date:       dto.Date{Time: suite.wednesday},
		Hours:      8,
	}
}

// --- CreateEntry ---

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_BillableDefaultsFromActivity() {
	ctx := context.Background()
	activity := &domain.Activity{ActivityID: suite.activityID, BillableDefault: true}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.Billable && e.Status == domain.EntryDraft && e.UserID == suite.employee.UserID
	})).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, suite.createRequest())

	suite.Require().NoError(err)
	suite.True(entry.Billable)
	suite.Equal(domain.EntryDraft, entry.Status)
	suite.Equal(suite.wednesday, entry.Date)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_BillableOverride() {
	ctx := context.Background()
	activity := &domain.Activity{ActivityID: suite.activityID, BillableDefault: true}
	notBillable := false
	req := suite.createRequest()
	req.Billable = &notBillable

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return !e.Billable
	})).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, req)

	suite.Require().NoError(err)
	suite.False(entry.Billable)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_HoursOutOfRange() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Hours = 25

	entry, err := suite.service.CreateEntry(ctx, suite.employee, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_NegativeHours() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Hours = -1

	entry, err := suite.service.CreateEntry(ctx, suite.employee, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_WeekLocked() {
	ctx := context.Background()
	submitted := &domain.WeekLock{Status: domain.WeekSubmitted}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: submitted}, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, suite.createRequest())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrWeekLocked)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_RejectedWeekIsEditable() {
	ctx := context.Background()
	rejected := &domain.WeekLock{Status: domain.WeekRejected}
	activity := &domain.Activity{ActivityID: suite.activityID}

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: rejected}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.TimeEntry")).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, suite.createRequest())

	suite.Require().NoError(err)
	suite.NotNil(entry)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_UnknownActivity() {
	ctx := context.Background()

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, suite.createRequest())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntry_UnknownProject() {
	ctx := context.Background()
	projectID := uuid.NewString()
	activity := &domain.Activity{ActivityID: suite.activityID}
	req := suite.createRequest()
	req.ProjectID = &projectID

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.employee.CompanyID, projectID).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.employee, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetEntry ---

func (suite *TimeEntryServiceTestSuite) TestGetEntry_EmployeeCannotReadOthers() {
	ctx := context.Background()
	entryID := uuid.NewString()
	other := &domain.TimeEntry{EntryID: entryID, UserID: uuid.NewString()}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, entryID).Return(other, nil).Once()

	entry, err := suite.service.GetEntry(ctx, suite.employee, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimeEntryServiceTestSuite) TestGetEntry_SupervisorReadsAny() {
	ctx := context.Background()
	entryID := uuid.NewString()
	other := &domain.TimeEntry{EntryID: entryID, UserID: suite.employee.UserID}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.supervisor.CompanyID, entryID).Return(other, nil).Once()

	entry, err := suite.service.GetEntry(ctx, suite.supervisor, entryID)

	suite.Require().NoError(err)
	suite.Equal(other, entry)
}

// --- UpdateEntry ---

func (suite *TimeEntryServiceTestSuite) draftEntry() *domain.TimeEntry {
	return &domain.TimeEntry{
		EntryID:    uuid.NewString(),
		CompanyID:  suite.employee.CompanyID,
		UserID:     suite.employee.UserID,
		ActivityID: suite.activityID,
		Date:       suite.wednesday,
		Hours:      8,
		Status:     domain.EntryDraft,
	}
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_OwnerDraftSuccess() {
	ctx := context.Background()
	existing := suite.draftEntry()
	newHours := 6.5

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.Hours == newHours
	})).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &newHours})

	suite.Require().NoError(err)
	suite.Equal(newHours, entry.Hours)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_EmployeeNotOwner() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.UserID = uuid.NewString()
	hours := 4.0

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &hours})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_EmployeeSubmittedEntry() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Status = domain.EntrySubmitted
	hours := 4.0

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &hours})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_EmployeeLockedWeek() {
	ctx := context.Background()
	existing := suite.draftEntry()
	hours := 4.0

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: &domain.WeekLock{Status: domain.WeekSubmitted}}, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &hours})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrWeekLocked)
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_EmployeeMovesIntoLockedWeek() {
	ctx := context.Background()
	existing := suite.draftEntry()
	// Entry lives in the following, still open week; the move targets the
	// submitted week of Jan 5.
	existing.Date = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	moved := dto.Date{Time: suite.wednesday}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, nextMonday).
		Return(domain.LockState{}, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: &domain.WeekLock{Status: domain.WeekSubmitted}}, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Date: &moved})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrWeekLocked)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_EmployeeMovesToEditableWeek() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Date = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	moved := dto.Date{Time: suite.wednesday}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, nextMonday).
		Return(domain.LockState{}, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.Date.Equal(suite.wednesday)
	})).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{Date: &moved})

	suite.Require().NoError(err)
	suite.Equal(suite.wednesday, entry.Date)
	suite.mockLockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_SupervisorLockedEditAllowed() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Status = domain.EntryApproved
	hours := 7.5

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.supervisor.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockSettingsRepo.On("GetOrCreateSettings", ctx, suite.supervisor.CompanyID).
		Return(&domain.Settings{AdminEditLocked: true}, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.TimeEntry")).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.UpdateEntry(ctx, suite.supervisor, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &hours})

	suite.Require().NoError(err)
	suite.Equal(hours, entry.Hours)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_SupervisorLockedEditDisallowed() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Status = domain.EntryApproved
	hours := 7.5

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.supervisor.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockSettingsRepo.On("GetOrCreateSettings", ctx, suite.supervisor.CompanyID).
		Return(&domain.Settings{AdminEditLocked: false}, nil).Once()

	entry, err := suite.service.UpdateEntry(ctx, suite.supervisor, existing.EntryID, dto.UpdateTimeEntryRequest{Hours: &hours})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntry_ClearProject() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := suite.draftEntry()
	existing.ProjectID = &projectID
	empty := ""

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.ProjectID == nil
	})).Return(nil).Once()
	suite.expectAudit()

	entry, err := suite.service.UpdateEntry(ctx, suite.employee, existing.EntryID, dto.UpdateTimeEntryRequest{ProjectID: &empty})

	suite.Require().NoError(err)
	suite.Nil(entry.ProjectID)
}

// --- DeleteEntry ---

func (suite *TimeEntryServiceTestSuite) TestDeleteEntry_RemovesAttachmentFiles() {
	ctx := context.Background()
	existing := suite.draftEntry()
	paths := []string{"/uploads/a.jpg", "/uploads/b.jpg"}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockEntryRepo.On("DeleteEntry", ctx, suite.employee.CompanyID, existing.EntryID).Return(paths, nil).Once()
	suite.mockFiles.On("Remove", "/uploads/a.jpg").Return(nil).Once()
	suite.mockFiles.On("Remove", "/uploads/b.jpg").Return(nil).Once()
	suite.expectAudit()

	err := suite.service.DeleteEntry(ctx, suite.employee, existing.EntryID)

	suite.Require().NoError(err)
	suite.mockFiles.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestDeleteEntry_EmployeeLockedWeek() {
	ctx := context.Background()
	existing := suite.draftEntry()

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: &domain.WeekLock{Status: domain.WeekApproved}}, nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.employee, existing.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrWeekLocked)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetWeek ---

func (suite *TimeEntryServiceTestSuite) TestGetWeek_SummarizesHours() {
	ctx := context.Background()
	entries := []domain.TimeEntry{
		{Date: suite.monday, Hours: 8, Billable: true},
		{Date: suite.monday, Hours: 1, Billable: false},
		{Date: suite.wednesday, Hours: 4, Billable: true},
	}
	weekEnd := suite.monday.AddDate(0, 0, 6)

	suite.mockEntryRepo.On("ListWeekEntries", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday, weekEnd).
		Return(entries, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()

	view, err := suite.service.GetWeek(ctx, suite.employee, "", suite.wednesday)

	suite.Require().NoError(err)
	suite.Equal(13.0, view.Summary.TotalHours)
	suite.Equal(12.0, view.Summary.BillableHours)
	suite.Equal(9.0, view.Summary.DailyTotals["2026-01-05"])
	suite.Equal(4.0, view.Summary.DailyTotals["2026-01-07"])
	suite.Nil(view.WeekLock)
}

func (suite *TimeEntryServiceTestSuite) TestGetWeek_EmployeeCannotViewOthers() {
	ctx := context.Background()

	view, err := suite.service.GetWeek(ctx, suite.employee, uuid.NewString(), suite.monday)

	suite.Require().Error(err)
	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- SyncEntries ---

func (suite *TimeEntryServiceTestSuite) TestSyncEntries_PartialFailure() {
	ctx := context.Background()
	activity := &domain.Activity{ActivityID: suite.activityID, BillableDefault: true}
	localA := "local-a"
	localB := "local-b"

	okItem := dto.SyncEntryItem{
		LocalID:                &localA,
		CreateTimeEntryRequest: suite.createRequest(),
	}
	badItem := dto.SyncEntryItem{
		LocalID:                &localB,
		CreateTimeEntryRequest: suite.createRequest(),
	}
	badItem.Hours = 30

	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.TimeEntry")).Return(nil).Once()
	suite.expectAudit()

	results := suite.service.SyncEntries(ctx, suite.employee, []dto.SyncEntryItem{okItem, badItem})

	suite.Require().Len(results, 2)
	suite.True(results[0].Synced)
	suite.NotNil(results[0].EntryID)
	suite.Equal(&localA, results[0].LocalID)
	suite.False(results[1].Synced)
	suite.NotEmpty(results[1].Error)
	suite.Equal(&localB, results[1].LocalID)
}

func (suite *TimeEntryServiceTestSuite) TestSyncEntries_UpdateStaleEntry() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Status = domain.EntryApproved

	item := dto.SyncEntryItem{
		EntryID:                &existing.EntryID,
		CreateTimeEntryRequest: suite.createRequest(),
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()

	results := suite.service.SyncEntries(ctx, suite.employee, []dto.SyncEntryItem{item})

	suite.Require().Len(results, 1)
	suite.False(results[0].Synced)
	suite.Equal(apperrors.ErrInvalidState.Error(), results[0].Error)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *TimeEntryServiceTestSuite) TestSyncEntries_UpdateMovesIntoLockedWeek() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Date = time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	activity := &domain.Activity{ActivityID: suite.activityID}

	item := dto.SyncEntryItem{
		EntryID:                &existing.EntryID,
		CreateTimeEntryRequest: suite.createRequest(),
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, nextMonday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{Lock: &domain.WeekLock{Status: domain.WeekSubmitted}}, nil).Once()

	results := suite.service.SyncEntries(ctx, suite.employee, []dto.SyncEntryItem{item})

	suite.Require().Len(results, 1)
	suite.False(results[0].Synced)
	suite.Equal(apperrors.ErrWeekLocked.Error(), results[0].Error)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *TimeEntryServiceTestSuite) TestSyncEntries_UpdateRederivesBillableDefault() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.Billable = true
	activity := &domain.Activity{ActivityID: suite.activityID, BillableDefault: false}

	// Billable omitted on the item: the activity default wins over the
	// entry's stored value, matching the create path.
	item := dto.SyncEntryItem{
		EntryID:                &existing.EntryID,
		CreateTimeEntryRequest: suite.createRequest(),
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockLockRepo.On("FindLockState", ctx, suite.employee.CompanyID, suite.employee.UserID, suite.monday).
		Return(domain.LockState{}, nil).Once()
	suite.mockActivityRepo.On("FindActivityByID", ctx, suite.employee.CompanyID, suite.activityID).
		Return(activity, nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return !e.Billable
	})).Return(nil).Once()
	suite.expectAudit()

	results := suite.service.SyncEntries(ctx, suite.employee, []dto.SyncEntryItem{item})

	suite.Require().Len(results, 1)
	suite.True(results[0].Synced)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- Attachments ---

func (suite *TimeEntryServiceTestSuite) TestAddAttachment_RollsBackFileOnRowFailure() {
	ctx := context.Background()
	existing := suite.draftEntry()
	storedPath := "/uploads/123-photo.jpg"

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()
	suite.mockFiles.On("Save", mock.AnythingOfType("string"), mock.Anything).Return(storedPath, nil).Once()
	suite.mockAttachmentRepo.On("SaveAttachment", ctx, mock.AnythingOfType("domain.Attachment")).
		Return(assert.AnError).Once()
	suite.mockFiles.On("Remove", storedPath).Return(nil).Once()

	attachment, err := suite.service.AddAttachment(ctx, suite.employee, existing.EntryID, portssvc.AttachmentUpload{
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		Size:         1024,
	})

	suite.Require().Error(err)
	suite.Nil(attachment)
	suite.mockFiles.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestDeleteAttachment_EmployeeNotOwner() {
	ctx := context.Background()
	existing := suite.draftEntry()
	existing.UserID = uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, suite.employee.CompanyID, existing.EntryID).Return(existing, nil).Once()

	err := suite.service.DeleteAttachment(ctx, suite.employee, existing.EntryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAttachmentRepo.AssertNotCalled(suite.T(), "DeleteAttachment", mock.Anything, mock.Anything)
}

// --- Run Suite ---

func TestTimeEntryService(t *testing.T) {
	suite.Run(t, new(TimeEntryServiceTestSuite))
}
