package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/veckotid/time_tracking_app/internal/core/domain"
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

// --- Mock TimeEntryRepository ---

type MockTimeEntryRepository struct {
	mock.Mock
}

var _ portsrepo.TimeEntryRepository = (*MockTimeEntryRepository)(nil)

func (m *MockTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) ListEntries(ctx context.Context, companyID string, filter portsrepo.TimeEntryFilter) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) ListWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, companyID, userID, weekStart, weekEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) CountWeekEntries(ctx context.Context, companyID string, userID string, weekStart time.Time, weekEnd time.Time) (int, error) {
	args := m.Called(ctx, companyID, userID, weekStart, weekEnd)
	return args.Int(0), args.Error(1)
}

func (m *MockTimeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) DeleteEntry(ctx context.Context, companyID string, entryID string) ([]string, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepository = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, companyID string, includeInactive bool) ([]domain.User, error) {
	args := m.Called(ctx, companyID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, companyID string, userID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, companyID string, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, userID, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) EraseUserData(ctx context.Context, companyID string, userID string) ([]string, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock WeekLockRepository ---

type MockWeekLockRepository struct {
	mock.Mock
}

var _ portsrepo.WeekLockRepository = (*MockWeekLockRepository)(nil)

func (m *MockWeekLockRepository) FindLockState(ctx context.Context, companyID string, userID string, weekStart time.Time) (domain.LockState, error) {
	args := m.Called(ctx, companyID, userID, weekStart)
	return args.Get(0).(domain.LockState), args.Error(1)
}

func (m *MockWeekLockRepository) FindLockByID(ctx context.Context, companyID string, lockID string) (*domain.WeekLock, error) {
	args := m.Called(ctx, companyID, lockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekLock), args.Error(1)
}

func (m *MockWeekLockRepository) SubmitWeek(ctx context.Context, lock domain.WeekLock) (*domain.WeekLock, error) {
	args := m.Called(ctx, lock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekLock), args.Error(1)
}

func (m *MockWeekLockRepository) ApproveWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, reviewedAt time.Time) (*domain.WeekLock, error) {
	args := m.Called(ctx, lock, reviewerID, reviewedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekLock), args.Error(1)
}

func (m *MockWeekLockRepository) RejectWeek(ctx context.Context, lock domain.WeekLock, reviewerID string, comment string, reviewedAt time.Time) (*domain.WeekLock, error) {
	args := m.Called(ctx, lock, reviewerID, comment, reviewedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekLock), args.Error(1)
}

func (m *MockWeekLockRepository) UnlockWeek(ctx context.Context, lock domain.WeekLock) error {
	args := m.Called(ctx, lock)
	return args.Error(0)
}

func (m *MockWeekLockRepository) ListLockSummaries(ctx context.Context, companyID string, filter portsrepo.WeekLockFilter) ([]domain.WeekLockSummary, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeekLockSummary), args.Error(1)
}

func (m *MockWeekLockRepository) CountPending(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

// --- Mock ActivityRepository ---

type MockActivityRepository struct {
	mock.Mock
}

var _ portsrepo.ActivityRepository = (*MockActivityRepository)(nil)

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindActivityByID(ctx context.Context, companyID string, activityID string) (*domain.Activity, error) {
	args := m.Called(ctx, companyID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListActivities(ctx context.Context, companyID string, filter portsrepo.ActivityFilter) ([]domain.Activity, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepository = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, companyID string, filter portsrepo.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// --- Mock AttachmentRepository ---

type MockAttachmentRepository struct {
	mock.Mock
}

var _ portsrepo.AttachmentRepository = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, timeEntryID string, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, timeEntryID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListAttachmentsByEntry(ctx context.Context, timeEntryID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, timeEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) GetOrCreateSettings(ctx context.Context, companyID string) (*domain.Settings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepository = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SalaryRows(ctx context.Context, companyID string, from time.Time, to time.Time, userID *string) ([]domain.SalaryReportRow, error) {
	args := m.Called(ctx, companyID, from, to, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryReportRow), args.Error(1)
}

func (m *MockReportingRepository) InvoiceRows(ctx context.Context, companyID string, from time.Time, to time.Time, customerID *string, projectID *string) ([]domain.InvoiceReportRow, error) {
	args := m.Called(ctx, companyID, from, to, customerID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceReportRow), args.Error(1)
}

func (m *MockReportingRepository) ProjectHourTotals(ctx context.Context, companyID string) (map[string]float64, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockReportingRepository) SumHours(ctx context.Context, companyID string, userID string, from time.Time, to time.Time, billableOnly bool) (float64, error) {
	args := m.Called(ctx, companyID, userID, from, to, billableOnly)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReportingRepository) CountActiveProjects(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}
