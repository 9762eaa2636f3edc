package services

import (
	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/veckotid/time_tracking_app/internal/core/ports/services"
	"github.com/veckotid/time_tracking_app/internal/storage"
)

// NewServiceContainer wires every service facade with its repositories and
// the attachment store.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, files storage.FileStore) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:     NewAuthService(repos.UserRepo, repos.CompanyRepo, repos.SettingsRepo, repos.AuditLogRepo),
		User:     NewUserService(repos.UserRepo, repos.AuditLogRepo, files),
		Customer: NewCustomerService(repos.CustomerRepo, repos.AuditLogRepo),
		Project: NewProjectService(repos.ProjectRepo, repos.CustomerRepo, repos.TimeEntryRepo,
			repos.ReportingRepo, repos.AuditLogRepo),
		Activity: NewActivityService(repos.ActivityRepo, repos.AuditLogRepo),
		TimeEntry: NewTimeEntryService(repos.TimeEntryRepo, repos.WeekLockRepo, repos.ActivityRepo,
			repos.ProjectRepo, repos.AttachmentRepo, repos.SettingsRepo, repos.AuditLogRepo, files),
		WeekLock: NewWeekLockService(repos.WeekLockRepo, repos.TimeEntryRepo, repos.AuditLogRepo),
		Settings: NewSettingsService(repos.SettingsRepo, repos.AuditLogRepo),
		Reporting: NewReportService(repos.ReportingRepo, repos.ProjectRepo, repos.TimeEntryRepo,
			repos.WeekLockRepo, repos.SettingsRepo, repos.AuditLogRepo),
	}
}
