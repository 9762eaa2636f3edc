package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	CompanyRepo    CompanyRepository
	UserRepo       UserRepository
	CustomerRepo   CustomerRepository
	ProjectRepo    ProjectRepository
	ActivityRepo   ActivityRepository
	TimeEntryRepo  TimeEntryRepository
	WeekLockRepo   WeekLockRepository
	AttachmentRepo AttachmentRepository
	AuditLogRepo   AuditLogRepository
	SettingsRepo   SettingsRepository
	ReportingRepo  ReportingRepository
}
