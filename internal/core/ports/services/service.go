package services

// ServiceContainer bundles all service facades for injection into the
// handlers.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Customer  CustomerSvcFacade
	Project   ProjectSvcFacade
	Activity  ActivitySvcFacade
	TimeEntry TimeEntrySvcFacade
	WeekLock  WeekLockSvcFacade
	Settings  SettingsSvcFacade
	Reporting ReportingSvcFacade
}
