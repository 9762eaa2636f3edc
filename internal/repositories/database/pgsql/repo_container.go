package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/veckotid/time_tracking_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:    newPgxCompanyRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		CustomerRepo:   newPgxCustomerRepository(dbPool),
		ProjectRepo:    newPgxProjectRepository(dbPool),
		ActivityRepo:   newPgxActivityRepository(dbPool),
		TimeEntryRepo:  newPgxTimeEntryRepository(dbPool),
		WeekLockRepo:   newPgxWeekLockRepository(dbPool),
		AttachmentRepo: newPgxAttachmentRepository(dbPool),
		AuditLogRepo:   newPgxAuditLogRepository(dbPool),
		SettingsRepo:   newPgxSettingsRepository(dbPool),
		ReportingRepo:  newPgxReportingRepository(dbPool),
	}
}
