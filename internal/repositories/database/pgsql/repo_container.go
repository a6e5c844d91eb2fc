package pgsql

import (
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MosqueRepo:      newPgxMosqueRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		EventRepo:       newPgxEventRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
