package services

import (
	portsrepo "github.com/DKMApps/masjid_kas_app/internal/core/ports/repositories"
	portssvc "github.com/DKMApps/masjid_kas_app/internal/core/ports/services"
	"github.com/DKMApps/masjid_kas_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit trail and the mosque reader come first since most services
	// depend on them.
	container.Audit = NewAuditService(repos.AuditLogRepo)
	container.Mosque = NewMosqueService(repos.MosqueRepo, container.Audit)

	mosqueReader := container.Mosque.(portssvc.MosqueReaderSvc)

	container.Category = NewCategoryService(repos.CategoryRepo, mosqueReader, container.Audit)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo, mosqueReader, container.Audit)
	container.User = NewUserService(repos.UserRepo, container.Audit)
	container.Event = NewEventService(repos.EventRepo, mosqueReader, container.Audit)
	container.Reporting = NewReportingService(repos.ReportingRepo, mosqueReader)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
