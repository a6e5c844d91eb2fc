package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	MosqueRepo      MosqueRepository
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
	UserRepo        UserRepository
	EventRepo       EventRepository
	AuditLogRepo    AuditLogRepository
	ReportingRepo   ReportingRepository
}
