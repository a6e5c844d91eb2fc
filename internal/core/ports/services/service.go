package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this container and depend only on the facade interfaces.
type ServiceContainer struct {
	Mosque             MosqueSvcFacade
	Category           CategorySvcFacade
	Transaction        TransactionSvcFacade
	User               UserSvcFacade
	Event              EventSvcFacade
	Audit              AuditSvcFacade
	Reporting          ReportingSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
