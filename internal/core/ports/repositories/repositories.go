package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	WasteRepo        WasteRepositoryFacade
	QuoteRepo        QuoteRepositoryFacade
	QuoteRequestRepo QuoteRequestRepositoryFacade
	VisitRepo        VisitRepositoryFacade
	CertificateRepo  CertificateRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
