package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		WasteRepo:        newPgxWasteRepository(dbPool),
		QuoteRepo:        newPgxQuoteRepository(dbPool),
		QuoteRequestRepo: newPgxQuoteRequestRepository(dbPool),
		VisitRepo:        newPgxVisitRepository(dbPool),
		CertificateRepo:  newPgxCertificateRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
