package services

import (
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	ufSource portssvc.UFSource,
	renderer portssvc.QuoteRenderer,
	sender portssvc.EmailSender,
	inboxReader portssvc.InboxReader,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, sender, cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo)
	container.Waste = NewWasteService(repos.WasteRepo, cfg.WasteUnits, cfg.Currencies)
	container.UF = NewUFService(ufSource, cfg.UFFallbackValue)

	// Notifications come first since the intake service fans alerts out
	// through them.
	container.Notification = NewNotificationService(
		repos.NotificationRepo,
		repos.UserRepo,
		repos.QuoteRequestRepo,
		repos.VisitRepo,
		repos.CompanyRepo,
		repos.QuoteRepo,
	)

	container.Quote = NewQuoteService(
		repos.QuoteRepo,
		repos.UserRepo,
		repos.CompanyRepo,
		repos.WasteRepo,
		repos.QuoteRequestRepo,
		container.UF,
		renderer,
		sender,
		cfg.Currencies,
	)
	container.QuoteRequest = NewQuoteRequestService(
		repos.QuoteRequestRepo,
		repos.UserRepo,
		repos.CompanyRepo,
		sender,
		container.Notification,
	)
	container.Visit = NewVisitService(repos.VisitRepo, repos.UserRepo, sender)
	container.Certificate = NewCertificateService(repos.CertificateRepo, repos.UserRepo, sender, cfg.UploadDir)
	container.Contact = NewContactService(sender, cfg.ContactEmails)
	container.Inbox = NewInboxService(inboxReader)

	return container
}
