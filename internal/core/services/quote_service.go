package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
	"github.com/andrenany/api-felmart/internal/platform/pdfrender"
)

type QuoteService struct {
	quoteRepo   portsrepo.QuoteRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	wasteRepo   portsrepo.WasteRepositoryFacade
	requestRepo portsrepo.QuoteRequestRepositoryFacade
	ufSvc       portssvc.UFSvcFacade
	renderer    portssvc.QuoteRenderer
	sender      portssvc.EmailSender
	currencies  map[string]bool
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)

func NewQuoteService(
	quoteRepo portsrepo.QuoteRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	wasteRepo portsrepo.WasteRepositoryFacade,
	requestRepo portsrepo.QuoteRequestRepositoryFacade,
	ufSvc portssvc.UFSvcFacade,
	renderer portssvc.QuoteRenderer,
	sender portssvc.EmailSender,
	currencies []string,
) *QuoteService {
	s := &QuoteService{
		quoteRepo:   quoteRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		wasteRepo:   wasteRepo,
		requestRepo: requestRepo,
		ufSvc:       ufSvc,
		renderer:    renderer,
		sender:      sender,
		currencies:  make(map[string]bool, len(currencies)),
	}
	for _, c := range currencies {
		s.currencies[c] = true
	}
	return s
}

// resolveRecipient determines who the quote is issued to. Company quotes
// require at least one assigned user; when the requested user is not among
// the company's assignments the first assignment is used instead.
func (s *QuoteService) resolveRecipient(ctx context.Context, req dto.CreateQuoteRequest) (*domain.User, *domain.Company, error) {
	switch domain.QuoteKind(req.Kind) {
	case domain.QuoteForUser:
		if req.UserID == nil {
			return nil, nil, apperrors.NewValidationError("userID is required for user quotes")
		}
		user, err := s.userRepo.FindUserByID(ctx, *req.UserID)
		if err != nil {
			return nil, nil, err
		}
		return user, nil, nil

	case domain.QuoteForCompany:
		if req.CompanyID == nil {
			return nil, nil, apperrors.NewValidationError("companyID is required for company quotes")
		}
		company, err := s.companyRepo.FindCompanyByID(ctx, *req.CompanyID)
		if err != nil {
			return nil, nil, err
		}

		links, err := s.companyRepo.ListCompanyUsers(ctx, company.CompanyID)
		if err != nil {
			return nil, nil, err
		}
		if len(links) == 0 {
			return nil, nil, apperrors.NewValidationError("company has no assigned users")
		}

		recipientID := links[0].UserID
		if req.UserID != nil {
			for _, link := range links {
				if link.UserID == *req.UserID {
					recipientID = *req.UserID
					break
				}
			}
		}

		user, err := s.userRepo.FindUserByID(ctx, recipientID)
		if err != nil {
			return nil, nil, err
		}
		return user, company, nil

	default:
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("unknown quote kind %q", req.Kind))
	}
}

// priceLine turns a requested line into a priced snapshot. A positive price
// override replaces the catalog price, a non-empty currency override replaces
// the catalog currency. UF lines are converted to CLP with the given UF value.
func (s *QuoteService) priceLine(ctx context.Context, req dto.QuoteLineRequest, ufValue decimal.Decimal) (domain.QuoteLine, error) {
	line := domain.QuoteLine{
		LineID:      uuid.NewString(),
		WasteID:     req.WasteID,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.Price,
		Currency:    req.Currency,
		Unit:        req.Unit,
	}

	if req.WasteID != nil {
		item, err := s.wasteRepo.FindWasteItemByID(ctx, *req.WasteID)
		if err != nil {
			return domain.QuoteLine{}, err
		}
		if line.Description == "" {
			line.Description = item.Description
		}
		if line.Unit == "" {
			line.Unit = item.Unit
		}
		if !req.Price.IsPositive() {
			line.UnitPrice = item.UnitPrice
		}
		if req.Currency == "" {
			line.Currency = item.Currency
		}
	}

	if line.Description == "" {
		return domain.QuoteLine{}, apperrors.NewValidationError("line description is required")
	}
	if line.Currency == "" {
		line.Currency = domain.CurrencyCLP
	}
	if !s.currencies[line.Currency] {
		return domain.QuoteLine{}, apperrors.NewValidationError(fmt.Sprintf("unknown currency %q", line.Currency))
	}
	if !line.Quantity.IsPositive() {
		return domain.QuoteLine{}, apperrors.NewValidationError("line quantity must be positive")
	}
	if !line.UnitPrice.IsPositive() {
		return domain.QuoteLine{}, apperrors.NewValidationError("line price must be positive")
	}

	if line.Currency == domain.CurrencyUF {
		line.UnitPriceCLP = line.UnitPrice.Mul(ufValue).Round(2)
	} else {
		line.UnitPriceCLP = line.UnitPrice
	}
	line.SubtotalCLP = line.UnitPriceCLP.Mul(line.Quantity).Round(2)

	return line, nil
}

// CreateQuote prices the requested lines, allocates the next number and
// persists the quote, then optionally emails the rendered document.
func (s *QuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, adminID string) (*domain.Quote, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, company, err := s.resolveRecipient(ctx, req)
	if err != nil {
		return nil, false, err
	}

	if req.RequestID != nil {
		request, err := s.requestRepo.FindRequestByID(ctx, *req.RequestID)
		if err != nil {
			return nil, false, err
		}
		if request.Status == domain.RequestQuoted {
			return nil, false, apperrors.NewConflictError("request has already been quoted")
		}
	}

	// A positive caller-supplied UF value wins over the daily rate.
	var ufValue decimal.Decimal
	if req.UFValue != nil && req.UFValue.IsPositive() {
		ufValue = *req.UFValue
	} else {
		ufValue = s.ufSvc.CurrentUF(ctx).Value
	}

	lines := make([]domain.QuoteLine, 0, len(req.Lines))
	total := decimal.Zero
	for _, lr := range req.Lines {
		line, err := s.priceLine(ctx, lr, ufValue)
		if err != nil {
			return nil, false, err
		}
		lines = append(lines, line)
		total = total.Add(line.SubtotalCLP)
	}

	// A provided total wins over the computed sum.
	if req.TotalOverride != nil {
		total = *req.TotalOverride
	}

	now := time.Now().UTC()
	quoteDate := now
	if req.QuoteDate != nil {
		quoteDate = *req.QuoteDate
	}

	quote := domain.Quote{
		QuoteID:      uuid.NewString(),
		Kind:         domain.QuoteKind(req.Kind),
		UserID:       &user.UserID,
		UserName:     user.Name,
		UFValue:      ufValue,
		TotalCLP:     total,
		Status:       domain.QuotePending,
		Observations: req.Observations,
		AdminID:      adminID,
		QuoteDate:    quoteDate,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	if company != nil {
		quote.CompanyID = &company.CompanyID
		quote.CompanyTaxID = &company.TaxID
		quote.CompanyName = &company.Name
		quote.CompanyAddress = company.Address
		quote.Region = company.Region
		quote.Commune = company.Commune
	} else {
		quote.CompanyAddress = user.Address
		quote.Region = user.Region
		quote.Commune = user.Commune
	}

	for i := range quote.Lines {
		quote.Lines[i].QuoteID = quote.QuoteID
	}

	if err := s.quoteRepo.CreateQuote(ctx, &quote); err != nil {
		return nil, false, err
	}
	logger.Info("Quote created", "quote_id", quote.QuoteID, "number", quote.Number)

	if req.RequestID != nil {
		if err := s.markRequestQuoted(ctx, *req.RequestID, &quote, adminID); err != nil {
			logger.Warn("Failed to link quote to request", "request_id", *req.RequestID, "error", err.Error())
		}
	}

	emailSent := false
	if req.SendEmail {
		if err := s.emailQuote(ctx, &quote, user.Email); err != nil {
			logger.Warn("Quote email delivery failed", "quote_id", quote.QuoteID, "error", err.Error())
		} else {
			emailSent = true
		}
	}

	return &quote, emailSent, nil
}

func (s *QuoteService) markRequestQuoted(ctx context.Context, requestID string, quote *domain.Quote, adminID string) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	request.Status = domain.RequestQuoted
	request.QuoteID = &quote.QuoteID
	request.QuoteNumber = &quote.Number
	request.QuotedAt = &now
	request.AdminID = &adminID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = adminID

	return s.requestRepo.UpdateRequest(ctx, *request)
}

func (s *QuoteService) emailQuote(ctx context.Context, quote *domain.Quote, recipient string) error {
	pdf, err := s.renderer.RenderQuotePDF(ctx, quote)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, portssvc.Email{
		To:       []string{recipient},
		Subject:  fmt.Sprintf("Cotización %s - FELMART", quote.Number),
		HTMLBody: mailer.QuoteEmailBody(quote.UserName, quote.Number, pdfrender.FormatCLP(quote.TotalCLP)),
		Attachments: []portssvc.EmailAttachment{{
			FileName:    fmt.Sprintf("cotizacion_%s.pdf", quote.Number),
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
}

// GetQuoteByID retrieves a quote with its lines.
func (s *QuoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.quoteRepo.FindQuoteByID(ctx, quoteID)
}

// GetQuoteByNumber retrieves a quote with its lines by its COT- number.
func (s *QuoteService) GetQuoteByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	return s.quoteRepo.FindQuoteByNumber(ctx, number)
}

// ListQuotes retrieves quotes with pagination, optionally by status.
func (s *QuoteService) ListQuotes(ctx context.Context, status domain.QuoteStatus, limit, offset int) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotes(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return quotes, nil
}

// ListQuotesByUser retrieves the quotes issued to a user.
func (s *QuoteService) ListQuotesByUser(ctx context.Context, userID string) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.ListQuotesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []domain.Quote{}
	}
	return quotes, nil
}

// QuotePDF renders the printable document for a quote.
func (s *QuoteService) QuotePDF(ctx context.Context, quoteID string) (*domain.Quote, []byte, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := s.renderer.RenderQuotePDF(ctx, quote)
	if err != nil {
		return nil, nil, err
	}
	return quote, pdf, nil
}

// UpdateQuoteStatus moves a quote to a new status. Decisions are one-way:
// only pending quotes can be accepted or rejected.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, actorID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if quote.Status != domain.QuotePending {
		return nil, apperrors.NewConflictError(fmt.Sprintf("quote is already %s", quote.Status))
	}
	if status != domain.QuoteAccepted && status != domain.QuoteRejected {
		return nil, apperrors.NewValidationError(fmt.Sprintf("cannot move quote to %q", status))
	}

	if err := s.quoteRepo.UpdateQuoteStatus(ctx, quoteID, status, actorID); err != nil {
		return nil, err
	}
	quote.Status = status
	return quote, nil
}

// SendQuoteEmail renders and emails the quote document again.
func (s *QuoteService) SendQuoteEmail(ctx context.Context, quoteID string) error {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if quote.UserID == nil {
		return apperrors.NewValidationError("quote has no recipient user")
	}
	user, err := s.userRepo.FindUserByID(ctx, *quote.UserID)
	if err != nil {
		return err
	}
	return s.emailQuote(ctx, quote, user.Email)
}

// DeleteQuote removes a quote and its lines.
func (s *QuoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	return s.quoteRepo.DeleteQuote(ctx, quoteID)
}
