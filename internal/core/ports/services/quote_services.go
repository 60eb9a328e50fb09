package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// QuoteRenderer produces the printable PDF document for a quote.
type QuoteRenderer interface {
	// RenderQuotePDF returns the rendered PDF bytes.
	RenderQuotePDF(ctx context.Context, quote *domain.Quote) ([]byte, error)
}

// QuoteReaderSvc defines read operations for quotes
type QuoteReaderSvc interface {
	// GetQuoteByID retrieves a quote with its lines.
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// GetQuoteByNumber retrieves a quote with its lines by its COT- number.
	GetQuoteByNumber(ctx context.Context, number string) (*domain.Quote, error)

	// ListQuotes retrieves quotes with pagination, optionally by status.
	ListQuotes(ctx context.Context, status domain.QuoteStatus, limit, offset int) ([]domain.Quote, error)

	// ListQuotesByUser retrieves the quotes issued to a user.
	ListQuotesByUser(ctx context.Context, userID string) ([]domain.Quote, error)

	// QuotePDF renders the printable document for a quote.
	QuotePDF(ctx context.Context, quoteID string) (*domain.Quote, []byte, error)
}

// QuoteWriterSvc defines write operations for quotes
type QuoteWriterSvc interface {
	// CreateQuote prices the requested lines, allocates the next number and
	// persists the quote. The returned bool reports whether the quote email
	// was delivered; a failed send does not fail the create.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, adminID string) (*domain.Quote, bool, error)

	// UpdateQuoteStatus moves a quote to a new status.
	UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, actorID string) (*domain.Quote, error)

	// SendQuoteEmail renders and emails the quote document again.
	SendQuoteEmail(ctx context.Context, quoteID string) error

	// DeleteQuote removes a quote and its lines.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
