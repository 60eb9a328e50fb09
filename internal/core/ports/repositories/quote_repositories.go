package repositories

import (
	"context"
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// QuoteReader defines read operations for quotes
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its lines.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// FindQuoteByNumber retrieves a quote with its lines by its COT- number.
	FindQuoteByNumber(ctx context.Context, number string) (*domain.Quote, error)

	// ListQuotes retrieves quotes with pagination, optionally filtered by
	// status. Lines are included. An empty status means no filter.
	ListQuotes(ctx context.Context, status domain.QuoteStatus, limit, offset int) ([]domain.Quote, error)

	// ListQuotesByUser retrieves the quotes issued to a user.
	ListQuotesByUser(ctx context.Context, userID string) ([]domain.Quote, error)

	// ListStaleQuotes retrieves pending quotes created before the cutoff.
	ListStaleQuotes(ctx context.Context, cutoff time.Time) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for quotes
type QuoteWriter interface {
	// CreateQuote persists a quote and its lines in one transaction,
	// allocating the next sequential number. The assigned number is set on
	// the passed quote.
	CreateQuote(ctx context.Context, quote *domain.Quote) error

	// UpdateQuoteStatus moves a quote to a new status.
	UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedBy string) error

	// DeleteQuote removes a quote and its lines.
	DeleteQuote(ctx context.Context, quoteID string) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
