package repositories

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// QuoteRequestReader defines read operations for intake requests
type QuoteRequestReader interface {
	// FindRequestByID retrieves an intake request by its ID.
	FindRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error)

	// ListRequests retrieves intake requests with pagination. Empty status
	// or urgency means no filter on that field.
	ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error)

	// FindRequestByNumber retrieves an intake request by its SOL- number.
	FindRequestByNumber(ctx context.Context, number string) (*domain.QuoteRequest, error)

	// CountPendingRequests counts requests still in the pending state.
	CountPendingRequests(ctx context.Context) (int, error)

	// CountRequests aggregates request counts by status, kind and urgency.
	CountRequests(ctx context.Context) (*domain.RequestStats, error)
}

// QuoteRequestWriter defines write operations for intake requests
type QuoteRequestWriter interface {
	// CreateRequest persists a new intake request, allocating the next
	// sequential number. The assigned number is set on the passed request.
	CreateRequest(ctx context.Context, request *domain.QuoteRequest) error

	// UpdateRequest persists changes to an existing intake request.
	UpdateRequest(ctx context.Context, request domain.QuoteRequest) error

	// DeleteRequest removes an intake request.
	DeleteRequest(ctx context.Context, requestID string) error
}

// QuoteRequestRepositoryFacade combines all intake-request repository interfaces
type QuoteRequestRepositoryFacade interface {
	QuoteRequestReader
	QuoteRequestWriter
}
