package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// QuoteRequestReaderSvc defines read operations for intake requests
type QuoteRequestReaderSvc interface {
	// GetRequestByID retrieves an intake request by its ID.
	GetRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error)

	// ListRequests retrieves intake requests with pagination and filters.
	ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error)

	// TrackRequest retrieves an intake request by its SOL- number. Used by
	// the public tracking endpoint; callers must not expose contact data.
	TrackRequest(ctx context.Context, number string) (*domain.QuoteRequest, error)

	// RequestStats aggregates request counts by status, kind and urgency.
	RequestStats(ctx context.Context) (*domain.RequestStats, error)
}

// QuoteRequestWriterSvc defines write operations for intake requests
type QuoteRequestWriterSvc interface {
	// CreateRequest registers a public intake request and notifies admins.
	CreateRequest(ctx context.Context, req dto.CreateQuoteRequestRequest) (*domain.QuoteRequest, error)

	// UpdateRequestStatus moves an intake request to a new status.
	UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, adminID string) (*domain.QuoteRequest, error)

	// PromoteRequest turns an intake request into an account: creates the
	// user (and company, for company requests) when missing and links them.
	PromoteRequest(ctx context.Context, requestID, adminID string) (*domain.PromotionResult, error)

	// DeleteRequest removes an intake request. Requests already quoted
	// cannot be deleted.
	DeleteRequest(ctx context.Context, requestID string) error
}

// QuoteRequestSvcFacade combines all intake-request service interfaces
type QuoteRequestSvcFacade interface {
	QuoteRequestReaderSvc
	QuoteRequestWriterSvc
}
