package repositories

import (
	"context"
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// VisitReader defines read operations for site visits
type VisitReader interface {
	// FindVisitByID retrieves a visit by its ID.
	FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error)

	// FindVisitBySlot retrieves the visit occupying a (date, time) slot,
	// or ErrNotFound when the slot is free.
	FindVisitBySlot(ctx context.Context, date time.Time, timeOfDay string) (*domain.Visit, error)

	// ListVisits retrieves visits with pagination, optionally filtered by
	// status and date range. Zero times mean no bound.
	ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error)

	// ListVisitsByUser retrieves the visits scheduled for a user.
	ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error)
}

// VisitWriter defines write operations for site visits
type VisitWriter interface {
	// SaveVisit persists a new visit.
	SaveVisit(ctx context.Context, visit domain.Visit) error

	// UpdateVisit persists changes to an existing visit.
	UpdateVisit(ctx context.Context, visit domain.Visit) error

	// DeleteVisit removes a visit.
	DeleteVisit(ctx context.Context, visitID string) error
}

// VisitRepositoryFacade combines all visit-related repository interfaces
type VisitRepositoryFacade interface {
	VisitReader
	VisitWriter
}
