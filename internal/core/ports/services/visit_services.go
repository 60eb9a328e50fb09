package services

import (
	"context"
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// VisitReaderSvc defines read operations for site visits
type VisitReaderSvc interface {
	// GetVisitByID retrieves a visit by its ID.
	GetVisitByID(ctx context.Context, visitID string) (*domain.Visit, error)

	// ListVisits retrieves visits with pagination and filters.
	ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error)

	// ListVisitsByUser retrieves the visits scheduled for a user.
	ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error)
}

// VisitWriterSvc defines write operations for site visits
type VisitWriterSvc interface {
	// ScheduleVisit books a visit slot. When the slot is already taken the
	// occupying visit is returned with the bool set to true and nothing is
	// written.
	ScheduleVisit(ctx context.Context, req dto.CreateVisitRequest, adminID string) (*domain.Visit, bool, error)

	// AcceptVisit moves a pending visit to accepted. Owner only.
	AcceptVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error)

	// RejectVisit moves a pending visit to rejected. Owner only.
	RejectVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error)

	// ReprogramVisit asks for a new slot. Allowed from pending or accepted.
	ReprogramVisit(ctx context.Context, visitID, userID string, req dto.ReprogramVisitRequest) (*domain.Visit, error)

	// UpdateVisit applies the provided fields to a visit. A slot change is
	// checked against other visits; the visit's own slot never collides
	// with itself.
	UpdateVisit(ctx context.Context, visitID string, req dto.UpdateVisitRequest, adminID string) (*domain.Visit, error)

	// DeleteVisit removes a visit.
	DeleteVisit(ctx context.Context, visitID string) error
}

// VisitSvcFacade combines all visit-related service interfaces
type VisitSvcFacade interface {
	VisitReaderSvc
	VisitWriterSvc
}
