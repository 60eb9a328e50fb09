package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
)

type VisitService struct {
	visitRepo portsrepo.VisitRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
	sender    portssvc.EmailSender
}

var _ portssvc.VisitSvcFacade = (*VisitService)(nil)

func NewVisitService(visitRepo portsrepo.VisitRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, sender portssvc.EmailSender) *VisitService {
	return &VisitService{visitRepo: visitRepo, userRepo: userRepo, sender: sender}
}

// GetVisitByID retrieves a visit by its ID.
func (s *VisitService) GetVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	return s.visitRepo.FindVisitByID(ctx, visitID)
}

// ListVisits retrieves visits with pagination and filters.
func (s *VisitService) ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error) {
	visits, err := s.visitRepo.ListVisits(ctx, status, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []domain.Visit{}
	}
	return visits, nil
}

// ListVisitsByUser retrieves the visits scheduled for a user.
func (s *VisitService) ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error) {
	visits, err := s.visitRepo.ListVisitsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []domain.Visit{}
	}
	return visits, nil
}

// ScheduleVisit books a visit slot. When the slot is already taken the
// occupying visit is returned with the bool set to true and nothing is
// written. The user is notified by email; a failed send does not fail the
// booking.
func (s *VisitService) ScheduleVisit(ctx context.Context, req dto.CreateVisitRequest, adminID string) (*domain.Visit, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, false, apperrors.NewValidationError("invalid visit date")
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return nil, false, err
	}

	occupying, err := s.visitRepo.FindVisitBySlot(ctx, visitDate, req.VisitTime)
	if err == nil {
		logger.Info("Visit slot already taken", "date", req.VisitDate, "time", req.VisitTime, "visit_id", occupying.VisitID)
		return occupying, true, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check visit slot: %w", err)
	}

	now := time.Now().UTC()
	visit := domain.Visit{
		VisitID:      uuid.NewString(),
		UserID:       req.UserID,
		CompanyID:    req.CompanyID,
		QuoteID:      req.QuoteID,
		VisitDate:    visitDate,
		VisitTime:    req.VisitTime,
		Reason:       domain.VisitReason(req.Reason),
		Status:       domain.VisitPending,
		Observations: req.Observations,
		AdminID:      adminID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race for the slot. Surface the winner.
			if occupying, findErr := s.visitRepo.FindVisitBySlot(ctx, visitDate, req.VisitTime); findErr == nil {
				return occupying, true, nil
			}
			return nil, false, apperrors.NewConflictError("visit slot is already taken")
		}
		return nil, false, err
	}

	logger.Info("Visit scheduled", "visit_id", visit.VisitID, "date", req.VisitDate, "time", req.VisitTime)

	if err := s.sender.Send(ctx, portssvc.Email{
		To:       []string{user.Email},
		Subject:  "Visita agendada - FELMART",
		HTMLBody: mailer.VisitScheduledEmailBody(user.Name, req.VisitDate, req.VisitTime),
	}); err != nil {
		logger.Warn("Visit email failed", "visit_id", visit.VisitID, "error", err.Error())
	}

	return &visit, false, nil
}

// AcceptVisit moves a pending visit to accepted. Owner only.
func (s *VisitService) AcceptVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error) {
	return s.transition(ctx, visitID, userID, domain.VisitAccepted, nil)
}

// RejectVisit moves a pending visit to rejected. Owner only.
func (s *VisitService) RejectVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error) {
	return s.transition(ctx, visitID, userID, domain.VisitRejected, nil)
}

// ReprogramVisit asks for a new slot. Allowed from pending or accepted.
func (s *VisitService) ReprogramVisit(ctx context.Context, visitID, userID string, req dto.ReprogramVisitRequest) (*domain.Visit, error) {
	visitDate, err := time.Parse("2006-01-02", req.VisitDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid visit date")
	}
	slot := &slotChange{date: visitDate, timeOfDay: req.VisitTime}
	return s.transition(ctx, visitID, userID, domain.VisitReprogram, slot)
}

type slotChange struct {
	date      time.Time
	timeOfDay string
}

func (s *VisitService) transition(ctx context.Context, visitID, userID string, target domain.VisitStatus, slot *slotChange) (*domain.Visit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	allowed := visit.Status == domain.VisitPending
	if target == domain.VisitReprogram {
		allowed = visit.Status == domain.VisitPending || visit.Status == domain.VisitAccepted
	}
	if !allowed {
		return nil, apperrors.NewConflictError(fmt.Sprintf("visit is already %s", visit.Status))
	}

	if slot != nil {
		occupying, err := s.visitRepo.FindVisitBySlot(ctx, slot.date, slot.timeOfDay)
		if err == nil && occupying.VisitID != visit.VisitID {
			return nil, apperrors.NewConflictError("requested slot is already taken")
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check visit slot: %w", err)
		}
		visit.VisitDate = slot.date
		visit.VisitTime = slot.timeOfDay
	}

	visit.Status = target
	visit.LastUpdatedAt = time.Now().UTC()
	visit.LastUpdatedBy = userID

	if err := s.visitRepo.UpdateVisit(ctx, *visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// UpdateVisit applies the provided fields to a visit. A slot change is
// checked for collision against other visits, excluding the visit itself.
func (s *VisitService) UpdateVisit(ctx context.Context, visitID string, req dto.UpdateVisitRequest, adminID string) (*domain.Visit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, err
	}

	newDate := visit.VisitDate
	newTime := visit.VisitTime
	if req.VisitDate != nil {
		newDate, err = time.Parse("2006-01-02", *req.VisitDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid visit date")
		}
	}
	if req.VisitTime != nil {
		newTime = *req.VisitTime
	}

	if !newDate.Equal(visit.VisitDate) || newTime != visit.VisitTime {
		occupying, err := s.visitRepo.FindVisitBySlot(ctx, newDate, newTime)
		if err == nil && occupying.VisitID != visit.VisitID {
			return nil, apperrors.NewConflictError("requested slot is already taken")
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check visit slot: %w", err)
		}
		visit.VisitDate = newDate
		visit.VisitTime = newTime
	}

	if req.Reason != nil {
		visit.Reason = domain.VisitReason(*req.Reason)
	}
	if req.Observations != nil {
		visit.Observations = *req.Observations
	}
	visit.LastUpdatedAt = time.Now().UTC()
	visit.LastUpdatedBy = adminID

	if err := s.visitRepo.UpdateVisit(ctx, *visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// DeleteVisit removes a visit.
func (s *VisitService) DeleteVisit(ctx context.Context, visitID string) error {
	return s.visitRepo.DeleteVisit(ctx, visitID)
}
