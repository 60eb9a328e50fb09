package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
)

type WasteService struct {
	wasteRepo  portsrepo.WasteRepositoryFacade
	units      map[string]bool
	currencies map[string]bool
}

var _ portssvc.WasteSvcFacade = (*WasteService)(nil)

// NewWasteService constructs the catalog service. The allowed unit and
// currency sets come from configuration.
func NewWasteService(wasteRepo portsrepo.WasteRepositoryFacade, units, currencies []string) *WasteService {
	s := &WasteService{
		wasteRepo:  wasteRepo,
		units:      make(map[string]bool, len(units)),
		currencies: make(map[string]bool, len(currencies)),
	}
	for _, u := range units {
		s.units[u] = true
	}
	for _, c := range currencies {
		s.currencies[c] = true
	}
	return s
}

func (s *WasteService) validate(unit, currency string) error {
	if !s.units[unit] {
		return apperrors.NewValidationError(fmt.Sprintf("unknown unit %q", unit))
	}
	if !s.currencies[currency] {
		return apperrors.NewValidationError(fmt.Sprintf("unknown currency %q", currency))
	}
	return nil
}

// CreateWasteItem persists a new catalog entry.
func (s *WasteService) CreateWasteItem(ctx context.Context, req dto.CreateWasteItemRequest, creatorID string) (*domain.WasteItem, error) {
	if err := s.validate(req.Unit, req.Currency); err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationError("unit price cannot be negative")
	}

	now := time.Now().UTC()
	item := domain.WasteItem{
		WasteID:     uuid.NewString(),
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Unit:        req.Unit,
		Currency:    req.Currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.wasteRepo.SaveWasteItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetWasteItemByID retrieves a catalog entry by its ID.
func (s *WasteService) GetWasteItemByID(ctx context.Context, wasteID string) (*domain.WasteItem, error) {
	return s.wasteRepo.FindWasteItemByID(ctx, wasteID)
}

// ListWasteItems retrieves the full catalog.
func (s *WasteService) ListWasteItems(ctx context.Context) ([]domain.WasteItem, error) {
	items, err := s.wasteRepo.ListWasteItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WasteItem{}
	}
	return items, nil
}

// UpdateWasteItem applies the provided fields to a catalog entry. Quotes
// already issued keep their price snapshots.
func (s *WasteService) UpdateWasteItem(ctx context.Context, wasteID string, req dto.UpdateWasteItemRequest, updaterID string) (*domain.WasteItem, error) {
	item, err := s.wasteRepo.FindWasteItemByID(ctx, wasteID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, apperrors.NewValidationError("unit price cannot be negative")
		}
		item.UnitPrice = *req.UnitPrice
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Currency != nil {
		item.Currency = *req.Currency
	}
	if err := s.validate(item.Unit, item.Currency); err != nil {
		return nil, err
	}

	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = updaterID

	if err := s.wasteRepo.UpdateWasteItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update waste item: %w", err)
	}
	return item, nil
}

// DeleteWasteItem removes a catalog entry.
func (s *WasteService) DeleteWasteItem(ctx context.Context, wasteID string) error {
	return s.wasteRepo.DeleteWasteItem(ctx, wasteID)
}
