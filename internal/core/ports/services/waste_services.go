package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// WasteReaderSvc defines read operations for the waste catalog
type WasteReaderSvc interface {
	// GetWasteItemByID retrieves a catalog entry by its ID.
	GetWasteItemByID(ctx context.Context, wasteID string) (*domain.WasteItem, error)

	// ListWasteItems retrieves the full catalog.
	ListWasteItems(ctx context.Context) ([]domain.WasteItem, error)
}

// WasteWriterSvc defines write operations for the waste catalog
type WasteWriterSvc interface {
	// CreateWasteItem persists a new catalog entry.
	CreateWasteItem(ctx context.Context, req dto.CreateWasteItemRequest, creatorID string) (*domain.WasteItem, error)

	// UpdateWasteItem applies the provided fields to a catalog entry.
	UpdateWasteItem(ctx context.Context, wasteID string, req dto.UpdateWasteItemRequest, updaterID string) (*domain.WasteItem, error)

	// DeleteWasteItem removes a catalog entry.
	DeleteWasteItem(ctx context.Context, wasteID string) error
}

// WasteSvcFacade combines all waste-catalog service interfaces
type WasteSvcFacade interface {
	WasteReaderSvc
	WasteWriterSvc
}
