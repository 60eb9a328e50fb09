package repositories

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// WasteReader defines read operations for the waste catalog
type WasteReader interface {
	// FindWasteItemByID retrieves a catalog entry by its ID.
	FindWasteItemByID(ctx context.Context, wasteID string) (*domain.WasteItem, error)

	// ListWasteItems retrieves the full catalog.
	ListWasteItems(ctx context.Context) ([]domain.WasteItem, error)
}

// WasteWriter defines write operations for the waste catalog
type WasteWriter interface {
	// SaveWasteItem persists a new catalog entry.
	SaveWasteItem(ctx context.Context, item domain.WasteItem) error

	// UpdateWasteItem persists changes to an existing catalog entry.
	UpdateWasteItem(ctx context.Context, item domain.WasteItem) error

	// DeleteWasteItem removes a catalog entry.
	DeleteWasteItem(ctx context.Context, wasteID string) error
}

// WasteRepositoryFacade combines all waste-catalog repository interfaces
type WasteRepositoryFacade interface {
	WasteReader
	WasteWriter
}
