package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CreateWasteItemRequest defines the data needed to create a catalog entry.
type CreateWasteItemRequest struct {
	Description string          `json:"description" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
}

// UpdateWasteItemRequest defines the data allowed for updating a catalog entry.
type UpdateWasteItemRequest struct {
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	Unit        *string          `json:"unit"`
	Currency    *string          `json:"currency"`
}

// WasteItemResponse defines the data returned for a catalog entry.
type WasteItemResponse struct {
	WasteID     string          `json:"wasteID"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Unit        string          `json:"unit"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToWasteItemResponse converts a domain.WasteItem to WasteItemResponse DTO
func ToWasteItemResponse(w *domain.WasteItem) WasteItemResponse {
	return WasteItemResponse{
		WasteID:     w.WasteID,
		Description: w.Description,
		UnitPrice:   w.UnitPrice,
		Unit:        w.Unit,
		Currency:    w.Currency,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.LastUpdatedAt,
	}
}

// ListWasteItemsResponse wraps the list of catalog entries.
type ListWasteItemsResponse struct {
	Wastes []WasteItemResponse `json:"wastes"`
}

// ToListWasteItemsResponse converts a slice of domain.WasteItem to ListWasteItemsResponse DTO
func ToListWasteItemsResponse(ws []domain.WasteItem) ListWasteItemsResponse {
	res := make([]WasteItemResponse, len(ws))
	for i, w := range ws {
		res[i] = ToWasteItemResponse(&w)
	}
	return ListWasteItemsResponse{Wastes: res}
}
