package models

import "github.com/shopspring/decimal"

// WasteItem is a priced waste catalog entry.
// Note: UnitPrice should use a precise decimal type like github.com/shopspring/decimal
type WasteItem struct {
	WasteID     string          `json:"wasteID"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Unit        string          `json:"unit"`
	Currency    string          `json:"currency"`
	AuditFields
}
