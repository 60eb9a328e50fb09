package domain

import "github.com/shopspring/decimal"

// WasteItem is a priced catalog entry for a waste type. Quote lines snapshot
// the description, price and unit at quote time, so editing a catalog entry
// never rewrites issued quotes.
type WasteItem struct {
	WasteID     string          `json:"wasteID"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Unit        string          `json:"unit"`     // validated against the configured unit set
	Currency    string          `json:"currency"` // validated against the configured currency set
	AuditFields
}
