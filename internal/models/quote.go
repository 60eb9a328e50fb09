package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the persisted header row for an issued quotation.
type Quote struct {
	QuoteID        string          `json:"quoteID"`
	Number         string          `json:"number" db:"number"`
	Kind           string          `json:"kind"`
	UserID         *string         `json:"userID,omitempty" db:"user_id"`
	UserName       string          `json:"userName" db:"user_name"`
	CompanyID      *string         `json:"companyID,omitempty" db:"company_id"`
	CompanyTaxID   *string         `json:"companyTaxID,omitempty" db:"company_tax_id"`
	CompanyName    *string         `json:"companyName,omitempty" db:"company_name"`
	CompanyAddress string          `json:"companyAddress" db:"company_address"`
	Region         string          `json:"region"`
	Commune        string          `json:"commune"`
	UFValue        decimal.Decimal `json:"ufValue" db:"uf_value"`
	TotalCLP       decimal.Decimal `json:"totalCLP" db:"total_clp"`
	Status         string          `json:"status"`
	Observations   string          `json:"observations"`
	AdminID        string          `json:"adminID" db:"admin_id"`
	QuoteDate      time.Time       `json:"quoteDate" db:"quote_date"`
	AuditFields
}

// QuoteLine is one priced line of a quote. Prices are snapshots, never
// re-read from the catalog after issue.
type QuoteLine struct {
	LineID       string          `json:"lineID"`
	QuoteID      string          `json:"quoteID" db:"quote_id"`
	WasteID      *string         `json:"wasteID,omitempty" db:"waste_id"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Currency     string          `json:"currency"`
	UnitPriceCLP decimal.Decimal `json:"unitPriceCLP" db:"unit_price_clp"`
	SubtotalCLP  decimal.Decimal `json:"subtotalCLP" db:"subtotal_clp"`
	Unit         string          `json:"unit"`
}
