package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the client-facing review state of an issued quote.
type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

// QuoteKind tells whether a quote addresses an individual or a company.
type QuoteKind string

const (
	QuoteForUser    QuoteKind = "user"
	QuoteForCompany QuoteKind = "company"
)

// CurrencyCLP is the local currency every quote total is expressed in.
// CurrencyUF is the inflation-indexed unit converted via the daily rate.
const (
	CurrencyCLP = "CLP"
	CurrencyUF  = "UF"
)

// Quote is an issued cotización. Party/company descriptive fields are
// snapshots taken at creation time, so later registry edits do not alter
// the issued document.
type Quote struct {
	QuoteID        string          `json:"quoteID"`
	Number         string          `json:"number"` // "COT-NNNNNN", unique, monotonic
	Kind           QuoteKind       `json:"kind"`
	UserID         *string         `json:"userID,omitempty"`
	UserName       string          `json:"userName"`
	CompanyID      *string         `json:"companyID,omitempty"`
	CompanyTaxID   *string         `json:"companyTaxID,omitempty"`
	CompanyName    *string         `json:"companyName,omitempty"`
	CompanyAddress string          `json:"companyAddress,omitempty"`
	Region         string          `json:"region,omitempty"`
	Commune        string          `json:"commune,omitempty"`
	UFValue        decimal.Decimal `json:"ufValue"`
	TotalCLP       decimal.Decimal `json:"totalCLP"`
	Status         QuoteStatus     `json:"status"`
	Observations   string          `json:"observations"`
	AdminID        string          `json:"adminID"`
	QuoteDate      time.Time       `json:"quoteDate"`
	Lines          []QuoteLine     `json:"lines,omitempty"`
	AuditFields
}

// QuoteLine is a priced line item. WasteID is nil for manual items. All
// descriptive fields are snapshots of the catalog entry (or the manual
// input) at quote time.
type QuoteLine struct {
	LineID       string          `json:"lineID"`
	QuoteID      string          `json:"quoteID"`
	WasteID      *string         `json:"wasteID,omitempty"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`    // in Currency
	Currency     string          `json:"currency"`     // original currency of UnitPrice
	UnitPriceCLP decimal.Decimal `json:"unitPriceCLP"` // converted at the quote's UF value
	SubtotalCLP  decimal.Decimal `json:"subtotalCLP"`  // UnitPriceCLP × Quantity
	Unit         string          `json:"unit"`
}
