package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// QuoteLineRequest is one requested line of a new quote. WasteID selects a
// catalog entry; a free-form line carries its own description and price.
// Positive Price/non-empty Currency override the catalog snapshot.
type QuoteLineRequest struct {
	WasteID     *string         `json:"wasteID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Unit        string          `json:"unit"`
}

// CreateQuoteRequest defines the data needed to issue a quote. A positive
// UFValue is used for UF conversion instead of the daily rate.
type CreateQuoteRequest struct {
	Kind          string             `json:"kind" binding:"required,oneof=user company"`
	UserID        *string            `json:"userID"`
	CompanyID     *string            `json:"companyID"`
	Lines         []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
	UFValue       *decimal.Decimal   `json:"ufValue"`
	TotalOverride *decimal.Decimal   `json:"totalOverride"`
	Observations  string             `json:"observations"`
	QuoteDate     *time.Time         `json:"quoteDate"`
	RequestID     *string            `json:"requestID"`
	SendEmail     bool               `json:"sendEmail"`
}

// UpdateQuoteStatusRequest moves a quote to a new status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted rejected"`
}

// QuoteLineResponse defines the data returned for a quote line.
type QuoteLineResponse struct {
	LineID       string          `json:"lineID"`
	WasteID      *string         `json:"wasteID,omitempty"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Currency     string          `json:"currency"`
	UnitPriceCLP decimal.Decimal `json:"unitPriceCLP"`
	SubtotalCLP  decimal.Decimal `json:"subtotalCLP"`
	Unit         string          `json:"unit"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID        string              `json:"quoteID"`
	Number         string              `json:"number"`
	Kind           string              `json:"kind"`
	UserID         *string             `json:"userID,omitempty"`
	UserName       string              `json:"userName"`
	CompanyID      *string             `json:"companyID,omitempty"`
	CompanyTaxID   *string             `json:"companyTaxID,omitempty"`
	CompanyName    *string             `json:"companyName,omitempty"`
	CompanyAddress string              `json:"companyAddress"`
	Region         string              `json:"region"`
	Commune        string              `json:"commune"`
	UFValue        decimal.Decimal     `json:"ufValue"`
	TotalCLP       decimal.Decimal     `json:"totalCLP"`
	Status         string              `json:"status"`
	Observations   string              `json:"observations"`
	QuoteDate      time.Time           `json:"quoteDate"`
	Lines          []QuoteLineResponse `json:"lines"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// CreateQuoteResponse is the payload returned after issuing a quote. EmailSent
// reports whether delivery succeeded; a failed send does not fail the create.
type CreateQuoteResponse struct {
	Quote     QuoteResponse `json:"quote"`
	EmailSent bool          `json:"emailSent"`
}

// ToQuoteLineResponse converts a domain.QuoteLine to QuoteLineResponse DTO
func ToQuoteLineResponse(l *domain.QuoteLine) QuoteLineResponse {
	return QuoteLineResponse{
		LineID:       l.LineID,
		WasteID:      l.WasteID,
		Description:  l.Description,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
		Currency:     l.Currency,
		UnitPriceCLP: l.UnitPriceCLP,
		SubtotalCLP:  l.SubtotalCLP,
		Unit:         l.Unit,
	}
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = ToQuoteLineResponse(&l)
	}
	return QuoteResponse{
		QuoteID:        q.QuoteID,
		Number:         q.Number,
		Kind:           string(q.Kind),
		UserID:         q.UserID,
		UserName:       q.UserName,
		CompanyID:      q.CompanyID,
		CompanyTaxID:   q.CompanyTaxID,
		CompanyName:    q.CompanyName,
		CompanyAddress: q.CompanyAddress,
		Region:         q.Region,
		Commune:        q.Commune,
		UFValue:        q.UFValue,
		TotalCLP:       q.TotalCLP,
		Status:         string(q.Status),
		Observations:   q.Observations,
		QuoteDate:      q.QuoteDate,
		Lines:          lines,
		CreatedAt:      q.CreatedAt,
	}
}

// ListQuotesParams defines query parameters for listing quotes.
type ListQuotesParams struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListQuotesResponse wraps the list of quotes.
type ListQuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// ToListQuotesResponse converts a slice of domain.Quote to ListQuotesResponse DTO
func ToListQuotesResponse(qs []domain.Quote) ListQuotesResponse {
	res := make([]QuoteResponse, len(qs))
	for i, q := range qs {
		res[i] = ToQuoteResponse(&q)
	}
	return ListQuotesResponse{Quotes: res}
}
