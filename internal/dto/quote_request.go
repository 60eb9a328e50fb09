package dto

import (
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CreateQuoteRequestRequest defines the public intake form payload.
type CreateQuoteRequestRequest struct {
	Kind             string  `json:"kind" binding:"required,oneof=user company"`
	RequesterName    string  `json:"requesterName" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone" binding:"required"`
	CompanyName      *string `json:"companyName"`
	CompanyTaxID     *string `json:"companyTaxID" binding:"omitempty,rut"`
	BusinessLine     *string `json:"businessLine"`
	Address          string  `json:"address" binding:"required"`
	Region           string  `json:"region" binding:"required"`
	Commune          string  `json:"commune" binding:"required"`
	WasteDescription string  `json:"wasteDescription" binding:"required"`
	EstimatedAmount  string  `json:"estimatedAmount"`
	PickupFrequency  string  `json:"pickupFrequency"`
	FrequencyDetail  string  `json:"frequencyDetail"`
	Observations     string  `json:"observations"`
	Urgency          string  `json:"urgency" binding:"omitempty,oneof=low medium high"`
}

// UpdateRequestStatusRequest moves an intake request to a new status.
type UpdateRequestStatusRequest struct {
	Status       string `json:"status" binding:"required,oneof=pending in_review quoted rejected completed"`
	RejectReason string `json:"rejectReason"`
}

// QuoteRequestResponse defines the data returned for an intake request.
type QuoteRequestResponse struct {
	RequestID        string     `json:"requestID"`
	Number           string     `json:"number"`
	Kind             string     `json:"kind"`
	RequesterName    string     `json:"requesterName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	CompanyName      *string    `json:"companyName,omitempty"`
	CompanyTaxID     *string    `json:"companyTaxID,omitempty"`
	BusinessLine     *string    `json:"businessLine,omitempty"`
	Address          string     `json:"address"`
	Region           string     `json:"region"`
	Commune          string     `json:"commune"`
	WasteDescription string     `json:"wasteDescription"`
	EstimatedAmount  string     `json:"estimatedAmount"`
	PickupFrequency  string     `json:"pickupFrequency"`
	FrequencyDetail  string     `json:"frequencyDetail"`
	Observations     string     `json:"observations"`
	Urgency          string     `json:"urgency"`
	Status           string     `json:"status"`
	QuoteID          *string    `json:"quoteID,omitempty"`
	QuoteNumber      *string    `json:"quoteNumber,omitempty"`
	RejectReason     string     `json:"rejectReason,omitempty"`
	RequestedAt      time.Time  `json:"requestedAt"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty"`
	QuotedAt         *time.Time `json:"quotedAt,omitempty"`
}

// ToQuoteRequestResponse converts a domain.QuoteRequest to QuoteRequestResponse DTO
func ToQuoteRequestResponse(r *domain.QuoteRequest) QuoteRequestResponse {
	return QuoteRequestResponse{
		RequestID:        r.RequestID,
		Number:           r.Number,
		Kind:             string(r.Kind),
		RequesterName:    r.RequesterName,
		Email:            r.Email,
		Phone:            r.Phone,
		CompanyName:      r.CompanyName,
		CompanyTaxID:     r.CompanyTaxID,
		BusinessLine:     r.BusinessLine,
		Address:          r.Address,
		Region:           r.Region,
		Commune:          r.Commune,
		WasteDescription: r.WasteDescription,
		EstimatedAmount:  r.EstimatedAmount,
		PickupFrequency:  r.PickupFrequency,
		FrequencyDetail:  r.FrequencyDetail,
		Observations:     r.Observations,
		Urgency:          string(r.Urgency),
		Status:           string(r.Status),
		QuoteID:          r.QuoteID,
		QuoteNumber:      r.QuoteNumber,
		RejectReason:     r.RejectReason,
		RequestedAt:      r.RequestedAt,
		ReviewedAt:       r.ReviewedAt,
		QuotedAt:         r.QuotedAt,
	}
}

// RequestTrackingResponse is the public projection of an intake request.
// Contact and waste details stay private; only progress is exposed.
type RequestTrackingResponse struct {
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	QuotedAt    *time.Time `json:"quotedAt,omitempty"`
	QuoteNumber *string    `json:"quoteNumber,omitempty"`
}

// ToRequestTrackingResponse converts a domain.QuoteRequest to its public tracking projection
func ToRequestTrackingResponse(r *domain.QuoteRequest) RequestTrackingResponse {
	return RequestTrackingResponse{
		Number:      r.Number,
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt,
		ReviewedAt:  r.ReviewedAt,
		QuotedAt:    r.QuotedAt,
		QuoteNumber: r.QuoteNumber,
	}
}

// ListQuoteRequestsParams defines query parameters for listing intake requests.
type ListQuoteRequestsParams struct {
	Status  string `form:"status"`
	Urgency string `form:"urgency"`
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
}

// ListQuoteRequestsResponse wraps the list of intake requests.
type ListQuoteRequestsResponse struct {
	Requests []QuoteRequestResponse `json:"requests"`
}

// ToListQuoteRequestsResponse converts a slice of domain.QuoteRequest to ListQuoteRequestsResponse DTO
func ToListQuoteRequestsResponse(rs []domain.QuoteRequest) ListQuoteRequestsResponse {
	res := make([]QuoteRequestResponse, len(rs))
	for i, r := range rs {
		res[i] = ToQuoteRequestResponse(&r)
	}
	return ListQuoteRequestsResponse{Requests: res}
}
