package dto

import (
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CreateVisitRequest defines the data needed to schedule a site visit.
// VisitDate is "YYYY-MM-DD" and VisitTime is "HH:MM".
type CreateVisitRequest struct {
	UserID       string  `json:"userID" binding:"required"`
	CompanyID    *string `json:"companyID"`
	QuoteID      *string `json:"quoteID"`
	VisitDate    string  `json:"visitDate" binding:"required,datetime=2006-01-02"`
	VisitTime    string  `json:"visitTime" binding:"required,datetime=15:04"`
	Reason       string  `json:"reason" binding:"required,oneof=pickup evaluation"`
	Observations string  `json:"observations"`
}

// UpdateVisitRequest applies changes to a visit. Only the provided fields
// are updated; a slot change is checked against other visits.
type UpdateVisitRequest struct {
	VisitDate    *string `json:"visitDate" binding:"omitempty,datetime=2006-01-02"`
	VisitTime    *string `json:"visitTime" binding:"omitempty,datetime=15:04"`
	Reason       *string `json:"reason" binding:"omitempty,oneof=pickup evaluation"`
	Observations *string `json:"observations"`
}

// ReprogramVisitRequest moves a visit to a new slot.
type ReprogramVisitRequest struct {
	VisitDate string `json:"visitDate" binding:"required,datetime=2006-01-02"`
	VisitTime string `json:"visitTime" binding:"required,datetime=15:04"`
}

// VisitResponse defines the data returned for a visit.
type VisitResponse struct {
	VisitID      string    `json:"visitID"`
	UserID       string    `json:"userID"`
	CompanyID    *string   `json:"companyID,omitempty"`
	QuoteID      *string   `json:"quoteID,omitempty"`
	VisitDate    string    `json:"visitDate"`
	VisitTime    string    `json:"visitTime"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToVisitResponse converts a domain.Visit to VisitResponse DTO
func ToVisitResponse(v *domain.Visit) VisitResponse {
	return VisitResponse{
		VisitID:      v.VisitID,
		UserID:       v.UserID,
		CompanyID:    v.CompanyID,
		QuoteID:      v.QuoteID,
		VisitDate:    v.VisitDate.Format("2006-01-02"),
		VisitTime:    v.VisitTime,
		Reason:       string(v.Reason),
		Status:       string(v.Status),
		Observations: v.Observations,
		CreatedAt:    v.CreatedAt,
	}
}

// CreateVisitResponse reports the scheduled visit. When the requested slot
// was already taken, Existing is true and Visit carries the occupying visit.
type CreateVisitResponse struct {
	Visit    VisitResponse `json:"visit"`
	Existing bool          `json:"existing"`
}

// ListVisitsParams defines query parameters for listing visits.
type ListVisitsParams struct {
	Status string `form:"status"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListVisitsResponse wraps the list of visits.
type ListVisitsResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// ToListVisitsResponse converts a slice of domain.Visit to ListVisitsResponse DTO
func ToListVisitsResponse(vs []domain.Visit) ListVisitsResponse {
	res := make([]VisitResponse, len(vs))
	for i, v := range vs {
		res[i] = ToVisitResponse(&v)
	}
	return ListVisitsResponse{Visits: res}
}
