package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelQuoteRequest converts a domain QuoteRequest to a model QuoteRequest
func ToModelQuoteRequest(d domain.QuoteRequest) models.QuoteRequest {
	return models.QuoteRequest{
		RequestID:        d.RequestID,
		Number:           d.Number,
		Kind:             string(d.Kind),
		RequesterName:    d.RequesterName,
		Email:            d.Email,
		Phone:            d.Phone,
		CompanyName:      d.CompanyName,
		CompanyTaxID:     d.CompanyTaxID,
		BusinessLine:     d.BusinessLine,
		Address:          d.Address,
		Region:           d.Region,
		Commune:          d.Commune,
		WasteDescription: d.WasteDescription,
		EstimatedAmount:  d.EstimatedAmount,
		PickupFrequency:  d.PickupFrequency,
		FrequencyDetail:  d.FrequencyDetail,
		Observations:     d.Observations,
		Urgency:          string(d.Urgency),
		Status:           string(d.Status),
		AdminID:          d.AdminID,
		QuoteID:          d.QuoteID,
		QuoteNumber:      d.QuoteNumber,
		RejectReason:     d.RejectReason,
		RequestedAt:      d.RequestedAt,
		ReviewedAt:       d.ReviewedAt,
		QuotedAt:         d.QuotedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuoteRequest converts a model QuoteRequest to a domain QuoteRequest
func ToDomainQuoteRequest(m models.QuoteRequest) domain.QuoteRequest {
	return domain.QuoteRequest{
		RequestID:        m.RequestID,
		Number:           m.Number,
		Kind:             domain.QuoteKind(m.Kind),
		RequesterName:    m.RequesterName,
		Email:            m.Email,
		Phone:            m.Phone,
		CompanyName:      m.CompanyName,
		CompanyTaxID:     m.CompanyTaxID,
		BusinessLine:     m.BusinessLine,
		Address:          m.Address,
		Region:           m.Region,
		Commune:          m.Commune,
		WasteDescription: m.WasteDescription,
		EstimatedAmount:  m.EstimatedAmount,
		PickupFrequency:  m.PickupFrequency,
		FrequencyDetail:  m.FrequencyDetail,
		Observations:     m.Observations,
		Urgency:          domain.RequestUrgency(m.Urgency),
		Status:           domain.RequestStatus(m.Status),
		AdminID:          m.AdminID,
		QuoteID:          m.QuoteID,
		QuoteNumber:      m.QuoteNumber,
		RejectReason:     m.RejectReason,
		RequestedAt:      m.RequestedAt,
		ReviewedAt:       m.ReviewedAt,
		QuotedAt:         m.QuotedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainQuoteRequestSlice converts a slice of model QuoteRequests to a slice of domain QuoteRequests
func ToDomainQuoteRequestSlice(ms []models.QuoteRequest) []domain.QuoteRequest {
	ds := make([]domain.QuoteRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuoteRequest(m)
	}
	return ds
}
