package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote. Lines are mapped
// separately since they live in their own table.
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:        d.QuoteID,
		Number:         d.Number,
		Kind:           string(d.Kind),
		UserID:         d.UserID,
		UserName:       d.UserName,
		CompanyID:      d.CompanyID,
		CompanyTaxID:   d.CompanyTaxID,
		CompanyName:    d.CompanyName,
		CompanyAddress: d.CompanyAddress,
		Region:         d.Region,
		Commune:        d.Commune,
		UFValue:        d.UFValue,
		TotalCLP:       d.TotalCLP,
		Status:         string(d.Status),
		Observations:   d.Observations,
		AdminID:        d.AdminID,
		QuoteDate:      d.QuoteDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuote converts a model Quote to a domain Quote without lines.
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:        m.QuoteID,
		Number:         m.Number,
		Kind:           domain.QuoteKind(m.Kind),
		UserID:         m.UserID,
		UserName:       m.UserName,
		CompanyID:      m.CompanyID,
		CompanyTaxID:   m.CompanyTaxID,
		CompanyName:    m.CompanyName,
		CompanyAddress: m.CompanyAddress,
		Region:         m.Region,
		Commune:        m.Commune,
		UFValue:        m.UFValue,
		TotalCLP:       m.TotalCLP,
		Status:         domain.QuoteStatus(m.Status),
		Observations:   m.Observations,
		AdminID:        m.AdminID,
		QuoteDate:      m.QuoteDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainQuoteSlice converts a slice of model Quotes to a slice of domain Quotes
func ToDomainQuoteSlice(ms []models.Quote) []domain.Quote {
	ds := make([]domain.Quote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuote(m)
	}
	return ds
}

// ToModelQuoteLine converts a domain QuoteLine to a model QuoteLine
func ToModelQuoteLine(d domain.QuoteLine) models.QuoteLine {
	return models.QuoteLine{
		LineID:       d.LineID,
		QuoteID:      d.QuoteID,
		WasteID:      d.WasteID,
		Description:  d.Description,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Currency:     d.Currency,
		UnitPriceCLP: d.UnitPriceCLP,
		SubtotalCLP:  d.SubtotalCLP,
		Unit:         d.Unit,
	}
}

// ToDomainQuoteLine converts a model QuoteLine to a domain QuoteLine
func ToDomainQuoteLine(m models.QuoteLine) domain.QuoteLine {
	return domain.QuoteLine{
		LineID:       m.LineID,
		QuoteID:      m.QuoteID,
		WasteID:      m.WasteID,
		Description:  m.Description,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Currency:     m.Currency,
		UnitPriceCLP: m.UnitPriceCLP,
		SubtotalCLP:  m.SubtotalCLP,
		Unit:         m.Unit,
	}
}

// ToDomainQuoteLineSlice converts a slice of model QuoteLines to a slice of domain QuoteLines
func ToDomainQuoteLineSlice(ms []models.QuoteLine) []domain.QuoteLine {
	ds := make([]domain.QuoteLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuoteLine(m)
	}
	return ds
}
