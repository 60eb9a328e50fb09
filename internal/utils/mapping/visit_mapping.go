package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelVisit converts a domain Visit to a model Visit
func ToModelVisit(d domain.Visit) models.Visit {
	return models.Visit{
		VisitID:      d.VisitID,
		UserID:       d.UserID,
		CompanyID:    d.CompanyID,
		QuoteID:      d.QuoteID,
		VisitDate:    d.VisitDate,
		VisitTime:    d.VisitTime,
		Reason:       string(d.Reason),
		Status:       string(d.Status),
		Observations: d.Observations,
		AdminID:      d.AdminID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVisit converts a model Visit to a domain Visit
func ToDomainVisit(m models.Visit) domain.Visit {
	return domain.Visit{
		VisitID:      m.VisitID,
		UserID:       m.UserID,
		CompanyID:    m.CompanyID,
		QuoteID:      m.QuoteID,
		VisitDate:    m.VisitDate,
		VisitTime:    m.VisitTime,
		Reason:       domain.VisitReason(m.Reason),
		Status:       domain.VisitStatus(m.Status),
		Observations: m.Observations,
		AdminID:      m.AdminID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVisitSlice converts a slice of model Visits to a slice of domain Visits
func ToDomainVisitSlice(ms []models.Visit) []domain.Visit {
	ds := make([]domain.Visit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVisit(m)
	}
	return ds
}
