package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:    d.CompanyID,
		TaxID:        d.TaxID,
		Name:         d.Name,
		BusinessLine: d.BusinessLine,
		Address:      d.Address,
		Region:       d.Region,
		Commune:      d.Commune,
		Approval:     string(d.Approval),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:    m.CompanyID,
		TaxID:        m.TaxID,
		Name:         m.Name,
		BusinessLine: m.BusinessLine,
		Address:      m.Address,
		Region:       m.Region,
		Commune:      m.Commune,
		Approval:     domain.CompanyApproval(m.Approval),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model Companies to a slice of domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

// ToDomainCompanyUser converts a model CompanyUser to a domain CompanyUser
func ToDomainCompanyUser(m models.CompanyUser) domain.CompanyUser {
	return domain.CompanyUser{
		CompanyID:  m.CompanyID,
		UserID:     m.UserID,
		Active:     m.Active,
		AssignedAt: m.AssignedAt,
	}
}

// ToModelCompanyUser converts a domain CompanyUser to a model CompanyUser
func ToModelCompanyUser(d domain.CompanyUser) models.CompanyUser {
	return models.CompanyUser{
		CompanyID:  d.CompanyID,
		UserID:     d.UserID,
		Active:     d.Active,
		AssignedAt: d.AssignedAt,
	}
}
