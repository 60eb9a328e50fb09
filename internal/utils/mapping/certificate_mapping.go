package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelCertificate converts a domain Certificate to a model Certificate
func ToModelCertificate(d domain.Certificate) models.Certificate {
	return models.Certificate{
		CertificateID: d.CertificateID,
		UserID:        d.UserID,
		CompanyID:     d.CompanyID,
		VisitID:       d.VisitID,
		FileName:      d.FileName,
		StoredPath:    d.StoredPath,
		ContentType:   d.ContentType,
		SizeBytes:     d.SizeBytes,
		Description:   d.Description,
		SentByEmail:   d.SentByEmail,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCertificate converts a model Certificate to a domain Certificate
func ToDomainCertificate(m models.Certificate) domain.Certificate {
	return domain.Certificate{
		CertificateID: m.CertificateID,
		UserID:        m.UserID,
		CompanyID:     m.CompanyID,
		VisitID:       m.VisitID,
		FileName:      m.FileName,
		StoredPath:    m.StoredPath,
		ContentType:   m.ContentType,
		SizeBytes:     m.SizeBytes,
		Description:   m.Description,
		SentByEmail:   m.SentByEmail,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCertificateSlice converts a slice of model Certificates to a slice of domain Certificates
func ToDomainCertificateSlice(ms []models.Certificate) []domain.Certificate {
	ds := make([]domain.Certificate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCertificate(m)
	}
	return ds
}
