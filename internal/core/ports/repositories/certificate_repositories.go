package repositories

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CertificateReader defines read operations for certificates
type CertificateReader interface {
	// FindCertificateByID retrieves a certificate by its ID.
	FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error)

	// ListCertificatesByUser retrieves the certificates issued to a user.
	ListCertificatesByUser(ctx context.Context, userID string) ([]domain.Certificate, error)

	// ListCertificates retrieves certificates with pagination.
	ListCertificates(ctx context.Context, limit, offset int) ([]domain.Certificate, error)
}

// CertificateWriter defines write operations for certificates
type CertificateWriter interface {
	// SaveCertificate persists a new certificate record.
	SaveCertificate(ctx context.Context, cert domain.Certificate) error

	// MarkSentByEmail records that a certificate was delivered by email.
	MarkSentByEmail(ctx context.Context, certificateID, updatedBy string) error

	// DeleteCertificate removes a certificate record.
	DeleteCertificate(ctx context.Context, certificateID string) error
}

// CertificateRepositoryFacade combines all certificate-related repository interfaces
type CertificateRepositoryFacade interface {
	CertificateReader
	CertificateWriter
}
