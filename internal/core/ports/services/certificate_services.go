package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// CertificateReaderSvc defines read operations for certificates
type CertificateReaderSvc interface {
	// GetCertificateByID retrieves a certificate record by its ID.
	GetCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error)

	// ListCertificatesByUser retrieves the certificates issued to a user.
	ListCertificatesByUser(ctx context.Context, userID string) ([]domain.Certificate, error)

	// ListCertificates retrieves certificates with pagination.
	ListCertificates(ctx context.Context, limit, offset int) ([]domain.Certificate, error)

	// CertificateFile returns the record and the stored file contents.
	CertificateFile(ctx context.Context, certificateID string) (*domain.Certificate, []byte, error)
}

// CertificateWriterSvc defines write operations for certificates
type CertificateWriterSvc interface {
	// UploadCertificate stores the uploaded file and its record. The
	// returned bool reports whether the certificate email was delivered.
	UploadCertificate(ctx context.Context, form dto.UploadCertificateForm, fileName, contentType string, content []byte, adminID string) (*domain.Certificate, bool, error)

	// ResendCertificate emails the certificate file to its user again.
	ResendCertificate(ctx context.Context, certificateID, adminID string) error

	// DeleteCertificate removes the record and the stored file.
	DeleteCertificate(ctx context.Context, certificateID string) error
}

// CertificateSvcFacade combines all certificate-related service interfaces
type CertificateSvcFacade interface {
	CertificateReaderSvc
	CertificateWriterSvc
}
