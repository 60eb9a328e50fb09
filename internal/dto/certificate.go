package dto

import (
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// UploadCertificateForm defines the multipart form fields that accompany a
// certificate file upload.
type UploadCertificateForm struct {
	UserID      string  `form:"userID" binding:"required"`
	CompanyID   *string `form:"companyID"`
	VisitID     *string `form:"visitID"`
	Description string  `form:"description"`
	SendEmail   bool    `form:"sendEmail"`
}

// CertificateResponse defines the data returned for a certificate.
type CertificateResponse struct {
	CertificateID string    `json:"certificateID"`
	UserID        string    `json:"userID"`
	CompanyID     *string   `json:"companyID,omitempty"`
	VisitID       *string   `json:"visitID,omitempty"`
	FileName      string    `json:"fileName"`
	ContentType   string    `json:"contentType"`
	SizeBytes     int64     `json:"sizeBytes"`
	Description   string    `json:"description"`
	SentByEmail   bool      `json:"sentByEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToCertificateResponse converts a domain.Certificate to CertificateResponse DTO
func ToCertificateResponse(c *domain.Certificate) CertificateResponse {
	return CertificateResponse{
		CertificateID: c.CertificateID,
		UserID:        c.UserID,
		CompanyID:     c.CompanyID,
		VisitID:       c.VisitID,
		FileName:      c.FileName,
		ContentType:   c.ContentType,
		SizeBytes:     c.SizeBytes,
		Description:   c.Description,
		SentByEmail:   c.SentByEmail,
		CreatedAt:     c.CreatedAt,
	}
}

// ListCertificatesResponse wraps the list of certificates.
type ListCertificatesResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
}

// ToListCertificatesResponse converts a slice of domain.Certificate to ListCertificatesResponse DTO
func ToListCertificatesResponse(cs []domain.Certificate) ListCertificatesResponse {
	res := make([]CertificateResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCertificateResponse(&c)
	}
	return ListCertificatesResponse{Certificates: res}
}
