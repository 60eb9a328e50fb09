package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
)

type CertificateService struct {
	certRepo  portsrepo.CertificateRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
	sender    portssvc.EmailSender
	uploadDir string
}

var _ portssvc.CertificateSvcFacade = (*CertificateService)(nil)

func NewCertificateService(
	certRepo portsrepo.CertificateRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	sender portssvc.EmailSender,
	uploadDir string,
) *CertificateService {
	return &CertificateService{
		certRepo:  certRepo,
		userRepo:  userRepo,
		sender:    sender,
		uploadDir: uploadDir,
	}
}

// GetCertificateByID retrieves a certificate record by its ID.
func (s *CertificateService) GetCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	return s.certRepo.FindCertificateByID(ctx, certificateID)
}

// ListCertificatesByUser retrieves the certificates issued to a user.
func (s *CertificateService) ListCertificatesByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	certs, err := s.certRepo.ListCertificatesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []domain.Certificate{}
	}
	return certs, nil
}

// ListCertificates retrieves certificates with pagination.
func (s *CertificateService) ListCertificates(ctx context.Context, limit, offset int) ([]domain.Certificate, error) {
	certs, err := s.certRepo.ListCertificates(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []domain.Certificate{}
	}
	return certs, nil
}

// CertificateFile returns the record and the stored file contents.
func (s *CertificateService) CertificateFile(ctx context.Context, certificateID string) (*domain.Certificate, []byte, error) {
	cert, err := s.certRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return nil, nil, err
	}
	content, err := os.ReadFile(cert.StoredPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read certificate file: %w", err)
	}
	return cert, content, nil
}

// UploadCertificate stores the uploaded file under the upload directory and
// persists its record. When SendEmail is set the file is also mailed to the
// user; delivery failures never fail the upload and are reported through the
// returned bool.
func (s *CertificateService) UploadCertificate(ctx context.Context, form dto.UploadCertificateForm, fileName, contentType string, content []byte, adminID string) (*domain.Certificate, bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(content) == 0 {
		return nil, false, apperrors.NewValidationError("certificate file is empty")
	}

	user, err := s.userRepo.FindUserByID(ctx, form.UserID)
	if err != nil {
		return nil, false, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, false, fmt.Errorf("failed to create upload directory: %w", err)
	}

	certificateID := uuid.NewString()
	storedPath := filepath.Join(s.uploadDir, certificateID+filepath.Ext(fileName))
	if err := os.WriteFile(storedPath, content, 0o644); err != nil {
		return nil, false, fmt.Errorf("failed to store certificate file: %w", err)
	}

	now := time.Now().UTC()
	cert := domain.Certificate{
		CertificateID: certificateID,
		UserID:        form.UserID,
		CompanyID:     form.CompanyID,
		VisitID:       form.VisitID,
		FileName:      fileName,
		StoredPath:    storedPath,
		ContentType:   contentType,
		SizeBytes:     int64(len(content)),
		Description:   form.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
	if err := s.certRepo.SaveCertificate(ctx, cert); err != nil {
		if removeErr := os.Remove(storedPath); removeErr != nil {
			logger.Warn("Failed to remove orphaned certificate file", "path", storedPath, "error", removeErr.Error())
		}
		return nil, false, err
	}
	logger.Info("Certificate uploaded", "certificate_id", certificateID, "user_id", form.UserID, "size", cert.SizeBytes)

	emailSent := false
	if form.SendEmail {
		if err := s.emailCertificate(ctx, &cert, user, adminID); err != nil {
			logger.Warn("Certificate email failed", "certificate_id", certificateID, "error", err.Error())
		} else {
			emailSent = true
			cert.SentByEmail = true
		}
	}

	return &cert, emailSent, nil
}

// ResendCertificate emails the certificate file to its user again.
func (s *CertificateService) ResendCertificate(ctx context.Context, certificateID, adminID string) error {
	cert, err := s.certRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return err
	}
	user, err := s.userRepo.FindUserByID(ctx, cert.UserID)
	if err != nil {
		return err
	}
	return s.emailCertificate(ctx, cert, user, adminID)
}

func (s *CertificateService) emailCertificate(ctx context.Context, cert *domain.Certificate, user *domain.User, adminID string) error {
	content, err := os.ReadFile(cert.StoredPath)
	if err != nil {
		return fmt.Errorf("failed to read certificate file: %w", err)
	}
	if err := s.sender.Send(ctx, portssvc.Email{
		To:       []string{user.Email},
		Subject:  "Certificado de disposición - FELMART",
		HTMLBody: mailer.CertificateEmailBody(user.Name, cert.FileName),
		Attachments: []portssvc.EmailAttachment{{
			FileName:    cert.FileName,
			ContentType: cert.ContentType,
			Content:     content,
		}},
	}); err != nil {
		return err
	}
	if err := s.certRepo.MarkSentByEmail(ctx, cert.CertificateID, adminID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to mark certificate as sent", "certificate_id", cert.CertificateID, "error", err.Error())
	}
	return nil
}

// DeleteCertificate removes the record and the stored file.
func (s *CertificateService) DeleteCertificate(ctx context.Context, certificateID string) error {
	cert, err := s.certRepo.FindCertificateByID(ctx, certificateID)
	if err != nil {
		return err
	}
	if err := s.certRepo.DeleteCertificate(ctx, certificateID); err != nil {
		return err
	}
	if err := os.Remove(cert.StoredPath); err != nil && !os.IsNotExist(err) {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to remove certificate file", "path", cert.StoredPath, "error", err.Error())
	}
	return nil
}
