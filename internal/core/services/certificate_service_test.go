package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/core/services"
	"github.com/andrenany/api-felmart/internal/dto"
)

// --- Mock CertificateRepository ---
type MockCertificateRepository struct {
	mock.Mock
}

var _ portsrepo.CertificateRepositoryFacade = (*MockCertificateRepository)(nil)

func (m *MockCertificateRepository) FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	args := m.Called(ctx, certificateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListCertificatesByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) ListCertificates(ctx context.Context, limit, offset int) ([]domain.Certificate, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) SaveCertificate(ctx context.Context, cert domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertificateRepository) MarkSentByEmail(ctx context.Context, certificateID, updatedBy string) error {
	args := m.Called(ctx, certificateID, updatedBy)
	return args.Error(0)
}

func (m *MockCertificateRepository) DeleteCertificate(ctx context.Context, certificateID string) error {
	args := m.Called(ctx, certificateID)
	return args.Error(0)
}

// --- Test Suite ---
type CertificateServiceTestSuite struct {
	suite.Suite
	mockCertRepo *MockCertificateRepository
	mockUserRepo *MockUserRepository
	mockSender   *MockEmailSender
	uploadDir    string
	service      portssvc.CertificateSvcFacade
}

func (suite *CertificateServiceTestSuite) SetupTest() {
	suite.mockCertRepo = new(MockCertificateRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSender = new(MockEmailSender)
	suite.uploadDir = suite.T().TempDir()
	suite.service = services.NewCertificateService(suite.mockCertRepo, suite.mockUserRepo, suite.mockSender, suite.uploadDir)
}

// --- Test Cases ---

func (suite *CertificateServiceTestSuite) TestUploadCertificate_StoresFileAndRecord() {
	ctx := context.Background()
	userID := uuid.NewString()
	content := []byte("%PDF-1.4 certificado")

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Email: "ana@example.cl"}, nil).Once()
	suite.mockCertRepo.On("SaveCertificate", ctx, mock.MatchedBy(func(c domain.Certificate) bool {
		return c.UserID == userID && c.FileName == "certificado.pdf" &&
			c.SizeBytes == int64(len(content)) && filepath.Ext(c.StoredPath) == ".pdf"
	})).Return(nil).Once()

	cert, emailSent, err := suite.service.UploadCertificate(ctx,
		dto.UploadCertificateForm{UserID: userID},
		"certificado.pdf", "application/pdf", content, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(emailSent)

	stored, err := os.ReadFile(cert.StoredPath)
	suite.Require().NoError(err)
	suite.Equal(content, stored)
	suite.mockCertRepo.AssertExpectations(suite.T())
}

func (suite *CertificateServiceTestSuite) TestUploadCertificate_EmptyFile() {
	ctx := context.Background()

	cert, _, err := suite.service.UploadCertificate(ctx,
		dto.UploadCertificateForm{UserID: uuid.NewString()},
		"certificado.pdf", "application/pdf", nil, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(cert)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CertificateServiceTestSuite) TestUploadCertificate_SaveFailureRemovesFile() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockCertRepo.On("SaveCertificate", ctx, mock.AnythingOfType("domain.Certificate")).Return(assert.AnError).Once()

	cert, _, err := suite.service.UploadCertificate(ctx,
		dto.UploadCertificateForm{UserID: userID},
		"certificado.pdf", "application/pdf", []byte("data"), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(cert)

	entries, readErr := os.ReadDir(suite.uploadDir)
	suite.Require().NoError(readErr)
	suite.Empty(entries, "orphaned file should have been removed")
}

func (suite *CertificateServiceTestSuite) TestUploadCertificate_EmailFailureDoesNotFailUpload() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Email: "ana@example.cl"}, nil).Once()
	suite.mockCertRepo.On("SaveCertificate", ctx, mock.AnythingOfType("domain.Certificate")).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(assert.AnError).Once()

	cert, emailSent, err := suite.service.UploadCertificate(ctx,
		dto.UploadCertificateForm{UserID: userID, SendEmail: true},
		"certificado.pdf", "application/pdf", []byte("data"), uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(cert)
	suite.False(emailSent)
	suite.False(cert.SentByEmail)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *CertificateServiceTestSuite) TestResendCertificate_MarksSent() {
	ctx := context.Background()
	certificateID := uuid.NewString()
	adminID := uuid.NewString()
	userID := uuid.NewString()

	storedPath := filepath.Join(suite.uploadDir, certificateID+".pdf")
	suite.Require().NoError(os.WriteFile(storedPath, []byte("%PDF"), 0o644))

	cert := &domain.Certificate{
		CertificateID: certificateID,
		UserID:        userID,
		FileName:      "certificado.pdf",
		StoredPath:    storedPath,
		ContentType:   "application/pdf",
	}
	suite.mockCertRepo.On("FindCertificateByID", ctx, certificateID).Return(cert, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Ana", Email: "ana@example.cl"}, nil).Once()
	suite.mockSender.On("Send", ctx, mock.MatchedBy(func(msg portssvc.Email) bool {
		return len(msg.Attachments) == 1 && msg.Attachments[0].FileName == "certificado.pdf"
	})).Return(nil).Once()
	suite.mockCertRepo.On("MarkSentByEmail", ctx, certificateID, adminID).Return(nil).Once()

	err := suite.service.ResendCertificate(ctx, certificateID, adminID)

	suite.Require().NoError(err)
	suite.mockCertRepo.AssertExpectations(suite.T())
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *CertificateServiceTestSuite) TestDeleteCertificate_RemovesFile() {
	ctx := context.Background()
	certificateID := uuid.NewString()

	storedPath := filepath.Join(suite.uploadDir, certificateID+".pdf")
	suite.Require().NoError(os.WriteFile(storedPath, []byte("%PDF"), 0o644))

	cert := &domain.Certificate{CertificateID: certificateID, StoredPath: storedPath}
	suite.mockCertRepo.On("FindCertificateByID", ctx, certificateID).Return(cert, nil).Once()
	suite.mockCertRepo.On("DeleteCertificate", ctx, certificateID).Return(nil).Once()

	err := suite.service.DeleteCertificate(ctx, certificateID)

	suite.Require().NoError(err)
	suite.NoFileExists(storedPath)
	suite.mockCertRepo.AssertExpectations(suite.T())
}

func TestCertificateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceTestSuite))
}
