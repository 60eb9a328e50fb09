package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/core/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/utils"
)

// --- Mock NotificationWriter ---
type MockNotificationWriter struct {
	mock.Mock
}

var _ portssvc.NotificationWriterSvc = (*MockNotificationWriter)(nil)

func (m *MockNotificationWriter) CreateNotification(ctx context.Context, adminID string, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, createdBy string) (*domain.Notification, error) {
	args := m.Called(ctx, adminID, kind, title, body, priority, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationWriter) DeleteNotification(ctx context.Context, adminID, notificationID string) error {
	args := m.Called(ctx, adminID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationWriter) MarkRead(ctx context.Context, adminID, notificationID string) error {
	args := m.Called(ctx, adminID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationWriter) MarkAllRead(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

func (m *MockNotificationWriter) Sweep(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationWriter) NotifyAdmins(ctx context.Context, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, extra map[string]string) error {
	args := m.Called(ctx, kind, title, body, priority, extra)
	return args.Error(0)
}

// --- Test Suite ---
type QuoteRequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo *MockQuoteRequestRepository
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	mockSender      *MockEmailSender
	mockNotifier    *MockNotificationWriter
	service         portssvc.QuoteRequestSvcFacade
}

func (suite *QuoteRequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockQuoteRequestRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockSender = new(MockEmailSender)
	suite.mockNotifier = new(MockNotificationWriter)
	suite.service = services.NewQuoteRequestService(
		suite.mockRequestRepo,
		suite.mockUserRepo,
		suite.mockCompanyRepo,
		suite.mockSender,
		suite.mockNotifier,
	)
}

// --- Test Cases ---

func (suite *QuoteRequestServiceTestSuite) TestCreateRequest_Success() {
	ctx := context.Background()

	suite.mockRequestRepo.On("CreateRequest", ctx, mock.MatchedBy(func(r *domain.QuoteRequest) bool {
		return r.Status == domain.RequestPending && r.Urgency == domain.UrgencyMedium && r.CreatedBy == "public"
	})).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(nil).Once()
	suite.mockNotifier.On("NotifyAdmins", ctx, domain.NotifyPendingRequest, mock.Anything, mock.Anything, domain.PriorityMedium, mock.Anything).Return(nil).Once()

	req := dto.CreateQuoteRequestRequest{
		Kind:             string(domain.QuoteForUser),
		RequesterName:    "Carlos Soto",
		Email:            "carlos@example.cl",
		Phone:            "+56912345678",
		Address:          "Av. Alemania 1234",
		Region:           "Araucanía",
		Commune:          "Temuco",
		WasteDescription: "Tambores con solvente",
	}

	request, err := suite.service.CreateRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(request)
	suite.Equal(domain.RequestPending, request.Status)
	suite.Equal(domain.UrgencyMedium, request.Urgency)
	suite.mockRequestRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestCreateRequest_CompanyWithoutTaxIDFails() {
	ctx := context.Background()

	req := dto.CreateQuoteRequestRequest{
		Kind:             string(domain.QuoteForCompany),
		RequesterName:    "Carlos Soto",
		Email:            "carlos@example.cl",
		Phone:            "+56912345678",
		Address:          "Av. Alemania 1234",
		Region:           "Araucanía",
		Commune:          "Temuco",
		WasteDescription: "Tambores con solvente",
	}

	request, err := suite.service.CreateRequest(ctx, req)

	suite.Require().Error(err)
	suite.Nil(request)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "CreateRequest", mock.Anything, mock.Anything)
}

func (suite *QuoteRequestServiceTestSuite) TestCreateRequest_EmailFailureDoesNotFailCreate() {
	ctx := context.Background()

	suite.mockRequestRepo.On("CreateRequest", ctx, mock.AnythingOfType("*domain.QuoteRequest")).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(assert.AnError).Once()
	suite.mockNotifier.On("NotifyAdmins", ctx, domain.NotifyPendingRequest, mock.Anything, mock.Anything, domain.PriorityMedium, mock.Anything).Return(nil).Once()

	req := dto.CreateQuoteRequestRequest{
		Kind:             string(domain.QuoteForUser),
		RequesterName:    "Carlos Soto",
		Email:            "carlos@example.cl",
		Phone:            "+56912345678",
		Address:          "Av. Alemania 1234",
		Region:           "Araucanía",
		Commune:          "Temuco",
		WasteDescription: "Tambores con solvente",
		Urgency:          string(domain.UrgencyHigh),
	}

	request, err := suite.service.CreateRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.UrgencyHigh, request.Urgency)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestPromoteRequest_ExistingUser() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	request := &domain.QuoteRequest{
		RequestID:     requestID,
		Kind:          domain.QuoteForUser,
		RequesterName: "Carlos Soto",
		Email:         "carlos@example.cl",
		Status:        domain.RequestPending,
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: request.Email, Role: domain.RoleUser}

	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, request.Email).Return(existing, nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.QuoteRequest) bool {
		return r.Status == domain.RequestInReview && r.ReviewedAt != nil
	})).Return(nil).Once()

	result, err := suite.service.PromoteRequest(ctx, requestID, adminID)

	suite.Require().NoError(err)
	suite.False(result.UserCreated)
	suite.Empty(result.TempPassword)
	suite.Equal(existing.UserID, result.User.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestPromoteRequest_AlreadyQuotedBlocked() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	request := &domain.QuoteRequest{
		RequestID:     requestID,
		Kind:          domain.QuoteForUser,
		RequesterName: "Carlos Soto",
		Email:         "carlos@example.cl",
		Status:        domain.RequestQuoted,
	}
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()

	result, err := suite.service.PromoteRequest(ctx, requestID, adminID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "UpdateRequest", mock.Anything, mock.Anything)
}

func (suite *QuoteRequestServiceTestSuite) TestPromoteRequest_CreatesUserWithTempPassword() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	request := &domain.QuoteRequest{
		RequestID:     requestID,
		Kind:          domain.QuoteForUser,
		RequesterName: "Carlos Soto",
		Email:         "carlos@example.cl",
		Status:        domain.RequestPending,
	}

	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, request.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == request.Email && u.Role == domain.RoleUser && u.PasswordHash != ""
	})).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.AnythingOfType("domain.QuoteRequest")).Return(nil).Once()

	result, err := suite.service.PromoteRequest(ctx, requestID, adminID)

	suite.Require().NoError(err)
	suite.True(result.UserCreated)
	suite.Len(result.TempPassword, 12)
	suite.NoError(utils.ValidatePasswordStrength(result.TempPassword))
	suite.True(utils.CheckPasswordHash(result.TempPassword, result.User.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestPromoteRequest_CreatesApprovedCompany() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	request := &domain.QuoteRequest{
		RequestID:     requestID,
		Kind:          domain.QuoteForCompany,
		RequesterName: "Carlos Soto",
		Email:         "carlos@austral.cl",
		CompanyName:   strPtr("Química Austral"),
		CompanyTaxID:  strPtr("76.123.456-7"),
		Status:        domain.RequestInReview,
	}
	user := &domain.User{UserID: uuid.NewString(), Email: request.Email}

	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, request.Email).Return(user, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByTaxID", ctx, "76.123.456-7").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.TaxID == "76.123.456-7" && c.Name == "Química Austral" && c.Approval == domain.CompanyApproved
	})).Return(nil).Once()
	suite.mockCompanyRepo.On("AssignUser", ctx, mock.MatchedBy(func(l domain.CompanyUser) bool {
		return l.UserID == user.UserID && l.Active
	})).Return(nil).Once()

	result, err := suite.service.PromoteRequest(ctx, requestID, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Company)
	suite.Equal(domain.CompanyApproved, result.Company.Approval)
	suite.Empty(result.Notes)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestPromoteRequest_LinkFailureBecomesNote() {
	ctx := context.Background()
	requestID := uuid.NewString()

	request := &domain.QuoteRequest{
		RequestID:    requestID,
		Kind:         domain.QuoteForCompany,
		Email:        "carlos@austral.cl",
		CompanyName:  strPtr("Química Austral"),
		CompanyTaxID: strPtr("76.123.456-7"),
		Status:       domain.RequestInReview,
	}
	user := &domain.User{UserID: uuid.NewString(), Email: request.Email}
	company := &domain.Company{CompanyID: uuid.NewString(), TaxID: "76.123.456-7", Approval: domain.CompanyApproved}

	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, request.Email).Return(user, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByTaxID", ctx, "76.123.456-7").Return(company, nil).Once()
	suite.mockCompanyRepo.On("AssignUser", ctx, mock.AnythingOfType("domain.CompanyUser")).Return(assert.AnError).Once()

	result, err := suite.service.PromoteRequest(ctx, requestID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Contains(result.Notes, "user could not be linked to the company")
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *QuoteRequestServiceTestSuite) TestUpdateRequestStatus_SetsReviewedAt() {
	ctx := context.Background()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	request := &domain.QuoteRequest{RequestID: requestID, Status: domain.RequestPending}
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.QuoteRequest) bool {
		return r.Status == domain.RequestInReview && r.ReviewedAt != nil && r.AdminID != nil && *r.AdminID == adminID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRequestStatus(ctx, requestID, dto.UpdateRequestStatusRequest{Status: string(domain.RequestInReview)}, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RequestInReview, updated.Status)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *QuoteRequestServiceTestSuite) TestDeleteRequest_QuotedBlocked() {
	ctx := context.Background()
	requestID := uuid.NewString()

	request := &domain.QuoteRequest{RequestID: requestID, Status: domain.RequestQuoted}
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()

	err := suite.service.DeleteRequest(ctx, requestID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "DeleteRequest", mock.Anything, mock.Anything)
}

func (suite *QuoteRequestServiceTestSuite) TestDeleteRequest_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()

	request := &domain.QuoteRequest{RequestID: requestID, Status: domain.RequestRejected}
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()
	suite.mockRequestRepo.On("DeleteRequest", ctx, requestID).Return(nil).Once()

	err := suite.service.DeleteRequest(ctx, requestID)

	suite.Require().NoError(err)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func TestQuoteRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRequestServiceTestSuite))
}
