package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/handlers"
	"github.com/andrenany/api-felmart/internal/platform/config"
	"github.com/andrenany/api-felmart/internal/utils"
)

// --- Mock VisitService ---
type MockVisitService struct {
	mock.Mock
}

var _ portssvc.VisitSvcFacade = (*MockVisitService)(nil)

func (m *MockVisitService) GetVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error) {
	args := m.Called(ctx, status, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitService) ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitService) ScheduleVisit(ctx context.Context, req dto.CreateVisitRequest, adminID string) (*domain.Visit, bool, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Visit), args.Bool(1), args.Error(2)
}

func (m *MockVisitService) AcceptVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) RejectVisit(ctx context.Context, visitID, userID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) ReprogramVisit(ctx context.Context, visitID, userID string, req dto.ReprogramVisitRequest) (*domain.Visit, error) {
	args := m.Called(ctx, visitID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) UpdateVisit(ctx context.Context, visitID string, req dto.UpdateVisitRequest, adminID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) DeleteVisit(ctx context.Context, visitID string) error {
	args := m.Called(ctx, visitID)
	return args.Error(0)
}

// --- Mock QuoteRequestService ---
type MockQuoteRequestService struct {
	mock.Mock
}

var _ portssvc.QuoteRequestSvcFacade = (*MockQuoteRequestService)(nil)

func (m *MockQuoteRequestService) GetRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestService) ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error) {
	args := m.Called(ctx, status, urgency, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestService) TrackRequest(ctx context.Context, number string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestService) RequestStats(ctx context.Context) (*domain.RequestStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestStats), args.Error(1)
}

func (m *MockQuoteRequestService) CreateRequest(ctx context.Context, req dto.CreateQuoteRequestRequest) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestService) UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, adminID string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, requestID, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestService) PromoteRequest(ctx context.Context, requestID, adminID string) (*domain.PromotionResult, error) {
	args := m.Called(ctx, requestID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionResult), args.Error(1)
}

func (m *MockQuoteRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Test Suite ---
type VisitHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockVisitService   *MockVisitService
	mockRequestService *MockQuoteRequestService
	jwtSecret          string
}

func (suite *VisitHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "felmart-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *VisitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockVisitService = new(MockVisitService)
	suite.mockRequestService = new(MockQuoteRequestService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger registration
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Visit:        suite.mockVisitService,
		QuoteRequest: suite.mockRequestService,
	})
}

func (suite *VisitHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VisitHandlerTestSuite) TestScheduleVisit_Created() {
	adminID := uuid.NewString()
	userID := uuid.NewString()
	visit := &domain.Visit{
		VisitID:   uuid.NewString(),
		UserID:    userID,
		VisitDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Reason:    domain.VisitPickup,
		Status:    domain.VisitPending,
	}

	suite.mockVisitService.On("ScheduleVisit",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateVisitRequest) bool {
			return r.UserID == userID && r.VisitDate == "2026-09-15" && r.VisitTime == "10:00"
		}),
		adminID,
	).Return(visit, false, nil).Once()

	body, _ := json.Marshal(dto.CreateVisitRequest{
		UserID:    userID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    "pickup",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, domain.RoleAdmin))

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateVisitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Existing)
	suite.Equal(visit.VisitID, resp.Visit.VisitID)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestScheduleVisit_SlotTakenReturnsOK() {
	adminID := uuid.NewString()
	occupying := &domain.Visit{
		VisitID:   uuid.NewString(),
		UserID:    uuid.NewString(),
		VisitDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    domain.VisitPending,
	}

	suite.mockVisitService.On("ScheduleVisit", mock.Anything, mock.AnythingOfType("dto.CreateVisitRequest"), adminID).
		Return(occupying, true, nil).Once()

	body, _ := json.Marshal(dto.CreateVisitRequest{
		UserID:    occupying.UserID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    "evaluation",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, domain.RoleAdmin))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CreateVisitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Existing)
	suite.Equal(occupying.VisitID, resp.Visit.VisitID)
}

func (suite *VisitHandlerTestSuite) TestScheduleVisit_NonAdminForbidden() {
	body, _ := json.Marshal(dto.CreateVisitRequest{
		UserID:    uuid.NewString(),
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    "pickup",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleUser))

	w := suite.serve(req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockVisitService.AssertNotCalled(suite.T(), "ScheduleVisit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisitHandlerTestSuite) TestAcceptVisit_MissingTokenUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/visits/%s/accept", uuid.NewString()), nil)

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *VisitHandlerTestSuite) TestAcceptVisit_Success() {
	userID := uuid.NewString()
	visitID := uuid.NewString()
	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitAccepted}

	suite.mockVisitService.On("AcceptVisit", mock.Anything, visitID, userID).Return(visit, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/visits/%s/accept", visitID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleUser))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VisitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.VisitAccepted), resp.Status)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestAcceptVisit_NotOwnerForbidden() {
	userID := uuid.NewString()
	visitID := uuid.NewString()

	suite.mockVisitService.On("AcceptVisit", mock.Anything, visitID, userID).Return(nil, apperrors.ErrForbidden).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/visits/%s/accept", visitID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleUser))

	w := suite.serve(req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *VisitHandlerTestSuite) TestCreateQuoteRequest_PublicNoToken() {
	request := &domain.QuoteRequest{
		RequestID:     uuid.NewString(),
		Number:        "SOL-000001",
		Kind:          domain.QuoteForUser,
		RequesterName: "Carlos Soto",
		Email:         "carlos@example.cl",
		Status:        domain.RequestPending,
		Urgency:       domain.UrgencyMedium,
	}
	suite.mockRequestService.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r dto.CreateQuoteRequestRequest) bool {
		return r.Email == "carlos@example.cl"
	})).Return(request, nil).Once()

	body, _ := json.Marshal(dto.CreateQuoteRequestRequest{
		Kind:             "user",
		RequesterName:    "Carlos Soto",
		Email:            "carlos@example.cl",
		Phone:            "+56912345678",
		Address:          "Av. Alemania 1234",
		Region:           "Araucanía",
		Commune:          "Temuco",
		WasteDescription: "Tambores con solvente",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/solicitudes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.QuoteRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SOL-000001", resp.Number)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestCreateQuoteRequest_MissingFieldsRejected() {
	body, _ := json.Marshal(map[string]string{"kind": "user"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/solicitudes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRequestService.AssertNotCalled(suite.T(), "CreateRequest", mock.Anything, mock.Anything)
}

func (suite *VisitHandlerTestSuite) TestTrackQuoteRequest_PublicProjection() {
	quoteNumber := "COT-000042"
	reviewed := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)
	request := &domain.QuoteRequest{
		RequestID:     uuid.NewString(),
		Number:        "SOL-000007",
		RequesterName: "Carlos Soto",
		Email:         "carlos@example.cl",
		Status:        domain.RequestQuoted,
		RequestedAt:   time.Date(2026, 8, 18, 9, 30, 0, 0, time.UTC),
		ReviewedAt:    &reviewed,
		QuoteNumber:   &quoteNumber,
	}
	suite.mockRequestService.On("TrackRequest", mock.Anything, "SOL-000007").Return(request, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/solicitudes/SOL-000007", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RequestTrackingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SOL-000007", resp.Number)
	suite.Equal("quoted", resp.Status)
	suite.Require().NotNil(resp.QuoteNumber)
	suite.Equal(quoteNumber, *resp.QuoteNumber)
	suite.NotContains(w.Body.String(), "carlos@example.cl")
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestTrackQuoteRequest_UnknownNumber() {
	suite.mockRequestService.On("TrackRequest", mock.Anything, "SOL-999999").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/solicitudes/SOL-999999", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestVisitHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VisitHandlerTestSuite))
}
