package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock VisitRepository ---
type MockVisitRepository struct {
	mock.Mock
}

var _ portsrepo.VisitRepositoryFacade = (*MockVisitRepository)(nil)

func (m *MockVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindVisitBySlot(ctx context.Context, date time.Time, timeOfDay string) (*domain.Visit, error) {
	args := m.Called(ctx, date, timeOfDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error) {
	args := m.Called(ctx, status, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) UpdateVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	args := m.Called(ctx, visitID)
	return args.Error(0)
}

// --- Test Suite ---
type VisitServiceTestSuite struct {
	suite.Suite
	mockVisitRepo *MockVisitRepository
	mockUserRepo  *MockUserRepository
	mockSender    *MockEmailSender
	service       portssvc.VisitSvcFacade
}

func (suite *VisitServiceTestSuite) SetupTest() {
	suite.mockVisitRepo = new(MockVisitRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSender = new(MockEmailSender)
	suite.service = services.NewVisitService(suite.mockVisitRepo, suite.mockUserRepo, suite.mockSender)
}

// --- Test Cases ---

func (suite *VisitServiceTestSuite) TestScheduleVisit_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	userID := uuid.NewString()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "10:00").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVisitRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.UserID == userID && v.Status == domain.VisitPending && v.VisitTime == "10:00" && v.VisitDate.Equal(visitDate)
	})).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.MatchedBy(func(msg portssvc.Email) bool {
		return len(msg.To) == 1 && msg.To[0] == "ana@example.cl"
	})).Return(nil).Once()

	req := dto.CreateVisitRequest{
		UserID:    userID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    string(domain.VisitPickup),
	}

	visit, existing, err := suite.service.ScheduleVisit(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(visit)
	suite.False(existing)
	suite.Equal(domain.VisitPending, visit.Status)
	suite.Equal(adminID, visit.AdminID)
	suite.mockVisitRepo.AssertExpectations(suite.T())
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestScheduleVisit_EmailFailureDoesNotFailBooking() {
	ctx := context.Background()
	userID := uuid.NewString()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "10:00").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVisitRepo.On("SaveVisit", ctx, mock.AnythingOfType("domain.Visit")).Return(nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(assert.AnError).Once()

	req := dto.CreateVisitRequest{
		UserID:    userID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    string(domain.VisitPickup),
	}

	visit, existing, err := suite.service.ScheduleVisit(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(visit)
	suite.False(existing)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestScheduleVisit_SlotTakenReturnsOccupying() {
	ctx := context.Background()
	userID := uuid.NewString()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	occupying := &domain.Visit{VisitID: uuid.NewString(), VisitDate: visitDate, VisitTime: "10:00"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "10:00").Return(occupying, nil).Once()

	req := dto.CreateVisitRequest{
		UserID:    userID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    string(domain.VisitEvaluation),
	}

	visit, existing, err := suite.service.ScheduleVisit(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(existing)
	suite.Equal(occupying.VisitID, visit.VisitID)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "SaveVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestScheduleVisit_LostRaceSurfacesWinner() {
	ctx := context.Background()
	userID := uuid.NewString()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	winner := &domain.Visit{VisitID: uuid.NewString(), VisitDate: visitDate, VisitTime: "10:00"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "10:00").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVisitRepo.On("SaveVisit", ctx, mock.AnythingOfType("domain.Visit")).Return(apperrors.ErrDuplicate).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "10:00").Return(winner, nil).Once()

	req := dto.CreateVisitRequest{
		UserID:    userID,
		VisitDate: "2026-09-15",
		VisitTime: "10:00",
		Reason:    string(domain.VisitPickup),
	}

	visit, existing, err := suite.service.ScheduleVisit(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(existing)
	suite.Equal(winner.VisitID, visit.VisitID)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestAcceptVisit_Success() {
	ctx := context.Background()
	visitID := uuid.NewString()
	userID := uuid.NewString()

	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitPending}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("UpdateVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.Status == domain.VisitAccepted && v.LastUpdatedBy == userID
	})).Return(nil).Once()

	updated, err := suite.service.AcceptVisit(ctx, visitID, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.VisitAccepted, updated.Status)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestAcceptVisit_NotOwner() {
	ctx := context.Background()
	visitID := uuid.NewString()

	visit := &domain.Visit{VisitID: visitID, UserID: uuid.NewString(), Status: domain.VisitPending}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()

	updated, err := suite.service.AcceptVisit(ctx, visitID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "UpdateVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestRejectVisit_AlreadyDecided() {
	ctx := context.Background()
	visitID := uuid.NewString()
	userID := uuid.NewString()

	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitAccepted}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()

	updated, err := suite.service.RejectVisit(ctx, visitID, userID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VisitServiceTestSuite) TestReprogramVisit_FromAccepted() {
	ctx := context.Background()
	visitID := uuid.NewString()
	userID := uuid.NewString()
	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitAccepted}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, newDate, "15:30").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVisitRepo.On("UpdateVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.Status == domain.VisitReprogram && v.VisitDate.Equal(newDate) && v.VisitTime == "15:30"
	})).Return(nil).Once()

	updated, err := suite.service.ReprogramVisit(ctx, visitID, userID, dto.ReprogramVisitRequest{
		VisitDate: "2026-09-20",
		VisitTime: "15:30",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.VisitReprogram, updated.Status)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestReprogramVisit_NewSlotTaken() {
	ctx := context.Background()
	visitID := uuid.NewString()
	userID := uuid.NewString()
	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitPending}
	other := &domain.Visit{VisitID: uuid.NewString(), VisitDate: newDate, VisitTime: "15:30"}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, newDate, "15:30").Return(other, nil).Once()

	updated, err := suite.service.ReprogramVisit(ctx, visitID, userID, dto.ReprogramVisitRequest{
		VisitDate: "2026-09-20",
		VisitTime: "15:30",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "UpdateVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestReprogramVisit_RejectedVisitConflicts() {
	ctx := context.Background()
	visitID := uuid.NewString()
	userID := uuid.NewString()

	visit := &domain.Visit{VisitID: visitID, UserID: userID, Status: domain.VisitRejected}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()

	updated, err := suite.service.ReprogramVisit(ctx, visitID, userID, dto.ReprogramVisitRequest{
		VisitDate: "2026-09-20",
		VisitTime: "15:30",
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *VisitServiceTestSuite) TestUpdateVisit_OwnSlotDoesNotCollide() {
	ctx := context.Background()
	visitID := uuid.NewString()
	adminID := uuid.NewString()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	visit := &domain.Visit{VisitID: visitID, UserID: uuid.NewString(), VisitDate: visitDate, VisitTime: "10:00", Status: domain.VisitPending}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	// The slot lookup finds the visit being updated; that is not a
	// collision.
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, visitDate, "11:00").Return(visit, nil).Once()
	suite.mockVisitRepo.On("UpdateVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.VisitID == visitID && v.VisitTime == "11:00" && v.LastUpdatedBy == adminID
	})).Return(nil).Once()

	newTime := "11:00"
	updated, err := suite.service.UpdateVisit(ctx, visitID, dto.UpdateVisitRequest{VisitTime: &newTime}, adminID)

	suite.Require().NoError(err)
	suite.Equal("11:00", updated.VisitTime)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestUpdateVisit_TakenSlotConflicts() {
	ctx := context.Background()
	visitID := uuid.NewString()
	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	visit := &domain.Visit{VisitID: visitID, UserID: uuid.NewString(), VisitDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), VisitTime: "10:00", Status: domain.VisitPending}
	other := &domain.Visit{VisitID: uuid.NewString(), VisitDate: newDate, VisitTime: "10:00"}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("FindVisitBySlot", ctx, newDate, "10:00").Return(other, nil).Once()

	date := "2026-09-20"
	updated, err := suite.service.UpdateVisit(ctx, visitID, dto.UpdateVisitRequest{VisitDate: &date}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "UpdateVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestUpdateVisit_FieldsOnlySkipsSlotCheck() {
	ctx := context.Background()
	visitID := uuid.NewString()
	adminID := uuid.NewString()

	visit := &domain.Visit{VisitID: visitID, UserID: uuid.NewString(), VisitDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), VisitTime: "10:00", Status: domain.VisitPending}
	suite.mockVisitRepo.On("FindVisitByID", ctx, visitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("UpdateVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.Observations == "Traer EPP" && v.Reason == domain.VisitEvaluation
	})).Return(nil).Once()

	reason := string(domain.VisitEvaluation)
	obs := "Traer EPP"
	updated, err := suite.service.UpdateVisit(ctx, visitID, dto.UpdateVisitRequest{Reason: &reason, Observations: &obs}, adminID)

	suite.Require().NoError(err)
	suite.Equal("Traer EPP", updated.Observations)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "FindVisitBySlot", mock.Anything, mock.Anything, mock.Anything)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitServiceTestSuite))
}
