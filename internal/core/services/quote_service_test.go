package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

var _ portsrepo.QuoteRepositoryFacade = (*MockQuoteRepository)(nil)

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindQuoteByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotes(ctx context.Context, status domain.QuoteStatus, limit, offset int) ([]domain.Quote, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListQuotesByUser(ctx context.Context, userID string) ([]domain.Quote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListStaleQuotes(ctx context.Context, cutoff time.Time) ([]domain.Quote, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) CreateQuote(ctx context.Context, quote *domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedBy string) error {
	args := m.Called(ctx, quoteID, status, updatedBy)
	return args.Error(0)
}

func (m *MockQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	args := m.Called(ctx, quoteID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, approval domain.CompanyApproval, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, approval, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyUser), args.Error(1)
}

func (m *MockCompanyRepository) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) AssignUser(ctx context.Context, link domain.CompanyUser) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockCompanyRepository) RemoveUser(ctx context.Context, companyID, userID string) error {
	args := m.Called(ctx, companyID, userID)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// --- Mock WasteRepository ---
type MockWasteRepository struct {
	mock.Mock
}

var _ portsrepo.WasteRepositoryFacade = (*MockWasteRepository)(nil)

func (m *MockWasteRepository) FindWasteItemByID(ctx context.Context, wasteID string) (*domain.WasteItem, error) {
	args := m.Called(ctx, wasteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WasteItem), args.Error(1)
}

func (m *MockWasteRepository) ListWasteItems(ctx context.Context) ([]domain.WasteItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WasteItem), args.Error(1)
}

func (m *MockWasteRepository) SaveWasteItem(ctx context.Context, item domain.WasteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWasteRepository) UpdateWasteItem(ctx context.Context, item domain.WasteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWasteRepository) DeleteWasteItem(ctx context.Context, wasteID string) error {
	args := m.Called(ctx, wasteID)
	return args.Error(0)
}

// --- Mock QuoteRequestRepository ---
type MockQuoteRequestRepository struct {
	mock.Mock
}

var _ portsrepo.QuoteRequestRepositoryFacade = (*MockQuoteRequestRepository)(nil)

func (m *MockQuoteRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestRepository) ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error) {
	args := m.Called(ctx, status, urgency, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestRepository) FindRequestByNumber(ctx context.Context, number string) (*domain.QuoteRequest, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestRepository) CountPendingRequests(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuoteRequestRepository) CountRequests(ctx context.Context) (*domain.RequestStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestStats), args.Error(1)
}

func (m *MockQuoteRequestRepository) CreateRequest(ctx context.Context, request *domain.QuoteRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockQuoteRequestRepository) UpdateRequest(ctx context.Context, request domain.QuoteRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockQuoteRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Stub UF service ---
type stubUFService struct {
	value decimal.Decimal
}

var _ portssvc.UFSvcFacade = (*stubUFService)(nil)

func (s *stubUFService) CurrentUF(ctx context.Context) *domain.UFValue {
	return &domain.UFValue{Value: s.value, Date: time.Now().UTC(), FetchedAt: time.Now().UTC()}
}

// --- Mock QuoteRenderer ---
type MockQuoteRenderer struct {
	mock.Mock
}

var _ portssvc.QuoteRenderer = (*MockQuoteRenderer)(nil)

func (m *MockQuoteRenderer) RenderQuotePDF(ctx context.Context, quote *domain.Quote) ([]byte, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock EmailSender ---
type MockEmailSender struct {
	mock.Mock
}

var _ portssvc.EmailSender = (*MockEmailSender)(nil)

func (m *MockEmailSender) Send(ctx context.Context, msg portssvc.Email) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	mockQuoteRepo   *MockQuoteRepository
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	mockWasteRepo   *MockWasteRepository
	mockRequestRepo *MockQuoteRequestRepository
	mockRenderer    *MockQuoteRenderer
	mockSender      *MockEmailSender
	service         portssvc.QuoteSvcFacade
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockQuoteRepo = new(MockQuoteRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockWasteRepo = new(MockWasteRepository)
	suite.mockRequestRepo = new(MockQuoteRequestRepository)
	suite.mockRenderer = new(MockQuoteRenderer)
	suite.mockSender = new(MockEmailSender)
	suite.service = services.NewQuoteService(
		suite.mockQuoteRepo,
		suite.mockUserRepo,
		suite.mockCompanyRepo,
		suite.mockWasteRepo,
		suite.mockRequestRepo,
		&stubUFService{value: decimal.NewFromInt(38000)},
		suite.mockRenderer,
		suite.mockSender,
		[]string{domain.CurrencyCLP, domain.CurrencyUF},
	)
}

func strPtr(s string) *string { return &s }

// --- Test Cases ---

func (suite *QuoteServiceTestSuite) TestCreateQuote_UFLineConvertedToCLP() {
	ctx := context.Background()
	adminID := uuid.NewString()
	userID := uuid.NewString()
	wasteID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl", Role: domain.RoleUser}
	item := &domain.WasteItem{
		WasteID:     wasteID,
		Description: "Aceite usado",
		UnitPrice:   decimal.NewFromInt(1),
		Unit:        "litro",
		Currency:    domain.CurrencyUF,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockWasteRepo.On("FindWasteItemByID", ctx, wasteID).Return(item, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
		if len(q.Lines) != 1 {
			return false
		}
		line := q.Lines[0]
		// 1 UF at 38000 CLP/UF, quantity 2.
		return line.UnitPriceCLP.Equal(decimal.NewFromInt(38000)) &&
			line.SubtotalCLP.Equal(decimal.NewFromInt(76000)) &&
			q.TotalCLP.Equal(decimal.NewFromInt(76000)) &&
			q.Status == domain.QuotePending
	})).Return(nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:   string(domain.QuoteForUser),
		UserID: &userID,
		Lines: []dto.QuoteLineRequest{
			{WasteID: &wasteID, Quantity: decimal.NewFromInt(2)},
		},
	}

	quote, emailSent, err := suite.service.CreateQuote(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.False(emailSent)
	suite.Equal(userID, *quote.UserID)
	suite.Equal("Aceite usado", quote.Lines[0].Description)
	suite.Equal("litro", quote.Lines[0].Unit)
	suite.Equal(domain.CurrencyUF, quote.Lines[0].Currency)
	suite.True(quote.UFValue.Equal(decimal.NewFromInt(38000)))

	suite.mockQuoteRepo.AssertExpectations(suite.T())
	suite.mockWasteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_TotalOverrideWins() {
	ctx := context.Background()
	adminID := uuid.NewString()
	userID := uuid.NewString()
	override := decimal.NewFromInt(50000)

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
		return q.TotalCLP.Equal(override)
	})).Return(nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:   string(domain.QuoteForUser),
		UserID: &userID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro especial", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(99999), Currency: domain.CurrencyCLP},
		},
		TotalOverride: &override,
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.True(quote.TotalCLP.Equal(override))
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_CompanyRecipientFallsBackToFirstAssignment() {
	ctx := context.Background()
	adminID := uuid.NewString()
	companyID := uuid.NewString()
	firstUserID := uuid.NewString()
	strangerID := uuid.NewString()

	company := &domain.Company{CompanyID: companyID, TaxID: "76.123.456-7", Name: "Química Austral", Approval: domain.CompanyApproved}
	links := []domain.CompanyUser{
		{CompanyID: companyID, UserID: firstUserID, Active: true},
	}
	firstUser := &domain.User{UserID: firstUserID, Name: "Titular", Email: "titular@austral.cl"}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(company, nil).Once()
	suite.mockCompanyRepo.On("ListCompanyUsers", ctx, companyID).Return(links, nil).Once()
	// The requested user is not assigned to the company, so the first
	// assignment wins.
	suite.mockUserRepo.On("FindUserByID", ctx, firstUserID).Return(firstUser, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:      string(domain.QuoteForCompany),
		CompanyID: &companyID,
		UserID:    &strangerID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro mensual", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(10000), Currency: domain.CurrencyCLP},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Equal(firstUserID, *quote.UserID)
	suite.Equal(companyID, *quote.CompanyID)
	suite.Equal("76.123.456-7", *quote.CompanyTaxID)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_CompanyWithoutUsersFails() {
	ctx := context.Background()
	companyID := uuid.NewString()

	company := &domain.Company{CompanyID: companyID, TaxID: "76.123.456-7", Name: "Química Austral"}
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, companyID).Return(company, nil).Once()
	suite.mockCompanyRepo.On("ListCompanyUsers", ctx, companyID).Return([]domain.CompanyUser{}, nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:      string(domain.QuoteForCompany),
		CompanyID: &companyID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1000), Currency: domain.CurrencyCLP},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_MissingUserIDFails() {
	ctx := context.Background()

	req := dto.CreateQuoteRequest{
		Kind: string(domain.QuoteForUser),
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1000)},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_EmailFailureDoesNotFailCreate() {
	ctx := context.Background()
	userID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil).Once()
	suite.mockRenderer.On("RenderQuotePDF", ctx, mock.AnythingOfType("*domain.Quote")).Return([]byte("%PDF"), nil).Once()
	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(assert.AnError).Once()

	req := dto.CreateQuoteRequest{
		Kind:      string(domain.QuoteForUser),
		UserID:    &userID,
		SendEmail: true,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1000), Currency: domain.CurrencyCLP},
		},
	}

	quote, emailSent, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(quote)
	suite.False(emailSent)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_CallerUFValueWinsOverDailyRate() {
	ctx := context.Background()
	userID := uuid.NewString()
	callerUF := decimal.NewFromInt(39500)

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.MatchedBy(func(q *domain.Quote) bool {
		// 2 UF at the caller-supplied 39500, not the daily 38000.
		return q.UFValue.Equal(callerUF) &&
			q.Lines[0].UnitPriceCLP.Equal(decimal.NewFromInt(79000))
	})).Return(nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:    string(domain.QuoteForUser),
		UserID:  &userID,
		UFValue: &callerUF,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro especial", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(2), Currency: domain.CurrencyUF},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(quote.UFValue.Equal(callerUF))
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_UnknownCurrencyRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:   string(domain.QuoteForUser),
		UserID: &userID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100), Currency: "USD"},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_NonPositivePriceRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:   string(domain.QuoteForUser),
		UserID: &userID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Currency: domain.CurrencyCLP},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_RequestAlreadyQuotedFails() {
	ctx := context.Background()
	userID := uuid.NewString()
	requestID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	request := &domain.QuoteRequest{RequestID: requestID, Status: domain.RequestQuoted, Email: user.Email}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:      string(domain.QuoteForUser),
		UserID:    &userID,
		RequestID: &requestID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1000), Currency: domain.CurrencyCLP},
		},
	}

	quote, _, err := suite.service.CreateQuote(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "CreateQuote", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestUpdateQuoteStatus_Success() {
	ctx := context.Background()
	quoteID := uuid.NewString()
	actorID := uuid.NewString()

	quote := &domain.Quote{QuoteID: quoteID, Status: domain.QuotePending}
	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()
	suite.mockQuoteRepo.On("UpdateQuoteStatus", ctx, quoteID, domain.QuoteAccepted, actorID).Return(nil).Once()

	updated, err := suite.service.UpdateQuoteStatus(ctx, quoteID, domain.QuoteAccepted, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteAccepted, updated.Status)
	suite.mockQuoteRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestUpdateQuoteStatus_AlreadyDecided() {
	ctx := context.Background()
	quoteID := uuid.NewString()

	quote := &domain.Quote{QuoteID: quoteID, Status: domain.QuoteAccepted}
	suite.mockQuoteRepo.On("FindQuoteByID", ctx, quoteID).Return(quote, nil).Once()

	updated, err := suite.service.UpdateQuoteStatus(ctx, quoteID, domain.QuoteRejected, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockQuoteRepo.AssertNotCalled(suite.T(), "UpdateQuoteStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCreateQuote_LinksRequest() {
	ctx := context.Background()
	userID := uuid.NewString()
	requestID := uuid.NewString()
	adminID := uuid.NewString()

	user := &domain.User{UserID: userID, Name: "Ana Pérez", Email: "ana@example.cl"}
	request := &domain.QuoteRequest{RequestID: requestID, Status: domain.RequestInReview, Email: user.Email}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockQuoteRepo.On("CreateQuote", ctx, mock.AnythingOfType("*domain.Quote")).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).Return(request, nil).Twice()
	suite.mockRequestRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.QuoteRequest) bool {
		return r.Status == domain.RequestQuoted && r.QuoteID != nil && r.QuotedAt != nil
	})).Return(nil).Once()

	req := dto.CreateQuoteRequest{
		Kind:      string(domain.QuoteForUser),
		UserID:    &userID,
		RequestID: &requestID,
		Lines: []dto.QuoteLineRequest{
			{Description: "Retiro", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(1000), Currency: domain.CurrencyCLP},
		},
	}

	_, _, err := suite.service.CreateQuote(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
