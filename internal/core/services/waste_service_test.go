package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/core/services"
	"github.com/andrenany/api-felmart/internal/dto"
)

type WasteServiceTestSuite struct {
	suite.Suite
	mockWasteRepo *MockWasteRepository
	service       portssvc.WasteSvcFacade
}

func (suite *WasteServiceTestSuite) SetupTest() {
	suite.mockWasteRepo = new(MockWasteRepository)
	suite.service = services.NewWasteService(suite.mockWasteRepo,
		[]string{"litro", "kg", "tambor"},
		[]string{domain.CurrencyCLP, domain.CurrencyUF},
	)
}

func (suite *WasteServiceTestSuite) TestCreateWasteItem_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockWasteRepo.On("SaveWasteItem", ctx, mock.MatchedBy(func(i domain.WasteItem) bool {
		return i.Description == "Aceite usado" && i.Unit == "litro" && i.Currency == domain.CurrencyUF
	})).Return(nil).Once()

	item, err := suite.service.CreateWasteItem(ctx, dto.CreateWasteItemRequest{
		Description: "Aceite usado",
		UnitPrice:   decimal.NewFromFloat(0.5),
		Unit:        "litro",
		Currency:    domain.CurrencyUF,
	}, creatorID)

	suite.Require().NoError(err)
	suite.Equal(creatorID, item.CreatedBy)
	suite.mockWasteRepo.AssertExpectations(suite.T())
}

func (suite *WasteServiceTestSuite) TestCreateWasteItem_UnknownUnit() {
	ctx := context.Background()

	item, err := suite.service.CreateWasteItem(ctx, dto.CreateWasteItemRequest{
		Description: "Aceite usado",
		UnitPrice:   decimal.NewFromInt(1000),
		Unit:        "galón",
		Currency:    domain.CurrencyCLP,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWasteRepo.AssertNotCalled(suite.T(), "SaveWasteItem", mock.Anything, mock.Anything)
}

func (suite *WasteServiceTestSuite) TestCreateWasteItem_NegativePrice() {
	ctx := context.Background()

	item, err := suite.service.CreateWasteItem(ctx, dto.CreateWasteItemRequest{
		Description: "Aceite usado",
		UnitPrice:   decimal.NewFromInt(-10),
		Unit:        "kg",
		Currency:    domain.CurrencyCLP,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WasteServiceTestSuite) TestUpdateWasteItem_CurrencyValidatedAfterPatch() {
	ctx := context.Background()
	wasteID := uuid.NewString()
	badCurrency := "USD"

	existing := &domain.WasteItem{WasteID: wasteID, Description: "Aceite usado", Unit: "litro", Currency: domain.CurrencyCLP}
	suite.mockWasteRepo.On("FindWasteItemByID", ctx, wasteID).Return(existing, nil).Once()

	item, err := suite.service.UpdateWasteItem(ctx, wasteID, dto.UpdateWasteItemRequest{Currency: &badCurrency}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWasteRepo.AssertNotCalled(suite.T(), "UpdateWasteItem", mock.Anything, mock.Anything)
}

func (suite *WasteServiceTestSuite) TestListWasteItems_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockWasteRepo.On("ListWasteItems", ctx).Return([]domain.WasteItem(nil), nil).Once()

	items, err := suite.service.ListWasteItems(ctx)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func TestWasteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WasteServiceTestSuite))
}
