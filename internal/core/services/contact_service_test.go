package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/andrenany/api-felmart/internal/apperrors"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/core/services"
)

type ContactServiceTestSuite struct {
	suite.Suite
	mockSender *MockEmailSender
	service    portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockSender = new(MockEmailSender)
	suite.service = services.NewContactService(suite.mockSender, []string{"contacto@felmartresiduos.cl"})
}

func (suite *ContactServiceTestSuite) TestSubmitContact_Success() {
	ctx := context.Background()

	suite.mockSender.On("Send", ctx, mock.MatchedBy(func(msg portssvc.Email) bool {
		return len(msg.To) == 1 && msg.To[0] == "contacto@felmartresiduos.cl"
	})).Return(nil).Once()

	err := suite.service.SubmitContact(ctx, "Carlos Soto", "carlos@example.cl", "+56912345678", "Consulta", "Hola")

	suite.Require().NoError(err)
	suite.mockSender.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestSubmitContact_MailFailureIsBadGateway() {
	ctx := context.Background()

	suite.mockSender.On("Send", ctx, mock.AnythingOfType("services.Email")).Return(assert.AnError).Once()

	err := suite.service.SubmitContact(ctx, "Carlos Soto", "carlos@example.cl", "+56912345678", "Consulta", "Hola")

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusBadGateway, appErr.Code)
}

func (suite *ContactServiceTestSuite) TestSubmitContact_NoRecipientsConfigured() {
	ctx := context.Background()
	svc := services.NewContactService(suite.mockSender, nil)

	err := svc.SubmitContact(ctx, "Carlos Soto", "carlos@example.cl", "", "Consulta", "Hola")

	suite.Require().Error(err)
	suite.mockSender.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
