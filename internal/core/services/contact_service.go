package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrenany/api-felmart/internal/apperrors"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
)

type ContactService struct {
	sender     portssvc.EmailSender
	recipients []string
}

var _ portssvc.ContactSvcFacade = (*ContactService)(nil)

func NewContactService(sender portssvc.EmailSender, recipients []string) *ContactService {
	return &ContactService{sender: sender, recipients: recipients}
}

// SubmitContact forwards a contact form message to the configured recipients.
func (s *ContactService) SubmitContact(ctx context.Context, name, email, phone, subject, message string) error {
	if len(s.recipients) == 0 {
		return apperrors.NewAppError(500, "no contact recipients configured", nil)
	}

	if err := s.sender.Send(ctx, portssvc.Email{
		To:       s.recipients,
		Subject:  fmt.Sprintf("Contacto web: %s", subject),
		HTMLBody: mailer.ContactEmailBody(name, email, phone, subject, message),
	}); err != nil {
		return apperrors.NewAppError(http.StatusBadGateway, "contact message could not be delivered", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Contact message forwarded", "from", email, "subject", subject)
	return nil
}
