package services

import (
	"context"
	"net/http"
	"time"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
)

const defaultInboxLimit = 20

type InboxService struct {
	reader portssvc.InboxReader
}

var _ portssvc.InboxSvcFacade = (*InboxService)(nil)

func NewInboxService(reader portssvc.InboxReader) *InboxService {
	return &InboxService{reader: reader}
}

// ListInbox returns recent inbox messages and the mailbox total, optionally
// restricted to unread messages or to a date range.
func (s *InboxService) ListInbox(ctx context.Context, limit int, unreadOnly bool, since time.Time) ([]domain.InboxMessage, uint32, error) {
	if limit <= 0 {
		limit = defaultInboxLimit
	}
	msgs, total, err := s.reader.ListInbox(ctx, limit, unreadOnly, since)
	if err != nil {
		return nil, 0, apperrors.NewAppError(http.StatusBadGateway, "support mailbox is unreachable", err)
	}
	if msgs == nil {
		msgs = []domain.InboxMessage{}
	}
	return msgs, total, nil
}
