package services

import (
	"context"
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// EmailAttachment is a file attached to an outgoing email.
type EmailAttachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Email is one outgoing message. BCC defaults to the configured archive
// address when empty.
type Email struct {
	To          []string
	BCC         []string
	Subject     string
	HTMLBody    string
	Attachments []EmailAttachment
}

// EmailSender delivers transactional mail.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}

// InboxReader lists messages from the support mailbox.
type InboxReader interface {
	// ListInbox returns the newest messages, up to limit, plus the total
	// message count in the mailbox. With unreadOnly only unseen messages
	// are returned; a non-zero since keeps messages dated on or after it.
	ListInbox(ctx context.Context, limit int, unreadOnly bool, since time.Time) ([]domain.InboxMessage, uint32, error)
}

// ContactSvcFacade handles public contact form submissions.
type ContactSvcFacade interface {
	// SubmitContact forwards a contact form message to the configured
	// recipients.
	SubmitContact(ctx context.Context, name, email, phone, subject, message string) error
}

// InboxSvcFacade exposes the support mailbox to admins.
type InboxSvcFacade interface {
	// ListInbox returns recent inbox messages and the mailbox total,
	// optionally restricted to unread messages or to a date range.
	ListInbox(ctx context.Context, limit int, unreadOnly bool, since time.Time) ([]domain.InboxMessage, uint32, error)
}
