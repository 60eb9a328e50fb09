package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
)

// SMTPSender delivers transactional mail through the configured SMTP server.
type SMTPSender struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	defaultBCC string
}

var _ portssvc.EmailSender = (*SMTPSender)(nil)

// NewSMTPSender constructs a sender. defaultBCC is applied to every message
// that does not carry its own BCC list.
func NewSMTPSender(host string, port int, username, password, from, defaultBCC string) *SMTPSender {
	return &SMTPSender{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		defaultBCC: defaultBCC,
	}
}

// Send delivers one message.
func (s *SMTPSender) Send(ctx context.Context, msg portssvc.Email) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address %s: %w", s.from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("invalid recipient list: %w", err)
	}

	bcc := msg.BCC
	if len(bcc) == 0 && s.defaultBCC != "" {
		bcc = []string{s.defaultBCC}
	}
	if len(bcc) > 0 {
		if err := m.Bcc(bcc...); err != nil {
			return fmt.Errorf("invalid bcc list: %w", err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	for _, att := range msg.Attachments {
		m.AttachReader(att.FileName, bytes.NewReader(att.Content))
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	if s.port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail to %v: %w", msg.To, err)
	}
	return nil
}
