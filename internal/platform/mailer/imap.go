package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
)

// IMAPInbox lists messages from the support mailbox over IMAP.
type IMAPInbox struct {
	host     string
	port     int
	username string
	password string
}

var _ portssvc.InboxReader = (*IMAPInbox)(nil)

// NewIMAPInbox constructs an inbox reader.
func NewIMAPInbox(host string, port int, username, password string) *IMAPInbox {
	return &IMAPInbox{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// ListInbox returns the newest messages, up to limit, plus the total message
// count in the mailbox. unreadOnly and since are pushed down as an IMAP
// SEARCH. A fresh connection is dialed per call; the admin inbox view is low
// traffic.
func (i *IMAPInbox) ListInbox(ctx context.Context, limit int, unreadOnly bool, since time.Time) ([]domain.InboxMessage, uint32, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", i.host, i.port), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to dial imap server: %w", err)
	}
	defer func() {
		_ = c.Logout()
	}()

	if err := c.Login(i.username, i.password); err != nil {
		return nil, 0, fmt.Errorf("failed to login to imap server: %w", err)
	}

	mbox, err := c.Select("INBOX", true)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to select inbox: %w", err)
	}
	if mbox.Messages == 0 {
		return nil, 0, nil
	}

	seqset := new(imap.SeqSet)
	if unreadOnly || !since.IsZero() {
		criteria := imap.NewSearchCriteria()
		if unreadOnly {
			criteria.WithoutFlags = []string{imap.SeenFlag}
		}
		if !since.IsZero() {
			criteria.Since = since
		}
		ids, err := c.Search(criteria)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to search inbox: %w", err)
		}
		if len(ids) == 0 {
			return nil, mbox.Messages, nil
		}
		if len(ids) > limit {
			ids = ids[len(ids)-limit:]
		}
		seqset.AddNum(ids...)
	} else {
		from := uint32(1)
		if uint32(limit) < mbox.Messages {
			from = mbox.Messages - uint32(limit) + 1
		}
		seqset.AddRange(from, mbox.Messages)
	}

	messages := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid}, messages)
	}()

	var out []domain.InboxMessage
	for msg := range messages {
		m := domain.InboxMessage{
			UID:  msg.Uid,
			Seen: hasFlag(msg.Flags, imap.SeenFlag),
		}
		if msg.Envelope != nil {
			m.Subject = msg.Envelope.Subject
			m.Date = msg.Envelope.Date
			if len(msg.Envelope.From) > 0 {
				m.From = msg.Envelope.From[0].Address()
			}
		}
		out = append(out, m)
	}

	select {
	case err := <-done:
		if err != nil {
			return nil, 0, fmt.Errorf("failed to fetch inbox messages: %w", err)
		}
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	}

	// Newest first
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out, mbox.Messages, nil
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}
