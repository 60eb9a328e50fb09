package domain

import "time"

// InboxMessage is a summary of one message in the support mailbox.
type InboxMessage struct {
	UID     uint32    `json:"uid"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Seen    bool      `json:"seen"`
}
