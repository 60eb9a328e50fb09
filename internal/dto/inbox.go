package dto

import "time"

// InboxMessageResponse is one message summary from the support mailbox.
type InboxMessageResponse struct {
	UID     uint32    `json:"uid"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Seen    bool      `json:"seen"`
}

// ListInboxParams defines query parameters for listing inbox messages.
type ListInboxParams struct {
	Limit      int    `form:"limit,default=20"`
	UnreadOnly bool   `form:"unreadOnly"`
	Since      string `form:"since" binding:"omitempty,datetime=2006-01-02"`
}

// ListInboxResponse wraps the list of inbox messages.
type ListInboxResponse struct {
	Messages []InboxMessageResponse `json:"messages"`
	Total    uint32                 `json:"total"`
}
