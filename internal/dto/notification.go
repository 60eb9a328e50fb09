package dto

import (
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// NotificationResponse defines the data returned for an admin notification.
type NotificationResponse struct {
	NotificationID string            `json:"notificationID"`
	Kind           string            `json:"kind"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	ExtraData      map[string]string `json:"extraData,omitempty"`
	Priority       string            `json:"priority"`
	Read           bool              `json:"read"`
	ExpiresAt      *time.Time        `json:"expiresAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           string(n.Kind),
		Title:          n.Title,
		Body:           n.Body,
		ExtraData:      n.ExtraData,
		Priority:       string(n.Priority),
		Read:           n.Read,
		ExpiresAt:      n.ExpiresAt,
		CreatedAt:      n.CreatedAt,
	}
}

// CreateNotificationRequest defines the payload for a manual notification.
// An empty adminID addresses the caller.
type CreateNotificationRequest struct {
	AdminID  string `json:"adminID"`
	Kind     string `json:"kind" binding:"required,oneof=pending_request upcoming_visit pending_company stale_quote system"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Priority string `json:"priority" binding:"required,oneof=low medium high critical"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly"`
	Limit      int  `form:"limit,default=50"`
	Offset     int  `form:"offset,default=0"`
}

// ListNotificationsResponse wraps the list of notifications plus the
// unread counter shown in the admin header.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToListNotificationsResponse converts a slice of domain.Notification to ListNotificationsResponse DTO
func ToListNotificationsResponse(ns []domain.Notification, unread int) ListNotificationsResponse {
	res := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		res[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: res, UnreadCount: unread}
}

// SweepResponse reports how many notifications a sweep produced.
type SweepResponse struct {
	Created int `json:"created"`
}
