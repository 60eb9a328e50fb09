package domain

import "time"

// NotificationKind classifies what an admin notification is about.
type NotificationKind string

const (
	NotifyPendingRequest NotificationKind = "pending_request"
	NotifyUpcomingVisit  NotificationKind = "upcoming_visit"
	NotifyPendingCompany NotificationKind = "pending_company"
	NotifyStaleQuote     NotificationKind = "stale_quote"
	NotifySystem         NotificationKind = "system"
)

// NotificationPriority orders notifications for display.
type NotificationPriority string

const (
	PriorityLow      NotificationPriority = "low"
	PriorityMedium   NotificationPriority = "medium"
	PriorityHigh     NotificationPriority = "high"
	PriorityCritical NotificationPriority = "critical"
)

// NotificationStats summarizes an admin's unread notifications.
type NotificationStats struct {
	Unread     int                          `json:"unread"`
	ByPriority map[NotificationPriority]int `json:"byPriority"`
}

// Notification is an in-app message addressed to a single admin.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	AdminID        string               `json:"adminID"`
	Kind           NotificationKind     `json:"kind"`
	Title          string               `json:"title"`
	Body           string               `json:"body"`
	ExtraData      map[string]string    `json:"extraData,omitempty"`
	Priority       NotificationPriority `json:"priority"`
	Read           bool                 `json:"read"`
	ExpiresAt      *time.Time           `json:"expiresAt,omitempty"`
	AuditFields
}
