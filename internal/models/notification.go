package models

import "time"

// Notification is an in-app notification row addressed to one admin.
// ExtraData is persisted as JSONB.
type Notification struct {
	NotificationID string            `json:"notificationID"`
	AdminID        string            `json:"adminID" db:"admin_id"`
	Kind           string            `json:"kind"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	ExtraData      map[string]string `json:"extraData,omitempty" db:"extra_data"`
	Priority       string            `json:"priority"`
	Read           bool              `json:"read"`
	ExpiresAt      *time.Time        `json:"expiresAt,omitempty" db:"expires_at"`
	AuditFields
}
