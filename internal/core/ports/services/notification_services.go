package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// NotificationReaderSvc defines read operations for admin notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves an admin's notifications plus the unread
	// counter.
	ListNotifications(ctx context.Context, adminID string, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error)

	// NotificationStats summarizes an admin's unread notifications per
	// priority.
	NotificationStats(ctx context.Context, adminID string) (*domain.NotificationStats, error)
}

// NotificationWriterSvc defines write operations for admin notifications
type NotificationWriterSvc interface {
	// CreateNotification addresses a manual notification to one admin.
	CreateNotification(ctx context.Context, adminID string, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, createdBy string) (*domain.Notification, error)

	// MarkRead marks one of the admin's notifications read.
	MarkRead(ctx context.Context, adminID, notificationID string) error

	// DeleteNotification removes one of the admin's notifications.
	DeleteNotification(ctx context.Context, adminID, notificationID string) error

	// MarkAllRead marks all of the admin's notifications read.
	MarkAllRead(ctx context.Context, adminID string) error

	// Sweep scans pending requests, upcoming visits, pending companies and
	// stale quotes and fans matching alerts out to every admin. It returns
	// the number of notifications created.
	Sweep(ctx context.Context) (int, error)

	// NotifyAdmins fans a single notification out to every admin.
	NotifyAdmins(ctx context.Context, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, extra map[string]string) error
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
