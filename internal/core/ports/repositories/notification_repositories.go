package repositories

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// NotificationReader defines read operations for admin notifications
type NotificationReader interface {
	// ListNotifications retrieves an admin's notifications, newest first.
	ListNotifications(ctx context.Context, adminID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error)

	// CountUnread counts an admin's unread notifications.
	CountUnread(ctx context.Context, adminID string) (int, error)

	// CountByPriority counts an admin's unread notifications per priority.
	CountByPriority(ctx context.Context, adminID string) (map[domain.NotificationPriority]int, error)
}

// NotificationWriter defines write operations for admin notifications
type NotificationWriter interface {
	// SaveNotifications persists a batch of notifications.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error

	// MarkRead marks one notification read. Scoped to the owning admin.
	MarkRead(ctx context.Context, adminID, notificationID string) error

	// MarkAllRead marks all of an admin's notifications read.
	MarkAllRead(ctx context.Context, adminID string) error

	// DeleteNotification removes one notification. Scoped to the owning admin.
	DeleteNotification(ctx context.Context, adminID, notificationID string) error

	// DeleteExpired removes notifications past their expiry.
	DeleteExpired(ctx context.Context) (int, error)
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
