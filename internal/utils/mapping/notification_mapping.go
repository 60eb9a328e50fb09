package mapping

import (
	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		AdminID:        d.AdminID,
		Kind:           string(d.Kind),
		Title:          d.Title,
		Body:           d.Body,
		ExtraData:      d.ExtraData,
		Priority:       string(d.Priority),
		Read:           d.Read,
		ExpiresAt:      d.ExpiresAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		AdminID:        m.AdminID,
		Kind:           domain.NotificationKind(m.Kind),
		Title:          m.Title,
		Body:           m.Body,
		ExtraData:      m.ExtraData,
		Priority:       domain.NotificationPriority(m.Priority),
		Read:           m.Read,
		ExpiresAt:      m.ExpiresAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to a slice of domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
