package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/middleware"
)

// staleQuoteAge is how long a quote may sit pending before the sweep flags it.
const staleQuoteAge = 3 * 24 * time.Hour

// notificationTTL bounds how long sweep alerts stay around before cleanup.
const notificationTTL = 30 * 24 * time.Hour

type NotificationService struct {
	notifRepo   portsrepo.NotificationRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	requestRepo portsrepo.QuoteRequestRepositoryFacade
	visitRepo   portsrepo.VisitRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	quoteRepo   portsrepo.QuoteRepositoryFacade
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

func NewNotificationService(
	notifRepo portsrepo.NotificationRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	requestRepo portsrepo.QuoteRequestRepositoryFacade,
	visitRepo portsrepo.VisitRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	quoteRepo portsrepo.QuoteRepositoryFacade,
) *NotificationService {
	return &NotificationService{
		notifRepo:   notifRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		visitRepo:   visitRepo,
		companyRepo: companyRepo,
		quoteRepo:   quoteRepo,
	}
}

// ListNotifications retrieves an admin's notifications plus the unread
// counter.
func (s *NotificationService) ListNotifications(ctx context.Context, adminID string, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error) {
	notifications, err := s.notifRepo.ListNotifications(ctx, adminID, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	unread, err := s.notifRepo.CountUnread(ctx, adminID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

// NotificationStats summarizes an admin's unread notifications per priority.
func (s *NotificationService) NotificationStats(ctx context.Context, adminID string) (*domain.NotificationStats, error) {
	byPriority, err := s.notifRepo.CountByPriority(ctx, adminID)
	if err != nil {
		return nil, err
	}
	stats := &domain.NotificationStats{ByPriority: byPriority}
	for _, count := range byPriority {
		stats.Unread += count
	}
	return stats, nil
}

// CreateNotification addresses a manual notification to one admin.
func (s *NotificationService) CreateNotification(ctx context.Context, adminID string, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, createdBy string) (*domain.Notification, error) {
	now := time.Now().UTC()
	expires := now.Add(notificationTTL)
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		AdminID:        adminID,
		Kind:           kind,
		Title:          title,
		Body:           body,
		Priority:       priority,
		ExpiresAt:      &expires,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}
	if err := s.notifRepo.SaveNotifications(ctx, []domain.Notification{notification}); err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead marks one of the admin's notifications read.
func (s *NotificationService) MarkRead(ctx context.Context, adminID, notificationID string) error {
	return s.notifRepo.MarkRead(ctx, adminID, notificationID)
}

// DeleteNotification removes one of the admin's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, adminID, notificationID string) error {
	return s.notifRepo.DeleteNotification(ctx, adminID, notificationID)
}

// MarkAllRead marks all of the admin's notifications read.
func (s *NotificationService) MarkAllRead(ctx context.Context, adminID string) error {
	return s.notifRepo.MarkAllRead(ctx, adminID)
}

// NotifyAdmins fans a single notification out to every admin.
func (s *NotificationService) NotifyAdmins(ctx context.Context, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, extra map[string]string) error {
	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}
	return s.notifRepo.SaveNotifications(ctx, s.fanOut(admins, kind, title, body, priority, extra))
}

// Sweep scans pending requests, upcoming visits, pending companies and stale
// quotes and fans matching alerts out to every admin. Each run creates fresh
// notifications for every condition still present. It also prunes expired
// notifications.
func (s *NotificationService) Sweep(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) == 0 {
		return 0, nil
	}

	var batch []domain.Notification

	pending, err := s.requestRepo.CountPendingRequests(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	if pending > 0 {
		priority := domain.PriorityMedium
		if pending > 5 {
			priority = domain.PriorityHigh
		}
		batch = append(batch, s.fanOut(admins,
			domain.NotifyPendingRequest,
			"Solicitudes pendientes",
			fmt.Sprintf("Hay %d solicitudes de cotización pendientes de revisión", pending),
			priority,
			map[string]string{"count": fmt.Sprintf("%d", pending)},
		)...)
	}

	upcoming, err := s.upcomingVisits(ctx)
	if err != nil {
		return 0, err
	}
	for _, visit := range upcoming {
		batch = append(batch, s.fanOut(admins,
			domain.NotifyUpcomingVisit,
			"Visita próxima",
			fmt.Sprintf("Visita programada para el %s a las %s", visit.VisitDate.Format("2006-01-02"), visit.VisitTime),
			domain.PriorityMedium,
			map[string]string{"visitID": visit.VisitID},
		)...)
	}

	companies, err := s.companyRepo.ListCompanies(ctx, domain.CompanyPending, 100, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending companies: %w", err)
	}
	if len(companies) > 0 {
		batch = append(batch, s.fanOut(admins,
			domain.NotifyPendingCompany,
			"Empresas pendientes de aprobación",
			fmt.Sprintf("Hay %d empresas esperando aprobación", len(companies)),
			domain.PriorityMedium,
			map[string]string{"count": fmt.Sprintf("%d", len(companies))},
		)...)
	}

	stale, err := s.quoteRepo.ListStaleQuotes(ctx, time.Now().UTC().Add(-staleQuoteAge))
	if err != nil {
		return 0, fmt.Errorf("failed to list stale quotes: %w", err)
	}
	for _, quote := range stale {
		batch = append(batch, s.fanOut(admins,
			domain.NotifyStaleQuote,
			"Cotización sin respuesta",
			fmt.Sprintf("La cotización %s lleva más de 3 días pendiente", quote.Number),
			domain.PriorityHigh,
			map[string]string{"quoteID": quote.QuoteID, "number": quote.Number},
		)...)
	}

	if len(batch) > 0 {
		if err := s.notifRepo.SaveNotifications(ctx, batch); err != nil {
			return 0, err
		}
	}

	if removed, err := s.notifRepo.DeleteExpired(ctx); err != nil {
		logger.Warn("Failed to prune expired notifications", "error", err.Error())
	} else if removed > 0 {
		logger.Info("Pruned expired notifications", "count", removed)
	}

	logger.Info("Notification sweep finished", "created", len(batch), "admins", len(admins))
	return len(batch), nil
}

// upcomingVisits returns pending or accepted visits dated today or tomorrow.
func (s *NotificationService) upcomingVisits(ctx context.Context) ([]domain.Visit, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// The repository bound is inclusive, so tomorrow is the last day in range.
	tomorrow := today.Add(24 * time.Hour)

	var upcoming []domain.Visit
	for _, status := range []domain.VisitStatus{domain.VisitPending, domain.VisitAccepted} {
		visits, err := s.visitRepo.ListVisits(ctx, status, today, tomorrow, 100, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to list upcoming visits: %w", err)
		}
		upcoming = append(upcoming, visits...)
	}
	return upcoming, nil
}

func (s *NotificationService) fanOut(admins []domain.User, kind domain.NotificationKind, title, body string, priority domain.NotificationPriority, extra map[string]string) []domain.Notification {
	now := time.Now().UTC()
	expires := now.Add(notificationTTL)
	out := make([]domain.Notification, 0, len(admins))
	for _, admin := range admins {
		out = append(out, domain.Notification{
			NotificationID: uuid.NewString(),
			AdminID:        admin.UserID,
			Kind:           kind,
			Title:          title,
			Body:           body,
			ExtraData:      extra,
			Priority:       priority,
			ExpiresAt:      &expires,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "system",
				LastUpdatedAt: now,
				LastUpdatedBy: "system",
			},
		})
	}
	return out
}
