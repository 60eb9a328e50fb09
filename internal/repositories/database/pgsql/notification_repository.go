package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	"github.com/andrenany/api-felmart/internal/models"
	"github.com/andrenany/api-felmart/internal/utils/mapping"
)

const notificationColumns = `notification_id, admin_id, kind, title, body, extra_data, priority, read, expires_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for admin notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.AdminID,
		&m.Kind,
		&m.Title,
		&m.Body,
		&m.ExtraData,
		&m.Priority,
		&m.Read,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveNotifications persists a batch of notifications in one transaction.
func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, n := range notifications {
		m := mapping.ToModelNotification(n)
		_, err := tx.Exec(ctx, query,
			m.NotificationID, m.AdminID, m.Kind, m.Title, m.Body,
			m.ExtraData, m.Priority, m.Read, m.ExpiresAt,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListNotifications retrieves an admin's notifications, newest first.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, adminID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE admin_id = $1 AND (NOT $2 OR NOT read)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4;`

	rows, err := r.Pool.Query(ctx, query, adminID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		return scanNotification(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}

	return mapping.ToDomainNotificationSlice(ms), nil
}

// CountUnread counts an admin's unread notifications.
func (r *PgxNotificationRepository) CountUnread(ctx context.Context, adminID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE admin_id = $1 AND NOT read;`,
		adminID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// CountByPriority counts an admin's unread notifications per priority.
func (r *PgxNotificationRepository) CountByPriority(ctx context.Context, adminID string) (map[domain.NotificationPriority]int, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT priority, COUNT(*) FROM notifications WHERE admin_id = $1 AND NOT read GROUP BY priority;`,
		adminID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications by priority: %w", err)
	}
	defer rows.Close()

	counts := map[domain.NotificationPriority]int{}
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, fmt.Errorf("failed to scan notification count: %w", err)
		}
		counts[domain.NotificationPriority(priority)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notification counts: %w", err)
	}

	return counts, nil
}

// MarkRead marks one notification read. Scoped to the owning admin.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, adminID, notificationID string) error {
	query := `
		UPDATE notifications SET
			read = true,
			last_updated_at = $3,
			last_updated_by = $1
		WHERE admin_id = $1 AND notification_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, adminID, notificationID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllRead marks all of an admin's notifications read.
func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, adminID string) error {
	query := `
		UPDATE notifications SET
			read = true,
			last_updated_at = $2,
			last_updated_by = $1
		WHERE admin_id = $1 AND NOT read;
	`
	if _, err := r.Pool.Exec(ctx, query, adminID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// DeleteNotification removes one notification. Scoped to the owning admin.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, adminID, notificationID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM notifications WHERE admin_id = $1 AND notification_id = $2;`,
		adminID, notificationID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpired removes notifications past their expiry.
func (r *PgxNotificationRepository) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at < $1;`,
		time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired notifications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
