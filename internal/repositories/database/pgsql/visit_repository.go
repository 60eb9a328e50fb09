package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	"github.com/andrenany/api-felmart/internal/models"
	"github.com/andrenany/api-felmart/internal/utils/mapping"
)

const visitColumns = `visit_id, user_id, company_id, quote_id, visit_date, visit_time, reason, status, observations, admin_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxVisitRepository struct {
	BaseRepository
}

// newPgxVisitRepository creates a new repository for site visits.
func newPgxVisitRepository(pool *pgxpool.Pool) portsrepo.VisitRepositoryFacade {
	return &PgxVisitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VisitRepositoryFacade = (*PgxVisitRepository)(nil)

func scanVisit(row pgx.Row) (models.Visit, error) {
	var m models.Visit
	err := row.Scan(
		&m.VisitID,
		&m.UserID,
		&m.CompanyID,
		&m.QuoteID,
		&m.VisitDate,
		&m.VisitTime,
		&m.Reason,
		&m.Status,
		&m.Observations,
		&m.AdminID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveVisit inserts a new visit. The (visit_date, visit_time) pair is unique.
func (r *PgxVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	m := mapping.ToModelVisit(visit)

	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VisitID, m.UserID, m.CompanyID, m.QuoteID,
		m.VisitDate, m.VisitTime, m.Reason, m.Status, m.Observations, m.AdminID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on slot
			return fmt.Errorf("visit slot %s %s already taken: %w", m.VisitDate.Format("2006-01-02"), m.VisitTime, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save visit: %w", err)
	}
	return nil
}

// FindVisitByID retrieves a visit by its ID.
func (r *PgxVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE visit_id = $1;`

	m, err := scanVisit(r.Pool.QueryRow(ctx, query, visitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visit by id %s: %w", visitID, err)
	}

	d := mapping.ToDomainVisit(m)
	return &d, nil
}

// FindVisitBySlot retrieves the visit occupying a (date, time) slot.
func (r *PgxVisitRepository) FindVisitBySlot(ctx context.Context, date time.Time, timeOfDay string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE visit_date = $1 AND visit_time = $2;`

	m, err := scanVisit(r.Pool.QueryRow(ctx, query, date, timeOfDay))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visit by slot: %w", err)
	}

	d := mapping.ToDomainVisit(m)
	return &d, nil
}

// ListVisits retrieves visits with pagination, optionally filtered by status
// and date range.
func (r *PgxVisitRepository) ListVisits(ctx context.Context, status domain.VisitStatus, from, to time.Time, limit, offset int) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits
		WHERE ($1 = '' OR status = $1)
		  AND ($2::timestamptz IS NULL OR visit_date >= $2)
		  AND ($3::timestamptz IS NULL OR visit_date <= $3)
		ORDER BY visit_date, visit_time LIMIT $4 OFFSET $5;`

	var fromArg, toArg any
	if !from.IsZero() {
		fromArg = from
	}
	if !to.IsZero() {
		toArg = to
	}

	rows, err := r.Pool.Query(ctx, query, string(status), fromArg, toArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Visit, error) {
		return scanVisit(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan visits: %w", err)
	}

	return mapping.ToDomainVisitSlice(ms), nil
}

// ListVisitsByUser retrieves the visits scheduled for a user.
func (r *PgxVisitRepository) ListVisitsByUser(ctx context.Context, userID string) ([]domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE user_id = $1 ORDER BY visit_date, visit_time;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits of user %s: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Visit, error) {
		return scanVisit(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan visits of user: %w", err)
	}

	return mapping.ToDomainVisitSlice(ms), nil
}

// UpdateVisit persists changes to an existing visit.
func (r *PgxVisitRepository) UpdateVisit(ctx context.Context, visit domain.Visit) error {
	m := mapping.ToModelVisit(visit)

	query := `
		UPDATE visits SET
			visit_date = $2,
			visit_time = $3,
			status = $4,
			observations = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE visit_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.VisitID, m.VisitDate, m.VisitTime, m.Status, m.Observations,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on slot
			return fmt.Errorf("visit slot %s %s already taken: %w", m.VisitDate.Format("2006-01-02"), m.VisitTime, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update visit %s: %w", m.VisitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVisit removes a visit.
func (r *PgxVisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM visits WHERE visit_id = $1;`, visitID)
	if err != nil {
		return fmt.Errorf("failed to delete visit %s: %w", visitID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
