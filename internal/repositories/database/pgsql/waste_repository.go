package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	"github.com/andrenany/api-felmart/internal/models"
	"github.com/andrenany/api-felmart/internal/utils/mapping"
)

const wasteColumns = `waste_id, description, unit_price, unit, currency, created_at, created_by, last_updated_at, last_updated_by`

type PgxWasteRepository struct {
	BaseRepository
}

// newPgxWasteRepository creates a new repository for the waste catalog.
func newPgxWasteRepository(pool *pgxpool.Pool) portsrepo.WasteRepositoryFacade {
	return &PgxWasteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WasteRepositoryFacade = (*PgxWasteRepository)(nil)

func scanWasteItem(row pgx.Row) (models.WasteItem, error) {
	var m models.WasteItem
	err := row.Scan(
		&m.WasteID,
		&m.Description,
		&m.UnitPrice,
		&m.Unit,
		&m.Currency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveWasteItem inserts a new catalog entry.
func (r *PgxWasteRepository) SaveWasteItem(ctx context.Context, item domain.WasteItem) error {
	m := mapping.ToModelWasteItem(item)

	query := `
		INSERT INTO waste_items (` + wasteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WasteID, m.Description, m.UnitPrice, m.Unit, m.Currency,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save waste item: %w", err)
	}
	return nil
}

// FindWasteItemByID retrieves a catalog entry by its ID.
func (r *PgxWasteRepository) FindWasteItemByID(ctx context.Context, wasteID string) (*domain.WasteItem, error) {
	query := `SELECT ` + wasteColumns + ` FROM waste_items WHERE waste_id = $1;`

	m, err := scanWasteItem(r.Pool.QueryRow(ctx, query, wasteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find waste item by id %s: %w", wasteID, err)
	}

	d := mapping.ToDomainWasteItem(m)
	return &d, nil
}

// ListWasteItems retrieves the full catalog.
func (r *PgxWasteRepository) ListWasteItems(ctx context.Context) ([]domain.WasteItem, error) {
	query := `SELECT ` + wasteColumns + ` FROM waste_items ORDER BY description;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query waste items: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WasteItem, error) {
		return scanWasteItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan waste items: %w", err)
	}

	return mapping.ToDomainWasteItemSlice(ms), nil
}

// UpdateWasteItem persists changes to an existing catalog entry.
func (r *PgxWasteRepository) UpdateWasteItem(ctx context.Context, item domain.WasteItem) error {
	m := mapping.ToModelWasteItem(item)

	query := `
		UPDATE waste_items SET
			description = $2,
			unit_price = $3,
			unit = $4,
			currency = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE waste_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.WasteID, m.Description, m.UnitPrice, m.Unit, m.Currency,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update waste item %s: %w", m.WasteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWasteItem removes a catalog entry. Existing quote lines keep their
// price snapshots.
func (r *PgxWasteRepository) DeleteWasteItem(ctx context.Context, wasteID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM waste_items WHERE waste_id = $1;`, wasteID)
	if err != nil {
		return fmt.Errorf("failed to delete waste item %s: %w", wasteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
