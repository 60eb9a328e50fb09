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

const quoteColumns = `quote_id, number, kind, user_id, user_name, company_id, company_tax_id, company_name, company_address, region, commune, uf_value, total_clp, status, observations, admin_id, quote_date, created_at, created_by, last_updated_at, last_updated_by`

const quoteLineColumns = `line_id, quote_id, waste_id, description, quantity, unit_price, currency, unit_price_clp, subtotal_clp, unit`

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quotes.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

func scanQuote(row pgx.Row) (models.Quote, error) {
	var m models.Quote
	err := row.Scan(
		&m.QuoteID,
		&m.Number,
		&m.Kind,
		&m.UserID,
		&m.UserName,
		&m.CompanyID,
		&m.CompanyTaxID,
		&m.CompanyName,
		&m.CompanyAddress,
		&m.Region,
		&m.Commune,
		&m.UFValue,
		&m.TotalCLP,
		&m.Status,
		&m.Observations,
		&m.AdminID,
		&m.QuoteDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanQuoteLine(row pgx.Row) (models.QuoteLine, error) {
	var m models.QuoteLine
	err := row.Scan(
		&m.LineID,
		&m.QuoteID,
		&m.WasteID,
		&m.Description,
		&m.Quantity,
		&m.UnitPrice,
		&m.Currency,
		&m.UnitPriceCLP,
		&m.SubtotalCLP,
		&m.Unit,
	)
	return m, err
}

// CreateQuote persists a quote and its lines in one transaction, allocating
// the next sequential number. The assigned number is set on the passed quote.
func (r *PgxQuoteRepository) CreateQuote(ctx context.Context, quote *domain.Quote) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	number, err := nextSequenceNumber(ctx, tx, "quotes", "COT")
	if err != nil {
		return err
	}
	quote.Number = number

	m := mapping.ToModelQuote(*quote)

	insertQuote := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, insertQuote,
		m.QuoteID, m.Number, m.Kind, m.UserID, m.UserName,
		m.CompanyID, m.CompanyTaxID, m.CompanyName, m.CompanyAddress, m.Region, m.Commune,
		m.UFValue, m.TotalCLP, m.Status, m.Observations, m.AdminID, m.QuoteDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on number
			return fmt.Errorf("quote number %s already taken: %w", m.Number, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	insertLine := `
		INSERT INTO quote_lines (` + quoteLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, line := range quote.Lines {
		lm := mapping.ToModelQuoteLine(line)
		_, err = tx.Exec(ctx, insertLine,
			lm.LineID, m.QuoteID, lm.WasteID, lm.Description, lm.Quantity,
			lm.UnitPrice, lm.Currency, lm.UnitPriceCLP, lm.SubtotalCLP, lm.Unit,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quote line: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxQuoteRepository) loadLines(ctx context.Context, quoteIDs []string) (map[string][]domain.QuoteLine, error) {
	if len(quoteIDs) == 0 {
		return map[string][]domain.QuoteLine{}, nil
	}

	query := `SELECT ` + quoteLineColumns + ` FROM quote_lines WHERE quote_id = ANY($1) ORDER BY line_id;`

	rows, err := r.Pool.Query(ctx, query, quoteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote lines: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuoteLine, error) {
		return scanQuoteLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quote lines: %w", err)
	}

	byQuote := make(map[string][]domain.QuoteLine, len(quoteIDs))
	for _, lm := range ms {
		byQuote[lm.QuoteID] = append(byQuote[lm.QuoteID], mapping.ToDomainQuoteLine(lm))
	}
	return byQuote, nil
}

// FindQuoteByID retrieves a quote with its lines.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE quote_id = $1;`

	m, err := scanQuote(r.Pool.QueryRow(ctx, query, quoteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by id %s: %w", quoteID, err)
	}

	d := mapping.ToDomainQuote(m)
	lines, err := r.loadLines(ctx, []string{d.QuoteID})
	if err != nil {
		return nil, err
	}
	d.Lines = lines[d.QuoteID]
	return &d, nil
}

// FindQuoteByNumber retrieves a quote with its lines by its COT- number.
func (r *PgxQuoteRepository) FindQuoteByNumber(ctx context.Context, number string) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE number = $1;`

	m, err := scanQuote(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote by number %s: %w", number, err)
	}

	d := mapping.ToDomainQuote(m)
	lines, err := r.loadLines(ctx, []string{d.QuoteID})
	if err != nil {
		return nil, err
	}
	d.Lines = lines[d.QuoteID]
	return &d, nil
}

func (r *PgxQuoteRepository) attachLines(ctx context.Context, quotes []domain.Quote) ([]domain.Quote, error) {
	ids := make([]string, len(quotes))
	for i, q := range quotes {
		ids[i] = q.QuoteID
	}
	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		quotes[i].Lines = lines[quotes[i].QuoteID]
	}
	return quotes, nil
}

// ListQuotes retrieves quotes with pagination, optionally filtered by status.
func (r *PgxQuoteRepository) ListQuotes(ctx context.Context, status domain.QuoteStatus, limit, offset int) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
		WHERE ($1 = '' OR status = $1)
		ORDER BY number DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotes: %w", err)
	}

	return r.attachLines(ctx, mapping.ToDomainQuoteSlice(ms))
}

// ListQuotesByUser retrieves the quotes issued to a user.
func (r *PgxQuoteRepository) ListQuotesByUser(ctx context.Context, userID string) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE user_id = $1 ORDER BY number DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes of user %s: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotes of user: %w", err)
	}

	return r.attachLines(ctx, mapping.ToDomainQuoteSlice(ms))
}

// ListStaleQuotes retrieves pending quotes created before the cutoff.
func (r *PgxQuoteRepository) ListStaleQuotes(ctx context.Context, cutoff time.Time) ([]domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, string(domain.QuotePending), cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale quotes: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quote, error) {
		return scanQuote(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stale quotes: %w", err)
	}

	return mapping.ToDomainQuoteSlice(ms), nil
}

// UpdateQuoteStatus moves a quote to a new status.
func (r *PgxQuoteRepository) UpdateQuoteStatus(ctx context.Context, quoteID string, status domain.QuoteStatus, updatedBy string) error {
	query := `
		UPDATE quotes SET
			status = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE quote_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, quoteID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of quote %s: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteQuote removes a quote and its lines.
func (r *PgxQuoteRepository) DeleteQuote(ctx context.Context, quoteID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if _, err := tx.Exec(ctx, `DELETE FROM quote_lines WHERE quote_id = $1;`, quoteID); err != nil {
		return fmt.Errorf("failed to delete lines of quote %s: %w", quoteID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM quotes WHERE quote_id = $1;`, quoteID)
	if err != nil {
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
