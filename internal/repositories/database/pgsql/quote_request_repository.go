package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	"github.com/andrenany/api-felmart/internal/models"
	"github.com/andrenany/api-felmart/internal/utils/mapping"
)

const quoteRequestColumns = `request_id, number, kind, requester_name, email, phone, company_name, company_tax_id, business_line, address, region, commune, waste_description, estimated_amount, pickup_frequency, frequency_detail, observations, urgency, status, admin_id, quote_id, quote_number, reject_reason, requested_at, reviewed_at, quoted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxQuoteRequestRepository struct {
	BaseRepository
}

// newPgxQuoteRequestRepository creates a new repository for intake requests.
func newPgxQuoteRequestRepository(pool *pgxpool.Pool) portsrepo.QuoteRequestRepositoryFacade {
	return &PgxQuoteRequestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRequestRepositoryFacade = (*PgxQuoteRequestRepository)(nil)

func scanQuoteRequest(row pgx.Row) (models.QuoteRequest, error) {
	var m models.QuoteRequest
	err := row.Scan(
		&m.RequestID,
		&m.Number,
		&m.Kind,
		&m.RequesterName,
		&m.Email,
		&m.Phone,
		&m.CompanyName,
		&m.CompanyTaxID,
		&m.BusinessLine,
		&m.Address,
		&m.Region,
		&m.Commune,
		&m.WasteDescription,
		&m.EstimatedAmount,
		&m.PickupFrequency,
		&m.FrequencyDetail,
		&m.Observations,
		&m.Urgency,
		&m.Status,
		&m.AdminID,
		&m.QuoteID,
		&m.QuoteNumber,
		&m.RejectReason,
		&m.RequestedAt,
		&m.ReviewedAt,
		&m.QuotedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateRequest persists a new intake request, allocating the next sequential
// number inside the transaction. The assigned number is set on the passed
// request.
func (r *PgxQuoteRequestRepository) CreateRequest(ctx context.Context, request *domain.QuoteRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	number, err := nextSequenceNumber(ctx, tx, "quote_requests", "SOL")
	if err != nil {
		return err
	}
	request.Number = number

	m := mapping.ToModelQuoteRequest(*request)

	query := `
		INSERT INTO quote_requests (` + quoteRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err = tx.Exec(ctx, query,
		m.RequestID, m.Number, m.Kind, m.RequesterName, m.Email, m.Phone,
		m.CompanyName, m.CompanyTaxID, m.BusinessLine,
		m.Address, m.Region, m.Commune,
		m.WasteDescription, m.EstimatedAmount, m.PickupFrequency, m.FrequencyDetail, m.Observations,
		m.Urgency, m.Status, m.AdminID, m.QuoteID, m.QuoteNumber, m.RejectReason,
		m.RequestedAt, m.ReviewedAt, m.QuotedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on number
			return fmt.Errorf("request number %s already taken: %w", m.Number, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert quote request: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindRequestByID retrieves an intake request by its ID.
func (r *PgxQuoteRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.QuoteRequest, error) {
	query := `SELECT ` + quoteRequestColumns + ` FROM quote_requests WHERE request_id = $1;`

	m, err := scanQuoteRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote request by id %s: %w", requestID, err)
	}

	d := mapping.ToDomainQuoteRequest(m)
	return &d, nil
}

// FindRequestByNumber retrieves an intake request by its SOL- number.
func (r *PgxQuoteRequestRepository) FindRequestByNumber(ctx context.Context, number string) (*domain.QuoteRequest, error) {
	query := `SELECT ` + quoteRequestColumns + ` FROM quote_requests WHERE number = $1;`

	m, err := scanQuoteRequest(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quote request by number %s: %w", number, err)
	}

	d := mapping.ToDomainQuoteRequest(m)
	return &d, nil
}

// ListRequests retrieves intake requests with pagination and filters.
func (r *PgxQuoteRequestRepository) ListRequests(ctx context.Context, status domain.RequestStatus, urgency domain.RequestUrgency, limit, offset int) ([]domain.QuoteRequest, error) {
	query := `SELECT ` + quoteRequestColumns + ` FROM quote_requests
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR urgency = $2)
		ORDER BY number DESC LIMIT $3 OFFSET $4;`

	rows, err := r.Pool.Query(ctx, query, string(status), string(urgency), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query quote requests: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuoteRequest, error) {
		return scanQuoteRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quote requests: %w", err)
	}

	return mapping.ToDomainQuoteRequestSlice(ms), nil
}

// CountPendingRequests counts requests still in the pending state.
func (r *PgxQuoteRequestRepository) CountPendingRequests(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quote_requests WHERE status = $1;`,
		string(domain.RequestPending),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending quote requests: %w", err)
	}
	return count, nil
}

// CountRequests aggregates request counts by status, kind and urgency.
func (r *PgxQuoteRequestRepository) CountRequests(ctx context.Context) (*domain.RequestStats, error) {
	stats := &domain.RequestStats{
		ByStatus:  map[domain.RequestStatus]int{},
		ByKind:    map[domain.QuoteKind]int{},
		ByUrgency: map[domain.RequestUrgency]int{},
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT status, kind, urgency, COUNT(*) FROM quote_requests GROUP BY status, kind, urgency;`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quote requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status, kind, urgency string
		var count int
		if err := rows.Scan(&status, &kind, &urgency, &count); err != nil {
			return nil, fmt.Errorf("failed to scan quote request aggregate: %w", err)
		}
		stats.Total += count
		stats.ByStatus[domain.RequestStatus(status)] += count
		stats.ByKind[domain.QuoteKind(kind)] += count
		stats.ByUrgency[domain.RequestUrgency(urgency)] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quote request aggregates: %w", err)
	}

	return stats, nil
}

// UpdateRequest persists changes to an existing intake request.
func (r *PgxQuoteRequestRepository) UpdateRequest(ctx context.Context, request domain.QuoteRequest) error {
	m := mapping.ToModelQuoteRequest(request)

	query := `
		UPDATE quote_requests SET
			status = $2,
			urgency = $3,
			admin_id = $4,
			quote_id = $5,
			quote_number = $6,
			reject_reason = $7,
			reviewed_at = $8,
			quoted_at = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE request_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RequestID, m.Status, m.Urgency, m.AdminID,
		m.QuoteID, m.QuoteNumber, m.RejectReason,
		m.ReviewedAt, m.QuotedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update quote request %s: %w", m.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRequest removes an intake request.
func (r *PgxQuoteRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM quote_requests WHERE request_id = $1;`, requestID)
	if err != nil {
		return fmt.Errorf("failed to delete quote request %s: %w", requestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
