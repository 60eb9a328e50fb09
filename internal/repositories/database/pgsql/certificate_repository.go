package pgsql

import (
	"context"
	"errors"
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

const certificateColumns = `certificate_id, user_id, company_id, visit_id, file_name, stored_path, content_type, size_bytes, description, sent_by_email, created_at, created_by, last_updated_at, last_updated_by`

type PgxCertificateRepository struct {
	BaseRepository
}

// newPgxCertificateRepository creates a new repository for certificates.
func newPgxCertificateRepository(pool *pgxpool.Pool) portsrepo.CertificateRepositoryFacade {
	return &PgxCertificateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CertificateRepositoryFacade = (*PgxCertificateRepository)(nil)

func scanCertificate(row pgx.Row) (models.Certificate, error) {
	var m models.Certificate
	err := row.Scan(
		&m.CertificateID,
		&m.UserID,
		&m.CompanyID,
		&m.VisitID,
		&m.FileName,
		&m.StoredPath,
		&m.ContentType,
		&m.SizeBytes,
		&m.Description,
		&m.SentByEmail,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCertificate inserts a new certificate record.
func (r *PgxCertificateRepository) SaveCertificate(ctx context.Context, cert domain.Certificate) error {
	m := mapping.ToModelCertificate(cert)

	query := `
		INSERT INTO certificates (` + certificateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CertificateID, m.UserID, m.CompanyID, m.VisitID,
		m.FileName, m.StoredPath, m.ContentType, m.SizeBytes, m.Description, m.SentByEmail,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

// FindCertificateByID retrieves a certificate record by its ID.
func (r *PgxCertificateRepository) FindCertificateByID(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE certificate_id = $1;`

	m, err := scanCertificate(r.Pool.QueryRow(ctx, query, certificateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find certificate by id %s: %w", certificateID, err)
	}

	d := mapping.ToDomainCertificate(m)
	return &d, nil
}

// ListCertificatesByUser retrieves the certificates issued to a user.
func (r *PgxCertificateRepository) ListCertificatesByUser(ctx context.Context, userID string) ([]domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates of user %s: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Certificate, error) {
		return scanCertificate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan certificates of user: %w", err)
	}

	return mapping.ToDomainCertificateSlice(ms), nil
}

// ListCertificates retrieves certificates with pagination.
func (r *PgxCertificateRepository) ListCertificates(ctx context.Context, limit, offset int) ([]domain.Certificate, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificates ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Certificate, error) {
		return scanCertificate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan certificates: %w", err)
	}

	return mapping.ToDomainCertificateSlice(ms), nil
}

// MarkSentByEmail records that a certificate was delivered by email.
func (r *PgxCertificateRepository) MarkSentByEmail(ctx context.Context, certificateID, updatedBy string) error {
	query := `
		UPDATE certificates SET
			sent_by_email = true,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE certificate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, certificateID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark certificate %s as sent: %w", certificateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCertificate removes a certificate record.
func (r *PgxCertificateRepository) DeleteCertificate(ctx context.Context, certificateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM certificates WHERE certificate_id = $1;`, certificateID)
	if err != nil {
		return fmt.Errorf("failed to delete certificate %s: %w", certificateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
