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

const companyColumns = `company_id, tax_id, name, business_line, address, region, commune, approval, created_at, created_by, last_updated_at, last_updated_by`

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.TaxID,
		&m.Name,
		&m.BusinessLine,
		&m.Address,
		&m.Region,
		&m.Commune,
		&m.Approval,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCompany inserts a new company. Tax ID is unique.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.TaxID, m.Name, m.BusinessLine,
		m.Address, m.Region, m.Commune, m.Approval,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("company with tax id %s already exists: %w", m.TaxID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`

	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by id %s: %w", companyID, err)
	}

	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// FindCompanyByTaxID retrieves a company by tax ID.
func (r *PgxCompanyRepository) FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE tax_id = $1;`

	m, err := scanCompany(r.Pool.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by tax id: %w", err)
	}

	d := mapping.ToDomainCompany(m)
	return &d, nil
}

// ListCompanies retrieves companies with pagination, optionally filtered by
// approval state.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, approval domain.CompanyApproval, limit, offset int) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE ($1 = '' OR approval = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, string(approval), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return mapping.ToDomainCompanySlice(ms), nil
}

// ListCompanyUsers retrieves the active user links of a company.
func (r *PgxCompanyRepository) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	query := `
		SELECT company_id, user_id, active, assigned_at
		FROM company_users
		WHERE company_id = $1 AND active
		ORDER BY assigned_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company users: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CompanyUser, error) {
		var m models.CompanyUser
		err := row.Scan(&m.CompanyID, &m.UserID, &m.Active, &m.AssignedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan company users: %w", err)
	}

	links := make([]domain.CompanyUser, len(ms))
	for i, m := range ms {
		links[i] = mapping.ToDomainCompanyUser(m)
	}
	return links, nil
}

// ListUserCompanies retrieves the companies a user is actively linked to.
func (r *PgxCompanyRepository) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `
		SELECT c.company_id, c.tax_id, c.name, c.business_line, c.address, c.region, c.commune, c.approval,
		       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN company_users cu ON cu.company_id = c.company_id
		WHERE cu.user_id = $1 AND cu.active
		ORDER BY cu.assigned_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies of user %s: %w", userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		return scanCompany(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies of user: %w", err)
	}

	return mapping.ToDomainCompanySlice(ms), nil
}

// UpdateCompany persists changes to an existing company.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		UPDATE companies SET
			name = $2,
			business_line = $3,
			address = $4,
			region = $5,
			commune = $6,
			approval = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.Name, m.BusinessLine,
		m.Address, m.Region, m.Commune, m.Approval,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", m.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignUser links a user to a company, reactivating a previous link if one
// exists.
func (r *PgxCompanyRepository) AssignUser(ctx context.Context, link domain.CompanyUser) error {
	m := mapping.ToModelCompanyUser(link)

	query := `
		INSERT INTO company_users (company_id, user_id, active, assigned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, user_id) DO UPDATE SET
			active = EXCLUDED.active,
			assigned_at = EXCLUDED.assigned_at;
	`
	_, err := r.Pool.Exec(ctx, query, m.CompanyID, m.UserID, m.Active, m.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to assign user %s to company %s: %w", m.UserID, m.CompanyID, err)
	}
	return nil
}

// RemoveUser deactivates a user link.
func (r *PgxCompanyRepository) RemoveUser(ctx context.Context, companyID, userID string) error {
	query := `UPDATE company_users SET active = false WHERE company_id = $1 AND user_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove user %s from company %s: %w", userID, companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCompany removes a company. User links go with it via cascade.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM companies WHERE company_id = $1;`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", companyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
