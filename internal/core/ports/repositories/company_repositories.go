package repositories

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByTaxID retrieves a company by tax ID. Tax ID is unique.
	FindCompanyByTaxID(ctx context.Context, taxID string) (*domain.Company, error)

	// ListCompanies retrieves companies with pagination, optionally filtered
	// by approval state. An empty approval means no filter.
	ListCompanies(ctx context.Context, approval domain.CompanyApproval, limit, offset int) ([]domain.Company, error)

	// ListCompanyUsers retrieves the active user links of a company.
	ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error)

	// ListUserCompanies retrieves the companies a user is linked to.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany persists changes to an existing company.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// AssignUser links a user to a company.
	AssignUser(ctx context.Context, link domain.CompanyUser) error

	// RemoveUser deactivates a user link.
	RemoveUser(ctx context.Context, companyID, userID string) error

	// DeleteCompany removes a company and its user links.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
