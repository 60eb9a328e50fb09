package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company by its ID.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves companies, optionally filtered by approval.
	ListCompanies(ctx context.Context, approval domain.CompanyApproval, limit, offset int) ([]domain.Company, error)

	// ListCompanyUsers retrieves the users linked to a company.
	ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error)

	// ListUserCompanies retrieves the companies a user belongs to.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany registers a new company. Companies created by admins
	// start approved, everyone else's start pending.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorID string, creatorRole domain.UserRole) (*domain.Company, error)

	// UpdateCompany applies the provided fields to a company.
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterID string) (*domain.Company, error)

	// ApproveCompany moves a pending company to approved.
	ApproveCompany(ctx context.Context, companyID, adminID string) (*domain.Company, error)

	// RejectCompany moves a pending company to rejected.
	RejectCompany(ctx context.Context, companyID, adminID string) (*domain.Company, error)

	// AssignUser links a user to a company.
	AssignUser(ctx context.Context, companyID, userID, adminID string) error

	// RemoveUser deactivates a user link.
	RemoveUser(ctx context.Context, companyID, userID string) error

	// DeleteCompany removes a company and its user links.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
