package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
)

type CompanyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) *CompanyService {
	return &CompanyService{companyRepo: companyRepo, userRepo: userRepo}
}

// CreateCompany registers a new company. Companies created by admins start
// approved, everyone else's start pending.
func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorID string, creatorRole domain.UserRole) (*domain.Company, error) {
	now := time.Now().UTC()

	approval := domain.CompanyPending
	if creatorRole == domain.RoleAdmin {
		approval = domain.CompanyApproved
	}

	company := domain.Company{
		CompanyID:    uuid.NewString(),
		TaxID:        req.TaxID,
		Name:         req.Name,
		BusinessLine: req.BusinessLine,
		Address:      req.Address,
		Region:       req.Region,
		Commune:      req.Commune,
		Approval:     approval,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompanyByID retrieves a company by its ID.
func (s *CompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ListCompanies retrieves companies, optionally filtered by approval.
func (s *CompanyService) ListCompanies(ctx context.Context, approval domain.CompanyApproval, limit, offset int) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx, approval, limit, offset)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

// ListCompanyUsers retrieves the users linked to a company.
func (s *CompanyService) ListCompanyUsers(ctx context.Context, companyID string) ([]domain.CompanyUser, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.companyRepo.ListCompanyUsers(ctx, companyID)
}

// ListUserCompanies retrieves the companies a user belongs to.
func (s *CompanyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	return s.companyRepo.ListUserCompanies(ctx, userID)
}

// UpdateCompany applies the provided fields to a company.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, updaterID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.BusinessLine != nil {
		company.BusinessLine = *req.BusinessLine
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Region != nil {
		company.Region = *req.Region
	}
	if req.Commune != nil {
		company.Commune = *req.Commune
	}
	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = updaterID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// setApproval moves a pending company to a terminal approval state.
func (s *CompanyService) setApproval(ctx context.Context, companyID, adminID string, target domain.CompanyApproval) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if company.Approval != domain.CompanyPending {
		return nil, apperrors.NewConflictError(fmt.Sprintf("company is already %s", company.Approval))
	}

	company.Approval = target
	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = adminID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, fmt.Errorf("failed to update company approval: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Company approval changed",
		"company_id", companyID, "approval", string(target))
	return company, nil
}

// ApproveCompany moves a pending company to approved.
func (s *CompanyService) ApproveCompany(ctx context.Context, companyID, adminID string) (*domain.Company, error) {
	return s.setApproval(ctx, companyID, adminID, domain.CompanyApproved)
}

// RejectCompany moves a pending company to rejected.
func (s *CompanyService) RejectCompany(ctx context.Context, companyID, adminID string) (*domain.Company, error) {
	return s.setApproval(ctx, companyID, adminID, domain.CompanyRejected)
}

// AssignUser links a user to a company.
func (s *CompanyService) AssignUser(ctx context.Context, companyID, userID, adminID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	link := domain.CompanyUser{
		CompanyID:  companyID,
		UserID:     userID,
		Active:     true,
		AssignedAt: time.Now().UTC(),
	}
	return s.companyRepo.AssignUser(ctx, link)
}

// RemoveUser deactivates a user link.
func (s *CompanyService) RemoveUser(ctx context.Context, companyID, userID string) error {
	return s.companyRepo.RemoveUser(ctx, companyID, userID)
}

// DeleteCompany removes a company and its user links.
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Company deleted", "company_id", companyID)
	return nil
}
