package dto

import (
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to register a company.
type CreateCompanyRequest struct {
	TaxID        string `json:"taxID" binding:"required,rut"`
	Name         string `json:"name" binding:"required"`
	BusinessLine string `json:"businessLine"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	Commune      string `json:"commune"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	BusinessLine *string `json:"businessLine"`
	Address      *string `json:"address"`
	Region       *string `json:"region"`
	Commune      *string `json:"commune"`
}

// AssignUserRequest links a user to a company.
type AssignUserRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID    string    `json:"companyID"`
	TaxID        string    `json:"taxID"`
	Name         string    `json:"name"`
	BusinessLine string    `json:"businessLine"`
	Address      string    `json:"address"`
	Region       string    `json:"region"`
	Commune      string    `json:"commune"`
	Approval     string    `json:"approval"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		TaxID:        c.TaxID,
		Name:         c.Name,
		BusinessLine: c.BusinessLine,
		Address:      c.Address,
		Region:       c.Region,
		Commune:      c.Commune,
		Approval:     string(c.Approval),
		CreatedAt:    c.CreatedAt,
	}
}

// ListCompaniesResponse wraps the list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to ListCompaniesResponse DTO
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	res := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCompanyResponse(&c)
	}
	return ListCompaniesResponse{Companies: res}
}
