package models

import "time"

// Company represents a client company.
type Company struct {
	CompanyID    string `json:"companyID"`
	TaxID        string `json:"taxID" db:"tax_id"`
	Name         string `json:"name"`
	BusinessLine string `json:"businessLine" db:"business_line"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	Commune      string `json:"commune"`
	Approval     string `json:"approval" db:"approval"`
	AuditFields
}

// CompanyUser links a user to a company.
type CompanyUser struct {
	CompanyID  string    `json:"companyID" db:"company_id"`
	UserID     string    `json:"userID" db:"user_id"`
	Active     bool      `json:"active" db:"active"`
	AssignedAt time.Time `json:"assignedAt" db:"assigned_at"`
}
