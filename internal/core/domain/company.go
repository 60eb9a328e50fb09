package domain

import "time"

// CompanyApproval is the review state of a registered company.
// A company leaves "pending" exactly once; approve/reject from any other
// state is a conflict.
type CompanyApproval string

const (
	CompanyPending  CompanyApproval = "pending"
	CompanyApproved CompanyApproval = "approved"
	CompanyRejected CompanyApproval = "rejected"
)

// Company represents a client organization identified by its tax id (RUT).
type Company struct {
	CompanyID    string          `json:"companyID"`
	TaxID        string          `json:"taxID"` // unique
	Name         string          `json:"name"`
	BusinessLine string          `json:"businessLine"`
	Address      string          `json:"address"`
	Region       string          `json:"region"`
	Commune      string          `json:"commune"`
	Approval     CompanyApproval `json:"approval"`
	AuditFields
}

// CompanyUser is the active-flag join between companies and users.
type CompanyUser struct {
	CompanyID  string    `json:"companyID"`
	UserID     string    `json:"userID"`
	Active     bool      `json:"active"`
	AssignedAt time.Time `json:"assignedAt"`
}
