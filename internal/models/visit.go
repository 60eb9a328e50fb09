package models

import "time"

// Visit is a scheduled site visit row. The (visit_date, visit_time) pair
// is unique.
type Visit struct {
	VisitID      string    `json:"visitID"`
	UserID       string    `json:"userID" db:"user_id"`
	CompanyID    *string   `json:"companyID,omitempty" db:"company_id"`
	QuoteID      *string   `json:"quoteID,omitempty" db:"quote_id"`
	VisitDate    time.Time `json:"visitDate" db:"visit_date"`
	VisitTime    string    `json:"visitTime" db:"visit_time"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	Observations string    `json:"observations"`
	AdminID      string    `json:"adminID" db:"admin_id"`
	AuditFields
}
