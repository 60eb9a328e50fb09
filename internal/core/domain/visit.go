package domain

import "time"

// VisitReason is the purpose of a scheduled site visit.
type VisitReason string

const (
	VisitPickup     VisitReason = "pickup"
	VisitEvaluation VisitReason = "evaluation"
)

// VisitStatus is the client-facing state of a scheduled visit.
//
// Transitions: pending -> accepted, pending -> rejected,
// {pending, accepted} -> reprogram. Anything else is a conflict.
type VisitStatus string

const (
	VisitPending   VisitStatus = "pending"
	VisitAccepted  VisitStatus = "accepted"
	VisitReprogram VisitStatus = "reprogram"
	VisitRejected  VisitStatus = "rejected"
)

// Visit is a scheduled physical site visit. No two visits may occupy the
// same (date, time) slot.
type Visit struct {
	VisitID      string      `json:"visitID"`
	UserID       string      `json:"userID"`
	CompanyID    *string     `json:"companyID,omitempty"`
	QuoteID      *string     `json:"quoteID,omitempty"`
	VisitDate    time.Time   `json:"visitDate"` // date component only
	VisitTime    string      `json:"visitTime"` // "HH:MM"
	Reason       VisitReason `json:"reason"`
	Status       VisitStatus `json:"status"`
	Observations string      `json:"observations"`
	AdminID      string      `json:"adminID"`
	AuditFields
}
