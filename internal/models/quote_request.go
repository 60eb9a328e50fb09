package models

import "time"

// QuoteRequest is an inbound request for quotation from the public form.
type QuoteRequest struct {
	RequestID        string     `json:"requestID"`
	Number           string     `json:"number" db:"number"`
	Kind             string     `json:"kind"`
	RequesterName    string     `json:"requesterName" db:"requester_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	CompanyName      *string    `json:"companyName,omitempty" db:"company_name"`
	CompanyTaxID     *string    `json:"companyTaxID,omitempty" db:"company_tax_id"`
	BusinessLine     *string    `json:"businessLine,omitempty" db:"business_line"`
	Address          string     `json:"address"`
	Region           string     `json:"region"`
	Commune          string     `json:"commune"`
	WasteDescription string     `json:"wasteDescription" db:"waste_description"`
	EstimatedAmount  string     `json:"estimatedAmount" db:"estimated_amount"`
	PickupFrequency  string     `json:"pickupFrequency" db:"pickup_frequency"`
	FrequencyDetail  string     `json:"frequencyDetail" db:"frequency_detail"`
	Observations     string     `json:"observations"`
	Urgency          string     `json:"urgency"`
	Status           string     `json:"status"`
	AdminID          *string    `json:"adminID,omitempty" db:"admin_id"`
	QuoteID          *string    `json:"quoteID,omitempty" db:"quote_id"`
	QuoteNumber      *string    `json:"quoteNumber,omitempty" db:"quote_number"`
	RejectReason     string     `json:"rejectReason" db:"reject_reason"`
	RequestedAt      time.Time  `json:"requestedAt" db:"requested_at"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
	QuotedAt         *time.Time `json:"quotedAt,omitempty" db:"quoted_at"`
	AuditFields
}
