package domain

import "time"

// RequestStatus is the lifecycle state of a public quote request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestInReview  RequestStatus = "in_review"
	RequestQuoted    RequestStatus = "quoted"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

// RequestUrgency is the requester-declared urgency of a quote request.
type RequestUrgency string

const (
	UrgencyLow    RequestUrgency = "low"
	UrgencyMedium RequestUrgency = "medium"
	UrgencyHigh   RequestUrgency = "high"
)

// QuoteRequest is a public, unauthenticated intake form entry. It is later
// promoted by an administrator into a full Quote, optionally auto-creating
// the user and company records from its residual data.
type QuoteRequest struct {
	RequestID        string         `json:"requestID"`
	Number           string         `json:"number"` // "SOL-NNNNNN", unique, monotonic
	Kind             QuoteKind      `json:"kind"`   // user or company request
	RequesterName    string         `json:"requesterName"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	CompanyName      *string        `json:"companyName,omitempty"`
	CompanyTaxID     *string        `json:"companyTaxID,omitempty"`
	BusinessLine     *string        `json:"businessLine,omitempty"`
	Address          string         `json:"address"`
	Region           string         `json:"region"`
	Commune          string         `json:"commune"`
	WasteDescription string         `json:"wasteDescription"`
	EstimatedAmount  string         `json:"estimatedAmount"`
	PickupFrequency  string         `json:"pickupFrequency"`
	FrequencyDetail  string         `json:"frequencyDetail"`
	Observations     string         `json:"observations"`
	Urgency          RequestUrgency `json:"urgency"`
	Status           RequestStatus  `json:"status"`
	AdminID          *string        `json:"adminID,omitempty"` // assigned reviewer
	QuoteID          *string        `json:"quoteID,omitempty"` // set once promoted
	QuoteNumber      *string        `json:"quoteNumber,omitempty"`
	RejectReason     string         `json:"rejectReason,omitempty"`
	RequestedAt      time.Time      `json:"requestedAt"`
	ReviewedAt       *time.Time     `json:"reviewedAt,omitempty"`
	QuotedAt         *time.Time     `json:"quotedAt,omitempty"`
	AuditFields
}

// RequestStats aggregates intake request counts for the admin dashboard.
type RequestStats struct {
	Total     int                    `json:"total"`
	ByStatus  map[RequestStatus]int  `json:"byStatus"`
	ByKind    map[QuoteKind]int      `json:"byKind"`
	ByUrgency map[RequestUrgency]int `json:"byUrgency"`
}

// PromotionResult reports what promoting an intake request produced. The
// temp password is returned once and never stored in clear.
type PromotionResult struct {
	User         User     `json:"user"`
	UserCreated  bool     `json:"userCreated"`
	TempPassword string   `json:"tempPassword,omitempty"`
	Company      *Company `json:"company,omitempty"`
	Notes        []string `json:"notes,omitempty"`
}
