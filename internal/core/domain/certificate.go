package domain

// Certificate is a disposal certificate file issued to a user, stored on
// disk and optionally delivered by email.
type Certificate struct {
	CertificateID string  `json:"certificateID"`
	UserID        string  `json:"userID"`
	CompanyID     *string `json:"companyID,omitempty"`
	VisitID       *string `json:"visitID,omitempty"`
	FileName      string  `json:"fileName"`
	StoredPath    string  `json:"-"`
	ContentType   string  `json:"contentType"`
	SizeBytes     int64   `json:"sizeBytes"`
	Description   string  `json:"description"`
	SentByEmail   bool    `json:"sentByEmail"`
	AuditFields
}
