package models

// Certificate is a stored disposal certificate file.
type Certificate struct {
	CertificateID string  `json:"certificateID"`
	UserID        string  `json:"userID" db:"user_id"`
	CompanyID     *string `json:"companyID,omitempty" db:"company_id"`
	VisitID       *string `json:"visitID,omitempty" db:"visit_id"`
	FileName      string  `json:"fileName" db:"file_name"`
	StoredPath    string  `json:"-" db:"stored_path"`
	ContentType   string  `json:"contentType" db:"content_type"`
	SizeBytes     int64   `json:"sizeBytes" db:"size_bytes"`
	Description   string  `json:"description"`
	SentByEmail   bool    `json:"sentByEmail" db:"sent_by_email"`
	AuditFields
}
