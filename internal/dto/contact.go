package dto

// ContactRequest defines the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse acknowledges a contact form submission.
type ContactResponse struct {
	Sent bool `json:"sent"`
}
