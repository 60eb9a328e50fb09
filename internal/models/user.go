package models

// User represents an application user. Admins share the table and are
// distinguished by the role column.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Region       string `json:"region"`
	Commune      string `json:"commune"`
	Role         string `json:"role" db:"role"`
	AuditFields
}
