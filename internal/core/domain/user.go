package domain

// UserRole distinguishes self-service clients from back-office administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered client or administrator.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"` // unique
	PasswordHash string   `json:"-"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Region       string   `json:"region"`
	Commune      string   `json:"commune"`
	Role         UserRole `json:"role"`
	AuditFields
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
