package repositories

import (
	"context"
	"time"

	"github.com/andrenany/api-felmart/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Email is unique.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves users with pagination.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// ListAdmins retrieves every user with the admin role.
	ListAdmins(ctx context.Context) ([]domain.User, error)

	// FindUserByResetToken retrieves the user holding an unexpired reset
	// token hash.
	FindUserByResetToken(ctx context.Context, tokenHash string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error

	// SaveResetToken stores a password reset token hash with its expiry.
	// A new token replaces any previous one.
	SaveResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// ResetPassword sets a new password hash and clears the reset token.
	ResetPassword(ctx context.Context, userID, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
