package services

import (
	"context"

	"github.com/andrenany/api-felmart/internal/core/domain"
	"github.com/andrenany/api-felmart/internal/dto"
)

// AuthSvcFacade handles registration and login.
type AuthSvcFacade interface {
	// Register creates a new user with the user role.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)

	// RequestPasswordReset issues a reset token and emails it to the user.
	// Unknown emails are silently ignored.
	RequestPasswordReset(ctx context.Context, req dto.ForgotPasswordRequest) error

	// ResetPassword redeems an unexpired reset token for a new password.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves users with pagination.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateUser applies the provided fields to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterID string) (*domain.User, error)

	// ChangePassword verifies the current password and sets a new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
