package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrenany/api-felmart/internal/apperrors"
	"github.com/andrenany/api-felmart/internal/core/domain"
	portsrepo "github.com/andrenany/api-felmart/internal/core/ports/repositories"
	portssvc "github.com/andrenany/api-felmart/internal/core/ports/services"
	"github.com/andrenany/api-felmart/internal/dto"
	"github.com/andrenany/api-felmart/internal/middleware"
	"github.com/andrenany/api-felmart/internal/platform/config"
	"github.com/andrenany/api-felmart/internal/platform/mailer"
	"github.com/andrenany/api-felmart/internal/utils"
)

// resetTokenTTL bounds how long a password reset token can be redeemed.
const resetTokenTTL = time.Hour

type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	sender   portssvc.EmailSender
	cfg      *config.Config
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, sender portssvc.EmailSender, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, sender: sender, cfg: cfg}
}

// Register creates a new user account with the user role.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Address:      req.Address,
		Phone:        req.Phone,
		Region:       req.Region,
		Commune:      req.Commune,
		Role:         domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("User registered", "user_id", user.UserID)
	return &user, nil
}

// Login verifies credentials and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown email and wrong password
			return "", nil, apperrors.NewAppError(401, "invalid credentials", nil)
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, apperrors.NewAppError(401, "invalid credentials", nil)
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

// hashResetToken derives the stored form of a reset token. Only the hash is
// persisted, so a database leak does not expose redeemable tokens.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RequestPasswordReset issues a reset token and emails it to the user.
// Unknown emails are silently ignored so the endpoint does not reveal which
// addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req dto.ForgotPasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(resetTokenTTL)
	if err := s.userRepo.SaveResetToken(ctx, user.UserID, hashResetToken(token), expiresAt); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	if err := s.sender.Send(ctx, portssvc.Email{
		To:       []string{user.Email},
		Subject:  "Restablecimiento de contraseña - FELMART",
		HTMLBody: mailer.PasswordResetEmailBody(user.Name, token),
	}); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	logger.Info("Password reset token issued", "user_id", user.UserID)
	return nil
}

// ResetPassword redeems an unexpired reset token for a new password. The
// token is single use: redeeming it clears it.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByResetToken(ctx, hashResetToken(req.Token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("reset token is invalid or expired")
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if err := utils.ValidatePasswordStrength(req.NewPassword); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ResetPassword(ctx, user.UserID, hash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Password reset", "user_id", user.UserID)
	return nil
}
