package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/google/uuid"
)

// authService implements AuthSvc with bcrypt credentials and HS256 tokens.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvc {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the credentials. Unknown email and wrong password fail identically.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(500, "failed to generate access token", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// SeedAdmin creates the ADMIN user if it is missing. An existing user is left untouched.
func (s *authService) SeedAdmin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", apperrors.ErrValidation)
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		s.LogDebug(ctx, "Admin user already present", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return err
	}
	s.LogInfo(ctx, "Admin user seeded", slog.String("user_id", admin.UserID))
	return nil
}
