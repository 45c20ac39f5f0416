package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/apperrors"
	"github.com/hexadigitall/platform/internal/pkg/auth"
)

// BootstrapAdmin is the legacy environment-configured administrator. It
// authenticates against configuration when no user row matches, and the
// tokens it receives carry no user id, so the guard trusts their role
// without a live directory re-check.
type BootstrapAdmin struct {
	Username string
	Password string
}

// AuthService handles login and token issuance
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	bootstrap  BootstrapAdmin
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, bootstrap BootstrapAdmin, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bootstrap:  bootstrap,
		logger:     logger,
	}
}

// Login verifies credentials and issues a session token. A suspended
// account never authenticates regardless of credential correctness.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return s.loginBootstrap(req)
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash, user.PasswordSalt) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsSuspended() {
		return nil, apperrors.ErrAccountSuspended
	}

	if err := checkRequiredRole(string(user.Role), req.RequiredRole); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Non-fatal: the login itself succeeded.
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresIn: expiresIn,
	}, nil
}

// loginBootstrap handles the legacy configuration-backed administrator.
func (s *AuthService) loginBootstrap(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.bootstrap.Username == "" || s.bootstrap.Password == "" || req.Username != s.bootstrap.Username {
		return nil, apperrors.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.bootstrap.Password)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := checkRequiredRole(string(models.RoleAdmin), req.RequiredRole); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(0, s.bootstrap.Username, string(models.RoleAdmin))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", s.bootstrap.Username).Msg("Bootstrap administrator logged in")

	return &dto.LoginResponse{
		Token:     token,
		Username:  s.bootstrap.Username,
		Role:      string(models.RoleAdmin),
		ExpiresIn: expiresIn,
	}, nil
}

// checkRequiredRole rejects a login pinned to a section the resolved role
// cannot access. Admins pass every section.
func checkRequiredRole(role, required string) error {
	if required == "" || role == required || role == string(models.RoleAdmin) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}
