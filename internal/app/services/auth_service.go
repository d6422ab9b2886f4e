package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/app/repositories"
	"github.com/kritsada/alumnihub/internal/pkg/apperrors"
	"github.com/kritsada/alumnihub/internal/pkg/auth"
)

// AuthService handles admin authentication
type AuthService struct {
	repo   AdminUserStore
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(repo AdminUserStore, jwt *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		jwt:    jwt,
		logger: logger,
	}
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwt.GenerateAccessToken(admin.ID, admin.Username, string(admin.Role))
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn().Err(err).Int64("adminId", admin.ID).Msg("Failed to record last login")
	}

	s.logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Admin:     *admin,
	}, nil
}

// GetProfile returns the authenticated admin's profile.
func (s *AuthService) GetProfile(ctx context.Context, adminID int64) (*dto.LoginResponse, error) {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return &dto.LoginResponse{Admin: *admin}, nil
}
