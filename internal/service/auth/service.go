package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/caredesk/homecare-backend-go/internal/domain/auth"
	"github.com/caredesk/homecare-backend-go/internal/domain/user"
	"github.com/caredesk/homecare-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.Service {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.Service.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.Service. The presented refresh token is rotated:
// it is revoked and a fresh pair is issued.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to get user: %w", err)
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(u)
}

// Logout implements auth.Service.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *authServiceImpl) issueTokens(u user.User) (auth.LoginResponse, string, int64, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	response := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		UserID:      u.ID,
		Role:        string(u.Role),
	}
	return response, refreshToken, refreshExpiresAt, nil
}
