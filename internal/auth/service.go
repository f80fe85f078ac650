// Package auth authenticates the club admin against the bootstrap credentials
// and issues the JWTs that guard roster management. There is no admin table;
// the single admin account lives in configuration.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/clubops/checkin-api/internal/config"
	"github.com/clubops/checkin-api/internal/shared/logger"
	"github.com/clubops/checkin-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	admin        config.AdminConfig
	tokenManager token.Manager
}

func NewService(cfg *config.Config, tokenManager token.Manager) *Service {
	return &Service{
		admin:        cfg.Admin,
		tokenManager: tokenManager,
	}
}

// Login verifies the credentials and issues an access/refresh token pair.
// Username comparison is constant-time alongside the bcrypt check so a wrong
// username and a wrong password are indistinguishable to a caller.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))

	if !usernameOK || passwordErr != nil {
		log.Info("admin login rejected", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(s.admin.Username)
	if err != nil {
		log.Error("failed to generate access token", "operation", "login", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokenManager.GenerateRefreshToken(s.admin.Username)
	if err != nil {
		log.Error("failed to generate refresh token", "operation", "login", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("admin logged in", "username", s.admin.Username)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *Service) Refresh(ctx context.Context, req *RefreshRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := s.tokenManager.ValidateToken(req.RefreshToken)
	if err != nil {
		log.Info("refresh token rejected", "error", err)
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != token.REFRESH {
		log.Info("refresh attempted with non-refresh token", "token_type", claims.TokenType)
		return nil, ErrInvalidRefreshToken
	}
	if claims.Username != s.admin.Username {
		// Token minted for a username that no longer matches the configured
		// admin, e.g. after rotating credentials.
		log.Info("refresh token for unknown admin", "username", claims.Username)
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(claims.Username)
	if err != nil {
		log.Error("failed to generate access token", "operation", "refresh", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokenManager.GenerateRefreshToken(claims.Username)
	if err != nil {
		log.Error("failed to generate refresh token", "operation", "refresh", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
