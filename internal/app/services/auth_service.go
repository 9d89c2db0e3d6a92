package services

import (
	"context"
	"fmt"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/auth"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// apiClientID identifies the single machine client tokens are issued to.
const apiClientID = "api-client"

// AuthService defines the interface for authentication operations
type AuthService interface {
	IssueToken(ctx context.Context, apiKey string) (*dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	jwtService *auth.JWTService
	apiKeyHash string
}

// NewAuthService creates a new auth service instance
func NewAuthService(jwtService *auth.JWTService, apiKeyHash string) AuthService {
	return &authServiceImpl{
		jwtService: jwtService,
		apiKeyHash: apiKeyHash,
	}
}

// IssueToken exchanges the configured API key for a signed access token
func (s *authServiceImpl) IssueToken(_ context.Context, apiKey string) (*dto.TokenResponse, error) {
	if s.apiKeyHash == "" || !auth.CheckAPIKey(s.apiKeyHash, apiKey) {
		logger.Warn().Msg("Token request with invalid API key")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(apiClientID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
	}, nil
}
