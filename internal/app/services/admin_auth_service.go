package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gcett/studentdir/internal/app/models/dto"
	"github.com/gcett/studentdir/internal/pkg/apperrors"
	"github.com/gcett/studentdir/internal/pkg/auth"
)

// AdminAuthService authenticates the single configured administrator
type AdminAuthService interface {
	// Login checks credentials and returns a signed session token
	Login(ctx context.Context, req *dto.AdminLoginRequest) (string, *dto.AdminSessionResponse, error)
	// Authenticate validates a session token and returns its admin email
	Authenticate(token string) (string, error)
}

// adminAuthServiceImpl implements AdminAuthService
type adminAuthServiceImpl struct {
	credentials auth.Credentials
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAdminAuthService creates a new AdminAuthService
func NewAdminAuthService(credentials auth.Credentials, jwtService *auth.JWTService, logger zerolog.Logger) AdminAuthService {
	return &adminAuthServiceImpl{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login implements AdminAuthService
func (s *adminAuthServiceImpl) Login(_ context.Context, req *dto.AdminLoginRequest) (string, *dto.AdminSessionResponse, error) {
	if req == nil || !s.credentials.Matches(req.Email, req.Password) {
		s.logger.Warn().Str("email", emailOf(req)).Msg("Rejected admin login")
		return "", nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid credentials")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, expiresAt, err := s.jwtService.GenerateAdminToken(email)
	if err != nil {
		return "", nil, fmt.Errorf("error generating admin token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("Admin logged in")
	return token, &dto.AdminSessionResponse{Email: email, ExpiresAt: expiresAt}, nil
}

// Authenticate implements AdminAuthService
func (s *adminAuthServiceImpl) Authenticate(token string) (string, error) {
	if token == "" {
		return "", apperrors.NewCustomError(apperrors.ErrUnauthorized, "Unauthorized")
	}
	claims, err := s.jwtService.ValidateToken(token)
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "", apperrors.NewCustomError(apperrors.ErrTokenExpired, "Session expired, please log in again")
	case err != nil:
		return "", apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Unauthorized")
	}
	return claims.Email, nil
}

func emailOf(req *dto.AdminLoginRequest) string {
	if req == nil {
		return ""
	}
	return req.Email
}
