package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
// Each method uses the matching Fn override when set and falls back to
// the default fields otherwise.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID, roles []string) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID, roles []string) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
	RevokeFn               func(ctx context.Context, tokenString string) error

	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error
	ValidateErr  error

	RevokedTokens []string
}

// GenerateToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID, roles []string) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID, roles)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// GenerateRefreshToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID, roles []string) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID, roles)
	}
	return m.RefreshToken, m.Err
}

// ValidateRefreshToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// Revoke implements the auth.JWTService interface. Revoked tokens are
// recorded so tests can assert on them.
func (m *MockJWTService) Revoke(ctx context.Context, tokenString string) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, tokenString)
	}
	m.RevokedTokens = append(m.RevokedTokens, tokenString)
	return nil
}
