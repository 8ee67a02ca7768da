package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT session tokens.
// Validation is stateless apart from the optional revocation check; a
// token must be re-validated on every protected request, never cached.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity and role claims.
	GenerateToken(ctx context.Context, userID uuid.UUID, roles []string) (string, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrRevokedToken or ErrInvalidToken on
	// failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed refresh token with a longer
	// lifetime, used to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID, roles []string) (string, error)

	// ValidateRefreshToken validates a refresh token and extracts its
	// claims. Returns ErrExpiredRefreshToken, ErrRevokedToken or
	// ErrInvalidRefreshToken on failure.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// Revoke adds the token's ID to the revocation list for the
	// remainder of its lifetime. A no-op when no revocation list is
	// configured.
	Revoke(ctx context.Context, tokenString string) error
}

// RevocationList is the optional collaborator consulted during token
// validation. Implementations must be safe for concurrent use.
type RevocationList interface {
	// Revoke marks the token ID as revoked until its expiry.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether the token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Claims represents the custom claims carried by session tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Roles are the role claims granted to the user at issue time.
	Roles []string `json:"roles,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	// Used to prevent token misuse across different contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
