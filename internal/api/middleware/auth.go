package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes. The token is
// re-validated on every request; nothing about a previous request's
// validation is carried over.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the bearer token from the Authorization header
// and adds the caller's identity to the request context. Requests with
// a missing or invalid token receive an unauthorized failure envelope
// before any service logic runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeUnauthorized(w, r, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeUnauthorized(w, r, "invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				writeUnauthorized(w, r, "token expired")
			case auth.ErrRevokedToken:
				writeUnauthorized(w, r, "token revoked")
			case auth.ErrInvalidToken, auth.ErrWrongTokenType, auth.ErrTokenNotYetValid:
				writeUnauthorized(w, r, "invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				env := shared.Fail[struct{}](shared.KindUnexpected, "authentication error", "authentication error")
				shared.WriteEnvelope(w, r, 0, env)
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID: claims.UserID,
			Roles:  claims.Roles,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group on a role claim. It must run after
// Authenticate. An authenticated caller without any of the given roles
// receives a forbidden envelope.
func (m *AuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := shared.IdentityFromContext(r.Context())
			if !ok {
				writeUnauthorized(w, r, "authentication required")
				return
			}

			for _, role := range roles {
				if identity.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			env := shared.Fail[struct{}](shared.KindForbidden, "access denied", "insufficient role")
			shared.WriteEnvelope(w, r, 0, env)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	env := shared.Fail[struct{}](shared.KindUnauthorized, "unauthorized", reason)
	shared.WriteEnvelope(w, r, 0, env)
}
