package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users         store.UserStore
	jwtService    auth.JWTService
	hasher        auth.PasswordHasher
	verifier      auth.PasswordVerifier
	tokenLifetime time.Duration
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokenLifetime time.Duration,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:         users,
		jwtService:    jwtService,
		hasher:        hasher,
		verifier:      verifier,
		tokenLifetime: tokenLifetime,
		logger:        logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register. New accounts always start with
// the customer role; role grants are an admin operation.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := shared.ValidateRequest(req); errs != nil {
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindValidation, "validation failed", errs...))
		return
	}

	user, err := domain.NewUser(req.Email, req.DisplayName, req.Password)
	if err != nil {
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindValidation, "validation failed", err.Error()))
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to hash password", slog.String("error", err.Error()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}
	user.Password = ""
	user.HashedPassword = hashed

	if err := h.users.Insert(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.WriteEnvelope(w, r, 0,
				shared.Fail[AuthResponse](shared.KindConflict, "email already registered", "email already registered"))
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to create user", slog.String("error", err.Error()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	h.respondWithTokens(w, r, http.StatusCreated, "registration successful", user)
}

// Login handles POST /auth/login. Unknown emails and wrong passwords
// yield the same envelope so the two cannot be told apart.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := shared.ValidateRequest(req); errs != nil {
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindValidation, "validation failed", errs...))
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.WriteEnvelope(w, r, 0,
				shared.Fail[AuthResponse](shared.KindUnauthorized, "invalid credentials", "invalid credentials"))
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to look up user", slog.String("error", err.Error()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[AuthResponse](shared.KindUnauthorized, "invalid credentials", "invalid credentials"))
		return
	}

	h.respondWithTokens(w, r, http.StatusOK, "login successful", user)
}

// Refresh handles POST /auth/refresh. The refresh token is rotated:
// the old one is revoked once the new pair has been issued, and roles
// are re-read from the store so grants and revocations take effect on
// the next refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := shared.ValidateRequest(req); errs != nil {
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindValidation, "validation failed", errs...))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[AuthResponse](shared.KindUnauthorized, "invalid refresh token", refreshFailureReason(err)))
		return
	}

	user, err := h.users.Find(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.WriteEnvelope(w, r, 0,
				shared.Fail[AuthResponse](shared.KindUnauthorized, "invalid refresh token", "account no longer exists"))
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to look up user", slog.String("error", err.Error()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	if err := h.jwtService.Revoke(r.Context(), req.RefreshToken); err != nil {
		h.logger.WarnContext(r.Context(), "failed to revoke rotated refresh token",
			slog.String("error", err.Error()))
	}

	h.respondWithTokens(w, r, http.StatusOK, "token refreshed", user)
}

// Logout handles POST /auth/logout. Both the presented access token and
// the refresh token from the body, when given, are revoked. Logout is
// idempotent; revoking an already-dead token still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	// The body is optional on logout.
	_ = shared.DecodeJSON(r, &req)

	if token := bearerToken(r); token != "" {
		if err := h.jwtService.Revoke(r.Context(), token); err != nil {
			h.logger.WarnContext(r.Context(), "failed to revoke access token", slog.String("error", err.Error()))
		}
	}
	if req.RefreshToken != "" {
		if err := h.jwtService.Revoke(r.Context(), req.RefreshToken); err != nil {
			h.logger.WarnContext(r.Context(), "failed to revoke refresh token", slog.String("error", err.Error()))
		}
	}

	shared.WriteEnvelope(w, r, 0, shared.OK("logged out", struct{}{}))
}

// Me handles GET /auth/me, returning the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.users.Find(r.Context(), caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.WriteEnvelope(w, r, 0,
				shared.Fail[domain.User](shared.KindNotFound, "resource not found", "resource not found"))
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to look up user", slog.String("error", err.Error()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[domain.User](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	shared.WriteEnvelope(w, r, 0, shared.OK("profile retrieved", *user))
}

func (h *AuthHandler) respondWithTokens(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	user *domain.User,
) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Roles)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to generate access token",
			slog.String("error", err.Error()), slog.String("user_id", user.ID.String()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user.ID, user.Roles)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to generate refresh token",
			slog.String("error", err.Error()), slog.String("user_id", user.ID.String()))
		shared.WriteEnvelope(w, r, 0, shared.Fail[AuthResponse](shared.KindUnexpected, "an unexpected failure occurred"))
		return
	}

	shared.WriteEnvelope(w, r, status, shared.OK(message, AuthResponse{
		UserID:       user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		Roles:        user.Roles,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(h.tokenLifetime).Format(time.RFC3339),
	}))
}

func refreshFailureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredRefreshToken):
		return "refresh token has expired"
	case errors.Is(err, auth.ErrRevokedToken):
		return "refresh token has been revoked"
	default:
		return "refresh token is invalid"
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
