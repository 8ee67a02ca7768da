package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/mocks"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
)

func newTestAuthHandler(
	users *mocks.MockUserStore,
	jwtService *mocks.MockJWTService,
) (*AuthHandler, *mocks.MockPasswordHasher, *mocks.MockPasswordVerifier) {
	hasher := &mocks.MockPasswordHasher{}
	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	handler := NewAuthHandler(users, jwtService, hasher, verifier, time.Hour, nil)
	return handler, hasher, verifier
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedAccount(t *testing.T, users *mocks.MockUserStore, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "Existing User", "password-123456")
	require.NoError(t, err)
	user.Password = ""
	user.HashedPassword = "hashed:password-123456"
	users.Users[user.ID] = user
	return user
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	validPayload := RegisterRequest{
		Email:       "new@example.com",
		DisplayName: "New User",
		Password:    "password-123456",
	}

	t.Run("creates an account and returns tokens", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		handler, hasher, _ := newTestAuthHandler(users, jwtService)

		rec := postJSON(t, handler.Register, "/api/auth/register", validPayload)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBodyMap(t, rec)
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "new@example.com", data["email"])
		assert.Equal(t, "access-token", data["access_token"])
		assert.Equal(t, "refresh-token", data["refresh_token"])

		assert.Equal(t, 1, hasher.HashCallCount)
		require.Equal(t, 1, len(users.Users))
		for _, stored := range users.Users {
			assert.Empty(t, stored.Password)
			assert.Equal(t, "hashed:password-123456", stored.HashedPassword)
			assert.Equal(t, []string{domain.RoleCustomer}, stored.Roles)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		seedAccount(t, users, "new@example.com")
		handler, _, _ := newTestAuthHandler(users, &mocks.MockJWTService{})

		rec := postJSON(t, handler.Register, "/api/auth/register", validPayload)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeBodyMap(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Nil(t, body["data"])
	})

	t.Run("short password fails validation without touching the store", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		handler, _, _ := newTestAuthHandler(users, &mocks.MockJWTService{})

		payload := validPayload
		payload.Password = "short"
		rec := postJSON(t, handler.Register, "/api/auth/register", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, users.InsertCalls)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials yield tokens", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedAccount(t, users, "user@example.com")
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		handler, _, verifier := newTestAuthHandler(users, jwtService)

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "user@example.com",
			Password: "password-123456",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBodyMap(t, rec)
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, user.ID.String(), data["user_id"])
		assert.Equal(t, "access-token", data["access_token"])

		assert.Equal(t, user.HashedPassword, verifier.CompareCalledWith.HashedPassword)
		assert.Equal(t, "password-123456", verifier.CompareCalledWith.Password)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		seedAccount(t, users, "user@example.com")
		handler, _, verifier := newTestAuthHandler(users, &mocks.MockJWTService{})
		verifier.ShouldSucceed = false

		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password-123456",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "user@example.com",
			Password: "not-the-password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String())
	})
}

func TestAuthHandlerRefresh(t *testing.T) {
	t.Parallel()

	t.Run("rotates the refresh token", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedAccount(t, users, "user@example.com")
		user.Roles = []string{domain.RoleCustomer, domain.RoleStaff}

		jwtService := &mocks.MockJWTService{
			Token:        "new-access",
			RefreshToken: "new-refresh",
			Claims:       &auth.Claims{UserID: user.ID, TokenType: "refresh"},
		}
		handler, _, _ := newTestAuthHandler(users, jwtService)

		rec := postJSON(t, handler.Refresh, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBodyMap(t, rec)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "new-access", data["access_token"])
		assert.Equal(t, "new-refresh", data["refresh_token"])

		// The old token is dead once the new pair is issued.
		assert.Contains(t, jwtService.RevokedTokens, "old-refresh")

		// Roles come from the store, not the old token's claims.
		roles, ok := data["roles"].([]any)
		require.True(t, ok)
		assert.Len(t, roles, 2)
	})

	t.Run("expired refresh token is unauthorized", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredRefreshToken}
		handler, _, _ := newTestAuthHandler(users, jwtService)

		rec := postJSON(t, handler.Refresh, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "stale"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBodyMap(t, rec)
		assert.Contains(t, body["errors"], "refresh token has expired")
	})

	t.Run("deleted account is unauthorized", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: uuid.New(), TokenType: "refresh"},
		}
		handler, _, _ := newTestAuthHandler(mocks.NewMockUserStore(), jwtService)

		rec := postJSON(t, handler.Refresh, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "orphan"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	t.Parallel()

	t.Run("revokes both tokens", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{}
		handler, _, _ := newTestAuthHandler(mocks.NewMockUserStore(), jwtService)

		body, err := json.Marshal(LogoutRequest{RefreshToken: "the-refresh"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer the-access")
		rec := httptest.NewRecorder()

		handler.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"the-access", "the-refresh"}, jwtService.RevokedTokens)
	})

	t.Run("succeeds without a body", func(t *testing.T) {
		t.Parallel()

		handler, _, _ := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		handler.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBodyMap(t, rec)["success"])
	})
}

func TestAuthHandlerMe(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's profile", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedAccount(t, users, "user@example.com")
		handler, _, _ := newTestAuthHandler(users, &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		ctx := shared.WithIdentity(context.Background(), shared.Identity{UserID: user.ID, Roles: user.Roles})
		rec := httptest.NewRecorder()

		handler.Me(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBodyMap(t, rec)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user@example.com", data["email"])
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		t.Parallel()

		handler, _, _ := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
