package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/mocks"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

func newTestUserService(t *testing.T, users *mocks.MockUserStore, hasher *mocks.MockPasswordHasher) *UserService {
	t.Helper()
	svc, err := NewUserService(users, hasher, nil)
	require.NoError(t, err)
	return svc
}

func seedUser(t *testing.T, users *mocks.MockUserStore, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "Seed User", "password1234")
	require.NoError(t, err)
	user.Password = ""
	user.HashedPassword = "hashed:password1234"
	users.Users[user.ID] = user
	return user
}

func TestUserServiceCreate(t *testing.T) {
	t.Parallel()

	validInput := CreateUserInput{
		Email:       "new@example.com",
		DisplayName: "New User",
		Password:    "correct-horse-battery",
		Roles:       []string{domain.RoleStaff},
	}

	t.Run("hashes the password before storing", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := newTestUserService(t, users, hasher)

		env := svc.Create(context.Background(), validInput)
		require.True(t, env.Success)
		assert.Equal(t, 1, hasher.HashCallCount)
		assert.Equal(t, "hashed:correct-horse-battery", env.Data.HashedPassword)
		assert.Empty(t, env.Data.Password)

		stored := users.Users[env.Data.ID]
		require.NotNil(t, stored)
		assert.Empty(t, stored.Password)
		assert.Equal(t, "hashed:correct-horse-battery", stored.HashedPassword)
	})

	t.Run("applies the requested roles", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		svc := newTestUserService(t, users, &mocks.MockPasswordHasher{})

		env := svc.Create(context.Background(), validInput)
		require.True(t, env.Success)
		assert.Equal(t, []string{domain.RoleStaff}, env.Data.Roles)
	})

	t.Run("invalid role fails validation before hashing", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		hasher := &mocks.MockPasswordHasher{}
		svc := newTestUserService(t, users, hasher)

		input := validInput
		input.Roles = []string{"superuser"}

		env := svc.Create(context.Background(), input)
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, hasher.HashCallCount)
		assert.Zero(t, users.InsertCalls)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		seedUser(t, users, "new@example.com")
		svc := newTestUserService(t, users, &mocks.MockPasswordHasher{})

		env := svc.Create(context.Background(), validInput)
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindConflict, env.Kind)
		assert.Contains(t, env.Errors, "email is already in use")
	})
}

func TestUserServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("keeps the stored hash when no password given", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "old@example.com")
		hasher := &mocks.MockPasswordHasher{}
		svc := newTestUserService(t, users, hasher)

		env := svc.Update(context.Background(), user.ID, UpdateUserInput{
			Email:       "updated@example.com",
			DisplayName: "Updated Name",
			Roles:       []string{domain.RoleCustomer},
		})

		require.True(t, env.Success)
		assert.Zero(t, hasher.HashCallCount)
		assert.Equal(t, "hashed:password1234", env.Data.HashedPassword)
		assert.Equal(t, "updated@example.com", env.Data.Email)
	})

	t.Run("rehashes when a new password is supplied", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "old@example.com")
		hasher := &mocks.MockPasswordHasher{}
		svc := newTestUserService(t, users, hasher)

		env := svc.Update(context.Background(), user.ID, UpdateUserInput{
			Email:       "old@example.com",
			DisplayName: "Seed User",
			Password:    "a-fresh-password",
			Roles:       []string{domain.RoleCustomer},
		})

		require.True(t, env.Success)
		assert.Equal(t, 1, hasher.HashCallCount)
		assert.Equal(t, "hashed:a-fresh-password", env.Data.HashedPassword)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestUserService(t, mocks.NewMockUserStore(), &mocks.MockPasswordHasher{})

		env := svc.Update(context.Background(), uuid.New(), UpdateUserInput{
			Email:       "x@example.com",
			DisplayName: "Nobody",
			Roles:       []string{domain.RoleCustomer},
		})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})
}

func TestUserServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing user", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "gone@example.com")
		svc := newTestUserService(t, users, &mocks.MockPasswordHasher{})

		env := svc.Delete(context.Background(), user.ID)
		require.True(t, env.Success)
		assert.Empty(t, users.Users)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestUserService(t, mocks.NewMockUserStore(), &mocks.MockPasswordHasher{})

		env := svc.Delete(context.Background(), uuid.New())
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})
}

func TestUserServiceList(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	seedUser(t, users, "a@example.com")
	seedUser(t, users, "b@example.com")
	svc := newTestUserService(t, users, &mocks.MockPasswordHasher{})

	env := svc.List(context.Background(), shared.PageParams{Number: 1, Size: 20}, store.UserFilter{})
	require.True(t, env.Success)
	assert.Equal(t, int64(2), env.TotalRecords)
	assert.Len(t, env.Data, 2)
}
