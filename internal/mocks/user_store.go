package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. It keeps users
// in memory, keyed by ID, and counts writes so tests can assert that a
// rejected operation never reached the store.
type MockUserStore struct {
	FindFn        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	FindPageFn    func(ctx context.Context, page store.PageRequest, filter store.UserFilter) ([]domain.User, int64, error)
	InsertFn      func(ctx context.Context, user *domain.User) error
	ReplaceFn     func(ctx context.Context, id uuid.UUID, user *domain.User) (bool, error)
	RemoveFn      func(ctx context.Context, id uuid.UUID) (bool, error)

	Users map[uuid.UUID]*domain.User
	Err   error

	InsertCalls  int
	ReplaceCalls int
	RemoveCalls  int
}

// NewMockUserStore creates a mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[uuid.UUID]*domain.User)}
}

// Find implements the store.UserStore interface.
func (m *MockUserStore) Find(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByEmail implements the store.UserStore interface.
func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// FindPage implements the store.UserStore interface. The default
// implementation ignores the filter and returns all users as one page.
func (m *MockUserStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.UserFilter,
) ([]domain.User, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, page, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		items = append(items, *user)
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.UserStore interface.
func (m *MockUserStore) Insert(ctx context.Context, user *domain.User) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, user)
	}
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	m.Users[user.ID] = user
	return nil
}

// Replace implements the store.UserStore interface.
func (m *MockUserStore) Replace(ctx context.Context, id uuid.UUID, user *domain.User) (bool, error) {
	m.ReplaceCalls++
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, id, user)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Users[id]; !ok {
		return false, nil
	}
	m.Users[id] = user
	return true, nil
}

// Remove implements the store.UserStore interface.
func (m *MockUserStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Users[id]; !ok {
		return false, nil
	}
	delete(m.Users, id)
	return true, nil
}
