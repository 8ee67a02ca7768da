package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	FindFn     func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindPageFn func(ctx context.Context, page store.PageRequest, filter store.CategoryFilter) ([]domain.Category, int64, error)
	InsertFn   func(ctx context.Context, category *domain.Category) error
	ReplaceFn  func(ctx context.Context, id uuid.UUID, category *domain.Category) (bool, error)
	RemoveFn   func(ctx context.Context, id uuid.UUID) (bool, error)

	Categories map[uuid.UUID]*domain.Category
	Err        error

	InsertCalls  int
	ReplaceCalls int
	RemoveCalls  int
}

// NewMockCategoryStore creates a mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{Categories: make(map[uuid.UUID]*domain.Category)}
}

// Find implements the store.CategoryStore interface.
func (m *MockCategoryStore) Find(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	category, ok := m.Categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

// FindPage implements the store.CategoryStore interface.
func (m *MockCategoryStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.CategoryFilter,
) ([]domain.Category, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, page, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		items = append(items, *category)
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.CategoryStore interface.
func (m *MockCategoryStore) Insert(ctx context.Context, category *domain.Category) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, category)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Categories[category.ID] = category
	return nil
}

// Replace implements the store.CategoryStore interface.
func (m *MockCategoryStore) Replace(ctx context.Context, id uuid.UUID, category *domain.Category) (bool, error) {
	m.ReplaceCalls++
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, id, category)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Categories[id]; !ok {
		return false, nil
	}
	m.Categories[id] = category
	return true, nil
}

// Remove implements the store.CategoryStore interface.
func (m *MockCategoryStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Categories[id]; !ok {
		return false, nil
	}
	delete(m.Categories, id)
	return true, nil
}
