package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing.
type MockProductStore struct {
	FindFn     func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindPageFn func(ctx context.Context, page store.PageRequest, filter store.ProductFilter) ([]domain.Product, int64, error)
	InsertFn   func(ctx context.Context, product *domain.Product) error
	ReplaceFn  func(ctx context.Context, id uuid.UUID, product *domain.Product) (bool, error)
	RemoveFn   func(ctx context.Context, id uuid.UUID) (bool, error)

	Products map[uuid.UUID]*domain.Product
	Err      error

	InsertCalls  int
	ReplaceCalls int
	RemoveCalls  int
}

// NewMockProductStore creates a mock store with initialized defaults.
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{Products: make(map[uuid.UUID]*domain.Product)}
}

// Find implements the store.ProductStore interface.
func (m *MockProductStore) Find(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	product, ok := m.Products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

// FindPage implements the store.ProductStore interface.
func (m *MockProductStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.ProductFilter,
) ([]domain.Product, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, page, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.Product, 0, len(m.Products))
	for _, product := range m.Products {
		items = append(items, *product)
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.ProductStore interface.
func (m *MockProductStore) Insert(ctx context.Context, product *domain.Product) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, product)
	}
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Products {
		if existing.SKU == product.SKU {
			return store.ErrSKUExists
		}
	}
	m.Products[product.ID] = product
	return nil
}

// Replace implements the store.ProductStore interface.
func (m *MockProductStore) Replace(ctx context.Context, id uuid.UUID, product *domain.Product) (bool, error) {
	m.ReplaceCalls++
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, id, product)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Products[id]; !ok {
		return false, nil
	}
	m.Products[id] = product
	return true, nil
}

// Remove implements the store.ProductStore interface.
func (m *MockProductStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Products[id]; !ok {
		return false, nil
	}
	delete(m.Products, id)
	return true, nil
}
