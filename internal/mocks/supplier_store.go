package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockSupplierStore implements store.SupplierStore for testing.
type MockSupplierStore struct {
	FindFn     func(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	FindPageFn func(ctx context.Context, page store.PageRequest, filter store.SupplierFilter) ([]domain.Supplier, int64, error)
	InsertFn   func(ctx context.Context, supplier *domain.Supplier) error
	ReplaceFn  func(ctx context.Context, id uuid.UUID, supplier *domain.Supplier) (bool, error)
	RemoveFn   func(ctx context.Context, id uuid.UUID) (bool, error)

	Suppliers map[uuid.UUID]*domain.Supplier
	Err       error

	InsertCalls  int
	ReplaceCalls int
	RemoveCalls  int
}

// NewMockSupplierStore creates a mock store with initialized defaults.
func NewMockSupplierStore() *MockSupplierStore {
	return &MockSupplierStore{Suppliers: make(map[uuid.UUID]*domain.Supplier)}
}

// Find implements the store.SupplierStore interface.
func (m *MockSupplierStore) Find(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	supplier, ok := m.Suppliers[id]
	if !ok {
		return nil, store.ErrSupplierNotFound
	}
	copied := *supplier
	return &copied, nil
}

// FindPage implements the store.SupplierStore interface.
func (m *MockSupplierStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.SupplierFilter,
) ([]domain.Supplier, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, page, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.Supplier, 0, len(m.Suppliers))
	for _, supplier := range m.Suppliers {
		items = append(items, *supplier)
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.SupplierStore interface.
func (m *MockSupplierStore) Insert(ctx context.Context, supplier *domain.Supplier) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, supplier)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Suppliers[supplier.ID] = supplier
	return nil
}

// Replace implements the store.SupplierStore interface.
func (m *MockSupplierStore) Replace(ctx context.Context, id uuid.UUID, supplier *domain.Supplier) (bool, error) {
	m.ReplaceCalls++
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, id, supplier)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Suppliers[id]; !ok {
		return false, nil
	}
	m.Suppliers[id] = supplier
	return true, nil
}

// Remove implements the store.SupplierStore interface.
func (m *MockSupplierStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Suppliers[id]; !ok {
		return false, nil
	}
	delete(m.Suppliers, id)
	return true, nil
}
