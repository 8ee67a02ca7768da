package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	FindFn         func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindPageFn     func(ctx context.Context, page store.PageRequest, filter store.OrderFilter) ([]domain.Order, int64, error)
	InsertFn       func(ctx context.Context, order *domain.Order) error
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status string) (bool, error)
	RemoveFn       func(ctx context.Context, id uuid.UUID) (bool, error)

	Orders map[uuid.UUID]*domain.Order
	Err    error

	InsertCalls       int
	UpdateStatusCalls int
	RemoveCalls       int
}

// NewMockOrderStore creates a mock store with initialized defaults.
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{Orders: make(map[uuid.UUID]*domain.Order)}
}

// Find implements the store.OrderStore interface.
func (m *MockOrderStore) Find(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	order, ok := m.Orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// FindPage implements the store.OrderStore interface. The default
// implementation honors the UserID filter so ownership scoping tests
// work without an override.
func (m *MockOrderStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.OrderFilter,
) ([]domain.Order, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, page, filter)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.Order, 0, len(m.Orders))
	for _, order := range m.Orders {
		if filter.UserID != nil && order.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		items = append(items, *order)
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.OrderStore interface.
func (m *MockOrderStore) Insert(ctx context.Context, order *domain.Order) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, order)
	}
	if m.Err != nil {
		return m.Err
	}
	m.Orders[order.ID] = order
	return nil
}

// UpdateStatus implements the store.OrderStore interface.
func (m *MockOrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	m.UpdateStatusCalls++
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	if m.Err != nil {
		return false, m.Err
	}
	order, ok := m.Orders[id]
	if !ok {
		return false, nil
	}
	order.Status = status
	return true, nil
}

// Remove implements the store.OrderStore interface.
func (m *MockOrderStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.Orders[id]; !ok {
		return false, nil
	}
	delete(m.Orders, id)
	return true, nil
}
