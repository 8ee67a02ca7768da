package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// MockWishlistStore implements store.WishlistStore for testing.
type MockWishlistStore struct {
	FindPageFn func(ctx context.Context, userID uuid.UUID, page store.PageRequest) ([]domain.WishlistItem, int64, error)
	InsertFn   func(ctx context.Context, item *domain.WishlistItem) error
	RemoveFn   func(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	Items []domain.WishlistItem
	Err   error

	InsertCalls int
	RemoveCalls int
}

// NewMockWishlistStore creates a mock store with initialized defaults.
func NewMockWishlistStore() *MockWishlistStore {
	return &MockWishlistStore{}
}

// FindPage implements the store.WishlistStore interface.
func (m *MockWishlistStore) FindPage(
	ctx context.Context,
	userID uuid.UUID,
	page store.PageRequest,
) ([]domain.WishlistItem, int64, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, userID, page)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}
	items := make([]domain.WishlistItem, 0, len(m.Items))
	for _, item := range m.Items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, int64(len(items)), nil
}

// Insert implements the store.WishlistStore interface.
func (m *MockWishlistStore) Insert(ctx context.Context, item *domain.WishlistItem) error {
	m.InsertCalls++
	if m.InsertFn != nil {
		return m.InsertFn(ctx, item)
	}
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.Items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			return store.ErrDuplicate
		}
	}
	m.Items = append(m.Items, *item)
	return nil
}

// Remove implements the store.WishlistStore interface.
func (m *MockWishlistStore) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	m.RemoveCalls++
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, userID, productID)
	}
	if m.Err != nil {
		return false, m.Err
	}
	for i, item := range m.Items {
		if item.UserID == userID && item.ProductID == productID {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
