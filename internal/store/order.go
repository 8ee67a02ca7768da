package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// OrderStore defines the persistence port for orders and their items.
type OrderStore interface {
	// Find retrieves an order by ID, including its items.
	// Returns ErrOrderNotFound if the order does not exist.
	Find(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// FindPage returns one page of orders matching the filter and the
	// total number of matching rows, consistent within the call.
	// Items are populated on every returned order.
	FindPage(ctx context.Context, page PageRequest, filter OrderFilter) ([]domain.Order, int64, error)

	// Insert saves a new order with its items atomically.
	Insert(ctx context.Context, order *domain.Order) error

	// UpdateStatus sets the status of the order with the given ID.
	// Returns false when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)

	// Remove deletes the order with the given ID together with its items.
	// Returns false when no row matched.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}
