package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// SupplierStore defines the persistence port for suppliers.
type SupplierStore interface {
	// Find retrieves a supplier by ID.
	// Returns ErrSupplierNotFound if the supplier does not exist.
	Find(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)

	// FindPage returns one page of suppliers matching the filter and
	// the total number of matching rows, consistent within the call.
	FindPage(ctx context.Context, page PageRequest, filter SupplierFilter) ([]domain.Supplier, int64, error)

	// Insert saves a new supplier.
	Insert(ctx context.Context, supplier *domain.Supplier) error

	// Replace overwrites the supplier with the given ID.
	// Returns false when no row matched.
	Replace(ctx context.Context, id uuid.UUID, supplier *domain.Supplier) (bool, error)

	// Remove deletes the supplier with the given ID.
	// Returns false when no row matched. Returns ErrConflict if
	// products still reference the supplier.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}
