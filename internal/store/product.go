package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// ProductStore defines the persistence port for products.
type ProductStore interface {
	// Find retrieves a product by ID.
	// Returns ErrProductNotFound if the product does not exist.
	Find(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// FindPage returns one page of products matching the filter and the
	// total number of matching rows, consistent within the call.
	FindPage(ctx context.Context, page PageRequest, filter ProductFilter) ([]domain.Product, int64, error)

	// Insert saves a new product.
	// Returns ErrSKUExists if the SKU is already taken.
	Insert(ctx context.Context, product *domain.Product) error

	// Replace overwrites the product with the given ID.
	// Returns false when no row matched.
	Replace(ctx context.Context, id uuid.UUID, product *domain.Product) (bool, error)

	// Remove deletes the product with the given ID.
	// Returns false when no row matched.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}
