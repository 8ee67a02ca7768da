package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// WishlistStore defines the persistence port for wishlist items.
type WishlistStore interface {
	// FindPage returns one page of a user's wishlist items, newest
	// first, and the total number of items on the list.
	FindPage(ctx context.Context, userID uuid.UUID, page PageRequest) ([]domain.WishlistItem, int64, error)

	// Insert saves a wishlist item.
	// Returns ErrDuplicate if the product is already on the list.
	Insert(ctx context.Context, item *domain.WishlistItem) error

	// Remove deletes a product from a user's wishlist.
	// Returns false when no row matched.
	Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
