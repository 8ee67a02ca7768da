package domain

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a product a user has saved for later.
type WishlistItem struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// NewWishlistItem creates a WishlistItem for the given user and product.
func NewWishlistItem(userID, productID uuid.UUID) (*WishlistItem, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, ErrInvalidID
	}
	return &WishlistItem{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now().UTC(),
	}, nil
}
