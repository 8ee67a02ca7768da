package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// WishlistService provides per-user wishlist operations. The caller's
// identity scopes every call; there is no cross-user access.
type WishlistService struct {
	wishlists store.WishlistStore
	products  store.ProductStore
	logger    *slog.Logger
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlists store.WishlistStore, products store.ProductStore, logger *slog.Logger) (*WishlistService, error) {
	if wishlists == nil {
		return nil, domain.NewValidationError("wishlists", "cannot be nil", domain.ErrValidation)
	}
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WishlistService{
		wishlists: wishlists,
		products:  products,
		logger:    logger.With(slog.String("component", "wishlist_service")),
	}, nil
}

// List returns one page of the caller's wishlist, newest first.
func (s *WishlistService) List(
	ctx context.Context,
	userID uuid.UUID,
	page shared.PageParams,
) shared.PagedEnvelope[domain.WishlistItem] {
	items, total, err := s.wishlists.FindPage(ctx, userID, store.PageRequest{Number: page.Number, Size: page.Size})
	if err != nil {
		return failPageFromError[domain.WishlistItem](ctx, s.logger, "list_wishlist", err)
	}
	return shared.NewPage("wishlist retrieved", items, page, total)
}

// Add puts a product on the caller's wishlist. The product must exist;
// adding it twice is a conflict.
func (s *WishlistService) Add(ctx context.Context, userID, productID uuid.UUID) shared.Envelope[domain.WishlistItem] {
	if _, err := s.products.Find(ctx, productID); err != nil {
		return failFromError[domain.WishlistItem](ctx, s.logger, "add_wishlist_item", err)
	}

	item, err := domain.NewWishlistItem(userID, productID)
	if err != nil {
		return shared.Fail[domain.WishlistItem](shared.KindValidation, msgValidation, err.Error())
	}

	if err := s.wishlists.Insert(ctx, item); err != nil {
		return failFromError[domain.WishlistItem](ctx, s.logger, "add_wishlist_item", err)
	}

	return shared.OK("product added to wishlist", *item)
}

// Remove takes a product off the caller's wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, productID uuid.UUID) shared.Envelope[uuid.UUID] {
	matched, err := s.wishlists.Remove(ctx, userID, productID)
	if err != nil {
		return failFromError[uuid.UUID](ctx, s.logger, "remove_wishlist_item", err)
	}
	if !matched {
		return shared.Fail[uuid.UUID](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	return shared.OK("product removed from wishlist", productID)
}
