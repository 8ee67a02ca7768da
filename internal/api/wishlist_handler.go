package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
)

// WishlistHandler exposes the caller-scoped wishlist endpoints.
type WishlistHandler struct {
	wishlists  *service.WishlistService
	pagination config.PaginationConfig
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlists *service.WishlistService, pagination config.PaginationConfig) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, pagination: pagination}
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	shared.WritePagedEnvelope(w, r, h.wishlists.List(r.Context(), caller.UserID, page))
}

// Add handles POST /wishlist/{productId}.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.wishlists.Add(r.Context(), caller.UserID, productID))
}

// Remove handles DELETE /wishlist/{productId}.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.wishlists.Remove(r.Context(), caller.UserID, productID))
}
