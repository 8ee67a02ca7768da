package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// CategoryHandler exposes the category endpoints.
type CategoryHandler struct {
	categories *service.CategoryService
	pagination config.PaginationConfig
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService, pagination config.PaginationConfig) *CategoryHandler {
	return &CategoryHandler{categories: categories, pagination: pagination}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	filter := store.CategoryFilter{Search: r.URL.Query().Get("search")}
	shared.WritePagedEnvelope(w, r, h.categories.List(r.Context(), page, filter))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.categories.Get(r.Context(), id))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CategoryInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.categories.Create(r.Context(), input))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var input service.CategoryInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.categories.Update(r.Context(), id, input))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.categories.Delete(r.Context(), id))
}
