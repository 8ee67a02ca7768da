package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// ProductHandler exposes the product catalog endpoints.
type ProductHandler struct {
	products   *service.ProductService
	pagination config.PaginationConfig
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *service.ProductService, pagination config.PaginationConfig) *ProductHandler {
	return &ProductHandler{products: products, pagination: pagination}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	filter := store.ProductFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := r.URL.Query().Get("supplierId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.SupplierID = &id
		}
	}

	shared.WritePagedEnvelope(w, r, h.products.List(r.Context(), page, filter))
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.products.Get(r.Context(), id))
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProductInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.products.Create(r.Context(), input))
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var input service.UpdateProductInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.products.Update(r.Context(), id, input))
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.products.Delete(r.Context(), id))
}
