package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// SupplierHandler exposes the supplier endpoints.
type SupplierHandler struct {
	suppliers  *service.SupplierService
	pagination config.PaginationConfig
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(suppliers *service.SupplierService, pagination config.PaginationConfig) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, pagination: pagination}
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	filter := store.SupplierFilter{Search: r.URL.Query().Get("search")}
	shared.WritePagedEnvelope(w, r, h.suppliers.List(r.Context(), page, filter))
}

// Get handles GET /suppliers/{id}.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.suppliers.Get(r.Context(), id))
}

// Create handles POST /suppliers.
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.SupplierInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.suppliers.Create(r.Context(), input))
}

// Update handles PUT /suppliers/{id}.
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var input service.SupplierInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.suppliers.Update(r.Context(), id, input))
}

// Delete handles DELETE /suppliers/{id}.
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.suppliers.Delete(r.Context(), id))
}
