package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// OrderHandler exposes the order endpoints. Ownership scoping happens
// in the service; the handler only carries the caller identity through.
type OrderHandler struct {
	orders     *service.OrderService
	pagination config.PaginationConfig
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *service.OrderService, pagination config.PaginationConfig) *OrderHandler {
	return &OrderHandler{orders: orders, pagination: pagination}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	filter := store.OrderFilter{Status: r.URL.Query().Get("status")}
	shared.WritePagedEnvelope(w, r, h.orders.List(r.Context(), caller, page, filter))
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.orders.Get(r.Context(), caller, id))
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var input service.CreateOrderInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.orders.Create(r.Context(), caller, input))
}

// UpdateStatus handles PATCH /orders/{id}/status. Mounted behind the
// staff role requirement.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var input service.UpdateOrderStatusInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.orders.UpdateStatus(r.Context(), id, input))
}
