package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/config"
	"github.com/stockroomhq/stockroom-api/internal/service"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// UserHandler exposes the admin user management endpoints. The router
// mounts it behind the admin role requirement.
type UserHandler struct {
	users      *service.UserService
	pagination config.PaginationConfig
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, pagination config.PaginationConfig) *UserHandler {
	return &UserHandler{users: users, pagination: pagination}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePageParams(r, h.pagination.DefaultPageSize, h.pagination.MaxPageSize)
	filter := store.UserFilter{
		Search: r.URL.Query().Get("search"),
		Role:   r.URL.Query().Get("role"),
	}
	shared.WritePagedEnvelope(w, r, h.users.List(r.Context(), page, filter))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.users.Get(r.Context(), id))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, http.StatusCreated, h.users.Create(r.Context(), input))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if !decodeBody(w, r, &input) {
		return
	}
	shared.WriteEnvelope(w, r, 0, h.users.Update(r.Context(), id, input))
}

// Delete handles DELETE /users/{id}. Admins cannot delete their own
// account; the last admin locking everyone out is not worth the
// symmetry.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if id == caller.UserID {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[struct{}](shared.KindValidation, "validation failed", "cannot delete your own account"))
		return
	}
	shared.WriteEnvelope(w, r, 0, h.users.Delete(r.Context(), id))
}
