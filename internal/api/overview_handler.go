package api

import (
	"net/http"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/service"
)

// OverviewHandler exposes the dashboard overview endpoint. Mounted
// behind the staff role requirement.
type OverviewHandler struct {
	overview *service.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(overview *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overview: overview}
}

// Get handles GET /dashboard/overview.
func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	shared.WriteEnvelope(w, r, 0, h.overview.Get(r.Context()))
}
