package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
)

// callerIdentity extracts the authenticated caller from the request
// context. When the identity is missing the middleware chain is broken;
// an unauthorized envelope is written and ok is false.
func callerIdentity(w http.ResponseWriter, r *http.Request) (shared.Identity, bool) {
	id, ok := shared.IdentityFromContext(r.Context())
	if !ok || id.UserID == uuid.Nil {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[struct{}](shared.KindUnauthorized, "unauthorized", "authentication required"))
		return shared.Identity{}, false
	}
	return id, true
}

// pathUUID parses the named chi URL parameter as a UUID. On failure a
// validation envelope is written and ok is false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[struct{}](shared.KindValidation, "validation failed", name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v. On failure a
// validation envelope is written and ok is false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.WriteEnvelope(w, r, 0,
			shared.Fail[struct{}](shared.KindValidation, "validation failed", "invalid request body"))
		return false
	}
	return true
}
