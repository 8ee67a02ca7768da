package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// StatusForKind maps a failure kind to its transport status code.
// Success envelopes always go out as the status the handler picked
// (usually 200 or 201); the envelope content, not the code, is
// authoritative for client branching.
func StatusForKind(kind FailureKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteEnvelope writes an envelope, deriving the status code from the
// envelope's kind. successStatus is used when the envelope succeeded
// (pass http.StatusCreated for creations, 0 for plain 200).
func WriteEnvelope[T any](w http.ResponseWriter, r *http.Request, successStatus int, env Envelope[T]) {
	status := statusFor(env.Success, env.Kind, successStatus)
	logFailure(r, status, env.Message, env.Errors)
	RespondWithJSON(w, r, status, env)
}

// WritePagedEnvelope writes a paged envelope the same way WriteEnvelope
// writes a single-value one.
func WritePagedEnvelope[T any](w http.ResponseWriter, r *http.Request, env PagedEnvelope[T]) {
	status := statusFor(env.Success, env.Kind, 0)
	logFailure(r, status, env.Message, env.Errors)
	RespondWithJSON(w, r, status, env)
}

func statusFor(success bool, kind FailureKind, successStatus int) int {
	if success {
		if successStatus > 0 {
			return successStatus
		}
		return http.StatusOK
	}
	return StatusForKind(kind)
}

// logFailure logs failure responses: 5xx at ERROR with full context,
// 4xx at DEBUG. Success responses are not logged here; the request
// logger middleware already covers them.
func logFailure(r *http.Request, status int, message string, errs []string) {
	if status < http.StatusBadRequest {
		return
	}
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "API failure response",
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.Any("errors", errs))
}
