// Package service contains the per-entity orchestration layer. Each
// service validates its input, invokes the persistence ports and shapes
// every outcome into a response envelope; no error value ever crosses
// into the transport layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/platform/logger"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// Envelope messages shared by every service. The not-found message is
// part of the API contract.
const (
	msgNotFound   = "resource not found"
	msgValidation = "validation failed"
	msgConflict   = "conflicting resource state"
	msgUnexpected = "an unexpected error occurred"
)

// ServiceError is a custom error type carrying the failing operation.
// It is logged server-side; clients only ever see envelope messages.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// failFromError converts a store error into a failure envelope.
// Anticipated failures (not found, duplicates, constraint conflicts)
// map to their kinds; anything else is logged with full context and
// surfaced as a generic failure without leaking internals.
func failFromError[T any](ctx context.Context, log *slog.Logger, operation string, err error) shared.Envelope[T] {
	kind, message, errs := classify(ctx, log, operation, err)
	return shared.Fail[T](kind, message, errs...)
}

// failPageFromError is failFromError for paged envelopes.
func failPageFromError[T any](ctx context.Context, log *slog.Logger, operation string, err error) shared.PagedEnvelope[T] {
	kind, message, errs := classify(ctx, log, operation, err)
	return shared.FailPage[T](kind, message, errs...)
}

func classify(ctx context.Context, log *slog.Logger, operation string, err error) (shared.FailureKind, string, []string) {
	switch {
	case store.IsNotFoundError(err):
		return shared.KindNotFound, msgNotFound, []string{msgNotFound}
	case store.IsDuplicateError(err):
		return shared.KindConflict, msgConflict, []string{duplicateMessage(err)}
	case errors.Is(err, store.ErrConflict):
		return shared.KindConflict, msgConflict, []string{err.Error()}
	default:
		logger.FromContextOrDefault(ctx, log).Error("unexpected service failure",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
		return shared.KindUnexpected, msgUnexpected, []string{msgUnexpected}
	}
}

func duplicateMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "email is already in use"
	case errors.Is(err, store.ErrSKUExists):
		return "sku is already in use"
	default:
		return "resource already exists"
	}
}
