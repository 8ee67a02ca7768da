// Package service contains the application-specific use cases. Each
// service orchestrates domain entities and persistence ports (defined
// in internal/store) for one area of the system: catalog, users,
// orders, wishlists and the dashboard overview.
//
// Services return response envelopes rather than errors. Every
// operation yields a shared.Envelope or shared.PagedEnvelope whose
// failure kind classifies what went wrong; transport code maps the
// kind to a status code and never inspects raw errors. Store errors
// are classified once, in this package, and unexpected failures are
// logged here with the request's trace ID before being flattened into
// a generic envelope.
//
// Services receive their dependencies through constructor injection
// and depend only on domain types and store interfaces, never on a
// concrete database or HTTP layer.
package service
