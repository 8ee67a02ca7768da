package store

import "github.com/google/uuid"

// PageRequest identifies one page of a list query. Both fields are
// expected to be normalized (Number ≥ 1, Size ≥ 1) before reaching a
// store; the shared envelope package owns clamping policy.
type PageRequest struct {
	Number int
	Size   int
}

// Offset returns the zero-based row offset for the page.
func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// ProductFilter narrows product list queries. Zero values mean "no
// constraint".
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
}

// CategoryFilter narrows category list queries.
type CategoryFilter struct {
	Search string
}

// SupplierFilter narrows supplier list queries.
type SupplierFilter struct {
	Search string
}

// UserFilter narrows user list queries.
type UserFilter struct {
	Search string
	Role   string
}

// OrderFilter narrows order list queries. UserID scopes the result to a
// single customer; services set it for non-staff callers.
type OrderFilter struct {
	UserID *uuid.UUID
	Status string
}
