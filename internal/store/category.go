package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// CategoryStore defines the persistence port for categories.
type CategoryStore interface {
	// Find retrieves a category by ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Find(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// FindPage returns one page of categories matching the filter and
	// the total number of matching rows, consistent within the call.
	FindPage(ctx context.Context, page PageRequest, filter CategoryFilter) ([]domain.Category, int64, error)

	// Insert saves a new category.
	// Returns ErrDuplicate if the name is already taken.
	Insert(ctx context.Context, category *domain.Category) error

	// Replace overwrites the category with the given ID.
	// Returns false when no row matched.
	Replace(ctx context.Context, id uuid.UUID, category *domain.Category) (bool, error)

	// Remove deletes the category with the given ID.
	// Returns false when no row matched. Returns ErrConflict if
	// products still reference the category.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}
