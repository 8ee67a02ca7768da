package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// UserStore defines the persistence port for users.
type UserStore interface {
	// Find retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	Find(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// FindByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindPage returns one page of users matching the filter together
	// with the total number of matching rows. The count is taken in the
	// same query scope as the page, so the two cannot drift apart
	// within a single call.
	FindPage(ctx context.Context, page PageRequest, filter UserFilter) ([]domain.User, int64, error)

	// Insert saves a new user.
	// Returns ErrEmailExists if the email is already taken.
	Insert(ctx context.Context, user *domain.User) error

	// Replace overwrites the user with the given ID.
	// Returns false when no row matched; the write is then a no-op.
	Replace(ctx context.Context, id uuid.UUID, user *domain.User) (bool, error)

	// Remove deletes the user with the given ID.
	// Returns false when no row matched.
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}
