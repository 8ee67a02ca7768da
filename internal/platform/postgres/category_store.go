package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// CategoryStore implements store.CategoryStore backed by PostgreSQL.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// Find implements store.CategoryStore.
func (s *CategoryStore) Find(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, created_at, updated_at FROM categories WHERE id = $1", id)

	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, mapError(err)
	}
	return &c, nil
}

// FindPage implements store.CategoryStore.
func (s *CategoryStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.CategoryFilter,
) ([]domain.Category, int64, error) {
	query := `
		SELECT id, name, description, created_at, updated_at, COUNT(*) OVER() AS total
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name, id
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, filter.Search, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		categories []domain.Category
		total      int64
	)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return categories, total, nil
}

// Insert implements store.CategoryStore.
func (s *CategoryStore) Insert(ctx context.Context, category *domain.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Description, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Replace implements store.CategoryStore.
func (s *CategoryStore) Replace(ctx context.Context, id uuid.UUID, category *domain.Category) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		id, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}

// Remove implements store.CategoryStore. Products referencing the
// category surface as ErrConflict through the foreign key mapping.
func (s *CategoryStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}
