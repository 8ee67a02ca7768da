package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// WishlistStore implements store.WishlistStore backed by PostgreSQL.
type WishlistStore struct {
	db *sql.DB
}

// NewWishlistStore creates a new WishlistStore.
func NewWishlistStore(db *sql.DB) *WishlistStore {
	return &WishlistStore{db: db}
}

var _ store.WishlistStore = (*WishlistStore)(nil)

// FindPage implements store.WishlistStore.
func (s *WishlistStore) FindPage(
	ctx context.Context,
	userID uuid.UUID,
	page store.PageRequest,
) ([]domain.WishlistItem, int64, error) {
	query := `
		SELECT user_id, product_id, added_at, COUNT(*) OVER() AS total
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY added_at DESC, product_id
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		items []domain.WishlistItem
		total int64
	)
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.UserID, &item.ProductID, &item.AddedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return items, total, nil
}

// Insert implements store.WishlistStore. The primary key on
// (user_id, product_id) turns a double add into ErrDuplicate.
func (s *WishlistStore) Insert(ctx context.Context, item *domain.WishlistItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (user_id, product_id, added_at)
		VALUES ($1, $2, $3)`,
		item.UserID, item.ProductID, item.AddedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Remove implements store.WishlistStore.
func (s *WishlistStore) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}
