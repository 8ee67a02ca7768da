package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// OrderStore implements store.OrderStore backed by PostgreSQL. An order
// and its items are written in one transaction; items cascade on delete.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore creates a new OrderStore.
func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

var _ store.OrderStore = (*OrderStore)(nil)

// Find implements store.OrderStore.
func (s *OrderStore) Find(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, status, total_cents, created_at, updated_at FROM orders WHERE id = $1", id)

	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalCents, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		return nil, mapError(err)
	}

	items, err := s.loadItems(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// FindPage implements store.OrderStore. Items for the returned page are
// loaded with a second query keyed by the page's order IDs.
func (s *OrderStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.OrderFilter,
) ([]domain.Order, int64, error) {
	query := `
		SELECT id, user_id, status, total_cents, created_at, updated_at, COUNT(*) OVER() AS total
		FROM orders
		WHERE ($1::uuid IS NULL OR user_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, filter.UserID, filter.Status, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		orders []domain.Order
		ids    []uuid.UUID
		total  int64
	)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalCents,
			&o.CreatedAt, &o.UpdatedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}

	if len(ids) > 0 {
		items, err := s.loadItems(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range orders {
			orders[i].Items = items[orders[i].ID]
		}
	}
	return orders, total, nil
}

// Insert implements store.OrderStore.
func (s *OrderStore) Insert(ctx context.Context, order *domain.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, status, total_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.UserID, order.Status, order.TotalCents, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)`,
			order.ID, item.ProductID, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return mapError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateStatus implements store.OrderStore.
func (s *OrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1", id, status)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}

// Remove implements store.OrderStore. Items are removed by the cascade
// on order_items.order_id.
func (s *OrderStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}

func (s *OrderStore) loadItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]domain.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT order_id, product_id, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, product_id`, orderIDs)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make(map[uuid.UUID][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, mapError(err)
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
