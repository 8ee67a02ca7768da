package postgres

import (
	"context"
	"database/sql"

	"github.com/stockroomhq/stockroom-api/internal/domain"
)

// lowStockThreshold is the stock level at or below which a product
// counts as low stock on the dashboard.
const lowStockThreshold = 10

// OverviewStore implements service.OverviewSource with one aggregate
// query across the catalog, order and user tables. Revenue counts paid
// and shipped orders only.
type OverviewStore struct {
	db *sql.DB
}

// NewOverviewStore creates a new OverviewStore.
func NewOverviewStore(db *sql.DB) *OverviewStore {
	return &OverviewStore{db: db}
}

// Snapshot returns the current dashboard figures.
func (s *OverviewStore) Snapshot(ctx context.Context) (domain.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COALESCE(SUM(total_cents), 0) FROM orders WHERE status IN ('paid', 'shipped')),
			(SELECT COUNT(*) FROM products WHERE stock <= $1),
			(SELECT COUNT(*) FROM users)`

	var o domain.Overview
	err := s.db.QueryRowContext(ctx, query, lowStockThreshold).Scan(
		&o.ProductCount, &o.CategoryCount, &o.SupplierCount, &o.OrderCount,
		&o.PendingOrders, &o.RevenueCents, &o.LowStockCount, &o.RegisteredUsers)
	if err != nil {
		return domain.Overview{}, mapError(err)
	}
	return o, nil
}
