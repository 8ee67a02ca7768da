package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// ProductStore implements store.ProductStore backed by PostgreSQL.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

var _ store.ProductStore = (*ProductStore)(nil)

const productColumns = "id, sku, name, description, price_cents, stock, category_id, supplier_id, created_at, updated_at"

// Find implements store.ProductStore.
func (s *ProductStore) Find(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)

	var p domain.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Stock,
		&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		return nil, mapError(err)
	}
	return &p, nil
}

// FindPage implements store.ProductStore.
func (s *ProductStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.ProductFilter,
) ([]domain.Product, int64, error) {
	query := `
		SELECT ` + productColumns + `, COUNT(*) OVER() AS total
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%')
		  AND ($2::uuid IS NULL OR category_id = $2)
		  AND ($3::uuid IS NULL OR supplier_id = $3)
		ORDER BY name, id
		LIMIT $4 OFFSET $5`

	rows, err := s.db.QueryContext(ctx, query,
		filter.Search, filter.CategoryID, filter.SupplierID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		products []domain.Product
		total    int64
	)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Stock,
			&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return products, total, nil
}

// Insert implements store.ProductStore.
func (s *ProductStore) Insert(ctx context.Context, product *domain.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, sku, name, description, price_cents, stock, category_id, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.SKU, product.Name, product.Description, product.PriceCents,
		product.Stock, product.CategoryID, product.SupplierID, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return store.ErrSKUExists
		}
		return mapError(err)
	}
	return nil
}

// Replace implements store.ProductStore.
func (s *ProductStore) Replace(ctx context.Context, id uuid.UUID, product *domain.Product) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET sku = $2, name = $3, description = $4, price_cents = $5, stock = $6,
		    category_id = $7, supplier_id = $8, updated_at = $9
		WHERE id = $1`,
		id, product.SKU, product.Name, product.Description, product.PriceCents,
		product.Stock, product.CategoryID, product.SupplierID, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return false, store.ErrSKUExists
		}
		return false, mapError(err)
	}
	return rowsMatched(result)
}

// Remove implements store.ProductStore.
func (s *ProductStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}
