package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// SupplierStore implements store.SupplierStore backed by PostgreSQL.
type SupplierStore struct {
	db *sql.DB
}

// NewSupplierStore creates a new SupplierStore.
func NewSupplierStore(db *sql.DB) *SupplierStore {
	return &SupplierStore{db: db}
}

var _ store.SupplierStore = (*SupplierStore)(nil)

const supplierColumns = "id, name, contact_email, phone, address, created_at, updated_at"

// Find implements store.SupplierStore.
func (s *SupplierStore) Find(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+supplierColumns+" FROM suppliers WHERE id = $1", id)

	var sp domain.Supplier
	err := row.Scan(&sp.ID, &sp.Name, &sp.ContactEmail, &sp.Phone, &sp.Address, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSupplierNotFound
		}
		return nil, mapError(err)
	}
	return &sp, nil
}

// FindPage implements store.SupplierStore.
func (s *SupplierStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.SupplierFilter,
) ([]domain.Supplier, int64, error) {
	query := `
		SELECT ` + supplierColumns + `, COUNT(*) OVER() AS total
		FROM suppliers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name, id
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, filter.Search, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		suppliers []domain.Supplier
		total     int64
	)
	for rows.Next() {
		var sp domain.Supplier
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ContactEmail, &sp.Phone, &sp.Address,
			&sp.CreatedAt, &sp.UpdatedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		suppliers = append(suppliers, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return suppliers, total, nil
}

// Insert implements store.SupplierStore.
func (s *SupplierStore) Insert(ctx context.Context, supplier *domain.Supplier) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, name, contact_email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.Address,
		supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Replace implements store.SupplierStore.
func (s *SupplierStore) Replace(ctx context.Context, id uuid.UUID, supplier *domain.Supplier) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE suppliers
		SET name = $2, contact_email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		id, supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.Address, supplier.UpdatedAt)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}

// Remove implements store.SupplierStore. Products referencing the
// supplier surface as ErrConflict through the foreign key mapping.
func (s *SupplierStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}
