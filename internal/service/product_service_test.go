package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/mocks"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

func newTestProduct(t *testing.T, sku string) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(sku, "Widget "+sku, "a widget", 1999, 10)
	require.NoError(t, err)
	return product
}

func TestProductServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid product", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Create(context.Background(), CreateProductInput{
			SKU:        "WID-001",
			Name:       "Widget",
			PriceCents: 1999,
			Stock:      5,
		})

		require.True(t, env.Success)
		require.NotNil(t, env.Data)
		assert.Equal(t, "WID-001", env.Data.SKU)
		assert.NotEqual(t, uuid.Nil, env.Data.ID)
		assert.Equal(t, 1, products.InsertCalls)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Create(context.Background(), CreateProductInput{
			SKU:        "",
			Name:       "x",
			PriceCents: -1,
		})

		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Nil(t, env.Data)
		assert.NotEmpty(t, env.Errors)
		assert.Zero(t, products.InsertCalls)
	})

	t.Run("duplicate sku maps to conflict", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		existing := newTestProduct(t, "WID-001")
		products.Products[existing.ID] = existing

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Create(context.Background(), CreateProductInput{
			SKU:        "WID-001",
			Name:       "Another Widget",
			PriceCents: 500,
		})

		assert.False(t, env.Success)
		assert.Equal(t, shared.KindConflict, env.Kind)
		assert.Contains(t, env.Errors, "sku is already in use")
	})
}

func TestProductServiceGet(t *testing.T) {
	t.Parallel()

	t.Run("returns the product", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		product := newTestProduct(t, "WID-001")
		products.Products[product.ID] = product

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Get(context.Background(), product.ID)
		require.True(t, env.Success)
		assert.Equal(t, product.ID, env.Data.ID)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		t.Parallel()

		svc, err := NewProductService(mocks.NewMockProductStore(), nil)
		require.NoError(t, err)

		env := svc.Get(context.Background(), uuid.New())
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})

	t.Run("store failure maps to unexpected", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		products.Err = assert.AnError

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Get(context.Background(), uuid.New())
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindUnexpected, env.Kind)
		// Internal error details never leak to the client.
		assert.NotContains(t, env.Errors, assert.AnError.Error())
	})
}

func TestProductServiceUpdate(t *testing.T) {
	t.Parallel()

	validInput := UpdateProductInput{
		SKU:        "WID-002",
		Name:       "Updated Widget",
		PriceCents: 2500,
		Stock:      3,
	}

	t.Run("replaces an existing product", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		product := newTestProduct(t, "WID-001")
		products.Products[product.ID] = product

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Update(context.Background(), product.ID, validInput)
		require.True(t, env.Success)
		assert.Equal(t, "WID-002", env.Data.SKU)
		assert.Equal(t, int64(2500), env.Data.PriceCents)
		assert.Equal(t, 1, products.ReplaceCalls)
	})

	t.Run("unmatched replace maps to not found", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		product := newTestProduct(t, "WID-001")
		products.FindFn = func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			copied := *product
			return &copied, nil
		}
		products.ReplaceFn = func(ctx context.Context, id uuid.UUID, p *domain.Product) (bool, error) {
			return false, nil
		}

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Update(context.Background(), product.ID, validInput)
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Update(context.Background(), uuid.New(), UpdateProductInput{})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, products.ReplaceCalls)
	})
}

func TestProductServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing product", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		product := newTestProduct(t, "WID-001")
		products.Products[product.ID] = product

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.Delete(context.Background(), product.ID)
		require.True(t, env.Success)
		assert.Equal(t, product.ID, *env.Data)
		assert.Empty(t, products.Products)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		t.Parallel()

		svc, err := NewProductService(mocks.NewMockProductStore(), nil)
		require.NoError(t, err)

		env := svc.Delete(context.Background(), uuid.New())
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})
}

func TestProductServiceList(t *testing.T) {
	t.Parallel()

	t.Run("returns a page with totals", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		for _, sku := range []string{"A-1", "A-2", "A-3"} {
			product := newTestProduct(t, sku)
			products.Products[product.ID] = product
		}

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.List(context.Background(), shared.PageParams{Number: 1, Size: 20}, store.ProductFilter{})
		require.True(t, env.Success)
		assert.Len(t, env.Data, 3)
		assert.Equal(t, int64(3), env.TotalRecords)
		assert.Equal(t, 1, env.TotalPages)
	})

	t.Run("store failure maps to unexpected", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		products.Err = assert.AnError

		svc, err := NewProductService(products, nil)
		require.NoError(t, err)

		env := svc.List(context.Background(), shared.PageParams{Number: 1, Size: 20}, store.ProductFilter{})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindUnexpected, env.Kind)
	})
}

func TestNewProductServiceRequiresStore(t *testing.T) {
	t.Parallel()

	_, err := NewProductService(nil, nil)
	assert.Error(t, err)
}
