package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// CreateProductInput is the validated payload for product creation.
type CreateProductInput struct {
	SKU         string     `json:"sku"         validate:"required,min=2,max=64"`
	Name        string     `json:"name"        validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	PriceCents  int64      `json:"price_cents" validate:"gte=0"`
	Stock       int        `json:"stock"       validate:"gte=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
}

// UpdateProductInput is the validated payload for product updates.
// The update is a full replace; every field must be supplied.
type UpdateProductInput struct {
	SKU         string     `json:"sku"         validate:"required,min=2,max=64"`
	Name        string     `json:"name"        validate:"required,min=2,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	PriceCents  int64      `json:"price_cents" validate:"gte=0"`
	Stock       int        `json:"stock"       validate:"gte=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
	SupplierID  *uuid.UUID `json:"supplier_id"`
}

// ProductService provides product catalog operations.
type ProductService struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(products store.ProductStore, logger *slog.Logger) (*ProductService, error) {
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductService{
		products: products,
		logger:   logger.With(slog.String("component", "product_service")),
	}, nil
}

// List returns one page of products matching the filter.
func (s *ProductService) List(
	ctx context.Context,
	page shared.PageParams,
	filter store.ProductFilter,
) shared.PagedEnvelope[domain.Product] {
	items, total, err := s.products.FindPage(ctx, store.PageRequest{Number: page.Number, Size: page.Size}, filter)
	if err != nil {
		return failPageFromError[domain.Product](ctx, s.logger, "list_products", err)
	}
	return shared.NewPage("products retrieved", items, page, total)
}

// Get returns the product with the given ID.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) shared.Envelope[domain.Product] {
	product, err := s.products.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Product](ctx, s.logger, "get_product", err)
	}
	return shared.OK("product retrieved", *product)
}

// Create validates the input and stores a new product. On validation
// failure the store is never touched.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) shared.Envelope[domain.Product] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Product](shared.KindValidation, msgValidation, errs...)
	}

	product, err := domain.NewProduct(input.SKU, input.Name, input.Description, input.PriceCents, input.Stock)
	if err != nil {
		return shared.Fail[domain.Product](shared.KindValidation, msgValidation, err.Error())
	}
	product.CategoryID = input.CategoryID
	product.SupplierID = input.SupplierID

	if err := s.products.Insert(ctx, product); err != nil {
		return failFromError[domain.Product](ctx, s.logger, "create_product", err)
	}

	s.logger.Info("product created", slog.String("product_id", product.ID.String()), slog.String("sku", product.SKU))
	return shared.OK("product created", *product)
}

// Update replaces the product with the given ID. Concurrent updates on
// the same ID are not sequenced here; the store decides the winner.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) shared.Envelope[domain.Product] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Product](shared.KindValidation, msgValidation, errs...)
	}

	existing, err := s.products.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Product](ctx, s.logger, "update_product", err)
	}

	updated := *existing
	updated.SKU = input.SKU
	updated.Name = input.Name
	updated.Description = input.Description
	updated.PriceCents = input.PriceCents
	updated.Stock = input.Stock
	updated.CategoryID = input.CategoryID
	updated.SupplierID = input.SupplierID
	updated.UpdatedAt = time.Now().UTC()

	if err := updated.Validate(); err != nil {
		return shared.Fail[domain.Product](shared.KindValidation, msgValidation, err.Error())
	}

	matched, err := s.products.Replace(ctx, id, &updated)
	if err != nil {
		return failFromError[domain.Product](ctx, s.logger, "update_product", err)
	}
	if !matched {
		return shared.Fail[domain.Product](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	return shared.OK("product updated", updated)
}

// Delete removes the product with the given ID.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) shared.Envelope[uuid.UUID] {
	matched, err := s.products.Remove(ctx, id)
	if err != nil {
		return failFromError[uuid.UUID](ctx, s.logger, "delete_product", err)
	}
	if !matched {
		return shared.Fail[uuid.UUID](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	s.logger.Info("product deleted", slog.String("product_id", id.String()))
	return shared.OK("product deleted", id)
}
