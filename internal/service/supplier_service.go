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

// SupplierInput is the validated payload for supplier creation and update.
type SupplierInput struct {
	Name         string `json:"name"          validate:"required,min=2,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"         validate:"max=32"`
	Address      string `json:"address"       validate:"max=500"`
}

// SupplierService provides supplier operations.
type SupplierService struct {
	suppliers store.SupplierStore
	logger    *slog.Logger
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(suppliers store.SupplierStore, logger *slog.Logger) (*SupplierService, error) {
	if suppliers == nil {
		return nil, domain.NewValidationError("suppliers", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SupplierService{
		suppliers: suppliers,
		logger:    logger.With(slog.String("component", "supplier_service")),
	}, nil
}

// List returns one page of suppliers matching the filter.
func (s *SupplierService) List(
	ctx context.Context,
	page shared.PageParams,
	filter store.SupplierFilter,
) shared.PagedEnvelope[domain.Supplier] {
	items, total, err := s.suppliers.FindPage(ctx, store.PageRequest{Number: page.Number, Size: page.Size}, filter)
	if err != nil {
		return failPageFromError[domain.Supplier](ctx, s.logger, "list_suppliers", err)
	}
	return shared.NewPage("suppliers retrieved", items, page, total)
}

// Get returns the supplier with the given ID.
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) shared.Envelope[domain.Supplier] {
	supplier, err := s.suppliers.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Supplier](ctx, s.logger, "get_supplier", err)
	}
	return shared.OK("supplier retrieved", *supplier)
}

// Create validates the input and stores a new supplier.
func (s *SupplierService) Create(ctx context.Context, input SupplierInput) shared.Envelope[domain.Supplier] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Supplier](shared.KindValidation, msgValidation, errs...)
	}

	supplier, err := domain.NewSupplier(input.Name, input.ContactEmail, input.Phone, input.Address)
	if err != nil {
		return shared.Fail[domain.Supplier](shared.KindValidation, msgValidation, err.Error())
	}

	if err := s.suppliers.Insert(ctx, supplier); err != nil {
		return failFromError[domain.Supplier](ctx, s.logger, "create_supplier", err)
	}

	s.logger.Info("supplier created", slog.String("supplier_id", supplier.ID.String()))
	return shared.OK("supplier created", *supplier)
}

// Update replaces the supplier with the given ID.
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, input SupplierInput) shared.Envelope[domain.Supplier] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Supplier](shared.KindValidation, msgValidation, errs...)
	}

	existing, err := s.suppliers.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Supplier](ctx, s.logger, "update_supplier", err)
	}

	updated := *existing
	updated.Name = input.Name
	updated.ContactEmail = input.ContactEmail
	updated.Phone = input.Phone
	updated.Address = input.Address
	updated.UpdatedAt = time.Now().UTC()

	matched, err := s.suppliers.Replace(ctx, id, &updated)
	if err != nil {
		return failFromError[domain.Supplier](ctx, s.logger, "update_supplier", err)
	}
	if !matched {
		return shared.Fail[domain.Supplier](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	return shared.OK("supplier updated", updated)
}

// Delete removes the supplier with the given ID.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) shared.Envelope[uuid.UUID] {
	matched, err := s.suppliers.Remove(ctx, id)
	if err != nil {
		return failFromError[uuid.UUID](ctx, s.logger, "delete_supplier", err)
	}
	if !matched {
		return shared.Fail[uuid.UUID](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	s.logger.Info("supplier deleted", slog.String("supplier_id", id.String()))
	return shared.OK("supplier deleted", id)
}
