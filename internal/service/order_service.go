package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// OrderItemInput is one requested line on a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"   validate:"required,gt=0"`
}

// CreateOrderInput is the validated payload for order creation.
type CreateOrderInput struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusInput is the validated payload for status changes.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped cancelled"`
}

// OrderService provides order operations. List and Get are scoped: a
// caller without the staff or admin role only ever sees their own orders.
type OrderService struct {
	orders   store.OrderStore
	products store.ProductStore
	logger   *slog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders store.OrderStore, products store.ProductStore, logger *slog.Logger) (*OrderService, error) {
	if orders == nil {
		return nil, domain.NewValidationError("orders", "cannot be nil", domain.ErrValidation)
	}
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{
		orders:   orders,
		products: products,
		logger:   logger.With(slog.String("component", "order_service")),
	}, nil
}

// List returns one page of orders visible to the caller. Non-staff
// identities are forced onto their own orders regardless of the filter.
func (s *OrderService) List(
	ctx context.Context,
	caller shared.Identity,
	page shared.PageParams,
	filter store.OrderFilter,
) shared.PagedEnvelope[domain.Order] {
	if !isStaff(caller) {
		userID := caller.UserID
		filter.UserID = &userID
	}

	items, total, err := s.orders.FindPage(ctx, store.PageRequest{Number: page.Number, Size: page.Size}, filter)
	if err != nil {
		return failPageFromError[domain.Order](ctx, s.logger, "list_orders", err)
	}
	return shared.NewPage("orders retrieved", items, page, total)
}

// Get returns the order with the given ID. Customers may only read
// their own orders; anyone else's yields a forbidden envelope.
func (s *OrderService) Get(ctx context.Context, caller shared.Identity, id uuid.UUID) shared.Envelope[domain.Order] {
	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Order](ctx, s.logger, "get_order", err)
	}
	if !isStaff(caller) && order.UserID != caller.UserID {
		return shared.Fail[domain.Order](shared.KindForbidden, "access denied", "order belongs to another user")
	}
	return shared.OK("order retrieved", *order)
}

// Create validates the input, snapshots current product prices into the
// order lines and stores the order. Unknown products fail validation
// before anything is persisted.
func (s *OrderService) Create(ctx context.Context, caller shared.Identity, input CreateOrderInput) shared.Envelope[domain.Order] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Order](shared.KindValidation, msgValidation, errs...)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.products.Find(ctx, line.ProductID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return shared.Fail[domain.Order](shared.KindValidation, msgValidation,
					"product "+line.ProductID.String()+" does not exist")
			}
			return failFromError[domain.Order](ctx, s.logger, "create_order", err)
		}
		items = append(items, domain.OrderItem{
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	order, err := domain.NewOrder(caller.UserID, items)
	if err != nil {
		return shared.Fail[domain.Order](shared.KindValidation, msgValidation, err.Error())
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return failFromError[domain.Order](ctx, s.logger, "create_order", err)
	}

	s.logger.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()),
		slog.Int64("total_cents", order.TotalCents))
	return shared.OK("order created", *order)
}

// UpdateStatus sets the order's status.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateOrderStatusInput) shared.Envelope[domain.Order] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Order](shared.KindValidation, msgValidation, errs...)
	}

	matched, err := s.orders.UpdateStatus(ctx, id, input.Status)
	if err != nil {
		return failFromError[domain.Order](ctx, s.logger, "update_order_status", err)
	}
	if !matched {
		return shared.Fail[domain.Order](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Order](ctx, s.logger, "update_order_status", err)
	}
	return shared.OK("order status updated", *order)
}

func isStaff(id shared.Identity) bool {
	return id.HasRole(domain.RoleStaff) || id.HasRole(domain.RoleAdmin)
}
