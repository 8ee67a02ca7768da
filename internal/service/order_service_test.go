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

func customerIdentity() shared.Identity {
	return shared.Identity{UserID: uuid.New(), Roles: []string{domain.RoleCustomer}}
}

func staffIdentity() shared.Identity {
	return shared.Identity{UserID: uuid.New(), Roles: []string{domain.RoleStaff}}
}

func newTestOrderService(t *testing.T, orders *mocks.MockOrderStore, products *mocks.MockProductStore) *OrderService {
	t.Helper()
	svc, err := NewOrderService(orders, products, nil)
	require.NoError(t, err)
	return svc
}

func TestOrderServiceList(t *testing.T) {
	t.Parallel()

	t.Run("customers only see their own orders", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		var seenFilter store.OrderFilter
		orders.FindPageFn = func(ctx context.Context, page store.PageRequest, filter store.OrderFilter) ([]domain.Order, int64, error) {
			seenFilter = filter
			return nil, 0, nil
		}
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		caller := customerIdentity()
		otherUser := uuid.New()

		env := svc.List(context.Background(), caller, shared.PageParams{Number: 1, Size: 20}, store.OrderFilter{UserID: &otherUser})
		require.True(t, env.Success)

		// The caller's own ID overrides whatever filter was requested.
		require.NotNil(t, seenFilter.UserID)
		assert.Equal(t, caller.UserID, *seenFilter.UserID)
	})

	t.Run("staff see any user's orders", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		var seenFilter store.OrderFilter
		orders.FindPageFn = func(ctx context.Context, page store.PageRequest, filter store.OrderFilter) ([]domain.Order, int64, error) {
			seenFilter = filter
			return nil, 0, nil
		}
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		otherUser := uuid.New()
		env := svc.List(context.Background(), staffIdentity(), shared.PageParams{Number: 1, Size: 20}, store.OrderFilter{UserID: &otherUser})
		require.True(t, env.Success)

		require.NotNil(t, seenFilter.UserID)
		assert.Equal(t, otherUser, *seenFilter.UserID)
	})
}

func TestOrderServiceGet(t *testing.T) {
	t.Parallel()

	t.Run("owner reads their order", func(t *testing.T) {
		t.Parallel()

		caller := customerIdentity()
		orders := mocks.NewMockOrderStore()
		order, err := domain.NewOrder(caller.UserID, []domain.OrderItem{{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 100}})
		require.NoError(t, err)
		orders.Orders[order.ID] = order

		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Get(context.Background(), caller, order.ID)
		require.True(t, env.Success)
		assert.Equal(t, order.ID, env.Data.ID)
	})

	t.Run("another customer's order is forbidden", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		order, err := domain.NewOrder(uuid.New(), []domain.OrderItem{{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 100}})
		require.NoError(t, err)
		orders.Orders[order.ID] = order

		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Get(context.Background(), customerIdentity(), order.ID)
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindForbidden, env.Kind)
		assert.Nil(t, env.Data)
	})

	t.Run("staff read any order", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		order, err := domain.NewOrder(uuid.New(), []domain.OrderItem{{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 100}})
		require.NoError(t, err)
		orders.Orders[order.ID] = order

		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Get(context.Background(), staffIdentity(), order.ID)
		assert.True(t, env.Success)
	})

	t.Run("unknown order maps to not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestOrderService(t, mocks.NewMockOrderStore(), mocks.NewMockProductStore())

		env := svc.Get(context.Background(), customerIdentity(), uuid.New())
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})
}

func TestOrderServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("snapshots current product prices", func(t *testing.T) {
		t.Parallel()

		products := mocks.NewMockProductStore()
		widget := newTestProduct(t, "WID-001")
		widget.PriceCents = 1250
		products.Products[widget.ID] = widget

		orders := mocks.NewMockOrderStore()
		svc := newTestOrderService(t, orders, products)

		caller := customerIdentity()
		env := svc.Create(context.Background(), caller, CreateOrderInput{
			Items: []OrderItemInput{{ProductID: widget.ID, Quantity: 3}},
		})

		require.True(t, env.Success)
		require.Len(t, env.Data.Items, 1)
		assert.Equal(t, int64(1250), env.Data.Items[0].UnitPriceCents)
		assert.Equal(t, int64(3750), env.Data.TotalCents)
		assert.Equal(t, caller.UserID, env.Data.UserID)
		assert.Equal(t, domain.OrderStatusPending, env.Data.Status)
		assert.Equal(t, 1, orders.InsertCalls)
	})

	t.Run("unknown product fails validation before insert", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Create(context.Background(), customerIdentity(), CreateOrderInput{
			Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})

		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, orders.InsertCalls)
	})

	t.Run("empty item list fails validation", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Create(context.Background(), customerIdentity(), CreateOrderInput{})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, orders.InsertCalls)
	})

	t.Run("zero quantity fails validation", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.Create(context.Background(), customerIdentity(), CreateOrderInput{
			Items: []OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
		})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, orders.InsertCalls)
	})
}

func TestOrderServiceUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("sets the status", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		order, err := domain.NewOrder(uuid.New(), []domain.OrderItem{{ProductID: uuid.New(), Quantity: 1, UnitPriceCents: 100}})
		require.NoError(t, err)
		orders.Orders[order.ID] = order

		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.UpdateStatus(context.Background(), order.ID, UpdateOrderStatusInput{Status: domain.OrderStatusShipped})
		require.True(t, env.Success)
		assert.Equal(t, domain.OrderStatusShipped, env.Data.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		t.Parallel()

		orders := mocks.NewMockOrderStore()
		svc := newTestOrderService(t, orders, mocks.NewMockProductStore())

		env := svc.UpdateStatus(context.Background(), uuid.New(), UpdateOrderStatusInput{Status: "teleported"})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindValidation, env.Kind)
		assert.Zero(t, orders.UpdateStatusCalls)
	})

	t.Run("unknown order maps to not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestOrderService(t, mocks.NewMockOrderStore(), mocks.NewMockProductStore())

		env := svc.UpdateStatus(context.Background(), uuid.New(), UpdateOrderStatusInput{Status: domain.OrderStatusPaid})
		assert.False(t, env.Success)
		assert.Equal(t, shared.KindNotFound, env.Kind)
	})
}
