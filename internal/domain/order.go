package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Order statuses. An order starts pending and moves forward only;
// transitions are not enforced here beyond status validity.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order validation errors.
var (
	ErrEmptyOrderItems    = errors.New("order must contain at least one item")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
)

// OrderItem is a single product line on an order. UnitPriceCents is a
// snapshot of the product price at order time.
type OrderItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// Order is a customer's purchase of one or more products.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewOrder creates a pending Order for the given user and items,
// computing the total from the item price snapshots.
func NewOrder(userID uuid.UUID, items []OrderItem) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    OrderStatusPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, item := range items {
		o.TotalCents += item.UnitPriceCents * int64(item.Quantity)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks if the Order has valid data.
func (o *Order) Validate() error {
	if o.ID == uuid.Nil || o.UserID == uuid.Nil {
		return ErrInvalidID
	}
	if len(o.Items) == 0 {
		return ErrEmptyOrderItems
	}
	if !ValidOrderStatus(o.Status) {
		return ErrInvalidOrderStatus
	}
	for _, item := range o.Items {
		if item.ProductID == uuid.Nil {
			return ErrInvalidID
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// ValidOrderStatus reports whether status is one of the known statuses.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}
