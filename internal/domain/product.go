package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product validation errors.
var (
	ErrEmptyProductID   = errors.New("product ID cannot be empty")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeStock    = errors.New("stock quantity cannot be negative")
)

// Product is a sellable item tracked in the inventory.
// Price is stored in minor currency units (cents).
type Product struct {
	ID          uuid.UUID  `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	Stock       int        `json:"stock"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	SupplierID  *uuid.UUID `json:"supplier_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProduct creates a Product with a fresh ID and timestamps.
// Returns an error if validation fails.
func NewProduct(sku, name, description string, priceCents int64, stock int) (*Product, error) {
	now := time.Now().UTC()
	p := &Product{
		ID:          uuid.New(),
		SKU:         sku,
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the Product has valid data.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if p.PriceCents < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
