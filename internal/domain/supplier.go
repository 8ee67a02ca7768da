package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptySupplierName is returned when a supplier has no name.
var ErrEmptySupplierName = errors.New("supplier name cannot be empty")

// Supplier is a vendor products are sourced from.
type Supplier struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSupplier creates a Supplier with a fresh ID and timestamps.
func NewSupplier(name, contactEmail, phone, address string) (*Supplier, error) {
	now := time.Now().UTC()
	s := &Supplier{
		ID:           uuid.New(),
		Name:         name,
		ContactEmail: contactEmail,
		Phone:        phone,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the Supplier has valid data.
func (s *Supplier) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}
	if s.Name == "" {
		return ErrEmptySupplierName
	}
	if s.ContactEmail != "" && !emailPattern.MatchString(s.ContactEmail) {
		return ErrInvalidEmail
	}
	return nil
}
