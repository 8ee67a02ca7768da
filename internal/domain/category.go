package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyCategoryName is returned when a category has no name.
var ErrEmptyCategoryName = errors.New("category name cannot be empty")

// Category groups products for browsing and filtering.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory creates a Category with a fresh ID and timestamps.
func NewCategory(name, description string) (*Category, error) {
	now := time.Now().UTC()
	c := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrInvalidID
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}
