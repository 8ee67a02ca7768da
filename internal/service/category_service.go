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

// CategoryInput is the validated payload for category creation and update.
type CategoryInput struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// CategoryService provides category operations.
type CategoryService struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) (*CategoryService, error) {
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryService{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// List returns one page of categories matching the filter.
func (s *CategoryService) List(
	ctx context.Context,
	page shared.PageParams,
	filter store.CategoryFilter,
) shared.PagedEnvelope[domain.Category] {
	items, total, err := s.categories.FindPage(ctx, store.PageRequest{Number: page.Number, Size: page.Size}, filter)
	if err != nil {
		return failPageFromError[domain.Category](ctx, s.logger, "list_categories", err)
	}
	return shared.NewPage("categories retrieved", items, page, total)
}

// Get returns the category with the given ID.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) shared.Envelope[domain.Category] {
	category, err := s.categories.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Category](ctx, s.logger, "get_category", err)
	}
	return shared.OK("category retrieved", *category)
}

// Create validates the input and stores a new category.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) shared.Envelope[domain.Category] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Category](shared.KindValidation, msgValidation, errs...)
	}

	category, err := domain.NewCategory(input.Name, input.Description)
	if err != nil {
		return shared.Fail[domain.Category](shared.KindValidation, msgValidation, err.Error())
	}

	if err := s.categories.Insert(ctx, category); err != nil {
		return failFromError[domain.Category](ctx, s.logger, "create_category", err)
	}

	s.logger.Info("category created", slog.String("category_id", category.ID.String()))
	return shared.OK("category created", *category)
}

// Update replaces the category with the given ID.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input CategoryInput) shared.Envelope[domain.Category] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.Category](shared.KindValidation, msgValidation, errs...)
	}

	existing, err := s.categories.Find(ctx, id)
	if err != nil {
		return failFromError[domain.Category](ctx, s.logger, "update_category", err)
	}

	updated := *existing
	updated.Name = input.Name
	updated.Description = input.Description
	updated.UpdatedAt = time.Now().UTC()

	matched, err := s.categories.Replace(ctx, id, &updated)
	if err != nil {
		return failFromError[domain.Category](ctx, s.logger, "update_category", err)
	}
	if !matched {
		return shared.Fail[domain.Category](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	return shared.OK("category updated", updated)
}

// Delete removes the category with the given ID. Categories still
// referenced by products surface as a conflict from the store.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) shared.Envelope[uuid.UUID] {
	matched, err := s.categories.Remove(ctx, id)
	if err != nil {
		return failFromError[uuid.UUID](ctx, s.logger, "delete_category", err)
	}
	if !matched {
		return shared.Fail[uuid.UUID](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	s.logger.Info("category deleted", slog.String("category_id", id.String()))
	return shared.OK("category deleted", id)
}
