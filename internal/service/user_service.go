package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/service/auth"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// CreateUserInput is the validated payload for admin user creation.
type CreateUserInput struct {
	Email       string   `json:"email"        validate:"required,email"`
	DisplayName string   `json:"display_name" validate:"required,min=2,max=100"`
	Password    string   `json:"password"     validate:"required,min=12,max=72"`
	Roles       []string `json:"roles"        validate:"required,min=1,dive,oneof=admin staff customer"`
}

// UpdateUserInput is the validated payload for admin user updates.
// Password is optional; when empty the stored hash is kept.
type UpdateUserInput struct {
	Email       string   `json:"email"        validate:"required,email"`
	DisplayName string   `json:"display_name" validate:"required,min=2,max=100"`
	Password    string   `json:"password"     validate:"omitempty,min=12,max=72"`
	Roles       []string `json:"roles"        validate:"required,min=1,dive,oneof=admin staff customer"`
}

// UserService provides administrative user management.
type UserService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) (*UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_service")),
	}, nil
}

// List returns one page of users matching the filter.
func (s *UserService) List(
	ctx context.Context,
	page shared.PageParams,
	filter store.UserFilter,
) shared.PagedEnvelope[domain.User] {
	items, total, err := s.users.FindPage(ctx, store.PageRequest{Number: page.Number, Size: page.Size}, filter)
	if err != nil {
		return failPageFromError[domain.User](ctx, s.logger, "list_users", err)
	}
	return shared.NewPage("users retrieved", items, page, total)
}

// Get returns the user with the given ID.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) shared.Envelope[domain.User] {
	user, err := s.users.Find(ctx, id)
	if err != nil {
		return failFromError[domain.User](ctx, s.logger, "get_user", err)
	}
	return shared.OK("user retrieved", *user)
}

// Create validates the input, hashes the password and stores a new user
// with the requested roles.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) shared.Envelope[domain.User] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.User](shared.KindValidation, msgValidation, errs...)
	}

	user, err := domain.NewUser(input.Email, input.DisplayName, input.Password)
	if err != nil {
		return shared.Fail[domain.User](shared.KindValidation, msgValidation, err.Error())
	}
	user.Roles = input.Roles

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return failFromError[domain.User](ctx, s.logger, "create_user", err)
	}
	user.Password = ""
	user.HashedPassword = hashed

	if err := s.users.Insert(ctx, user); err != nil {
		return failFromError[domain.User](ctx, s.logger, "create_user", err)
	}

	s.logger.Info("user created", slog.String("user_id", user.ID.String()))
	return shared.OK("user created", *user)
}

// Update replaces the user with the given ID, rehashing the password
// only when a new one is supplied.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) shared.Envelope[domain.User] {
	if errs := shared.ValidateRequest(input); errs != nil {
		return shared.Fail[domain.User](shared.KindValidation, msgValidation, errs...)
	}

	existing, err := s.users.Find(ctx, id)
	if err != nil {
		return failFromError[domain.User](ctx, s.logger, "update_user", err)
	}

	updated := *existing
	updated.Email = input.Email
	updated.DisplayName = input.DisplayName
	updated.Roles = input.Roles
	updated.UpdatedAt = time.Now().UTC()

	if input.Password != "" {
		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			return failFromError[domain.User](ctx, s.logger, "update_user", err)
		}
		updated.HashedPassword = hashed
	}

	matched, err := s.users.Replace(ctx, id, &updated)
	if err != nil {
		return failFromError[domain.User](ctx, s.logger, "update_user", err)
	}
	if !matched {
		return shared.Fail[domain.User](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	return shared.OK("user updated", updated)
}

// Delete removes the user with the given ID.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) shared.Envelope[uuid.UUID] {
	matched, err := s.users.Remove(ctx, id)
	if err != nil {
		return failFromError[uuid.UUID](ctx, s.logger, "delete_user", err)
	}
	if !matched {
		return shared.Fail[uuid.UUID](shared.KindNotFound, msgNotFound, msgNotFound)
	}

	s.logger.Info("user deleted", slog.String("user_id", id.String()))
	return shared.OK("user deleted", id)
}
