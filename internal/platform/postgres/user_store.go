package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/stockroomhq/stockroom-api/internal/domain"
	"github.com/stockroomhq/stockroom-api/internal/store"
)

// UserStore implements store.UserStore backed by PostgreSQL. Roles are
// stored as a text array on the users row.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore. The caller owns the connection
// pool and its lifecycle.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

var _ store.UserStore = (*UserStore)(nil)

const userColumns = "id, email, display_name, hashed_password, roles, created_at, updated_at"

// Find implements store.UserStore.
func (s *UserStore) Find(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, mapError(err)
	}
	return user, nil
}

// FindByEmail implements store.UserStore.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, mapError(err)
	}
	return user, nil
}

// FindPage implements store.UserStore. The page and total come from one
// query using a window function so they cannot disagree.
func (s *UserStore) FindPage(
	ctx context.Context,
	page store.PageRequest,
	filter store.UserFilter,
) ([]domain.User, int64, error) {
	query := `
		SELECT ` + userColumns + `, COUNT(*) OVER() AS total
		FROM users
		WHERE ($1 = '' OR email ILIKE '%' || $1 || '%' OR display_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = ANY(roles))
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, filter.Search, filter.Role, page.Size, page.Offset())
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var (
		users []domain.User
		total int64
	)
	for rows.Next() {
		var (
			user  domain.User
			roles []byte
		)
		if err := rows.Scan(&user.ID, &user.Email, &user.DisplayName, &user.HashedPassword,
			&roles, &user.CreatedAt, &user.UpdatedAt, &total); err != nil {
			return nil, 0, mapError(err)
		}
		user.Roles = parseTextArray(roles)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err)
	}
	return users, total, nil
}

// Insert implements store.UserStore.
func (s *UserStore) Insert(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, display_name, hashed_password, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.HashedPassword,
		encodeTextArray(user.Roles), user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return store.ErrEmailExists
		}
		return mapError(err)
	}
	return nil
}

// Replace implements store.UserStore.
func (s *UserStore) Replace(ctx context.Context, id uuid.UUID, user *domain.User) (bool, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET email = $2, display_name = $3, hashed_password = $4, roles = $5, updated_at = $6
		WHERE id = $1`,
		id, user.Email, user.DisplayName, user.HashedPassword,
		encodeTextArray(user.Roles), user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return false, store.ErrEmailExists
		}
		return false, mapError(err)
	}
	return rowsMatched(result)
}

// Remove implements store.UserStore.
func (s *UserStore) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, mapError(err)
	}
	return rowsMatched(result)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		user  domain.User
		roles []byte
	)
	if err := row.Scan(&user.ID, &user.Email, &user.DisplayName, &user.HashedPassword,
		&roles, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	user.Roles = parseTextArray(roles)
	return &user, nil
}

// parseTextArray decodes a PostgreSQL text[] literal of simple role
// names. Role values never contain quotes or commas, so the simple
// split is safe.
func parseTextArray(raw []byte) []string {
	s := string(raw)
	if len(s) < 2 || s == "{}" {
		return nil
	}
	s = s[1 : len(s)-1]
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// encodeTextArray renders a PostgreSQL text[] literal for role names.
func encodeTextArray(values []string) string {
	if len(values) == 0 {
		return "{}"
	}
	out := "{"
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out + "}"
}
