package guard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom-api/internal/client/session"
)

type noopTokenStore struct{}

func (noopTokenStore) Load() (string, bool) { return "", false }
func (noopTokenStore) Save(string) error    { return nil }
func (noopTokenStore) Clear() error         { return nil }

type noopValidator struct{}

func (noopValidator) Validate(context.Context, string) (session.Identity, error) {
	return session.Identity{}, nil
}

func newSessionManager() *session.Manager {
	return session.NewManager(noopTokenStore{}, noopValidator{}, nil)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("unauthenticated is sent to login with a return url", func(t *testing.T) {
		t.Parallel()

		sessions := newSessionManager()
		sessions.Logout()

		g := New(sessions)
		decision := g.Evaluate(context.Background(), "/orders/42")

		assert.False(t, decision.Allow)
		assert.Equal(t, LoginPath, decision.RedirectTo)
		assert.Equal(t, "/orders/42", decision.ReturnURL)
	})

	t.Run("authenticated navigation is allowed", func(t *testing.T) {
		t.Parallel()

		sessions := newSessionManager()
		sessions.SetAuthenticated(session.Identity{UserID: uuid.New()}, "token")

		g := New(sessions)
		decision := g.Evaluate(context.Background(), "/orders")

		assert.True(t, decision.Allow)
		assert.Empty(t, decision.RedirectTo)
	})

	t.Run("waits for the session bootstrap before deciding", func(t *testing.T) {
		t.Parallel()

		sessions := newSessionManager()
		g := New(sessions)

		decided := make(chan Decision, 1)
		go func() {
			decided <- g.Evaluate(context.Background(), "/dashboard")
		}()

		// Still unknown; the evaluation must be pending.
		select {
		case <-decided:
			t.Fatal("guard decided before the session resolved")
		case <-time.After(20 * time.Millisecond):
		}

		sessions.SetAuthenticated(session.Identity{UserID: uuid.New()}, "token")

		select {
		case decision := <-decided:
			assert.True(t, decision.Allow)
		case <-time.After(time.Second):
			t.Fatal("guard never decided")
		}
	})

	t.Run("cancelled context denies", func(t *testing.T) {
		t.Parallel()

		sessions := newSessionManager()
		g := New(sessions)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		decision := g.Evaluate(ctx, "/orders")
		assert.False(t, decision.Allow)
		assert.Equal(t, LoginPath, decision.RedirectTo)
	})
}

func TestEvaluateRole(t *testing.T) {
	t.Parallel()

	authenticate := func(roles ...string) *session.Manager {
		sessions := newSessionManager()
		sessions.SetAuthenticated(session.Identity{UserID: uuid.New(), Roles: roles}, "token")
		return sessions
	}

	t.Run("caller holding a required role passes", func(t *testing.T) {
		t.Parallel()

		g := New(authenticate("staff"))
		decision := g.EvaluateRole(context.Background(), "/dashboard", "staff", "admin")
		assert.True(t, decision.Allow)
	})

	t.Run("authenticated caller without the role goes to unauthorized", func(t *testing.T) {
		t.Parallel()

		g := New(authenticate("customer"))
		decision := g.EvaluateRole(context.Background(), "/dashboard", "staff", "admin")

		require.False(t, decision.Allow)
		assert.Equal(t, UnauthorizedPath, decision.RedirectTo)
		assert.Equal(t, "/dashboard", decision.ReturnURL)
	})

	t.Run("unauthenticated caller still goes to login", func(t *testing.T) {
		t.Parallel()

		sessions := newSessionManager()
		sessions.Logout()

		g := New(sessions)
		decision := g.EvaluateRole(context.Background(), "/dashboard", "admin")

		require.False(t, decision.Allow)
		assert.Equal(t, LoginPath, decision.RedirectTo)
	})

	t.Run("no required roles behaves like Evaluate", func(t *testing.T) {
		t.Parallel()

		g := New(authenticate("customer"))
		decision := g.EvaluateRole(context.Background(), "/orders")
		assert.True(t, decision.Allow)
	})
}
