// Package guard decides, per navigation attempt, whether the client may
// enter a protected view. Unauthenticated navigation is a first-class
// outcome, not an error.
package guard

import (
	"context"

	"github.com/stockroomhq/stockroom-api/internal/client/session"
)

// Redirect targets for denied navigations.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Decision is the one-shot outcome of a navigation attempt. It is
// re-evaluated fresh on every navigation; auth state can change
// mid-session, so decisions are never cached.
type Decision struct {
	Allow      bool
	RedirectTo string
	ReturnURL  string
}

// Guard evaluates navigation attempts against the session state.
type Guard struct {
	sessions *session.Manager
}

// New creates a Guard over the given session manager.
func New(sessions *session.Manager) *Guard {
	return &Guard{sessions: sessions}
}

// Evaluate decides whether the caller may navigate to path. While the
// session is still Unknown the attempt is held until the identity
// bootstrap resolves; a cancelled context denies rather than allows.
func (g *Guard) Evaluate(ctx context.Context, path string) Decision {
	snapshot, err := g.sessions.WaitUntilKnown(ctx)
	if err != nil || snapshot.State != session.Authenticated {
		return Decision{
			Allow:      false,
			RedirectTo: LoginPath,
			ReturnURL:  path,
		}
	}
	return Decision{Allow: true}
}

// EvaluateRole is the role-scoped variant: an authenticated identity
// lacking every required role is sent to the unauthorized view, not to
// login.
func (g *Guard) EvaluateRole(ctx context.Context, path string, roles ...string) Decision {
	decision := g.Evaluate(ctx, path)
	if !decision.Allow || len(roles) == 0 {
		return decision
	}

	identity := g.sessions.Snapshot().Identity
	for _, role := range roles {
		if identity.HasRole(role) {
			return Decision{Allow: true}
		}
	}
	return Decision{
		Allow:      false,
		RedirectTo: UnauthorizedPath,
		ReturnURL:  path,
	}
}
