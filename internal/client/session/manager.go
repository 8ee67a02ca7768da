// Package session holds the client-side authenticated-identity state.
// The state is observable: the route guard and any UI consumer
// subscribe to changes instead of reading a singleton.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// State is the client's knowledge of its own authentication.
type State int

// Session states. Unknown lasts from app start until the persisted
// token (if any) has been validated; it never recurs afterwards.
const (
	Unknown State = iota
	Authenticated
	Unauthenticated
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Identity is the in-memory view of the signed-in user, rebuilt on
// every token refresh or app reload.
type Identity struct {
	UserID          uuid.UUID
	Roles           []string
	IsAuthenticated bool
}

// HasRole reports whether the identity carries the given role claim.
func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Snapshot is a point-in-time view of the session.
type Snapshot struct {
	State    State
	Identity Identity
}

// TokenStore persists the session token between app launches.
type TokenStore interface {
	Load() (string, bool)
	Save(token string) error
	Clear() error
}

// TokenValidator checks a persisted token before it is trusted,
// typically by calling the backend's validation path.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (Identity, error)
}

// Manager owns the observable session state. All methods are safe for
// concurrent use; subscriber callbacks run on the goroutine that caused
// the transition and must not block.
type Manager struct {
	tokens    TokenStore
	validator TokenValidator
	logger    *slog.Logger

	mu          sync.RWMutex
	state       State
	identity    Identity
	subscribers map[int]func(Snapshot)
	nextSubID   int

	knownOnce sync.Once
	known     chan struct{}
}

// NewManager creates a Manager in the Unknown state.
func NewManager(tokens TokenStore, validator TokenValidator, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		tokens:      tokens,
		validator:   validator,
		logger:      logger.With(slog.String("component", "session_manager")),
		state:       Unknown,
		subscribers: make(map[int]func(Snapshot)),
		known:       make(chan struct{}),
	}
}

// Start bootstraps the session asynchronously: the persisted token, if
// any, is validated before being trusted. Navigation attempted before
// the bootstrap finishes blocks in WaitUntilKnown rather than being
// silently allowed.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		token, ok := m.tokens.Load()
		if !ok || token == "" {
			m.transition(Unauthenticated, Identity{})
			return
		}

		identity, err := m.validator.Validate(ctx, token)
		if err != nil {
			m.logger.Debug("persisted token rejected", "error", err)
			if clearErr := m.tokens.Clear(); clearErr != nil {
				m.logger.Warn("failed to clear rejected token", "error", clearErr)
			}
			m.transition(Unauthenticated, Identity{})
			return
		}

		identity.IsAuthenticated = true
		m.transition(Authenticated, identity)
	}()
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Identity: m.identity}
}

// WaitUntilKnown blocks until the session leaves the Unknown state or
// the context is done, and returns the snapshot at that moment.
func (m *Manager) WaitUntilKnown(ctx context.Context) (Snapshot, error) {
	select {
	case <-m.known:
		return m.Snapshot(), nil
	case <-ctx.Done():
		return m.Snapshot(), ctx.Err()
	}
}

// SetAuthenticated records a successful login: the token is persisted
// and subscribers are notified.
func (m *Manager) SetAuthenticated(identity Identity, token string) {
	if err := m.tokens.Save(token); err != nil {
		m.logger.Warn("failed to persist session token", "error", err)
	}
	identity.IsAuthenticated = true
	m.transition(Authenticated, identity)
}

// Logout tears the session down: the persisted token is cleared and
// subscribers are notified.
func (m *Manager) Logout() {
	if err := m.tokens.Clear(); err != nil {
		m.logger.Warn("failed to clear session token", "error", err)
	}
	m.transition(Unauthenticated, Identity{})
}

// Subscribe registers a callback invoked on every state transition.
// The returned function cancels the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

func (m *Manager) transition(state State, identity Identity) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	subs := make([]func(Snapshot), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	snapshot := Snapshot{State: state, Identity: identity}
	m.mu.Unlock()

	m.knownOnce.Do(func() { close(m.known) })
	m.logger.Debug("session state changed", "state", state.String())

	for _, fn := range subs {
		fn(snapshot)
	}
}
