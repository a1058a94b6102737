// Package session owns the client-side reflection of authentication state:
// the current account (or none), its persistence across restarts, and a
// deterministic subscription surface for UI consumers.
//
// The Manager is created once at process start and handed to consumers
// explicitly; nothing else mutates its state.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/movieflix/movieflix-go/internal/client/backend"
	"github.com/movieflix/movieflix-go/internal/client/storage"
	"github.com/movieflix/movieflix-go/internal/model"
)

// Status is the session lifecycle state. Initializing is entered once at
// construction and left exactly once, when Bootstrap completes.
type Status string

const (
	StatusInitializing    Status = "initializing"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// Snapshot is an immutable view of the session state, safe to hand across
// goroutines. Account is nil unless Status is StatusAuthenticated.
type Snapshot struct {
	Status  Status
	Account *model.UserResponse
	Loading bool
}

// Authenticated reports whether a user is signed in.
func (s Snapshot) Authenticated() bool { return s.Account != nil }

// Manager coordinates the auth API, the durable token store and the
// in-memory session state.
type Manager struct {
	api    backend.AuthAPI
	tokens storage.TokenStore

	mu           sync.Mutex
	status       Status
	account      *model.UserResponse
	loading      bool
	bootstrapped bool
	subs         map[int]func(Snapshot)
	nextSub      int
}

// NewManager creates a Manager in the Initializing state.
func NewManager(api backend.AuthAPI, tokens storage.TokenStore) *Manager {
	return &Manager{
		api:    api,
		tokens: tokens,
		status: StatusInitializing,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	var account *model.UserResponse
	if m.account != nil {
		copied := *m.account
		account = &copied
	}
	return Snapshot{Status: m.status, Account: account, Loading: m.loading}
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function unsubscribes and is safe to call more than
// once.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// notify publishes the current state to all subscribers. Callbacks run
// outside the lock so a subscriber may re-enter the Manager.
func (m *Manager) notify() {
	m.mu.Lock()
	snap := m.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Bootstrap performs the one-time silent re-authentication at process
// start. With no persisted token it settles Unauthenticated without any
// network call; with one it replays the token to the profile endpoint. Any
// failure — rejection or network — clears the stale token and settles
// Unauthenticated: the check fails closed. Subsequent calls are no-ops.
func (m *Manager) Bootstrap(ctx context.Context) Snapshot {
	m.mu.Lock()
	if m.bootstrapped {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap
	}
	m.bootstrapped = true
	m.loading = true
	m.mu.Unlock()
	m.notify()

	token, err := m.tokens.Load()
	if err != nil || token == "" {
		if err != nil {
			slog.Warn("loading persisted token failed", "error", err)
		}
		return m.settle(StatusUnauthenticated, nil)
	}

	account, err := m.api.Profile(ctx, token)
	if err != nil {
		slog.Debug("silent re-authentication failed", "error", err)
		if clearErr := m.tokens.Clear(); clearErr != nil {
			slog.Warn("clearing stale token failed", "error", clearErr)
		}
		return m.settle(StatusUnauthenticated, nil)
	}

	return m.settle(StatusAuthenticated, &account)
}

// Login authenticates with the server and, on success, persists the token
// and transitions to Authenticated. On failure the session state is left
// unchanged and the error is returned to the caller; nothing is retried.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.setLoading(true)

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setLoading(false)
		return err
	}

	return m.finishAuth(resp)
}

// Register creates an account; the contract mirrors Login.
func (m *Manager) Register(ctx context.Context, email, password, username string) error {
	m.setLoading(true)

	resp, err := m.api.Register(ctx, email, password, username)
	if err != nil {
		m.setLoading(false)
		return err
	}

	return m.finishAuth(resp)
}

// finishAuth persists the token from a successful auth response and then
// transitions to Authenticated. The response is in hand before the persist
// starts; the persist completes before the state change is visible.
func (m *Manager) finishAuth(resp model.AuthResponse) error {
	if err := m.tokens.Save(resp.Token); err != nil {
		m.setLoading(false)
		return err
	}

	account := resp.User
	m.settle(StatusAuthenticated, &account)
	return nil
}

// Logout clears the in-memory account and removes the persisted token. It
// never fails: if the removal errors, the in-memory state still transitions
// to Unauthenticated.
func (m *Manager) Logout() {
	if err := m.tokens.Clear(); err != nil {
		slog.Warn("removing persisted token failed", "error", err)
	}
	m.settle(StatusUnauthenticated, nil)
}

// Token returns the persisted session token, or "" when absent.
func (m *Manager) Token() (string, error) {
	return m.tokens.Load()
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) settle(status Status, account *model.UserResponse) Snapshot {
	m.mu.Lock()
	m.status = status
	m.account = account
	m.loading = false
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify()
	return snap
}
