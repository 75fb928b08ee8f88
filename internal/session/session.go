// Package session issues and validates the bearer tokens backing auth-gated
// operations. Tokens live for one hour; only an explicit refresh extends
// validity — mere access never slides the expiry.
package session

import (
	"sync"
	"time"

	"sanctuary-api/internal/apierr"
	"sanctuary-api/internal/models"
	"sanctuary-api/internal/util"
)

const Duration = time.Hour

type Manager struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	now      func() time.Time
	newToken func() string
}

type Option func(*Manager)

// WithClock overrides the expiry clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithTokenGenerator overrides token generation, used by tests.
func WithTokenGenerator(newToken func() string) Option {
	return func(m *Manager) { m.newToken = newToken }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]models.Session),
		now:      time.Now,
		newToken: func() string { return util.NewID("token") },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create issues a new session for the user, expiring in one hour.
func (m *Manager) Create(userID string) models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLocked(userID)
}

func (m *Manager) createLocked(userID string) models.Session {
	session := models.Session{
		Token:     m.newToken(),
		UserID:    userID,
		ExpiresAt: m.now().Add(Duration),
	}
	m.sessions[session.Token] = session
	return session
}

// Require resolves a token. Unknown tokens fail with SESSION_INVALID; expired
// tokens are evicted and fail with SESSION_EXPIRED.
func (m *Manager) Require(token string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requireLocked(token)
}

func (m *Manager) requireLocked(token string) (models.Session, error) {
	session, ok := m.sessions[token]
	if !ok {
		return models.Session{}, apierr.New(401, apierr.KindSessionInvalid, "Invalid or expired session token")
	}

	if m.now().After(session.ExpiresAt) {
		delete(m.sessions, token)
		return models.Session{}, apierr.New(401, apierr.KindSessionExpired, "Session token expired")
	}

	return session, nil
}

// Revoke removes a token unconditionally. Revoking an unknown token is a
// no-op.
func (m *Manager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Refresh validates the old token, then atomically issues a replacement and
// invalidates the old one.
func (m *Manager) Refresh(token string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.requireLocked(token)
	if err != nil {
		return models.Session{}, err
	}

	renewed := m.createLocked(current.UserID)
	delete(m.sessions, token)
	return renewed, nil
}

// Clear drops every session.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]models.Session)
}
