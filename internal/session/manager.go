package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/mosaicnet/mosaic/internal/storage"
)

// Manager owns all live sessions, one per signed-in viewer.
type Manager struct {
	users storage.UserStorage

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager ...
func NewManager(users storage.UserStorage) *Manager {
	return &Manager{
		users:    users,
		sessions: map[string]*Session{},
	}
}

// Login loads the viewer's user record and creates the session. Logging in an
// already signed-in viewer returns the existing session.
func (m *Manager) Login(ctx context.Context, viewerID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[viewerID]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	u, err := m.users.GetUser(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[viewerID]; ok {
		return s, nil
	}

	s = New(u)
	m.sessions[viewerID] = s

	return s, nil
}

// Logout destroys the viewer's session. Unknown viewers are a no-op.
func (m *Manager) Logout(viewerID string) {
	m.mu.Lock()
	s, ok := m.sessions[viewerID]
	delete(m.sessions, viewerID)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Get ...
func (m *Manager) Get(viewerID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[viewerID]
	return s, ok
}

// ForEach calls f for every live session.
func (m *Manager) ForEach(f func(s *Session)) {
	m.mu.RLock()
	ss := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		ss = append(ss, s)
	}
	m.mu.RUnlock()

	for _, s := range ss {
		f(s)
	}
}
