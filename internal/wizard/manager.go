package wizard

import (
	"sync"

	"rosterd/domain/core"
)

// Manager tracks live wizard sessions. Finished sessions are removed
// eagerly; nothing here survives a restart, by design.
type Manager struct {
	mu       sync.RWMutex
	sessions map[core.ID]*Session
}

// NewManager creates a session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[core.ID]*Session)}
}

// Create starts a new session for the given class.
func (m *Manager) Create(classID core.ID) *Session {
	s := NewSession(classID)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id core.ID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

// Remove cancels and forgets the session with the given id.
func (m *Manager) Remove(id core.ID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return core.ErrSessionNotFound
	}
	s.Cancel()
	return nil
}

// Finish marks a session complete and forgets it.
func (m *Manager) Finish(id core.ID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if ok {
		s.Finish()
	}
}
