package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/thundermage117/codec/pixel"
)

// Manager tracks sessions by id
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a session for img and returns its id
func (m *Manager) Create(img *pixel.Image) (string, *Session, error) {
	s, err := New(img)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return id, s, nil
}

// Get retrieves a session by id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Destroy closes and removes a session
func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.Close()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
