package tokenstore

import (
	"sync"
)

// Manager is the single owner of the session token. At most one token is
// active at a time; Set replaces the persisted mirror first and the in-memory
// value second, so a concurrently scheduled request never observes a token
// that was not durably stored.
type Manager struct {
	mu    sync.RWMutex
	token string
	store Store
}

// NewManager creates a manager over the given store.
func NewManager(store Store) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Manager{store: store}
}

// Get returns the current token, falling back to a storage read when no
// in-memory value is held. Storage read failures are tolerated and yield "".
func (m *Manager) Get() string {
	m.mu.RLock()
	tok := m.token
	m.mu.RUnlock()
	if tok != "" {
		return tok
	}

	stored, err := m.store.Load()
	if err != nil {
		return ""
	}
	if stored != "" {
		m.mu.Lock()
		if m.token == "" {
			m.token = stored
		}
		tok = m.token
		m.mu.Unlock()
	}
	return tok
}

// Set replaces the active token. An empty token clears both the in-memory
// value and the persisted mirror. A storage failure while setting a non-empty
// token is returned to the caller, which must treat it as an auth failure.
func (m *Manager) Set(token string) error {
	if token == "" {
		return m.Clear()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(token); err != nil {
		return err
	}
	m.token = token
	return nil
}

// Clear removes the token from memory and storage. The in-memory value is
// dropped even when the storage delete fails.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
	return m.store.Clear()
}
