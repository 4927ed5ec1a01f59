package sessions

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-process implementation of Store. All sessions are
// lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Create(s Session) string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	return token
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

func (m *MemoryStore) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
