package bridge

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks one Session per uuid.UUID, extending the original
// bridge's single global cell to multiple independently addressed
// organisms (see package doc). Registry is safe for concurrent use; the
// Sessions it hands out are independently mutex-guarded.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Open creates a new Session, registers it under a freshly generated
// uuid.UUID, and returns the id.
func (r *Registry) Open() uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = NewSession()

	return id
}

// Lookup returns the Session registered under id, or (nil, false) if none
// exists.
func (r *Registry) Lookup(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]

	return s, ok
}

// Close removes the Session registered under id. Closing an unknown id is
// a no-op.
func (r *Registry) Close(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
