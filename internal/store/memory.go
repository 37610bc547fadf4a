// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds the live games served by the HTTP API.
//
// Characteristics:
//   - Stores *Entry objects keyed by a stable game handle.
//   - Map access is guarded by an RWMutex; each Entry carries its own mutex so a
//     game is only ever touched by one request at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wrdl/internal/play"
)

var ErrNotFound = errors.New("game not found")

// Entry is one live game and its owner.
type Entry struct {
	sync.Mutex
	Owner   string
	Game    *play.Game
	Started time.Time
}

// Store defines the persistence interface for live games.
type Store interface {
	// Save persists or replaces the entry under id.
	Save(ctx context.Context, id string, e *Entry) error

	// Get retrieves an entry by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete drops an entry; missing ids are ignored.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*Entry // keyed by game handle
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, id string, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}
