package store

import (
	"errors"
	"sync"

	"github.com/heliowatch/solarwind/internal/solarwind"
)

// ErrNoData is returned before the first successful refresh has completed.
var ErrNoData = errors.New("no solar wind data available")

// MemoryStore is a concurrency-safe holder for the current joined snapshot.
// Each successful refresh replaces the snapshot wholesale; there is no
// history and nothing survives a replacement.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot solarwind.Snapshot
	loaded   bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace swaps in a new snapshot.
func (s *MemoryStore) Replace(snapshot solarwind.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.loaded = true
}

// Current returns the latest snapshot, or ErrNoData when nothing has been
// fetched yet.
func (s *MemoryStore) Current() (solarwind.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return solarwind.Snapshot{}, ErrNoData
	}
	return s.snapshot, nil
}
