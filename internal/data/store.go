package data

import (
	"sync"
	"time"

	"ocv-hull/internal/ocv"

	"github.com/google/uuid"
)

// storeEntry wraps one stored pipeline result.
type storeEntry struct {
	result    *ocv.Result
	expiresAt time.Time
}

// ResultStore keeps recent pipeline results in memory under a generated run
// ID, so API clients can POST once and re-fetch the curves without
// recomputing. Entries expire after a TTL; nothing is persisted.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*storeEntry
	ttl   time.Duration
}

// NewResultStore creates a store with the given TTL (1 hour when <= 0).
// The cleanup goroutine runs for the lifetime of the process.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &ResultStore{
		store: make(map[string]*storeEntry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a result and returns its run ID.
func (s *ResultStore) Put(res *ocv.Result) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &storeEntry{
		result:    res,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *ResultStore) Get(id string) (*ocv.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, exists := s.store[id]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.result, true
}

// Clear removes all entries.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = make(map[string]*storeEntry)
}

// cleanup periodically removes expired entries.
func (s *ResultStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
