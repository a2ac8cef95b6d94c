// Package cache provides in-memory write-once caches for Scryfall lookup
// results. Entries live for the lifetime of the process and are never
// invalidated: the first successful fetch for a key wins.
package cache

import (
	"sync"
)

// Store is a concurrency-safe string-keyed map holding fetch results.
//
// Keys are matched exactly as given (the original query string, not the
// canonical name resolved upstream). There is no TTL and no eviction.
// Concurrent writers racing on the same uncached key may both perform an
// upstream fetch and both write; the last write wins, which is benign
// because upstream data is immutable per key within a process lifetime.
type Store[T any] struct {
	name  string
	mu    sync.RWMutex
	items map[string]T
}

// NewStore creates an empty store. The name labels the store's Prometheus
// metrics (e.g. "cards", "rulings").
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Get returns the value cached under key, if any.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()

	if ok {
		CacheHits.WithLabelValues(s.name).Inc()
	} else {
		CacheMisses.WithLabelValues(s.name).Inc()
	}

	return v, ok
}

// Set stores a value under key. Existing entries are overwritten, which only
// happens when two fetches raced on the same cold key.
func (s *Store[T]) Set(key string, value T) {
	s.mu.Lock()
	s.items[key] = value
	n := len(s.items)
	s.mu.Unlock()

	CacheEntries.WithLabelValues(s.name).Set(float64(n))
}

// Len returns the number of cached entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
