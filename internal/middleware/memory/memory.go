// Package memory is an in-memory TTL storage for the cache middleware.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu sync.RWMutex
	m  map[string]entry
}

// NewStorage ...
func NewStorage() *Storage {
	return &Storage{m: map[string]entry{}}
}

// Get returns the cached content or nil when absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.m, key)
		s.mu.Unlock()
		return nil
	}

	return e.content
}

// Set ...
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = entry{
		content:   content,
		expiresAt: time.Now().Add(duration),
	}
}
