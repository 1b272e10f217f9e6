// Package memoize provides an identity-keyed memo store: one cached
// (arguments, result) pair per key, compared by == on the arguments value.
// With pointer-typed argument fields this gives reference-equality cache-hit
// detection, never deep comparison.
package memoize

import "sync"

type entry[A comparable, V any] struct {
	args  A
	value V
}

// Store memoizes the most recent result per key. A new Put for a key
// replaces the previous entry, so the store is bounded by the number of
// distinct keys ever seen.
type Store[K comparable, A comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[A, V]
}

// New creates an empty Store.
func New[K comparable, A comparable, V any]() *Store[K, A, V] {
	return &Store[K, A, V]{entries: make(map[K]entry[A, V])}
}

// Get returns the cached value for key if it was produced from args.
func (s *Store[K, A, V]) Get(key K, args A) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || e.args != args {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value as the result of applying args under key, replacing any
// previous entry for the key.
func (s *Store[K, A, V]) Put(key K, args A, value V) {
	s.mu.Lock()
	s.entries[key] = entry[A, V]{args: args, value: value}
	s.mu.Unlock()
}

// Delete evicts the entry for key, if any.
func (s *Store[K, A, V]) Delete(key K) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of cached entries.
func (s *Store[K, A, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
