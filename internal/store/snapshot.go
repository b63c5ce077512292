package store

import "sync"

// Snapshot is a read-guarded handle on a value published by the dispatch
// loop. Helpers running on other goroutines read through it; they never
// write. The published value must not be mutated after Store.
type Snapshot[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
}

// NewSnapshot returns a handle holding initial
func NewSnapshot[T any](initial T) *Snapshot[T] {
	return &Snapshot[T]{value: initial}
}

// Load returns the latest published value
func (s *Snapshot[T]) Load() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Store publishes a new value. Only the dispatch loop calls this.
func (s *Snapshot[T]) Store(value T) {
	s.mu.Lock()
	s.value = value
	s.version++
	s.mu.Unlock()
}

// Version increases by one on every Store
func (s *Snapshot[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// PublishChanged returns an observer that stores pick(state) after each
// transition that changes it. When same reports the new value equal to the
// published one, the version stays put.
func PublishChanged[S, T any](s *Snapshot[T], pick func(S) T, same func(a, b T) bool) func(S) {
	return func(state S) {
		v := pick(state)
		if same(s.Load(), v) {
			return
		}
		s.Store(v)
	}
}
