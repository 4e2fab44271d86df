package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags — fully testable outside WASM.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers.
func (s *Signal[T]) Set(v T) {
	s.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) under the write lock and notifies
// subscribers with the committed value. Subscribers run outside the lock, in
// commit order as seen by this goroutine.
func (s *Signal[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	subs := make([]func(T), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(v)
	}
	return v
}

// Subscribe registers a callback fired with the new value after every change.
// Returns an unsubscribe func; calling it more than once is harmless.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
