// Package refresh provides an in-memory invalidation store: named
// monotonic counters with synchronous change listeners. Data watchers
// subscribe to the keys they render and re-fetch when a mutation
// notifies those keys.
package refresh

import "sync"

// Store tracks a monotonic counter per key and the listeners
// subscribed to it. The zero value is not usable; call NewStore.
// Counters only ever increase, and only per key: there is no ordering
// relation between different keys.
type Store struct {
	mu        sync.Mutex
	counters  map[string]uint64
	listeners map[string]map[int]func()
	nextID    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		counters:  make(map[string]uint64),
		listeners: make(map[string]map[int]func()),
	}
}

// Notify increments the counter for key, creating it at 1 on first
// use, then invokes every listener subscribed to that key. Listeners
// run synchronously on the caller's goroutine, outside the lock, so a
// listener may call back into the store.
func (s *Store) Notify(key string) {
	s.mu.Lock()
	s.counters[key]++
	fns := make([]func(), 0, len(s.listeners[key]))
	for _, fn := range s.listeners[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Count returns the current counter for key; 0 means never notified.
func (s *Store) Count(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key]
}

// Subscribe registers fn to run on every Notify of key and returns the
// function that removes the subscription. Unsubscribing twice is a
// no-op.
func (s *Store) Subscribe(key string, fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.listeners[key] == nil {
		s.listeners[key] = make(map[int]func())
	}
	s.listeners[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners[key], id)
		if len(s.listeners[key]) == 0 {
			delete(s.listeners, key)
		}
	}
}
