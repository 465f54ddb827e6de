package inmemorystore

import (
	"sync"
	"sync/atomic"
)

// Store is an in-memory memo table keyed by string.
type Store[V any] struct {
	values sync.Map // Key: string, Value: V
	size   atomic.Int64
}

// New creates a new, empty store.
func New[V any]() *Store[V] {
	return &Store[V]{}
}

// Get retrieves the value stored under key.
func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.values.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Set stores value under key, replacing any previous value.
func (s *Store[V]) Set(key string, value V) {
	if _, loaded := s.values.Swap(key, value); !loaded {
		s.size.Add(1)
	}
}

// GetOrCompute returns the value stored under key, computing and storing it
// first when missing. A compute error is returned and nothing is stored.
func (s *Store[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	actual, loaded := s.values.LoadOrStore(key, v)
	if !loaded {
		s.size.Add(1)
	}
	return actual.(V), nil
}

// Len returns the number of stored keys.
func (s *Store[V]) Len() int {
	return int(s.size.Load())
}
