package csync

import "sync"

// Slice is a thread-safe slice implementation with generic types.
// It uses a RWMutex for concurrent read access and exclusive write access.
type Slice[T any] struct {
	data []T
	mu   sync.RWMutex
}

// NewSlice creates a new thread-safe slice
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		data: make([]T, 0),
	}
}

// Append adds elements to the end of the slice
func (s *Slice[T]) Append(elements ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, elements...)
}

// Len returns the length of the slice
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// TrimFront drops the first n elements. Values of n <= 0 leave the slice
// untouched; n past the end empties it.
func (s *Slice[T]) TrimFront(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if n >= len(s.data) {
		s.data = s.data[:0]
		return
	}
	// Copy down so the backing array does not grow without bound.
	kept := copy(s.data, s.data[n:])
	clear(s.data[kept:])
	s.data = s.data[:kept]
}

// Clear removes all elements from the slice
func (s *Slice[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = s.data[:0]
}

// ToSlice returns a copy of the underlying slice
func (s *Slice[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.data))
	copy(result, s.data)
	return result
}
