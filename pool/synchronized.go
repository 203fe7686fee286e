package pool

import "sync"

// Synchronized guards another pool with a mutex so several goroutines can
// share it.
type Synchronized[T any] struct {
	mu   sync.Mutex
	pool Pool[T]
}

// Ensure Synchronized satisfies Pool at compile-time.
var _ Pool[*struct{}] = (*Synchronized[*struct{}])(nil)

// Synchronize wraps p. p must not be used directly afterwards.
func Synchronize[T any](p Pool[T]) *Synchronized[T] {
	return &Synchronized[T]{pool: p}
}

func (s *Synchronized[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.Get()
}

func (s *Synchronized[T]) Store(instances ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.Store(instances...)
}

func (s *Synchronized[T]) Ensure(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.Ensure(count)
}

func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.Len()
}
