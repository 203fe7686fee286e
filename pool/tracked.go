package pool

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rdeusser/barghos/internal/set"
)

var ErrDoubleStore = errors.New("instance is already stored")

// Stats counts the traffic through a Tracked pool.
type Stats struct {
	Gets    int
	Stores  int
	Created int
}

// Tracked is an instrumented pool. It remembers which instances currently sit
// in the wrapped store and rejects storing one of them again before it has
// been handed out.
type Tracked[T comparable] struct {
	pool   Pool[T]
	stored *set.Set[T]
	stats  Stats
}

// Ensure Tracked satisfies Pool at compile-time.
var _ Pool[*struct{}] = (*Tracked[*struct{}])(nil)

// Track wraps p. Instances already in p are not known to the tracker; they
// are handed out normally and tracked once they come back.
func Track[T comparable](p Pool[T]) *Tracked[T] {
	return &Tracked[T]{
		pool:   p,
		stored: set.New[T](),
	}
}

func (t *Tracked[T]) Get() T {
	if t.pool.Len() == 0 {
		t.stats.Created++
	}

	instance := t.pool.Get()
	t.stored.Remove(instance)
	t.stats.Gets++

	return instance
}

// Store fails with ErrDoubleStore, storing nothing, if any instance is
// already in the pool or appears twice in instances.
func (t *Tracked[T]) Store(instances ...T) error {
	seen := set.New[T]()

	for i, instance := range instances {
		if t.stored.Contains(instance) || !seen.Add(instance) {
			return errors.WithMessage(ErrDoubleStore, fmt.Sprintf("instances[%d]", i))
		}
	}

	if err := t.pool.Store(instances...); err != nil {
		return err
	}

	for _, instance := range instances {
		t.stored.Add(instance)
	}

	t.stats.Stores += len(instances)

	return nil
}

func (t *Tracked[T]) Ensure(count int) error {
	before := t.pool.Len()

	if err := t.pool.Ensure(count); err != nil {
		return err
	}

	if after := t.pool.Len(); after > before {
		t.stats.Created += after - before
	}

	return nil
}

func (t *Tracked[T]) Len() int {
	return t.pool.Len()
}

// Stored reports whether instance is currently owned by the pool.
func (t *Tracked[T]) Stored(instance T) bool {
	return t.stored.Contains(instance)
}

// Stats returns the counters accumulated so far.
func (t *Tracked[T]) Stats() Stats {
	return t.stats
}
