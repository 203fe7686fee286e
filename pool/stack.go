package pool

import (
	"go.uber.org/zap"

	"github.com/rdeusser/barghos/check"
)

// StackPool keeps free instances in a slice and reuses the most recently
// stored one first.
type StackPool[T any] struct {
	items  []T
	newFn  func() T
	mode   check.Mode
	logger *zap.Logger
}

// Ensure StackPool satisfies Pool at compile-time.
var _ Pool[*struct{}] = (*StackPool[*struct{}])(nil)

// NewStackPool returns a slice-backed pool holding s.Initial fresh instances.
func NewStackPool[T any](newFn func() T, s Settings) *StackPool[T] {
	p := &StackPool[T]{
		newFn:  newFn,
		mode:   s.Mode,
		logger: s.logger(typeName[T]()),
	}

	p.grow(s.Initial)

	return p
}

func (p *StackPool[T]) Get() T {
	n := len(p.items)
	if n == 0 {
		return p.newFn()
	}

	var zero T

	item := p.items[n-1]
	p.items[n-1] = zero
	p.items = p.items[:n-1]

	return item
}

func (p *StackPool[T]) Store(instances ...T) error {
	if err := checkInstances(p.mode, instances); err != nil {
		return err
	}

	p.items = append(p.items, instances...)

	return nil
}

func (p *StackPool[T]) Ensure(count int) error {
	if err := p.mode.NotNegative("count", count); err != nil {
		return err
	}

	p.grow(count)

	return nil
}

func (p *StackPool[T]) Len() int {
	return len(p.items)
}

func (p *StackPool[T]) grow(count int) {
	deficit := count - len(p.items)
	if deficit <= 0 {
		return
	}

	for i := 0; i < deficit; i++ {
		p.items = append(p.items, p.newFn())
	}

	p.logger.Debug("pool grown", zap.Int("created", deficit), zap.Int("size", len(p.items)))
}
