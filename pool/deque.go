package pool

import (
	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/rdeusser/barghos/check"
)

// DequePool keeps free instances in a ring-buffer deque.
type DequePool[T any] struct {
	items  *queue.Queue
	newFn  func() T
	mode   check.Mode
	logger *zap.Logger
}

// Ensure DequePool satisfies Pool at compile-time.
var _ Pool[*struct{}] = (*DequePool[*struct{}])(nil)

// NewDequePool returns a deque-backed pool holding s.Initial fresh instances.
func NewDequePool[T any](newFn func() T, s Settings) *DequePool[T] {
	p := &DequePool[T]{
		items:  queue.New(),
		newFn:  newFn,
		mode:   s.Mode,
		logger: s.logger(typeName[T]()),
	}

	p.grow(s.Initial)

	return p
}

func (p *DequePool[T]) Get() T {
	if p.items.Length() == 0 {
		return p.newFn()
	}
	return p.items.Remove().(T)
}

func (p *DequePool[T]) Store(instances ...T) error {
	if err := checkInstances(p.mode, instances); err != nil {
		return err
	}

	for _, instance := range instances {
		p.items.Add(instance)
	}

	return nil
}

func (p *DequePool[T]) Ensure(count int) error {
	if err := p.mode.NotNegative("count", count); err != nil {
		return err
	}

	p.grow(count)

	return nil
}

func (p *DequePool[T]) Len() int {
	return p.items.Length()
}

func (p *DequePool[T]) grow(count int) {
	deficit := count - p.items.Length()
	if deficit <= 0 {
		return
	}

	for i := 0; i < deficit; i++ {
		p.items.Add(p.newFn())
	}

	p.logger.Debug("pool grown", zap.Int("created", deficit), zap.Int("size", p.items.Length()))
}
