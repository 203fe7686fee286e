// Package pool recycles short-lived mutable values.
//
// A Pool hands out instances with Get and takes them back with Store.
// Instances returned by Get are not reset: they may carry whatever state the
// previous owner left behind, so callers initialize them before use. The
// typed facades in the tuple and color packages do that for the common cases.
//
// Pools are not safe for concurrent use unless wrapped with Synchronize or
// built with Settings.Synchronized.
package pool

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rdeusser/barghos/check"
)

// Pool is the acquire/release contract every backing store implements.
type Pool[T any] interface {
	// Removes and returns a free instance, constructing a new one if the
	// store is empty. Never returns nil.
	Get() T

	// Takes ownership of the instances. The caller must not touch them
	// afterwards and must not store the same instance twice.
	Store(instances ...T) error

	// Guarantees at least count free instances without removing any.
	Ensure(count int) error

	// Returns the number of free instances currently held.
	Len() int
}

// Settings configures a pool and every typed facade built on one. The zero
// value validates arguments, uses the deque strategy, starts empty and does
// not log.
type Settings struct {
	Mode         check.Mode
	Strategy     Strategy
	Initial      int
	Synchronized bool
	Logger       *zap.Logger
}

// New builds the backing store selected by s.Strategy for the constructor
// newFn.
func New[T any](newFn func() T, s Settings) Pool[T] {
	var p Pool[T]

	switch s.Strategy {
	case Stack:
		p = NewStackPool(newFn, s)
	default:
		p = NewDequePool(newFn, s)
	}

	if s.Synchronized {
		p = Synchronize(p)
	}

	return p
}

func (s Settings) logger(typ string) *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger.Named("pool").With(zap.String("type", typ))
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func checkInstances[T any](mode check.Mode, instances []T) error {
	if !mode.Enabled() {
		return nil
	}

	for i, instance := range instances {
		if check.IsNil(instance) {
			return check.ArgumentNull(fmt.Sprintf("instances[%d]", i))
		}
	}

	return nil
}
