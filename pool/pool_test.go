package pool

import (
	"flag"
	"sync"
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/internal/set"
)

type box struct {
	n int
}

func newBox() *box {
	return &box{}
}

var strategies = []struct {
	testName string
	strategy Strategy
}{
	{"deque", Deque},
	{"stack", Stack},
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGetOnEmptyPool(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})

			a := p.Get()
			b := p.Get()

			assert.NotNil(t, a)
			assert.NotNil(t, b)
			assert.NotSame(t, a, b)
			assert.Equal(t, 0, p.Len())
		})
	}
}

func TestStoreThenGet(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})
			a, b, c := newBox(), newBox(), newBox()

			require.NoError(t, p.Store(a, b, c))
			assert.Equal(t, 3, p.Len())

			got := set.New(p.Get(), p.Get(), p.Get())
			assert.True(t, got.Equal(set.New(a, b, c)), "got %s", got)
			assert.Equal(t, 0, p.Len())

			fresh := p.Get()
			assert.False(t, set.New(a, b, c).Contains(fresh))
		})
	}
}

func TestGetDoesNotReset(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})

			b := p.Get()
			b.n = 42
			require.NoError(t, p.Store(b))

			assert.Equal(t, 42, p.Get().n)
		})
	}
}

func TestEnsure(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})
			a, b := newBox(), newBox()

			require.NoError(t, p.Store(a, b))

			require.NoError(t, p.Ensure(1))
			assert.Equal(t, 2, p.Len(), "ensure must not shrink the store")

			require.NoError(t, p.Ensure(5))
			assert.Equal(t, 5, p.Len())

			require.NoError(t, p.Ensure(0))
			assert.Equal(t, 5, p.Len())

			got := set.New[*box]()
			for i := 0; i < 5; i++ {
				got.Add(p.Get())
			}

			assert.Equal(t, 5, got.Length())
			assert.True(t, got.Contains(a, b))
		})
	}
}

func TestEnsureNegative(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})
			assert.ErrorIs(t, p.Ensure(-1), check.ErrInvalidArgument)

			p = New(newBox, Settings{Strategy: tc.strategy, Mode: check.Disabled})
			assert.NoError(t, p.Ensure(-1))
			assert.Equal(t, 0, p.Len())
		})
	}
}

func TestStoreNil(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy})

			err := p.Store(newBox(), nil)
			assert.ErrorIs(t, err, check.ErrArgumentNull)
			assert.Contains(t, err.Error(), "instances[1]")
			assert.Equal(t, 0, p.Len(), "nothing may be stored when validation fails")

			assert.NoError(t, p.Store())
			assert.Equal(t, 0, p.Len())

			p = New(newBox, Settings{Strategy: tc.strategy, Mode: check.Disabled})
			assert.NoError(t, p.Store(nil))
			assert.Equal(t, 1, p.Len())
		})
	}
}

func TestInitial(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			p := New(newBox, Settings{Strategy: tc.strategy, Initial: 4})
			assert.Equal(t, 4, p.Len())

			p = New(newBox, Settings{Strategy: tc.strategy, Initial: -4})
			assert.Equal(t, 0, p.Len())
		})
	}
}

func TestNewStrategy(t *testing.T) {
	assert.IsType(t, &DequePool[*box]{}, New(newBox, Settings{}))
	assert.IsType(t, &StackPool[*box]{}, New(newBox, Settings{Strategy: Stack}))
	assert.IsType(t, &Synchronized[*box]{}, New(newBox, Settings{Synchronized: true}))
}

func TestStrategyFlag(t *testing.T) {
	var strategy Strategy

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&strategy, "strategy", "backing store")

	require.NoError(t, fs.Parse([]string{"-strategy", "stack"}))
	assert.Equal(t, Stack, strategy)
	assert.Equal(t, "stack", strategy.String())
	assert.ErrorIs(t, strategy.Set("heap"), ErrInvalidStrategy)
	assert.Equal(t, []Strategy{Deque, Stack}, StrategyList())
}

func TestGrowthLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	p := New(newBox, Settings{Initial: 2, Logger: zap.New(core)})
	require.NoError(t, p.Ensure(5))
	require.NoError(t, p.Ensure(3))

	entries := logs.FilterMessage("pool grown").All()
	require.Len(t, entries, 2)

	assert.Equal(t, "pool", entries[0].LoggerName)
	assert.Equal(t, map[string]interface{}{
		"type":    "*pool.box",
		"created": int64(2),
		"size":    int64(2),
	}, entries[0].ContextMap())
	assert.Equal(t, int64(3), entries[1].ContextMap()["created"])
	assert.Equal(t, int64(5), entries[1].ContextMap()["size"])
}

func TestConstructorPanicPropagates(t *testing.T) {
	p := New(func() *box { panic("no boxes left") }, Settings{})

	assert.PanicsWithValue(t, "no boxes left", func() { p.Get() })
	assert.PanicsWithValue(t, "no boxes left", func() { _ = p.Ensure(1) })
}

func TestSynchronized(t *testing.T) {
	p := New(newBox, Settings{Synchronized: true, Initial: 8})

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 1000; j++ {
				b := p.Get()
				b.n++
				_ = p.Store(b)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 8, p.Len())
}

func TestTracked(t *testing.T) {
	p := Track[*box](NewDequePool(newBox, Settings{Initial: 1}))
	a := p.Get()
	b := p.Get()

	require.NoError(t, p.Store(a))
	assert.True(t, p.Stored(a))
	assert.False(t, p.Stored(b))

	err := p.Store(b, a)
	assert.ErrorIs(t, err, ErrDoubleStore)
	assert.Contains(t, err.Error(), "instances[1]")
	assert.False(t, p.Stored(b), "a rejected store must not store anything")

	assert.ErrorIs(t, p.Store(b, b), ErrDoubleStore)

	assert.Same(t, a, p.Get())
	assert.False(t, p.Stored(a))
	require.NoError(t, p.Store(a, b))

	require.NoError(t, p.Ensure(4))
	assert.ErrorIs(t, p.Ensure(-1), check.ErrInvalidArgument)
	assert.ErrorIs(t, p.Store(nil), check.ErrArgumentNull)

	assert.Equal(t, Stats{Gets: 3, Stores: 3, Created: 3}, p.Stats())
}

// Applies a random sequence of operations and checks that no instance is
// ever both handed out and stored.
func TestRandomOperations(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.testName, func(t *testing.T) {
			var ops []uint8

			f := gofuzz.New().NilChance(0).NumElements(500, 1000)
			f.Fuzz(&ops)

			p := Track[*box](New(newBox, Settings{Strategy: tc.strategy}))
			held := set.New[*box]()

			for _, op := range ops {
				switch op % 3 {
				case 0:
					b := p.Get()
					require.NotNil(t, b)
					require.True(t, held.Add(b), "instance issued twice")
				case 1:
					if out := held.ToSlice(); len(out) > 0 {
						require.NoError(t, p.Store(out[0]))
						held.Remove(out[0])
					}
				case 2:
					n := int(op % 7)
					require.NoError(t, p.Ensure(n))
					require.GreaterOrEqual(t, p.Len(), n)
				}

				for _, b := range held.ToSlice() {
					require.False(t, p.Stored(b))
				}
			}
		})
	}
}
