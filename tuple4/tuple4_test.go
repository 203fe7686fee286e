package tuple4

import (
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/pool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEqual(t *testing.T) {
	var typedNil *Tup4l

	p := GenPTup4l(1, 2, 3, 4)

	testCases := []struct {
		testName string
		other    any
		want     bool
	}{
		{"same components", GenPTup4l(1, 2, 3, 4), true},
		{"mutable with same components", NewTup4l(1, 2, 3, 4), true},
		{"last component differs", GenPTup4l(1, 2, 3, 5), false},
		{"nil", nil, false},
		{"typed nil", typedNil, false},
		{"other kind", GenPTup4i(1, 2, 3, 4), false},
		{"unrelated", "ptup4l(x=1, y=2, z=3, w=4)", false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Equal(tc.other))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "ptup4l(x=1, y=2, z=3, w=4)", GenPTup4l(1, 2, 3, 4).String())
	assert.Equal(t, "tup4f(x=0.5, y=-1, z=0, w=2)", NewTup4f(0.5, -1, 0, 2).String())
	assert.Equal(t, "tup4str(x=a, y=b, z=, w=d)", NewTup4str("a", "b", "", "d").String())
}

func TestMutators(t *testing.T) {
	v := NewTup4d(0, 0, 0, 0).SetX(1).SetY(2).SetZ(3).SetW(4)
	assert.True(t, v.Equal(GenPTup4d(1, 2, 3, 4)))

	c := v.Clone()
	c.SetScalar(7)
	assert.True(t, v.Equal(GenPTup4d(1, 2, 3, 4)))
	assert.True(t, c.Equal(GenPTup4dScalar(7)))

	v.Set(c)
	assert.True(t, v.Equal(c))
	assert.NotSame(t, v, c)
}

func TestGenFrom(t *testing.T) {
	src := NewTup4l(1, 2, 3, 4)

	p, err := GenPTup4lFrom(src)
	require.NoError(t, err)

	src.SetX(100)
	assert.Equal(t, int64(1), p.X())

	var typedNil *Tup4l
	_, err = GenPTup4lFrom(typedNil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	_, err = GenPTup4lFrom(nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
}

func TestDecimalTuple(t *testing.T) {
	a := GenPTup4bigd(decimal.RequireFromString("1.10"), decimal.Zero, decimal.NewFromInt(3), decimal.New(4, -1))
	b := NewTup4bigd(decimal.RequireFromString("1.1"), decimal.Zero, decimal.NewFromInt(3), decimal.RequireFromString("0.4"))

	assert.True(t, a.Equal(b))
	assert.Equal(t, "ptup4bigd(x=1.1, y=0, z=3, w=0.4)", a.String())

	p := NewTup4bigdPool(pool.Settings{})
	v := p.GetComponents(decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(4))
	require.NoError(t, p.Store(v))
	assert.True(t, p.Get().Equal(GenPTup4bigdScalar(decimal.Zero)))
}

func TestPool(t *testing.T) {
	for _, strategy := range pool.StrategyList() {
		t.Run(strategy.String(), func(t *testing.T) {
			p := NewTup4lPool(pool.Settings{Strategy: strategy})

			a := p.GetComponents(1, 2, 3, 4)
			b := p.GetScalar(5)
			c := p.Get()

			require.NoError(t, p.Store(a, b, c))
			assert.Equal(t, 3, p.Internal().Len())

			require.NoError(t, p.Store())
			assert.Equal(t, 3, p.Internal().Len())

			require.NoError(t, p.Ensure(10))
			assert.Equal(t, 10, p.Internal().Len())

			for i := 0; i < 10; i++ {
				assert.True(t, p.Get().Equal(GenPTup4lScalar(0)))
			}
			assert.Equal(t, 0, p.Internal().Len())
		})
	}
}

func TestPoolGetPlainKeepsState(t *testing.T) {
	p := NewTup4lPool(pool.Settings{})

	v := p.GetComponents(1, 2, 3, 4)
	require.NoError(t, p.Store(v))

	plain := p.GetPlain()
	assert.Same(t, v, plain)
	assert.Equal(t, "tup4l(x=1, y=2, z=3, w=4)", plain.String())
}

func TestPoolValidation(t *testing.T) {
	p := NewTup4lPool(pool.Settings{})

	_, err := p.GetFrom(nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	err = p.Store(NewTup4l(0, 0, 0, 0), nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
	assert.Contains(t, err.Error(), "instances[1]")
	assert.Equal(t, 0, p.Internal().Len())

	assert.ErrorIs(t, p.Ensure(-1), check.ErrInvalidArgument)

	_, err = NewTup4lPoolWith(pool.Settings{}, nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
}

func TestObjectPool(t *testing.T) {
	p := NewTup4objPool(pool.Settings{})

	_, err := p.GetComponents(1, nil, 3, 4)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	_, err = p.GetFrom(NewTup4obj(1, 2, nil, 4))
	assert.ErrorIs(t, err, check.ErrArgumentNull)
	assert.Contains(t, err.Error(), "src.Z()")

	v, err := p.GetComponents("a", 2, []int{3}, 4.0)
	require.NoError(t, err)
	assert.True(t, v.Equal(GenPTup4obj("a", 2, []int{3}, 4.0)))
	assert.False(t, v.Equal(GenPTup4obj("a", 2, []int{4}, 4.0)))

	assert.True(t, p.Get().Equal(GenPTup4objScalar(struct{}{})))
}

func TestSettersLeaveValidationToFacades(t *testing.T) {
	v := NewTup4obj(1, 2, 3, 4).SetX(nil)
	assert.Nil(t, v.X())

	objs := NewTup4objPool(pool.Settings{})

	_, err := objs.GetFrom(v)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
	assert.Equal(t, 0, objs.Internal().Len())

	var src *Tup4l
	assert.Panics(t, func() { new(Tup4l).Set(src) })

	_, err = NewTup4lPool(pool.Settings{}).GetFrom(src)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	_, err = GenPTup4lFrom(src)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
}

func TestTrackedBacking(t *testing.T) {
	tracked := pool.Track(pool.New(func() *Tup4i { return new(Tup4i) }, pool.Settings{}))

	p, err := NewTup4iPoolWith(pool.Settings{}, tracked)
	require.NoError(t, err)

	v := p.GetScalar(1)
	require.NoError(t, p.Store(v))
	assert.ErrorIs(t, p.Store(v), pool.ErrDoubleStore)

	assert.Equal(t, pool.Stats{Gets: 1, Stores: 1, Created: 1}, tracked.Stats())
}

func TestFuzzRoundTrip(t *testing.T) {
	f := gofuzz.New().NilChance(0)
	p := NewTup4fPool(pool.Settings{Strategy: pool.Stack})

	for i := 0; i < 500; i++ {
		var x, y, z, w float32

		f.Fuzz(&x)
		f.Fuzz(&y)
		f.Fuzz(&z)
		f.Fuzz(&w)

		want := GenPTup4f(x, y, z, w)

		v, err := p.GetFrom(want)
		require.NoError(t, err)
		assert.True(t, v.Equal(want))

		got, err := GenPTup4fFrom(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		require.NoError(t, p.Store(v))
	}

	assert.Equal(t, 1, p.Internal().Len())
}
