package tuple3

import (
	"testing"

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
	var typedNil *Tup3d

	v := NewTup3d(1.5, 2.5, 3.5)

	testCases := []struct {
		testName string
		other    any
		want     bool
	}{
		{"self", v, true},
		{"persistent", GenPTup3d(1.5, 2.5, 3.5), true},
		{"differs", GenPTup3d(1.5, 2.5, 3), false},
		{"float components", GenPTup3f(1.5, 2.5, 3.5), false},
		{"typed nil", typedNil, false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Equal(tc.other))
		})
	}
}

func TestPoolSharesInstances(t *testing.T) {
	p := NewTup3lPool(pool.Settings{})

	a := p.GetComponents(1, 2, 3)
	require.NoError(t, p.Store(a))

	b, err := p.GetFrom(GenPTup3lScalar(9))
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "tup3l(x=9, y=9, z=9)", a.String())
}

func TestPoolWithDisabledValidation(t *testing.T) {
	s := pool.Settings{Mode: check.Disabled}

	p, err := NewTup3iPoolWith(s, pool.NewStackPool(func() *Tup3i { return new(Tup3i) }, s))
	require.NoError(t, err)

	assert.NoError(t, p.Ensure(-1))
	assert.Equal(t, 0, p.Internal().Len())

	require.NoError(t, p.Ensure(2))
	assert.Equal(t, 2, p.Internal().Len())
}
