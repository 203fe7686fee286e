package tuple2

import (
	"testing"

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

func TestDecimalString(t *testing.T) {
	p := GenPTup2bigd(decimal.RequireFromString("1.1"), decimal.RequireFromString("2.2"))

	assert.Equal(t, "ptup2bigd(x=1.1, y=2.2)", p.String())
	assert.True(t, p.Equal(NewTup2bigd(decimal.RequireFromString("1.10"), decimal.RequireFromString("2.200"))))
	assert.False(t, p.Equal(GenPTup2bigdScalar(decimal.RequireFromString("1.1"))))
}

func TestObjectPoolValidationDisabled(t *testing.T) {
	p := NewTup2objPool(pool.Settings{Mode: check.Disabled})

	v, err := p.GetComponents(nil, 1)
	require.NoError(t, err)
	assert.Nil(t, v.X())

	_, err = p.GetScalar(nil)
	assert.NoError(t, err)

	_, err = p.GetFrom(NewTup2obj(nil, nil))
	assert.NoError(t, err)
}

func TestObjectPoolValidationEnabled(t *testing.T) {
	p := NewTup2objPool(pool.Settings{})

	_, err := p.GetScalar(nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	var typedNil *int
	_, err = p.GetComponents(1, typedNil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	_, err = p.GetFrom(GenPTup2obj(nil, 1))
	assert.ErrorIs(t, err, check.ErrArgumentNull)
	assert.Contains(t, err.Error(), "src.X()")
}

func TestStringTuples(t *testing.T) {
	p := NewTup2strPool(pool.Settings{Strategy: pool.Stack, Initial: 1})

	v := p.GetComponents("key", "value")
	assert.Equal(t, "tup2str(x=key, y=value)", v.String())
	assert.True(t, v.Equal(GenPTup2str("key", "value")))

	require.NoError(t, p.Store(v))
	assert.Equal(t, "tup2str(x=, y=)", p.Get().String())
}

func TestSynchronizedPool(t *testing.T) {
	p := NewTup2iPool(pool.Settings{Synchronized: true, Initial: 4})
	assert.IsType(t, &pool.Synchronized[*Tup2i]{}, p.Internal())

	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func(i int32) {
			defer func() { done <- struct{}{} }()

			for j := 0; j < 100; j++ {
				v := p.GetComponents(i, int32(j))
				assert.Equal(t, i, v.X())
				assert.NoError(t, p.Store(v))
			}
		}(int32(i))
	}

	for i := 0; i < 4; i++ {
		<-done
	}

	assert.GreaterOrEqual(t, p.Internal().Len(), 4)
}
