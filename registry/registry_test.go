package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/color"
	"github.com/rdeusser/barghos/pool"
	"github.com/rdeusser/barghos/tuple2"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	r := New(pool.Settings{Initial: 2})

	assert.Equal(t, 2, r.Tup2i.Internal().Len())
	assert.Equal(t, 2, r.Tup3obj.Internal().Len())
	assert.Equal(t, 2, r.Tup4bigd.Internal().Len())
	assert.Equal(t, 2, r.HDRColor4.Internal().Len())

	v := r.Tup3f.GetComponents(1, 2, 3)
	c, err := r.LDRColor3.GetFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "ldrcolor3(r=1, g=1, b=1)", c.String())

	require.NoError(t, r.Tup3f.Store(v))
	require.NoError(t, r.LDRColor3.Store(c))
	assert.Equal(t, 2, r.Tup3f.Internal().Len())
}

func TestFacadesAreIndependent(t *testing.T) {
	a := New(pool.Settings{})
	b := New(pool.Settings{})

	v := a.Tup2l.Get()
	require.NoError(t, a.Tup2l.Store(v))

	assert.Equal(t, 1, a.Tup2l.Internal().Len())
	assert.Equal(t, 0, b.Tup2l.Internal().Len())
	assert.Equal(t, 0, a.Tup3l.Internal().Len())
}

func TestSharedSettings(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	r := New(pool.Settings{
		Mode:         check.Disabled,
		Strategy:     pool.Stack,
		Synchronized: true,
		Logger:       zap.New(core),
	})

	assert.IsType(t, &pool.Synchronized[*tuple2.Tup2str]{}, r.Tup2str.Internal())
	assert.IsType(t, &pool.Synchronized[*color.HDRColor3]{}, r.HDRColor3.Internal())
	assert.NoError(t, r.Tup2str.Store(nil))

	require.NoError(t, r.Tup4d.Ensure(3))

	entries := logs.FilterMessage("pool grown").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pool", entries[0].LoggerName)
	assert.Equal(t, "*tuple4.Tup4d", entries[0].ContextMap()["type"])
}
