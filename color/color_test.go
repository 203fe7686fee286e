package color

import (
	"testing"

	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/pool"
	"github.com/rdeusser/barghos/tuple3"
	"github.com/rdeusser/barghos/tuple4"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestByteRoundTrip(t *testing.T) {
	ldr := new(LDRColor3)
	hdr := new(HDRColor4)

	for i := int32(0); i <= 255; i++ {
		assert.Equal(t, i, ldr.SetR(i).R())
		assert.Equal(t, i, ldr.SetG(i).G())
		assert.Equal(t, i, ldr.SetB(i).B())
		assert.Equal(t, i, hdr.SetA(i).A())
		assert.Equal(t, i, GenPLDRColor4Int(i, i, i, i).A())
	}
}

func TestPersistentLDRClamp(t *testing.T) {
	c := GenPLDRColor3(1.5, -0.3, 0.5)

	assert.Equal(t, float32(1), c.UnityR())
	assert.Equal(t, float32(0), c.UnityG())
	assert.Equal(t, float32(0.5), c.UnityB())
	assert.Equal(t, int32(255), c.R())
	assert.Equal(t, int32(0), c.G())
	assert.Equal(t, int32(128), c.B())

	i := GenPLDRColor3Int(300, -5, 128)
	assert.Equal(t, int32(255), i.R())
	assert.Equal(t, int32(0), i.G())
	assert.Equal(t, int32(128), i.B())
	assert.Equal(t, float32(1), i.UnityR())
}

func TestLDRClampsOnWrite(t *testing.T) {
	c := NewLDRColor4(2, -1, 0.25, 1)

	assert.Equal(t, float32(1), c.UnityR())
	assert.Equal(t, float32(0), c.UnityG())
	assert.Equal(t, float32(0.25), c.UnityB())
	assert.Equal(t, int32(255), c.SetA(1000).A())
	assert.Equal(t, int32(0), c.SetA(-1000).A())
}

func TestHDRDoesNotClamp(t *testing.T) {
	c := NewHDRColor3(1.5, -0.5, 0)

	assert.Equal(t, float32(1.5), c.UnityR())
	assert.Equal(t, int32(383), c.R())
	assert.Equal(t, int32(-127), c.G())
	assert.Equal(t, int32(-637), c.SetUnityB(-2.5).B())

	p := GenPHDRColor4Int(510, 0, 0, 255)
	assert.Equal(t, int32(510), p.R())
	assert.Equal(t, int32(255), p.A())
}

func TestTupleInterop(t *testing.T) {
	c := new(LDRColor3).Set(tuple3.NewTup3f(0.25, 0.5, 0.75))
	assert.Equal(t, "ldrcolor3(r=0.25, g=0.5, b=0.75)", c.String())

	c.SetInt(tuple3.NewTup3i(255, 0, 51))
	assert.Equal(t, int32(255), c.R())
	assert.Equal(t, int32(0), c.G())
	assert.Equal(t, int32(51), c.B())

	v := tuple4.NewTup4f(0, 0, 0, 0).Set(NewHDRColor4(2, 1, 0.5, 0.25))
	assert.True(t, v.Equal(tuple4.GenPTup4f(2, 1, 0.5, 0.25)))

	p, err := GenPHDRColor4From(v)
	require.NoError(t, err)
	assert.Equal(t, "phdrcolor4(r=2, g=1, b=0.5, a=0.25)", p.String())

	var src *tuple3.Tup3f
	_, err = GenPLDRColor3From(src)
	assert.ErrorIs(t, err, check.ErrArgumentNull)

	_, err = GenPLDRColor3FromInt(nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
}

func TestEqual(t *testing.T) {
	var typedNil *LDRColor3

	c := NewLDRColor3(1, 0.5, 0)

	testCases := []struct {
		testName string
		other    any
		want     bool
	}{
		{"self", c, true},
		{"clone", c.Clone(), true},
		{"persistent", GenPLDRColor3(1, 0.5, 0), true},
		{"hdr with same channels", NewHDRColor3(1, 0.5, 0), true},
		{"different channel", NewLDRColor3(1, 0.5, 0.1), false},
		{"four channels", NewLDRColor4(1, 0.5, 0, 1), false},
		{"tuple", tuple3.NewTup3f(1, 0.5, 0), false},
		{"nil", nil, false},
		{"typed nil", typedNil, false},
		{"unrelated", 42, false},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Equal(tc.other))
		})
	}

	assert.True(t, GenPLDRColor4(0, 0, 0, 1).Equal(NewLDRColor4(0, 0, 0, 1)))
	assert.False(t, GenPLDRColor4(0, 0, 0, 1).Equal(NewLDRColor4(0, 0, 0, 0.5)))
}

func TestColorPool(t *testing.T) {
	p := NewLDRColor3Pool(pool.Settings{})

	c := p.GetComponents(2, 0.5, -1)
	assert.Equal(t, "ldrcolor3(r=1, g=0.5, b=0)", c.String())
	require.NoError(t, p.Store(c))

	assert.Same(t, c, p.GetPlain())
	assert.Equal(t, "ldrcolor3(r=1, g=0.5, b=0)", c.String())
	require.NoError(t, p.Store(c))

	assert.Equal(t, "ldrcolor3(r=0, g=0, b=0)", p.Get().String())

	from, err := p.GetFrom(GenPLDRColor3(0.1, 0.2, 0.3))
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), from.UnityG())

	_, err = p.GetFrom(nil)
	assert.ErrorIs(t, err, check.ErrArgumentNull)
	assert.ErrorIs(t, p.Store(nil), check.ErrArgumentNull)
	assert.ErrorIs(t, p.Ensure(-1), check.ErrInvalidArgument)

	h := NewHDRColor4Pool(pool.Settings{Initial: 2})
	assert.Equal(t, 2, h.Internal().Len())
	assert.Equal(t, float32(4), h.GetScalar(4).UnityA())
	assert.Equal(t, 1, h.Internal().Len())
}

func TestColorPoolIntegerChannels(t *testing.T) {
	ldr := NewLDRColor3Pool(pool.Settings{})

	c := ldr.GetComponentsInt(300, 128, -5)
	assert.Equal(t, int32(255), c.R())
	assert.Equal(t, int32(128), c.G())
	assert.Equal(t, int32(0), c.B())
	require.NoError(t, ldr.Store(c))

	assert.Same(t, c, ldr.GetScalarInt(51))
	assert.Equal(t, int32(51), c.G())

	hdr := NewHDRColor4Pool(pool.Settings{})

	h := hdr.GetComponentsInt(510, 0, 255, 128)
	assert.Equal(t, int32(510), h.R())
	assert.Equal(t, int32(128), h.A())
	assert.Equal(t, int32(64), hdr.GetScalarInt(64).B())

	assert.Equal(t, int32(255), NewLDRColor4Pool(pool.Settings{}).GetScalarInt(1000).A())
	assert.Equal(t, int32(7), NewHDRColor3Pool(pool.Settings{}).GetComponentsInt(1, 2, 7).B())
}

func TestColorPoolValidationDisabled(t *testing.T) {
	p := NewLDRColor4Pool(pool.Settings{Mode: check.Disabled})

	assert.NoError(t, p.Store(nil))
	assert.NoError(t, p.Ensure(-3))
}

func TestFuzzLDRStaysInRange(t *testing.T) {
	f := gofuzz.New().NilChance(0)

	for i := 0; i < 1000; i++ {
		var r, g, b, a float32

		f.Fuzz(&r)
		f.Fuzz(&g)
		f.Fuzz(&b)
		f.Fuzz(&a)

		for _, c := range []Color4R{NewLDRColor4(r, g, b, a), GenPLDRColor4(r, g, b, a)} {
			for _, unit := range []float32{c.UnityR(), c.UnityG(), c.UnityB(), c.UnityA()} {
				assert.GreaterOrEqual(t, unit, float32(0))
				assert.LessOrEqual(t, unit, float32(1))
			}

			for _, v := range []int32{c.R(), c.G(), c.B(), c.A()} {
				assert.GreaterOrEqual(t, v, int32(0))
				assert.LessOrEqual(t, v, int32(255))
			}
		}
	}
}
