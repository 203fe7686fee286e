package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		testName string
		options  GeneratorOptions
		scalar   string
		names    []string
		wantErr  bool
	}{
		{
			"four longs",
			GeneratorOptions{Type: "Tup4l"},
			"int64",
			[]string{"x", "y", "z", "w"},
			false,
		},
		{
			"two decimals",
			GeneratorOptions{Type: "Tup2bigd"},
			"decimal.Decimal",
			[]string{"x", "y"},
			false,
		},
		{
			"three objects",
			GeneratorOptions{Type: "Tup3obj"},
			"any",
			[]string{"x", "y", "z"},
			false,
		},
		{
			"unsupported dimension",
			GeneratorOptions{Type: "Tup5i"},
			"",
			nil,
			true,
		},
		{
			"unsupported kind",
			GeneratorOptions{Type: "Tup3u"},
			"",
			nil,
			true,
		},
		{
			"pool only",
			GeneratorOptions{Type: "LDRColor3", PoolOnly: true, Scalar: "float32", Components: "r,g,b", Source: "tuple3.Tup3fR"},
			"float32",
			[]string{"r", "g", "b"},
			false,
		},
		{
			"pool only without source",
			GeneratorOptions{Type: "LDRColor3", PoolOnly: true, Scalar: "float32", Components: "r,g,b"},
			"",
			nil,
			true,
		},
		{
			"pool only duplicate component",
			GeneratorOptions{Type: "LDRColor3", PoolOnly: true, Scalar: "float32", Components: "r,r,b", Source: "tuple3.Tup3fR"},
			"",
			nil,
			true,
		},
		{
			"int scalar on a tuple",
			GeneratorOptions{Type: "Tup3i", IntScalar: "int32"},
			"",
			nil,
			true,
		},
		{
			"pool only unknown component",
			GeneratorOptions{Type: "LDRColor3", PoolOnly: true, Scalar: "float32", Components: "r,g,q", Source: "tuple3.Tup3fR"},
			"",
			nil,
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			g := NewGenerator(tc.options)

			err := g.resolve()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.scalar, g.kind.Scalar)
			assert.Equal(t, tc.names, g.names)
		})
	}
}

func TestRenderTuple(t *testing.T) {
	dir := t.TempDir()

	g := NewGenerator(GeneratorOptions{Args: []string{"-type=Tup4l"}, Type: "Tup4l", Output: dir})
	require.NoError(t, g.resolve())
	g.pkgName = "tuple4"

	src, err := g.render(tupleTmpl, "tup4l.go")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `// Code generated by "gen-tuple -type=Tup4l"; DO NOT EDIT.`)
	assert.Contains(t, out, "func GenPTup4l(x, y, z, w int64) PTup4l {")
	assert.Contains(t, out, "func (t *Tup4l) SetComponents(x, y, z, w int64) *Tup4l {")
	assert.Contains(t, out, `fmt.Sprintf("%s(x=%v, y=%v, z=%v, w=%v)", name, t.X(), t.Y(), t.Z(), t.W())`)
	assert.NotContains(t, out, `"reflect"`)

	written, err := os.ReadFile(filepath.Join(dir, "tup4l.go"))
	require.NoError(t, err)
	assert.Equal(t, src, written)
}

func TestRenderObjectPool(t *testing.T) {
	g := NewGenerator(GeneratorOptions{Args: []string{"-type=Tup2obj"}, Type: "Tup2obj", Output: t.TempDir()})
	require.NoError(t, g.resolve())
	g.pkgName = "tuple2"

	src, err := g.render(poolTmpl, "tup2obj_pool.go")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func (p *Tup2objPool) GetComponents(x, y any) (*Tup2obj, error) {")
	assert.Contains(t, out, `check.ArgumentNull("src.X()")`)
	assert.Contains(t, out, "return p.pool.Get().SetScalar(struct{}{})")
}

func TestRenderDecimalPool(t *testing.T) {
	g := NewGenerator(GeneratorOptions{Args: []string{"-type=Tup3bigd"}, Type: "Tup3bigd", Output: t.TempDir()})
	require.NoError(t, g.resolve())
	g.pkgName = "tuple3"

	src, err := g.render(poolTmpl, "tup3bigd_pool.go")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `"github.com/shopspring/decimal"`)
	assert.Contains(t, out, "return p.pool.Get().SetScalar(decimal.Zero)")
	assert.Contains(t, out, "func (p *Tup3bigdPool) GetComponents(x, y, z decimal.Decimal) *Tup3bigd {")
	assert.NotContains(t, out, "GetScalarInt")
}

func TestRenderColorPool(t *testing.T) {
	g := NewGenerator(GeneratorOptions{
		Args:         []string{"-type=HDRColor4"},
		Type:         "HDRColor4",
		PoolOnly:     true,
		Scalar:       "float32",
		IntScalar:    "int32",
		Components:   "r,g,b,a",
		Source:       "tuple4.Tup4fR",
		SourceImport: "github.com/rdeusser/barghos/tuple4",
		Output:       t.TempDir(),
	})
	require.NoError(t, g.resolve())
	g.pkgName = "color"

	src, err := g.render(poolTmpl, "hdrcolor4_pool.go")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `"github.com/rdeusser/barghos/tuple4"`)
	assert.Contains(t, out, "func (p *HDRColor4Pool) GetFrom(src tuple4.Tup4fR) (*HDRColor4, error) {")
	assert.Contains(t, out, "func (p *HDRColor4Pool) GetComponents(r, g, b, a float32) *HDRColor4 {")
	assert.Contains(t, out, "func (p *HDRColor4Pool) GetScalarInt(v int32) *HDRColor4 {")
	assert.Contains(t, out, "return p.pool.Get().SetComponentsInt(r, g, b, a)")
}
