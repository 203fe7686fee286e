// Package registry bundles one pool facade per managed type.
package registry

import (
	"github.com/rdeusser/barghos/color"
	"github.com/rdeusser/barghos/pool"
	"github.com/rdeusser/barghos/tuple2"
	"github.com/rdeusser/barghos/tuple3"
	"github.com/rdeusser/barghos/tuple4"
)

// Registry owns a facade for every tuple and color type. All facades share
// the Settings the registry was built with, but each has its own store.
type Registry struct {
	Tup2i    *tuple2.Tup2iPool
	Tup2l    *tuple2.Tup2lPool
	Tup2f    *tuple2.Tup2fPool
	Tup2d    *tuple2.Tup2dPool
	Tup2bigd *tuple2.Tup2bigdPool
	Tup2obj  *tuple2.Tup2objPool
	Tup2str  *tuple2.Tup2strPool

	Tup3i    *tuple3.Tup3iPool
	Tup3l    *tuple3.Tup3lPool
	Tup3f    *tuple3.Tup3fPool
	Tup3d    *tuple3.Tup3dPool
	Tup3bigd *tuple3.Tup3bigdPool
	Tup3obj  *tuple3.Tup3objPool
	Tup3str  *tuple3.Tup3strPool

	Tup4i    *tuple4.Tup4iPool
	Tup4l    *tuple4.Tup4lPool
	Tup4f    *tuple4.Tup4fPool
	Tup4d    *tuple4.Tup4dPool
	Tup4bigd *tuple4.Tup4bigdPool
	Tup4obj  *tuple4.Tup4objPool
	Tup4str  *tuple4.Tup4strPool

	LDRColor3 *color.LDRColor3Pool
	LDRColor4 *color.LDRColor4Pool
	HDRColor3 *color.HDRColor3Pool
	HDRColor4 *color.HDRColor4Pool
}

// New builds every facade from s.
func New(s pool.Settings) *Registry {
	return &Registry{
		Tup2i:    tuple2.NewTup2iPool(s),
		Tup2l:    tuple2.NewTup2lPool(s),
		Tup2f:    tuple2.NewTup2fPool(s),
		Tup2d:    tuple2.NewTup2dPool(s),
		Tup2bigd: tuple2.NewTup2bigdPool(s),
		Tup2obj:  tuple2.NewTup2objPool(s),
		Tup2str:  tuple2.NewTup2strPool(s),

		Tup3i:    tuple3.NewTup3iPool(s),
		Tup3l:    tuple3.NewTup3lPool(s),
		Tup3f:    tuple3.NewTup3fPool(s),
		Tup3d:    tuple3.NewTup3dPool(s),
		Tup3bigd: tuple3.NewTup3bigdPool(s),
		Tup3obj:  tuple3.NewTup3objPool(s),
		Tup3str:  tuple3.NewTup3strPool(s),

		Tup4i:    tuple4.NewTup4iPool(s),
		Tup4l:    tuple4.NewTup4lPool(s),
		Tup4f:    tuple4.NewTup4fPool(s),
		Tup4d:    tuple4.NewTup4dPool(s),
		Tup4bigd: tuple4.NewTup4bigdPool(s),
		Tup4obj:  tuple4.NewTup4objPool(s),
		Tup4str:  tuple4.NewTup4strPool(s),

		LDRColor3: color.NewLDRColor3Pool(s),
		LDRColor4: color.NewLDRColor4Pool(s),
		HDRColor3: color.NewHDRColor3Pool(s),
		HDRColor4: color.NewHDRColor4Pool(s),
	}
}
