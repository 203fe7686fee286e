package color

//go:generate go run ../tools/gen-tuple -type=LDRColor3 -pool-only -scalar=float32 -int-scalar=int32 -components=r,g,b -source=tuple3.Tup3fR -source-import=github.com/rdeusser/barghos/tuple3
//go:generate go run ../tools/gen-tuple -type=LDRColor4 -pool-only -scalar=float32 -int-scalar=int32 -components=r,g,b,a -source=tuple4.Tup4fR -source-import=github.com/rdeusser/barghos/tuple4
//go:generate go run ../tools/gen-tuple -type=HDRColor3 -pool-only -scalar=float32 -int-scalar=int32 -components=r,g,b -source=tuple3.Tup3fR -source-import=github.com/rdeusser/barghos/tuple3
//go:generate go run ../tools/gen-tuple -type=HDRColor4 -pool-only -scalar=float32 -int-scalar=int32 -components=r,g,b,a -source=tuple4.Tup4fR -source-import=github.com/rdeusser/barghos/tuple4
