// Package tuple4 holds tuples of 4 components over every scalar kind, their
// read-only variants and their pool facades.
package tuple4

//go:generate go run ../tools/gen-tuple -type=Tup4i
//go:generate go run ../tools/gen-tuple -type=Tup4l
//go:generate go run ../tools/gen-tuple -type=Tup4f
//go:generate go run ../tools/gen-tuple -type=Tup4d
//go:generate go run ../tools/gen-tuple -type=Tup4bigd
//go:generate go run ../tools/gen-tuple -type=Tup4obj
//go:generate go run ../tools/gen-tuple -type=Tup4str
