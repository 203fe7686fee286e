// Package tuple3 holds tuples of 3 components over every scalar kind, their
// read-only variants and their pool facades.
package tuple3

//go:generate go run ../tools/gen-tuple -type=Tup3i
//go:generate go run ../tools/gen-tuple -type=Tup3l
//go:generate go run ../tools/gen-tuple -type=Tup3f
//go:generate go run ../tools/gen-tuple -type=Tup3d
//go:generate go run ../tools/gen-tuple -type=Tup3bigd
//go:generate go run ../tools/gen-tuple -type=Tup3obj
//go:generate go run ../tools/gen-tuple -type=Tup3str
