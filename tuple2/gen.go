// Package tuple2 holds tuples of 2 components over every scalar kind, their
// read-only variants and their pool facades.
package tuple2

//go:generate go run ../tools/gen-tuple -type=Tup2i
//go:generate go run ../tools/gen-tuple -type=Tup2l
//go:generate go run ../tools/gen-tuple -type=Tup2f
//go:generate go run ../tools/gen-tuple -type=Tup2d
//go:generate go run ../tools/gen-tuple -type=Tup2bigd
//go:generate go run ../tools/gen-tuple -type=Tup2obj
//go:generate go run ../tools/gen-tuple -type=Tup2str
