package color

import (
	"github.com/rdeusser/barghos/check"
	"github.com/rdeusser/barghos/tuple3"
	"github.com/rdeusser/barghos/tuple4"
)

// PLDRColor3 is a read-only low dynamic range color. Channels are clamped to
// [0, 1] when it is generated.
type PLDRColor3 struct {
	r, g, b float32
}

var (
	_ Color3R       = PLDRColor3{}
	_ tuple3.Tup3fR = PLDRColor3{}
)

func GenPLDRColor3(r, g, b float32) PLDRColor3 {
	return PLDRColor3{r: clampUnit(r), g: clampUnit(g), b: clampUnit(b)}
}

func GenPLDRColor3Scalar(v float32) PLDRColor3 {
	return GenPLDRColor3(v, v, v)
}

// GenPLDRColor3Int generates a color from 8-bit channels.
func GenPLDRColor3Int(r, g, b int32) PLDRColor3 {
	return GenPLDRColor3(toUnit(r), toUnit(g), toUnit(b))
}

func GenPLDRColor3ScalarInt(v int32) PLDRColor3 {
	return GenPLDRColor3Int(v, v, v)
}

func GenPLDRColor3From(src tuple3.Tup3fR) (PLDRColor3, error) {
	if check.IsNil(src) {
		return PLDRColor3{}, check.ArgumentNull("src")
	}
	return GenPLDRColor3(src.X(), src.Y(), src.Z()), nil
}

func GenPLDRColor3FromInt(src tuple3.Tup3iR) (PLDRColor3, error) {
	if check.IsNil(src) {
		return PLDRColor3{}, check.ArgumentNull("src")
	}
	return GenPLDRColor3Int(src.X(), src.Y(), src.Z()), nil
}

func (c PLDRColor3) UnityR() float32 { return c.r }
func (c PLDRColor3) UnityG() float32 { return c.g }
func (c PLDRColor3) UnityB() float32 { return c.b }
func (c PLDRColor3) R() int32        { return toByte(c.r) }
func (c PLDRColor3) G() int32        { return toByte(c.g) }
func (c PLDRColor3) B() int32        { return toByte(c.b) }

func (c PLDRColor3) X() float32 { return c.r }
func (c PLDRColor3) Y() float32 { return c.g }
func (c PLDRColor3) Z() float32 { return c.b }

func (c PLDRColor3) Equal(other any) bool {
	return equal3(c, other)
}

func (c PLDRColor3) String() string {
	return format3("pldrcolor3", c)
}

// PLDRColor4 is a read-only low dynamic range color. Channels are clamped to
// [0, 1] when it is generated.
type PLDRColor4 struct {
	r, g, b, a float32
}

var (
	_ Color4R       = PLDRColor4{}
	_ tuple4.Tup4fR = PLDRColor4{}
)

func GenPLDRColor4(r, g, b, a float32) PLDRColor4 {
	return PLDRColor4{r: clampUnit(r), g: clampUnit(g), b: clampUnit(b), a: clampUnit(a)}
}

func GenPLDRColor4Scalar(v float32) PLDRColor4 {
	return GenPLDRColor4(v, v, v, v)
}

// GenPLDRColor4Int generates a color from 8-bit channels.
func GenPLDRColor4Int(r, g, b, a int32) PLDRColor4 {
	return GenPLDRColor4(toUnit(r), toUnit(g), toUnit(b), toUnit(a))
}

func GenPLDRColor4ScalarInt(v int32) PLDRColor4 {
	return GenPLDRColor4Int(v, v, v, v)
}

func GenPLDRColor4From(src tuple4.Tup4fR) (PLDRColor4, error) {
	if check.IsNil(src) {
		return PLDRColor4{}, check.ArgumentNull("src")
	}
	return GenPLDRColor4(src.X(), src.Y(), src.Z(), src.W()), nil
}

func GenPLDRColor4FromInt(src tuple4.Tup4iR) (PLDRColor4, error) {
	if check.IsNil(src) {
		return PLDRColor4{}, check.ArgumentNull("src")
	}
	return GenPLDRColor4Int(src.X(), src.Y(), src.Z(), src.W()), nil
}

func (c PLDRColor4) UnityR() float32 { return c.r }
func (c PLDRColor4) UnityG() float32 { return c.g }
func (c PLDRColor4) UnityB() float32 { return c.b }
func (c PLDRColor4) UnityA() float32 { return c.a }
func (c PLDRColor4) R() int32        { return toByte(c.r) }
func (c PLDRColor4) G() int32        { return toByte(c.g) }
func (c PLDRColor4) B() int32        { return toByte(c.b) }
func (c PLDRColor4) A() int32        { return toByte(c.a) }

func (c PLDRColor4) X() float32 { return c.r }
func (c PLDRColor4) Y() float32 { return c.g }
func (c PLDRColor4) Z() float32 { return c.b }
func (c PLDRColor4) W() float32 { return c.a }

func (c PLDRColor4) Equal(other any) bool {
	return equal4(c, other)
}

func (c PLDRColor4) String() string {
	return format4("pldrcolor4", c)
}

// PHDRColor3 is a read-only high dynamic range color.
type PHDRColor3 struct {
	r, g, b float32
}

var (
	_ Color3R       = PHDRColor3{}
	_ tuple3.Tup3fR = PHDRColor3{}
)

func GenPHDRColor3(r, g, b float32) PHDRColor3 {
	return PHDRColor3{r: r, g: g, b: b}
}

func GenPHDRColor3Scalar(v float32) PHDRColor3 {
	return GenPHDRColor3(v, v, v)
}

// GenPHDRColor3Int generates a color from 8-bit channels.
func GenPHDRColor3Int(r, g, b int32) PHDRColor3 {
	return GenPHDRColor3(toUnit(r), toUnit(g), toUnit(b))
}

func GenPHDRColor3ScalarInt(v int32) PHDRColor3 {
	return GenPHDRColor3Int(v, v, v)
}

func GenPHDRColor3From(src tuple3.Tup3fR) (PHDRColor3, error) {
	if check.IsNil(src) {
		return PHDRColor3{}, check.ArgumentNull("src")
	}
	return GenPHDRColor3(src.X(), src.Y(), src.Z()), nil
}

func GenPHDRColor3FromInt(src tuple3.Tup3iR) (PHDRColor3, error) {
	if check.IsNil(src) {
		return PHDRColor3{}, check.ArgumentNull("src")
	}
	return GenPHDRColor3Int(src.X(), src.Y(), src.Z()), nil
}

func (c PHDRColor3) UnityR() float32 { return c.r }
func (c PHDRColor3) UnityG() float32 { return c.g }
func (c PHDRColor3) UnityB() float32 { return c.b }
func (c PHDRColor3) R() int32        { return toByte(c.r) }
func (c PHDRColor3) G() int32        { return toByte(c.g) }
func (c PHDRColor3) B() int32        { return toByte(c.b) }

func (c PHDRColor3) X() float32 { return c.r }
func (c PHDRColor3) Y() float32 { return c.g }
func (c PHDRColor3) Z() float32 { return c.b }

func (c PHDRColor3) Equal(other any) bool {
	return equal3(c, other)
}

func (c PHDRColor3) String() string {
	return format3("phdrcolor3", c)
}

// PHDRColor4 is a read-only high dynamic range color.
type PHDRColor4 struct {
	r, g, b, a float32
}

var (
	_ Color4R       = PHDRColor4{}
	_ tuple4.Tup4fR = PHDRColor4{}
)

func GenPHDRColor4(r, g, b, a float32) PHDRColor4 {
	return PHDRColor4{r: r, g: g, b: b, a: a}
}

func GenPHDRColor4Scalar(v float32) PHDRColor4 {
	return GenPHDRColor4(v, v, v, v)
}

// GenPHDRColor4Int generates a color from 8-bit channels.
func GenPHDRColor4Int(r, g, b, a int32) PHDRColor4 {
	return GenPHDRColor4(toUnit(r), toUnit(g), toUnit(b), toUnit(a))
}

func GenPHDRColor4ScalarInt(v int32) PHDRColor4 {
	return GenPHDRColor4Int(v, v, v, v)
}

func GenPHDRColor4From(src tuple4.Tup4fR) (PHDRColor4, error) {
	if check.IsNil(src) {
		return PHDRColor4{}, check.ArgumentNull("src")
	}
	return GenPHDRColor4(src.X(), src.Y(), src.Z(), src.W()), nil
}

func GenPHDRColor4FromInt(src tuple4.Tup4iR) (PHDRColor4, error) {
	if check.IsNil(src) {
		return PHDRColor4{}, check.ArgumentNull("src")
	}
	return GenPHDRColor4Int(src.X(), src.Y(), src.Z(), src.W()), nil
}

func (c PHDRColor4) UnityR() float32 { return c.r }
func (c PHDRColor4) UnityG() float32 { return c.g }
func (c PHDRColor4) UnityB() float32 { return c.b }
func (c PHDRColor4) UnityA() float32 { return c.a }
func (c PHDRColor4) R() int32        { return toByte(c.r) }
func (c PHDRColor4) G() int32        { return toByte(c.g) }
func (c PHDRColor4) B() int32        { return toByte(c.b) }
func (c PHDRColor4) A() int32        { return toByte(c.a) }

func (c PHDRColor4) X() float32 { return c.r }
func (c PHDRColor4) Y() float32 { return c.g }
func (c PHDRColor4) Z() float32 { return c.b }
func (c PHDRColor4) W() float32 { return c.a }

func (c PHDRColor4) Equal(other any) bool {
	return equal4(c, other)
}

func (c PHDRColor4) String() string {
	return format4("phdrcolor4", c)
}
