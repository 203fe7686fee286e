package color

import (
	"github.com/rdeusser/barghos/tuple3"
	"github.com/rdeusser/barghos/tuple4"
)

// HDRColor3 is a high dynamic range color. Channels are not clamped, so R() and
// friends may return values outside [0, 255].
type HDRColor3 struct {
	r, g, b float32
}

var (
	_ Color3R       = (*HDRColor3)(nil)
	_ tuple3.Tup3fR = (*HDRColor3)(nil)
)

func NewHDRColor3(r, g, b float32) *HDRColor3 {
	return new(HDRColor3).SetComponents(r, g, b)
}

func (c *HDRColor3) UnityR() float32 { return c.r }
func (c *HDRColor3) UnityG() float32 { return c.g }
func (c *HDRColor3) UnityB() float32 { return c.b }
func (c *HDRColor3) R() int32        { return toByte(c.r) }
func (c *HDRColor3) G() int32        { return toByte(c.g) }
func (c *HDRColor3) B() int32        { return toByte(c.b) }

func (c *HDRColor3) X() float32 { return c.r }
func (c *HDRColor3) Y() float32 { return c.g }
func (c *HDRColor3) Z() float32 { return c.b }

func (c *HDRColor3) SetUnityR(r float32) *HDRColor3 {
	c.r = r
	return c
}

func (c *HDRColor3) SetUnityG(g float32) *HDRColor3 {
	c.g = g
	return c
}

func (c *HDRColor3) SetUnityB(b float32) *HDRColor3 {
	c.b = b
	return c
}

func (c *HDRColor3) SetR(r int32) *HDRColor3 {
	return c.SetUnityR(toUnit(r))
}

func (c *HDRColor3) SetG(g int32) *HDRColor3 {
	return c.SetUnityG(toUnit(g))
}

func (c *HDRColor3) SetB(b int32) *HDRColor3 {
	return c.SetUnityB(toUnit(b))
}

// Set copies the unit-space channels from src.
func (c *HDRColor3) Set(src tuple3.Tup3fR) *HDRColor3 {
	return c.SetComponents(src.X(), src.Y(), src.Z())
}

// SetInt copies 8-bit channels from src.
func (c *HDRColor3) SetInt(src tuple3.Tup3iR) *HDRColor3 {
	return c.SetComponentsInt(src.X(), src.Y(), src.Z())
}

func (c *HDRColor3) SetScalar(v float32) *HDRColor3 {
	return c.SetComponents(v, v, v)
}

func (c *HDRColor3) SetScalarInt(v int32) *HDRColor3 {
	return c.SetComponentsInt(v, v, v)
}

func (c *HDRColor3) SetComponents(r, g, b float32) *HDRColor3 {
	return c.SetUnityR(r).SetUnityG(g).SetUnityB(b)
}

func (c *HDRColor3) SetComponentsInt(r, g, b int32) *HDRColor3 {
	return c.SetR(r).SetG(g).SetB(b)
}

func (c *HDRColor3) Clone() *HDRColor3 {
	clone := *c
	return &clone
}

func (c *HDRColor3) Equal(other any) bool {
	return equal3(c, other)
}

func (c *HDRColor3) String() string {
	return format3("hdrcolor3", c)
}

// HDRColor4 is a high dynamic range color. Channels are not clamped, so R() and
// friends may return values outside [0, 255].
type HDRColor4 struct {
	r, g, b, a float32
}

var (
	_ Color4R       = (*HDRColor4)(nil)
	_ tuple4.Tup4fR = (*HDRColor4)(nil)
)

func NewHDRColor4(r, g, b, a float32) *HDRColor4 {
	return new(HDRColor4).SetComponents(r, g, b, a)
}

func (c *HDRColor4) UnityR() float32 { return c.r }
func (c *HDRColor4) UnityG() float32 { return c.g }
func (c *HDRColor4) UnityB() float32 { return c.b }
func (c *HDRColor4) UnityA() float32 { return c.a }
func (c *HDRColor4) R() int32        { return toByte(c.r) }
func (c *HDRColor4) G() int32        { return toByte(c.g) }
func (c *HDRColor4) B() int32        { return toByte(c.b) }
func (c *HDRColor4) A() int32        { return toByte(c.a) }

func (c *HDRColor4) X() float32 { return c.r }
func (c *HDRColor4) Y() float32 { return c.g }
func (c *HDRColor4) Z() float32 { return c.b }
func (c *HDRColor4) W() float32 { return c.a }

func (c *HDRColor4) SetUnityR(r float32) *HDRColor4 {
	c.r = r
	return c
}

func (c *HDRColor4) SetUnityG(g float32) *HDRColor4 {
	c.g = g
	return c
}

func (c *HDRColor4) SetUnityB(b float32) *HDRColor4 {
	c.b = b
	return c
}

func (c *HDRColor4) SetUnityA(a float32) *HDRColor4 {
	c.a = a
	return c
}

func (c *HDRColor4) SetR(r int32) *HDRColor4 {
	return c.SetUnityR(toUnit(r))
}

func (c *HDRColor4) SetG(g int32) *HDRColor4 {
	return c.SetUnityG(toUnit(g))
}

func (c *HDRColor4) SetB(b int32) *HDRColor4 {
	return c.SetUnityB(toUnit(b))
}

func (c *HDRColor4) SetA(a int32) *HDRColor4 {
	return c.SetUnityA(toUnit(a))
}

// Set copies the unit-space channels from src.
func (c *HDRColor4) Set(src tuple4.Tup4fR) *HDRColor4 {
	return c.SetComponents(src.X(), src.Y(), src.Z(), src.W())
}

// SetInt copies 8-bit channels from src.
func (c *HDRColor4) SetInt(src tuple4.Tup4iR) *HDRColor4 {
	return c.SetComponentsInt(src.X(), src.Y(), src.Z(), src.W())
}

func (c *HDRColor4) SetScalar(v float32) *HDRColor4 {
	return c.SetComponents(v, v, v, v)
}

func (c *HDRColor4) SetScalarInt(v int32) *HDRColor4 {
	return c.SetComponentsInt(v, v, v, v)
}

func (c *HDRColor4) SetComponents(r, g, b, a float32) *HDRColor4 {
	return c.SetUnityR(r).SetUnityG(g).SetUnityB(b).SetUnityA(a)
}

func (c *HDRColor4) SetComponentsInt(r, g, b, a int32) *HDRColor4 {
	return c.SetR(r).SetG(g).SetB(b).SetA(a)
}

func (c *HDRColor4) Clone() *HDRColor4 {
	clone := *c
	return &clone
}

func (c *HDRColor4) Equal(other any) bool {
	return equal4(c, other)
}

func (c *HDRColor4) String() string {
	return format4("hdrcolor4", c)
}
