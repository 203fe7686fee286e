package color

import (
	"github.com/rdeusser/barghos/tuple3"
	"github.com/rdeusser/barghos/tuple4"
)

// LDRColor3 is a low dynamic range color. Every write clamps the channels to
// [0, 1].
type LDRColor3 struct {
	r, g, b float32
}

var (
	_ Color3R       = (*LDRColor3)(nil)
	_ tuple3.Tup3fR = (*LDRColor3)(nil)
)

func NewLDRColor3(r, g, b float32) *LDRColor3 {
	return new(LDRColor3).SetComponents(r, g, b)
}

func (c *LDRColor3) UnityR() float32 { return c.r }
func (c *LDRColor3) UnityG() float32 { return c.g }
func (c *LDRColor3) UnityB() float32 { return c.b }
func (c *LDRColor3) R() int32        { return toByte(c.r) }
func (c *LDRColor3) G() int32        { return toByte(c.g) }
func (c *LDRColor3) B() int32        { return toByte(c.b) }

func (c *LDRColor3) X() float32 { return c.r }
func (c *LDRColor3) Y() float32 { return c.g }
func (c *LDRColor3) Z() float32 { return c.b }

func (c *LDRColor3) SetUnityR(r float32) *LDRColor3 {
	c.r = clampUnit(r)
	return c
}

func (c *LDRColor3) SetUnityG(g float32) *LDRColor3 {
	c.g = clampUnit(g)
	return c
}

func (c *LDRColor3) SetUnityB(b float32) *LDRColor3 {
	c.b = clampUnit(b)
	return c
}

func (c *LDRColor3) SetR(r int32) *LDRColor3 {
	return c.SetUnityR(toUnit(r))
}

func (c *LDRColor3) SetG(g int32) *LDRColor3 {
	return c.SetUnityG(toUnit(g))
}

func (c *LDRColor3) SetB(b int32) *LDRColor3 {
	return c.SetUnityB(toUnit(b))
}

// Set copies the unit-space channels from src.
func (c *LDRColor3) Set(src tuple3.Tup3fR) *LDRColor3 {
	return c.SetComponents(src.X(), src.Y(), src.Z())
}

// SetInt copies 8-bit channels from src.
func (c *LDRColor3) SetInt(src tuple3.Tup3iR) *LDRColor3 {
	return c.SetComponentsInt(src.X(), src.Y(), src.Z())
}

func (c *LDRColor3) SetScalar(v float32) *LDRColor3 {
	return c.SetComponents(v, v, v)
}

func (c *LDRColor3) SetScalarInt(v int32) *LDRColor3 {
	return c.SetComponentsInt(v, v, v)
}

func (c *LDRColor3) SetComponents(r, g, b float32) *LDRColor3 {
	return c.SetUnityR(r).SetUnityG(g).SetUnityB(b)
}

func (c *LDRColor3) SetComponentsInt(r, g, b int32) *LDRColor3 {
	return c.SetR(r).SetG(g).SetB(b)
}

func (c *LDRColor3) Clone() *LDRColor3 {
	clone := *c
	return &clone
}

func (c *LDRColor3) Equal(other any) bool {
	return equal3(c, other)
}

func (c *LDRColor3) String() string {
	return format3("ldrcolor3", c)
}

// LDRColor4 is a low dynamic range color. Every write clamps the channels to
// [0, 1].
type LDRColor4 struct {
	r, g, b, a float32
}

var (
	_ Color4R       = (*LDRColor4)(nil)
	_ tuple4.Tup4fR = (*LDRColor4)(nil)
)

func NewLDRColor4(r, g, b, a float32) *LDRColor4 {
	return new(LDRColor4).SetComponents(r, g, b, a)
}

func (c *LDRColor4) UnityR() float32 { return c.r }
func (c *LDRColor4) UnityG() float32 { return c.g }
func (c *LDRColor4) UnityB() float32 { return c.b }
func (c *LDRColor4) UnityA() float32 { return c.a }
func (c *LDRColor4) R() int32        { return toByte(c.r) }
func (c *LDRColor4) G() int32        { return toByte(c.g) }
func (c *LDRColor4) B() int32        { return toByte(c.b) }
func (c *LDRColor4) A() int32        { return toByte(c.a) }

func (c *LDRColor4) X() float32 { return c.r }
func (c *LDRColor4) Y() float32 { return c.g }
func (c *LDRColor4) Z() float32 { return c.b }
func (c *LDRColor4) W() float32 { return c.a }

func (c *LDRColor4) SetUnityR(r float32) *LDRColor4 {
	c.r = clampUnit(r)
	return c
}

func (c *LDRColor4) SetUnityG(g float32) *LDRColor4 {
	c.g = clampUnit(g)
	return c
}

func (c *LDRColor4) SetUnityB(b float32) *LDRColor4 {
	c.b = clampUnit(b)
	return c
}

func (c *LDRColor4) SetUnityA(a float32) *LDRColor4 {
	c.a = clampUnit(a)
	return c
}

func (c *LDRColor4) SetR(r int32) *LDRColor4 {
	return c.SetUnityR(toUnit(r))
}

func (c *LDRColor4) SetG(g int32) *LDRColor4 {
	return c.SetUnityG(toUnit(g))
}

func (c *LDRColor4) SetB(b int32) *LDRColor4 {
	return c.SetUnityB(toUnit(b))
}

func (c *LDRColor4) SetA(a int32) *LDRColor4 {
	return c.SetUnityA(toUnit(a))
}

// Set copies the unit-space channels from src.
func (c *LDRColor4) Set(src tuple4.Tup4fR) *LDRColor4 {
	return c.SetComponents(src.X(), src.Y(), src.Z(), src.W())
}

// SetInt copies 8-bit channels from src.
func (c *LDRColor4) SetInt(src tuple4.Tup4iR) *LDRColor4 {
	return c.SetComponentsInt(src.X(), src.Y(), src.Z(), src.W())
}

func (c *LDRColor4) SetScalar(v float32) *LDRColor4 {
	return c.SetComponents(v, v, v, v)
}

func (c *LDRColor4) SetScalarInt(v int32) *LDRColor4 {
	return c.SetComponentsInt(v, v, v, v)
}

func (c *LDRColor4) SetComponents(r, g, b, a float32) *LDRColor4 {
	return c.SetUnityR(r).SetUnityG(g).SetUnityB(b).SetUnityA(a)
}

func (c *LDRColor4) SetComponentsInt(r, g, b, a int32) *LDRColor4 {
	return c.SetR(r).SetG(g).SetB(b).SetA(a)
}

func (c *LDRColor4) Clone() *LDRColor4 {
	clone := *c
	return &clone
}

func (c *LDRColor4) Equal(other any) bool {
	return equal4(c, other)
}

func (c *LDRColor4) String() string {
	return format4("ldrcolor4", c)
}
