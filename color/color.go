// Package color provides LDR and HDR RGB/RGBA colors over unit-space float
// channels, their read-only variants and their pool facades.
//
// Channels are stored in unit space, where 1.0 is full intensity. The 8-bit
// accessors convert on the fly: SetR(i) stores i/255 and R() returns the
// stored unit value times 255, rounded. LDR colors clamp to [0, 1] on every
// write; HDR colors keep whatever they are given.
package color

import (
	"fmt"
	"math"

	"github.com/rdeusser/barghos/check"
)

const unitPerByte float32 = 1.0 / 255

// Color3R is implemented by every readable color with red, green and blue
// channels.
type Color3R interface {
	UnityR() float32
	UnityG() float32
	UnityB() float32
	R() int32
	G() int32
	B() int32
}

// Color4R is a Color3R with an alpha channel.
type Color4R interface {
	Color3R
	UnityA() float32
	A() int32
}

func toUnit(i int32) float32 {
	return float32(i) * unitPerByte
}

// toByte rounds halves up: -127.5 becomes -127.
func toByte(unit float32) int32 {
	return int32(math.Floor(float64(unit*255) + 0.5))
}

func clampUnit(unit float32) float32 {
	switch {
	case unit > 1:
		return 1
	case unit < 0:
		return 0
	default:
		return unit
	}
}

// equal3 matches three channel colors only; a Color4R never equals a Color3R.
func equal3(c Color3R, other any) bool {
	if _, ok := other.(Color4R); ok {
		return false
	}

	o, ok := other.(Color3R)
	if !ok || check.IsNil(o) {
		return false
	}

	return c.UnityR() == o.UnityR() && c.UnityG() == o.UnityG() && c.UnityB() == o.UnityB()
}

func equal4(c Color4R, other any) bool {
	o, ok := other.(Color4R)
	if !ok || check.IsNil(o) {
		return false
	}

	return c.UnityR() == o.UnityR() && c.UnityG() == o.UnityG() && c.UnityB() == o.UnityB() &&
		c.UnityA() == o.UnityA()
}

func format3(name string, c Color3R) string {
	return fmt.Sprintf("%s(r=%v, g=%v, b=%v)", name, c.UnityR(), c.UnityG(), c.UnityB())
}

func format4(name string, c Color4R) string {
	return fmt.Sprintf("%s(r=%v, g=%v, b=%v, a=%v)", name, c.UnityR(), c.UnityG(), c.UnityB(), c.UnityA())
}
