package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in field units.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Approx(o Vec2) bool   { return Approx(v.X, o.X) && Approx(v.Y, o.Y) }

func (v Vec2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y)
}

// Epsilon is the tolerance used by Approx.
const Epsilon = 1e-9

func Approx(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
