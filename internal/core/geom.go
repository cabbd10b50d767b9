// Package core provides the geometry, motion and input primitives shared by the
// simulation and the terminal platform. It has no external dependencies (especially
// no Bubble Tea) so the game logic stays pure and testable.
package core

import "math"

// Vec2 is a 2D position or displacement in board pixels.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector has no direction and yields NaN components; callers must guard.
func (v Vec2) Normalize() Vec2 {
	inv := 1.0 / v.Length()
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// AABB is an axis-aligned bounding box with its origin at the top-left corner.
type AABB struct {
	Pos  Vec2
	W, H float64
}

// Box creates an AABB at (x, y) with the given size.
func Box(x, y, w, h float64) AABB {
	return AABB{Pos: Vec2{X: x, Y: y}, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 {
	return b.Pos.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Pos.Y + b.H
}

// Center returns the center point of the box.
func (b AABB) Center() Vec2 {
	return Vec2{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

// Overlap classifies how one box relates to another.
type Overlap int

const (
	OverlapNone      Overlap = iota // Disjoint, or only touching at an edge
	OverlapPartial                  // Interiors intersect
	OverlapContained                // First box lies entirely inside the second
)

// String returns a human-readable name for the overlap code.
func (o Overlap) String() string {
	switch o {
	case OverlapNone:
		return "none"
	case OverlapPartial:
		return "partial"
	case OverlapContained:
		return "contained"
	default:
		return "unknown"
	}
}

// Classify reports whether a is contained in, overlaps, or misses b.
// Containment is edge-inclusive; intersection is strict, so boxes that
// only share an edge do not collide.
func Classify(a, b AABB) Overlap {
	if a.Pos.X >= b.Pos.X && a.Right() <= b.Right() &&
		a.Pos.Y >= b.Pos.Y && a.Bottom() <= b.Bottom() {
		return OverlapContained
	}
	if a.Right() > b.Pos.X && b.Right() > a.Pos.X &&
		a.Bottom() > b.Pos.Y && b.Bottom() > a.Pos.Y {
		return OverlapPartial
	}
	return OverlapNone
}

// Rect is an integer cell rectangle used when drawing to a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
