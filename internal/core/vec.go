package core

import "math"

// Vec2 is a point or displacement in world units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector in v's direction, or zero for a zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is a float axis-aligned rectangle in world space.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAt returns the square of the given size centered on pos.
func BoxAt(pos Vec2, size float64) Box {
	return Box{X: pos.X - size/2, Y: pos.Y - size/2, W: size, H: size}
}

// Intersects reports strict overlap; boxes that merely touch do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y < o.Y+o.H &&
		b.Y+b.H > o.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec2 {
	return Vec2{b.X + b.W/2, b.Y + b.H/2}
}
