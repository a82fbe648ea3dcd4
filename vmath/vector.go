package vmath

import "math"

// Vec2 is a 2D real vector in arena units
// Value type; every operation returns a new vector
type Vec2 struct {
	X, Y float64
}

// V constructs a vector
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector at angle radians
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s, zero-safe (returns zero vector for s == 0)
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Mag returns the Euclidean length
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagSq returns the squared length without sqrt
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports an exactly zero vector
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// SetMag rescales to magnitude m preserving direction
// Zero vector stays zero: there is no direction to preserve
func (v Vec2) SetMag(m float64) Vec2 {
	return v.Normalize().Scale(m)
}

// Limit clamps magnitude to max while preserving direction
// Returns unchanged vector if magnitude <= max
func (v Vec2) Limit(max float64) Vec2 {
	sq := v.MagSq()
	if sq <= max*max || sq == 0 {
		return v
	}
	return v.Scale(max / math.Sqrt(sq))
}

// Heading returns the angle of the vector in radians, 0 for the zero vector
func (v Vec2) Heading() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates counter-clockwise by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Dot returns v·o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Dist returns the distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Mag()
}

// DistSq returns the squared distance between two points
func (v Vec2) DistSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// IsFinite reports whether both components are finite numbers
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
