package physics

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// WrapBounds teleports a body that fully left the arena to the opposite edge
// The body's radius is the hysteresis so it never flickers on the boundary
func WrapBounds(k *core.Kinetic, width, height float64) bool {
	r := k.Radius
	wrapped := false
	switch {
	case k.Pos.X > width+r:
		k.Pos.X = -r
		wrapped = true
	case k.Pos.X < -r:
		k.Pos.X = width + r
		wrapped = true
	}
	switch {
	case k.Pos.Y > height+r:
		k.Pos.Y = -r
		wrapped = true
	case k.Pos.Y < -r:
		k.Pos.Y = height + r
		wrapped = true
	}
	return wrapped
}

// Containment returns a steering force pushing back inside [margin, size-margin]
// Zero while the body is inside the margin box
func Containment(k *core.Kinetic, width, height, margin float64) vmath.Vec2 {
	var desired vmath.Vec2
	has := false

	if k.Pos.X < margin {
		desired = vmath.V(k.MaxSpeed, k.Vel.Y)
		has = true
	} else if k.Pos.X > width-margin {
		desired = vmath.V(-k.MaxSpeed, k.Vel.Y)
		has = true
	}

	if k.Pos.Y < margin {
		desired = vmath.V(k.Vel.X, k.MaxSpeed)
		has = true
	} else if k.Pos.Y > height-margin {
		desired = vmath.V(k.Vel.X, -k.MaxSpeed)
		has = true
	}

	if !has {
		return vmath.Vec2{}
	}
	return desired.SetMag(k.MaxSpeed).Sub(k.Vel).Limit(k.MaxForce)
}

// ClampInside pins the position into the arena, keeping the radius clear of the walls
func ClampInside(k *core.Kinetic, width, height float64) {
	k.Pos.X = vmath.Clamp(k.Pos.X, k.Radius, width-k.Radius)
	k.Pos.Y = vmath.Clamp(k.Pos.Y, k.Radius, height-k.Radius)
}

// Outside reports whether the body's center left the arena rectangle
func Outside(k *core.Kinetic, width, height float64) bool {
	return k.Pos.X < 0 || k.Pos.X > width || k.Pos.Y < 0 || k.Pos.Y > height
}
