package core

import "github.com/lixenwraith/horde/vmath"

// Kinetic is the motion state of any steerable body
// Acc accumulates forces for the current tick and is cleared by integration
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
	Acc vmath.Vec2

	MaxSpeed float64
	MaxForce float64
	Radius   float64
}

// Heading returns the facing angle derived from velocity, 0 when at rest
func (k *Kinetic) Heading() float64 {
	return k.Vel.Heading()
}
