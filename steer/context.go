// Package steer implements side-effect-free steering behaviors
// Every behavior returns a force already clamped to the body's MaxForce
package steer

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// Peer is a read-only view of another agent taken before the tick moves anything
type Peer struct {
	ID    core.Handle
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Group core.Group
}

// Obstacle is a static circle to steer around
type Obstacle struct {
	Pos    vmath.Vec2
	Radius float64
}

// Context is the query population assembled by the caller for one agent
type Context struct {
	Self      core.Handle
	Peers     []Peer
	Obstacles []Obstacle
}

// FlockParams selects and bounds the peers considered by the flocking triad
type FlockParams struct {
	Perception   float64
	Group        core.Group
	MaxNeighbors int // 0 = unbounded
}

// steerToward converts a desired velocity into a clamped steering force
// A zero desired velocity has no direction and yields no force
func steerToward(k *core.Kinetic, desired vmath.Vec2) vmath.Vec2 {
	if desired.IsZero() {
		return vmath.Vec2{}
	}
	return desired.Sub(k.Vel).Limit(k.MaxForce)
}
