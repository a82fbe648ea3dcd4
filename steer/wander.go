package steer

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// WanderState is the agent-owned memory of the wander random walk
type WanderState struct {
	Theta float64
}

// Wander perturbs the heading offset and seeks a point on a circle projected ahead
func Wander(k *core.Kinetic, w *WanderState, rng *vmath.FastRand) vmath.Vec2 {
	w.Theta += rng.Range(-parameter.WanderJitter, parameter.WanderJitter)

	ahead := k.Pos.Add(k.Vel.SetMag(parameter.WanderDistance))
	angle := w.Theta + k.Vel.Heading()
	point := ahead.Add(vmath.FromAngle(angle).Scale(parameter.WanderRadius))

	return Seek(k, point)
}
