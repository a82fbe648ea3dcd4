package steer

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// Avoid casts a full and a half-length whisker along velocity and steers away
// from the nearest obstacle either whisker touches
func Avoid(k *core.Kinetic, obstacles []Obstacle) vmath.Vec2 {
	if len(obstacles) == 0 {
		return vmath.Vec2{}
	}

	ahead := k.Vel.SetMag(parameter.AvoidLookahead)
	far := k.Pos.Add(ahead)
	near := k.Pos.Add(ahead.Scale(0.5))

	threat := -1
	closest := 0.0
	for i, o := range obstacles {
		reach := o.Radius + k.Radius
		reachSq := reach * reach
		d1 := far.DistSq(o.Pos)
		d2 := near.DistSq(o.Pos)
		if d1 > reachSq && d2 > reachSq {
			continue
		}
		d := min(d1, d2)
		if threat < 0 || d < closest {
			threat = i
			closest = d
		}
	}
	if threat < 0 {
		return vmath.Vec2{}
	}

	o := obstacles[threat]
	probe := far
	if near.DistSq(o.Pos) < far.DistSq(o.Pos) {
		probe = near
	}
	return steerToward(k, probe.Sub(o.Pos).SetMag(k.MaxSpeed))
}
