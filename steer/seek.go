package steer

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// Seek steers toward target at full speed
func Seek(k *core.Kinetic, target vmath.Vec2) vmath.Vec2 {
	return steerToward(k, target.Sub(k.Pos).SetMag(k.MaxSpeed))
}

// Arrive steers toward target, ramping desired speed down linearly inside slowingRadius
func Arrive(k *core.Kinetic, target vmath.Vec2, slowingRadius float64) vmath.Vec2 {
	offset := target.Sub(k.Pos)
	d := offset.Mag()
	if d == 0 {
		return vmath.Vec2{}
	}

	speed := k.MaxSpeed
	if d < slowingRadius {
		speed = vmath.Map(d, 0, slowingRadius, 0, k.MaxSpeed)
	}
	desired := offset.SetMag(speed)
	return desired.Sub(k.Vel).Limit(k.MaxForce)
}

// Homing seeks the nearest candidate accepted by active; zero when none qualifies
func Homing(k *core.Kinetic, candidates []vmath.Vec2, active func(vmath.Vec2) bool) vmath.Vec2 {
	best := -1.0
	var target vmath.Vec2
	for _, c := range candidates {
		if active != nil && !active(c) {
			continue
		}
		d := k.Pos.DistSq(c)
		if best < 0 || d < best {
			best = d
			target = c
		}
	}
	if best < 0 {
		return vmath.Vec2{}
	}
	return Seek(k, target)
}
