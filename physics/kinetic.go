package physics

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/vmath"
)

// Steerable is any body that accepts steering forces and advances once per tick
type Steerable interface {
	ApplyForce(f vmath.Vec2)
	Integrate()
}

// Integrate advances one tick: v += a, |v| capped at MaxSpeed, p += v, a = 0
func Integrate(k *core.Kinetic) {
	k.Vel = k.Vel.Add(k.Acc).Limit(k.MaxSpeed)
	k.Pos = k.Pos.Add(k.Vel)
	k.Acc = vmath.Vec2{}
}

// ApplyForce accumulates f into this tick's force sum without clamping
func ApplyForce(k *core.Kinetic, f vmath.Vec2) {
	k.Acc = k.Acc.Add(f)
}

// SetImpulse overrides velocity (launch, teleport reset), capped at MaxSpeed
func SetImpulse(k *core.Kinetic, v vmath.Vec2) {
	k.Vel = v.Limit(k.MaxSpeed)
}

// Damp scales velocity by factor (friction), snapping to rest below epsilon
func Damp(k *core.Kinetic, factor, epsilon float64) {
	k.Vel = k.Vel.Scale(factor)
	if k.Vel.MagSq() < epsilon*epsilon {
		k.Vel = vmath.Vec2{}
	}
}

// Brake steers velocity toward zero at MaxForce, snapping to rest once slower than MaxForce
func Brake(k *core.Kinetic) {
	if k.Vel.Mag() < k.MaxForce {
		k.Vel = vmath.Vec2{}
		return
	}
	ApplyForce(k, k.Vel.Scale(-1).Limit(k.MaxForce))
}

// Body adapts a Kinetic to the Steerable contract
type Body struct {
	*core.Kinetic
}

func (b Body) ApplyForce(f vmath.Vec2) { ApplyForce(b.Kinetic, f) }
func (b Body) Integrate()              { Integrate(b.Kinetic) }
