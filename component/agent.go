package component

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/steer"
	"github.com/lixenwraith/horde/vmath"
)

// Kind tags which variant of Agent is populated
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindProjectile
	KindPowerUp
)

var kindNames = [...]string{"player", "enemy", "boss", "projectile", "powerup"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Combatant is anything that can be struck
type Combatant interface {
	TakeDamage(amount int) HitResult
	IsAlive() bool
}

// Agent is a tagged variant: Kind selects which of the per-kind states is meaningful
type Agent struct {
	core.Kinetic
	Kind  Kind
	Group core.Group
	Alive bool

	Combat CombatComponent
	Wander steer.WanderState

	Enemy   EnemyComponent   // KindEnemy
	Boss    BossComponent    // KindBoss
	PowerUp PowerUpComponent // KindPowerUp
	Player  PlayerComponent  // KindPlayer
}

var (
	_ Combatant         = (*Agent)(nil)
	_ physics.Steerable = (*Agent)(nil)
)

// TakeDamage applies the combat gates and clears Alive on a kill
// A dead agent is never damaged again
func (a *Agent) TakeDamage(amount int) HitResult {
	if !a.Alive {
		return HitIgnored
	}
	r := a.Combat.Apply(amount)
	if r == HitKilled {
		a.Alive = false
	}
	return r
}

func (a *Agent) IsAlive() bool {
	return a.Alive
}

// Kill marks the agent dead without damage (projectile expiry, contact trade)
func (a *Agent) Kill() {
	a.Alive = false
}

func (a *Agent) ApplyForce(f vmath.Vec2) {
	physics.ApplyForce(&a.Kinetic, f)
}

func (a *Agent) Integrate() {
	physics.Integrate(&a.Kinetic)
}

// Pose is the drawing view of an agent
type Pose struct {
	Kind      Kind
	Pos       vmath.Vec2
	Heading   float64
	Radius    float64
	Alive     bool
	Health    int
	MaxHealth int
	Tag       uint8 // archetype or power-up kind
	Shielded  bool
}

// Pose derives the presentation view
func (a *Agent) Pose() Pose {
	p := Pose{
		Kind:      a.Kind,
		Pos:       a.Pos,
		Heading:   a.Heading(),
		Radius:    a.Radius,
		Alive:     a.Alive,
		Health:    a.Combat.HitPoints,
		MaxHealth: a.Combat.MaxHitPoints,
	}
	switch a.Kind {
	case KindEnemy:
		p.Tag = uint8(a.Enemy.Archetype)
	case KindBoss:
		p.Tag = uint8(a.Boss.Archetype)
		p.Shielded = a.Combat.Invulnerable
	case KindPowerUp:
		p.Tag = uint8(a.PowerUp.Kind)
	case KindPlayer:
		p.Shielded = a.Combat.ShieldCharges > 0
	}
	return p
}
