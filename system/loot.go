package system

import (
	"sync/atomic"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/steer"
	"github.com/lixenwraith/horde/vmath"
)

// powerUpRestEpsilon snaps drifting pickups to rest
const powerUpRestEpsilon = 0.01

// LootSystem rolls drops, ages pickups and applies collected bonuses to the player
type LootSystem struct {
	world    *engine.World
	settings *Settings

	eligible []parameter.PowerUpKind

	statDrops    *atomic.Int64
	statCollects *atomic.Int64
	statActive   *atomic.Int64

	enabled bool
}

func NewLootSystem(world *engine.World, settings *Settings) *LootSystem {
	s := &LootSystem{
		world:    world,
		settings: settings,
		eligible: make([]parameter.PowerUpKind, 0, parameter.PowerUpKindCount),
	}

	s.statDrops = world.Status.Ints.Get(status.MetricLootDrops)
	s.statCollects = world.Status.Ints.Get(status.MetricLootCollects)
	s.statActive = world.Status.Ints.Get("loot.active")

	s.Init()
	return s
}

func (s *LootSystem) Init() {
	s.statDrops.Store(0)
	s.statCollects.Store(0)
	s.statActive.Store(0)
	s.enabled = true
}

func (s *LootSystem) Name() string {
	return "loot"
}

// Update applies friction and expires pickups whose lifespan ran out
func (s *LootSystem) Update() {
	if !s.enabled {
		return
	}
	active := 0
	s.world.PowerUps.Each(func(_ core.Handle, a *component.Agent) {
		if !a.Alive {
			return
		}
		physics.Damp(&a.Kinetic, parameter.PowerUpFriction, powerUpRestEpsilon)
		a.PowerUp.Life--
		if a.PowerUp.Life <= 0 {
			a.Kill()
			return
		}
		active++
	})
	s.statActive.Store(int64(active))
}

// Roll decides whether a regular enemy death drops loot
func (s *LootSystem) Roll() bool {
	return s.world.Rand.Chance(s.settings.LootChance)
}

// Drop spawns a power-up at pos, choosing among kinds whose cap is not reached
func (s *LootSystem) Drop(pos vmath.Vec2) core.Handle {
	kind := s.pick()
	h := s.world.PowerUps.Insert(component.Agent{
		Kinetic: core.Kinetic{
			Pos:      pos,
			MaxSpeed: parameter.PowerUpMaxSpeed,
			MaxForce: parameter.PowerUpMaxForce,
			Radius:   parameter.PowerUpRadius,
		},
		Kind:    component.KindPowerUp,
		Alive:   true,
		PowerUp: component.PowerUpComponent{Kind: kind, Life: parameter.PowerUpLifespan},
	})
	s.statDrops.Add(1)
	return h
}

func (s *LootSystem) pick() parameter.PowerUpKind {
	bonus := &s.world.Player.Player

	s.eligible = s.eligible[:0]
	if bonus.SpeedBonus < parameter.PowerUpSpeedCap {
		s.eligible = append(s.eligible, parameter.PowerUpSpeed)
	}
	if bonus.FireRateBonus < parameter.PowerUpFireRateCap {
		s.eligible = append(s.eligible, parameter.PowerUpFireRate)
	}
	if bonus.ShotBonus < parameter.PowerUpMultiShotCap {
		s.eligible = append(s.eligible, parameter.PowerUpMultiShot)
	}
	s.eligible = append(s.eligible, parameter.PowerUpShield, parameter.PowerUpHealth)

	return s.eligible[s.world.Rand.Intn(len(s.eligible))]
}

// Collect applies kind to the player and emits the pickup notification
func (s *LootSystem) Collect(kind parameter.PowerUpKind) {
	p := &s.world.Player
	switch kind {
	case parameter.PowerUpSpeed:
		p.Player.SpeedBonus = min(p.Player.SpeedBonus+parameter.PowerUpSpeedBonus, parameter.PowerUpSpeedCap)
		p.MaxSpeed = parameter.PlayerMaxSpeed + p.Player.SpeedBonus
	case parameter.PowerUpFireRate:
		p.Player.FireRateBonus = min(p.Player.FireRateBonus+parameter.PowerUpFireRateBonus, parameter.PowerUpFireRateCap)
	case parameter.PowerUpMultiShot:
		p.Player.ShotBonus = min(p.Player.ShotBonus+parameter.PowerUpMultiShotBonus, parameter.PowerUpMultiShotCap)
	case parameter.PowerUpShield:
		p.Combat.ShieldCharges++
	case parameter.PowerUpHealth:
		p.Combat.Heal(parameter.PowerUpHealthBonus)
	}
	s.statCollects.Add(1)
	s.world.Events.Emit(event.EventPowerUpCollected, &event.PowerUpPayload{Kind: kind}, s.world.Tick)
}

// magnetForce pulls a pickup toward a nearby living player, stronger when closer
func magnetForce(a *component.Agent, player *component.Agent) vmath.Vec2 {
	if !player.Alive {
		return vmath.Vec2{}
	}
	d := a.Pos.Dist(player.Pos)
	if d >= parameter.PowerUpMagnetRadius {
		return vmath.Vec2{}
	}
	weight := vmath.Map(d, 0, parameter.PowerUpMagnetRadius, parameter.PowerUpMagnetNear, parameter.PowerUpMagnetFar)
	return steer.Seek(&a.Kinetic, player.Pos).Scale(weight)
}
