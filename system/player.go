package system

import (
	"sync/atomic"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/vmath"
)

// PlayerSystem owns the player body, its cooldowns and the input-driven spawn requests
type PlayerSystem struct {
	world *engine.World

	statShots *atomic.Int64
	statWalls *atomic.Int64

	enabled bool
}

func NewPlayerSystem(world *engine.World) *PlayerSystem {
	s := &PlayerSystem{
		world: world,
	}

	s.statShots = world.Status.Ints.Get("player.shots")
	s.statWalls = world.Status.Ints.Get("player.walls")

	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.statShots.Store(0)
	s.statWalls.Store(0)
	s.enabled = true
}

func (s *PlayerSystem) Name() string {
	return "player"
}

// Spawn places a fresh player at the arena center
func (s *PlayerSystem) Spawn() {
	s.world.Player = component.Agent{
		Kinetic: core.Kinetic{
			Pos:      s.world.Arena.Center(),
			MaxSpeed: parameter.PlayerMaxSpeed,
			MaxForce: parameter.PlayerMaxForce,
			Radius:   parameter.PlayerRadius,
		},
		Kind:  component.KindPlayer,
		Alive: true,
		Combat: component.CombatComponent{
			HitPoints:     parameter.PlayerHealth,
			MaxHitPoints:  parameter.PlayerHealth,
			ImmunityTicks: parameter.PlayerImmunityTicks,
		},
	}
}

// Update counts down cooldowns and the post-hit immunity window
func (s *PlayerSystem) Update() {
	p := &s.world.Player
	if !s.enabled || !p.Alive {
		return
	}
	if p.Player.ShootCooldown > 0 {
		p.Player.ShootCooldown--
	}
	if p.Player.WallCooldown > 0 {
		p.Player.WallCooldown--
	}
	p.Combat.Tick()
}

// SetMove records the input direction; zero brakes
func (s *PlayerSystem) SetMove(dir vmath.Vec2) {
	s.world.Player.Player.Move = dir.Normalize()
}

// Fire launches a volley along aim; false when on cooldown, at the projectile cap or dead
func (s *PlayerSystem) Fire(aim vmath.Vec2) bool {
	p := &s.world.Player
	if !p.Alive || p.Player.ShootCooldown > 0 {
		return false
	}
	available := parameter.PlayerProjectileCap - s.world.Projectiles.Len()
	if available <= 0 {
		return false
	}

	heading := s.aimDirection(aim).Heading()
	n := min(p.Player.Shots(), available)
	for i := 0; i < n; i++ {
		angle := heading
		if n > 1 {
			angle += vmath.Map(float64(i), 0, float64(n-1), -parameter.PlayerSpreadAngle, parameter.PlayerSpreadAngle)
		}
		s.world.Projectiles.Insert(newProjectile(p.Pos, angle))
	}

	p.Player.ShootCooldown = p.Player.ShootDelay()
	s.statShots.Add(int64(n))
	s.world.Events.Emit(event.EventShotFired, &event.ShotPayload{Count: n, Aim: vmath.FromAngle(heading)}, s.world.Tick)
	return true
}

// SpawnWall drops a temporary obstacle ahead along aim; false while on cooldown or dead
func (s *PlayerSystem) SpawnWall(aim vmath.Vec2) bool {
	p := &s.world.Player
	if !p.Alive || p.Player.WallCooldown > 0 {
		return false
	}

	pos := p.Pos.Add(s.aimDirection(aim).Scale(parameter.PlayerWallDistance))
	s.world.Obstacles.Insert(component.Obstacle{
		Pos:    pos,
		Radius: parameter.WallRadius,
		TTL:    parameter.WallLifespan,
		Alive:  true,
	})

	p.Player.WallCooldown = parameter.PlayerWallCooldown
	s.statWalls.Add(1)
	s.world.Events.Emit(event.EventWallSpawned, &event.WallPayload{Pos: pos}, s.world.Tick)
	return true
}

// aimDirection falls back to the movement heading, then to +X
func (s *PlayerSystem) aimDirection(aim vmath.Vec2) vmath.Vec2 {
	if !aim.IsZero() {
		return aim.Normalize()
	}
	if v := s.world.Player.Vel; !v.IsZero() {
		return v.Normalize()
	}
	return vmath.V(1, 0)
}

func newProjectile(pos vmath.Vec2, angle float64) component.Agent {
	return component.Agent{
		Kinetic: core.Kinetic{
			Pos:      pos,
			Vel:      vmath.FromAngle(angle).Scale(parameter.ProjectileLaunchSpeed),
			MaxSpeed: parameter.ProjectileMaxSpeed,
			MaxForce: parameter.ProjectileMaxForce,
			Radius:   parameter.ProjectileRadius,
		},
		Kind:  component.KindProjectile,
		Group: core.GroupProjectile,
		Alive: true,
		Combat: component.CombatComponent{
			HitPoints:    1,
			MaxHitPoints: 1,
			Damage:       parameter.ProjectileDamage,
		},
	}
}

// playerForce steers toward the input direction or requests a brake, plus containment
func playerForce(p *component.Agent, arena engine.Arena) (vmath.Vec2, bool) {
	k := &p.Kinetic
	contain := physics.Containment(k, arena.Width(), arena.Height(), parameter.ContainmentMargin).
		Scale(parameter.ContainmentWeight)

	if p.Player.Move.IsZero() {
		return contain, true
	}
	desired := p.Player.Move.SetMag(k.MaxSpeed)
	return desired.Sub(k.Vel).Limit(k.MaxForce).Add(contain), false
}
