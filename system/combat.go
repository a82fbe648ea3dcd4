package system

import (
	"sync/atomic"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// death is a kill recorded during the scan; effects run after every category is resolved
// Values are copied because spawning offspring may grow the pools
type death struct {
	handle   core.Handle
	kind     component.Kind
	pos      vmath.Vec2
	radius   float64
	enemy    component.EnemyComponent
	boss     component.BossComponent
	credited bool
}

// CombatSystem adjudicates overlaps in a fixed category order, then applies death effects and prunes
type CombatSystem struct {
	world *engine.World
	prog  *progression.Machine
	spawn *SpawnSystem
	loot  *LootSystem

	deaths  []death
	targets []core.Handle
	score   int

	statKills      *atomic.Int64
	statPlayerHits *atomic.Int64
	statScore      *atomic.Int64

	enabled bool
}

func NewCombatSystem(world *engine.World, prog *progression.Machine, spawn *SpawnSystem, loot *LootSystem) *CombatSystem {
	s := &CombatSystem{
		world: world,
		prog:  prog,
		spawn: spawn,
		loot:  loot,
	}

	s.statKills = world.Status.Ints.Get(status.MetricKills)
	s.statPlayerHits = world.Status.Ints.Get(status.MetricPlayerHits)
	s.statScore = world.Status.Ints.Get(status.MetricScore)

	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.deaths = s.deaths[:0]
	s.score = 0
	s.statKills.Store(0)
	s.statPlayerHits.Store(0)
	s.statScore.Store(0)
	s.enabled = true
}

func (s *CombatSystem) Name() string {
	return "combat"
}

// Score is the accumulated kill score of the run
func (s *CombatSystem) Score() int {
	return s.score
}

func (s *CombatSystem) Update() {
	s.Resolve()
}

// Resolve runs one tick of collision adjudication
// Order: boss-player, enemy-player, projectile-boss, projectile-enemy, power-up collection
func (s *CombatSystem) Resolve() {
	if !s.enabled {
		return
	}
	s.deaths = s.deaths[:0]

	s.bossContact()
	s.enemyContact()
	s.projectileVsBoss()
	s.projectileVsEnemy()
	s.collectPowerUps()

	s.applyDeaths()
	s.prune()
}

func (s *CombatSystem) bossContact() {
	p := &s.world.Player
	s.world.Bosses.Each(func(_ core.Handle, b *component.Agent) {
		if !b.Alive || !p.Alive {
			return
		}
		if vmath.CirclesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
			s.hitPlayer(b.Combat.Damage)
		}
	})
}

// enemyContact trades the enemy's life for damage to the player; no score or loot
func (s *CombatSystem) enemyContact() {
	p := &s.world.Player
	s.world.Enemies.Each(func(h core.Handle, e *component.Agent) {
		if !e.Alive || !p.Alive {
			return
		}
		if !vmath.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
			return
		}
		s.hitPlayer(e.Combat.Damage)
		e.Kill()
		s.record(h, e, false)
	})
}

func (s *CombatSystem) projectileVsBoss() {
	s.projectileVs(s.world.Bosses)
}

func (s *CombatSystem) projectileVsEnemy() {
	s.projectileVs(s.world.Enemies)
}

// projectileVs lets each live projectile strike the first live overlapping target
// A projectile that touches a target is consumed even when the hit is ignored
func (s *CombatSystem) projectileVs(targets *engine.Pool[component.Agent]) {
	s.targets = append(s.targets[:0], targets.Handles()...)

	s.world.Projectiles.Each(func(_ core.Handle, proj *component.Agent) {
		if !proj.Alive {
			return
		}
		for _, h := range s.targets {
			t := targets.Get(h)
			if t == nil || !t.Alive {
				continue
			}
			if !vmath.CirclesOverlap(proj.Pos, proj.Radius, t.Pos, t.Radius) {
				continue
			}
			proj.Kill()
			if t.TakeDamage(proj.Combat.Damage) == component.HitKilled {
				s.record(h, t, true)
			}
			return
		}
	})
}

func (s *CombatSystem) collectPowerUps() {
	p := &s.world.Player
	s.world.PowerUps.Each(func(_ core.Handle, u *component.Agent) {
		if !u.Alive || !p.Alive {
			return
		}
		if vmath.CirclesOverlap(u.Pos, u.Radius, p.Pos, p.Radius) {
			u.Kill()
			s.loot.Collect(u.PowerUp.Kind)
		}
	})
}

func (s *CombatSystem) hitPlayer(damage int) {
	p := &s.world.Player
	r := p.TakeDamage(damage)
	if !r.Landed() {
		return
	}
	s.statPlayerHits.Add(1)
	s.world.Events.Emit(event.EventPlayerHit, &event.PlayerHitPayload{
		Damage:   damage,
		Absorbed: r == component.HitAbsorbed,
		Health:   p.Combat.HitPoints,
	}, s.world.Tick)
}

func (s *CombatSystem) record(h core.Handle, a *component.Agent, credited bool) {
	s.deaths = append(s.deaths, death{
		handle:   h,
		kind:     a.Kind,
		pos:      a.Pos,
		radius:   a.Radius,
		enemy:    a.Enemy,
		boss:     a.Boss,
		credited: credited,
	})
}

// applyDeaths runs explosions, splits, loot, scoring and progression in kill order
func (s *CombatSystem) applyDeaths() {
	tick := s.world.Tick
	for i := range s.deaths {
		d := &s.deaths[i]
		s.world.Events.Emit(event.EventExplosionRequest, &event.ExplosionPayload{
			Pos:    d.pos,
			Radius: d.radius,
			Boss:   d.kind == component.KindBoss,
		}, tick)
		if !d.credited {
			continue
		}

		switch d.kind {
		case component.KindEnemy:
			s.addScore(d.enemy.Score)
			s.spawn.SpawnSplit(d.pos, d.enemy)
			dropped := s.loot.Roll()
			if dropped {
				s.loot.Drop(d.pos)
			}
			s.world.Events.Emit(event.EventEnemyKilled, &event.EnemyKilledPayload{
				Enemy:     d.handle,
				Archetype: d.enemy.Archetype,
				Pos:       d.pos,
				Score:     d.enemy.Score,
				Loot:      dropped,
			}, tick)
			s.prog.OnEnemyKilled()

		case component.KindBoss:
			s.addScore(d.boss.Score)
			s.loot.Drop(d.pos)
			s.prog.OnBossDefeated()
		}
	}
}

func (s *CombatSystem) addScore(points int) {
	s.score += points
	s.statKills.Add(1)
	s.statScore.Store(int64(s.score))
}

func (s *CombatSystem) prune() {
	alive := func(a *component.Agent) bool { return a.Alive }
	s.world.Enemies.Retain(alive)
	s.world.Bosses.Retain(alive)
	s.world.Projectiles.Retain(alive)
	s.world.PowerUps.Retain(alive)
}

// DeathsThisTick reports how many kills the last Resolve recorded, including contact trades
func (s *CombatSystem) DeathsThisTick() int {
	return len(s.deaths)
}
