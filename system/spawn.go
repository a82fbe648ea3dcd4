package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// SpawnSystem creates enemies, hordes and bosses, applying difficulty at spawn time only
type SpawnSystem struct {
	world    *engine.World
	prog     *progression.Machine
	settings *Settings

	// timer counts ticks toward the next maintenance spawn while below target
	timer int

	statSpawned *atomic.Int64
	statHordes  *atomic.Int64

	enabled bool
}

func NewSpawnSystem(world *engine.World, prog *progression.Machine, settings *Settings) *SpawnSystem {
	s := &SpawnSystem{
		world:    world,
		prog:     prog,
		settings: settings,
	}

	s.statSpawned = world.Status.Ints.Get(status.MetricSpawned)
	s.statHordes = world.Status.Ints.Get(status.MetricHordes)

	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.timer = 0
	s.statSpawned.Store(0)
	s.statHordes.Store(0)
	s.enabled = true
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Update consumes progression requests, keeps the enemy count topped up and ages obstacles
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	if req, ok := s.prog.ConsumeBossRequest(); ok {
		s.prog.BindBoss(s.SpawnBoss(req))
	}
	if s.prog.ConsumeHorde() {
		s.SpawnHorde()
	}
	if !s.prog.BossActive() {
		s.maintain()
	}

	s.world.Obstacles.Each(func(_ core.Handle, o *component.Obstacle) {
		o.Expire()
	})
	s.world.Obstacles.Retain(func(o *component.Obstacle) bool { return o.Alive })
}

func (s *SpawnSystem) maintain() {
	if s.world.Enemies.Len() >= s.settings.TargetEnemies {
		return
	}
	s.timer++
	if s.timer >= s.prog.SpawnInterval() {
		s.SpawnEnemy()
		s.timer = 0
	}
}

// SpawnInitial seeds a new run with the configured opening enemies
func (s *SpawnSystem) SpawnInitial() {
	for i := 0; i < s.settings.InitialEnemies; i++ {
		s.SpawnEnemy()
	}
}

// SpawnEnemy places a random eligible archetype just beyond a random edge
func (s *SpawnSystem) SpawnEnemy() core.Handle {
	eligible := s.prog.Eligible()
	arch := eligible[s.world.Rand.Intn(len(eligible))]
	pos := s.world.Arena.RandomEdgePoint(s.world.Rand, parameter.SpawnEdgeInset)
	return s.insertEnemy(s.newEnemy(arch, pos, 0))
}

// SpawnSplit creates the offspring of a dead splitter around its death point
func (s *SpawnSystem) SpawnSplit(pos vmath.Vec2, parent component.EnemyComponent) []core.Handle {
	n := parent.Offspring()
	if n == 0 {
		return nil
	}
	out := make([]core.Handle, 0, n)
	for i := 0; i < n; i++ {
		offset := s.world.Rand.Unit().Scale(parameter.SplitterSpawnOffset)
		child := s.newEnemy(parent.Archetype, pos.Add(offset), parent.Generation+1)
		child.Enemy.Entered = true
		out = append(out, s.insertEnemy(child))
	}
	return out
}

// SpawnHorde sends a flock of swarmers in from one random edge toward the center
func (s *SpawnSystem) SpawnHorde() int {
	rng := s.world.Rand
	arena := s.world.Arena
	edge := engine.Edge(rng.Intn(int(engine.EdgeCount)))
	size := rng.IntRange(parameter.HordeSizeMin, parameter.HordeSizeMax)
	center := arena.Center()

	for i := 0; i < size; i++ {
		inset := parameter.HordeEdgeInset + rng.Float64()*parameter.HordeEdgeScatter
		pos := arena.EdgePoint(edge, rng.Float64(), inset)
		a := s.newEnemy(parameter.EnemySwarmer, pos, 0)
		a.Group = core.GroupHorde
		physics.SetImpulse(&a.Kinetic, center.Sub(pos).SetMag(a.MaxSpeed))
		s.insertEnemy(a)
	}

	s.statHordes.Add(1)
	s.world.Events.Emit(event.EventHordeRequested, &event.HordePayload{Size: size, Edge: int(edge)}, s.world.Tick)
	return size
}

// SpawnBoss instantiates the requested archetype at the arena center
func (s *SpawnSystem) SpawnBoss(req progression.BossRequest) core.Handle {
	profile := parameter.BossProfiles[req.Archetype]
	hp := scaleHealth(profile.Health, s.prog.CurrentHealthFactor())

	a := component.Agent{
		Kinetic: core.Kinetic{
			Pos:      s.world.Arena.Center(),
			MaxSpeed: profile.MaxSpeed,
			MaxForce: profile.MaxForce,
			Radius:   profile.Radius,
		},
		Kind:  component.KindBoss,
		Group: core.GroupBoss,
		Alive: true,
		Combat: component.CombatComponent{
			HitPoints:    hp,
			MaxHitPoints: hp,
			Damage:       parameter.BossContactDamage,
			Invulnerable: req.Archetype == parameter.BossWarden,
		},
		Boss: component.BossComponent{
			Archetype: req.Archetype,
			Encounter: req.Encounter,
			Level:     req.Level,
			Score:     parameter.BossScoreUnit * (int(req.Archetype) + 1),
			Phase:     1,
		},
	}
	return s.world.Bosses.Insert(a)
}

// newEnemy builds an archetype body with the current difficulty and health factor
func (s *SpawnSystem) newEnemy(arch parameter.EnemyArchetype, pos vmath.Vec2, generation int) component.Agent {
	profile := parameter.EnemyProfiles[arch]
	difficulty := s.prog.CurrentDifficulty()
	hp := scaleHealth(profile.Health, s.prog.CurrentHealthFactor())

	radius := profile.Radius
	if arch == parameter.EnemySplitter {
		radius -= parameter.SplitterRadiusShrink * float64(generation)
	}

	return component.Agent{
		Kinetic: core.Kinetic{
			Pos:      pos,
			MaxSpeed: profile.MaxSpeed * difficulty,
			MaxForce: profile.MaxForce,
			Radius:   radius,
		},
		Kind:  component.KindEnemy,
		Group: core.GroupEnemy,
		Alive: true,
		Combat: component.CombatComponent{
			HitPoints:    hp,
			MaxHitPoints: hp,
			Damage:       int(math.Round(float64(profile.Damage) * difficulty)),
		},
		Enemy: component.EnemyComponent{
			Archetype:  arch,
			Generation: generation,
			Score:      profile.Score,
		},
	}
}

func (s *SpawnSystem) insertEnemy(a component.Agent) core.Handle {
	s.statSpawned.Add(1)
	return s.world.Enemies.Insert(a)
}

func scaleHealth(base int, factor float64) int {
	return max(1, int(math.Round(float64(base)*factor)))
}
