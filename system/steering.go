package system

import (
	"sync/atomic"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/physics"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/steer"
	"github.com/lixenwraith/horde/vmath"
)

// pendingForce is a force computed from the pre-tick snapshot, applied after all agents are evaluated
type pendingForce struct {
	agent *component.Agent
	force vmath.Vec2
	brake bool
}

// SteeringSystem computes every agent's steering force from one consistent snapshot,
// then integrates all agents and applies edge rules
type SteeringSystem struct {
	world    *engine.World
	settings *Settings

	entries   []engine.SpatialEntry
	peers     []steer.Peer
	targets   []vmath.Vec2
	obstacles []steer.Obstacle
	pending   []pendingForce

	statEnemies     *atomic.Int64
	statProjectiles *atomic.Int64

	enabled bool
}

func NewSteeringSystem(world *engine.World, settings *Settings) *SteeringSystem {
	s := &SteeringSystem{
		world:    world,
		settings: settings,
	}

	s.statEnemies = world.Status.Ints.Get(status.MetricEnemies)
	s.statProjectiles = world.Status.Ints.Get(status.MetricProjectiles)

	s.Init()
	return s
}

func (s *SteeringSystem) Init() {
	s.entries = s.entries[:0]
	s.pending = s.pending[:0]
	s.enabled = true
}

func (s *SteeringSystem) Name() string {
	return "steering"
}

func (s *SteeringSystem) Update() {
	if !s.enabled {
		return
	}

	s.snapshot()
	s.computeForces()
	s.integrate()
	s.applyEdges()

	s.statEnemies.Store(int64(s.world.Enemies.Len()))
	s.statProjectiles.Store(int64(s.world.Projectiles.Len()))
}

// snapshot captures peer, target and obstacle views before anything moves
func (s *SteeringSystem) snapshot() {
	w := s.world

	s.entries = s.entries[:0]
	s.targets = s.targets[:0]
	collect := func(h core.Handle, a *component.Agent) {
		if !a.Alive {
			return
		}
		s.entries = append(s.entries, engine.SpatialEntry{
			Handle: h,
			Group:  a.Group,
			Pos:    a.Pos,
			Vel:    a.Vel,
			Radius: a.Radius,
		})
	}
	w.Enemies.Each(func(h core.Handle, a *component.Agent) {
		collect(h, a)
		if a.Alive {
			s.targets = append(s.targets, a.Pos)
		}
	})
	w.Projectiles.Each(collect)
	w.Bosses.Each(func(_ core.Handle, a *component.Agent) {
		if a.Alive {
			s.targets = append(s.targets, a.Pos)
		}
	})
	w.Spatial.Build(s.entries)

	s.obstacles = s.obstacles[:0]
	for _, o := range w.ActiveObstacles() {
		s.obstacles = append(s.obstacles, steer.Obstacle{Pos: o.Pos, Radius: o.Radius})
	}
}

// peerContext gathers snapshot peers near pos from the spatial index
func (s *SteeringSystem) peerContext(self core.Handle, pos vmath.Vec2, radius float64) *steer.Context {
	s.peers = s.peers[:0]
	for _, e := range s.world.Spatial.Query(pos, radius) {
		s.peers = append(s.peers, steer.Peer{ID: e.Handle, Pos: e.Pos, Vel: e.Vel, Group: e.Group})
	}
	return &steer.Context{Self: self, Peers: s.peers, Obstacles: s.obstacles}
}

func (s *SteeringSystem) computeForces() {
	w := s.world
	s.pending = s.pending[:0]

	if p := &w.Player; p.Alive {
		force, brake := playerForce(p, w.Arena)
		s.pending = append(s.pending, pendingForce{agent: p, force: force, brake: brake})
	}

	w.Enemies.Each(func(h core.Handle, a *component.Agent) {
		if a.Alive {
			s.pending = append(s.pending, pendingForce{agent: a, force: s.enemyForce(h, a)})
		}
	})
	w.Bosses.Each(func(_ core.Handle, a *component.Agent) {
		if a.Alive {
			s.pending = append(s.pending, pendingForce{agent: a, force: s.bossForce(a)})
		}
	})
	w.Projectiles.Each(func(h core.Handle, a *component.Agent) {
		if a.Alive {
			s.pending = append(s.pending, pendingForce{agent: a, force: s.projectileForce(h, a)})
		}
	})
	w.PowerUps.Each(func(_ core.Handle, a *component.Agent) {
		if a.Alive {
			s.pending = append(s.pending, pendingForce{agent: a, force: magnetForce(a, &w.Player)})
		}
	})
}

func (s *SteeringSystem) enemyForce(h core.Handle, a *component.Agent) vmath.Vec2 {
	k := &a.Kinetic
	target := s.world.Player.Pos

	var f vmath.Vec2
	if a.Enemy.Archetype == parameter.EnemySwarmer {
		ctx := s.peerContext(h, a.Pos, parameter.SwarmerPerception)
		fp := steer.FlockParams{
			Perception:   parameter.SwarmerPerception,
			Group:        a.Group,
			MaxNeighbors: s.settings.MaxNeighbors,
		}
		f = f.Add(steer.Align(k, ctx, fp).Scale(parameter.SwarmerAlignWeight))
		f = f.Add(steer.Cohere(k, ctx, fp).Scale(parameter.SwarmerCohesionWeight))
		f = f.Add(steer.Separate(k, ctx, fp).Scale(parameter.SwarmerSeparateWeight))
		f = f.Add(steer.Seek(k, target).Scale(parameter.SwarmerSeekWeight))
	} else {
		wi := s.settings.WanderInfluence
		f = f.Add(steer.Seek(k, target).Scale(1 - wi))
		f = f.Add(steer.Wander(k, &a.Wander, s.world.Rand).Scale(wi))
	}
	return f.Add(steer.Avoid(k, s.obstacles).Scale(parameter.EnemyAvoidWeight))
}

func (s *SteeringSystem) bossForce(a *component.Agent) vmath.Vec2 {
	k := &a.Kinetic
	f := steer.Seek(k, s.world.Player.Pos)
	return f.Add(steer.Avoid(k, s.obstacles).Scale(parameter.EnemyAvoidWeight))
}

func (s *SteeringSystem) projectileForce(h core.Handle, a *component.Agent) vmath.Vec2 {
	k := &a.Kinetic
	ctx := s.peerContext(h, a.Pos, parameter.ProjectilePerception)
	fp := steer.FlockParams{
		Perception:   parameter.ProjectilePerception,
		Group:        core.GroupProjectile,
		MaxNeighbors: s.settings.MaxNeighbors,
	}
	f := steer.Separate(k, ctx, fp).Scale(parameter.ProjectileSeparateWeight)
	return f.Add(steer.Homing(k, s.targets, s.world.Arena.Contains).Scale(parameter.ProjectileHomingWeight))
}

// integrate applies the pending forces, then advances every evaluated agent
func (s *SteeringSystem) integrate() {
	for i := range s.pending {
		p := &s.pending[i]
		if p.brake {
			physics.Brake(&p.agent.Kinetic)
		}
		p.agent.ApplyForce(p.force)
	}
	for i := range s.pending {
		s.pending[i].agent.Integrate()
	}
}

// applyEdges enforces per-kind arena rules after motion
func (s *SteeringSystem) applyEdges() {
	w := s.world
	width, height := w.Arena.Width(), w.Arena.Height()

	if w.Player.Alive {
		physics.ClampInside(&w.Player.Kinetic, width, height)
	}
	w.Enemies.Each(func(_ core.Handle, a *component.Agent) {
		if !a.Alive {
			return
		}
		if !a.Enemy.Entered {
			a.Enemy.Entered = w.Arena.Contains(a.Pos)
			return
		}
		physics.WrapBounds(&a.Kinetic, width, height)
	})
	w.Bosses.Each(func(_ core.Handle, a *component.Agent) {
		if a.Alive {
			physics.ClampInside(&a.Kinetic, width, height)
		}
	})
	w.Projectiles.Each(func(_ core.Handle, a *component.Agent) {
		if a.Alive && physics.Outside(&a.Kinetic, width, height) {
			a.Kill()
		}
	})
}
