// Package game composes the systems into the fixed-order simulation tick
package game

import (
	"log"
	"sync"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/engine/fsm"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/system"
	"github.com/lixenwraith/horde/vmath"
)

// Run states
const (
	StatePlaying fsm.StateID = iota + 1
	StateGameOver
)

// phase is the next tick entry point allowed to run
type phase uint8

const (
	phaseAgents phase = iota
	phaseCombat
	phaseProgression
)

// Options configure a Game at construction
type Options struct {
	Width       float64
	Height      float64
	Seed        uint64
	Settings    system.Settings
	Progression progression.Config
}

// DefaultOptions uses the compiled-in parameters
func DefaultOptions() Options {
	return Options{
		Width:       parameter.ArenaWidth,
		Height:      parameter.ArenaHeight,
		Seed:        1,
		Settings:    system.DefaultSettings(),
		Progression: progression.DefaultConfig(),
	}
}

// Game is the simulation composition root
// Tick methods must be called from one goroutine; read methods are safe from any goroutine
type Game struct {
	mu sync.RWMutex

	world    *engine.World
	prog     *progression.Machine
	settings system.Settings

	steering *system.SteeringSystem
	player   *system.PlayerSystem
	bosses   *system.BossSystem
	loot     *system.LootSystem
	spawn    *system.SpawnSystem
	combat   *system.CombatSystem
	systems  []engine.System

	run   *fsm.Machine[*Game]
	runID uuid.UUID
	seed  uint64
	next  phase

	statTicks      *atomic.Int64
	statLevel      *atomic.Int64
	statDifficulty *status.Float
	statRunID      *status.Text
}

// New builds a game and starts the first run
func New(opts Options, reg *status.Registry) *Game {
	if reg == nil {
		reg = status.NewRegistry()
	}
	w := engine.NewWorld(engine.NewArena(opts.Width, opts.Height), reg, opts.Seed)

	g := &Game{
		world:    w,
		settings: opts.Settings,
		seed:     opts.Seed,
	}
	g.prog = progression.New(opts.Progression, w.Rand, w.Events)

	g.steering = system.NewSteeringSystem(w, &g.settings)
	g.player = system.NewPlayerSystem(w)
	g.bosses = system.NewBossSystem(w)
	g.loot = system.NewLootSystem(w, &g.settings)
	g.spawn = system.NewSpawnSystem(w, g.prog, &g.settings)
	g.combat = system.NewCombatSystem(w, g.prog, g.spawn, g.loot)
	g.systems = []engine.System{g.steering, g.player, g.bosses, g.loot, g.combat, g.spawn}

	g.statTicks = reg.Ints.Get(status.MetricTicks)
	g.statLevel = reg.Ints.Get(status.MetricLevel)
	g.statDifficulty = reg.Floats.Get(status.MetricDifficulty)
	g.statRunID = reg.Texts.Get(status.MetricRunID)

	g.run = fsm.NewMachine[*Game]()
	g.run.AddState(StatePlaying, "playing")
	g.run.AddState(StateGameOver, "game over")
	g.run.AddTransition(StatePlaying, event.EventGameOver, StateGameOver, nil)
	g.run.AddTransition(StateGameOver, event.EventRunRestart, StatePlaying, nil)
	g.run.OnEnter(StateGameOver, func(g *Game) {
		log.Printf("game: run %s over at tick %d, level %d, score %d",
			g.runID, g.world.Tick, g.prog.Level(), g.combat.Score())
	})

	g.begin(opts.Seed)
	return g
}

// begin resets every owner for a fresh run under seed
func (g *Game) begin(seed uint64) {
	g.seed = seed
	g.runID = uuid.Must(uuid.NewV4())

	g.world.Reset(seed)
	g.prog.Reset(g.world.Rand)
	for _, s := range g.systems {
		s.Init()
	}
	_ = g.run.Reset(g)
	g.next = phaseAgents

	g.player.Spawn()
	g.spawn.SpawnInitial()

	g.statTicks.Store(0)
	g.publishProgression()
	g.statRunID.Set(g.runID.String())

	log.Printf("game: run %s started (seed %d)", g.runID, seed)
	g.world.Events.Emit(event.EventRunRestart, &event.RunPayload{RunID: g.runID.String(), Seed: seed}, 0)
}

// Restart discards the current run and starts a new one with seed
func (g *Game) Restart(seed uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.begin(seed)
}

// StepAgents computes forces from the pre-tick snapshot and integrates every agent
// Returns false when called out of order or after game over
func (g *Game) StepAgents() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.ready(phaseAgents) {
		return false
	}
	g.steering.Update()
	g.player.Update()
	g.bosses.Update()
	g.loot.Update()
	g.next = phaseCombat
	return true
}

// ResolveCombat adjudicates collisions, applies death effects and prunes the dead
func (g *Game) ResolveCombat() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.ready(phaseCombat) {
		return false
	}
	g.combat.Resolve()
	g.next = phaseProgression

	if !g.world.Player.Alive {
		g.world.Events.Emit(event.EventGameOver, &event.GameOverPayload{
			Level: g.prog.Level(),
			Score: g.combat.Score(),
			Kills: g.prog.TotalKills(),
			Tick:  g.world.Tick,
		}, g.world.Tick)
		g.run.HandleEvent(g, event.EventGameOver)
	}
	return true
}

// StepProgression advances timers, consumes horde and boss requests and tops up enemies
func (g *Game) StepProgression() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next != phaseProgression {
		return false
	}
	g.next = phaseAgents
	if g.run.State() != StatePlaying {
		return false
	}

	g.prog.Update()
	g.spawn.Update()
	g.run.Update(g)

	g.world.Tick++
	g.statTicks.Store(g.world.Tick)
	g.publishProgression()
	return true
}

// Tick runs the three phases in order; false once the run is over
func (g *Game) Tick() bool {
	if !g.StepAgents() {
		return false
	}
	g.ResolveCombat()
	return g.StepProgression()
}

func (g *Game) ready(p phase) bool {
	return g.next == p && g.run.State() == StatePlaying
}

func (g *Game) publishProgression() {
	g.statLevel.Store(int64(g.prog.Level()))
	g.statDifficulty.Set(g.prog.CurrentDifficulty())
}

// Notifications drains the one-shot events raised since the last call
func (g *Game) Notifications() []event.GameEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.world.Events.Consume()
}

// SetMoveIntent sets the player's movement direction; zero brakes
func (g *Game) SetMoveIntent(dir vmath.Vec2) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.player.SetMove(dir)
}

// Fire requests a volley; false when the cooldown or projectile cap rejects it
func (g *Game) Fire(aim vmath.Vec2) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.run.State() != StatePlaying {
		return false
	}
	return g.player.Fire(aim)
}

// SpawnWall requests an obstacle ahead of the player; false while on cooldown
func (g *Game) SpawnWall(aim vmath.Vec2) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.run.State() != StatePlaying {
		return false
	}
	return g.player.SpawnWall(aim)
}

// Poses returns the drawable view of every live agent, player first
func (g *Game) Poses() []component.Pose {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.poses()
}

func (g *Game) poses() []component.Pose {
	w := g.world
	out := make([]component.Pose, 0, 1+w.Enemies.Len()+w.Bosses.Len()+w.Projectiles.Len()+w.PowerUps.Len())
	out = append(out, w.Player.Pose())
	add := func(_ core.Handle, a *component.Agent) {
		if a.Alive {
			out = append(out, a.Pose())
		}
	}
	w.Enemies.Each(add)
	w.Bosses.Each(add)
	w.Projectiles.Each(add)
	w.PowerUps.Each(add)
	return out
}

// Obstacles returns the live walls
func (g *Game) Obstacles() []component.Obstacle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.ActiveObstacles()
}

// Progression returns a copy of the progression state
func (g *Game) Progression() progression.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.prog.Snapshot()
}

func (g *Game) RunID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.runID.String()
}

func (g *Game) Seed() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.seed
}

func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.combat.Score()
}

func (g *Game) CurrentTick() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.Tick
}

// Over reports whether the player died
func (g *Game) Over() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.run.State() == StateGameOver
}

// Arena returns the playfield bounds
func (g *Game) Arena() engine.Arena {
	return g.world.Arena
}

// Status exposes the metric registry shared by the systems
func (g *Game) Status() *status.Registry {
	return g.world.Status
}

// World exposes the simulation state to same-goroutine collaborators and tests
func (g *Game) World() *engine.World {
	return g.world
}

// Player returns a copy of the player agent
func (g *Game) Player() component.Agent {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.Player
}
