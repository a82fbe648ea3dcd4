package system

import (
	"testing"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// rig wires every system around one world the way the orchestrator does
type rig struct {
	world    *engine.World
	prog     *progression.Machine
	settings *Settings

	steering *SteeringSystem
	player   *PlayerSystem
	boss     *BossSystem
	loot     *LootSystem
	spawn    *SpawnSystem
	combat   *CombatSystem
}

func newRig(t *testing.T, seed uint64) *rig {
	t.Helper()
	w := engine.NewWorld(engine.NewArena(parameter.ArenaWidth, parameter.ArenaHeight), status.NewRegistry(), seed)
	settings := DefaultSettings()
	r := &rig{
		world:    w,
		prog:     progression.New(progression.DefaultConfig(), w.Rand, w.Events),
		settings: &settings,
	}
	r.steering = NewSteeringSystem(w, r.settings)
	r.player = NewPlayerSystem(w)
	r.boss = NewBossSystem(w)
	r.loot = NewLootSystem(w, r.settings)
	r.spawn = NewSpawnSystem(w, r.prog, r.settings)
	r.combat = NewCombatSystem(w, r.prog, r.spawn, r.loot)
	r.player.Spawn()
	return r
}

// step runs one full tick in orchestrator order
func (r *rig) step() {
	r.steering.Update()
	r.player.Update()
	r.boss.Update()
	r.loot.Update()
	r.combat.Resolve()
	r.prog.Update()
	r.spawn.Update()
	r.world.Tick++
}

func (r *rig) addEnemy(arch parameter.EnemyArchetype, pos vmath.Vec2) core.Handle {
	a := r.spawn.newEnemy(arch, pos, 0)
	a.Enemy.Entered = true
	return r.world.Enemies.Insert(a)
}

func (r *rig) addProjectile(pos vmath.Vec2) core.Handle {
	p := newProjectile(pos, 0)
	p.Vel = vmath.Vec2{}
	return r.world.Projectiles.Insert(p)
}

func (r *rig) drain() []event.EventType {
	evs := r.world.Events.Consume()
	out := make([]event.EventType, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Type)
	}
	return out
}

func countEnemies(w *engine.World, keep func(a *component.Agent) bool) int {
	n := 0
	w.Enemies.Each(func(_ core.Handle, a *component.Agent) {
		if keep(a) {
			n++
		}
	})
	return n
}

func bossRequest(arch parameter.BossArchetype) progression.BossRequest {
	return progression.BossRequest{Archetype: arch, Level: 1}
}
