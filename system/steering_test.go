package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

func TestFlockStepIndependentOfInsertionOrder(t *testing.T) {
	starts := []vmath.Vec2{vmath.V(300, 300), vmath.V(310, 305), vmath.V(305, 320)}

	run := func(order []int) map[vmath.Vec2]vmath.Vec2 {
		r := newRig(t, 9)
		handles := make(map[vmath.Vec2]core.Handle)
		for _, i := range order {
			a := r.spawn.newEnemy(parameter.EnemySwarmer, starts[i], 0)
			a.Group = core.GroupHorde
			a.Vel = vmath.V(float64(i), 1)
			handles[starts[i]] = r.world.Enemies.Insert(a)
		}
		r.steering.Update()

		out := make(map[vmath.Vec2]vmath.Vec2)
		for start, h := range handles {
			out[start] = r.world.Enemies.Get(h).Pos
		}
		return out
	}

	forward := run([]int{0, 1, 2})
	reverse := run([]int{2, 1, 0})
	for _, s := range starts {
		assert.InDelta(t, forward[s].X, reverse[s].X, 1e-9)
		assert.InDelta(t, forward[s].Y, reverse[s].Y, 1e-9)
	}
}

func TestSpeedNeverExceedsMaxOverFullRun(t *testing.T) {
	r := newRig(t, 3)
	r.spawn.SpawnInitial()
	r.spawn.SpawnHorde()

	check := func(a *component.Agent) {
		if a.Alive {
			require.LessOrEqual(t, a.Vel.Mag(), a.MaxSpeed+1e-9, "%s at tick %d", a.Kind, r.world.Tick)
		}
	}

	for tick := 0; tick < 600; tick++ {
		angle := float64(tick) * 0.05
		r.player.SetMove(vmath.FromAngle(angle))
		r.player.Fire(vmath.FromAngle(-angle))
		if tick%200 == 0 {
			r.player.SpawnWall(vmath.V(1, 0))
		}

		r.steering.Update()
		check(&r.world.Player)
		r.world.Enemies.Each(func(_ core.Handle, a *component.Agent) { check(a) })
		r.world.Projectiles.Each(func(_ core.Handle, a *component.Agent) { check(a) })
		r.world.PowerUps.Each(func(_ core.Handle, a *component.Agent) { check(a) })

		r.player.Update()
		r.boss.Update()
		r.loot.Update()
		r.combat.Resolve()
		r.prog.Update()
		r.spawn.Update()
		r.world.Tick++

		if !r.world.Player.Alive {
			break
		}
	}
}

func TestProjectileDiesOutsideArena(t *testing.T) {
	r := newRig(t, 1)
	p := newProjectile(vmath.V(parameter.ArenaWidth-1, 100), 0)
	h := r.world.Projectiles.Insert(p)

	r.steering.Update()

	assert.False(t, r.world.Projectiles.Get(h).Alive)
}

func TestEnemyWrapsOnlyAfterEntering(t *testing.T) {
	r := newRig(t, 1)
	r.settings.WanderInfluence = 0

	a := r.spawn.newEnemy(parameter.EnemyBat, vmath.V(-parameter.SpawnEdgeInset, 360), 0)
	h := r.world.Enemies.Insert(a)
	r.steering.Update()

	e := r.world.Enemies.Get(h)
	assert.Less(t, e.Pos.X, 0.0, "outside enemy is not wrapped to the far edge")
	assert.False(t, e.Enemy.Entered)

	e.Pos = vmath.V(100, 360)
	r.steering.Update()
	require.True(t, e.Enemy.Entered)

	e.Pos = vmath.V(-e.Radius-1, 360)
	e.Vel = vmath.Vec2{}
	r.steering.Update()
	assert.Greater(t, e.Pos.X, parameter.ArenaWidth)
}

func TestPlayerBrakesToRestWithoutInput(t *testing.T) {
	r := newRig(t, 1)
	r.world.Player.Vel = vmath.V(6, 0)

	for i := 0; i < 20; i++ {
		r.steering.Update()
	}
	assert.True(t, r.world.Player.Vel.IsZero())
}

func TestPowerUpPulledTowardPlayer(t *testing.T) {
	r := newRig(t, 1)
	start := r.world.Player.Pos.Add(vmath.V(100, 0))
	h := r.loot.Drop(start)

	r.steering.Update()

	u := r.world.PowerUps.Get(h)
	assert.Less(t, u.Pos.Dist(r.world.Player.Pos), 100.0)

	far := r.loot.Drop(r.world.Player.Pos.Add(vmath.V(300, 0)))
	r.steering.Update()
	assert.True(t, r.world.PowerUps.Get(far).Vel.IsZero(), "outside the magnet radius nothing moves")
}

func TestProjectileHomesOnNearestTarget(t *testing.T) {
	r := newRig(t, 1)
	r.addEnemy(parameter.EnemyTank, vmath.V(640, 100))

	h := r.world.Projectiles.Insert(newProjectile(vmath.V(640, 300), 0))
	before := r.world.Projectiles.Get(h).Vel
	r.steering.Update()
	after := r.world.Projectiles.Get(h).Vel

	assert.Less(t, after.Y, before.Y, "velocity turns toward the enemy above")
	assert.LessOrEqual(t, after.Sub(before).Mag(), parameter.ProjectileMaxForce+1e-9)
	assert.False(t, math.IsNaN(after.X))
}
