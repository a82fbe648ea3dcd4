package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

func TestFireRespectsCooldown(t *testing.T) {
	r := newRig(t, 1)

	require.True(t, r.player.Fire(vmath.V(1, 0)))
	assert.Equal(t, 1, r.world.Projectiles.Len())
	assert.False(t, r.player.Fire(vmath.V(1, 0)), "second volley inside the cooldown is rejected")

	for i := 0; i < parameter.PlayerShootDelay; i++ {
		r.player.Update()
	}
	assert.True(t, r.player.Fire(vmath.V(1, 0)))
	assert.Equal(t, 2, r.world.Projectiles.Len())
}

func TestMultiShotSpreadsEvenly(t *testing.T) {
	r := newRig(t, 1)
	r.world.Player.Player.ShotBonus = 2

	require.True(t, r.player.Fire(vmath.V(1, 0)))
	require.Equal(t, 3, r.world.Projectiles.Len())

	var headings []float64
	r.world.Projectiles.Each(func(_ core.Handle, a *component.Agent) {
		headings = append(headings, a.Vel.Heading())
		assert.InDelta(t, parameter.ProjectileLaunchSpeed, a.Vel.Mag(), 1e-9)
	})
	assert.InDelta(t, -math.Pi/6, headings[0], 1e-9)
	assert.InDelta(t, 0, headings[1], 1e-9)
	assert.InDelta(t, math.Pi/6, headings[2], 1e-9)
}

func TestFireTruncatesAtProjectileCap(t *testing.T) {
	r := newRig(t, 1)
	r.world.Player.Player.ShotBonus = 4
	for i := 0; i < parameter.PlayerProjectileCap-1; i++ {
		r.addProjectile(farAway)
	}

	require.True(t, r.player.Fire(vmath.V(0, 1)))
	assert.Equal(t, parameter.PlayerProjectileCap, r.world.Projectiles.Len())

	r.world.Player.Player.ShootCooldown = 0
	assert.False(t, r.player.Fire(vmath.V(0, 1)), "cap reached")
}

func TestFireRateBonusShortensDelay(t *testing.T) {
	r := newRig(t, 1)
	r.world.Player.Player.FireRateBonus = parameter.PowerUpFireRateCap

	require.True(t, r.player.Fire(vmath.V(1, 0)))
	assert.Equal(t, parameter.PlayerShootDelayMin, r.world.Player.Player.ShootCooldown)
}

func TestSpawnWallValidatesCooldown(t *testing.T) {
	r := newRig(t, 1)
	center := r.world.Player.Pos

	require.True(t, r.player.SpawnWall(vmath.V(0, -2)))
	obs := r.world.ActiveObstacles()
	require.Len(t, obs, 1)
	assert.InDelta(t, center.Y-parameter.PlayerWallDistance, obs[0].Pos.Y, 1e-9)
	assert.Equal(t, parameter.WallLifespan, obs[0].TTL)

	assert.False(t, r.player.SpawnWall(vmath.V(1, 0)))
	for i := 0; i < parameter.PlayerWallCooldown; i++ {
		r.player.Update()
	}
	assert.True(t, r.player.SpawnWall(vmath.V(1, 0)))

	types := r.drain()
	assert.Equal(t, 2, countType(types, event.EventWallSpawned))
}

func TestWallExpiresAfterLifespan(t *testing.T) {
	r := newRig(t, 1)
	require.True(t, r.player.SpawnWall(vmath.V(1, 0)))

	for i := 0; i < parameter.WallLifespan-1; i++ {
		r.spawn.Update()
	}
	assert.Equal(t, 1, r.world.Obstacles.Len())
	r.spawn.Update()
	assert.Equal(t, 0, r.world.Obstacles.Len())
}

func TestDeadPlayerCannotAct(t *testing.T) {
	r := newRig(t, 1)
	r.world.Player.Kill()

	assert.False(t, r.player.Fire(vmath.V(1, 0)))
	assert.False(t, r.player.SpawnWall(vmath.V(1, 0)))
}

func TestImmunityWindowCountsDown(t *testing.T) {
	r := newRig(t, 1)
	require.Equal(t, component.HitDamaged, r.world.Player.TakeDamage(10))
	assert.Equal(t, component.HitIgnored, r.world.Player.TakeDamage(10))

	for i := 0; i < parameter.PlayerImmunityTicks; i++ {
		r.player.Update()
	}
	assert.Equal(t, component.HitDamaged, r.world.Player.TakeDamage(10))
	assert.Equal(t, parameter.PlayerHealth-20, r.world.Player.Combat.HitPoints)
}
