package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

func TestPickSkipsCappedKinds(t *testing.T) {
	r := newRig(t, 8)
	bonus := &r.world.Player.Player
	bonus.SpeedBonus = parameter.PowerUpSpeedCap
	bonus.FireRateBonus = parameter.PowerUpFireRateCap
	bonus.ShotBonus = parameter.PowerUpMultiShotCap

	seen := make(map[parameter.PowerUpKind]int)
	for i := 0; i < 200; i++ {
		seen[r.loot.pick()]++
	}
	assert.Len(t, seen, 2)
	assert.Positive(t, seen[parameter.PowerUpShield])
	assert.Positive(t, seen[parameter.PowerUpHealth])
}

func TestPickCoversAllKindsUncapped(t *testing.T) {
	r := newRig(t, 8)
	seen := make(map[parameter.PowerUpKind]bool)
	for i := 0; i < 500; i++ {
		seen[r.loot.pick()] = true
	}
	assert.Len(t, seen, int(parameter.PowerUpKindCount))
}

func TestCollectAppliesBonuses(t *testing.T) {
	r := newRig(t, 1)
	p := &r.world.Player

	r.loot.Collect(parameter.PowerUpSpeed)
	assert.InDelta(t, parameter.PlayerMaxSpeed+parameter.PowerUpSpeedBonus, p.MaxSpeed, 1e-9)

	for i := 0; i < 20; i++ {
		r.loot.Collect(parameter.PowerUpFireRate)
		r.loot.Collect(parameter.PowerUpMultiShot)
	}
	assert.Equal(t, parameter.PowerUpFireRateCap, p.Player.FireRateBonus)
	assert.Equal(t, parameter.PowerUpMultiShotCap, p.Player.ShotBonus)

	r.loot.Collect(parameter.PowerUpShield)
	assert.Equal(t, 1, p.Combat.ShieldCharges)

	r.loot.Collect(parameter.PowerUpHealth)
	assert.Equal(t, parameter.PlayerHealth, p.Combat.HitPoints, "healing never exceeds max")
}

func TestPowerUpFadesAfterLifespan(t *testing.T) {
	r := newRig(t, 1)
	h := r.loot.Drop(farAway)
	u := r.world.PowerUps.Get(h)
	u.Vel = vmath.V(4, 0)

	r.loot.Update()
	assert.InDelta(t, 4*parameter.PowerUpFriction, u.Vel.X, 1e-9)

	for i := 1; i < parameter.PowerUpLifespan-1; i++ {
		r.loot.Update()
	}
	require.True(t, u.Alive)
	r.loot.Update()
	assert.False(t, u.Alive)
}
