package component

import (
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// PlayerComponent holds input intent, cooldowns and permanent bonuses
type PlayerComponent struct {
	// Move is the latest input direction; zero brakes
	Move vmath.Vec2

	ShootCooldown int
	WallCooldown  int

	SpeedBonus    float64
	FireRateBonus int
	ShotBonus     int
}

// ShootDelay is ticks between volleys after fire-rate bonuses
func (p *PlayerComponent) ShootDelay() int {
	return max(parameter.PlayerShootDelayMin, parameter.PlayerShootDelay-p.FireRateBonus)
}

// Shots is projectiles per volley before the live cap
func (p *PlayerComponent) Shots() int {
	return 1 + p.ShotBonus
}
