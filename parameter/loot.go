package parameter

// PowerUpKind identifies a collectible bonus
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpFireRate
	PowerUpMultiShot
	PowerUpShield
	PowerUpHealth
	PowerUpKindCount
)

var powerUpNames = [PowerUpKindCount]string{"speed", "fire rate", "multi shot", "shield", "health"}

func (k PowerUpKind) String() string {
	if k < PowerUpKindCount {
		return powerUpNames[k]
	}
	return "unknown"
}

// Drop rate
const (
	// LootDropChance applies to regular enemies; bosses always drop
	LootDropChance = 0.2
)

// Bonus amounts and caps
const (
	PowerUpSpeedBonus     = 1.0
	PowerUpSpeedCap       = 6.0
	PowerUpFireRateBonus  = 2
	PowerUpFireRateCap    = 26
	PowerUpMultiShotBonus = 1
	PowerUpMultiShotCap   = 13
	PowerUpHealthBonus    = 30
)

// Power-up body and magnet
const (
	PowerUpRadius   = 12.0
	PowerUpMaxSpeed = 8.0
	PowerUpMaxForce = 0.5
	PowerUpLifespan = 600
	PowerUpFriction = 0.95

	// PowerUpMagnetRadius is the pull range toward the player
	PowerUpMagnetRadius = 150.0
	// PowerUpMagnetNear and PowerUpMagnetFar are seek weights at distance 0 and at the radius
	PowerUpMagnetNear = 2.0
	PowerUpMagnetFar  = 0.5
)
