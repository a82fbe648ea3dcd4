package parameter

// Player body
const (
	PlayerRadius   = 20.0
	PlayerMaxSpeed = 10.0
	PlayerMaxForce = 1.5
	PlayerHealth   = 100
)

// Weapons
const (
	// PlayerShootDelay is ticks between volleys before fire-rate bonuses
	PlayerShootDelay = 15
	// PlayerShootDelayMin is the floor after all fire-rate bonuses
	PlayerShootDelayMin = 3
	// PlayerProjectileCap bounds live projectiles; volleys beyond it are rejected
	PlayerProjectileCap = 30
	// PlayerSpreadAngle is the half-angle of a multi-shot fan (radians, 30°)
	PlayerSpreadAngle = 0.5235987755982988
)

// Walls
const (
	PlayerWallCooldown = 360
	// PlayerWallDistance is how far ahead along the aim a wall is placed
	PlayerWallDistance = 60.0
)

// PlayerImmunityTicks is the invulnerability window after any hit, shield hits included
const PlayerImmunityTicks = 60
