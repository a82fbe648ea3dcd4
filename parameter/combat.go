package parameter

// Projectile
const (
	ProjectileLaunchSpeed    = 8.0
	ProjectileMaxSpeed       = 10.0
	ProjectileMaxForce       = 0.3
	ProjectileRadius         = 5.0
	ProjectileDamage         = 1
	ProjectileSeparateWeight = 0.1
	ProjectileHomingWeight   = 1.0
	// ProjectilePerception is the flock radius for projectile separation
	ProjectilePerception = 30.0
)

// Obstacles
const (
	WallRadius   = 30.0
	WallLifespan = 600
)
