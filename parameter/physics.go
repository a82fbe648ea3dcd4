package parameter

// Wander random walk
const (
	// WanderDistance is how far ahead along velocity the wander circle is centered
	WanderDistance = 100.0
	// WanderRadius is the radius of the wander circle
	WanderRadius = 50.0
	// WanderJitter bounds the per-tick heading perturbation (±radians)
	WanderJitter = 0.3
)

// Obstacle avoidance
const (
	// AvoidLookahead is the full whisker length; the short whisker is half of it
	AvoidLookahead = 50.0
)

// Flocking
const (
	// FlockMaxNeighbors caps peers scanned per behavior per agent per tick
	FlockMaxNeighbors = 12
)

// Containment keeps the player inside the arena
const (
	ContainmentMargin = 40.0
	ContainmentWeight = 2.0
)

// ArriveSlowingRadius is the default braking radius for Arrive
const ArriveSlowingRadius = 100.0
