package parameter

// EnemyArchetype identifies a regular enemy species
type EnemyArchetype uint8

const (
	EnemyBat EnemyArchetype = iota
	EnemyRunner
	EnemyTank
	EnemySplitter
	EnemySwarmer
	EnemyArchetypeCount
)

// EnemyProfile is the base tunable set of an archetype before difficulty scaling
type EnemyProfile struct {
	Name     string
	MaxSpeed float64
	MaxForce float64
	Radius   float64
	Damage   int
	Health   int
	Score    int

	// UnlockLevel is the first level this archetype joins regular spawns
	// Zero marks horde-only archetypes
	UnlockLevel int
}

// EnemyProfiles is indexed by EnemyArchetype
var EnemyProfiles = [EnemyArchetypeCount]EnemyProfile{
	EnemyBat:      {Name: "bat", MaxSpeed: 2, MaxForce: 0.1, Radius: 15, Damage: 10, Health: 1, Score: 10, UnlockLevel: 1},
	EnemyRunner:   {Name: "runner", MaxSpeed: 4, MaxForce: 0.15, Radius: 12, Damage: 5, Health: 1, Score: 15, UnlockLevel: 3},
	EnemyTank:     {Name: "tank", MaxSpeed: 1, MaxForce: 0.05, Radius: 25, Damage: 25, Health: 3, Score: 30, UnlockLevel: 5},
	EnemySplitter: {Name: "splitter", MaxSpeed: 2.5, MaxForce: 0.12, Radius: 18, Damage: 8, Health: 1, Score: 20, UnlockLevel: 10},
	EnemySwarmer:  {Name: "swarmer", MaxSpeed: 3, MaxForce: 0.1, Radius: 10, Damage: 5, Health: 1, Score: 5},
}

func (a EnemyArchetype) String() string {
	if a < EnemyArchetypeCount {
		return EnemyProfiles[a].Name
	}
	return "unknown"
}

// Enemy steering weights
const (
	// EnemyAvoidWeight scales obstacle avoidance for all enemies and bosses
	EnemyAvoidWeight = 2.5
)

// Splitter
const (
	// SplitterOffspring is the number of children spawned on death
	SplitterOffspring = 2
	// SplitterMaxGeneration is the generation that no longer splits
	SplitterMaxGeneration = 2
	// SplitterRadiusShrink is subtracted from the radius per generation
	SplitterRadiusShrink = 5.0
	// SplitterSpawnOffset is the distance of offspring from the parent's death point
	SplitterSpawnOffset = 20.0
)

// Swarmer flocking
const (
	SwarmerAlignWeight    = 1.0
	SwarmerCohesionWeight = 1.0
	SwarmerSeparateWeight = 1.5
	SwarmerSeekWeight     = 0.6
	SwarmerPerception     = 50.0
)

// Spawning
const (
	// SpawnEdgeInset is how far outside the arena edge regular enemies appear
	SpawnEdgeInset = 20.0
	// HordeEdgeInset and HordeEdgeScatter place horde members 50..150 units beyond one edge
	HordeEdgeInset   = 50.0
	HordeEdgeScatter = 100.0
	// HordeSizeMin and HordeSizeMax bound the horde member count [min, max)
	HordeSizeMin = 7
	HordeSizeMax = 12
)
