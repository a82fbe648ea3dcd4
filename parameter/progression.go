package parameter

// Level thresholds
const (
	// BaseKillsRequired is the kill count needed to clear level 1
	BaseKillsRequired = 20
	// KillsPerLevel is added to the threshold for each level beyond the first
	KillsPerLevel = 5
	// BossInterval makes every Nth level a boss level
	BossInterval = 5
)

// Difficulty scaling, linear in (level - 1)
const (
	DifficultyStep = 0.15
	HealthStep     = 0.1
)

// Spawn maintenance
const (
	InitialEnemies = 5
	TargetEnemies  = 8
	// TargetEnemiesMin and TargetEnemiesMax bound the configurable live-enemy target
	TargetEnemiesMin = 3
	TargetEnemiesMax = 15

	SpawnIntervalBase = 60
	SpawnIntervalStep = 2
	SpawnIntervalMin  = 20

	// WanderInfluence blends wander against seek for regular enemies (0..1)
	WanderInfluence = 0.2
)

// Horde timer, in ticks
const (
	FirstHordeTicks = 600
	HordeMinTicks   = 600
	HordeMaxTicks   = 1200
)
