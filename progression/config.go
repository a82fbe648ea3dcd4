package progression

import "github.com/lixenwraith/horde/parameter"

// Config holds the level, difficulty and horde tunables
type Config struct {
	BaseKills     int
	KillsPerLevel int
	BossInterval  int

	DifficultyStep float64
	HealthStep     float64

	FirstHorde int
	HordeMin   int
	HordeMax   int

	SpawnIntervalBase int
	SpawnIntervalStep int
	SpawnIntervalMin  int
}

// DefaultConfig returns the built-in tuning
func DefaultConfig() Config {
	return Config{
		BaseKills:         parameter.BaseKillsRequired,
		KillsPerLevel:     parameter.KillsPerLevel,
		BossInterval:      parameter.BossInterval,
		DifficultyStep:    parameter.DifficultyStep,
		HealthStep:        parameter.HealthStep,
		FirstHorde:        parameter.FirstHordeTicks,
		HordeMin:          parameter.HordeMinTicks,
		HordeMax:          parameter.HordeMaxTicks,
		SpawnIntervalBase: parameter.SpawnIntervalBase,
		SpawnIntervalStep: parameter.SpawnIntervalStep,
		SpawnIntervalMin:  parameter.SpawnIntervalMin,
	}
}
