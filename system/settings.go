// Package system holds the per-tick game systems driven by the orchestrator
package system

import "github.com/lixenwraith/horde/parameter"

// Settings are run tunables shared by the systems, filled from configuration
type Settings struct {
	InitialEnemies  int
	TargetEnemies   int
	WanderInfluence float64
	LootChance      float64
	MaxNeighbors    int
}

// DefaultSettings mirrors the compiled-in parameters
func DefaultSettings() Settings {
	return Settings{
		InitialEnemies:  parameter.InitialEnemies,
		TargetEnemies:   parameter.TargetEnemies,
		WanderInfluence: parameter.WanderInfluence,
		LootChance:      parameter.LootDropChance,
		MaxNeighbors:    parameter.FlockMaxNeighbors,
	}
}
