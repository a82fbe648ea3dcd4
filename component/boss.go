package component

import "github.com/lixenwraith/horde/parameter"

// BossComponent holds boss archetype state machines (teleport, shield, phases)
type BossComponent struct {
	Archetype parameter.BossArchetype
	// Encounter is the zero-based boss encounter index of the run
	Encounter int
	Level     int
	Score     int

	// Timer counts ticks toward the next teleport or shield toggle
	Timer int
	// Phase is 1..3 for the overlord, 1 otherwise
	Phase int
}
