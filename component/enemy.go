package component

import "github.com/lixenwraith/horde/parameter"

// EnemyComponent carries regular enemy tunables fixed at spawn
type EnemyComponent struct {
	Archetype parameter.EnemyArchetype
	// Generation counts splits from the original splitter; bounded by SplitterMaxGeneration
	Generation int
	Score      int
	// Entered is set once the enemy first reaches the arena; edge wrapping starts then
	Entered bool
}

// Splits reports whether death spawns offspring
func (e *EnemyComponent) Splits() bool {
	return e.Archetype == parameter.EnemySplitter && e.Generation < parameter.SplitterMaxGeneration
}

// Offspring returns how many children death produces
func (e *EnemyComponent) Offspring() int {
	if !e.Splits() {
		return 0
	}
	return parameter.SplitterOffspring
}
