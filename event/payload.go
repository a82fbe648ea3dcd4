package event

import (
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

type EnemyKilledPayload struct {
	Enemy     core.Handle
	Archetype parameter.EnemyArchetype
	Pos       vmath.Vec2
	Score     int
	Loot      bool // a power-up dropped at Pos
}

type ExplosionPayload struct {
	Pos    vmath.Vec2
	Radius float64
	Boss   bool
}

type PlayerHitPayload struct {
	Damage   int
	Absorbed bool // a shield charge took the hit
	Health   int
}

type PowerUpPayload struct {
	Kind parameter.PowerUpKind
}

type ShotPayload struct {
	Count int
	Aim   vmath.Vec2
}

type WallPayload struct {
	Pos vmath.Vec2
}

type LevelPayload struct {
	Level      int
	Difficulty float64
}

type BossPayload struct {
	Archetype parameter.BossArchetype
	Encounter int
	Level     int
}

type HordePayload struct {
	Size int
	Edge int // 0 top, 1 right, 2 bottom, 3 left
}

type GameOverPayload struct {
	Level int
	Score int
	Kills int
	Tick  int64
}

type RunPayload struct {
	RunID string
	Seed  uint64
}
