package status

import "sync/atomic"

// Registry is the process-wide metrics facade
// Systems cache metric pointers at construction and write atomics during Update;
// the HUD and the spectator status endpoint read them from other goroutines
type Registry struct {
	Ints   *Table[atomic.Int64]
	Floats *Table[Float]
	Texts  *Table[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewTable[atomic.Int64](),
		Floats: NewTable[Float](),
		Texts:  NewTable[Text](),
	}
}

// Snapshot flattens all metrics into a plain map for serialization
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Len()+r.Floats.Len()+r.Texts.Len())
	r.Ints.Each(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Each(func(k string, v *Float) { out[k] = v.Get() })
	r.Texts.Each(func(k string, v *Text) { out[k] = v.Get() })
	return out
}

// Metric names shared by systems and readers
const (
	MetricKills        = "combat.kills"
	MetricPlayerHits   = "combat.player_hits"
	MetricLootDrops    = "loot.drops"
	MetricLootCollects = "loot.collects"
	MetricSpawned      = "spawn.enemies"
	MetricHordes       = "spawn.hordes"
	MetricEnemies      = "agents.enemies"
	MetricProjectiles  = "agents.projectiles"
	MetricLevel        = "progression.level"
	MetricDifficulty   = "progression.difficulty"
	MetricScore        = "progression.score"
	MetricTicks        = "tick.count"
	MetricRunID        = "run.id"
)
