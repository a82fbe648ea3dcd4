// Package progression tracks levels, difficulty, boss encounters and horde timing
package progression

import (
	"log"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/engine/fsm"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

const (
	StateLeveling fsm.StateID = iota + 1
	StateBossActive
)

// BossRequest asks the orchestrator to instantiate a boss
type BossRequest struct {
	Archetype parameter.BossArchetype
	Encounter int
	Level     int
}

// Snapshot is a read-only copy of the progression state
type Snapshot struct {
	Level          int     `msgpack:"level" json:"level"`
	KillsThisLevel int     `msgpack:"kills_level" json:"kills_level"`
	KillsRequired  int     `msgpack:"kills_required" json:"kills_required"`
	TotalKills     int     `msgpack:"kills_total" json:"kills_total"`
	Difficulty     float64 `msgpack:"difficulty" json:"difficulty"`
	BossActive     bool    `msgpack:"boss_active" json:"boss_active"`
	BossEncounters int     `msgpack:"boss_encounters" json:"boss_encounters"`
	HordeTimer     int     `msgpack:"horde_timer" json:"horde_timer"`
	HordeThreshold int     `msgpack:"horde_threshold" json:"horde_threshold"`
}

// Machine is the per-run progression singleton
// Leveling -> BossActive -> Leveling, one boss per boss-interval level
type Machine struct {
	cfg    Config
	rng    *vmath.FastRand
	events *event.EventQueue
	states *fsm.Machine[*Machine]

	level          int
	killsThisLevel int
	totalKills     int
	difficulty     float64

	boss        core.Handle
	encounters  int
	pendingBoss *BossRequest

	hordeTimer     int
	hordeThreshold int
	hordeRequested bool

	tick int64
}

// New creates a machine at level 1; events may be nil
func New(cfg Config, rng *vmath.FastRand, events *event.EventQueue) *Machine {
	m := &Machine{cfg: cfg, rng: rng, events: events}

	sm := fsm.NewMachine[*Machine]()
	sm.AddState(StateLeveling, "leveling")
	sm.AddState(StateBossActive, "boss")
	sm.AddTransition(StateLeveling, event.EventBossIncoming, StateBossActive, nil)
	sm.AddTransition(StateBossActive, event.EventBossDefeated, StateLeveling, nil)
	sm.OnExit(StateBossActive, func(m *Machine) {
		m.boss = core.NoHandle
		m.pendingBoss = nil
	})
	m.states = sm

	m.Reset(rng)
	return m
}

// Reset restores initial values; rng replaces the random source when non-nil
func (m *Machine) Reset(rng *vmath.FastRand) {
	if rng != nil {
		m.rng = rng
	}
	m.level = 1
	m.killsThisLevel = 0
	m.totalKills = 0
	m.difficulty = m.Difficulty(1)
	m.boss = core.NoHandle
	m.encounters = 0
	m.pendingBoss = nil
	m.hordeTimer = 0
	m.hordeThreshold = m.cfg.FirstHorde
	m.hordeRequested = false
	m.tick = 0
	if err := m.states.Init(m); err != nil {
		log.Printf("progression: %v", err)
	}
}

// KillsRequired is the kill threshold to clear level
func (m *Machine) KillsRequired(level int) int {
	return m.cfg.BaseKills + m.cfg.KillsPerLevel*(level-1)
}

// Difficulty scales speed and damage of enemies spawned at level
func (m *Machine) Difficulty(level int) float64 {
	return 1 + m.cfg.DifficultyStep*float64(level-1)
}

// HealthFactor scales hit points of enemies and bosses spawned at level
func (m *Machine) HealthFactor(level int) float64 {
	return 1 + m.cfg.HealthStep*float64(level-1)
}

// SpawnInterval is ticks between maintenance spawns at the current level
func (m *Machine) SpawnInterval() int {
	return max(m.cfg.SpawnIntervalMin, m.cfg.SpawnIntervalBase-m.cfg.SpawnIntervalStep*m.level)
}

// Eligible lists archetypes unlocked for regular spawns at the current level
// Unlocks only accumulate with level
func (m *Machine) Eligible() []parameter.EnemyArchetype {
	out := make([]parameter.EnemyArchetype, 0, parameter.EnemyArchetypeCount)
	for a := parameter.EnemyArchetype(0); a < parameter.EnemyArchetypeCount; a++ {
		unlock := parameter.EnemyProfiles[a].UnlockLevel
		if unlock > 0 && unlock <= m.level {
			out = append(out, a)
		}
	}
	return out
}

// OnEnemyKilled counts a kill and levels up once the threshold is met outside boss fights
func (m *Machine) OnEnemyKilled() {
	m.killsThisLevel++
	m.totalKills++
	if !m.BossActive() && m.killsThisLevel >= m.KillsRequired(m.level) {
		m.LevelUp()
	}
}

// LevelUp advances exactly one level; boss-interval levels start a boss encounter
// No-op during a boss fight
func (m *Machine) LevelUp() bool {
	if m.BossActive() {
		return false
	}
	m.level++
	m.killsThisLevel = 0
	m.difficulty = m.Difficulty(m.level)

	if m.cfg.BossInterval > 0 && m.level%m.cfg.BossInterval == 0 {
		m.SpawnBoss()
		return true
	}
	m.emit(event.EventLevelUp, &event.LevelPayload{Level: m.level, Difficulty: m.difficulty})
	return true
}

// SpawnBoss selects the next archetype in the cycle and enters BossActive
// The boss body is created by the orchestrator from ConsumeBossRequest
func (m *Machine) SpawnBoss() BossRequest {
	req := BossRequest{
		Archetype: parameter.BossArchetype(m.encounters % int(parameter.BossArchetypeCount)),
		Encounter: m.encounters,
		Level:     m.level,
	}
	m.encounters++
	m.states.HandleEvent(m, event.EventBossIncoming)
	m.pendingBoss = &req

	log.Printf("progression: boss %s incoming (encounter %d, level %d)", req.Archetype, req.Encounter, req.Level)
	m.emit(event.EventBossIncoming, &event.BossPayload{Archetype: req.Archetype, Encounter: req.Encounter, Level: req.Level})
	return req
}

// OnBossDefeated leaves BossActive and always advances the level
func (m *Machine) OnBossDefeated() bool {
	if !m.BossActive() {
		return false
	}
	payload := &event.BossPayload{Encounter: m.encounters - 1, Level: m.level}
	payload.Archetype = parameter.BossArchetype(payload.Encounter % int(parameter.BossArchetypeCount))

	m.states.HandleEvent(m, event.EventBossDefeated)
	m.LevelUp()
	m.emit(event.EventBossDefeated, payload)
	return true
}

// Update advances timers by one tick
func (m *Machine) Update() {
	m.tick++
	m.states.Update(m)
	if m.BossActive() {
		return
	}
	m.hordeTimer++
	if m.hordeTimer >= m.hordeThreshold {
		m.hordeRequested = true
		m.hordeTimer = 0
		m.hordeThreshold = m.rng.IntRange(m.cfg.HordeMin, m.cfg.HordeMax)
	}
}

// ConsumeHorde returns true once per horde trigger
func (m *Machine) ConsumeHorde() bool {
	if !m.hordeRequested {
		return false
	}
	m.hordeRequested = false
	return true
}

// ConsumeBossRequest returns the pending boss spawn once
func (m *Machine) ConsumeBossRequest() (BossRequest, bool) {
	if m.pendingBoss == nil {
		return BossRequest{}, false
	}
	req := *m.pendingBoss
	m.pendingBoss = nil
	return req, true
}

// BindBoss records the live boss body
func (m *Machine) BindBoss(h core.Handle) {
	if m.BossActive() {
		m.boss = h
	}
}

func (m *Machine) Boss() core.Handle   { return m.boss }
func (m *Machine) Level() int          { return m.level }
func (m *Machine) KillsThisLevel() int { return m.killsThisLevel }
func (m *Machine) TotalKills() int     { return m.totalKills }
func (m *Machine) Encounters() int     { return m.encounters }

// CurrentDifficulty is the multiplier for the current level
func (m *Machine) CurrentDifficulty() float64 { return m.difficulty }

// CurrentHealthFactor is the health scale for the current level
func (m *Machine) CurrentHealthFactor() float64 { return m.HealthFactor(m.level) }

func (m *Machine) BossActive() bool {
	return m.states.State() == StateBossActive
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Level:          m.level,
		KillsThisLevel: m.killsThisLevel,
		KillsRequired:  m.KillsRequired(m.level),
		TotalKills:     m.totalKills,
		Difficulty:     m.difficulty,
		BossActive:     m.BossActive(),
		BossEncounters: m.encounters,
		HordeTimer:     m.hordeTimer,
		HordeThreshold: m.hordeThreshold,
	}
}

func (m *Machine) emit(t event.EventType, payload any) {
	if m.events != nil {
		m.events.Emit(t, payload, m.tick)
	}
}
