package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

func newMachine(seed uint64) (*Machine, *event.EventQueue) {
	q := event.NewEventQueue()
	return New(DefaultConfig(), vmath.NewFastRand(seed), q), q
}

func eventTypes(evs []event.GameEvent) []event.EventType {
	out := make([]event.EventType, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Type)
	}
	return out
}

func TestKillsRequiredStrictlyIncreasing(t *testing.T) {
	m, _ := newMachine(1)
	assert.Equal(t, 20, m.KillsRequired(1))
	for l := 1; l < 200; l++ {
		require.Greater(t, m.KillsRequired(l+1), m.KillsRequired(l), "level %d", l)
	}
}

func TestLevelOneClearsAfterRequiredKills(t *testing.T) {
	m, q := newMachine(1)
	for i := 0; i < m.KillsRequired(1); i++ {
		m.OnEnemyKilled()
	}
	assert.Equal(t, 2, m.Level())
	assert.Equal(t, 0, m.KillsThisLevel())
	assert.InDelta(t, 1.15, m.CurrentDifficulty(), 1e-9)
	assert.Equal(t, []event.EventType{event.EventLevelUp}, eventTypes(q.Consume()))
}

func TestLevelUpIncrementsExactlyOnce(t *testing.T) {
	m, _ := newMachine(1)
	for l := 1; l < 4; l++ {
		before := m.Level()
		require.False(t, m.BossActive())
		require.True(t, m.LevelUp())
		assert.Equal(t, before+1, m.Level())
	}
}

func TestBossLevelAndDefeat(t *testing.T) {
	m, q := newMachine(1)
	for m.Level() < 5 {
		m.OnEnemyKilled()
	}
	require.Equal(t, 5, m.Level())
	require.True(t, m.BossActive())

	req, ok := m.ConsumeBossRequest()
	require.True(t, ok)
	assert.Equal(t, parameter.BossSwarmLeader, req.Archetype)
	assert.Equal(t, 5, req.Level)
	_, again := m.ConsumeBossRequest()
	assert.False(t, again, "boss request must be consumed once")

	m.BindBoss(core.Handle{Index: 0, Gen: 1})
	assert.True(t, m.Boss().Valid())

	// Kills during the fight do not level up
	for i := 0; i < 100; i++ {
		m.OnEnemyKilled()
	}
	assert.Equal(t, 5, m.Level())

	q.Clear()
	require.True(t, m.OnBossDefeated())
	assert.False(t, m.BossActive())
	assert.Equal(t, 6, m.Level())
	assert.False(t, m.Boss().Valid())
	assert.Equal(t, []event.EventType{event.EventLevelUp, event.EventBossDefeated}, eventTypes(q.Consume()))

	assert.False(t, m.OnBossDefeated(), "no boss to defeat")
}

func TestBossCyclePeriodic(t *testing.T) {
	m, _ := newMachine(1)
	n := int(parameter.BossArchetypeCount)
	for i := 0; i < 3*n; i++ {
		for !m.BossActive() {
			m.LevelUp()
		}
		req, ok := m.ConsumeBossRequest()
		require.True(t, ok)
		assert.Equal(t, i, req.Encounter)
		assert.Equal(t, parameter.BossArchetype(i%n), req.Archetype, "encounter %d", i)
		require.True(t, m.OnBossDefeated())
	}
}

func TestLevelUpBlockedDuringBoss(t *testing.T) {
	m, _ := newMachine(1)
	for !m.BossActive() {
		m.LevelUp()
	}
	level := m.Level()
	assert.False(t, m.LevelUp())
	assert.Equal(t, level, m.Level())
}

func TestHordeSchedule(t *testing.T) {
	m, q := newMachine(42)
	for i := 0; i < parameter.FirstHordeTicks-1; i++ {
		m.Update()
		require.False(t, m.ConsumeHorde(), "tick %d", i)
	}
	m.Update()
	assert.True(t, m.ConsumeHorde())
	assert.False(t, m.ConsumeHorde(), "horde flag is one-shot")

	snap := m.Snapshot()
	assert.GreaterOrEqual(t, snap.HordeThreshold, parameter.HordeMinTicks)
	assert.Less(t, snap.HordeThreshold, parameter.HordeMaxTicks)
	assert.Equal(t, 0, snap.HordeTimer)
	assert.Zero(t, q.Len(), "horde scheduling does not notify by itself")
}

func TestHordeTimerPausedDuringBoss(t *testing.T) {
	m, _ := newMachine(1)
	for !m.BossActive() {
		m.LevelUp()
	}
	for i := 0; i < 5000; i++ {
		m.Update()
	}
	assert.False(t, m.ConsumeHorde())
	assert.Equal(t, 0, m.Snapshot().HordeTimer)
}

func TestHordeDeterministic(t *testing.T) {
	thresholds := func() []int {
		m, _ := newMachine(7)
		var out []int
		for len(out) < 5 {
			m.Update()
			if m.ConsumeHorde() {
				out = append(out, m.Snapshot().HordeThreshold)
			}
		}
		return out
	}
	assert.Equal(t, thresholds(), thresholds())
}

func TestEligibleUnlocksAccumulate(t *testing.T) {
	m, _ := newMachine(1)
	assert.Equal(t, []parameter.EnemyArchetype{parameter.EnemyBat}, m.Eligible())

	prev := 1
	for m.Level() < 12 {
		if m.BossActive() {
			m.OnBossDefeated()
			continue
		}
		m.LevelUp()
		got := len(m.Eligible())
		require.GreaterOrEqual(t, got, prev, "level %d", m.Level())
		prev = got
	}
	assert.NotContains(t, m.Eligible(), parameter.EnemySwarmer, "swarmers are horde-only")
	assert.Len(t, m.Eligible(), 4)
}

func TestSpawnIntervalFloor(t *testing.T) {
	m, _ := newMachine(1)
	assert.Equal(t, 58, m.SpawnInterval())
	for m.Level() < 30 {
		if m.BossActive() {
			m.OnBossDefeated()
		} else {
			m.LevelUp()
		}
	}
	assert.Equal(t, parameter.SpawnIntervalMin, m.SpawnInterval())
}

func TestHealthFactor(t *testing.T) {
	m, _ := newMachine(1)
	assert.InDelta(t, 1.0, m.HealthFactor(1), 1e-9)
	assert.InDelta(t, 1.4, m.HealthFactor(5), 1e-9)
}

func TestResetEntersLeveling(t *testing.T) {
	m, _ := newMachine(1)
	assert.Equal(t, StateLeveling, m.states.State())

	for !m.BossActive() {
		m.LevelUp()
	}
	require.Equal(t, StateBossActive, m.states.State())
	require.NoError(t, m.states.Init(m))
	assert.Equal(t, StateLeveling, m.states.State())
}

func TestReset(t *testing.T) {
	m, _ := newMachine(1)
	for !m.BossActive() {
		m.LevelUp()
	}
	m.Reset(vmath.NewFastRand(9))
	snap := m.Snapshot()
	assert.Equal(t, 1, snap.Level)
	assert.False(t, snap.BossActive)
	assert.Equal(t, 0, snap.BossEncounters)
	assert.Equal(t, parameter.FirstHordeTicks, snap.HordeThreshold)
	_, pending := m.ConsumeBossRequest()
	assert.False(t, pending)
}
