package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is never emitted; the fsm treats it as "no trigger"
	EventNone EventType = iota

	// === Combat Event ===

	// EventEnemyKilled reports a credited enemy kill
	// Trigger: Combat death pass | Consumer: HUD, audio | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventExplosionRequest asks presentation for a burst at a death point
	// Trigger: Combat death pass | Consumer: renderer | Payload: *ExplosionPayload
	EventExplosionRequest

	// EventPlayerHit reports damage or a shield absorb on the player
	// Trigger: Combat contact checks | Consumer: HUD, audio | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPowerUpCollected reports a pickup applied to the player
	// Trigger: Combat collection check | Consumer: HUD, audio | Payload: *PowerUpPayload
	EventPowerUpCollected

	// === Player Action Event ===

	// EventShotFired reports an admitted volley
	// Trigger: Game.Fire | Consumer: audio | Payload: *ShotPayload
	EventShotFired

	// EventWallSpawned reports an admitted wall
	// Trigger: Game.SpawnWall | Consumer: audio | Payload: *WallPayload
	EventWallSpawned

	// === Progression Event ===

	// EventLevelUp reports a level advance that did not start a boss fight
	// Trigger: progression.Machine.LevelUp | Consumer: HUD flash, audio | Payload: *LevelPayload
	EventLevelUp

	// EventBossIncoming reports a boss encounter start
	// Trigger: progression.Machine.SpawnBoss | Consumer: HUD, audio | Payload: *BossPayload
	EventBossIncoming

	// EventBossDefeated reports a boss kill
	// Trigger: progression.Machine.OnBossDefeated | Consumer: HUD, audio | Payload: *BossPayload
	EventBossDefeated

	// EventHordeRequested reports a horde wave entering the arena
	// Trigger: StepProgression horde consumption | Consumer: HUD, audio | Payload: *HordePayload
	EventHordeRequested

	// === Run Event ===

	// EventGameOver reports player death
	// Trigger: Combat contact checks | Consumer: run fsm, HUD | Payload: *GameOverPayload
	EventGameOver

	// EventRunRestart resets the run
	// Trigger: Game.Restart | Consumer: run fsm | Payload: *RunPayload
	EventRunRestart
)

var eventNames = map[EventType]string{
	EventNone:             "none",
	EventEnemyKilled:      "enemy_killed",
	EventExplosionRequest: "explosion",
	EventPlayerHit:        "player_hit",
	EventPowerUpCollected: "powerup_collected",
	EventShotFired:        "shot_fired",
	EventWallSpawned:      "wall_spawned",
	EventLevelUp:          "level_up",
	EventBossIncoming:     "boss_incoming",
	EventBossDefeated:     "boss_defeated",
	EventHordeRequested:   "horde_requested",
	EventGameOver:         "game_over",
	EventRunRestart:       "run_restart",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a one-shot notification carrying an optional typed payload
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
