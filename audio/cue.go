// Package audio plays short synthesized cues for simulation notifications
package audio

import "github.com/lixenwraith/horde/event"

// Cue identifies one synthesized sound
type Cue int

const (
	CueShot Cue = iota
	CueWall
	CueKill
	CueExplosion
	CueHit
	CueShieldHit
	CuePowerUp
	CueLevelUp
	CueBossIncoming
	CueBossDefeated
	CueHorde
	CueGameOver
	cueCount
)

var cueNames = [cueCount]string{
	CueShot:         "shot",
	CueWall:         "wall",
	CueKill:         "kill",
	CueExplosion:    "explosion",
	CueHit:          "hit",
	CueShieldHit:    "shield_hit",
	CuePowerUp:      "powerup",
	CueLevelUp:      "level_up",
	CueBossIncoming: "boss_incoming",
	CueBossDefeated: "boss_defeated",
	CueHorde:        "horde",
	CueGameOver:     "game_over",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// CueFor maps a notification to its cue; false when the event is silent
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventShotFired:
		return CueShot, true
	case event.EventWallSpawned:
		return CueWall, true
	case event.EventEnemyKilled:
		return CueKill, true
	case event.EventExplosionRequest:
		if p, ok := ev.Payload.(*event.ExplosionPayload); ok && p.Boss {
			return CueExplosion, true
		}
		return 0, false
	case event.EventPlayerHit:
		if p, ok := ev.Payload.(*event.PlayerHitPayload); ok && p.Absorbed {
			return CueShieldHit, true
		}
		return CueHit, true
	case event.EventPowerUpCollected:
		return CuePowerUp, true
	case event.EventLevelUp:
		return CueLevelUp, true
	case event.EventBossIncoming:
		return CueBossIncoming, true
	case event.EventBossDefeated:
		return CueBossDefeated, true
	case event.EventHordeRequested:
		return CueHorde, true
	case event.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}
