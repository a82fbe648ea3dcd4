// Package input turns terminal key events into player intents
package input

import "github.com/lixenwraith/horde/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentPause       // p
	IntentToggleMute  // m
	IntentRestart     // r, only honored after game over
	IntentResize      // terminal resize event
	IntentVolumeUp    // +
	IntentVolumeDown  // -
	IntentToggleDebug // F1

	// Player control
	IntentMove      // w,a,s,d; direction held for HoldTicks
	IntentAim       // arrows; aims and fires while held
	IntentFire      // space; fires along the last aim
	IntentSpawnWall // e; wall ahead of the last aim
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentPause:       "pause",
	IntentToggleMute:  "mute",
	IntentRestart:     "restart",
	IntentResize:      "resize",
	IntentVolumeUp:    "volume_up",
	IntentVolumeDown:  "volume_down",
	IntentToggleDebug: "debug",
	IntentMove:        "move",
	IntentAim:         "aim",
	IntentFire:        "fire",
	IntentSpawnWall:   "wall",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one decoded key press
// Dir is the unit direction for Move and Aim, zero otherwise
type Intent struct {
	Type IntentType
	Dir  vmath.Vec2
}
