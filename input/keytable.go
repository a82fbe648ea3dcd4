package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/vmath"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Dir    vmath.Vec2
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

var (
	dirUp    = vmath.V(0, -1)
	dirDown  = vmath.V(0, 1)
	dirLeft  = vmath.V(-1, 0)
	dirRight = vmath.V(1, 0)
)

// DefaultKeyTable returns the default bindings: wasd moves, arrows aim and fire
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentAim, Dir: dirUp},
			tcell.KeyDown:   {Intent: IntentAim, Dir: dirDown},
			tcell.KeyLeft:   {Intent: IntentAim, Dir: dirLeft},
			tcell.KeyRight:  {Intent: IntentAim, Dir: dirRight},
			tcell.KeyF1:     {Intent: IntentToggleDebug},
		},
		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentMove, Dir: dirUp},
			's': {Intent: IntentMove, Dir: dirDown},
			'a': {Intent: IntentMove, Dir: dirLeft},
			'd': {Intent: IntentMove, Dir: dirRight},
			' ': {Intent: IntentFire},
			'e': {Intent: IntentSpawnWall},
			'p': {Intent: IntentPause},
			'm': {Intent: IntentToggleMute},
			'r': {Intent: IntentRestart},
			'q': {Intent: IntentQuit},
			'+': {Intent: IntentVolumeUp},
			'=': {Intent: IntentVolumeUp},
			'-': {Intent: IntentVolumeDown},
		},
	}
}

// Lookup resolves a key to its entry
func (t *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[key]
	return e, ok
}
