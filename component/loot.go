package component

import "github.com/lixenwraith/horde/parameter"

// PowerUpComponent is a collectible dropped on death
type PowerUpComponent struct {
	Kind parameter.PowerUpKind
	// Life is remaining ticks before the pickup fades
	Life int
}
