// Package visual holds terminal presentation constants: glyphs, colors and gradients
package visual

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/parameter"
)

// Base palette
var (
	Background = tcell.NewRGBColor(12, 12, 18)
	Border     = tcell.NewRGBColor(70, 72, 96)
	Text       = tcell.NewRGBColor(200, 200, 200)
	DimText    = tcell.NewRGBColor(120, 120, 120)
	Warning    = tcell.NewRGBColor(255, 69, 0)
	Gold       = tcell.NewRGBColor(255, 215, 0)

	Player      = tcell.NewRGBColor(0, 206, 209)
	PlayerHurt  = tcell.NewRGBColor(255, 255, 255)
	Projectile  = tcell.NewRGBColor(255, 240, 150)
	Obstacle    = tcell.NewRGBColor(140, 145, 155)
	ObstacleOld = tcell.NewRGBColor(80, 80, 90)
	Explosion   = tcell.NewRGBColor(255, 140, 0)
	BossShield  = tcell.NewRGBColor(134, 100, 255)
)

// EnemyColors is indexed by parameter.EnemyArchetype
var EnemyColors = [parameter.EnemyArchetypeCount]tcell.Color{
	parameter.EnemyBat:      tcell.NewRGBColor(180, 60, 60),
	parameter.EnemyRunner:   tcell.NewRGBColor(255, 120, 40),
	parameter.EnemyTank:     tcell.NewRGBColor(139, 0, 0),
	parameter.EnemySplitter: tcell.NewRGBColor(34, 180, 34),
	parameter.EnemySwarmer:  tcell.NewRGBColor(219, 112, 147),
}

// BossColors is indexed by parameter.BossArchetype
var BossColors = [parameter.BossArchetypeCount]tcell.Color{
	parameter.BossSwarmLeader:   tcell.NewRGBColor(219, 112, 147),
	parameter.BossTankCommander: tcell.NewRGBColor(160, 20, 20),
	parameter.BossAssassin:      tcell.NewRGBColor(200, 200, 255),
	parameter.BossWarden:        tcell.NewRGBColor(65, 105, 225),
	parameter.BossOverlord:      tcell.NewRGBColor(255, 215, 0),
}

// PowerUpColors is indexed by parameter.PowerUpKind
var PowerUpColors = [parameter.PowerUpKindCount]tcell.Color{
	parameter.PowerUpSpeed:     tcell.NewRGBColor(0, 255, 255),
	parameter.PowerUpFireRate:  tcell.NewRGBColor(255, 165, 0),
	parameter.PowerUpMultiShot: tcell.NewRGBColor(255, 0, 255),
	parameter.PowerUpShield:    tcell.NewRGBColor(65, 105, 225),
	parameter.PowerUpHealth:    tcell.NewRGBColor(50, 205, 50),
}

// Health gradient keyframes, empty to full
var healthStops = [...][3]int32{
	{139, 0, 0},
	{255, 69, 0},
	{255, 215, 0},
	{34, 139, 34},
}

// HealthColor maps a fill fraction in [0, 1] onto the health gradient
func HealthColor(frac float64) tcell.Color {
	switch {
	case frac <= 0:
		frac = 0
	case frac >= 1:
		frac = 1
	}
	pos := frac * float64(len(healthStops)-1)
	i := int(pos)
	if i >= len(healthStops)-1 {
		c := healthStops[len(healthStops)-1]
		return tcell.NewRGBColor(c[0], c[1], c[2])
	}
	t := pos - float64(i)
	a, b := healthStops[i], healthStops[i+1]
	lerp := func(x, y int32) int32 { return x + int32(float64(y-x)*t) }
	return tcell.NewRGBColor(lerp(a[0], b[0]), lerp(a[1], b[1]), lerp(a[2], b[2]))
}
