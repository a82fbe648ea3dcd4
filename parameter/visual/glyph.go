package visual

import "github.com/lixenwraith/horde/parameter"

// Agent glyphs
const (
	GlyphPlayer     = '@'
	GlyphProjectile = '·'
	GlyphObstacle   = '█'
	GlyphObstacleLo = '▓' // wall in its last second
	GlyphExplosion  = '*'
	GlyphBossEdge   = '▒'
)

// EnemyGlyphs is indexed by parameter.EnemyArchetype
var EnemyGlyphs = [parameter.EnemyArchetypeCount]rune{
	parameter.EnemyBat:      'v',
	parameter.EnemyRunner:   '>',
	parameter.EnemyTank:     'T',
	parameter.EnemySplitter: 'S',
	parameter.EnemySwarmer:  '~',
}

// BossGlyphs is indexed by parameter.BossArchetype
var BossGlyphs = [parameter.BossArchetypeCount]rune{
	parameter.BossSwarmLeader:   'L',
	parameter.BossTankCommander: 'C',
	parameter.BossAssassin:      'A',
	parameter.BossWarden:        'W',
	parameter.BossOverlord:      'O',
}

// PowerUpGlyphs is indexed by parameter.PowerUpKind
var PowerUpGlyphs = [parameter.PowerUpKindCount]rune{
	parameter.PowerUpSpeed:     's',
	parameter.PowerUpFireRate:  'f',
	parameter.PowerUpMultiShot: 'm',
	parameter.PowerUpShield:    '0',
	parameter.PowerUpHealth:    '+',
}

// Health bar
const (
	HealthBarWidth = 20
	HealthBarFull  = '█'
	HealthBarEmpty = '░'
)

// ExplosionFrames is how many rendered frames an explosion marker persists
const ExplosionFrames = 12

// ObstacleFadeTicks marks walls about to expire
const ObstacleFadeTicks = 60
