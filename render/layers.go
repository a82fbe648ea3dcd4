package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/parameter/visual"
	"github.com/lixenwraith/horde/status"
)

// BorderLayer frames the arena viewport
type BorderLayer struct{}

func (BorderLayer) Render(ctx Context, buf *Buffer) {
	drawBorder(ctx, buf, visual.Border)
}

func drawBorder(ctx Context, buf *Buffer, color tcell.Color) {
	if ctx.ArenaW == 0 || ctx.ArenaH == 0 {
		return
	}
	left, top := ctx.ArenaX-1, ctx.ArenaY-1
	right, bottom := ctx.ArenaX+ctx.ArenaW, ctx.ArenaY+ctx.ArenaH
	for x := left + 1; x < right; x++ {
		buf.Set(x, top, '─', color)
		buf.Set(x, bottom, '─', color)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, '│', color)
		buf.Set(right, y, '│', color)
	}
	buf.Set(left, top, '┌', color)
	buf.Set(right, top, '┐', color)
	buf.Set(left, bottom, '└', color)
	buf.Set(right, bottom, '┘', color)
}

// ObstacleLayer draws player walls as filled discs
type ObstacleLayer struct{}

func (ObstacleLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Frame == nil {
		return
	}
	for _, o := range ctx.Frame.Obstacles {
		glyph, color := visual.GlyphObstacle, visual.Obstacle
		if o.TTL <= visual.ObstacleFadeTicks {
			glyph, color = visual.GlyphObstacleLo, visual.ObstacleOld
		}
		fillDisc(ctx, buf, o.X, o.Y, o.Radius, glyph, color)
	}
}

// fillDisc marks every cell whose arena-space center lies within r of (x, y)
func fillDisc(ctx Context, buf *Buffer, x, y, r float64, glyph rune, color tcell.Color) {
	cx, cy, ok := ctx.ToCell(x, y)
	if !ok {
		return
	}
	cellW := ctx.Frame.Width / float64(ctx.ArenaW)
	cellH := ctx.Frame.Height / float64(ctx.ArenaH)
	rx := int(r/cellW) + 1
	ry := int(r/cellH) + 1
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			px, py := float64(dx)*cellW, float64(dy)*cellH
			if px*px+py*py > r*r {
				continue
			}
			col, row := cx+dx, cy+dy
			if col < ctx.ArenaX || row < ctx.ArenaY || col >= ctx.ArenaX+ctx.ArenaW || row >= ctx.ArenaY+ctx.ArenaH {
				continue
			}
			buf.Set(col, row, glyph, color)
		}
	}
	buf.Set(cx, cy, glyph, color)
}

// kindOrder draws later kinds over earlier ones
var kindOrder = [...]component.Kind{
	component.KindPowerUp,
	component.KindEnemy,
	component.KindBoss,
	component.KindProjectile,
	component.KindPlayer,
}

// AgentLayer draws every agent by kind and archetype
type AgentLayer struct{}

func (AgentLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Frame == nil {
		return
	}
	for _, kind := range kindOrder {
		for _, a := range ctx.Frame.Agents {
			if component.Kind(a.Kind) != kind {
				continue
			}
			drawAgent(ctx, buf, a)
		}
	}
}

func drawAgent(ctx Context, buf *Buffer, a game.AgentView) {
	x, y, ok := ctx.ToCell(a.X, a.Y)
	if !ok {
		return
	}
	switch component.Kind(a.Kind) {
	case component.KindPlayer:
		style := tcell.StyleDefault.Background(visual.Background).Foreground(visual.Player).Bold(true)
		if a.Shielded {
			style = style.Reverse(true)
		}
		buf.SetStyle(x, y, visual.GlyphPlayer, style)
	case component.KindEnemy:
		if int(a.Tag) < len(visual.EnemyGlyphs) {
			buf.Set(x, y, visual.EnemyGlyphs[a.Tag], visual.EnemyColors[a.Tag])
		}
	case component.KindBoss:
		if int(a.Tag) >= len(visual.BossGlyphs) {
			return
		}
		edge := visual.BossColors[a.Tag]
		if a.Shielded {
			edge = visual.BossShield
		}
		ring(ctx, buf, a.X, a.Y, a.Radius, visual.GlyphBossEdge, edge)
		buf.SetStyle(x, y, visual.BossGlyphs[a.Tag],
			tcell.StyleDefault.Background(visual.Background).Foreground(visual.BossColors[a.Tag]).Bold(true))
	case component.KindProjectile:
		buf.Set(x, y, visual.GlyphProjectile, visual.Projectile)
	case component.KindPowerUp:
		if int(a.Tag) < len(visual.PowerUpGlyphs) {
			buf.Set(x, y, visual.PowerUpGlyphs[a.Tag], visual.PowerUpColors[a.Tag])
		}
	}
}

// ring outlines a circle using eight compass points scaled per axis
func ring(ctx Context, buf *Buffer, x, y, r float64, glyph rune, color tcell.Color) {
	for _, d := range [...][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {0.7, 0.7}, {-0.7, 0.7}, {0.7, -0.7}, {-0.7, -0.7}} {
		if col, row, ok := ctx.ToCell(x+d[0]*r, y+d[1]*r); ok {
			buf.Set(col, row, glyph, color)
		}
	}
}

type explosion struct {
	x, y   float64
	radius float64
	frames int
}

type banner struct {
	text   string
	color  tcell.Color
	frames int
}

// EffectLayer shows transient markers derived from notifications
type EffectLayer struct {
	explosions []explosion
	banner     banner
	flash      int
}

func NewEffectLayer() *EffectLayer {
	return &EffectLayer{explosions: make([]explosion, 0, 16)}
}

// Observe ages current effects by one frame and starts new ones
func (l *EffectLayer) Observe(events []event.GameEvent) {
	live := l.explosions[:0]
	for _, e := range l.explosions {
		if e.frames--; e.frames > 0 {
			live = append(live, e)
		}
	}
	l.explosions = live
	if l.banner.frames > 0 {
		l.banner.frames--
	}
	if l.flash > 0 {
		l.flash--
	}

	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.ExplosionPayload:
			l.explosions = append(l.explosions, explosion{x: p.Pos.X, y: p.Pos.Y, radius: p.Radius, frames: visual.ExplosionFrames})
		case *event.PlayerHitPayload:
			l.flash = visual.ExplosionFrames / 2
		case *event.LevelPayload:
			l.banner = banner{text: fmt.Sprintf("LEVEL %d", p.Level), color: visual.Gold, frames: parameter.TickRate}
		case *event.BossPayload:
			if ev.Type == event.EventBossIncoming {
				l.banner = banner{text: "BOSS: " + bossName(p.Archetype), color: visual.Warning, frames: 2 * parameter.TickRate}
			} else {
				l.banner = banner{text: bossName(p.Archetype) + " DEFEATED", color: visual.Gold, frames: 2 * parameter.TickRate}
			}
		case *event.HordePayload:
			l.banner = banner{text: fmt.Sprintf("HORDE x%d", p.Size), color: visual.Warning, frames: parameter.TickRate}
		}
	}
}

// Active reports the number of live explosion markers
func (l *EffectLayer) Active() int {
	return len(l.explosions)
}

func (l *EffectLayer) Render(ctx Context, buf *Buffer) {
	for _, e := range l.explosions {
		ring(ctx, buf, e.x, e.y, e.radius*float64(visual.ExplosionFrames-e.frames+1)/float64(visual.ExplosionFrames),
			visual.GlyphExplosion, visual.Explosion)
	}
	if l.flash > 0 {
		drawBorder(ctx, buf, visual.Warning)
	}
	if l.banner.frames > 0 {
		centerText(ctx, buf, ctx.ArenaY+1, l.banner.text, tcell.StyleDefault.Background(visual.Background).Foreground(l.banner.color).Bold(true))
	}
}

func bossName(a parameter.BossArchetype) string {
	if a < parameter.BossArchetypeCount {
		return parameter.BossProfiles[a].Name
	}
	return "boss"
}

func centerText(ctx Context, buf *Buffer, row int, s string, style tcell.Style) {
	x := (ctx.ScreenWidth - len([]rune(s))) / 2
	buf.SetString(max(x, 0), row, s, style)
}

// HUDLayer shows player health, progression and run state above the arena
type HUDLayer struct{}

func (HUDLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Frame == nil {
		return
	}
	f := ctx.Frame
	text := tcell.StyleDefault.Background(visual.Background).Foreground(visual.Text)
	dim := text.Foreground(visual.DimText)

	x := buf.SetString(0, 0, "HP ", text)
	var player *game.AgentView
	var boss *game.AgentView
	for i := range f.Agents {
		switch component.Kind(f.Agents[i].Kind) {
		case component.KindPlayer:
			player = &f.Agents[i]
		case component.KindBoss:
			boss = &f.Agents[i]
		}
	}
	if player != nil {
		x = healthBar(buf, x, 0, player.Health, player.MaxHealth)
		x = buf.SetString(x, 0, fmt.Sprintf(" %3d", player.Health), text)
		if player.Shielded {
			x = buf.SetString(x, 0, " [shield]", text.Foreground(visual.BossShield))
		}
	}
	p := f.Progression
	buf.SetString(x+2, 0, fmt.Sprintf("L%d  kills %d/%d  score %d  x%.2f",
		p.Level, p.KillsThisLevel, p.KillsRequired, f.Score, p.Difficulty), text)

	if boss != nil {
		x = buf.SetString(0, 1, bossName(parameter.BossArchetype(boss.Tag))+" ", text.Foreground(visual.BossColors[boss.Tag%uint8(parameter.BossArchetypeCount)]))
		healthBar(buf, x, 1, boss.Health, boss.MaxHealth)
	} else if p.HordeThreshold > 0 {
		left := (p.HordeThreshold - p.HordeTimer) / parameter.TickRate
		buf.SetString(0, 1, fmt.Sprintf("horde in %ds", max(left, 0)), dim)
	}

	var flags string
	if ctx.Paused {
		flags += " PAUSED"
	}
	if ctx.Muted {
		flags += " MUTED"
	}
	if ctx.Status != nil {
		flags += fmt.Sprintf("  enemies %d", ctx.Status.Ints.Get(status.MetricEnemies).Load())
	}
	buf.SetString(max(ctx.ScreenWidth-len(flags), 0), 1, flags, dim)
}

// healthBar draws a fixed-width gradient bar and returns the column after it
func healthBar(buf *Buffer, x, y, hp, maxHP int) int {
	frac := 0.0
	if maxHP > 0 {
		frac = float64(max(hp, 0)) / float64(maxHP)
	}
	filled := int(frac*visual.HealthBarWidth + 0.5)
	color := visual.HealthColor(frac)
	for i := 0; i < visual.HealthBarWidth; i++ {
		if i < filled {
			buf.Set(x+i, y, visual.HealthBarFull, color)
		} else {
			buf.Set(x+i, y, visual.HealthBarEmpty, visual.DimText)
		}
	}
	return x + visual.HealthBarWidth
}

// OverlayLayer covers the arena with the game over and pause notices
type OverlayLayer struct{}

func (OverlayLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Frame == nil {
		return
	}
	mid := ctx.ArenaY + ctx.ArenaH/2
	style := tcell.StyleDefault.Background(visual.Background).Foreground(visual.Warning).Bold(true)
	switch {
	case ctx.Frame.Over:
		centerText(ctx, buf, mid-1, "GAME OVER", style)
		centerText(ctx, buf, mid, fmt.Sprintf("level %d  score %d  kills %d",
			ctx.Frame.Progression.Level, ctx.Frame.Score, ctx.Frame.Progression.TotalKills), style.Foreground(visual.Text).Bold(false))
		centerText(ctx, buf, mid+1, "r restart  q quit", style.Foreground(visual.DimText).Bold(false))
	case ctx.Paused:
		centerText(ctx, buf, mid, "PAUSED", style.Foreground(visual.Text))
	}
}
