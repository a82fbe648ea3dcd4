package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/parameter/visual"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func frame() *game.Snapshot {
	return &game.Snapshot{
		Width:  800,
		Height: 400,
		Score:  120,
		Progression: progression.Snapshot{
			Level: 2, KillsThisLevel: 3, KillsRequired: 25, Difficulty: 1.15,
			HordeThreshold: 600, HordeTimer: 0,
		},
		Agents: []game.AgentView{
			{Kind: uint8(component.KindPlayer), X: 400, Y: 200, Radius: 20, Health: 50, MaxHealth: 100},
			{Kind: uint8(component.KindEnemy), Tag: uint8(parameter.EnemyTank), X: 100, Y: 100, Radius: 25},
			{Kind: uint8(component.KindPowerUp), Tag: uint8(parameter.PowerUpHealth), X: 700, Y: 300, Radius: 12},
		},
		Obstacles: []game.ObstacleView{{X: 600, Y: 100, Radius: 30, TTL: 500}},
	}
}

// rowText returns the runes of one buffer row
func rowText(buf *Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

// findBelow returns the first cell at or below row holding r, or -1, -1
func findBelow(buf *Buffer, row int, r rune) (int, int) {
	w, h := buf.Size()
	for y := row; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf.Get(x, y).Rune == r {
				return x, y
			}
		}
	}
	return -1, -1
}

func TestContextMapsArenaToViewport(t *testing.T) {
	ctx := NewContext(frame(), nil, 82, 24)
	require.Equal(t, 80, ctx.ArenaW)
	require.Equal(t, 20, ctx.ArenaH)

	x, y, ok := ctx.ToCell(0, 0)
	require.True(t, ok)
	assert.Equal(t, ctx.ArenaX, x)
	assert.Equal(t, ctx.ArenaY, y)

	x, y, ok = ctx.ToCell(799.9, 399.9)
	require.True(t, ok)
	assert.Equal(t, ctx.ArenaX+ctx.ArenaW-1, x)
	assert.Equal(t, ctx.ArenaY+ctx.ArenaH-1, y)

	_, _, ok = ctx.ToCell(-1, 10)
	assert.False(t, ok, "points outside the arena are not drawn")
	_, _, ok = ctx.ToCell(800, 10)
	assert.False(t, ok)
}

func TestDrawPlacesAgentsAndHUD(t *testing.T) {
	screen := newScreen(t, 82, 24)
	v := NewView(screen)
	f := frame()
	v.Draw(f, status.NewRegistry(), false, false)
	buf := v.Buffer()

	ctx := NewContext(f, nil, 82, 24)
	px, py, _ := ctx.ToCell(400, 200)
	assert.Equal(t, visual.GlyphPlayer, buf.Get(px, py).Rune)

	ex, ey, _ := ctx.ToCell(100, 100)
	assert.Equal(t, visual.EnemyGlyphs[parameter.EnemyTank], buf.Get(ex, ey).Rune)

	lx, ly, _ := ctx.ToCell(700, 300)
	assert.Equal(t, visual.PowerUpGlyphs[parameter.PowerUpHealth], buf.Get(lx, ly).Rune)

	ox, oy, _ := ctx.ToCell(600, 100)
	assert.Equal(t, visual.GlyphObstacle, buf.Get(ox, oy).Rune)

	hud := rowText(buf, 0)
	assert.Contains(t, hud, "L2")
	assert.Contains(t, hud, "kills 3/25")
	assert.Contains(t, hud, "score 120")
	assert.Contains(t, rowText(buf, 1), "horde in 10s")

	assert.Equal(t, '┌', buf.Get(0, HUDRows).Rune)

	mainc, _, _, _ := screen.GetContent(px, py)
	assert.Equal(t, visual.GlyphPlayer, mainc, "frame flushed to the screen")
}

func TestBossShowsHealthBarInsteadOfHordeTimer(t *testing.T) {
	v := NewView(newScreen(t, 82, 24))
	f := frame()
	f.Agents = append(f.Agents, game.AgentView{
		Kind: uint8(component.KindBoss), Tag: uint8(parameter.BossWarden),
		X: 400, Y: 100, Radius: 40, Health: 150, MaxHealth: 300, Shielded: true,
	})
	v.Draw(f, nil, false, false)

	row := rowText(v.Buffer(), 1)
	assert.Contains(t, row, parameter.BossProfiles[parameter.BossWarden].Name)
	assert.NotContains(t, row, "horde in")

	x, y := findBelow(v.Buffer(), HUDRows+1, visual.BossGlyphs[parameter.BossWarden])
	assert.Equal(t, 41, x)
	assert.Equal(t, 8, y)
}

func TestGameOverAndPauseOverlays(t *testing.T) {
	v := NewView(newScreen(t, 82, 24))
	f := frame()

	v.Draw(f, nil, true, true)
	assert.Contains(t, rowText(v.Buffer(), 1), "PAUSED")
	assert.Contains(t, rowText(v.Buffer(), 1), "MUTED")

	f.Over = true
	v.Draw(f, nil, false, false)
	var found bool
	_, h := v.Buffer().Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(v.Buffer(), y), "GAME OVER") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEffectsAgeOut(t *testing.T) {
	l := NewEffectLayer()
	l.Observe([]event.GameEvent{
		{Type: event.EventExplosionRequest, Payload: &event.ExplosionPayload{Pos: vmath.V(100, 100), Radius: 30}},
		{Type: event.EventLevelUp, Payload: &event.LevelPayload{Level: 3}},
	})
	require.Equal(t, 1, l.Active())
	assert.Equal(t, "LEVEL 3", l.banner.text)

	for i := 0; i < visual.ExplosionFrames; i++ {
		l.Observe(nil)
	}
	assert.Zero(t, l.Active())
}

func TestResizeFollowsScreen(t *testing.T) {
	screen := newScreen(t, 40, 12)
	v := NewView(screen)
	screen.SetSize(60, 20)
	v.Draw(frame(), nil, false, false)
	w, h := v.Buffer().Size()
	assert.Equal(t, 60, w)
	assert.Equal(t, 20, h)
}

func TestStatsPanelToggles(t *testing.T) {
	screen := newScreen(t, 82, 24)
	v := NewView(screen)
	reg := status.NewRegistry()
	reg.Ints.Get(status.MetricKills).Store(7)

	panel := func() string {
		var sb strings.Builder
		for y := HUDRows + 1; y < 8; y++ {
			sb.WriteString(rowText(v.Buffer(), y))
			sb.WriteByte('\n')
		}
		return sb.String()
	}

	v.Draw(frame(), reg, false, false)
	assert.NotContains(t, panel(), status.MetricKills)

	require.True(t, v.ToggleStats())
	v.Draw(frame(), reg, false, false)
	assert.Regexp(t, `combat\.kills +7`, panel())

	require.False(t, v.ToggleStats())
}
