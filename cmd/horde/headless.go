package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ttacon/chalk"

	"github.com/lixenwraith/horde/component"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/vmath"
)

// kiteDistance is how close a threat gets before the autopilot backs away
const kiteDistance = 140.0

// summary describes a finished headless run
type summary struct {
	RunID   string
	Seed    uint64
	Ticks   int64
	Level   int
	Kills   int
	Bosses  int
	Hordes  int
	Score   int
	Over    bool
	Elapsed time.Duration
}

// autopilot fires at the nearest hostile and backs away from it when it closes in
func autopilot(g *game.Game) {
	poses := g.Poses()
	if len(poses) == 0 || poses[0].Kind != component.KindPlayer {
		return
	}
	me := poses[0].Pos

	var target vmath.Vec2
	best := -1.0
	for _, p := range poses[1:] {
		if p.Kind != component.KindEnemy && p.Kind != component.KindBoss {
			continue
		}
		if d := me.DistSq(p.Pos); best < 0 || d < best {
			best, target = d, p.Pos
		}
	}
	if best < 0 {
		g.SetMoveIntent(vmath.Vec2{})
		return
	}

	aim := target.Sub(me).Normalize()
	g.Fire(aim)
	if best < kiteDistance*kiteDistance {
		g.SetMoveIntent(aim.Scale(-1))
	} else {
		g.SetMoveIntent(vmath.Vec2{})
	}
}

// runHeadless advances g for up to ticks steps, stopping early at game over
func runHeadless(g *game.Game, ticks int, auto bool, onFrame game.FrameFunc) summary {
	start := time.Now()
	s := summary{RunID: g.RunID(), Seed: g.Seed()}

	sched := game.NewScheduler(g, parameter.TickInterval, func(evs []event.GameEvent) {
		for _, ev := range evs {
			switch ev.Type {
			case event.EventBossDefeated:
				s.Bosses++
			case event.EventHordeRequested:
				s.Hordes++
			}
		}
		if onFrame != nil {
			onFrame(evs)
		}
	})
	for i := 0; i < ticks; i++ {
		if auto {
			autopilot(g)
		}
		if !sched.Step() {
			break
		}
	}

	prog := g.Progression()
	s.Ticks = g.CurrentTick()
	s.Level = prog.Level
	s.Kills = prog.TotalKills
	s.Score = g.Score()
	s.Over = g.Over()
	s.Elapsed = time.Since(start)
	return s
}

func (s summary) print(w io.Writer) {
	outcome := chalk.Green.Color("survived")
	if s.Over {
		outcome = chalk.Red.Color("fell")
	}
	fmt.Fprintf(w, "%s %s (seed %d)\n", chalk.Bold.TextStyle("run"), s.RunID, s.Seed)
	fmt.Fprintf(w, "  %s after %d ticks in %v\n", outcome, s.Ticks, s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  level %s  kills %d  hordes %d  bosses %d\n",
		chalk.Cyan.Color(fmt.Sprint(s.Level)), s.Kills, s.Hordes, s.Bosses)
	fmt.Fprintf(w, "  score %s\n", chalk.Yellow.Color(fmt.Sprint(s.Score)))
}
