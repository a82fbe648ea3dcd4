package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/audio"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/input"
	"github.com/lixenwraith/horde/network"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/render"
	"github.com/lixenwraith/horde/status"
	"github.com/lixenwraith/horde/vmath"
)

// volumeStep is the change per volume key press
const volumeStep = 0.1

// session wires one interactive run: the scheduler ticks the game on its own goroutine
// while the main loop reads keys and draws frames
type session struct {
	game   *game.Game
	reg    *status.Registry
	sched  *game.Scheduler
	view   *render.View
	input  *input.Machine
	cues   *audio.Cues
	server *network.Server // nil when spectating is off

	// tick notifications handed from the scheduler goroutine to the renderer
	frames chan []event.GameEvent

	volume float64
	seed   func() uint64
}

func newSession(g *game.Game, reg *status.Registry, screen tcell.Screen, cues *audio.Cues, server *network.Server, volume float64, seed func() uint64) *session {
	s := &session{
		game:   g,
		reg:    reg,
		view:   render.NewView(screen),
		input:  input.NewMachine(nil),
		cues:   cues,
		server: server,
		frames: make(chan []event.GameEvent, 64),
		volume: volume,
		seed:   seed,
	}
	s.sched = game.NewScheduler(g, parameter.TickInterval, s.onFrame)
	return s
}

// onFrame runs on the scheduler goroutine once per tick
func (s *session) onFrame(evs []event.GameEvent) {
	s.cues.Handle(evs)
	if s.server != nil {
		s.server.Publish(evs)
	}
	select {
	case s.frames <- evs:
	default:
		// renderer behind; effects for this tick are dropped
	}
}

// apply handles one decoded intent; false ends the session
func (s *session) apply(in input.Intent) bool {
	paused := s.sched.Paused()
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		s.sched.SetPaused(!paused)
		s.input.Release()
		s.game.SetMoveIntent(vmath.Vec2{})
	case input.IntentToggleMute:
		s.cues.ToggleMute()
	case input.IntentRestart:
		if s.game.Over() {
			s.input.Release()
			s.game.Restart(s.seed())
		}
	case input.IntentResize:
		s.view.Resize()
	case input.IntentVolumeUp, input.IntentVolumeDown:
		step := volumeStep
		if in.Type == input.IntentVolumeDown {
			step = -step
		}
		s.volume = vmath.Clamp(s.volume+step, 0, 1)
		s.cues.SetVolume(s.volume)
	case input.IntentToggleDebug:
		s.view.ToggleStats()
	case input.IntentFire:
		if !paused {
			s.game.Fire(s.input.LastAim())
		}
	case input.IntentSpawnWall:
		if !paused {
			s.game.SpawnWall(s.input.LastAim())
		}
	}
	return true
}

// frame pushes held keys into the game, consumes pending notifications and draws
func (s *session) frame() {
	s.input.Tick()
	paused := s.sched.Paused()
	if !paused {
		s.game.SetMoveIntent(s.input.Move())
		if aim, ok := s.input.Aim(); ok {
			s.game.Fire(aim)
		}
	}

drain:
	for {
		select {
		case evs := <-s.frames:
			s.view.Observe(evs)
		default:
			break drain
		}
	}

	snap := s.game.Snapshot()
	s.view.Draw(&snap, s.reg, paused, s.cues.Muted())
}

// run blocks until quit
func (s *session) run(screen tcell.Screen) {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	s.sched.Start()
	defer s.sched.Stop()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	s.frame()
	for {
		select {
		case ev := <-events:
			if in, ok := s.input.HandleEvent(ev); ok && !s.apply(in) {
				return
			}
		case <-ticker.C:
			s.frame()
		}
	}
}
