package game

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/event"
)

// FrameFunc receives the notifications raised by one tick, on the scheduler goroutine
type FrameFunc func(events []event.GameEvent)

// Scheduler drives a Game on a fixed tick with pause support
type Scheduler struct {
	game     *Game
	interval time.Duration
	onFrame  FrameFunc

	paused    atomic.Bool
	running   atomic.Bool
	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler; onFrame may be nil
func NewScheduler(g *Game, interval time.Duration, onFrame FrameFunc) *Scheduler {
	return &Scheduler{
		game:     g,
		interval: interval,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the loop and waits for the running tick to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

func (s *Scheduler) SetPaused(paused bool) {
	s.paused.Store(paused)
}

func (s *Scheduler) Paused() bool {
	return s.paused.Load()
}

// Ticks returns the number of ticks executed
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
		}

		if s.paused.Load() {
			continue
		}
		s.Step()
	}
}

// Step runs one tick synchronously and delivers its notifications
func (s *Scheduler) Step() bool {
	ok := s.game.Tick()
	if ok {
		s.tickCount.Add(1)
	}
	if s.onFrame != nil {
		s.onFrame(s.game.Notifications())
	}
	return ok
}
