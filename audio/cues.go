package audio

import (
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/vmath"
)

// maxVoices bounds concurrently mixed cues; extra cues are dropped
const maxVoices = 16

// Cues turns per-frame notifications into mixed sound
// Without Start the mixer is still fed, so a caller may pull it directly
type Cues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	rng    *vmath.FastRand

	enabled bool
	started atomic.Bool
	muted   atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewCues creates a cue player; a disabled player accepts and ignores everything
func NewCues(enabled bool, volume float64) *Cues {
	c := &Cues{
		mixer:   &beep.Mixer{},
		rng:     vmath.NewFastRand(0x5eed),
		enabled: enabled,
	}
	c.volume = &effects.Volume{Streamer: c.mixer, Base: 2}
	c.SetVolume(volume)
	return c
}

// Name identifies the cue player as a service
func (c *Cues) Name() string {
	return "audio"
}

// Optional reports that a missing output device does not stop the game
func (c *Cues) Optional() bool {
	return true
}

// Start opens the output device and begins playback
// On failure the player disables itself and keeps accepting cues as no-ops
func (c *Cues) Start() error {
	if !c.enabled {
		return nil
	}
	if c.started.Load() {
		return errors.New("audio already started")
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		c.enabled = false
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(c.volume)
	c.started.Store(true)
	log.Printf("audio: started at %d Hz", SampleRate)
	return nil
}

// Stop halts playback and releases the device
func (c *Cues) Stop() error {
	if !c.started.CompareAndSwap(true, false) {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	c.mu.Lock()
	c.mixer.Clear()
	c.mu.Unlock()
	return nil
}

// Play queues one cue; false when muted, disabled or saturated
func (c *Cues) Play(cue Cue) bool {
	if !c.enabled || c.muted.Load() {
		return false
	}

	defer c.lock()()

	if c.mixer.Len() >= maxVoices {
		c.dropped.Add(1)
		return false
	}
	s := Synthesize(cue, c.rng)
	if s == nil {
		return false
	}
	c.mixer.Add(s)
	c.played.Add(1)
	return true
}

// Handle plays the cues for one frame of notifications, each cue at most once
// Returns the number of cues queued
func (c *Cues) Handle(events []event.GameEvent) int {
	var seen [cueCount]bool
	n := 0
	for _, ev := range events {
		cue, ok := CueFor(ev)
		if !ok || seen[cue] {
			continue
		}
		seen[cue] = true
		if c.Play(cue) {
			n++
		}
	}
	return n
}

// ToggleMute flips mute and reports whether sound is now audible
func (c *Cues) ToggleMute() bool {
	muted := !c.muted.Load()
	c.muted.Store(muted)
	return !muted
}

func (c *Cues) Muted() bool {
	return c.muted.Load()
}

// SetVolume sets the master gain in [0, 1]
func (c *Cues) SetVolume(v float64) {
	v = vmath.Clamp(v, 0, 1)
	defer c.lock()()
	if v == 0 {
		c.volume.Silent = true
		return
	}
	c.volume.Silent = false
	c.volume.Volume = math.Log2(v)
}

// Stats returns played and dropped cue counts
func (c *Cues) Stats() (played, dropped uint64) {
	return c.played.Load(), c.dropped.Load()
}

// Output exposes the master stream for offline rendering
func (c *Cues) Output() beep.Streamer {
	return c.volume
}

// lock guards the mixer, deferring to the speaker lock while the device pulls from it
func (c *Cues) lock() (unlock func()) {
	c.mu.Lock()
	if c.started.Load() {
		speaker.Lock()
		return func() {
			speaker.Unlock()
			c.mu.Unlock()
		}
	}
	return c.mu.Unlock
}
