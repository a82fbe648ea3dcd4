package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/event"
	"github.com/lixenwraith/horde/vmath"
)

// drainAll pulls a streamer to exhaustion and returns the sample count and peak amplitude
func drainAll(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

// peakOf pulls n samples from a streamer and returns the peak amplitude
func peakOf(s beep.Streamer, n int) float64 {
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	peak := 0.0
	for j := 0; j < got; j++ {
		peak = math.Max(peak, math.Abs(buf[j][0]))
	}
	return peak
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, SampleRate, vmath.NewFastRand(3))
		n, peak := drainAll(t, osc)
		if n != SampleRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, want %d", wave, n, SampleRate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f exceeds unity", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestEnvelopeRampsAndTruncates(t *testing.T) {
	src := NewOscillator(0, time.Second, WaveSquare, SampleRate, nil) // constant +1
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts silent")
	assert.InDelta(t, 1.0, buf[n/2][0], 1e-9, "sustain at unity")
	assert.Less(t, buf[n-1][0], 0.01, "release ends near silence")

	n, ok := env.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok, "envelope ends at its duration even when the source continues")
}

func TestEverySynthesizedCueFinishes(t *testing.T) {
	rng := vmath.NewFastRand(9)
	for c := Cue(0); c < cueCount; c++ {
		s := Synthesize(c, rng)
		require.NotNil(t, s, c.String())
		n, _ := drainAll(t, s)
		assert.Positive(t, n, c.String())
		assert.Less(t, n, SampleRate.N(2*time.Second), c.String())
	}
	assert.Nil(t, Synthesize(cueCount, rng))
}

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
		ok   bool
	}{
		{"shot", event.GameEvent{Type: event.EventShotFired}, CueShot, true},
		{"kill", event.GameEvent{Type: event.EventEnemyKilled}, CueKill, true},
		{"absorbed hit", event.GameEvent{Type: event.EventPlayerHit, Payload: &event.PlayerHitPayload{Absorbed: true}}, CueShieldHit, true},
		{"plain hit", event.GameEvent{Type: event.EventPlayerHit, Payload: &event.PlayerHitPayload{Damage: 10}}, CueHit, true},
		{"boss explosion", event.GameEvent{Type: event.EventExplosionRequest, Payload: &event.ExplosionPayload{Boss: true}}, CueExplosion, true},
		{"enemy explosion", event.GameEvent{Type: event.EventExplosionRequest, Payload: &event.ExplosionPayload{}}, 0, false},
		{"restart", event.GameEvent{Type: event.EventRunRestart}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHandlePlaysEachCueOncePerFrame(t *testing.T) {
	c := NewCues(true, 0.5)
	frame := []event.GameEvent{
		{Type: event.EventShotFired},
		{Type: event.EventShotFired},
		{Type: event.EventEnemyKilled},
		{Type: event.EventRunRestart},
	}
	assert.Equal(t, 2, c.Handle(frame))
	played, dropped := c.Stats()
	assert.Equal(t, uint64(2), played)
	assert.Zero(t, dropped)

	assert.Positive(t, peakOf(c.Output(), 4096))
}

func TestMutedAndDisabledAreSilent(t *testing.T) {
	off := NewCues(false, 1)
	require.NoError(t, off.Start(), "a disabled player never opens the device")
	assert.False(t, off.Play(CueShot))
	assert.NoError(t, off.Stop())

	c := NewCues(true, 1)
	assert.False(t, c.ToggleMute())
	assert.True(t, c.Muted())
	assert.False(t, c.Play(CueShot))
	assert.True(t, c.ToggleMute())
	assert.True(t, c.Play(CueShot))
}

func TestVoiceCapDropsExtraCues(t *testing.T) {
	c := NewCues(true, 1)
	for i := 0; i < maxVoices; i++ {
		require.True(t, c.Play(CueExplosion))
	}
	assert.False(t, c.Play(CueExplosion))
	_, dropped := c.Stats()
	assert.Equal(t, uint64(1), dropped)
}

func TestZeroVolumeSilencesOutput(t *testing.T) {
	c := NewCues(true, 0)
	require.True(t, c.Play(CueLevelUp))
	assert.Zero(t, peakOf(c.Output(), 4096))
}
