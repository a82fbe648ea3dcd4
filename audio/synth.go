package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/horde/vmath"
)

// SampleRate is the fixed output rate of every cue
const SampleRate = beep.SampleRate(44100)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a fixed-length tone or noise burst
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a streamer of the given wave lasting duration
// Noise draws from rng so cues are reproducible
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		rng:    rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Range(-1, 1)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s; output ends after duration regardless of s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			gain = math.Min(gain, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withGain scales a stream by a linear gain; zero or less is silent
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is a shaped single note
func tone(freq float64, d time.Duration, wave WaveType, rng *vmath.FastRand) beep.Streamer {
	osc := NewOscillator(freq, d, wave, SampleRate, rng)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
}

// sine is a shaped sine note from the beep generator
// Falls back to the local oscillator when the generator rejects the frequency
func sine(freq float64, d time.Duration) beep.Streamer {
	gen, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return tone(freq, d, WaveSine, nil)
	}
	return NewEnvelope(beep.Take(SampleRate.N(d), gen), d, 5*time.Millisecond, d/2, SampleRate)
}

// Synthesize builds the streamer for a cue at unity gain
func Synthesize(c Cue, rng *vmath.FastRand) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueShot:
		return withGain(tone(1200, 40*ms, WaveSquare, rng), 0.25)
	case CueWall:
		return tone(180, 120*ms, WaveSaw, rng)
	case CueKill:
		return beep.Seq(sine(660, 40*ms), sine(990, 60*ms))
	case CueExplosion:
		return tone(0, 400*ms, WaveNoise, rng)
	case CueHit:
		return tone(110, 150*ms, WaveSaw, rng)
	case CueShieldHit:
		return beep.Mix(withGain(sine(440, 150*ms), 0.7), withGain(sine(880, 150*ms), 0.3))
	case CuePowerUp:
		return beep.Seq(sine(880, 60*ms), sine(1320, 90*ms))
	case CueLevelUp:
		return beep.Seq(sine(523.25, 80*ms), sine(659.25, 80*ms), sine(783.99, 160*ms))
	case CueBossIncoming:
		return beep.Seq(tone(98, 250*ms, WaveSquare, rng), tone(92.5, 400*ms, WaveSquare, rng))
	case CueBossDefeated:
		return beep.Seq(sine(783.99, 100*ms), sine(1046.5, 100*ms), sine(1567.98, 250*ms))
	case CueHorde:
		return beep.Mix(tone(0, 300*ms, WaveNoise, rng), tone(70, 300*ms, WaveSaw, rng))
	case CueGameOver:
		return beep.Seq(sine(392, 200*ms), sine(329.63, 200*ms), sine(261.63, 500*ms))
	}
	return nil
}
