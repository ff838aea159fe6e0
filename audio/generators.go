package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const (
	jumpSoundDuration  = 90 * time.Millisecond
	crashSoundDuration = 260 * time.Millisecond
	chirpNoteDuration  = 70 * time.Millisecond
)

// oscillator generates a raw wave, optionally gliding between two
// frequencies over its lifetime
type oscillator struct {
	freqFrom float64
	freqTo   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, freq, duration, wave, rate)
}

// NewSweepOscillator creates a generator gliding linearly from one
// frequency to another across the duration
func NewSweepOscillator(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqFrom: from,
		freqTo:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freqFrom + (o.freqTo-o.freqFrom)*t
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at the given linear volume
// math.Log2(0) is -Inf, so zero volume switches to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateJumpSound generates a rising square blip for takeoff
func CreateJumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweepOscillator(220, 660, jumpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpSoundDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.5)
}

// CreateCrashSound generates a noisy thud for obstacle contact
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, crashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, crashSoundDuration, 2*time.Millisecond, 220*time.Millisecond, rate)

	rumble := NewSweepOscillator(140, 50, crashSoundDuration, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, crashSoundDuration, 2*time.Millisecond, 200*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(rumbleShaped, 0.6),
	)
	return newVolume(mixed, 0.8)
}

// CreateChirpSound generates a two-note chime for score milestones
func CreateChirpSound(rate beep.SampleRate) beep.Streamer {
	// A5 then E6
	n1 := NewOscillator(880.0, chirpNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, chirpNoteDuration, 2*time.Millisecond, 30*time.Millisecond, rate)

	n2 := NewOscillator(1318.51, chirpNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, chirpNoteDuration, 2*time.Millisecond, 40*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4)
}
