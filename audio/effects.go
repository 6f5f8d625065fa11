package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	impossibleDuration = 140 * time.Millisecond
	impossibleAttack   = 5 * time.Millisecond
	impossibleRelease  = 60 * time.Millisecond

	invalidDuration = 60 * time.Millisecond
	invalidAttack   = 2 * time.Millisecond
	invalidRelease  = 30 * time.Millisecond

	deathNoteDuration = 250 * time.Millisecond
	deathAttack       = 10 * time.Millisecond
	deathRelease      = 150 * time.Millisecond
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

var (
	Sine   Wave = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	Square Wave = func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}
	Saw Wave = func(p float64) float64 { return 2*p - 1 }
)

// Tone plays wave at freq for d, then ends
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	step := freq / float64(rate)
	phase := 0.0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := wave(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		return len(samples), true
	})
	return beep.Take(rate.N(d), gen)
}

// Shape cuts s to d and applies a linear fade-in over attack and fade-out over release
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, in, out := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0
	level := func() float64 {
		switch {
		case in > 0 && pos < in:
			return float64(pos) / float64(in)
		case out > 0 && pos >= total-out:
			return max(float64(total-pos)/float64(out), 0)
		}
		return 1
	}
	faded := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := level()
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
	return beep.Take(total, faded)
}

// gain scales a stream linearly; zero maps to silence since Log2(0) is -Inf
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// createImpossibleSound is a low saw buzz
func createImpossibleSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := Tone(110.0, impossibleDuration, Saw, rate)
	shaped := Shape(osc, impossibleDuration, impossibleAttack, impossibleRelease, rate)
	return gain(shaped, vol)
}

// createInvalidSound is a short high blip
func createInvalidSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := Tone(660.0, invalidDuration, Square, rate)
	shaped := Shape(osc, invalidDuration, invalidAttack, invalidRelease, rate)
	return gain(shaped, vol*0.5)
}

// createDeathSound is three falling sine notes
func createDeathSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, 3)
	for _, freq := range []float64{392.0, 311.13, 196.0} {
		osc := Tone(freq, deathNoteDuration, Sine, rate)
		notes = append(notes, Shape(osc, deathNoteDuration, deathAttack, deathRelease, rate))
	}
	return gain(beep.Seq(notes...), vol)
}

// NewSound returns a fresh streamer for s, or nil for unknown sounds
func NewSound(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundImpossible:
		return createImpossibleSound(rate, vol)
	case SoundInvalid:
		return createInvalidSound(rate, vol)
	case SoundDeath:
		return createDeathSound(rate, vol)
	}
	return nil
}
