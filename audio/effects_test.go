package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("Sample %d out of range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("Stream never ended")
	return total
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := map[string]Wave{"sine": Sine, "square": Square, "saw": Saw}
	for name, wave := range waves {
		tone := Tone(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, tone); got != rate.N(100*time.Millisecond) {
			t.Errorf("%s: expected %d samples, got %d", name, rate.N(100*time.Millisecond), got)
		}
		if tone.Err() != nil {
			t.Errorf("Unexpected error: %v", tone.Err())
		}
	}
}

func TestShape_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(1000)
	flat := Tone(0, time.Second, Square, rate) // constant +1
	env := Shape(flat, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full volume during sustain, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("Expected release near silence, got %f", buf[999][0])
	}
}

func TestNewSound(t *testing.T) {
	rate := beep.SampleRate(8000)
	for s := Sound(0); s < soundCount; s++ {
		st := NewSound(s, rate, 0.5)
		if st == nil {
			t.Errorf("Expected streamer for %s", s)
			continue
		}
		if drain(t, st) == 0 {
			t.Errorf("Expected %s to produce samples", s)
		}
	}
	if NewSound(soundCount, rate, 1) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestNewSound_DeathLongerThanBlip(t *testing.T) {
	rate := beep.SampleRate(8000)
	death := drain(t, NewSound(SoundDeath, rate, 1))
	blip := drain(t, NewSound(SoundInvalid, rate, 1))
	if death <= blip {
		t.Errorf("Expected death cue (%d) longer than invalid blip (%d)", death, blip)
	}
}

func TestSilent(t *testing.T) {
	var s Silent
	s.Play(SoundDeath)
}
