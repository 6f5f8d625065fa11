package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferTime = 100 * time.Millisecond
)

// Player mixes cues into the system speaker
// Play is called from the input loop; the speaker goroutine only reads the mixer under speaker.Lock
type Player struct {
	mixer  *beep.Mixer
	volume float64
}

// NewPlayer initializes the speaker and starts the mixer
// volume is linear in [0, 1]
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return nil, err
	}
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues a cue; unknown sounds are ignored
func (p *Player) Play(s Sound) {
	st := NewSound(s, sampleRate, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all cues and releases the audio device
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
