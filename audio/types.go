// Package audio produces short synthesized feedback cues
package audio

// Sound identifies a feedback cue
type Sound int

const (
	SoundImpossible Sound = iota // action refused, no turn spent
	SoundInvalid                 // menu key with nothing behind it
	SoundDeath                   // player died
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundImpossible:
		return "impossible"
	case SoundInvalid:
		return "invalid"
	case SoundDeath:
		return "death"
	}
	return "unknown"
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Sound) {}
