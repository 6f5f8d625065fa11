package main

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/mode"
	"github.com/lixenwraith/vi-rogue/msglog"
)

// scriptedScreen replays events and counts frames
type scriptedScreen struct {
	events []input.Event
	frames int
}

func (s *scriptedScreen) PollEvent() input.Event {
	if len(s.events) == 0 {
		return input.Quit{}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptedScreen) Draw(*console.Console) {
	s.frames++
}

type recordingSounds struct {
	played []audio.Sound
}

func (r *recordingSounds) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func TestNewSession(t *testing.T) {
	cfg := config.Default()
	eng, game := newSession(cfg, input.DefaultKeyTable(), 7, nil, nil)

	if _, ok := eng.Handler().(*mode.MainGame); !ok {
		t.Errorf("Expected MainGame, got %T", eng.Handler())
	}
	entries := eng.Log.Entries()
	if len(entries) != 1 || entries[0].Text != welcomeText || entries[0].Category != msglog.Welcome {
		t.Errorf("Expected welcome message, got %+v", entries)
	}
	if game.Log != eng.Log {
		t.Error("World and engine must share the message log")
	}
}

func TestSession_DeathEntersGameOver(t *testing.T) {
	sounds := &recordingSounds{}
	eng, game := newSession(config.Default(), input.DefaultKeyTable(), 7, sounds, nil)

	game.OnPlayerDeath()

	if _, ok := eng.Handler().(*mode.GameOver); !ok {
		t.Errorf("Expected GameOver, got %T", eng.Handler())
	}
	if len(sounds.played) != 1 || sounds.played[0] != audio.SoundDeath {
		t.Errorf("Expected death cue, got %v", sounds.played)
	}
}

func TestLoop(t *testing.T) {
	eng, _ := newSession(config.Default(), input.DefaultKeyTable(), 7, nil, nil)
	scr := &scriptedScreen{events: []input.Event{
		input.KeyPress{Key: input.KeyV},
		input.KeyPress{Key: input.KeyUp},
		input.KeyPress{Key: input.KeyQ},
		input.KeyPress{Key: input.KeyEscape},
	}}

	err := loop(eng, scr, console.New(80, 50))
	if !errors.Is(err, engine.ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if scr.frames != 4 {
		t.Errorf("Expected a frame before each event, got %d", scr.frames)
	}
	if _, ok := eng.Handler().(*mode.MainGame); !ok {
		t.Errorf("Expected MainGame after leaving history, got %T", eng.Handler())
	}
}
