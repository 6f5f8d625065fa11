package mode

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/engine/enginetest"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/msglog"
)

func TestSelectIndex(t *testing.T) {
	for i := 0; i < 26; i++ {
		k := input.KeyA + input.Key(i)
		idx, err := SelectIndex(k, 26)
		if err != nil || idx != i {
			t.Errorf("%s: expected %d, got %d (%v)", k, i, idx, err)
		}
	}

	if _, err := SelectIndex(input.KeyC, 2); !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("Expected ErrNoSuchItem, got %v", err)
	}
	if _, err := SelectIndex(input.KeyA, 0); !errors.Is(err, ErrNoSuchItem) {
		t.Errorf("Expected ErrNoSuchItem on empty inventory, got %v", err)
	}

	outside := []input.Key{input.Key('A'), input.Key('0'), input.KeySpace, input.KeyEscape, input.KeyUp, input.KeyLShift, input.KeyA + 27}
	for _, k := range outside {
		if _, err := SelectIndex(k, 26); !errors.Is(err, ErrOutsideAlphabet) {
			t.Errorf("%s: expected ErrOutsideAlphabet, got %v", k, err)
		}
	}
}

func newInventoryEngine(h engine.Handler, items ...string) (*engine.Engine, *enginetest.World, *enginetest.Sounds) {
	e, w, s := enginetest.New(NewMainGame())
	w.AddItems(items...)
	e.SetHandler(h)
	return e, w, s
}

func TestInventory_InvalidEntryKeepsMenu(t *testing.T) {
	for _, mk := range []func() *AskUser{NewInventoryActivate, NewInventoryDrop} {
		h := mk()
		e, w, s := newInventoryEngine(h, "Health Potion", "Dagger")

		if err := e.HandleEvent(key(input.KeyC)); err != nil {
			t.Fatal(err)
		}
		if e.Handler() != h {
			t.Errorf("%s: expected menu to stay active, got %T", h, e.Handler())
		}
		entries := e.Log.Entries()
		if len(entries) != 1 || entries[0].Text != "Invalid entry." || entries[0].Category != msglog.Invalid {
			t.Errorf("%s: expected invalid entry message, got %+v", h, entries)
		}
		if len(s.Played) != 1 || s.Played[0] != audio.SoundInvalid {
			t.Errorf("%s: expected invalid cue, got %v", h, s.Played)
		}
		if len(w.Calls) != 0 {
			t.Errorf("%s: expected no actions, got %v", h, w.Calls)
		}
	}
}

func TestInventoryActivate_UsesItem(t *testing.T) {
	e, w, _ := newInventoryEngine(NewInventoryActivate(), "Health Potion", "Dagger")

	if err := e.HandleEvent(key(input.KeyB)); err != nil {
		t.Fatal(err)
	}
	if w.Count("perform use Dagger") != 1 {
		t.Errorf("Expected Dagger used, got %v", w.Calls)
	}
	if _, ok := e.Handler().(*MainGame); !ok {
		t.Errorf("Expected MainGame after a turn, got %T", e.Handler())
	}
}

func TestInventoryDrop_DropsItem(t *testing.T) {
	e, w, _ := newInventoryEngine(NewInventoryDrop(), "Health Potion")

	if err := e.HandleEvent(key(input.KeyA)); err != nil {
		t.Fatal(err)
	}
	if w.Count("drop Health Potion") != 1 || w.Count("perform drop Health Potion") != 1 {
		t.Errorf("Expected potion dropped, got %v", w.Calls)
	}
	if _, ok := e.Handler().(*MainGame); !ok {
		t.Errorf("Expected MainGame after a turn, got %T", e.Handler())
	}
}

// scriptedPrompt returns a fixed action for every key
type scriptedPrompt struct {
	act action.Action
}

func (p *scriptedPrompt) Key(*engine.Engine, input.KeyPress) (action.Action, bool) {
	return p.act, true
}

func (p *scriptedPrompt) Render(*engine.Engine, *console.Console) {}

func TestAskUser_ImpossibleStaysOpen(t *testing.T) {
	h := &AskUser{Prompt: &scriptedPrompt{act: action.Func(func() error {
		return action.Impossiblef("You are already at full health.")
	})}}
	e, w, _ := newInventoryEngine(h)

	if err := e.HandleEvent(key(input.KeyA)); err != nil {
		t.Fatal(err)
	}
	if e.Handler() != h {
		t.Errorf("Expected prompt to stay active after an impossible action, got %T", e.Handler())
	}
	if w.Count("enemies") != 0 {
		t.Errorf("Expected no turn, got %v", w.Calls)
	}
}

func TestAskUser_DeathKeepsGameOver(t *testing.T) {
	var e *engine.Engine
	h := &AskUser{Prompt: &scriptedPrompt{act: action.Func(func() error {
		e.SetHandler(NewGameOver())
		return nil
	})}}
	e, _, _ = newInventoryEngine(h)

	if err := e.HandleEvent(key(input.KeyA)); err != nil {
		t.Fatal(err)
	}
	if _, ok := e.Handler().(*GameOver); !ok {
		t.Errorf("Expected GameOver to survive the modal exit, got %T", e.Handler())
	}
}

func TestAskUser_Exits(t *testing.T) {
	exits := []input.Event{
		key(input.KeyEscape),
		key(input.KeyUp),
		key(input.Key('A')),
		input.MouseButtonDown{X: 3, Y: 3, Button: input.ButtonRight},
	}
	for _, ev := range exits {
		for _, mk := range []func() *AskUser{NewInventoryActivate, NewInventoryDrop} {
			e, w, _ := newInventoryEngine(mk(), "Health Potion")
			if err := e.HandleEvent(ev); err != nil {
				t.Fatal(err)
			}
			if _, ok := e.Handler().(*MainGame); !ok {
				t.Errorf("%#v: expected MainGame, got %T", ev, e.Handler())
			}
			if len(w.Calls) != 0 {
				t.Errorf("%#v: expected no action, got %v", ev, w.Calls)
			}
		}
	}
}

func TestAskUser_ModifiersIgnored(t *testing.T) {
	mods := []input.Key{input.KeyLShift, input.KeyRShift, input.KeyLCtrl, input.KeyRCtrl, input.KeyLAlt, input.KeyRAlt}
	h := NewInventoryActivate()
	e, _, _ := newInventoryEngine(h, "Health Potion")
	for _, k := range mods {
		if err := e.HandleEvent(key(k)); err != nil {
			t.Fatal(err)
		}
		if e.Handler() != h {
			t.Fatalf("%s: expected menu to stay open, got %T", k, e.Handler())
		}
	}
}

type exitCounter struct {
	scriptedPrompt
	exits int
}

func (p *exitCounter) Key(*engine.Engine, input.KeyPress) (action.Action, bool) {
	return nil, false
}

func (p *exitCounter) OnExit(*engine.Engine) action.Action {
	p.exits++
	return nil
}

func TestAskUser_OnExitOverride(t *testing.T) {
	p := &exitCounter{}
	h := &AskUser{Prompt: p}
	e, _, _ := newInventoryEngine(h)

	if err := e.HandleEvent(key(input.KeyEscape)); err != nil {
		t.Fatal(err)
	}
	if p.exits != 1 {
		t.Errorf("Expected OnExit once, got %d", p.exits)
	}
	if e.Handler() != h {
		t.Errorf("Expected the override to keep the prompt, got %T", e.Handler())
	}
}

func rowText(con *console.Console, y, x0, x1 int) string {
	rs := make([]rune, 0, x1-x0)
	for x := x0; x < x1; x++ {
		rs = append(rs, con.At(x, y).Rune)
	}
	return string(rs)
}

func TestInventory_Render(t *testing.T) {
	e, w, _ := newInventoryEngine(NewInventoryActivate(), "Health Potion", "Dagger")
	con := console.New(80, 50)
	e.Render(con)

	// player at x=10 puts the menu on the right half
	if got := rowText(con, 1, 41, 58); got != "(a) Health Potion" {
		t.Errorf("Expected first item line, got %q", got)
	}
	if got := rowText(con, 2, 41, 51); got != "(b) Dagger" {
		t.Errorf("Expected second item line, got %q", got)
	}
	if got := con.At(40, 3).Rune; got != '└' {
		t.Errorf("Expected frame bottom at row 3, got %q", got)
	}

	w.Hero.X = 50
	w.Hero.Items = nil
	con = console.New(80, 50)
	e.Render(con)
	if got := rowText(con, 1, 1, 8); got != "(Empty)" {
		t.Errorf("Expected (Empty) on the left half, got %q", got)
	}
	if got := con.At(0, 2).Rune; got != '└' {
		t.Errorf("Expected minimum height frame, got %q", got)
	}
	if got := con.At(len("Select an item to use")+3, 0).Rune; got != '┐' {
		t.Errorf("Expected frame width title+4, got %q", got)
	}
}
