package terminal

import (
	"codeberg.org/anaseto/gruid"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/input"
)

// specialKeys maps tcell keys with no rune
var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyClear:      input.KeyClear,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
}

// Terminals report keypad digits as plain digits, so digits drive the keypad bindings
var digitKeys = map[rune]input.Key{
	'1': input.KeyKP1, '2': input.KeyKP2, '3': input.KeyKP3,
	'4': input.KeyKP4, '5': input.KeyKP5, '6': input.KeyKP6,
	'7': input.KeyKP7, '8': input.KeyKP8, '9': input.KeyKP9,
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// translate converts one tcell event; ok is false for events the game ignores
func (s *Screen) translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		btn := ev.Buttons() & clickButtons
		pressed := btn &^ s.buttons
		s.buttons = btn
		if pressed != 0 {
			return input.MouseButtonDown{X: x, Y: y, Button: mouseButton(pressed)}, true
		}
		return input.MouseMotion{X: x, Y: y}, true
	}
	return nil, false
}

func translateKey(ev *tcell.EventKey) (input.Event, bool) {
	mod := translateMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if k, ok := digitKeys[r]; ok {
			return input.KeyPress{Key: k, Mod: mod}, true
		}
		return input.KeyPress{Key: input.Key(r), Mod: mod}, true
	}

	if ev.Key() == tcell.KeyCtrlC {
		return input.Quit{}, true
	}

	if k, ok := specialKeys[ev.Key()]; ok {
		return input.KeyPress{Key: k, Mod: mod}, true
	}
	return nil, false
}

func translateMod(m tcell.ModMask) input.Mod {
	var mod input.Mod
	if m&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	return mod
}

func mouseButton(b tcell.ButtonMask) input.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return input.ButtonLeft
	case b&tcell.Button3 != 0:
		return input.ButtonMiddle
	default:
		return input.ButtonRight
	}
}

// color converts a console colour to a tcell colour
func color(c gruid.Color) tcell.Color {
	hex := console.Hex(c)
	if hex < 0 {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(hex)
}
