package mode

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-rogue/action"
	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/msglog"
)

// Menu selection failures
var (
	ErrOutsideAlphabet = errors.New("key is not a menu letter")
	ErrNoSuchItem      = errors.New("no item in that slot")
)

const (
	titleActivate = "Select an item to use"
	titleDrop     = "Select an item to drop"

	// alphabetSlots is the highest letter offset treated as a menu slot
	alphabetSlots = 26

	// menuFlipX is the player column up to which the menu is drawn on the right half
	menuFlipX  = 30
	menuRightX = 40
)

// SelectIndex maps a menu key to an item index for a menu of count items
func SelectIndex(k input.Key, count int) (int, error) {
	if !k.IsRune() {
		return 0, ErrOutsideAlphabet
	}
	idx := int(k - input.KeyA)
	if idx < 0 || idx > alphabetSlots {
		return 0, ErrOutsideAlphabet
	}
	if idx >= count {
		return idx, ErrNoSuchItem
	}
	return idx, nil
}

// InventorySelect is a lettered menu over the player's inventory
type InventorySelect struct {
	name  string
	title string
	// onItemSelected builds the action for the chosen item
	onItemSelected func(e *engine.Engine, item engine.Item) action.Action
}

// NewInventoryActivate opens the menu that uses an item
func NewInventoryActivate() *AskUser {
	return &AskUser{Prompt: &InventorySelect{
		name:  "inventory_activate",
		title: titleActivate,
		onItemSelected: func(e *engine.Engine, item engine.Item) action.Action {
			return item.UseAction(e.Player())
		},
	}}
}

// NewInventoryDrop opens the menu that drops an item
func NewInventoryDrop() *AskUser {
	return &AskUser{Prompt: &InventorySelect{
		name:  "inventory_drop",
		title: titleDrop,
		onItemSelected: func(e *engine.Engine, item engine.Item) action.Action {
			return e.Actions.Drop(item)
		},
	}}
}

func (p *InventorySelect) String() string { return p.name }

// Title is the frame title
func (p *InventorySelect) Title() string { return p.title }

// Key selects the item under a letter
// An empty letter slot logs "Invalid entry." and keeps the menu open
func (p *InventorySelect) Key(e *engine.Engine, kd input.KeyPress) (action.Action, bool) {
	items := e.Player().Inventory()
	idx, err := SelectIndex(kd.Key, len(items))
	switch {
	case errors.Is(err, ErrOutsideAlphabet):
		return nil, false
	case errors.Is(err, ErrNoSuchItem):
		e.Log.Add("Invalid entry.", msglog.Invalid)
		e.Cue(audio.SoundInvalid)
		return nil, true
	}
	return p.onItemSelected(e, items[idx]), true
}

// Render draws the menu on the screen half away from the player
func (p *InventorySelect) Render(e *engine.Engine, con *console.Console) {
	items := e.Player().Inventory()

	height := max(len(items)+2, 3)
	x, y := 0, 0
	if px, _ := e.Player().Pos(); px <= menuFlipX {
		x = menuRightX
	}
	width := runewidth.StringWidth(p.title) + 4

	con.DrawFrame(x, y, width, height, p.title, console.White, console.Black)

	if len(items) == 0 {
		con.Print(x+1, y+1, "(Empty)", console.White, console.Black)
		return
	}
	for i, item := range items {
		line := fmt.Sprintf("(%c) %s", 'a'+rune(i), item.Name())
		con.Print(x+1, y+i+1, line, console.White, console.Black)
	}
}
