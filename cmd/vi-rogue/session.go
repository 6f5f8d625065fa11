package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/mode"
	"github.com/lixenwraith/vi-rogue/msglog"
	"github.com/lixenwraith/vi-rogue/world"
)

const welcomeText = "Hello and welcome, adventurer, to yet another dungeon!"

// screen is the terminal as seen by the game loop
type screen interface {
	PollEvent() input.Event
	Draw(con *console.Console)
}

// newSession generates the dungeon and wires it into an engine running MainGame
func newSession(cfg *config.Config, keys *input.KeyTable, seed uint64, sounds engine.Sounds, log *logrus.Logger) (*engine.Engine, *world.Game) {
	opts := world.Options{
		Width:              cfg.Map.Width,
		Height:             cfg.Map.Height,
		MaxRooms:           cfg.Map.MaxRooms,
		RoomMinSize:        cfg.Map.RoomMinSize,
		RoomMaxSize:        cfg.Map.RoomMaxSize,
		MaxMonstersPerRoom: cfg.Map.MaxMonstersPerRoom,
		MaxItemsPerRoom:    cfg.Map.MaxItemsPerRoom,
		InventoryCapacity:  cfg.Map.InventoryCapacity,
	}

	msgs := msglog.New()
	game := world.NewGame(opts, seed, msgs, log)
	layout := engine.LayoutFor(cfg.Map.Height)

	eng := engine.New(engine.Config{
		World:   game,
		Enemies: game,
		Actions: game,
		Log:     msgs,
		Keys:    keys,
		Sounds:  sounds,
		Logger:  log,
		Layout:  &layout,
	}, mode.NewMainGame())

	game.OnPlayerDeath = func() {
		eng.Cue(audio.SoundDeath)
		eng.SetHandler(mode.NewGameOver())
	}

	msgs.Add(welcomeText, msglog.Welcome)
	return eng, game
}

// loop renders, waits for one event and handles it until a handler ends the game
func loop(eng *engine.Engine, scr screen, con *console.Console) error {
	for {
		con.Clear()
		eng.Render(con)
		scr.Draw(con)

		if err := eng.HandleEvent(scr.PollEvent()); err != nil {
			return err
		}
	}
}
