package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-rogue/audio"
	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/console"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
	"github.com/lixenwraith/vi-rogue/terminal"
)

var (
	configFlag = flag.String("config", "vi-rogue.toml", "Path to the TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Dungeon seed, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to the log directory")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-ROGUE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	err := run()
	if err == nil || errors.Is(err, engine.ErrQuit) {
		return
	}
	fmt.Fprintf(os.Stderr, "vi-rogue: %+v\n", err)
	os.Exit(1)
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}

	log, logFile, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	var sounds engine.Sounds = audio.Silent{}
	if cfg.Audio.Enabled {
		p, err := audio.NewPlayer(cfg.Audio.Volume)
		if err != nil {
			log.WithError(err).Warn("audio unavailable, running silent")
		} else {
			defer p.Close()
			sounds = p
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.WithField("seed", seed).Info("starting")

	eng, _ := newSession(cfg, keys, seed, sounds, log)

	term, err := terminal.New()
	if err != nil {
		return errors.Wrap(err, "create terminal")
	}
	if err := term.Init(); err != nil {
		return errors.Wrap(err, "initialize terminal")
	}
	defer term.Fini()

	err = loop(eng, term, console.New(cfg.Screen.Width, cfg.Screen.Height))
	if errors.Is(err, engine.ErrQuit) {
		log.Info("quit")
	}
	return err
}
