// Package config loads game settings from defaults, an optional TOML file and
// VIROGUE_* environment variables, in that order of precedence
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-rogue/input"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "VIROGUE_"

// PanelHeight is the space below the map for the names line, health bar and message log
const PanelHeight = 7

// MinScreenWidth fits the health bar and message log side by side
const MinScreenWidth = 61

// MaxInventoryCapacity is one item per menu letter a..z
const MaxInventoryCapacity = 26

// Config is the full game configuration
type Config struct {
	Screen ScreenConfig `toml:"screen" envPrefix:"SCREEN_"`
	Map    MapConfig    `toml:"map" envPrefix:"MAP_"`
	Audio  AudioConfig  `toml:"audio" envPrefix:"AUDIO_"`
	Log    LogConfig    `toml:"log" envPrefix:"LOG_"`
	Keys   KeysConfig   `toml:"keys" envPrefix:"KEYS_"`
}

// ScreenConfig is the drawing surface size in cells
type ScreenConfig struct {
	Width  int `toml:"width" env:"WIDTH"`
	Height int `toml:"height" env:"HEIGHT"`
}

// MapConfig controls dungeon generation
type MapConfig struct {
	Width              int `toml:"width" env:"WIDTH"`
	Height             int `toml:"height" env:"HEIGHT"`
	MaxRooms           int `toml:"max_rooms" env:"MAX_ROOMS"`
	RoomMinSize        int `toml:"room_min_size" env:"ROOM_MIN_SIZE"`
	RoomMaxSize        int `toml:"room_max_size" env:"ROOM_MAX_SIZE"`
	MaxMonstersPerRoom int `toml:"max_monsters_per_room" env:"MAX_MONSTERS_PER_ROOM"`
	MaxItemsPerRoom    int `toml:"max_items_per_room" env:"MAX_ITEMS_PER_ROOM"`
	InventoryCapacity  int `toml:"inventory_capacity" env:"INVENTORY_CAPACITY"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"` // linear, 0 to 1
}

// LogConfig controls the diagnostic log file
type LogConfig struct {
	Enabled bool   `toml:"enabled" env:"ENABLED"`
	Level   string `toml:"level" env:"LEVEL"`
	Format  string `toml:"format" env:"FORMAT"` // text or json
	Dir     string `toml:"dir" env:"DIR"`
}

// KeysConfig points at an optional keymap file
type KeysConfig struct {
	File string `toml:"file" env:"FILE"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{Width: 80, Height: 50},
		Map: MapConfig{
			Width:              80,
			Height:             43,
			MaxRooms:           30,
			RoomMinSize:        6,
			RoomMaxSize:        10,
			MaxMonstersPerRoom: 2,
			MaxItemsPerRoom:    2,
			InventoryCapacity:  26,
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.5},
		Log:   LogConfig{Enabled: false, Level: "info", Format: "text", Dir: "logs"},
	}
}

// Load builds the configuration from defaults, the TOML file at path and the process
// environment. A missing file is not an error; an empty path skips the file
func Load(path string) (*Config, error) {
	return load(path, nil)
}

// load uses environ instead of the process environment when non-nil
func load(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with
func (c *Config) Validate() error {
	m := c.Map
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", m.Width, m.Height)
	}
	if c.Screen.Width < max(m.Width, MinScreenWidth) {
		return fmt.Errorf("screen width %d is less than %d", c.Screen.Width, max(m.Width, MinScreenWidth))
	}
	if c.Screen.Height < m.Height+PanelHeight {
		return fmt.Errorf("screen height %d is less than map height %d plus %d panel lines",
			c.Screen.Height, m.Height, PanelHeight)
	}
	if m.RoomMinSize < 3 || m.RoomMaxSize < m.RoomMinSize {
		return fmt.Errorf("room sizes [%d, %d] invalid: need 3 <= min <= max", m.RoomMinSize, m.RoomMaxSize)
	}
	if m.MaxRooms <= 0 {
		return fmt.Errorf("max_rooms %d must be positive", m.MaxRooms)
	}
	if m.MaxMonstersPerRoom < 0 || m.MaxItemsPerRoom < 0 || m.InventoryCapacity < 0 {
		return fmt.Errorf("monster, item and inventory counts must not be negative")
	}
	if m.InventoryCapacity > MaxInventoryCapacity {
		return fmt.Errorf("inventory_capacity %d exceeds %d lettered menu slots", m.InventoryCapacity, MaxInventoryCapacity)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %g outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

// KeyTable returns the default bindings with the configured keymap file applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if c.Keys.File == "" {
		return base, nil
	}
	data, err := os.ReadFile(c.Keys.File)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", c.Keys.File, err)
	}
	kt, err := input.LoadKeyConfig(base, data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", c.Keys.File, err)
	}
	return kt, nil
}
