// Package config provides YAML-based tuning for the snake game: key
// bindings, the palette and the log level.
package config

import (
	"github.com/vovakirdan/term-snake/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Keys    KeysConfig    `yaml:"keys"`
	Palette PaletteConfig `yaml:"palette"`
	Log     LogConfig     `yaml:"log"`
}

// KeysConfig lists the terminal key names bound to each action.
// Names follow Bubble Tea's key strings ("up", "esc", "ctrl+c", "w").
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// Bindings returns the key lists indexed by action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionUp:    k.Up,
		core.ActionDown:  k.Down,
		core.ActionLeft:  k.Left,
		core.ActionRight: k.Right,
		core.ActionQuit:  k.Quit,
	}
}

// PaletteConfig defines how the actor and the items are painted.
type PaletteConfig struct {
	Actor StyleConfig `yaml:"actor"`
	Item  StyleConfig `yaml:"item"`
}

// StyleConfig is one glyph style. Colors use core.ParseColor names.
type StyleConfig struct {
	Fg   string `yaml:"fg"`
	Bg   string `yaml:"bg"`
	Bold bool   `yaml:"bold"`
}

// Style converts the config into a core.Style.
func (s StyleConfig) Style() (core.Style, error) {
	fg, err := core.ParseColor(s.Fg)
	if err != nil {
		return core.Style{}, err
	}
	bg, err := core.ParseColor(s.Bg)
	if err != nil {
		return core.Style{}, err
	}
	return core.Style{Fg: fg, Bg: bg, Bold: s.Bold}, nil
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
