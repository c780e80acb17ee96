package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Keys: KeysConfig{
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Quit:  []string{"esc", "q", "ctrl+c"},
		},
		Palette: PaletteConfig{
			Actor: StyleConfig{Fg: "green", Bg: "default", Bold: true},
			Item:  StyleConfig{Fg: "bright_red", Bg: "default", Bold: true},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
