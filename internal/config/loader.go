package config

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load returns the embedded configuration, validated.
func Load() (SnakeConfig, error) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken
		cfg = DefaultSnakeConfig()
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into a config. Unknown fields are rejected.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every action has a key, no key is bound twice,
// colors exist and the log level parses.
func Validate(cfg SnakeConfig) error {
	owner := make(map[string]core.Action)
	for _, action := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionQuit} {
		keys := cfg.Keys.Bindings()[action]
		if len(keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, action)
		}
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("%w: empty key name for %s", ErrInvalid, action)
			}
			if prev, dup := owner[k]; dup {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, action)
			}
			owner[k] = action
		}
	}

	if _, err := cfg.Palette.Actor.Style(); err != nil {
		return fmt.Errorf("%w: palette.actor: %w", ErrInvalid, err)
	}
	if _, err := cfg.Palette.Item.Style(); err != nil {
		return fmt.Errorf("%w: palette.item: %w", ErrInvalid, err)
	}

	if _, err := cfg.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// LogLevel parses the configured log level. An empty level is info.
func (c SnakeConfig) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}
