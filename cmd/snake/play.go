package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
)

var errNotATerminal = errors.New("snake must be run in a terminal")

func runPlay(cmd *cobra.Command, args []string) {
	res, err := play()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Your score was: %d\n", res.Score)
}

// play runs one session and returns its result once the terminal is restored.
func play() (snake.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return snake.Result{}, err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return snake.Result{}, err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	// Keys are read from stdin and frames written to stdout
	fd := int(os.Stdout.Fd())
	if err := requireTerminal(term.IsTerminal, int(os.Stdin.Fd()), fd); err != nil {
		return snake.Result{}, err
	}

	// Capture the grid once; it never changes for the session
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not read terminal size, using default", "err", termErr)
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    time.Now().UnixNano(),
	}

	palette, err := paletteFromConfig(cfg)
	if err != nil {
		return snake.Result{}, err
	}

	state, err := snake.NewGameState(rc, rand.New(rand.NewSource(rc.Seed)), palette)
	if err != nil {
		return snake.Result{}, err
	}

	terminal := tui.Open(rc, tui.NewKeyMap(cfg.Keys), logger)
	loop := snake.NewLoop(state, terminal, terminal, snake.WithLogger(logger))

	res, runErr := loop.Run()

	// Restore the terminal before anything is printed
	closeErr := terminal.Close()
	if runErr != nil {
		return res, runErr
	}
	if closeErr != nil {
		logger.Error("terminal restore failed", "err", closeErr)
		return res, closeErr
	}
	return res, nil
}

// requireTerminal fails unless every descriptor is a terminal.
func requireTerminal(isTerminal func(fd int) bool, fds ...int) error {
	for _, fd := range fds {
		if !isTerminal(fd) {
			return fmt.Errorf("%w (fd %d)", errNotATerminal, fd)
		}
	}
	return nil
}

// paletteFromConfig converts the configured styles for the game.
func paletteFromConfig(cfg config.SnakeConfig) (snake.Palette, error) {
	actor, err := cfg.Palette.Actor.Style()
	if err != nil {
		return snake.Palette{}, fmt.Errorf("palette.actor: %w", err)
	}
	item, err := cfg.Palette.Item.Style()
	if err != nil {
		return snake.Palette{}, fmt.Errorf("palette.item: %w", err)
	}
	return snake.Palette{Actor: actor, Item: item}, nil
}
