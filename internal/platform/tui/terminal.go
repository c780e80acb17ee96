// Package tui adapts the terminal to the game: a Bubble Tea program owns raw
// mode, the alternate screen and the cursor, while the game loop polls it for
// keys and hands it frames.
package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrTerminalClosed is returned once the Bubble Tea program has stopped.
var ErrTerminalClosed = errors.New("tui: terminal closed")

// eventBuffer is how many key presses may queue up between polls.
const eventBuffer = 64

// Terminal is both the input source and the render surface of a session.
// All methods except Close must be called from the game loop only.
type Terminal struct {
	program *tea.Program
	screen  *core.Screen
	events  chan core.KeyEvent
	done    chan struct{}
	final   tea.Model
	err     error
	logger  *log.Logger
}

// Open starts the Bubble Tea program on the alternate screen.
// cfg fixes the size of the frame buffer for the whole session.
func Open(cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger, opts ...tea.ProgramOption) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &Terminal{
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		events: make(chan core.KeyEvent, eventBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	t.program = tea.NewProgram(NewModel(keys, t.events), opts...)

	go t.run()
	return t
}

func (t *Terminal) run() {
	t.final, t.err = t.program.Run()
	close(t.done)
}

func (t *Terminal) closedErr() error {
	if t.err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalClosed, t.err)
	}
	return ErrTerminalClosed
}

// Poll waits up to timeout for one key press. Keys pressed while the loop
// was busy are returned first, one per call, in arrival order.
func (t *Terminal) Poll(timeout time.Duration) (core.KeyEvent, bool, error) {
	select {
	case ev := <-t.events:
		return ev, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return ev, true, nil
	case <-timer.C:
		return core.KeyEvent{}, false, nil
	case <-t.done:
		return core.KeyEvent{}, false, t.closedErr()
	}
}

// Clear blanks the frame buffer.
func (t *Terminal) Clear() error {
	t.screen.Clear()
	return nil
}

// PaintGlyph draws one styled glyph into the frame buffer.
func (t *Terminal) PaintGlyph(row, col int, r rune, fg, bg core.Color, bold bool) error {
	t.screen.Paint(row, col, r, core.Style{Fg: fg, Bg: bg, Bold: bold})
	return nil
}

// Present hands the composed frame to the program for display.
func (t *Terminal) Present() error {
	select {
	case <-t.done:
		return t.closedErr()
	default:
	}
	t.program.Send(frameMsg(RenderScreen(t.screen)))
	return nil
}

// Close stops the program and restores the terminal. It is safe to call
// more than once and after the program has already stopped.
func (t *Terminal) Close() error {
	t.program.Quit()
	<-t.done

	t.logger.Debug("last frame", "text", t.screen.String())
	if m, ok := t.final.(Model); ok && m.Dropped() > 0 {
		t.logger.Warn("key presses dropped", "count", m.Dropped())
	}
	if t.err != nil && !errors.Is(t.err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal: %w", t.err)
	}
	return nil
}
