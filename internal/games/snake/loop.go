package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
)

// InputSource yields at most one key event per call, waiting up to timeout.
// ok is false when the timeout elapsed without a key press.
type InputSource interface {
	Poll(timeout time.Duration) (ev core.KeyEvent, ok bool, err error)
}

// Surface is a character grid addressed by (row, col).
// Clear and PaintGlyph compose a frame; Present shows it.
type Surface interface {
	Clear() error
	PaintGlyph(row, col int, r rune, fg, bg core.Color, bold bool) error
	Present() error
}

// Result summarizes a finished session.
type Result struct {
	Score  int
	Reason EndReason
	Moves  uint64
}

// Loop drives a GameState through the tick cycle:
// poll input, advance, redraw, wait.
type Loop struct {
	state   *GameState
	input   InputSource
	surface Surface
	sleep   func(time.Duration)
	logger  *log.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithSleep replaces the post-render wait (time.Sleep by default).
func WithSleep(sleep func(time.Duration)) LoopOption {
	return func(l *Loop) {
		l.sleep = sleep
	}
}

// WithLogger sets the logger for session events.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop that owns state exclusively.
func NewLoop(state *GameState, input InputSource, surface Surface, opts ...LoopOption) *Loop {
	l := &Loop{
		state:   state,
		input:   input,
		surface: surface,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Run ticks until the session ends. Boundary exit and quit are normal
// endings. Any error from the input source or the surface aborts the
// session; nothing is retried.
func (l *Loop) Run() (Result, error) {
	bounds := l.state.Bounds()
	l.logger.Info("session started",
		"width", bounds.W,
		"height", bounds.H,
		"items", ItemCount,
	)

	for l.state.Running() {
		if err := l.Tick(); err != nil {
			l.logger.Error("session aborted", "err", err, "score", l.state.score)
			return l.result(), err
		}
	}

	l.logger.Info("session ended", "reason", l.state.reason, "score", l.state.score)
	l.logger.Debug("final state", "snapshot", fmt.Sprintf("%+v", l.state.Snapshot()))
	return l.result(), nil
}

// Tick runs one cycle. It must not be called once the session has ended.
func (l *Loop) Tick() error {
	s := l.state

	// 1. Input, at most one event.
	ev, ok, err := l.input.Poll(s.actor.heading.TickDuration())
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if ok && s.HandleKey(ev) {
		return nil
	}

	// 2. Advance.
	if !s.Advance() {
		l.logger.Debug("boundary hit", "pos", s.actor.pos, "heading", s.actor.heading)
		return nil
	}

	// 3. Redraw, collecting items on the way.
	collected, err := s.Redraw(l.surface)
	if err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	if collected > 0 {
		l.logger.Debug("item collected", "pos", s.actor.pos, "count", collected, "score", s.score)
	}

	// 4. Wait, on top of the poll timeout above.
	l.sleep(s.actor.heading.TickDuration())
	return nil
}

func (l *Loop) result() Result {
	return Result{
		Score:  l.state.score,
		Reason: l.state.reason,
		Moves:  l.state.moves,
	}
}
