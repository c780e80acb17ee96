// Package snake implements a single-cell snake: an actor steered across a
// bounded grid collecting items until it hits the edge or the player quits.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrBoundsTooSmall is returned when the grid has no cell to place items on.
var ErrBoundsTooSmall = errors.New("snake: grid must be at least 1x1")

// EndReason tells why a session stopped.
type EndReason int

const (
	ReasonNone EndReason = iota // Session still running
	ReasonQuitRequested
	ReasonBoundaryExit
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonQuitRequested:
		return "quit_requested"
	case ReasonBoundaryExit:
		return "boundary_exit"
	default:
		return "unknown"
	}
}

// Palette holds the styles the actor and the items are painted with.
type Palette struct {
	Actor core.Style
	Item  core.Style
}

// DefaultPalette returns a bold dark-green actor and bold red items,
// both on the terminal's default background.
func DefaultPalette() Palette {
	return Palette{
		Actor: core.Style{Fg: core.ColorGreen, Bg: core.ColorDefault, Bold: true},
		Item:  core.Style{Fg: core.ColorBrightRed, Bg: core.ColorDefault, Bold: true},
	}
}

// GameState is everything one session mutates. It is owned by a single
// Loop and never shared.
type GameState struct {
	actor   Actor
	items   [ItemCount]Item
	score   int
	moves   uint64
	bounds  core.Rect
	rng     RNG
	palette Palette
	reason  EndReason
}

// NewGameState creates a running session on a grid of cfg.ScreenW x cfg.ScreenH
// cells, with the actor at the origin and every item at a random cell.
// A zero palette means DefaultPalette.
func NewGameState(cfg core.RuntimeConfig, rng RNG, palette Palette) (*GameState, error) {
	bounds := cfg.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBoundsTooSmall, bounds.W, bounds.H)
	}

	if palette == (Palette{}) {
		palette = DefaultPalette()
	}

	s := &GameState{
		actor:   NewActor(),
		bounds:  bounds,
		rng:     rng,
		palette: palette,
	}
	for i := range s.items {
		s.items[i].PlaceRandom(bounds.W, bounds.H, rng)
	}
	return s, nil
}

// Actor returns a copy of the actor.
func (s *GameState) Actor() Actor {
	return s.actor
}

// Items returns a copy of the items.
func (s *GameState) Items() [ItemCount]Item {
	return s.items
}

// Score returns the number of items collected so far.
func (s *GameState) Score() int {
	return s.score
}

// Bounds returns the grid the session runs on.
func (s *GameState) Bounds() core.Rect {
	return s.bounds
}

// Running reports whether the session has not ended yet.
func (s *GameState) Running() bool {
	return s.reason == ReasonNone
}

// Reason returns why the session ended, or ReasonNone while running.
func (s *GameState) Reason() EndReason {
	return s.reason
}

func (s *GameState) end(reason EndReason) {
	if s.reason == ReasonNone {
		s.reason = reason
	}
}

// HandleKey applies one input event. It returns true when the event
// ended the session.
func (s *GameState) HandleKey(ev core.KeyEvent) bool {
	if ev.Action == core.ActionQuit {
		s.end(ReasonQuitRequested)
		return true
	}
	if h, ok := HeadingFor(ev.Action); ok {
		s.actor.SetHeading(h)
	}
	return false
}

// Advance moves the actor one cell. The actor is kept on the visible grid,
// so the last column and row are the limits. Returns false, ending the
// session, when the move is rejected.
func (s *GameState) Advance() bool {
	if !s.actor.Step(s.bounds.W-1, s.bounds.H-1) {
		s.end(ReasonBoundaryExit)
		return false
	}
	s.moves++
	return true
}

// collect scores item i and respawns it if the actor is on it.
func (s *GameState) collect(i int) bool {
	if !Collides(s.actor.pos, s.items[i].Pos) {
		return false
	}
	s.score++
	s.items[i].PlaceRandom(s.bounds.W, s.bounds.H, s.rng)
	return true
}

// Redraw paints one frame: the actor first, then every item, checking each
// item for a collision with the actor just before it is painted.
// It returns how many items were collected.
func (s *GameState) Redraw(dst Surface) (int, error) {
	if err := dst.Clear(); err != nil {
		return 0, fmt.Errorf("clear: %w", err)
	}

	a := s.palette.Actor
	if err := dst.PaintGlyph(s.actor.pos.Row, s.actor.pos.Col, s.actor.heading.Glyph(), a.Fg, a.Bg, a.Bold); err != nil {
		return 0, fmt.Errorf("paint actor: %w", err)
	}

	collected := 0
	it := s.palette.Item
	for i := range s.items {
		if s.collect(i) {
			collected++
		}
		p := s.items[i].Pos
		if err := dst.PaintGlyph(p.Row, p.Col, ItemGlyph, it.Fg, it.Bg, it.Bold); err != nil {
			return collected, fmt.Errorf("paint item %d: %w", i, err)
		}
	}

	if err := dst.Present(); err != nil {
		return collected, fmt.Errorf("present: %w", err)
	}
	return collected, nil
}
