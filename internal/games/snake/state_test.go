package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
)

// screenSurface records frames into a core.Screen.
type screenSurface struct {
	screen   *core.Screen
	clears   int
	paints   int
	presents int
	err      error // returned by Present when set
}

func newScreenSurface(w, h int) *screenSurface {
	return &screenSurface{screen: core.NewScreen(w, h)}
}

func (s *screenSurface) Clear() error {
	s.clears++
	s.screen.Clear()
	return nil
}

func (s *screenSurface) PaintGlyph(row, col int, r rune, fg, bg core.Color, bold bool) error {
	s.paints++
	s.screen.Paint(row, col, r, core.Style{Fg: fg, Bg: bg, Bold: bold})
	return nil
}

func (s *screenSurface) Present() error {
	s.presents++
	return s.err
}

func newTestState(t *testing.T, w, h int, rng RNG) *GameState {
	t.Helper()
	s, err := NewGameState(core.RuntimeConfig{ScreenW: w, ScreenH: h}, rng, DefaultPalette())
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	return s
}

func TestNewGameState(t *testing.T) {
	rng := &seqRNG{vals: []int{1, 0, 4, 4, 4, 3, 3, 4, 2, 4}}
	s := newTestState(t, 5, 5, rng)

	if !s.Running() {
		t.Error("new state should be running")
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	a := s.Actor()
	if a.Position() != (Position{}) || a.Heading() != HeadingRight {
		t.Errorf("actor = %v facing %v, expected (0, 0) facing right", a.Position(), a.Heading())
	}

	expected := [ItemCount]Position{{1, 0}, {4, 4}, {4, 3}, {3, 4}, {2, 4}}
	for i, it := range s.Items() {
		if it.Pos != expected[i] {
			t.Errorf("item %d at %v, expected %v", i, it.Pos, expected[i])
		}
	}
}

func TestNewGameStateRejectsEmptyGrid(t *testing.T) {
	sizes := []struct{ w, h int }{{0, 10}, {10, 0}, {0, 0}}
	for _, sz := range sizes {
		_, err := NewGameState(core.RuntimeConfig{ScreenW: sz.w, ScreenH: sz.h}, &seqRNG{}, DefaultPalette())
		if !errors.Is(err, ErrBoundsTooSmall) {
			t.Errorf("NewGameState(%dx%d) error = %v, expected ErrBoundsTooSmall", sz.w, sz.h, err)
		}
	}
}

func TestNewGameStateZeroPalette(t *testing.T) {
	s, err := NewGameState(core.RuntimeConfig{ScreenW: 4, ScreenH: 4}, &seqRNG{}, Palette{})
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	if s.palette != DefaultPalette() {
		t.Errorf("palette = %+v, expected %+v", s.palette, DefaultPalette())
	}
}

func TestActorAccessorsOnCopy(t *testing.T) {
	s := newTestState(t, 8, 8, &seqRNG{vals: []int{7}})
	s.HandleKey(core.KeyEvent{Key: "down", Action: core.ActionDown})
	if !s.Advance() {
		t.Fatal("Advance() should succeed")
	}

	// Read straight off the returned value, without a variable
	if got := s.Actor().Position(); got != (Position{0, 1}) {
		t.Errorf("Actor().Position() = %v, expected (0, 1)", got)
	}
	if got := s.Actor().Heading(); got != HeadingDown {
		t.Errorf("Actor().Heading() = %v, expected down", got)
	}

	a := s.Actor()
	a.SetHeading(HeadingUp)
	if s.Actor().Heading() != HeadingDown {
		t.Error("changing the copy changed the session actor")
	}
}

func TestHandleKey(t *testing.T) {
	s := newTestState(t, 10, 10, &seqRNG{vals: []int{9}})

	if s.HandleKey(core.KeyEvent{Key: "down", Action: core.ActionDown}) {
		t.Fatal("a move key should not end the session")
	}
	if h := s.Actor().Heading(); h != HeadingDown {
		t.Errorf("Heading() = %v, expected down", h)
	}

	if s.HandleKey(core.KeyEvent{Key: "x", Action: core.ActionNone}) {
		t.Fatal("an unbound key should not end the session")
	}
	if h := s.Actor().Heading(); h != HeadingDown {
		t.Errorf("unbound key changed heading to %v", h)
	}

	if !s.HandleKey(core.KeyEvent{Key: "esc", Action: core.ActionQuit}) {
		t.Fatal("quit key should end the session")
	}
	if s.Running() || s.Reason() != ReasonQuitRequested {
		t.Errorf("Reason() = %v, expected quit_requested", s.Reason())
	}
}

func TestAdvanceStaysOnVisibleGrid(t *testing.T) {
	s := newTestState(t, 3, 2, &seqRNG{vals: []int{0}})

	// Right along row 0: columns 1 and 2, then the edge
	for i := 1; i <= 2; i++ {
		if !s.Advance() {
			t.Fatalf("Advance() #%d should succeed", i)
		}
	}
	if s.Advance() {
		t.Fatal("Advance() past the last column should fail")
	}
	if s.Reason() != ReasonBoundaryExit {
		t.Errorf("Reason() = %v, expected boundary_exit", s.Reason())
	}
	if p := s.Actor().Position(); p != (Position{2, 0}) {
		t.Errorf("Position() = %v, expected (2, 0)", p)
	}
	if !s.Bounds().Contains(s.Actor().Position().Col, s.Actor().Position().Row) {
		t.Error("actor left the grid")
	}
}

func TestRedrawCollectsItem(t *testing.T) {
	// Items: (3,3) then four far away; the respawn draws (0, 1)
	rng := &seqRNG{vals: []int{3, 3, 9, 9, 9, 8, 8, 9, 7, 9, 0, 1}}
	s := newTestState(t, 10, 10, rng)
	s.actor.pos = Position{3, 3}

	surf := newScreenSurface(10, 10)
	collected, err := s.Redraw(surf)
	if err != nil {
		t.Fatalf("Redraw() failed: %v", err)
	}

	if collected != 1 {
		t.Errorf("Redraw() collected %d, expected 1", collected)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	p := s.Items()[0].Pos
	if p != (Position{0, 1}) {
		t.Errorf("respawned item at %v, expected (0, 1)", p)
	}
	if !s.Bounds().Contains(p.Col, p.Row) {
		t.Errorf("respawned item at %v is out of bounds", p)
	}
	if surf.screen.GetCell(0, 1).Rune != ItemGlyph {
		t.Errorf("respawned item not painted at its new position")
	}
}

func TestRedrawWithoutCollisionChangesNothing(t *testing.T) {
	rng := &seqRNG{vals: []int{5, 5, 6, 6, 7, 7, 8, 8, 9, 9}}
	s := newTestState(t, 10, 10, rng)
	before := s.Items()

	surf := newScreenSurface(10, 10)
	collected, err := s.Redraw(surf)
	if err != nil {
		t.Fatalf("Redraw() failed: %v", err)
	}

	if collected != 0 || s.Score() != 0 {
		t.Errorf("collected %d, score %d, expected nothing", collected, s.Score())
	}
	if s.Items() != before {
		t.Errorf("items moved without a collision: %v -> %v", before, s.Items())
	}
	if rng.next != 10 {
		t.Errorf("RNG consumed %d values, expected only the initial 10", rng.next)
	}
}

func TestRedrawPaintsFrame(t *testing.T) {
	rng := &seqRNG{vals: []int{4, 2}}
	s := newTestState(t, 6, 4, rng)
	s.actor.pos = Position{1, 3}
	s.actor.heading = HeadingUp

	surf := newScreenSurface(6, 4)
	surf.screen.Paint(0, 5, 'Z', core.Style{}) // stale content from a previous frame
	if _, err := s.Redraw(surf); err != nil {
		t.Fatalf("Redraw() failed: %v", err)
	}

	if surf.clears != 1 || surf.presents != 1 {
		t.Errorf("clears=%d presents=%d, expected 1 each", surf.clears, surf.presents)
	}
	if surf.paints != 1+ItemCount {
		t.Errorf("paints = %d, expected %d", surf.paints, 1+ItemCount)
	}
	if surf.screen.GetCell(5, 0).Rune != ' ' {
		t.Error("frame was not cleared")
	}

	actor := surf.screen.GetCell(1, 3)
	if actor.Rune != '^' || actor.Style != DefaultPalette().Actor {
		t.Errorf("actor cell = %+v, expected '^' in actor style", actor)
	}
	item := surf.screen.GetCell(4, 2)
	if item.Rune != ItemGlyph || item.Style != DefaultPalette().Item {
		t.Errorf("item cell = %+v, expected %q in item style", item, ItemGlyph)
	}
}

func TestRedrawReturnsSurfaceError(t *testing.T) {
	s := newTestState(t, 4, 4, &seqRNG{vals: []int{3}})
	surf := newScreenSurface(4, 4)
	surf.err = errors.New("write failed")

	if _, err := s.Redraw(surf); !errors.Is(err, surf.err) {
		t.Errorf("Redraw() error = %v, expected wrapped %v", err, surf.err)
	}
}

func TestItemsMayShareACell(t *testing.T) {
	rng := &seqRNG{vals: []int{2}}
	s := newTestState(t, 5, 5, rng)

	for i, it := range s.Items() {
		if it.Pos != (Position{2, 2}) {
			t.Errorf("item %d at %v, expected (2, 2)", i, it.Pos)
		}
	}

	// All five are collected at once
	s.actor.pos = Position{2, 2}
	collected, err := s.Redraw(newScreenSurface(5, 5))
	if err != nil {
		t.Fatalf("Redraw() failed: %v", err)
	}
	if collected != ItemCount || s.Score() != ItemCount {
		t.Errorf("collected %d, score %d, expected %d", collected, s.Score(), ItemCount)
	}
}
