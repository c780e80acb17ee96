package snake

import (
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Heading represents the actor's direction of travel.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Tick durations per axis. Terminal cells are taller than they are wide,
// so vertical movement is slowed down to keep the apparent speed even.
const (
	VerticalTick   = 75 * time.Millisecond
	HorizontalTick = 50 * time.Millisecond
)

type headingInfo struct {
	name   string
	glyph  rune
	tick   time.Duration
	action core.Action
}

var headings = [...]headingInfo{
	HeadingUp:    {name: "up", glyph: '^', tick: VerticalTick, action: core.ActionUp},
	HeadingDown:  {name: "down", glyph: 'v', tick: VerticalTick, action: core.ActionDown},
	HeadingLeft:  {name: "left", glyph: '<', tick: HorizontalTick, action: core.ActionLeft},
	HeadingRight: {name: "right", glyph: '>', tick: HorizontalTick, action: core.ActionRight},
}

func (h Heading) valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// Glyph returns the character the actor is drawn with while facing h.
func (h Heading) Glyph() rune {
	if !h.valid() {
		return '?'
	}
	return headings[h].glyph
}

// TickDuration returns how long one tick lasts while facing h.
func (h Heading) TickDuration() time.Duration {
	if !h.valid() {
		return HorizontalTick
	}
	return headings[h].tick
}

func (h Heading) String() string {
	if !h.valid() {
		return "unknown"
	}
	return headings[h].name
}

// HeadingFor maps a movement action to a heading.
// Returns false for actions that do not move the actor.
func HeadingFor(a core.Action) (Heading, bool) {
	for h, info := range headings {
		if info.action == a {
			return Heading(h), true
		}
	}
	return 0, false
}
