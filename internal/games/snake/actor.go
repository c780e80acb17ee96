package snake

import "fmt"

// Position is a cell of the grid.
type Position struct {
	Col, Row int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Actor is the player-controlled entity. It occupies exactly one cell.
type Actor struct {
	pos     Position
	heading Heading
}

// NewActor creates an actor at the origin facing right.
func NewActor() Actor {
	return Actor{heading: HeadingRight}
}

// Position returns the actor's current cell.
func (a Actor) Position() Position {
	return a.pos
}

// Heading returns the actor's current direction of travel.
func (a Actor) Heading() Heading {
	return a.heading
}

// SetHeading changes direction unconditionally, including a full reversal.
func (a *Actor) SetHeading(h Heading) {
	a.heading = h
}

// Step moves the actor one cell along its heading. The move is rejected,
// leaving the position unchanged, when it would take the column past
// maxWidth or the row past maxHeight (or either below zero).
// A false return means the actor hit the boundary.
func (a *Actor) Step(maxWidth, maxHeight int) bool {
	switch {
	case a.heading == HeadingUp && a.pos.Row > 0:
		a.pos.Row--
	case a.heading == HeadingDown && a.pos.Row < maxHeight:
		a.pos.Row++
	case a.heading == HeadingLeft && a.pos.Col > 0:
		a.pos.Col--
	case a.heading == HeadingRight && a.pos.Col < maxWidth:
		a.pos.Col++
	default:
		return false
	}
	return true
}
