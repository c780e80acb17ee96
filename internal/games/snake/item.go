package snake

// ItemCount is the number of collectibles on the grid.
const ItemCount = 5

// ItemGlyph is the character collectibles are drawn with.
const ItemGlyph = '@'

// RNG supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Item is a single collectible.
type Item struct {
	Pos Position
}

// PlaceRandom moves the item to a uniformly random cell of a
// width x height grid. Both bounds must be at least 1.
func (it *Item) PlaceRandom(width, height int, rng RNG) {
	it.Pos = Position{
		Col: rng.Intn(width),
		Row: rng.Intn(height),
	}
}

// Collides reports whether the actor at a has reached the item at b.
func Collides(a, b Position) bool {
	return a == b
}
