package snake

// Snapshot captures the complete game state for determinism testing and
// the end-of-session debug log.
type Snapshot struct {
	Moves   uint64
	Score   int
	Actor   Position
	Heading Heading
	Items   [ItemCount]Position
	Width   int
	Height  int
	Running bool
	Reason  EndReason
}

// Snapshot returns the current game snapshot.
func (s *GameState) Snapshot() Snapshot {
	bounds := s.Bounds()
	snap := Snapshot{
		Moves:   s.moves,
		Score:   s.score,
		Actor:   s.actor.pos,
		Heading: s.actor.heading,
		Width:   bounds.W,
		Height:  bounds.H,
		Running: s.Running(),
		Reason:  s.reason,
	}
	for i, it := range s.Items() {
		snap.Items[i] = it.Pos
	}
	return snap
}
