package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The screen size is captured once at startup and never changes for a session.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for item placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Bounds returns the playable area as a rectangle anchored at the origin.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, c.ScreenW, c.ScreenH)
}
