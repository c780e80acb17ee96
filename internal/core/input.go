package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota // Any key without a binding
	ActionUp                  // Up arrow, W
	ActionDown                // Down arrow, S
	ActionLeft                // Left arrow, A
	ActionRight               // Right arrow, D
	ActionQuit                // Esc, Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete key press delivered by the input source.
type KeyEvent struct {
	Key    string // Key name as reported by the terminal (e.g. "up", "esc")
	Action Action // Classified action; ActionNone for unbound keys
}
