package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
)

// frameMsg carries a fully rendered frame from the game loop.
type frameMsg string

// Model is the Bubble Tea model behind a Terminal. It owns no game state:
// key presses are classified and queued for the loop, and View shows the
// last frame the loop presented.
type Model struct {
	keys    KeyMap
	events  chan<- core.KeyEvent
	frame   string
	dropped int // Keys discarded because the queue was full
}

// NewModel creates a model that queues classified keys on events.
func NewModel(keys KeyMap, events chan<- core.KeyEvent) Model {
	return Model{
		keys:   keys,
		events: events,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := m.keys.Classify(msg)
		select {
		case m.events <- ev:
		default:
			m.dropped++
		}
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, nil
	}

	// Window size changes are ignored: the grid is fixed for the session.
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	return m.frame
}

// Dropped returns how many key presses were discarded.
func (m Model) Dropped() int {
	return m.dropped
}
