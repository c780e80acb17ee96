package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:    newBinding(cfg.Up, "move up"),
		Down:  newBinding(cfg.Down, "move down"),
		Left:  newBinding(cfg.Left, "move left"),
		Right: newBinding(cfg.Right, "move right"),
		Quit:  newBinding(cfg.Quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// Classify maps a key message to a key event. Unbound keys get ActionNone.
func (k KeyMap) Classify(msg tea.KeyMsg) core.KeyEvent {
	ev := core.KeyEvent{Key: msg.String()}

	switch {
	case key.Matches(msg, k.Quit):
		ev.Action = core.ActionQuit
	case key.Matches(msg, k.Up):
		ev.Action = core.ActionUp
	case key.Matches(msg, k.Down):
		ev.Action = core.ActionDown
	case key.Matches(msg, k.Left):
		ev.Action = core.ActionLeft
	case key.Matches(msg, k.Right):
		ev.Action = core.ActionRight
	}
	return ev
}

// ControlsHelp renders the full help view for the bindings.
func ControlsHelp(k KeyMap, width int) string {
	h := help.New()
	h.ShowAll = true
	h.Width = width
	return h.View(k)
}
