package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/room-twice/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Left       key.Binding
	Down       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns arrows, WASD and vim keys for movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyAction is what a key press means to the host.
type KeyAction int

const (
	KeyGame KeyAction = iota // Forward Event to the game
	KeyQuit
	KeyScreenshot
)

// MapKey translates a key message. Every key that is not bound to
// anything else reaches the game as PressAnyKey, so messages can be
// dismissed with any key.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action KeyAction, ev core.RawInputEvent) {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit, core.RawInputEvent{}
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot, core.RawInputEvent{}
	case key.Matches(msg, k.Up):
		return KeyGame, core.Press(core.DirUp)
	case key.Matches(msg, k.Left):
		return KeyGame, core.Press(core.DirLeft)
	case key.Matches(msg, k.Down):
		return KeyGame, core.Press(core.DirDown)
	case key.Matches(msg, k.Right):
		return KeyGame, core.Press(core.DirRight)
	case key.Matches(msg, k.Pause):
		return KeyGame, core.RawInputEvent{Kind: core.InputPressPause}
	}
	return KeyGame, core.RawInputEvent{Kind: core.InputPressAnyKey}
}
