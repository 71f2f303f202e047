package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/room-twice/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action KeyAction
		kind   core.InputKind
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, KeyGame, core.InputPressUp},
		{"w", runeKey('w'), KeyGame, core.InputPressUp},
		{"k", runeKey('k'), KeyGame, core.InputPressUp},
		{"a", runeKey('a'), KeyGame, core.InputPressLeft},
		{"h", runeKey('h'), KeyGame, core.InputPressLeft},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, KeyGame, core.InputPressDown},
		{"j", runeKey('j'), KeyGame, core.InputPressDown},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, KeyGame, core.InputPressRight},
		{"l", runeKey('l'), KeyGame, core.InputPressRight},
		{"p", runeKey('p'), KeyGame, core.InputPressPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyGame, core.InputPressPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, KeyGame, core.InputPressAnyKey},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyGame, core.InputPressAnyKey},
		{"x", runeKey('x'), KeyGame, core.InputPressAnyKey},
		{"q", runeKey('q'), KeyQuit, core.InputNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit, core.InputNone},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot, core.InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ev := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if ev.Kind != tt.kind {
				t.Errorf("MapKey(%q) event = %v, expected %v", tt.msg.String(), ev.Kind, tt.kind)
			}
		})
	}
}
