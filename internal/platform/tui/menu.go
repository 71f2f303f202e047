package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/registry"
)

// MenuKeyMap defines the key bindings of the pack picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Records key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j")),
		Select:  key.NewBinding(key.WithKeys("enter", " ")),
		Records: key.NewBinding(key.WithKeys("tab")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the pack picker.
type MenuModel struct {
	packs       []registry.PackInfo
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	quitting    bool
	selected    *registry.PackInfo
	showRecords bool
}

// NewMenuModel creates a menu over the registered packs.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		packs:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.packs)-1, 0))

		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.packs)-1, 0))

		case key.Matches(msg, m.keys.Select):
			if len(m.packs) > 0 {
				selected := m.packs[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Records):
			m.showRecords = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("I've Seen This Room Twice Already", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level pack", m.width))
	b.WriteString("\n\n")

	if len(m.packs) == 0 {
		b.WriteString(centerText("No level packs found.", m.width))
		b.WriteString("\n")
	}

	for i, p := range m.packs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%d levels)", cursor, p.Title, p.Levels)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PackID      string
	Config      core.RuntimeConfig
	ShowRecords bool
	Quit        bool
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.showRecords:
		result.ShowRecords = true
	case m.selected != nil:
		result.PackID = m.selected.ID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
