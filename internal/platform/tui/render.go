package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/room-twice/internal/core"
)

// colorStyles maps the game's semantic colours to terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorFloor:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTemporaryWall: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorDoor:          lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorSign:          lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorSpiny:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDisabledSpiny: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPlayer:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorCorpse:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorLabel:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorHUD:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorMessage:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
