package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// Each grid cell is drawn as a CellW x CellH block of characters.
const (
	CellW = 4
	CellH = 2

	hudRows = 2
)

// MinScreenSize returns the smallest screen the level table fits on.
func MinScreenSize(width, height int) (w, h int) {
	return width * CellW, height*CellH + hudRows
}

// namer is implemented by level tables that know their level names.
type namer interface {
	Name(level int) string
}

// layout maps grid coordinates to screen coordinates.
type layout struct {
	ox, oy int
}

func (l layout) cell(pos core.Pos) (int, int) {
	return l.ox + pos.X*CellW, l.oy + pos.Y*CellH
}

func (l layout) fcell(p core.FPos) (int, int) {
	return l.ox + int(math.Round(p.X*CellW)), l.oy + int(math.Round(p.Y*CellH))
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	width, height := g.levels.Size()
	minW, minH := MinScreenSize(width, height)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorMessage)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorMessage)
		return
	}

	l := layout{
		ox: (dst.Width() - width*CellW) / 2,
		oy: hudRows + (dst.Height()-hudRows-height*CellH)/2,
	}

	g.renderHUD(dst)
	g.renderCells(dst, l, width, height)
	g.renderCorpses(dst, l)
	g.renderSpinies(dst, l)
	g.renderPlayer(dst, l)
	g.renderMessage(dst)
}

// renderHUD draws the title, level, death count and run clock.
func (g *Game) renderHUD(dst *core.Screen) {
	s := &g.state

	level := fmt.Sprintf("Level %d/%d", s.LevelNumber, g.levels.MaxLevel())
	if s.HasNextLevel {
		level += fmt.Sprintf(" > %d", s.NextLevel)
	}
	if n, ok := g.levels.(namer); ok && n.Name(s.LevelNumber) != "" {
		level += ": " + n.Name(s.LevelNumber)
	}

	right := fmt.Sprintf("Deaths: %d  Time: %s", s.Deaths, FormatClock(s.Time))
	rightX := dst.Width() - len(right) - 1

	// The title goes first when the row gets crowded.
	left := level
	if g.messages.Title != "" {
		if titled := g.messages.Title + " | " + level; 1+utf8.RuneCountInString(titled) < rightX {
			left = titled
		}
	}
	dst.DrawText(1, 0, left, core.ColorHUD)
	dst.DrawText(rightX, 0, right, core.ColorHUD)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorHUD)
}

// FormatClock formats a run time as mm:ss.t.
func FormatClock(t core.Seconds) string {
	if t < 0 {
		t = 0
	}
	minutes := int(t) / 60
	seconds := t - float64(minutes*60)
	return fmt.Sprintf("%02d:%04.1f", minutes, seconds)
}

// renderCells draws the static grid and the live temporary walls.
func (g *Game) renderCells(dst *core.Screen, l layout, width, height int) {
	s := &g.state

	temporary := make(map[core.Pos]TemporaryWall, len(s.TemporaryWalls))
	for _, w := range s.TemporaryWalls {
		if w.Lifetime.Contains(s.LevelNumber) {
			temporary[w.Pos] = w
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := core.P(x, y)
			sx, sy := l.cell(pos)

			if w, ok := temporary[pos]; ok {
				dst.DrawText(sx, sy, "▓▓▓▓", core.ColorTemporaryWall)
				dst.DrawText(sx, sy+1, label(w.Lifetime), core.ColorLabel)
				continue
			}

			switch g.levels.CellKindAt(s.LevelNumber, pos).Kind {
			case levels.KindWall:
				dst.DrawText(sx, sy, "████", core.ColorWall)
				dst.DrawText(sx, sy+1, "████", core.ColorWall)
			case levels.KindLeftDoor, levels.KindRightDoor:
				dst.DrawText(sx, sy, "▒  ▒", core.ColorDoor)
				dst.DrawText(sx, sy+1, "▒  ▒", core.ColorDoor)
			case levels.KindSign:
				dst.DrawText(sx, sy, "┌??┐", core.ColorSign)
				dst.DrawText(sx, sy+1, "└┬┬┘", core.ColorSign)
			default:
				dst.SetColor(sx+1, sy+1, '·', core.ColorFloor)
			}
		}
	}
}

// label pads a lifetime to one cell width.
func label(lt levels.Lifetime) string {
	text := lt.String()
	if len(text) > CellW {
		text = text[:CellW]
	}
	return text + strings.Repeat(" ", CellW-len(text))
}

// renderCorpses draws fading corpse markers.
func (g *Game) renderCorpses(dst *core.Screen, l layout) {
	s := &g.state
	for _, c := range s.Corpses {
		alpha := c.Alpha(s.Time, g.cfg.Corpse.FadeOut)
		if alpha <= 0 {
			continue
		}
		sx, sy := l.fcell(c.FPos)
		if alpha > 0.5 {
			dst.DrawText(sx, sy, " xx ", core.ColorCorpse)
			dst.DrawText(sx, sy+1, "/__\\", core.ColorCorpse)
		} else {
			dst.DrawText(sx, sy+1, " __ ", core.ColorCorpse)
		}
	}
}

func arrow(d core.Dir) string {
	switch d {
	case core.DirUp:
		return "▲▲"
	case core.DirLeft:
		return "◀◀"
	case core.DirDown:
		return "▼▼"
	default:
		return "▶▶"
	}
}

// renderSpinies draws the swarm with lifetime labels.
func (g *Game) renderSpinies(dst *core.Screen, l layout) {
	s := &g.state
	for _, sp := range s.Spinies {
		sx, sy := l.fcell(sp.FPos(s.SpiniesMovingSince, s.Time, g.cfg.Spiny.Speed))
		color := core.ColorSpiny
		if !sp.Enabled {
			color = core.ColorDisabledSpiny
		}
		dst.DrawText(sx, sy, "/"+arrow(sp.Dir)+"\\", color)
		dst.DrawText(sx, sy+1, label(sp.Lifetime), core.ColorLabel)
	}
}

// renderPlayer draws the player.
func (g *Game) renderPlayer(dst *core.Screen, l layout) {
	s := &g.state
	sx, sy := l.fcell(g.PlayerFPos(s.Player.Pos, s.Time))
	dst.DrawText(sx, sy, "(oo)", core.ColorPlayer)
	dst.DrawText(sx, sy+1, "/||\\", core.ColorPlayer)
}

// renderMessage draws the pause, sign, intro or ending message in a box.
func (g *Game) renderMessage(dst *core.Screen) {
	msg := g.state.Message
	if msg == "" {
		return
	}

	lines := strings.Split(msg, "\n")
	textW := 0
	for _, line := range lines {
		textW = max(textW, len([]rune(line)))
	}

	boxW := min(textW+6, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorMessage)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorMessage)
	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawText(x, boxY+2+i, line, core.ColorMessage)
	}
}
