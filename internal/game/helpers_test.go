package game

import (
	"testing"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
	"github.com/vovakirdan/room-twice/internal/levels/formats"
)

// tick is a power of two so simulated time sums exactly.
const tick = 1.0 / 64

type fixtureLevel struct {
	rows  []string
	signs []string
}

// newSet builds a pack from framed rows; rulers are added here.
func newSet(t *testing.T, lvls ...fixtureLevel) *levels.Set {
	t.Helper()

	width := (len(lvls[0].rows[0]) - 2) / 2
	height := len(lvls[0].rows)
	ruler := levels.Ruler(width)

	pack := formats.Pack{ID: "test", Title: "Test", Width: width, Height: height}
	for _, l := range lvls {
		rows := append([]string{ruler}, l.rows...)
		rows = append(rows, ruler)
		pack.Levels = append(pack.Levels, formats.Level{Rows: rows, Signs: l.signs})
	}

	set, err := levels.Parse(pack)
	if err != nil {
		t.Fatalf("levels.Parse() error: %v", err)
	}
	return set
}

// emptyRoom is a closed 4x3 room with the left door at (0,1) and the right
// door at (5,3).
var emptyRoom = fixtureLevel{rows: []string{
	".############.",
	".LD        ##.",
	".##        ##.",
	".##        RD.",
	".############.",
}}

// testConfig gives a player move of 0.25s and a spiny step of 0.5s.
func testConfig() config.RoomConfig {
	return config.RoomConfig{
		Player:    config.PlayerConfig{Speed: 4},
		Spiny:     config.SpinyConfig{Speed: 2},
		Corpse:    config.CorpseConfig{FadeOut: 1},
		Collision: config.CollisionConfig{Margin: 0.2},
		Input:     config.InputConfig{ReleaseAfter: 0.15},
	}
}

// newGame starts a game and dismisses the intro message.
func newGame(t *testing.T, lvls ...fixtureLevel) *Game {
	t.Helper()
	g := NewFromSet(newSet(t, lvls...), testConfig())
	if a := g.Update(core.RawInputEvent{Kind: core.InputPressAnyKey}); a.Kind != ActionUnpause {
		t.Fatalf("dismissing intro returned %v, expected Unpause", a)
	}
	return g
}

// run feeds ticks until time reaches until or a message pauses the game,
// and returns every non-empty action.
func run(g *Game, until core.Seconds) []Action {
	var actions []Action
	for g.state.Time < until && !g.state.Paused() {
		if a := g.Update(core.TimePasses(tick)); !a.None() {
			actions = append(actions, a)
		}
	}
	return actions
}
