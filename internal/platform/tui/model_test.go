package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/room-twice/internal/config"
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/game"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// tinyPack is a single level with the two doors side by side.
const tinyPack = `
id: tiny
title: Tiny
width: 2
height: 1
levels:
  - map: |
      . . .
      .LDRD.
      . . .
`

// signPack puts a sign between the doors.
const signPack = `
id: signs
title: Signs
width: 3
height: 1
levels:
  - map: |
      . . . .
      .LDS0RD.
      . . . .
    signs:
      - read me slowly
`

type fakeSaver struct {
	calls   int
	packID  string
	seconds float64
	deaths  int
}

func (f *fakeSaver) SaveRun(packID string, seconds float64, deaths int) (int64, error) {
	f.calls++
	f.packID, f.seconds, f.deaths = packID, seconds, deaths
	return int64(f.calls), nil
}

func newTestModel(t *testing.T, saver RunSaver) Model {
	t.Helper()
	return newPackModel(t, tinyPack, saver)
}

func newPackModel(t *testing.T, pack string, saver RunSaver) Model {
	t.Helper()
	set, err := levels.LoadYAML([]byte(pack))
	if err != nil {
		t.Fatalf("LoadYAML() error: %v", err)
	}
	g := game.NewFromSet(set, config.DefaultRoomConfig())
	return NewModel(g, set.ID, saver, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60})
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func ticks(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = step(m, TickMsg{})
	}
	return m
}

func TestModelPlaysThroughAndSavesOnce(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver)

	m = step(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Game().State().Paused() {
		t.Fatal("any key should dismiss the intro")
	}

	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, 30)
	if got := m.Game().State().Player.Pos; got != game.Idle(core.P(1, 0)) {
		t.Fatalf("player = %v, expected idle in the right door", got)
	}
	if m.Game().State().Player.RightPressed {
		t.Error("right should have been released after the repeat timeout")
	}

	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, 120)

	s := m.Game().State()
	if !s.Frozen {
		t.Fatalf("game should have reached the ending, state = %+v", s)
	}
	if saver.calls != 1 || saver.packID != "tiny" || saver.deaths != 0 {
		t.Errorf("saver = %+v, expected one deathless tiny run", saver)
	}
	if saver.seconds != s.Time {
		t.Errorf("saved time %v, expected %v", saver.seconds, s.Time)
	}

	m = ticks(m, 10)
	if saver.calls != 1 {
		t.Errorf("run saved %d times, expected once", saver.calls)
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, 30)
	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, 120)

	if !m.Game().State().Frozen {
		t.Error("game should finish without a store")
	}
}

func TestModelSignStaysAfterTap(t *testing.T) {
	m := newPackModel(t, signPack, nil)
	m = step(m, tea.KeyMsg{Type: tea.KeySpace})

	m = step(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Game().State().Message; got != "read me slowly" {
		t.Fatalf("Message = %q, expected the sign text", got)
	}

	m = ticks(m, 60)
	s := m.Game().State()
	if s.Message != "read me slowly" {
		t.Errorf("Message after 1s = %q, expected the sign to stay", s.Message)
	}
	if s.Player.RightPressed {
		t.Error("right should be released even though the sign stays")
	}

	// A tap made while reading dismisses the sign once it is released.
	m = step(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = ticks(m, 15)
	if m.Game().State().Paused() {
		t.Error("releasing a key pressed during the sign should dismiss it")
	}
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(m, tea.KeyMsg{Type: tea.KeySpace})

	m = step(m, runeKey('p'))
	if m.Game().State().Message != game.DefaultMessages().Pause {
		t.Errorf("Message = %q, expected the pause message", m.Game().State().Message)
	}

	before := m.Game().State().Time
	m = ticks(m, 10)
	if m.Game().State().Time != before {
		t.Error("time should not pass while paused")
	}

	m = step(m, runeKey('p'))
	if m.Game().State().Paused() {
		t.Error("pause key should unpause")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = step(m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(m, tea.WindowSizeMsg{Width: 100, Height: 14})

	view := m.View()
	if !strings.Contains(view, "(oo)") {
		t.Errorf("View() should draw the player:\n%s", view)
	}
	if !strings.Contains(view, "pause") {
		t.Errorf("View() should end with the key help:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}
