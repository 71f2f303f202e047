package game

import (
	"testing"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
	"github.com/vovakirdan/room-twice/internal/levels/builtin"
)

func classicSet(t *testing.T) *levels.Set {
	t.Helper()
	set, err := builtin.Classic()
	if err != nil {
		t.Fatalf("builtin.Classic() error: %v", err)
	}
	return set
}

// script returns a reproducible stream of mostly clock ticks mixed with
// key presses, releases and the odd pause.
func script(n int) []core.RawInputEvent {
	events := make([]core.RawInputEvent, 0, n)
	x := uint32(1)
	for i := 0; i < n; i++ {
		x = x*1664525 + 1013904223
		r := (x >> 24) % 32
		switch {
		case r < 4:
			events = append(events, core.Press(core.Dirs[r]))
		case r < 8:
			events = append(events, core.Release(core.Dirs[r-4]))
		case r == 8:
			events = append(events, core.RawInputEvent{Kind: core.InputPressPause})
		case r == 9:
			events = append(events, core.RawInputEvent{Kind: core.InputPressAnyKey})
		default:
			events = append(events, core.TimePasses(tick))
		}
	}
	return events
}

func checkInvariants(t *testing.T, g *Game, step int) {
	t.Helper()
	s := g.State()

	if s.LevelNumber < g.Levels().MinLevel() || s.LevelNumber > g.Levels().MaxLevel() {
		t.Fatalf("step %d: level %d out of range", step, s.LevelNumber)
	}

	for _, sp := range s.Spinies {
		if !sp.Lifetime.Contains(s.LevelNumber) {
			t.Fatalf("step %d: spiny at %v lives %v, current level %d", step, sp.Pos, sp.Lifetime, s.LevelNumber)
		}
	}
	for _, w := range s.TemporaryWalls {
		if !w.Lifetime.Contains(s.LevelNumber) {
			t.Fatalf("step %d: wall at %v lives %v, current level %d", step, w.Pos, w.Lifetime, s.LevelNumber)
		}
	}

	// On a step boundary no two enabled spinies share a cell.
	if s.Time == s.SpiniesMovingSince {
		seen := make(map[core.Pos]bool)
		for _, sp := range s.Spinies {
			if !sp.Enabled {
				continue
			}
			if seen[sp.Pos] {
				t.Fatalf("step %d: two enabled spinies at %v", step, sp.Pos)
			}
			seen[sp.Pos] = true
		}
	}

	for i := 1; i < len(s.Corpses); i++ {
		if s.Corpses[i].T0 < s.Corpses[i-1].T0 {
			t.Fatalf("step %d: corpses out of order", step)
		}
	}

	if s.HasNextLevel != (s.Player.Pos.Motion == MotionMovingOutSince) {
		t.Fatalf("step %d: next level %v while player is %v", step, s.HasNextLevel, s.Player.Pos)
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	g := NewFromSet(classicSet(t), testConfig())

	for i, ev := range script(20000) {
		g.Update(ev)
		checkInvariants(t, g, i)
	}
}

func TestDeterministicReplay(t *testing.T) {
	set := classicSet(t)
	events := script(5000)

	play := func() []uint64 {
		g := NewFromSet(set, testConfig())
		hashes := make([]uint64, 0, len(events))
		for _, ev := range events {
			g.Update(ev)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replays diverge at event %d", i)
		}
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newGame(t, emptyRoom)
	before := g.Snapshot()

	g.Update(core.Press(core.DirRight))
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("Hash() should change after the player starts moving")
	}
	if after.Buffered != -1 || after.MostRecent != int(core.DirRight) || after.KeysHeld != 1<<3 {
		t.Errorf("snapshot keys = %d/%d/%d, expected -1/%d/8", after.Buffered, after.MostRecent, after.KeysHeld, core.DirRight)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewFromSet(newSet(t, transitionOne, transitionTwo), testConfig())
	c := g.State().Clone()

	c.Spinies[0].Pos = core.P(9, 9)
	c.TemporaryWalls[0].Pos = core.P(9, 9)

	if g.State().Spinies[0].Pos == core.P(9, 9) || g.State().TemporaryWalls[0].Pos == core.P(9, 9) {
		t.Error("Clone() shares slices with the game state")
	}
}
