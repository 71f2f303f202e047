package builtin

import (
	"testing"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
	"github.com/vovakirdan/room-twice/internal/registry"
)

func TestClassicParses(t *testing.T) {
	set, err := Classic()
	if err != nil {
		t.Fatalf("Classic() error: %v", err)
	}

	if set.ID != ClassicID {
		t.Errorf("ID = %q, expected %q", set.ID, ClassicID)
	}
	if set.MaxLevel() < 2 {
		t.Errorf("MaxLevel() = %d, expected several levels", set.MaxLevel())
	}
	if set.Intro == "" || set.Ending == "" {
		t.Error("classic pack should have intro and ending messages")
	}
}

func TestClassicLevelsAreEnclosed(t *testing.T) {
	set, err := Classic()
	if err != nil {
		t.Fatal(err)
	}

	// Every border cell is a wall or a door, so nothing walks off the grid
	for n := set.MinLevel(); n <= set.MaxLevel(); n++ {
		for x := 0; x < set.Width; x++ {
			for _, y := range []int{0, set.Height - 1} {
				if k := set.CellKindAt(n, core.P(x, y)); !k.Blocks() {
					t.Errorf("level %d: border cell (%d,%d) is %v", n, x, y, k.Kind)
				}
			}
		}
		for y := 0; y < set.Height; y++ {
			for _, x := range []int{0, set.Width - 1} {
				if k := set.CellKindAt(n, core.P(x, y)); !k.Blocks() {
					t.Errorf("level %d: border cell (%d,%d) is %v", n, x, y, k.Kind)
				}
			}
		}
	}
}

func TestClassicCarriesEntitiesAcrossLevels(t *testing.T) {
	set, err := Classic()
	if err != nil {
		t.Fatal(err)
	}

	lt, ok := set.LifetimeAt(1, core.P(4, 1))
	if !ok || lt != (levels.Lifetime{Min: 1, Max: 2}) {
		t.Errorf("LifetimeAt(1, (4,1)) = %v, %v, expected 1-2", lt, ok)
	}
}

func TestClassicIsRegistered(t *testing.T) {
	if !registry.Exists(ClassicID) {
		t.Fatalf("registry should contain %q", ClassicID)
	}

	set, err := registry.Load(ClassicID)
	if err != nil {
		t.Fatalf("registry.Load() error: %v", err)
	}
	if set.Title == "" {
		t.Error("registered pack should have a title")
	}
}
