package levels

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels/formats"
)

// fixturePack is a three-level 5x3 pack. The temporary wall "#1" lives in
// levels 1-2, the spiny ">1" in levels 1-2 and ">2" replaces it in level 3.
func fixturePack() formats.Pack {
	ruler := Ruler(5)
	return formats.Pack{
		ID:     "fixture",
		Title:  "Fixture",
		Width:  5,
		Height: 3,
		Levels: []formats.Level{
			{
				Name: "one",
				Rows: []string{
					ruler,
					".LD  #1  ##.",
					".##  >1    .",
					".##      RD.",
					ruler,
				},
			},
			{
				Name: "two",
				Rows: []string{
					ruler,
					".LD  #1  ##.",
					".##  >1  S0.",
					".##      RD.",
					ruler,
				},
				Signs: []string{"read me"},
			},
			{
				Name: "three",
				Rows: []string{
					ruler,
					".LD      ##.",
					".##  >2  vv.",
					".##RD      .",
					ruler,
				},
			},
		},
	}
}

func mustParse(t *testing.T, p formats.Pack) *Set {
	t.Helper()
	set, err := Parse(p)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return set
}

func TestSetLevelRange(t *testing.T) {
	set := mustParse(t, fixturePack())

	if set.MinLevel() != 1 {
		t.Errorf("MinLevel() = %d, expected 1", set.MinLevel())
	}
	if set.MaxLevel() != 3 {
		t.Errorf("MaxLevel() = %d, expected 3", set.MaxLevel())
	}
	if set.Name(2) != "two" {
		t.Errorf("Name(2) = %q, expected 'two'", set.Name(2))
	}
	if set.Name(4) != "" {
		t.Errorf("Name(4) = %q, expected empty", set.Name(4))
	}
}

func TestCellKindAt(t *testing.T) {
	set := mustParse(t, fixturePack())

	tests := []struct {
		name     string
		level    int
		pos      core.Pos
		expected CellKind
	}{
		{"left door", 1, core.P(0, 0), CellKind{Kind: KindLeftDoor}},
		{"right door", 1, core.P(4, 2), CellKind{Kind: KindRightDoor}},
		{"floor", 1, core.P(1, 0), Floor},
		{"permanent wall", 1, core.P(4, 0), CellKind{Kind: KindWall}},
		{"temporary wall", 2, core.P(2, 0), CellKind{Kind: KindWall}},
		{"temporary wall gone", 3, core.P(2, 0), Floor},
		{"spiny spawn", 1, core.P(2, 1), CellKind{Kind: KindSpiny, Dir: core.DirRight}},
		{"immortal-style spiny", 3, core.P(4, 1), CellKind{Kind: KindSpiny, Dir: core.DirDown}},
		{"sign", 2, core.P(4, 1), CellKind{Kind: KindSign, Text: "read me"}},
		{"out of range left", 1, core.P(-1, 0), Floor},
		{"out of range below", 1, core.P(0, 3), Floor},
		{"level before first", 0, core.P(0, 0), Floor},
		{"level after last", 4, core.P(0, 0), Floor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := set.CellKindAt(tc.level, tc.pos); got != tc.expected {
				t.Errorf("CellKindAt(%d, %v) = %+v, expected %+v", tc.level, tc.pos, got, tc.expected)
			}
		})
	}
}

func TestCellKindBlocks(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected bool
	}{
		{KindFloor, false},
		{KindLeftDoor, true},
		{KindRightDoor, true},
		{KindSign, true},
		{KindSpiny, false},
		{KindWall, true},
	}

	for _, tc := range tests {
		if got := (CellKind{Kind: tc.kind}).Blocks(); got != tc.expected {
			t.Errorf("CellKind{%v}.Blocks() = %v, expected %v", tc.kind, got, tc.expected)
		}
	}
}

func TestDoorsPerLevel(t *testing.T) {
	set := mustParse(t, fixturePack())

	left, right := set.Doors(1)
	if left != core.P(0, 0) || right != core.P(4, 2) {
		t.Errorf("Doors(1) = %v, %v, expected (0,0), (4,2)", left, right)
	}
	left, right = set.Doors(3)
	if left != core.P(0, 0) || right != core.P(1, 2) {
		t.Errorf("Doors(3) = %v, %v, expected (0,0), (1,2)", left, right)
	}
}

func TestLifetimeAt(t *testing.T) {
	set := mustParse(t, fixturePack())

	tests := []struct {
		name     string
		level    int
		pos      core.Pos
		expected Lifetime
		ok       bool
	}{
		{"wall seen from first level", 1, core.P(2, 0), Lifetime{Min: 1, Max: 2}, true},
		{"wall seen from second level", 2, core.P(2, 0), Lifetime{Min: 1, Max: 2}, true},
		{"tag distinguishes consecutive spinies", 2, core.P(2, 1), Lifetime{Min: 1, Max: 2}, true},
		{"replacement spiny", 3, core.P(2, 1), Lifetime{Min: 3, Max: 3}, true},
		{"permanent wall is no entity", 1, core.P(4, 0), Lifetime{}, false},
		{"floor is no entity", 1, core.P(1, 1), Lifetime{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := set.LifetimeAt(tc.level, tc.pos)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("LifetimeAt(%d, %v) = %v, %v, expected %v, %v", tc.level, tc.pos, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestEntities(t *testing.T) {
	set := mustParse(t, fixturePack())

	expected := []Entity{
		{Kind: EntityWall, Pos: core.P(2, 0), Lifetime: Lifetime{Min: 1, Max: 2}},
		{Kind: EntitySpiny, Pos: core.P(2, 1), Dir: core.DirRight, Lifetime: Lifetime{Min: 1, Max: 2}},
	}
	if got := set.Entities(1); !reflect.DeepEqual(got, expected) {
		t.Errorf("Entities(1) = %+v, expected %+v", got, expected)
	}

	// Every entity is alive at the level it was listed for
	for n := set.MinLevel(); n <= set.MaxLevel(); n++ {
		for _, e := range set.Entities(n) {
			if !e.Lifetime.Contains(n) {
				t.Errorf("Entities(%d) lists %+v whose lifetime excludes the level", n, e)
			}
		}
	}

	if got := set.Entities(0); got != nil {
		t.Errorf("Entities(0) = %+v, expected nil", got)
	}
}

func TestLifetime(t *testing.T) {
	lt := Lifetime{Min: 2, Max: 4}

	for level, expected := range map[int]bool{1: false, 2: true, 3: true, 4: true, 5: false} {
		if got := lt.Contains(level); got != expected {
			t.Errorf("Contains(%d) = %v, expected %v", level, got, expected)
		}
	}
	if lt.String() != "2-4" {
		t.Errorf("String() = %q, expected '2-4'", lt.String())
	}
	if (Lifetime{Min: 3, Max: 3}).String() != "3" {
		t.Errorf("String() of single level = %q, expected '3'", Lifetime{Min: 3, Max: 3}.String())
	}
}
