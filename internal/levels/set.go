package levels

import "github.com/vovakirdan/room-twice/internal/core"

// Set is a validated, immutable level pack. Level numbers run from
// MinLevel to MaxLevel; each level is a fixed Width x Height grid of
// two-character cell codes.
type Set struct {
	ID     string
	Title  string
	Intro  string
	Ending string
	Width  int
	Height int

	levels []level
}

type level struct {
	name      string
	codes     [][]string // [y][x]
	signs     []string
	leftDoor  core.Pos
	rightDoor core.Pos
}

// Size returns the grid dimensions shared by every level.
func (s *Set) Size() (width, height int) {
	return s.Width, s.Height
}

// MinLevel returns the first level number.
func (s *Set) MinLevel() int {
	return 1
}

// MaxLevel returns the last level number.
func (s *Set) MaxLevel() int {
	return len(s.levels)
}

// Len returns the number of levels.
func (s *Set) Len() int {
	return len(s.levels)
}

func (s *Set) level(n int) (*level, bool) {
	if n < s.MinLevel() || n > s.MaxLevel() {
		return nil, false
	}
	return &s.levels[n-1], true
}

// Name returns the display name of a level, or "" if it has none.
func (s *Set) Name(n int) string {
	if lvl, ok := s.level(n); ok {
		return lvl.name
	}
	return ""
}

// InBounds reports whether pos lies inside the grid.
func (s *Set) InBounds(pos core.Pos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < s.Width && pos.Y < s.Height
}

// code returns the raw two-character code, or floor outside the grid.
func (s *Set) code(n int, pos core.Pos) string {
	lvl, ok := s.level(n)
	if !ok || !s.InBounds(pos) {
		return codeFloor
	}
	return lvl.codes[pos.Y][pos.X]
}

// CellKindAt classifies a cell. Positions outside the grid and levels
// outside the pack are Floor.
func (s *Set) CellKindAt(n int, pos core.Pos) CellKind {
	code := s.code(n, pos)
	switch {
	case code == codeFloor:
		return Floor
	case code == codeLeftDoor:
		return CellKind{Kind: KindLeftDoor}
	case code == codeRightDoor:
		return CellKind{Kind: KindRightDoor}
	case code[0] == 'S':
		lvl, _ := s.level(n)
		return CellKind{Kind: KindSign, Text: lvl.signs[code[1]-'0']}
	case code[0] == '#':
		return CellKind{Kind: KindWall}
	default:
		dir, _ := spinyDir(code[0])
		return CellKind{Kind: KindSpiny, Dir: dir}
	}
}

// Doors returns the left and right door positions of a level.
func (s *Set) Doors(n int) (left, right core.Pos) {
	if lvl, ok := s.level(n); ok {
		return lvl.leftDoor, lvl.rightDoor
	}
	return core.Pos{}, core.Pos{}
}

// LifetimeAt returns the lifetime of the entity whose code sits at pos in
// level n: the maximal contiguous run of levels holding the identical code
// at that position. ok is false for cells that are not entities.
func (s *Set) LifetimeAt(n int, pos core.Pos) (Lifetime, bool) {
	code := s.code(n, pos)
	if !isEntityCode(code) {
		return Lifetime{}, false
	}

	lt := Lifetime{Min: n, Max: n}
	for lt.Min-1 >= s.MinLevel() && s.code(lt.Min-1, pos) == code {
		lt.Min--
	}
	for lt.Max+1 <= s.MaxLevel() && s.code(lt.Max+1, pos) == code {
		lt.Max++
	}
	return lt, true
}

// Entities returns the spinies and temporary walls alive at level n, in
// row-major order.
func (s *Set) Entities(n int) []Entity {
	lvl, ok := s.level(n)
	if !ok {
		return nil
	}

	var out []Entity
	for y, row := range lvl.codes {
		for x, code := range row {
			if !isEntityCode(code) {
				continue
			}
			pos := core.P(x, y)
			lt, _ := s.LifetimeAt(n, pos)
			e := Entity{Pos: pos, Lifetime: lt}
			if code[0] == '#' {
				e.Kind = EntityWall
			} else {
				e.Kind = EntitySpiny
				e.Dir, _ = spinyDir(code[0])
			}
			out = append(out, e)
		}
	}
	return out
}
