package game

import (
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// MovingSpiny is an enemy that walks in a straight line and bounces.
//
// All spinies share State.SpiniesMovingSince, so they are grid-aligned on
// the same tick and equally far into their current step. Pos is the cell
// the spiny is leaving. A disabled spiny is frozen in place and ignored
// by collisions and bounces.
type MovingSpiny struct {
	Pos      core.Pos
	Dir      core.Dir
	Lifetime levels.Lifetime
	Enabled  bool
}

// FPos samples the spiny's drawn position at t.
func (s MovingSpiny) FPos(anchor, t core.Seconds, speed float64) core.FPos {
	if !s.Enabled {
		return s.Pos.F()
	}
	return core.LinearMotion(s.Pos, core.FSpeed(s.Dir, speed), anchor, t)
}

// Occupy resolves duplicate occupancy. Spinies claim cells in order,
// enabled ones before disabled ones; a spiny whose cell is already claimed
// is disabled, every other spiny is enabled. Afterwards at most one
// enabled spiny occupies any cell.
func Occupy(spinies []MovingSpiny) {
	order := make([]int, 0, len(spinies))
	for i := range spinies {
		if spinies[i].Enabled {
			order = append(order, i)
		}
	}
	for i := range spinies {
		if !spinies[i].Enabled {
			order = append(order, i)
		}
	}

	claimed := make(map[core.Pos]bool, len(spinies))
	for _, i := range order {
		s := &spinies[i]
		if claimed[s.Pos] {
			s.Enabled = false
			continue
		}
		claimed[s.Pos] = true
		s.Enabled = true
	}
}

type srcDir struct {
	pos core.Pos
	dir core.Dir
}

// BounceDecisions reports, for every spiny, whether it reverses this tick.
// dt is the time since the shared step anchor and half the point at which
// a spiny commits to entering the next cell; blocked reports walls, doors
// and signs.
//
// All decisions are computed from one snapshot of the enabled spinies, in
// this precedence:
//   - obstacle ahead, once past the half step
//   - head-on with a spiny leaving the cell ahead the opposite way, at dt == 0
//   - two or more spinies heading into the same cell, once past the half step
//   - the spiny ahead moves the same way and itself bounces
//
// Disabled spinies never bounce.
func BounceDecisions(spinies []MovingSpiny, dt, half core.Seconds, blocked func(core.Pos) bool) []bool {
	bySource := make(map[core.Pos]core.Dir, len(spinies))
	byDestination := make(map[core.Pos]int, len(spinies))
	for _, s := range spinies {
		if !s.Enabled {
			continue
		}
		bySource[s.Pos] = s.Dir
		byDestination[s.Pos.Step(s.Dir)]++
	}

	memo := make(map[srcDir]bool)
	var shouldBounce func(src core.Pos, dir core.Dir) bool
	shouldBounce = func(src core.Pos, dir core.Dir) bool {
		key := srcDir{src, dir}
		if v, ok := memo[key]; ok {
			return v
		}
		memo[key] = false

		ahead := src.Step(dir)
		aheadDir, occupied := bySource[ahead]

		var bounce bool
		switch {
		case dt > half && blocked(ahead):
			bounce = true
		case dt == 0 && occupied && aheadDir == dir.Opposite():
			bounce = true
		case dt > half && byDestination[ahead] > 1:
			bounce = true
		case occupied && aheadDir == dir:
			bounce = shouldBounce(ahead, dir)
		}

		memo[key] = bounce
		return bounce
	}

	out := make([]bool, len(spinies))
	for i, s := range spinies {
		if s.Enabled {
			out[i] = shouldBounce(s.Pos, s.Dir)
		}
	}
	return out
}

// ApplyBounces reverses every flagged spiny. Before the half step it stays
// in its cell; after it, it completes the step first, so the drawn position
// turns around without jumping.
func ApplyBounces(spinies []MovingSpiny, bounces []bool, dt, half core.Seconds) {
	for i := range spinies {
		if !bounces[i] {
			continue
		}
		s := &spinies[i]
		if dt > half {
			s.Pos = s.Pos.Step(s.Dir)
		}
		s.Dir = s.Dir.Opposite()
	}
}

// updateSpinies advances the swarm to the current time.
func (g *Game) updateSpinies() {
	s := &g.state
	t := s.Time

	if t >= s.SpiniesMovingSince+g.cfg.SpinyMoveDuration() {
		s.SpiniesMovingSince = t
		for i := range s.Spinies {
			if s.Spinies[i].Enabled {
				s.Spinies[i].Pos = s.Spinies[i].Pos.Step(s.Spinies[i].Dir)
			}
		}
		Occupy(s.Spinies)
	}

	g.bounceSpinies(s, t-s.SpiniesMovingSince)
}

// bounceSpinies runs one bounce pass over s at the given step progress.
func (g *Game) bounceSpinies(s *State, dt core.Seconds) {
	blocked := func(pos core.Pos) bool {
		return g.blocks(s, pos)
	}
	decisions := BounceDecisions(s.Spinies, dt, g.cfg.SpinyHalfMoveDuration(), blocked)
	ApplyBounces(s.Spinies, decisions, dt, g.cfg.SpinyHalfMoveDuration())
}

// blocks reports whether a spiny bounces off the cell at pos.
func (g *Game) blocks(s *State, pos core.Pos) bool {
	return g.cellKindAt(s, pos).Blocks()
}

// cellKindAt classifies a cell of the current level, with live temporary
// walls counting as walls.
func (g *Game) cellKindAt(s *State, pos core.Pos) levels.CellKind {
	for _, w := range s.TemporaryWalls {
		if w.Pos == pos && w.Lifetime.Contains(s.LevelNumber) {
			return levels.CellKind{Kind: levels.KindWall}
		}
	}
	return g.levels.CellKindAt(s.LevelNumber, pos)
}
