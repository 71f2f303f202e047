package game

import (
	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// Player holds the key state and the position state machine.
type Player struct {
	UpPressed    bool
	LeftPressed  bool
	DownPressed  bool
	RightPressed bool

	// MostRecentDir favours the last key if several are held.
	MostRecentDir OptDir
	// BufferedDir is a tap which hasn't been honored yet.
	BufferedDir OptDir

	Pos AnimatedPos
}

// Held reports whether the key for d is down.
func (p *Player) Held(d core.Dir) bool {
	switch d {
	case core.DirUp:
		return p.UpPressed
	case core.DirLeft:
		return p.LeftPressed
	case core.DirDown:
		return p.DownPressed
	default:
		return p.RightPressed
	}
}

func (p *Player) setHeld(d core.Dir, held bool) {
	switch d {
	case core.DirUp:
		p.UpPressed = held
	case core.DirLeft:
		p.LeftPressed = held
	case core.DirDown:
		p.DownPressed = held
	default:
		p.RightPressed = held
	}
}

// Press records a key press. Only the rising edge buffers the direction,
// so auto-repeat presses do not queue extra moves.
func (p *Player) Press(d core.Dir) {
	if !p.Held(d) {
		p.BufferedDir = SomeDir(d)
	}
	p.setHeld(d, true)
	p.MostRecentDir = SomeDir(d)
}

// Release records a key release.
func (p *Player) Release(d core.Dir) {
	p.setHeld(d, false)
}

// initiateMove returns the action for trying to go in dir. Only an idle
// player can start anything.
func (g *Game) initiateMove(dir core.Dir) Action {
	s := &g.state
	if s.Player.Pos.Motion != MotionIdle {
		return NoAction
	}
	pos := s.Player.Pos.Pos

	switch g.cellKindAt(s, pos).Kind {
	case levels.KindLeftDoor:
		if dir == core.DirLeft {
			return Action{Kind: ActionPreviousLevel}
		}
	case levels.KindRightDoor:
		if dir == core.DirRight {
			return Action{Kind: ActionNextLevel}
		}
	}

	ahead := g.cellKindAt(s, pos.Step(dir))
	switch ahead.Kind {
	case levels.KindWall:
		return NoAction
	case levels.KindSign:
		return ReadSign(ahead.Text)
	default:
		return Move(pos, dir)
	}
}

// continueMoving picks the next move once the player is idle again:
// the buffered tap first, then the most recent held key, then any held key
// in Up, Left, Down, Right order.
func (g *Game) continueMoving() Action {
	p := &g.state.Player

	var candidates []core.Dir
	if p.BufferedDir.OK {
		candidates = append(candidates, p.BufferedDir.Dir)
	}
	if p.MostRecentDir.OK && p.Held(p.MostRecentDir.Dir) {
		candidates = append(candidates, p.MostRecentDir.Dir)
	}
	for _, d := range core.Dirs {
		if p.Held(d) {
			candidates = append(candidates, d)
		}
	}

	for _, d := range candidates {
		if a := g.initiateMove(d); !a.None() {
			return a
		}
	}
	return NoAction
}

// updatePlayer resolves time-dependent player states.
func (g *Game) updatePlayer() Action {
	s := &g.state
	t := s.Time
	moveDur := g.cfg.PlayerMoveDuration()
	pos := s.Player.Pos

	switch pos.Motion {
	case MotionMovingSince:
		if t >= pos.T+moveDur {
			s.Player.Pos = Idle(pos.Pos.Step(pos.Dir))
			return g.continueMoving()
		}

	case MotionMovingOutSince:
		// Wait for the swarm to be grid-aligned so no spiny is carried
		// across the level boundary mid-step.
		if t >= pos.T+moveDur && s.SpiniesMovingSince == t {
			s.Player.Pos = MovingInUntil(pos.Src, pos.Dst, t+moveDur)
			return TransitionLevel(pos.Src, pos.Dst)
		}

	case MotionMovingInUntil:
		if t >= pos.T {
			s.Player.Pos = Idle(g.arrivalDoor(pos.Src, pos.Dst))
			return g.continueMoving()
		}
	}

	return NoAction
}

// arrivalDoor is the door of dst the player enters through.
func (g *Game) arrivalDoor(src, dst int) core.Pos {
	left, right := g.levels.Doors(dst)
	if dst < src {
		return right
	}
	return left
}

// PlayerFPos samples the player's drawn position at t. Walking through a
// door moves the player off the grid with a small vertical drift.
func (g *Game) PlayerFPos(p AnimatedPos, t core.Seconds) core.FPos {
	speed := g.cfg.Player.Speed
	moveDur := g.cfg.PlayerMoveDuration()

	switch p.Motion {
	case MotionMovingSince:
		return core.LinearMotion(p.Pos, core.FSpeed(p.Dir, speed), p.T, t)

	case MotionMovingOutSince:
		left, right := g.levels.Doors(p.Src)
		if t > p.T+moveDur {
			t = p.T + moveDur
		}
		if p.Dst < p.Src {
			return core.LinearMotion(left, core.FPos{X: -speed, Y: 0.5 * speed}, p.T, t)
		}
		return core.LinearMotion(right, core.FPos{X: speed, Y: -0.5 * speed}, p.T, t)

	case MotionMovingInUntil:
		if t > p.T {
			t = p.T
		}
		door := g.arrivalDoor(p.Src, p.Dst)
		if p.Dst < p.Src {
			return core.LinearMotion(door, core.FPos{X: -speed, Y: 0.5 * speed}, p.T, t)
		}
		return core.LinearMotion(door, core.FPos{X: speed, Y: -0.5 * speed}, p.T, t)

	default:
		return p.Pos.F()
	}
}
