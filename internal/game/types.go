// Package game implements the deterministic room simulation: the player and
// spiny state machines, level transitions and the pause-aware dispatcher.
// It contains no Bubble Tea code; the platform feeds it RawInputEvents and
// renders State.
package game

import (
	"fmt"

	"github.com/vovakirdan/room-twice/internal/core"
	"github.com/vovakirdan/room-twice/internal/levels"
)

// Levels is the static level table the simulation queries. *levels.Set
// implements it; tests inject small fixtures.
type Levels interface {
	Size() (width, height int)
	MinLevel() int
	MaxLevel() int
	CellKindAt(level int, pos core.Pos) levels.CellKind
	Doors(level int) (left, right core.Pos)
	Entities(level int) []levels.Entity
}

// Messages holds the pack title shown in the HUD and the texts the game
// shows while paused.
type Messages struct {
	Title  string
	Intro  string
	Pause  string
	Ending string
}

// DefaultMessages returns the texts used when a pack does not provide its own.
func DefaultMessages() Messages {
	return Messages{
		Intro:  "I've Seen This Room Twice Already\n\npress any key to begin",
		Pause:  "** PAUSED **\n\npress any key to continue",
		Ending: "The end.\n\nThanks for playing!",
	}
}

// OptDir is an optional direction.
type OptDir struct {
	Dir core.Dir
	OK  bool
}

// SomeDir wraps a direction.
func SomeDir(d core.Dir) OptDir {
	return OptDir{Dir: d, OK: true}
}

// Is reports whether o holds exactly d.
func (o OptDir) Is(d core.Dir) bool {
	return o.OK && o.Dir == d
}

// Motion is the active variant of an AnimatedPos.
type Motion uint8

const (
	MotionIdle Motion = iota
	MotionMovingSince
	MotionMovingOutSince
	MotionMovingInUntil
)

// String returns a human-readable name for the motion.
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "Idle"
	case MotionMovingSince:
		return "MovingSince"
	case MotionMovingOutSince:
		return "MovingOutSince"
	case MotionMovingInUntil:
		return "MovingInUntil"
	default:
		return "Unknown"
	}
}

// AnimatedPos is the player's position state machine.
//
//	Idle(Pos)
//	MovingSince(Pos, Dir, T)   Pos is the departed cell until the move ends
//	MovingOutSince(Src, Dst, T)
//	MovingInUntil(Src, Dst, T) T is the arrival time
//
// The door used is derived from Dst < Src.
type AnimatedPos struct {
	Motion Motion
	Pos    core.Pos
	Dir    core.Dir
	Src    int
	Dst    int
	T      core.Seconds
}

// Idle returns a resting position.
func Idle(pos core.Pos) AnimatedPos {
	return AnimatedPos{Motion: MotionIdle, Pos: pos}
}

// MovingSince returns a one-cell move from pos started at t0.
func MovingSince(pos core.Pos, dir core.Dir, t0 core.Seconds) AnimatedPos {
	return AnimatedPos{Motion: MotionMovingSince, Pos: pos, Dir: dir, T: t0}
}

// MovingOutSince returns a walk out through a door started at t0.
func MovingOutSince(src, dst int, t0 core.Seconds) AnimatedPos {
	return AnimatedPos{Motion: MotionMovingOutSince, Src: src, Dst: dst, T: t0}
}

// MovingInUntil returns a walk in through a door ending at tDst.
func MovingInUntil(src, dst int, tDst core.Seconds) AnimatedPos {
	return AnimatedPos{Motion: MotionMovingInUntil, Src: src, Dst: dst, T: tDst}
}

func (a AnimatedPos) String() string {
	switch a.Motion {
	case MotionIdle:
		return fmt.Sprintf("Idle%v", a.Pos)
	case MotionMovingSince:
		return fmt.Sprintf("MovingSince(%v, %v, %.3f)", a.Pos, a.Dir, a.T)
	default:
		return fmt.Sprintf("%v(%d, %d, %.3f)", a.Motion, a.Src, a.Dst, a.T)
	}
}

// ActionKind identifies a discrete gameplay event.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionReadSign
	ActionDie
	ActionPreviousLevel
	ActionNextLevel
	ActionTransitionLevel
	ActionPause
	ActionUnpause
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionReadSign:
		return "ReadSign"
	case ActionDie:
		return "Die"
	case ActionPreviousLevel:
		return "PreviousLevel"
	case ActionNextLevel:
		return "NextLevel"
	case ActionTransitionLevel:
		return "TransitionLevel"
	case ActionPause:
		return "Pause"
	case ActionUnpause:
		return "Unpause"
	default:
		return "Unknown"
	}
}

// Action is produced by the dispatcher and executed on State.
// Only the fields of the active kind are set.
type Action struct {
	Kind ActionKind
	Pos  core.Pos  // Move
	Dir  core.Dir  // Move
	Text string    // ReadSign
	FPos core.FPos // Die
	Src  int       // TransitionLevel
	Dst  int       // TransitionLevel
}

// NoAction is the zero Action.
var NoAction = Action{}

// Move returns a one-cell move action.
func Move(pos core.Pos, dir core.Dir) Action {
	return Action{Kind: ActionMove, Pos: pos, Dir: dir}
}

// ReadSign returns a sign-reading action.
func ReadSign(text string) Action {
	return Action{Kind: ActionReadSign, Text: text}
}

// Die returns a death action at the player's sampled position.
func Die(fpos core.FPos) Action {
	return Action{Kind: ActionDie, FPos: fpos}
}

// TransitionLevel returns a level change action.
func TransitionLevel(src, dst int) Action {
	return Action{Kind: ActionTransitionLevel, Src: src, Dst: dst}
}

// None reports whether the action is empty.
func (a Action) None() bool {
	return a.Kind == ActionNone
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return fmt.Sprintf("Move(%v, %v)", a.Pos, a.Dir)
	case ActionReadSign:
		return fmt.Sprintf("ReadSign(%q)", a.Text)
	case ActionDie:
		return fmt.Sprintf("Die(%.2f, %.2f)", a.FPos.X, a.FPos.Y)
	case ActionTransitionLevel:
		return fmt.Sprintf("TransitionLevel(%d, %d)", a.Src, a.Dst)
	default:
		return a.Kind.String()
	}
}
