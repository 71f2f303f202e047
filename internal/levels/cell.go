// Package levels turns level packs into the pure per-level grid queries the
// simulation consumes. It depends on core; the game depends on it only
// through a small interface.
package levels

import "github.com/vovakirdan/room-twice/internal/core"

// Kind classifies a grid cell.
type Kind uint8

const (
	KindFloor Kind = iota
	KindLeftDoor
	KindRightDoor
	KindSign
	KindSpiny
	KindWall
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "Floor"
	case KindLeftDoor:
		return "LeftDoor"
	case KindRightDoor:
		return "RightDoor"
	case KindSign:
		return "Sign"
	case KindSpiny:
		return "Spiny"
	case KindWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// CellKind is the static classification of one cell in one level.
// Text is set for signs, Dir for spiny spawns.
type CellKind struct {
	Kind Kind
	Text string
	Dir  core.Dir
}

// Floor is the classification of empty and out-of-range cells.
var Floor = CellKind{Kind: KindFloor}

// Blocks reports whether a spiny bounces off the cell.
func (c CellKind) Blocks() bool {
	switch c.Kind {
	case KindLeftDoor, KindRightDoor, KindSign, KindWall:
		return true
	default:
		return false
	}
}

// EntityKind distinguishes the live entities a level spawns.
type EntityKind uint8

const (
	EntitySpiny EntityKind = iota
	EntityWall
)

// Entity is a spiny spawn or a temporary wall together with the range of
// levels it lives in. Permanent walls are plain cells, not entities.
type Entity struct {
	Kind     EntityKind
	Pos      core.Pos
	Dir      core.Dir // Spinies only
	Lifetime Lifetime
}
