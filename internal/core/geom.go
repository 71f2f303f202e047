// Package core provides fundamental types and utilities for the room simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Seconds is simulation time. Logic only compares it against thresholds;
// continuous positions derived from it are for sampling only.
type Seconds = float64

// Dir is one of the four unit directions on the grid.
// The declaration order is also the tie-break order for held keys.
type Dir uint8

const (
	DirUp Dir = iota
	DirLeft
	DirDown
	DirRight
)

// Dirs lists all directions in tie-break order.
var Dirs = [4]Dir{DirUp, DirLeft, DirDown, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Pos is an integer grid coordinate.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the neighbouring position in the given direction.
func (p Pos) Step(d Dir) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// F converts the position to floating point.
func (p Pos) F() FPos {
	return FPos{X: float64(p.X), Y: float64(p.Y)}
}

// FPos is a floating point position, in cells. It exists for animation
// sampling and the player-vs-spiny overlap test, never for state transitions.
type FPos struct {
	X float64
	Y float64
}

// Add returns the sum of two positions.
func (p FPos) Add(o FPos) FPos {
	return FPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale multiplies both components by k.
func (p FPos) Scale(k float64) FPos {
	return FPos{X: p.X * k, Y: p.Y * k}
}

// FSpeed returns the velocity vector for moving in dir at the given scalar speed.
func FSpeed(d Dir, speed float64) FPos {
	dx, dy := d.Delta()
	return FPos{X: float64(dx) * speed, Y: float64(dy) * speed}
}

// LinearMotion returns pos + velocity*(t - t0).
func LinearMotion(pos Pos, velocity FPos, t0, t Seconds) FPos {
	return pos.F().Add(velocity.Scale(t - t0))
}

// FRect is an axis-aligned bounding box in cell units.
type FRect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// CellRect returns the rectangle of a one-cell sprite at pos, shrunk by
// margin on every side.
func CellRect(pos FPos, margin float64) FRect {
	return FRect{
		X: pos.X + margin,
		Y: pos.Y + margin,
		W: 1 - 2*margin,
		H: 1 - 2*margin,
	}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if the two rectangles overlap with positive area.
// Touching edges do not count.
func (r FRect) Intersects(other FRect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
