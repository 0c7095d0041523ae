// Package core provides the grid, bus movement, and boarding logic for the
// bus puzzle. This package is UI-agnostic and deterministic: time only
// advances through the dt passed to Update, and input arrives as pointer
// events in screen space.
package core

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/busjam/internal/core"
)

// Cell represents a discrete grid coordinate.
// X increases to the right, Y increases "up" the board (world +Z).
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the component-wise difference c - other.
func (c Cell) Sub(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale multiplies both components by n.
func (c Cell) Scale(n int) Cell {
	return Cell{X: c.X * n, Y: c.Y * n}
}

// IsZero reports whether c is (0,0).
func (c Cell) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	return platformcore.Abs(c.X-other.X) + platformcore.Abs(c.Y-other.Y)
}

// Dir is one of the four axis-aligned grid directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit cell offset for this direction.
// Up is +Y, matching the board's world +Z axis.
func (d Dir) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{0, 1}
	case DirRight:
		return Cell{1, 0}
	case DirDown:
		return Cell{0, -1}
	case DirLeft:
		return Cell{-1, 0}
	default:
		return Cell{}
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Angle returns the yaw in degrees: Up 0, Right 90, Down 180, Left 270.
func (d Dir) Angle() float64 {
	return float64(d%4) * 90
}

// DirFromDelta returns the direction for a unit offset.
// ok is false for anything that is not grid-adjacent.
func DirFromDelta(delta Cell) (d Dir, ok bool) {
	switch delta {
	case Cell{0, 1}:
		return DirUp, true
	case Cell{1, 0}:
		return DirRight, true
	case Cell{0, -1}:
		return DirDown, true
	case Cell{-1, 0}:
		return DirLeft, true
	}
	return DirUp, false
}

// DirFromAngle snaps a yaw in degrees to the nearest quarter turn.
func DirFromAngle(deg float64) Dir {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	step := int(math.Round(deg/90)) % 4
	return Dir(step)
}
