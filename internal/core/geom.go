// Package core provides the platform types shared by the terminal front end
// and the games: screen buffers, input frames, and small integer geometry.
// It has no Bubble Tea dependency so game logic stays testable.
package core

// Rect is an area of the screen in character cells. X and Y are the
// top-left corner; Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grow returns r extended by n cells on every side. A negative n shrinks
// it, never below zero size.
func (r Rect) Grow(n int) Rect {
	return NewRect(r.X-n, r.Y-n, max(r.W+2*n, 0), max(r.H+2*n, 0))
}

// CenteredIn returns a w x h rectangle centered inside r.
// Sizes larger than r are clipped to r.
func (r Rect) CenteredIn(w, h int) Rect {
	w = min(w, r.W)
	h = min(h, r.H)
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
