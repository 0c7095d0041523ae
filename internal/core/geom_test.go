package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge is exclusive", 30, 15, false},
		{"bottom edge is exclusive", 15, 25, false},
		{"left of rect", 9, 15, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectGrow(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want Rect
	}{
		{"frame", 1, NewRect(3, 4, 8, 6)},
		{"same", 0, NewRect(4, 5, 6, 4)},
		{"shrink", -1, NewRect(5, 6, 4, 2)},
		{"collapse", -3, NewRect(7, 8, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRect(4, 5, 6, 4).Grow(tc.n); got != tc.want {
				t.Errorf("Grow(%d) = %+v, expected %+v", tc.n, got, tc.want)
			}
		})
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 2, 40, 20)

	got := outer.CenteredIn(20, 10)
	if got != NewRect(10, 7, 20, 10) {
		t.Errorf("CenteredIn(20, 10) = %+v", got)
	}

	clipped := outer.CenteredIn(60, 30)
	if clipped != outer {
		t.Errorf("CenteredIn larger than outer = %+v, expected %+v", clipped, outer)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{3, 0, -1, 0}, // empty range clamps to lo
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
