package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// MotionKind selects how segment visuals chase their logical cell.
type MotionKind uint8

const (
	// MotionSmooth closes a fixed fraction of the gap each frame.
	MotionSmooth MotionKind = iota
	// MotionLinear moves at constant speed.
	MotionLinear
)

// String returns the motion kind name.
func (k MotionKind) String() string {
	if k == MotionLinear {
		return "linear"
	}
	return "smooth"
}

// ParseMotionKind parses "smooth" or "linear".
func ParseMotionKind(s string) (MotionKind, bool) {
	switch s {
	case "smooth", "":
		return MotionSmooth, true
	case "linear":
		return MotionLinear, true
	}
	return MotionSmooth, false
}

// Motion configures visual interpolation.
type Motion struct {
	Kind MotionKind
	// Rate is the smoothing factor per second for MotionSmooth.
	Rate float64
	// Speed is world units per second for MotionLinear.
	Speed float64
}

// DefaultMotion returns smooth motion with a rate of 15.
func DefaultMotion() Motion {
	return Motion{Kind: MotionSmooth, Rate: 15, Speed: 8}
}

// Advance moves pos toward target for one frame.
func (m Motion) Advance(pos, target mgl64.Vec3, dt time.Duration) mgl64.Vec3 {
	secs := dt.Seconds()
	if secs <= 0 {
		return pos
	}
	switch m.Kind {
	case MotionLinear:
		return moveTowards(pos, target, m.Speed*secs)
	default:
		t := mgl64.Clamp(secs*m.Rate, 0, 1)
		return pos.Add(target.Sub(pos).Mul(t))
	}
}

func moveTowards(pos, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return pos.Add(d.Mul(maxDelta / dist))
}

// Segment is the visual state of one bus cell.
type Segment struct {
	Position mgl64.Vec3
	Heading  Dir
	Scale    float64
	// Lift is an extra height applied on top of the cell position.
	Lift float64
}

// Angle returns the segment yaw in degrees.
func (s *Segment) Angle() float64 {
	return s.Heading.Angle()
}

// Headings derives per-cell orientation from a cell sequence. The head faces
// away from the second cell and every other cell faces its predecessor.
// A single-cell sequence keeps fallback.
func Headings(cells []Cell, fallback Dir) []Dir {
	out := make([]Dir, len(cells))
	if len(cells) < 2 {
		for i := range out {
			out[i] = fallback
		}
		return out
	}
	if d, ok := DirFromDelta(cells[0].Sub(cells[1])); ok {
		out[0] = d
	} else {
		out[0] = fallback
	}
	for i := 1; i < len(cells); i++ {
		if d, ok := DirFromDelta(cells[i-1].Sub(cells[i])); ok {
			out[i] = d
		} else {
			out[i] = out[i-1]
		}
	}
	return out
}
