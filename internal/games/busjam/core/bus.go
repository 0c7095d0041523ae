package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// DragMode is the bus input state.
type DragMode uint8

const (
	Idle DragMode = iota
	DraggingHead
	DraggingTail
)

// String returns the drag mode name.
func (m DragMode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case DraggingHead:
		return "DraggingHead"
	case DraggingTail:
		return "DraggingTail"
	default:
		return "Unknown"
	}
}

// End identifies which end of a bus is grabbed.
type End uint8

const (
	EndHead End = iota
	EndTail
)

// DefaultStepInterval is the fixed step cadence while dragging.
const DefaultStepInterval = 60 * time.Millisecond

// collisionProbeLift raises the collision sphere above the cell center.
const collisionProbeLift = 0.1

// BusOptions configures a bus.
type BusOptions struct {
	StepInterval time.Duration
	Motion       Motion
	// Overlap vetoes steps into cells touching masked scene objects; nil
	// disables the check.
	Overlap     OverlapChecker
	CheckRadius float64
	// Seats is the seat count; zero means one per cell.
	Seats int
	// Heading is the initial orientation for single-cell buses.
	Heading Dir
}

// Bus is a snake-like vehicle occupying an ordered list of adjacent cells,
// head first.
type Bus struct {
	ID    int
	Color Color

	cells    []Cell
	segments []*Segment
	seats    *SeatSet

	grid         *Grid
	overlap      OverlapChecker
	checkRadius  float64
	motion       Motion
	stepInterval time.Duration
	stepTimer    time.Duration

	mode     DragMode
	target   Cell
	disabled bool
}

// NewBus creates a bus over the given cells. Segment visuals snap to their
// cells. The bus is not registered with the grid.
func NewBus(id int, color Color, cells []Cell, grid *Grid, opts BusOptions) *Bus {
	if opts.StepInterval <= 0 {
		opts.StepInterval = DefaultStepInterval
	}
	if opts.Motion.Rate <= 0 && opts.Motion.Speed <= 0 {
		opts.Motion = DefaultMotion()
	}
	seats := opts.Seats
	if seats <= 0 {
		seats = len(cells)
	}

	b := &Bus{
		ID:           id,
		Color:        color,
		cells:        append([]Cell(nil), cells...),
		seats:        NewSeatSet(seats),
		grid:         grid,
		overlap:      opts.Overlap,
		checkRadius:  opts.CheckRadius,
		motion:       opts.Motion,
		stepInterval: opts.StepInterval,
	}

	headings := Headings(b.cells, opts.Heading)
	b.segments = make([]*Segment, len(b.cells))
	for i, c := range b.cells {
		b.segments[i] = &Segment{
			Position: grid.CellToWorld(c),
			Heading:  headings[i],
			Scale:    1,
		}
	}
	return b
}

// Cells returns a copy of the bus cells, head first.
func (b *Bus) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Len returns the number of cells.
func (b *Bus) Len() int {
	return len(b.cells)
}

// Head returns the head cell.
func (b *Bus) Head() Cell {
	return b.cells[0]
}

// Tail returns the tail cell.
func (b *Bus) Tail() Cell {
	return b.cells[len(b.cells)-1]
}

// Contains returns true if the bus covers the cell.
func (b *Bus) Contains(c Cell) bool {
	for _, bc := range b.cells {
		if bc == c {
			return true
		}
	}
	return false
}

// Segments returns the visual segments, head first. Callers must not
// modify them.
func (b *Bus) Segments() []*Segment {
	return b.segments
}

// Heading returns the orientation of the head segment.
func (b *Bus) Heading() Dir {
	return b.segments[0].Heading
}

// Seats returns the bus seats.
func (b *Bus) Seats() *SeatSet {
	return b.seats
}

// Mode returns the current drag mode.
func (b *Bus) Mode() DragMode {
	return b.mode
}

// IsDragging returns true while either end is held.
func (b *Bus) IsDragging() bool {
	return b.mode != Idle
}

// Target returns the last pointer target cell.
func (b *Bus) Target() Cell {
	return b.target
}

// Disabled returns true once the bus stops accepting input.
func (b *Bus) Disabled() bool {
	return b.disabled
}

// Disable releases any drag and ignores further input.
func (b *Bus) Disable() {
	b.disabled = true
	b.mode = Idle
	b.stepTimer = 0
}

// BeginDrag grabs one end of the bus. It only succeeds from Idle.
func (b *Bus) BeginDrag(end End, target Cell) bool {
	if b.disabled || b.mode != Idle {
		return false
	}
	if end == EndTail && len(b.cells) > 1 {
		b.mode = DraggingTail
	} else {
		b.mode = DraggingHead
	}
	b.target = target
	b.stepTimer = 0
	return true
}

// SetPointerTarget updates the drag target while dragging.
func (b *Bus) SetPointerTarget(target Cell) {
	if b.mode == Idle {
		return
	}
	b.target = target
}

// EndDrag returns the bus to Idle. The cells stay where they are.
func (b *Bus) EndDrag() {
	b.mode = Idle
	b.stepTimer = 0
}

// Update advances the step timer and visuals by dt. It attempts at most
// one step per call and reports whether a step was committed.
func (b *Bus) Update(dt time.Duration) bool {
	stepped := false
	if b.mode != Idle {
		b.stepTimer += dt
		if b.stepTimer >= b.stepInterval {
			b.stepTimer = 0
			stepped = b.TryStep()
		}
	}
	b.updateVisuals(dt)
	return stepped
}

// SnapVisuals places every segment exactly on its cell.
func (b *Bus) SnapVisuals() {
	for i, c := range b.cells {
		s := b.segments[i]
		s.Position = b.grid.CellToWorld(c).Add(mgl64.Vec3{0, s.Lift, 0})
	}
}

func (b *Bus) updateVisuals(dt time.Duration) {
	for i, c := range b.cells {
		s := b.segments[i]
		target := b.grid.CellToWorld(c).Add(mgl64.Vec3{0, s.Lift, 0})
		s.Position = b.motion.Advance(s.Position, target, dt)
	}
}
