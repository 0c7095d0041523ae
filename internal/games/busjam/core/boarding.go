package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// BoardingTiming paces passenger pickup.
type BoardingTiming struct {
	// JumpDuration is how long one passenger takes to reach a seat.
	JumpDuration time.Duration
	// PickupDelay is the pause between pickups and between retries.
	PickupDelay time.Duration
}

// DefaultBoardingTiming returns 450ms jumps with a 100ms delay.
func DefaultBoardingTiming() BoardingTiming {
	return BoardingTiming{
		JumpDuration: 450 * time.Millisecond,
		PickupDelay:  100 * time.Millisecond,
	}
}

// PickupZone watches one passage queue and boards passengers into the
// bus parked next to it.
type PickupZone struct {
	Queue  *PassageQueue
	Radius float64

	current *Bus
	task    TaskID
}

// NewPickupZone creates a zone around a queue's pickup point.
func NewPickupZone(q *PassageQueue, radius float64) *PickupZone {
	return &PickupZone{Queue: q, Radius: radius}
}

// Current returns the bus inside the zone, or nil.
func (z *PickupZone) Current() *Bus {
	return z.current
}

// Picking returns true while a boarding task runs.
func (z *PickupZone) Picking() bool {
	return z.task != 0
}

// Contains reports whether any cell of the bus lies within the zone radius
// on the ground plane.
func (z *PickupZone) Contains(g *Grid, b *Bus) bool {
	center := mgl64.Vec2{z.Queue.Position.X(), z.Queue.Position.Z()}
	for _, c := range b.cells {
		w := g.CellToWorld(c)
		if (mgl64.Vec2{w.X(), w.Z()}).Sub(center).Len() <= z.Radius {
			return true
		}
	}
	return false
}

// BoardFunc is told about every passenger that takes a seat.
type BoardFunc func(b *Bus, p *Passenger, seat *Seat)

// Update tracks zone entry and exit and keeps a boarding task running for
// the bus inside. A bus that leaves the zone or the board cancels its task.
func (z *PickupZone) Update(g *Grid, sched *Scheduler, timing BoardingTiming, onBoard BoardFunc) {
	if z.task != 0 && !sched.Active(z.task) {
		z.task = 0
	}

	if z.current != nil && (!g.IsRegistered(z.current) || !z.Contains(g, z.current)) {
		z.exit(sched)
	}

	if z.current == nil {
		for _, b := range g.Buses() {
			if !b.Disabled() && z.Contains(g, b) {
				z.current = b
				break
			}
		}
	}

	if z.current == nil || z.task != 0 || z.current.Disabled() || z.current.IsDragging() {
		return
	}
	z.task = sched.Add(&boardingTask{
		zone:    z,
		bus:     z.current,
		timing:  timing,
		onBoard: onBoard,
	})
}

func (z *PickupZone) exit(sched *Scheduler) {
	if z.task != 0 {
		sched.Cancel(z.task)
		z.task = 0
	}
	z.current = nil
}

type boardingTask struct {
	zone    *PickupZone
	bus     *Bus
	timing  BoardingTiming
	onBoard BoardFunc
	wait    time.Duration
}

// Step boards at most one passenger per call. It yields while the bus is
// dragged and finishes once the bus is full.
func (t *boardingTask) Step(dt time.Duration) bool {
	if t.wait > 0 {
		t.wait -= dt
		if t.wait > 0 {
			return false
		}
		t.wait = 0
	}
	if t.bus.IsDragging() {
		return false
	}

	seat := t.bus.seats.FindEmptySeat()
	if seat == nil {
		return true
	}

	p := t.zone.Queue.NextPassengerForColor(t.bus.Color)
	if p == nil {
		t.wait = t.timing.PickupDelay
		return false
	}

	seat.Occupy(p)
	if t.onBoard != nil {
		t.onBoard(t.bus, p, seat)
	}
	if t.bus.seats.CheckFull() {
		return true
	}
	t.wait = t.timing.JumpDuration + t.timing.PickupDelay
	return false
}
