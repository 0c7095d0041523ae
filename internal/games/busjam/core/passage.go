package core

import "github.com/go-gl/mathgl/mgl64"

// Passenger waits in a queue until a same-colored bus picks them up.
type Passenger struct {
	ID    int
	Color Color
	seat  *Seat
}

// Seated returns true once the passenger has boarded.
func (p *Passenger) Seated() bool {
	return p.seat != nil
}

// Seat returns the seat the passenger took, or nil.
func (p *Passenger) Seat() *Seat {
	return p.seat
}

// PassageQueue is an ordered line of passengers at one pickup point.
type PassageQueue struct {
	Position  mgl64.Vec3
	RotationY float64

	passengers []*Passenger
}

// NewPassageQueue expands a spawn definition into a queue. Passenger IDs are
// assigned from *nextID, which is advanced.
func NewPassageQueue(spawn PassengerSpawn, nextID *int) *PassageQueue {
	q := &PassageQueue{
		Position:   spawn.Position,
		RotationY:  spawn.RotationY,
		passengers: make([]*Passenger, 0, spawn.Total()),
	}
	for _, g := range spawn.Groups {
		for i := 0; i < g.Count; i++ {
			*nextID++
			q.passengers = append(q.passengers, &Passenger{ID: *nextID, Color: g.Color})
		}
	}
	return q
}

// Len returns the number of waiting passengers.
func (q *PassageQueue) Len() int {
	return len(q.passengers)
}

// Passengers returns the waiting passengers, front first.
func (q *PassageQueue) Passengers() []*Passenger {
	out := make([]*Passenger, len(q.passengers))
	copy(out, q.passengers)
	return out
}

// Front returns the first waiting passenger or nil.
func (q *PassageQueue) Front() *Passenger {
	if len(q.passengers) == 0 {
		return nil
	}
	return q.passengers[0]
}

// IndicatorColor returns the color of the front passenger. ok is false
// when the queue is empty.
func (q *PassageQueue) IndicatorColor() (c Color, ok bool) {
	p := q.Front()
	if p == nil {
		return 0, false
	}
	return p.Color, true
}

// NextPassengerForColor removes and returns the front passenger if their
// color matches. Passengers behind a mismatched front are never skipped.
func (q *PassageQueue) NextPassengerForColor(c Color) *Passenger {
	p := q.Front()
	if p == nil || p.Color != c {
		return nil
	}
	q.passengers[0] = nil
	q.passengers = q.passengers[1:]
	return p
}
