package core

// Seat holds at most one passenger.
type Seat struct {
	Index    int
	occupant *Passenger
}

// Occupied returns true if a passenger sits here.
func (s *Seat) Occupied() bool {
	return s.occupant != nil
}

// Occupant returns the seated passenger or nil.
func (s *Seat) Occupant() *Passenger {
	return s.occupant
}

// Occupy seats a passenger. It returns false if the seat is taken.
func (s *Seat) Occupy(p *Passenger) bool {
	if s.occupant != nil || p == nil {
		return false
	}
	s.occupant = p
	p.seat = s
	return true
}

// SeatSet is the ordered seat list of one bus.
type SeatSet struct {
	seats  []*Seat
	full   bool
	onFull func()
}

// NewSeatSet creates n empty seats.
func NewSeatSet(n int) *SeatSet {
	if n < 0 {
		n = 0
	}
	s := &SeatSet{seats: make([]*Seat, n)}
	for i := range s.seats {
		s.seats[i] = &Seat{Index: i}
	}
	return s
}

// OnFull registers the callback run once when the set becomes full.
func (s *SeatSet) OnFull(fn func()) {
	s.onFull = fn
}

// Len returns the number of seats.
func (s *SeatSet) Len() int {
	return len(s.seats)
}

// Seats returns the seats in order.
func (s *SeatSet) Seats() []*Seat {
	return s.seats
}

// OccupiedCount returns the number of taken seats.
func (s *SeatSet) OccupiedCount() int {
	n := 0
	for _, seat := range s.seats {
		if seat.Occupied() {
			n++
		}
	}
	return n
}

// IsFull returns true once the full transition has fired.
func (s *SeatSet) IsFull() bool {
	return s.full
}

// FindEmptySeat returns the first unoccupied seat. When none is left it
// runs the full check and returns nil.
func (s *SeatSet) FindEmptySeat() *Seat {
	for _, seat := range s.seats {
		if !seat.Occupied() {
			return seat
		}
	}
	s.CheckFull()
	return nil
}

// CheckFull marks the set full and fires the callback if every seat is
// taken. It fires at most once and reports whether this call fired it.
func (s *SeatSet) CheckFull() bool {
	if s.full {
		return false
	}
	for _, seat := range s.seats {
		if !seat.Occupied() {
			return false
		}
	}
	s.full = true
	if s.onFull != nil {
		s.onFull()
	}
	return true
}
