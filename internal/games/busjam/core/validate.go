package core

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLevel checks a level for authoring mistakes.
// Checks:
//   - Board size and cell size are positive
//   - Every bus is non-empty, in bounds, 4-connected, and free of repeats
//   - No bus sits on a block or on another bus
//   - Seats per color equal passengers per color
//
// All problems are returned joined. seatsPerSegment is used for buses
// without an explicit seat count.
func ValidateLevel(l *LevelData, seatsPerSegment int) error {
	var errs []error
	add := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if l.Width <= 0 || l.Height <= 0 {
		add("BAD_SIZE", "board size %dx%d must be positive", l.Width, l.Height)
		return errors.Join(errs...)
	}
	if l.CellSize <= 0 {
		add("BAD_CELL_SIZE", "cell size %g must be positive", l.CellSize)
	}
	if len(l.Buses) == 0 {
		add("NO_BUSES", "level has no buses")
	}

	g := NewGrid(l.Width, l.Height, 1, l.Anchor, l.BlockCells())
	owner := make(map[Cell]int)
	seats := make(map[Color]int)

	for i, def := range l.Buses {
		id := i + 1
		if def.Length <= 0 && len(def.Tail) == 0 {
			add("BUS_EMPTY", "bus %d has no cells", id)
			continue
		}
		cells := def.Cells()

		seen := make(map[Cell]bool, len(cells))
		for j, c := range cells {
			if !g.InBounds(c) {
				add("BUS_OUT_OF_BOUNDS", "bus %d cell %s outside %dx%d board", id, c, l.Width, l.Height)
			}
			if seen[c] {
				add("BUS_SELF_OVERLAP", "bus %d repeats cell %s", id, c)
			}
			seen[c] = true
			if j > 0 && c.Manhattan(cells[j-1]) != 1 {
				add("BUS_NOT_CONNECTED", "bus %d cells %s and %s are not adjacent", id, cells[j-1], c)
			}
			if g.IsCellBlocked(c) {
				add("BUS_ON_BLOCK", "bus %d cell %s is blocked", id, c)
			}
			if other, ok := owner[c]; ok && other != id {
				add("BUS_OVERLAP", "bus %d and bus %d both cover %s", other, id, c)
			}
			owner[c] = id
		}

		n := def.Seats
		if n <= 0 {
			n = len(cells) * max(seatsPerSegment, 1)
		}
		seats[def.Color] += n
	}

	passengers := l.PassengerCount()
	for _, c := range AllColors() {
		if seats[c] != passengers[c] {
			add("SEAT_MISMATCH", "color %s: %d seats, %d passengers", c, seats[c], passengers[c])
		}
	}

	return errors.Join(errs...)
}
