package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

func validationCodes(err error) []string {
	var codes []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var ve core.ValidationError
			if errors.As(e, &ve) {
				codes = append(codes, ve.Code)
			}
		}
	}
	return codes
}

func TestValidateLevelAcceptsGoodLevel(t *testing.T) {
	assert.NoError(t, core.ValidateLevel(oneBusLevel(), 1))
}

func TestValidateLevelCodes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *core.LevelData)
		want   string
	}{
		{"bad size", func(l *core.LevelData) { l.Width = 0 }, "BAD_SIZE"},
		{"bad cell size", func(l *core.LevelData) { l.CellSize = 0 }, "BAD_CELL_SIZE"},
		{"no buses", func(l *core.LevelData) { l.Buses = nil }, "NO_BUSES"},
		{"empty bus", func(l *core.LevelData) { l.Buses[0].Length = 0 }, "BUS_EMPTY"},
		{"out of bounds", func(l *core.LevelData) { l.Buses[0].Head = core.C(2, 0) }, "BUS_OUT_OF_BOUNDS"},
		{"not connected", func(l *core.LevelData) {
			l.Buses[0].Tail = []core.Cell{{X: 0, Y: -1}, {X: 2, Y: 0}}
			l.Buses[0].Length = 3
			l.Buses[0].Head = core.C(0, 3)
		}, "BUS_NOT_CONNECTED"},
		{"self overlap", func(l *core.LevelData) {
			l.Buses[0].Tail = []core.Cell{{X: 0, Y: -1}, {X: 0, Y: 1}}
			l.Buses[0].Length = 3
		}, "BUS_SELF_OVERLAP"},
		{"on block", func(l *core.LevelData) {
			l.Blocks = []core.BlockData{{Cell: core.C(2, 0)}}
		}, "BUS_ON_BLOCK"},
		{"overlap", func(l *core.LevelData) {
			l.Buses = append(l.Buses, core.BusDef{Head: core.C(2, 0), Color: core.ColorGreen, Length: 1})
		}, "BUS_OVERLAP"},
		{"seat mismatch", func(l *core.LevelData) {
			l.PassengerSpawns[0].Groups[0].Count = 3
		}, "SEAT_MISMATCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := oneBusLevel()
			tt.mutate(l)
			err := core.ValidateLevel(l, 1)
			require.Error(t, err)
			assert.Contains(t, validationCodes(err), tt.want)
		})
	}
}

func TestValidateLevelJoinsProblems(t *testing.T) {
	l := oneBusLevel()
	l.Blocks = []core.BlockData{{Cell: core.C(2, 1)}}
	l.PassengerSpawns = nil

	err := core.ValidateLevel(l, 1)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"BUS_ON_BLOCK", "SEAT_MISMATCH"}, validationCodes(err))
	assert.Contains(t, err.Error(), "[BUS_ON_BLOCK]")
}

func TestValidateLevelSeatsPerSegment(t *testing.T) {
	l := oneBusLevel()
	l.PassengerSpawns[0].Groups[0].Count = 4

	assert.Error(t, core.ValidateLevel(l, 1))
	assert.NoError(t, core.ValidateLevel(l, 2))

	l.Buses[0].Seats = 4
	assert.NoError(t, core.ValidateLevel(l, 1))
}
