package core_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

func TestFindEmptySeatFullFiresOnce(t *testing.T) {
	seats := core.NewSeatSet(2)
	fired := 0
	seats.OnFull(func() { fired++ })

	for i := 0; i < 2; i++ {
		seat := seats.FindEmptySeat()
		require.NotNil(t, seat)
		assert.Equal(t, i, seat.Index)
		require.True(t, seat.Occupy(&core.Passenger{ID: i + 1}))
	}
	assert.Equal(t, 0, fired)

	assert.Nil(t, seats.FindEmptySeat())
	assert.Equal(t, 1, fired)
	assert.True(t, seats.IsFull())

	assert.Nil(t, seats.FindEmptySeat())
	assert.False(t, seats.CheckFull())
	assert.Equal(t, 1, fired)
}

func TestCheckFullWithFreeSeat(t *testing.T) {
	seats := core.NewSeatSet(2)
	seats.Seats()[0].Occupy(&core.Passenger{ID: 1})

	assert.False(t, seats.CheckFull())
	assert.False(t, seats.IsFull())
	assert.Equal(t, 1, seats.OccupiedCount())
	assert.Same(t, seats.Seats()[1], seats.FindEmptySeat())
}

func TestSeatOccupyTwice(t *testing.T) {
	seat := core.NewSeatSet(1).Seats()[0]
	p := &core.Passenger{ID: 1}

	assert.True(t, seat.Occupy(p))
	assert.False(t, seat.Occupy(&core.Passenger{ID: 2}))
	assert.Same(t, p, seat.Occupant())
	assert.Same(t, seat, p.Seat())
	assert.True(t, p.Seated())
}

func TestPassageQueueFrontMatch(t *testing.T) {
	id := 0
	q := core.NewPassageQueue(core.PassengerSpawn{
		Position: mgl64.Vec3{0, 0, -5},
		Groups: []core.PassengerGroup{
			{Color: core.ColorRed, Count: 2},
			{Color: core.ColorGreen, Count: 1},
		},
	}, &id)

	require.Equal(t, 3, q.Len())
	c, ok := q.IndicatorColor()
	assert.True(t, ok)
	assert.Equal(t, core.ColorRed, c)

	// Green waits behind red and is never skipped.
	assert.Nil(t, q.NextPassengerForColor(core.ColorGreen))
	assert.Equal(t, 3, q.Len())

	p := q.NextPassengerForColor(core.ColorRed)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 2, q.NextPassengerForColor(core.ColorRed).ID)

	c, _ = q.IndicatorColor()
	assert.Equal(t, core.ColorGreen, c)
	assert.Equal(t, 3, q.NextPassengerForColor(core.ColorGreen).ID)

	_, ok = q.IndicatorColor()
	assert.False(t, ok)
	assert.Nil(t, q.NextPassengerForColor(core.ColorGreen))
	assert.Equal(t, 3, id)
}

func TestCompletionCounterFiresOnce(t *testing.T) {
	c := core.NewCompletionCounter(2)

	assert.False(t, c.IncreaseTotalFullBus())
	assert.False(t, c.Achieved())
	assert.True(t, c.IncreaseTotalFullBus())
	assert.True(t, c.Achieved())
	assert.False(t, c.IncreaseTotalFullBus())
	assert.Equal(t, 3, c.Full())
	assert.Equal(t, 2, c.Total())
}
