package core_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

type boardingRig struct {
	grid   *core.Grid
	sched  *core.Scheduler
	zone   *core.PickupZone
	bus    *core.Bus
	timing core.BoardingTiming
	boards []int
	fulls  int
}

func newBoardingRig(t *testing.T, groups ...core.PassengerGroup) *boardingRig {
	t.Helper()
	g := newTestGrid()
	id := 0
	q := core.NewPassageQueue(core.PassengerSpawn{
		Position: g.GridToWorld(2, 0).Add(mgl64.Vec3{0, 0, -1}),
		Groups:   groups,
	}, &id)

	r := &boardingRig{
		grid:   g,
		sched:  core.NewScheduler(),
		zone:   core.NewPickupZone(q, 1.0),
		bus:    spawnBus(g, 1, core.C(2, 0), core.C(1, 0)),
		timing: core.DefaultBoardingTiming(),
	}
	r.bus.Seats().OnFull(func() { r.fulls++ })
	return r
}

func (r *boardingRig) run(d time.Duration) {
	const dt = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += dt {
		r.zone.Update(r.grid, r.sched, r.timing, func(_ *core.Bus, p *core.Passenger, _ *core.Seat) {
			r.boards = append(r.boards, p.ID)
		})
		r.sched.Step(dt)
	}
}

func TestBoardingFillsBusOnePassengerAtATime(t *testing.T) {
	r := newBoardingRig(t, core.PassengerGroup{Color: core.ColorRed, Count: 3})

	r.run(10 * time.Millisecond)
	assert.Equal(t, []int{1}, r.boards)
	assert.Same(t, r.bus, r.zone.Current())

	r.run(500 * time.Millisecond)
	assert.Equal(t, []int{1}, r.boards, "next pickup waits for jump and delay")

	r.run(100 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, r.boards)
	assert.Equal(t, 1, r.fulls, "last passenger fills the bus")

	r.run(2 * time.Second)
	assert.Equal(t, []int{1, 2}, r.boards)
	assert.Equal(t, 1, r.fulls)
	assert.True(t, r.bus.Seats().IsFull())
	assert.Equal(t, 1, r.zone.Queue.Len())
}

func TestBusIsFullBeforeLeavingZone(t *testing.T) {
	r := newBoardingRig(t, core.PassengerGroup{Color: core.ColorRed, Count: 2})

	r.run(10 * time.Millisecond)
	require.Equal(t, []int{1}, r.boards)
	for i := 0; i < 100 && len(r.boards) < 2; i++ {
		r.run(10 * time.Millisecond)
	}
	r.grid.UnregisterBus(r.bus)
	r.run(10 * time.Millisecond)

	assert.Equal(t, 1, r.fulls)
	assert.True(t, r.bus.Seats().IsFull())
	assert.False(t, r.zone.Picking())
}

func TestBoardingWaitsWhileDragging(t *testing.T) {
	r := newBoardingRig(t, core.PassengerGroup{Color: core.ColorRed, Count: 2})
	require.True(t, r.bus.BeginDrag(core.EndHead, r.bus.Head()))

	r.run(time.Second)
	assert.Empty(t, r.boards)

	r.bus.EndDrag()
	r.run(10 * time.Millisecond)
	assert.Equal(t, []int{1}, r.boards)
}

func TestBoardingSkipsMismatchedFront(t *testing.T) {
	r := newBoardingRig(t,
		core.PassengerGroup{Color: core.ColorGreen, Count: 1},
		core.PassengerGroup{Color: core.ColorRed, Count: 2},
	)

	r.run(2 * time.Second)
	assert.Empty(t, r.boards)
	assert.True(t, r.zone.Picking(), "task keeps polling")
	assert.Equal(t, 3, r.zone.Queue.Len())
}

func TestLeavingZoneCancelsBoarding(t *testing.T) {
	r := newBoardingRig(t, core.PassengerGroup{Color: core.ColorRed, Count: 2})

	r.run(10 * time.Millisecond)
	require.Equal(t, []int{1}, r.boards)

	r.grid.UnregisterBus(r.bus)
	r.run(10 * time.Millisecond)
	assert.Nil(t, r.zone.Current())
	assert.False(t, r.zone.Picking())
	assert.Equal(t, 0, r.sched.Len())

	r.run(2 * time.Second)
	assert.Equal(t, []int{1}, r.boards)
}

func TestZoneIgnoresDistantBus(t *testing.T) {
	g := newTestGrid()
	id := 0
	q := core.NewPassageQueue(core.PassengerSpawn{
		Position: g.GridToWorld(2, 0).Add(mgl64.Vec3{0, 0, -1}),
		Groups:   []core.PassengerGroup{{Color: core.ColorRed, Count: 1}},
	}, &id)
	z := core.NewPickupZone(q, 1.0)
	far := spawnBus(g, 1, core.C(2, 5), core.C(2, 6))

	assert.False(t, z.Contains(g, far))
	z.Update(g, core.NewScheduler(), core.DefaultBoardingTiming(), nil)
	assert.Nil(t, z.Current())
}
