package core_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

const frame = 10 * time.Millisecond

func oneBusLevel() *core.LevelData {
	return &core.LevelData{
		ID:       "test",
		Width:    5,
		Height:   7,
		CellSize: 1,
		Buses: []core.BusDef{
			{Head: core.C(2, 1), Color: core.ColorRed, Length: 2, RotationY: 0},
		},
		PassengerSpawns: []core.PassengerSpawn{
			{
				Position: mgl64.Vec3{0, 0, -4},
				Groups:   []core.PassengerGroup{{Color: core.ColorRed, Count: 2}},
			},
		},
	}
}

func untimed() core.Options {
	opts := core.DefaultOptions()
	opts.TimerEnabled = false
	return opts
}

func runSession(s *core.Session, d time.Duration) []core.Event {
	var all []core.Event
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		all = append(all, s.Update(frame, nil)...)
	}
	return all
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSessionSpawnsFromLevel(t *testing.T) {
	level := oneBusLevel()
	s := core.NewSession(level, testCamera(), untimed())

	require.Len(t, s.Buses(), 1)
	b := s.Buses()[0]
	assert.Equal(t, []core.Cell{{X: 2, Y: 1}, {X: 2, Y: 0}}, b.Cells())
	assert.Equal(t, core.DirUp, b.Heading())
	assert.Equal(t, 2, b.Seats().Len())
	assert.True(t, s.Grid().IsRegistered(b))
	require.Len(t, s.Queues(), 1)
	assert.Equal(t, 2, s.Queues()[0].Len())
	assert.False(t, s.Timed())

	// The level is read-only.
	assert.Equal(t, core.C(2, 1), level.Buses[0].Head)
}

func TestSessionBoardsAndCompletes(t *testing.T) {
	s := core.NewSession(oneBusLevel(), testCamera(), untimed())

	events := runSession(s, 5*time.Second)

	assert.Equal(t, 2, countKind(events, core.EventPassengerBoarded))
	assert.Equal(t, 1, countKind(events, core.EventBusFull))
	assert.Equal(t, 1, countKind(events, core.EventBusCompleted))
	assert.Equal(t, 1, countKind(events, core.EventLevelWon))
	assert.True(t, s.Won())
	assert.False(t, s.Lost())
	assert.Empty(t, s.Grid().Buses())
	assert.Equal(t, 1, s.Counter().Full())
}

func TestSessionFullBusBlocksUntilGone(t *testing.T) {
	s := core.NewSession(oneBusLevel(), testCamera(), untimed())
	b := s.Buses()[0]

	var full bool
	for i := 0; i < 300 && !full; i++ {
		for _, e := range s.Update(frame, nil) {
			if e.Kind == core.EventBusFull {
				full = true
			}
		}
	}
	require.True(t, full)
	assert.True(t, b.Disabled())
	assert.True(t, s.Grid().IsCellOccupiedByBus(core.C(2, 1), nil))

	runSession(s, core.DefaultDisappearTiming().Total()+frame)
	assert.False(t, s.Grid().IsCellOccupiedByBus(core.C(2, 1), nil))
	assert.InDelta(t, core.DefaultDisappearTiming().FinalScale, b.Segments()[0].Scale, 1e-9)
}

func TestSessionTimesOut(t *testing.T) {
	level := oneBusLevel()
	level.PassengerSpawns = nil
	level.Duration = time.Second

	s := core.NewSession(level, testCamera(), core.DefaultOptions())
	require.True(t, s.Timed())

	events := runSession(s, 2*time.Second)
	assert.Equal(t, 1, countKind(events, core.EventLevelTimedOut))
	assert.Equal(t, 0, countKind(events, core.EventLevelWon))
	assert.True(t, s.Lost())
	assert.Equal(t, time.Duration(0), s.TimeLeft())
	assert.InDelta(t, 900*time.Millisecond, s.Elapsed(), float64(frame))
}

func TestSessionTimerScale(t *testing.T) {
	level := oneBusLevel()
	level.Duration = 10 * time.Second

	opts := core.DefaultOptions()
	opts.TimerScale = 1.5
	s := core.NewSession(level, testCamera(), opts)
	assert.Equal(t, 15*time.Second, s.TimeLeft())
}

func TestSessionDragMovesBus(t *testing.T) {
	level := oneBusLevel()
	level.PassengerSpawns = nil
	cam := testCamera()
	s := core.NewSession(level, cam, untimed())
	b := s.Buses()[0]

	hx, hy := screenOf(cam, s.Grid(), b.Head())
	tx, ty := screenOf(cam, s.Grid(), core.C(2, 4))

	events := s.Update(frame, []platformcore.PointerEvent{
		{Kind: platformcore.PointerDown, X: hx, Y: hy},
		{Kind: platformcore.PointerMove, X: tx, Y: ty},
	})
	assert.Empty(t, events)
	assert.Equal(t, core.DraggingHead, b.Mode())

	events = runSession(s, time.Second)
	assert.Equal(t, 3, countKind(events, core.EventBusStepped))
	assert.Equal(t, []core.Cell{{X: 2, Y: 4}, {X: 2, Y: 3}}, b.Cells())

	s.Update(frame, []platformcore.PointerEvent{{Kind: platformcore.PointerUp}})
	assert.Equal(t, core.Idle, b.Mode())
	assert.Equal(t, []core.Cell{{X: 2, Y: 4}, {X: 2, Y: 3}}, b.Cells())
}

func TestSessionFirstBusWinsContestedCell(t *testing.T) {
	level := &core.LevelData{
		Width: 5, Height: 7, CellSize: 1,
		Buses: []core.BusDef{
			{Head: core.C(1, 3), Color: core.ColorRed, Length: 1},
			{Head: core.C(3, 3), Color: core.ColorGreen, Length: 1},
		},
	}
	s := core.NewSession(level, testCamera(), untimed())
	a, b := s.Buses()[0], s.Buses()[1]

	require.True(t, a.BeginDrag(core.EndHead, core.C(2, 3)))
	require.True(t, b.BeginDrag(core.EndHead, core.C(2, 3)))
	s.Update(core.DefaultStepInterval, nil)

	assert.Equal(t, core.C(2, 3), a.Head())
	assert.Equal(t, core.C(3, 3), b.Head())
}

func TestSessionDistancesFollowCellSize(t *testing.T) {
	level := oneBusLevel()
	level.CellSize = 2
	// One cell in front of the tail at (2, 0).
	level.PassengerSpawns[0].Position = mgl64.Vec3{0, 0, -8}
	cam := testCamera()
	s := core.NewSession(level, cam, untimed())
	b := s.Buses()[0]
	zone := s.Zones()[0]

	assert.True(t, zone.Contains(s.Grid(), b), "bus one cell away is inside the zone")

	head := s.Grid().CellToWorld(b.Head())
	x, y := cam.WorldToScreen(head.Add(mgl64.Vec3{0.6, 0, 0}))
	require.True(t, s.Drag().PointerDown(x, y), "pointer 0.3 cells off the head picks it")
	assert.Equal(t, core.DraggingHead, b.Mode())
	s.Drag().Release()

	s.Update(frame, nil)
	assert.Same(t, b, zone.Current())
}
