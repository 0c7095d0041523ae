package core_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

func TestUpdateStepsOnFixedInterval(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)
	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))

	assert.False(t, b.Update(30*time.Millisecond))
	assert.Equal(t, core.C(2, 2), b.Head())

	assert.True(t, b.Update(30*time.Millisecond))
	assert.Equal(t, core.C(3, 2), b.Head())

	// A long frame still commits only one step.
	assert.True(t, b.Update(500*time.Millisecond))
	assert.Equal(t, core.C(4, 2), b.Head())
	assert.Equal(t, []core.Cell{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}, b.Cells())
}

func TestStepTimerResetsOnRelease(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)

	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))
	b.Update(50 * time.Millisecond)
	b.EndDrag()
	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))

	assert.False(t, b.Update(50*time.Millisecond))
	assert.Equal(t, core.C(2, 2), b.Head())
}

func TestReleaseKeepsCommittedCells(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)

	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))
	b.Update(core.DefaultStepInterval)
	b.EndDrag()

	assert.Equal(t, core.Idle, b.Mode())
	assert.Equal(t, []core.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}, b.Cells())
}

func TestSegmentsSnapOnlyAtSpawn(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)

	for i, c := range b.Cells() {
		assert.True(t, b.Segments()[i].Position.ApproxEqual(g.CellToWorld(c)))
	}

	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))
	require.True(t, b.TryStep())
	b.EndDrag()

	start := b.Segments()[0].Position
	target := g.CellToWorld(b.Head())
	b.Update(10 * time.Millisecond)
	pos := b.Segments()[0].Position

	assert.False(t, pos.ApproxEqual(target), "head should not snap")
	assert.Less(t, pos.Sub(target).Len(), start.Sub(target).Len())

	for i := 0; i < 200; i++ {
		b.Update(16 * time.Millisecond)
	}
	assert.True(t, b.Segments()[0].Position.ApproxEqualThreshold(target, 1e-6))
}

func TestMotionAdvance(t *testing.T) {
	from := mgl64.Vec3{0, 0, 0}
	to := mgl64.Vec3{2, 0, 0}

	smooth := core.Motion{Kind: core.MotionSmooth, Rate: 10}
	got := smooth.Advance(from, to, 50*time.Millisecond)
	assert.InDelta(t, 1.0, got.X(), 1e-9)

	// Rate * dt above one lands on the target.
	got = smooth.Advance(from, to, time.Second)
	assert.True(t, got.ApproxEqual(to))

	linear := core.Motion{Kind: core.MotionLinear, Speed: 4}
	got = linear.Advance(from, to, 250*time.Millisecond)
	assert.InDelta(t, 1.0, got.X(), 1e-9)
	got = linear.Advance(from, to, time.Second)
	assert.True(t, got.ApproxEqual(to))

	assert.Equal(t, from, linear.Advance(from, to, 0))
}

func TestDisabledBusIgnoresInput(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)
	require.True(t, b.BeginDrag(core.EndHead, core.C(4, 2)))

	b.Disable()
	assert.Equal(t, core.Idle, b.Mode())
	assert.False(t, b.BeginDrag(core.EndHead, core.C(4, 2)))
	assert.False(t, b.TryStep())
}

func TestHeadingsInteriorFacesHead(t *testing.T) {
	cells := []core.Cell{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	assert.Equal(t,
		[]core.Dir{core.DirUp, core.DirUp, core.DirRight, core.DirDown},
		core.Headings(cells, core.DirLeft))
	assert.Equal(t, []core.Dir{core.DirLeft}, core.Headings(cells[:1], core.DirLeft))
}

func TestNewBusSeatsDefaultToLength(t *testing.T) {
	g := newTestGrid()
	b := threeCellBus(g)
	assert.Equal(t, 3, b.Seats().Len())

	c := core.NewBus(2, core.ColorGreen, []core.Cell{{X: 4, Y: 4}}, g, core.BusOptions{Seats: 4})
	assert.Equal(t, 4, c.Seats().Len())
}
