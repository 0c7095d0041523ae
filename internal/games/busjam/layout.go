package busjam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	platformcore "github.com/vovakirdan/busjam/internal/core"
	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

const (
	hudHeight    = 2 // title line + separator
	footerHeight = 2 // separator + controls line
	queueRows    = 4 // rows kept free under each passenger queue
	cameraHeight = 10.0
)

// cellScales are the terminal sizes tried for one grid cell, largest first.
var cellScales = [][2]int{{4, 2}, {2, 1}}

// layout maps the level's world space onto the terminal.
type layout struct {
	cellW, cellH int
	board        platformcore.Rect
	camera       core.TopDownCamera
	tooSmall     bool
}

// computeLayout picks the largest cell scale at which the board and the
// passenger queues fit the screen and builds a top-down camera for it.
// Cell centers land on whole screen columns and rows.
func computeLayout(level *core.LevelData, screenW, screenH int) layout {
	grid := core.NewGridFromLevel(level)
	cs := grid.CellSize

	lo := grid.GridToWorld(0, 0)
	hi := grid.GridToWorld(grid.W-1, grid.H-1)
	minX, maxX := lo.X()-cs/2, hi.X()+cs/2
	minZ, maxZ := lo.Z()-cs/2, hi.Z()+cs/2
	for _, spawn := range level.PassengerSpawns {
		p := spawn.Position
		minX = math.Min(minX, p.X()-cs/2)
		maxX = math.Max(maxX, p.X()+cs/2)
		minZ = math.Min(minZ, p.Z()-cs/2)
		maxZ = math.Max(maxZ, p.Z()+cs/2)
	}

	area := platformcore.NewRect(0, hudHeight, screenW, screenH-hudHeight-footerHeight)

	for _, scale := range cellScales {
		ux := float64(scale[0]) / cs
		uy := float64(scale[1]) / cs
		needW := int(math.Ceil((maxX-minX)*ux)) + 2
		needH := int(math.Ceil((maxZ-minZ)*uy)) + 2
		if len(level.PassengerSpawns) > 0 {
			needH += queueRows
		}
		if needW > area.W || needH > area.H {
			continue
		}

		// Anchor the camera on a cell center so every cell block starts on
		// a whole terminal cell, then shift the origin to center the content.
		center := grid.GridToWorld(grid.W/2, grid.H/2)
		ax, ay := area.CenteredIn(needW, needH).Center()
		midX := (minX + maxX) / 2
		midZ := (minZ + maxZ) / 2
		if len(level.PassengerSpawns) > 0 {
			ay -= queueRows / 2
		}
		cam := core.TopDownCamera{
			Center:  center,
			OriginX: math.Round(float64(ax)+(center.X()-midX)*ux) + halfOdd(scale[0]),
			OriginY: math.Round(float64(ay)-(center.Z()-midZ)*uy) + halfOdd(scale[1]),
			UnitsX:  ux,
			UnitsY:  uy,
			Height:  cameraHeight,
		}

		l := layout{cellW: scale[0], cellH: scale[1], camera: cam}
		tlx, tly := l.cellOrigin(grid.GridToWorld(0, grid.H-1))
		l.board = platformcore.NewRect(tlx, tly, grid.W*scale[0], grid.H*scale[1])
		return l
	}

	return layout{tooSmall: true}
}

// toScreen returns the terminal cell containing a world position.
// Terminal cell (c, r) covers [c, c+1) x [r, r+1) in screen space.
func (l layout) toScreen(p mgl64.Vec3) (int, int) {
	x, y := l.camera.WorldToScreen(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellOrigin returns the top-left terminal cell of the block drawn for a
// world position.
func (l layout) cellOrigin(p mgl64.Vec3) (int, int) {
	x, y := l.camera.WorldToScreen(p)
	return int(math.Floor(x - float64(l.cellW)/2)), int(math.Floor(y - float64(l.cellH)/2))
}

// halfOdd centers odd-sized blocks on a terminal cell instead of a cell edge.
func halfOdd(n int) float64 {
	return float64(n%2) / 2
}

// centerPointer moves a pointer sample from the corner of a terminal cell
// to its center.
func centerPointer(ev platformcore.PointerEvent) platformcore.PointerEvent {
	ev.X += 0.5
	ev.Y += 0.5
	return ev
}
