package core

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	platformcore "github.com/vovakirdan/busjam/internal/core"
)

// Grid is the board: bounds, world mapping, static blocks, and the occupancy
// registry of live buses.
//
// The board is centered on Anchor: cell (0,0) maps to the lower-left corner
// and cell (W-1,H-1) to the upper-right, with Y following world +Z.
type Grid struct {
	W        int
	H        int
	CellSize float64
	Anchor   mgl64.Vec3

	offsetX float64
	offsetZ float64
	blocked map[Cell]struct{}

	// Registered buses in registration order.
	buses []*Bus
}

// NewGrid creates a grid of w×h cells. Non-positive sizes fall back to the
// defaults.
func NewGrid(w, h int, cellSize float64, anchor mgl64.Vec3, blocks []Cell) *Grid {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	g := &Grid{
		W:        w,
		H:        h,
		CellSize: cellSize,
		Anchor:   anchor,
		offsetX:  -float64(w-1) * 0.5 * cellSize,
		offsetZ:  -float64(h-1) * 0.5 * cellSize,
		blocked:  make(map[Cell]struct{}, len(blocks)),
	}
	for _, c := range blocks {
		g.blocked[c] = struct{}{}
	}
	return g
}

// NewGridFromLevel creates the grid described by a level.
func NewGridFromLevel(l *LevelData) *Grid {
	return NewGrid(l.Width, l.Height, l.CellSize, l.Anchor, l.BlockCells())
}

// InBounds returns true if the cell is inside the board.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// ClampCell clamps each coordinate into the board.
func (g *Grid) ClampCell(c Cell) Cell {
	return Cell{
		X: platformcore.Clamp(c.X, 0, g.W-1),
		Y: platformcore.Clamp(c.Y, 0, g.H-1),
	}
}

// GridToWorld returns the world-space center of cell (x, y). Coordinates are
// not clamped.
func (g *Grid) GridToWorld(x, y int) mgl64.Vec3 {
	return g.Anchor.Add(mgl64.Vec3{
		g.offsetX + float64(x)*g.CellSize,
		0,
		g.offsetZ + float64(y)*g.CellSize,
	})
}

// CellToWorld is GridToWorld for a Cell.
func (g *Grid) CellToWorld(c Cell) mgl64.Vec3 {
	return g.GridToWorld(c.X, c.Y)
}

// WorldToGrid returns the nearest cell to a world point, clamped into the
// board. The world Y component is ignored.
func (g *Grid) WorldToGrid(p mgl64.Vec3) Cell {
	local := p.Sub(g.Anchor)
	x := int(math.Round((local.X() - g.offsetX) / g.CellSize))
	y := int(math.Round((local.Z() - g.offsetZ) / g.CellSize))
	return g.ClampCell(Cell{X: x, Y: y})
}

// IsCellBlocked returns true if a static block covers the cell.
func (g *Grid) IsCellBlocked(c Cell) bool {
	_, ok := g.blocked[c]
	return ok
}

// Blocks returns the blocked cells sorted row-major.
func (g *Grid) Blocks() []Cell {
	cells := make([]Cell, 0, len(g.blocked))
	for c := range g.blocked {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// RegisterBus adds a bus to the occupancy registry. Registering a bus twice
// is a no-op.
func (g *Grid) RegisterBus(b *Bus) {
	if b == nil || g.IsRegistered(b) {
		return
	}
	g.buses = append(g.buses, b)
}

// UnregisterBus removes a bus from the registry, preserving the order of the
// remaining buses.
func (g *Grid) UnregisterBus(b *Bus) {
	for i, other := range g.buses {
		if other == b {
			g.buses = append(g.buses[:i], g.buses[i+1:]...)
			return
		}
	}
}

// IsRegistered returns true if the bus is in the registry.
func (g *Grid) IsRegistered(b *Bus) bool {
	for _, other := range g.buses {
		if other == b {
			return true
		}
	}
	return false
}

// Buses returns the registered buses in registration order.
func (g *Grid) Buses() []*Bus {
	out := make([]*Bus, len(g.buses))
	copy(out, g.buses)
	return out
}

// IsCellOccupiedByBus returns true if any registered bus other than
// excluding currently covers the cell. Bus cells are read live.
func (g *Grid) IsCellOccupiedByBus(c Cell, excluding *Bus) bool {
	return g.BusAt(c, excluding) != nil
}

// BusAt returns the first registered bus other than excluding that covers
// the cell, or nil.
func (g *Grid) BusAt(c Cell, excluding *Bus) *Bus {
	for _, b := range g.buses {
		if b == excluding {
			continue
		}
		if b.Contains(c) {
			return b
		}
	}
	return nil
}

// IsCellFree returns true if the cell is in bounds and neither blocked nor
// covered by a bus other than excluding.
func (g *Grid) IsCellFree(c Cell, excluding *Bus) bool {
	return g.InBounds(c) && !g.IsCellBlocked(c) && !g.IsCellOccupiedByBus(c, excluding)
}
