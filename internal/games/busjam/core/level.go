package core

import (
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Default board dimensions used when a level omits them.
const (
	DefaultWidth    = 5
	DefaultHeight   = 7
	DefaultCellSize = 1.0
)

// ObjectType classifies non-grid scene objects.
type ObjectType uint8

const (
	ObjectBorder ObjectType = iota
	ObjectPassengerSpawn
	ObjectPassage
	ObjectVehicle
)

var objectTypeNames = [...]string{"border", "passenger_spawn", "passage", "vehicle"}

// String returns the snake_case object type name.
func (t ObjectType) String() string {
	if int(t) < len(objectTypeNames) {
		return objectTypeNames[t]
	}
	return "unknown"
}

// ParseObjectType parses an object type name. Both snake_case and the
// camel-cased "PassengerSpawn" form are accepted.
func ParseObjectType(s string) (ObjectType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	if s == "passengerspawn" {
		s = "passenger_spawn"
	}
	for i, name := range objectTypeNames {
		if s == name {
			return ObjectType(i), true
		}
	}
	return 0, false
}

// BlockData is a static obstacle occupying one cell.
type BlockData struct {
	Cell      Cell
	BlockID   int
	RotationY float64
}

// WorldObject is a scene object placed in world space. Objects whose type is
// part of the collision mask veto bus steps that would overlap them.
type WorldObject struct {
	Type      ObjectType
	ObjectID  int
	Position  mgl64.Vec3
	RotationY float64
}

// BusDef describes a bus as authored in a level file.
//
// The cells are either the head plus explicit cumulative Tail offsets, or
// (when Tail is empty) the head plus Length-1 cells laid out behind the head
// according to RotationY.
type BusDef struct {
	Head      Cell
	Color     Color
	Length    int
	Tail      []Cell
	RotationY float64
	// Seats overrides the seat count; zero means derive it from the length.
	Seats int
}

// Cells expands the definition into the ordered cell list, head first.
func (d BusDef) Cells() []Cell {
	if len(d.Tail) > 0 {
		cells := make([]Cell, 0, len(d.Tail)+1)
		cur := d.Head
		cells = append(cells, cur)
		for _, off := range d.Tail {
			cur = cur.Add(off)
			cells = append(cells, cur)
		}
		return cells
	}

	n := d.Length
	if n < 1 {
		n = 1
	}
	back := DirFromAngle(d.RotationY).Opposite().Delta()
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = d.Head.Add(back.Scale(i))
	}
	return cells
}

// PassengerGroup is a run of same-colored passengers in a queue.
type PassengerGroup struct {
	Color Color
	Count int
}

// PassengerSpawn describes one passenger queue and its pickup point.
type PassengerSpawn struct {
	Position  mgl64.Vec3
	RotationY float64
	Groups    []PassengerGroup
}

// Total returns the number of passengers in the spawn.
func (s PassengerSpawn) Total() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Count
	}
	return n
}

// LevelData holds everything needed to build a session. It is read-only
// once loaded.
type LevelData struct {
	ID       string
	Name     string
	Width    int
	Height   int
	CellSize float64
	// Anchor is the world position of the board center.
	Anchor mgl64.Vec3
	// Duration is the time limit; zero means untimed.
	Duration time.Duration

	Blocks          []BlockData
	WorldObjects    []WorldObject
	Buses           []BusDef
	PassengerSpawns []PassengerSpawn
}

// BlockCells returns the cells covered by static blocks.
func (l *LevelData) BlockCells() []Cell {
	cells := make([]Cell, len(l.Blocks))
	for i, b := range l.Blocks {
		cells[i] = b.Cell
	}
	return cells
}

// PassengerCount returns the number of passengers per color across all spawns.
func (l *LevelData) PassengerCount() map[Color]int {
	counts := make(map[Color]int)
	for _, s := range l.PassengerSpawns {
		for _, g := range s.Groups {
			counts[g.Color] += g.Count
		}
	}
	return counts
}
